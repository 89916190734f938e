package jsonshared

import (
	"github.com/duskforge/skelasset/internal/domutil"
	"github.com/duskforge/skelasset/loader/internal/binshared"
	"github.com/duskforge/skelasset/skeldata"
)

// readAnimations decodes the "animations" object (name -> body), in the
// same section order binshared.readAnimation uses.
func readAnimations(root domutil.Object, dialect binshared.Dialect, scale float32, data *skeldata.SkeletonData) ([]*skeldata.Animation, error) {
	obj, _ := domutil.Obj(root, "animations")
	out := make([]*skeldata.Animation, 0, len(obj))
	for name, v := range obj {
		o, ok := v.(domutil.Object)
		if !ok {
			return nil, errf("animation", "animation %q is not an object", name)
		}
		anim, err := readAnimation(o, dialect, scale, data, name)
		if err != nil {
			return nil, err
		}
		out = append(out, anim)
	}
	return out, nil
}

func readAnimation(o domutil.Object, dialect binshared.Dialect, scale float32, data *skeldata.SkeletonData, name string) (*skeldata.Animation, error) {
	anim := &skeldata.Animation{Name: name}

	slotTimelines, err := readSlotTimelinesJSON(o, dialect, data.Slots)
	if err != nil {
		return nil, err
	}
	anim.Timelines = append(anim.Timelines, slotTimelines...)

	boneTimelines, err := readBoneTimelinesJSON(o, dialect, scale, data.Bones)
	if err != nil {
		return nil, err
	}
	anim.Timelines = append(anim.Timelines, boneTimelines...)

	ikTimelines, err := readIkConstraintTimelinesJSON(o, scale, data.IkConstraints)
	if err != nil {
		return nil, err
	}
	anim.Timelines = append(anim.Timelines, ikTimelines...)

	transformTimelines, err := readTransformConstraintTimelinesJSON(o, dialect, data.TransformConstraints)
	if err != nil {
		return nil, err
	}
	anim.Timelines = append(anim.Timelines, transformTimelines...)

	pathTimelines, err := readPathConstraintTimelinesJSON(o, dialect, scale, data.PathConstraints)
	if err != nil {
		return nil, err
	}
	anim.Timelines = append(anim.Timelines, pathTimelines...)

	if dialect.HasPhysicsConstraints {
		physicsTimelines, err := readPhysicsConstraintTimelinesJSON(o, data.PhysicsConstraints)
		if err != nil {
			return nil, err
		}
		anim.Timelines = append(anim.Timelines, physicsTimelines...)
	}

	deformTimelines, err := readDeformTimelinesJSON(o, dialect, scale, data.Skins, data.Slots)
	if err != nil {
		return nil, err
	}
	anim.Timelines = append(anim.Timelines, deformTimelines...)

	drawOrder, err := readDrawOrderTimelineJSON(o, data.Slots)
	if err != nil {
		return nil, err
	}
	if drawOrder != nil {
		anim.Timelines = append(anim.Timelines, drawOrder)
	}

	event, err := readEventTimelineJSON(o, data)
	if err != nil {
		return nil, err
	}
	if event != nil {
		anim.Timelines = append(anim.Timelines, event)
	}

	anim.ComputeDuration()
	return anim, nil
}

// readSlotTimelinesJSON decodes the "slots" section (slotName -> kind ->
// frame array). 3.8 names its two color kinds "color"/"twoColor"; 4.x
// splits into "rgba"/"rgb"/"rgba2"/"rgb2"/"alpha".
func readSlotTimelinesJSON(root domutil.Object, dialect binshared.Dialect, slots []*skeldata.Slot) ([]skeldata.Timeline, error) {
	obj, _ := domutil.Obj(root, "slots")
	var out []skeldata.Timeline
	for slotName, v := range obj {
		kinds, ok := v.(domutil.Object)
		if !ok {
			continue
		}
		slotIndex, err := slotIndexByName(slots, slotName)
		if err != nil {
			return nil, err
		}

		if arr, ok := domutil.Arr(kinds, "attachment"); ok {
			t := &skeldata.AttachmentTimeline{SlotIndex: slotIndex}
			for i, item := range arr {
				fo, ok := item.(domutil.Object)
				if !ok {
					return nil, errf("attachment timeline", "entry %d is not an object", i)
				}
				name, hasName := fo["name"]
				nameStr, _ := name.(string)
				t.Frames = append(t.Frames, skeldata.AttachmentFrame{
					Time:    domutil.Float(fo, "time", 0),
					Name:    nameStr,
					HasName: hasName && nameStr != "",
				})
			}
			out = append(out, t)
		}

		if dialect.Legacy38 {
			if arr, ok := domutil.Arr(kinds, "color"); ok {
				vf, err := readColorCurveFrames(arr, []colorPart{{"color", 4}})
				if err != nil {
					return nil, err
				}
				out = append(out, &skeldata.RGBATimeline{SlotIndex: slotIndex, ValueFrames: vf})
			}
			if arr, ok := domutil.Arr(kinds, "twoColor"); ok {
				vf, err := readColorCurveFrames(arr, []colorPart{{"light", 4}, {"dark", 3}})
				if err != nil {
					return nil, err
				}
				out = append(out, &skeldata.RGBA2Timeline{SlotIndex: slotIndex, ValueFrames: vf})
			}
			continue
		}

		if arr, ok := domutil.Arr(kinds, "rgba"); ok {
			vf, err := readColorCurveFrames(arr, []colorPart{{"color", 4}})
			if err != nil {
				return nil, err
			}
			out = append(out, &skeldata.RGBATimeline{SlotIndex: slotIndex, ValueFrames: vf})
		}
		if arr, ok := domutil.Arr(kinds, "rgb"); ok {
			vf, err := readColorCurveFrames(arr, []colorPart{{"color", 3}})
			if err != nil {
				return nil, err
			}
			out = append(out, &skeldata.RGBTimeline{SlotIndex: slotIndex, ValueFrames: vf})
		}
		if arr, ok := domutil.Arr(kinds, "rgba2"); ok {
			vf, err := readColorCurveFrames(arr, []colorPart{{"light", 4}, {"dark", 3}})
			if err != nil {
				return nil, err
			}
			out = append(out, &skeldata.RGBA2Timeline{SlotIndex: slotIndex, ValueFrames: vf})
		}
		if arr, ok := domutil.Arr(kinds, "rgb2"); ok {
			vf, err := readColorCurveFrames(arr, []colorPart{{"light", 3}, {"dark", 3}})
			if err != nil {
				return nil, err
			}
			out = append(out, &skeldata.RGB2Timeline{SlotIndex: slotIndex, ValueFrames: vf})
		}
		if arr, ok := domutil.Arr(kinds, "alpha"); ok {
			vf, err := readCurveFrames(arr, []channelSpec{{"value", 1}}, 1)
			if err != nil {
				return nil, err
			}
			out = append(out, &skeldata.AlphaTimeline{SlotIndex: slotIndex, ValueFrames: vf})
		}
	}
	return out, nil
}

func boneIndexByName(bones []*skeldata.Bone, name string) (int, error) {
	for i, b := range bones {
		if b.Name == name {
			return i, nil
		}
	}
	return 0, errf("bone timeline bone index", "unknown bone %q", name)
}

// readBoneTimelinesJSON decodes the "bones" section (boneName -> kind ->
// frame array).
func readBoneTimelinesJSON(root domutil.Object, dialect binshared.Dialect, scale float32, bones []*skeldata.Bone) ([]skeldata.Timeline, error) {
	obj, _ := domutil.Obj(root, "bones")
	var out []skeldata.Timeline
	for boneName, v := range obj {
		kinds, ok := v.(domutil.Object)
		if !ok {
			continue
		}
		boneIndex, err := boneIndexByName(bones, boneName)
		if err != nil {
			return nil, err
		}

		if arr, ok := domutil.Arr(kinds, "rotate"); ok {
			vf, err := readCurveFrames(arr, []channelSpec{{"value", 1}}, 1)
			if err != nil {
				return nil, err
			}
			out = append(out, &skeldata.RotateTimeline{BoneIndex: boneIndex, ValueFrames: vf})
		}
		if arr, ok := domutil.Arr(kinds, "translate"); ok {
			vf, err := readCurveFrames(arr, []channelSpec{{"x", scale}, {"y", scale}}, scale)
			if err != nil {
				return nil, err
			}
			out = append(out, &skeldata.TranslateTimeline{BoneIndex: boneIndex, ValueFrames: vf})
		}
		if arr, ok := domutil.Arr(kinds, "translatex"); ok {
			vf, err := readCurveFrames(arr, []channelSpec{{"value", scale}}, scale)
			if err != nil {
				return nil, err
			}
			out = append(out, &skeldata.TranslateXTimeline{BoneIndex: boneIndex, ValueFrames: vf})
		}
		if arr, ok := domutil.Arr(kinds, "translatey"); ok {
			vf, err := readCurveFrames(arr, []channelSpec{{"value", scale}}, scale)
			if err != nil {
				return nil, err
			}
			out = append(out, &skeldata.TranslateYTimeline{BoneIndex: boneIndex, ValueFrames: vf})
		}
		if arr, ok := domutil.Arr(kinds, "scale"); ok {
			vf, err := readCurveFrames(arr, []channelSpec{{"x", 1}, {"y", 1}}, 1)
			if err != nil {
				return nil, err
			}
			out = append(out, &skeldata.ScaleTimeline{BoneIndex: boneIndex, ValueFrames: vf})
		}
		if arr, ok := domutil.Arr(kinds, "scalex"); ok {
			vf, err := readCurveFrames(arr, []channelSpec{{"value", 1}}, 1)
			if err != nil {
				return nil, err
			}
			out = append(out, &skeldata.ScaleXTimeline{BoneIndex: boneIndex, ValueFrames: vf})
		}
		if arr, ok := domutil.Arr(kinds, "scaley"); ok {
			vf, err := readCurveFrames(arr, []channelSpec{{"value", 1}}, 1)
			if err != nil {
				return nil, err
			}
			out = append(out, &skeldata.ScaleYTimeline{BoneIndex: boneIndex, ValueFrames: vf})
		}
		if arr, ok := domutil.Arr(kinds, "shear"); ok {
			vf, err := readCurveFrames(arr, []channelSpec{{"x", 1}, {"y", 1}}, 1)
			if err != nil {
				return nil, err
			}
			out = append(out, &skeldata.ShearTimeline{BoneIndex: boneIndex, ValueFrames: vf})
		}
		if arr, ok := domutil.Arr(kinds, "shearx"); ok {
			vf, err := readCurveFrames(arr, []channelSpec{{"value", 1}}, 1)
			if err != nil {
				return nil, err
			}
			out = append(out, &skeldata.ShearXTimeline{BoneIndex: boneIndex, ValueFrames: vf})
		}
		if arr, ok := domutil.Arr(kinds, "sheary"); ok {
			vf, err := readCurveFrames(arr, []channelSpec{{"value", 1}}, 1)
			if err != nil {
				return nil, err
			}
			out = append(out, &skeldata.ShearYTimeline{BoneIndex: boneIndex, ValueFrames: vf})
		}
		if arr, ok := domutil.Arr(kinds, "inherit"); ok {
			if !dialect.HasInheritTimeline {
				return nil, errf("bone timeline kind", "inherit timeline not supported by %s", dialect.Name)
			}
			t := &skeldata.InheritTimeline{BoneIndex: boneIndex}
			for i, item := range arr {
				fo, ok := item.(domutil.Object)
				if !ok {
					return nil, errf("inherit timeline", "entry %d is not an object", i)
				}
				inh := inheritNames[domutil.Str(fo, "inherit", "normal")]
				t.Frames = append(t.Frames, skeldata.InheritFrame{Time: domutil.Float(fo, "time", 0), Inherit: inh})
			}
			out = append(out, t)
		}
	}
	return out, nil
}

func constraintIndexByName(names []string, name string) (int, error) {
	for i, n := range names {
		if n == name {
			return i, nil
		}
	}
	return 0, errf("constraint timeline index", "unknown constraint %q", name)
}

func ikNames(cs []*skeldata.IkConstraint) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}

func transformNames(cs []*skeldata.TransformConstraint) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}

func pathNames(cs []*skeldata.PathConstraint) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}

func physicsNames(cs []*skeldata.PhysicsConstraint) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}

// readIkConstraintTimelinesJSON decodes the "ik" section (constraintName ->
// frame array). Like its binary counterpart, the bend-direction/compress/
// stretch flags are non-curved and read inline with the curved mix/
// softness values, so it builds the timeline directly rather than through
// readCurveFrames.
func readIkConstraintTimelinesJSON(root domutil.Object, scale float32, constraints []*skeldata.IkConstraint) ([]skeldata.Timeline, error) {
	obj, _ := domutil.Obj(root, "ik")
	names := ikNames(constraints)
	var out []skeldata.Timeline
	for name, v := range obj {
		arr, ok := v.(domutil.Array)
		if !ok {
			continue
		}
		index, err := constraintIndexByName(names, name)
		if err != nil {
			return nil, err
		}
		t := &skeldata.IkConstraintTimeline{ConstraintIndex: index}
		t.ValueFrames.Stride = 3

		frames := make([]float32, 0, len(arr)*3)
		for i, item := range arr {
			fo, ok := item.(domutil.Object)
			if !ok {
				return nil, errf("ik constraint timeline", "entry %d is not an object", i)
			}
			bend := int8(1)
			if !domutil.Bool(fo, "bendPositive", true) {
				bend = -1
			}
			t.Flags = append(t.Flags, skeldata.IkConstraintFlags{
				BendDirection: bend,
				Compress:      domutil.Bool(fo, "compress", false),
				Stretch:       domutil.Bool(fo, "stretch", false),
			})
			frames = append(frames,
				domutil.Float(fo, "time", 0),
				domutil.Float(fo, "mix", 1),
				domutil.Float(fo, "softness", 0)*scale,
			)
			if i == len(arr)-1 {
				continue
			}
			appendCurveGap(&t.Curves, fo, scale)
		}
		t.Frames = frames
		out = append(out, t)
	}
	return out, nil
}

// readTransformConstraintTimelinesJSON decodes the "transform" section.
func readTransformConstraintTimelinesJSON(root domutil.Object, dialect binshared.Dialect, constraints []*skeldata.TransformConstraint) ([]skeldata.Timeline, error) {
	obj, _ := domutil.Obj(root, "transform")
	names := transformNames(constraints)
	var out []skeldata.Timeline
	for name, v := range obj {
		arr, ok := v.(domutil.Array)
		if !ok {
			continue
		}
		index, err := constraintIndexByName(names, name)
		if err != nil {
			return nil, err
		}
		var vf skeldata.ValueFrames
		if dialect.Legacy38 {
			vf, err = readBroadcastCurveFrames(arr, []string{"rotateMix", "translateMix", "scaleMix", "shearMix"}, []int{0, 1, 1, 2, 2, 3})
		} else {
			vf, err = readCurveFrames(arr, []channelSpec{
				{"mixRotate", 1}, {"mixX", 1}, {"mixY", 1}, {"mixScaleX", 1}, {"mixScaleY", 1}, {"mixShearY", 1},
			}, 1)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, &skeldata.TransformConstraintTimeline{ConstraintIndex: index, ValueFrames: vf})
	}
	return out, nil
}

// readPathConstraintTimelinesJSON decodes the "path" section
// (constraintName -> kind -> frame array).
func readPathConstraintTimelinesJSON(root domutil.Object, dialect binshared.Dialect, scale float32, constraints []*skeldata.PathConstraint) ([]skeldata.Timeline, error) {
	obj, _ := domutil.Obj(root, "path")
	names := pathNames(constraints)
	var out []skeldata.Timeline
	for name, v := range obj {
		kinds, ok := v.(domutil.Object)
		if !ok {
			continue
		}
		index, err := constraintIndexByName(names, name)
		if err != nil {
			return nil, err
		}
		pc := constraints[index]

		if arr, ok := domutil.Arr(kinds, "position"); ok {
			s := float32(1)
			if pc.PositionMode == skeldata.PositionFixed {
				s = scale
			}
			vf, err := readCurveFrames(arr, []channelSpec{{"value", s}}, s)
			if err != nil {
				return nil, err
			}
			out = append(out, &skeldata.PathConstraintPositionTimeline{ConstraintIndex: index, ValueFrames: vf})
		}
		if arr, ok := domutil.Arr(kinds, "spacing"); ok {
			s := float32(1)
			if pc.SpacingMode == skeldata.SpacingLength || pc.SpacingMode == skeldata.SpacingFixed {
				s = scale
			}
			vf, err := readCurveFrames(arr, []channelSpec{{"value", s}}, s)
			if err != nil {
				return nil, err
			}
			out = append(out, &skeldata.PathConstraintSpacingTimeline{ConstraintIndex: index, ValueFrames: vf})
		}
		if arr, ok := domutil.Arr(kinds, "mix"); ok {
			var vf skeldata.ValueFrames
			if dialect.Legacy38 {
				vf, err = readBroadcastCurveFrames(arr, []string{"rotateMix", "translateMix"}, []int{0, 1, 1})
			} else {
				vf, err = readCurveFrames(arr, []channelSpec{{"mixRotate", 1}, {"mixX", 1}, {"mixY", 1}}, 1)
			}
			if err != nil {
				return nil, err
			}
			out = append(out, &skeldata.PathConstraintMixTimeline{ConstraintIndex: index, ValueFrames: vf})
		}
	}
	return out, nil
}

// readPhysicsConstraintTimelinesJSON decodes the 4.2-only "physics" section
// (constraintName -> kind -> frame array, "" meaning "all constraints").
func readPhysicsConstraintTimelinesJSON(root domutil.Object, constraints []*skeldata.PhysicsConstraint) ([]skeldata.Timeline, error) {
	obj, _ := domutil.Obj(root, "physics")
	names := physicsNames(constraints)
	var out []skeldata.Timeline
	for name, v := range obj {
		kinds, ok := v.(domutil.Object)
		if !ok {
			continue
		}
		index := -1
		if name != "" {
			var err error
			index, err = constraintIndexByName(names, name)
			if err != nil {
				return nil, err
			}
		}

		kindKeys := map[string]skeldata.PhysicsKind{
			"inertia": skeldata.PhysicsInertia, "strength": skeldata.PhysicsStrength,
			"damping": skeldata.PhysicsDamping, "mass": skeldata.PhysicsMass,
			"wind": skeldata.PhysicsWind, "gravity": skeldata.PhysicsGravity, "mix": skeldata.PhysicsMix,
		}
		for key, kind := range kindKeys {
			arr, ok := domutil.Arr(kinds, key)
			if !ok {
				continue
			}
			vf, err := readCurveFrames(arr, []channelSpec{{"value", 1}}, 1)
			if err != nil {
				return nil, err
			}
			out = append(out, &skeldata.PhysicsConstraintTimeline{ConstraintIndex: index, Kind: kind, ValueFrames: vf})
		}
		if arr, ok := domutil.Arr(kinds, "reset"); ok {
			times := make([]float32, 0, len(arr))
			for i, item := range arr {
				fo, ok := item.(domutil.Object)
				if !ok {
					return nil, errf("physics reset timeline", "entry %d is not an object", i)
				}
				times = append(times, domutil.Float(fo, "time", 0))
			}
			out = append(out, &skeldata.PhysicsConstraintTimeline{ConstraintIndex: index, Kind: skeldata.PhysicsReset, ResetTimes: times})
		}
	}
	return out, nil
}

var sequenceModeNames = map[string]int32{
	"hold": 0, "once": 1, "loop": 2, "pingpong": 3, "random": 4,
	"onceReverse": 5, "loopReverse": 6, "pingpongReverse": 7,
}

// readDeformTimelinesJSON decodes the "deform" section: skinName ->
// slotName -> attachmentName -> frame array (or, when dialect.HasSequence,
// an object carrying "deform" and/or "sequence" frame arrays).
func readDeformTimelinesJSON(root domutil.Object, dialect binshared.Dialect, scale float32, skins []*skeldata.Skin, slots []*skeldata.Slot) ([]skeldata.Timeline, error) {
	obj, _ := domutil.Obj(root, "deform")
	var out []skeldata.Timeline
	for skinName, v := range obj {
		slotsObj, ok := v.(domutil.Object)
		if !ok {
			continue
		}
		skin := findSkinByName(skins, skinName)
		if skin == nil {
			return nil, errf("deform timeline skin", "unknown skin %q", skinName)
		}
		for slotName, sv := range slotsObj {
			attachmentsObj, ok := sv.(domutil.Object)
			if !ok {
				continue
			}
			slotIndex, err := slotIndexByName(slots, slotName)
			if err != nil {
				return nil, err
			}
			for attachmentName, av := range attachmentsObj {
				attachment := skin.GetAttachment(slotIndex, attachmentName)
				if attachment == nil {
					return nil, errf("deform timeline", "attachment not found: %s", attachmentName)
				}
				mesh, ok := attachment.(*skeldata.MeshAttachment)
				if !ok {
					return nil, errf("deform timeline", "attachment not found: %s", attachmentName)
				}

				if dialect.HasSequence {
					body, ok := av.(domutil.Object)
					if !ok {
						return nil, errf("deform timeline", "attachment %q body is not an object", attachmentName)
					}
					if arr, ok := domutil.Arr(body, "deform"); ok {
						dt, err := readOneDeformTimelineJSON(arr, scale, slotIndex, mesh)
						if err != nil {
							return nil, err
						}
						out = append(out, dt)
					}
					if arr, ok := domutil.Arr(body, "sequence"); ok {
						st, err := readSequenceTimelineJSON(arr, slotIndex, attachmentName)
						if err != nil {
							return nil, err
						}
						out = append(out, st)
					}
					continue
				}

				arr, ok := av.(domutil.Array)
				if !ok {
					return nil, errf("deform timeline", "attachment %q frames is not an array", attachmentName)
				}
				dt, err := readOneDeformTimelineJSON(arr, scale, slotIndex, mesh)
				if err != nil {
					return nil, err
				}
				out = append(out, dt)
			}
		}
	}
	return out, nil
}

func findSkinByName(skins []*skeldata.Skin, name string) *skeldata.Skin {
	for _, s := range skins {
		if s.Name == name {
			return s
		}
	}
	return nil
}

func readOneDeformTimelineJSON(arr domutil.Array, scale float32, slotIndex int, mesh *skeldata.MeshAttachment) (*skeldata.DeformTimeline, error) {
	deformLength := len(mesh.UVs)
	weighted := mesh.Vertices.Weighted
	setup := mesh.Vertices.SetupVertices

	t := &skeldata.DeformTimeline{SlotIndex: slotIndex, Attachment: mesh}
	for i, item := range arr {
		fo, ok := item.(domutil.Object)
		if !ok {
			return nil, errf("deform timeline", "entry %d is not an object", i)
		}
		time := domutil.Float(fo, "time", 0)
		verticesArr, hasVertices := domutil.Arr(fo, "vertices")

		var deform []float32
		if !hasVertices {
			if weighted {
				deform = make([]float32, deformLength)
			} else {
				deform = append([]float32(nil), setup...)
			}
		} else {
			start := domutil.Int(fo, "offset", 0)
			deform = make([]float32, deformLength)
			values := domutil.FloatArray(verticesArr, scale)
			copy(deform[start:], values)
			if !weighted {
				for v := range deform {
					deform[v] += setup[v]
				}
			}
		}
		t.Frames = append(t.Frames, skeldata.DeformFrame{Time: time, Vertices: deform})
		if i == len(arr)-1 {
			continue
		}
		appendCurveGap(&t.Curves, fo, 1)
	}
	return t, nil
}

func readSequenceTimelineJSON(arr domutil.Array, slotIndex int, attachmentName string) (*skeldata.SequenceTimeline, error) {
	t := &skeldata.SequenceTimeline{SlotIndex: slotIndex, AttachmentName: attachmentName}
	for i, item := range arr {
		fo, ok := item.(domutil.Object)
		if !ok {
			return nil, errf("sequence timeline", "entry %d is not an object", i)
		}
		t.Frames = append(t.Frames, skeldata.SequenceFrame{
			Time:  domutil.Float(fo, "time", 0),
			Mode:  sequenceModeNames[domutil.Str(fo, "mode", "hold")],
			Index: int32(domutil.Int(fo, "index", 0)),
			Delay: domutil.Float(fo, "delay", 0),
		})
	}
	return t, nil
}

// readDrawOrderTimelineJSON decodes the "drawOrder" array, reconstructing
// each frame's permutation with the same offset-walking algorithm the
// binary reader uses, substituting a by-name slot lookup for the binary
// cursor's sequential index reads.
func readDrawOrderTimelineJSON(root domutil.Object, slots []*skeldata.Slot) (*skeldata.DrawOrderTimeline, error) {
	arr, ok := domutil.Arr(root, "drawOrder")
	if !ok || len(arr) == 0 {
		return nil, nil
	}
	slotCount := len(slots)

	t := &skeldata.DrawOrderTimeline{Frames: make([]skeldata.DrawOrderFrame, len(arr))}
	for i, item := range arr {
		fo, ok := item.(domutil.Object)
		if !ok {
			return nil, errf("draw order timeline", "entry %d is not an object", i)
		}
		time := domutil.Float(fo, "time", 0)
		offsetsArr, _ := domutil.Arr(fo, "offsets")

		drawOrder := make([]int32, slotCount)
		for s := range drawOrder {
			drawOrder[s] = -1
		}
		unchanged := make([]int32, 0, slotCount-len(offsetsArr))

		var originalIndex int32
		for _, item := range offsetsArr {
			eo, ok := item.(domutil.Object)
			if !ok {
				continue
			}
			slotIndex, err := slotIndexByName(slots, domutil.Str(eo, "slot", ""))
			if err != nil {
				return nil, err
			}
			for originalIndex != int32(slotIndex) {
				unchanged = append(unchanged, originalIndex)
				originalIndex++
			}
			offset := int32(domutil.Int(eo, "offset", 0))
			drawOrder[originalIndex+offset] = originalIndex
			originalIndex++
		}
		for originalIndex < int32(slotCount) {
			unchanged = append(unchanged, originalIndex)
			originalIndex++
		}

		for s := slotCount - 1; s >= 0; s-- {
			if drawOrder[s] == -1 {
				drawOrder[s] = unchanged[len(unchanged)-1]
				unchanged = unchanged[:len(unchanged)-1]
			}
		}

		t.Frames[i] = skeldata.DrawOrderFrame{Time: time, DrawOrder: drawOrder}
	}
	return t, nil
}

// readEventTimelineJSON decodes the "events" array, resolving each frame's
// definition by name (JSON has no string-intern table to index into).
func readEventTimelineJSON(root domutil.Object, data *skeldata.SkeletonData) (*skeldata.EventTimeline, error) {
	arr, ok := domutil.Arr(root, "events")
	if !ok || len(arr) == 0 {
		return nil, nil
	}

	t := &skeldata.EventTimeline{Frames: make([]skeldata.EventFrame, len(arr))}
	for i, item := range arr {
		fo, ok := item.(domutil.Object)
		if !ok {
			return nil, errf("event timeline", "entry %d is not an object", i)
		}
		def := data.FindEventData(domutil.Str(fo, "name", ""))
		if def == nil {
			return nil, errf("event timeline", "unknown event %q", domutil.Str(fo, "name", ""))
		}
		frame := skeldata.EventFrame{
			Time:  domutil.Float(fo, "time", 0),
			Data:  def,
			Int:   int32(domutil.Int(fo, "int", int(def.Int))),
			Float: domutil.Float(fo, "float", def.Float),
			Str:   domutil.Str(fo, "string", def.Str),
		}
		if def.AudioPath != "" {
			frame.Volume = domutil.Float(fo, "volume", 1)
			frame.Balance = domutil.Float(fo, "balance", 0)
		}
		t.Frames[i] = frame
	}
	return t, nil
}
