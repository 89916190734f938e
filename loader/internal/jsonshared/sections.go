package jsonshared

import (
	"strconv"

	"github.com/duskforge/skelasset/internal/domutil"
	"github.com/duskforge/skelasset/loader/internal/binshared"
	"github.com/duskforge/skelasset/skeldata"
)

// parseColor narrows a hex color string ("rrggbb" or "rrggbbaa") to a
// [4]float32, defaulting to opaque white when absent or malformed — the
// same default every Spine JSON color field carries.
func parseColor(s string) [4]float32 {
	if len(s) != 6 && len(s) != 8 {
		return [4]float32{1, 1, 1, 1}
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return [4]float32{1, 1, 1, 1}
	}
	if len(s) == 6 {
		return [4]float32{
			float32(v>>16&0xff) / 255,
			float32(v>>8&0xff) / 255,
			float32(v&0xff) / 255,
			1,
		}
	}
	return [4]float32{
		float32(v>>24&0xff) / 255,
		float32(v>>16&0xff) / 255,
		float32(v>>8&0xff) / 255,
		float32(v&0xff) / 255,
	}
}

var inheritNames = map[string]skeldata.Inherit{
	"normal":                skeldata.InheritNormal,
	"onlyTranslation":       skeldata.InheritOnlyTranslation,
	"noRotationOrReflection": skeldata.InheritNoRotationOrReflection,
	"noScale":               skeldata.InheritNoScale,
	"noScaleOrReflection":   skeldata.InheritNoScaleOrReflection,
}

// readBones decodes the "bones" array (spec.md §4.3).
func readBones(root domutil.Object, scale float32) ([]*skeldata.Bone, error) {
	arr, _ := domutil.Arr(root, "bones")
	bones := make([]*skeldata.Bone, 0, len(arr))
	byName := map[string]*skeldata.Bone{}
	for i, item := range arr {
		o, ok := item.(domutil.Object)
		if !ok {
			return nil, errf("bone", "entry %d is not an object", i)
		}
		b := &skeldata.Bone{
			Name:    domutil.Str(o, "name", ""),
			Rotation: domutil.Float(o, "rotation", 0),
			X:        domutil.Float(o, "x", 0) * scale,
			Y:        domutil.Float(o, "y", 0) * scale,
			ScaleX:   domutil.Float(o, "scaleX", 1),
			ScaleY:   domutil.Float(o, "scaleY", 1),
			ShearX:   domutil.Float(o, "shearX", 0),
			ShearY:   domutil.Float(o, "shearY", 0),
			Length:   domutil.Float(o, "length", 0) * scale,
			SkinRequired: domutil.Bool(o, "skin", false),
		}
		if parentName := domutil.Str(o, "parent", ""); parentName != "" {
			parent, ok := byName[parentName]
			if !ok {
				return nil, errf("bone parent", "bone %q references unknown parent %q", b.Name, parentName)
			}
			b.Parent = parent
		}
		if inh, ok := inheritNames[domutil.Str(o, "inherit", "normal")]; ok {
			b.Inherit = inh
		}
		if colorStr := domutil.Str(o, "color", ""); colorStr != "" {
			c := parseColor(colorStr)
			b.Color = &skeldata.Color{R: c[0], G: c[1], B: c[2], A: c[3]}
		}
		byName[b.Name] = b
		bones = append(bones, b)
	}
	return bones, nil
}

func findBone(bones []*skeldata.Bone, name string) (*skeldata.Bone, error) {
	for _, b := range bones {
		if b.Name == name {
			return b, nil
		}
	}
	return nil, errf("bone reference", "unknown bone %q", name)
}

func findSlot(slots []*skeldata.Slot, name string) (*skeldata.Slot, error) {
	for _, s := range slots {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, errf("slot reference", "unknown slot %q", name)
}

// readSlots decodes the "slots" array.
func readSlots(root domutil.Object, bones []*skeldata.Bone) ([]*skeldata.Slot, error) {
	arr, _ := domutil.Arr(root, "slots")
	slots := make([]*skeldata.Slot, 0, len(arr))
	for i, item := range arr {
		o, ok := item.(domutil.Object)
		if !ok {
			return nil, errf("slot", "entry %d is not an object", i)
		}
		bone, err := findBone(bones, domutil.Str(o, "bone", ""))
		if err != nil {
			return nil, err
		}
		s := &skeldata.Slot{Name: domutil.Str(o, "name", ""), Bone: bone}

		rgba := parseColor(domutil.Str(o, "color", "ffffffff"))
		s.Color = skeldata.Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}

		if darkStr := domutil.Str(o, "dark", ""); darkStr != "" {
			dark := parseColor(darkStr)
			s.DarkColor = &skeldata.Color{R: dark[0], G: dark[1], B: dark[2], A: 1}
		}

		s.AttachmentName = domutil.Str(o, "attachment", "")
		s.Blend = blendModeNames[domutil.Str(o, "blend", "normal")]

		slots = append(slots, s)
	}
	return slots, nil
}

var blendModeNames = map[string]skeldata.BlendMode{
	"normal":   skeldata.BlendNormal,
	"additive": skeldata.BlendAdditive,
	"multiply": skeldata.BlendMultiply,
	"screen":   skeldata.BlendScreen,
}

func readConstraintBones(arr domutil.Array, bones []*skeldata.Bone) ([]*skeldata.Bone, error) {
	out := make([]*skeldata.Bone, 0, len(arr))
	for _, item := range arr {
		name, ok := item.(string)
		if !ok {
			continue
		}
		b, err := findBone(bones, name)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// readIkConstraints decodes the "ik" array.
func readIkConstraints(root domutil.Object, bones []*skeldata.Bone) ([]*skeldata.IkConstraint, error) {
	arr, _ := domutil.Arr(root, "ik")
	out := make([]*skeldata.IkConstraint, 0, len(arr))
	for i, item := range arr {
		o, ok := item.(domutil.Object)
		if !ok {
			return nil, errf("ik constraint", "entry %d is not an object", i)
		}
		c := &skeldata.IkConstraint{
			Name:     domutil.Str(o, "name", ""),
			Order:    int32(domutil.Int(o, "order", 0)),
			SkinRequired: domutil.Bool(o, "skin", false),
			Mix:      domutil.Float(o, "mix", 1),
			Softness: domutil.Float(o, "softness", 0),
			Compress: domutil.Bool(o, "compress", false),
			Stretch:  domutil.Bool(o, "stretch", false),
			Uniform:  domutil.Bool(o, "uniform", false),
		}
		if domutil.Bool(o, "bendPositive", true) {
			c.BendDirection = 1
		} else {
			c.BendDirection = -1
		}
		boneArr, _ := domutil.Arr(o, "bones")
		cb, err := readConstraintBones(boneArr, bones)
		if err != nil {
			return nil, err
		}
		c.Bones = cb
		target, err := findBone(bones, domutil.Str(o, "target", ""))
		if err != nil {
			return nil, err
		}
		c.Target = target
		out = append(out, c)
	}
	return out, nil
}

// readTransformConstraints decodes the "transform" array, branching on
// dialect.Legacy38 exactly as the binary reader does: 3.8 stores a single
// translateMix/scaleMix pair, broadcast into the axis-specific fields.
func readTransformConstraints(root domutil.Object, dialect binshared.Dialect, scale float32, bones []*skeldata.Bone) ([]*skeldata.TransformConstraint, error) {
	arr, _ := domutil.Arr(root, "transform")
	out := make([]*skeldata.TransformConstraint, 0, len(arr))
	for i, item := range arr {
		o, ok := item.(domutil.Object)
		if !ok {
			return nil, errf("transform constraint", "entry %d is not an object", i)
		}
		c := &skeldata.TransformConstraint{
			Name:         domutil.Str(o, "name", ""),
			Order:        int32(domutil.Int(o, "order", 0)),
			SkinRequired: domutil.Bool(o, "skin", false),
			LocalValues:    domutil.Bool(o, "local", false),
			RelativeValues: domutil.Bool(o, "relative", false),
			OffsetRotation: domutil.Float(o, "rotation", 0),
			OffsetX:        domutil.Float(o, "x", 0) * scale,
			OffsetY:        domutil.Float(o, "y", 0) * scale,
			OffsetScaleX:   domutil.Float(o, "scaleX", 0),
			OffsetScaleY:   domutil.Float(o, "scaleY", 0),
			OffsetShearY:   domutil.Float(o, "shearY", 0),
		}
		boneArr, _ := domutil.Arr(o, "bones")
		cb, err := readConstraintBones(boneArr, bones)
		if err != nil {
			return nil, err
		}
		c.Bones = cb
		target, err := findBone(bones, domutil.Str(o, "target", ""))
		if err != nil {
			return nil, err
		}
		c.Target = target

		if dialect.Legacy38 {
			translateMix := domutil.Float(o, "translateMix", 1)
			scaleMix := domutil.Float(o, "scaleMix", 1)
			c.MixRotate = domutil.Float(o, "rotateMix", 1)
			c.MixX = translateMix
			c.MixY = translateMix
			c.MixScaleX = scaleMix
			c.MixScaleY = scaleMix
			c.MixShearY = domutil.Float(o, "shearMix", 1)
		} else {
			c.MixRotate = domutil.Float(o, "mixRotate", 1)
			c.MixX = domutil.Float(o, "mixX", 1)
			c.MixY = domutil.Float(o, "mixY", 1)
			c.MixScaleX = domutil.Float(o, "mixScaleX", 1)
			c.MixScaleY = domutil.Float(o, "mixScaleY", 1)
			c.MixShearY = domutil.Float(o, "mixShearY", 1)
		}
		out = append(out, c)
	}
	return out, nil
}

var positionModeNames = map[string]skeldata.PositionMode{"fixed": skeldata.PositionFixed, "percent": skeldata.PositionPercent}
var spacingModeNames = map[string]skeldata.SpacingMode{
	"length": skeldata.SpacingLength, "fixed": skeldata.SpacingFixed,
	"percent": skeldata.SpacingPercent, "proportional": skeldata.SpacingProportional,
}
var rotateModeNames = map[string]skeldata.RotateMode{
	"tangent": skeldata.RotateTangent, "chain": skeldata.RotateChain, "chainScale": skeldata.RotateChainScale,
}

// readPathConstraints decodes the "path" array.
func readPathConstraints(root domutil.Object, scale float32, bones []*skeldata.Bone, slots []*skeldata.Slot) ([]*skeldata.PathConstraint, error) {
	arr, _ := domutil.Arr(root, "path")
	out := make([]*skeldata.PathConstraint, 0, len(arr))
	for i, item := range arr {
		o, ok := item.(domutil.Object)
		if !ok {
			return nil, errf("path constraint", "entry %d is not an object", i)
		}
		c := &skeldata.PathConstraint{
			Name:         domutil.Str(o, "name", ""),
			Order:        int32(domutil.Int(o, "order", 0)),
			SkinRequired: domutil.Bool(o, "skin", false),
			OffsetRotation: domutil.Float(o, "rotation", 0),
			MixRotate: domutil.Float(o, "mixRotate", 1),
			MixX:      domutil.Float(o, "mixX", 1),
			MixY:      domutil.Float(o, "mixY", 1),
		}
		c.PositionMode = positionModeNames[domutil.Str(o, "positionMode", "percent")]
		c.SpacingMode = spacingModeNames[domutil.Str(o, "spacingMode", "length")]
		c.RotateMode = rotateModeNames[domutil.Str(o, "rotateMode", "tangent")]

		boneArr, _ := domutil.Arr(o, "bones")
		cb, err := readConstraintBones(boneArr, bones)
		if err != nil {
			return nil, err
		}
		c.Bones = cb
		target, err := findSlot(slots, domutil.Str(o, "target", ""))
		if err != nil {
			return nil, err
		}
		c.Target = target

		c.Position = domutil.Float(o, "position", 0)
		if c.PositionMode == skeldata.PositionFixed {
			c.Position *= scale
		}
		c.Spacing = domutil.Float(o, "spacing", 0)
		if c.SpacingMode == skeldata.SpacingLength || c.SpacingMode == skeldata.SpacingFixed {
			c.Spacing *= scale
		}
		out = append(out, c)
	}
	return out, nil
}

// readPhysicsConstraints decodes the 4.2-only "physics" array.
func readPhysicsConstraints(root domutil.Object, bones []*skeldata.Bone) ([]*skeldata.PhysicsConstraint, error) {
	arr, _ := domutil.Arr(root, "physics")
	out := make([]*skeldata.PhysicsConstraint, 0, len(arr))
	for i, item := range arr {
		o, ok := item.(domutil.Object)
		if !ok {
			return nil, errf("physics constraint", "entry %d is not an object", i)
		}
		bone, err := findBone(bones, domutil.Str(o, "bone", ""))
		if err != nil {
			return nil, err
		}
		c := &skeldata.PhysicsConstraint{
			Name:         domutil.Str(o, "name", ""),
			Order:        int32(domutil.Int(o, "order", 0)),
			SkinRequired: domutil.Bool(o, "skin", false),
			Bone:         bone,
			Inertia:  domutil.Float(o, "inertia", 1),
			Strength: domutil.Float(o, "strength", 100),
			Damping:  domutil.Float(o, "damping", 1),
			Mass:     domutil.Float(o, "mass", 1),
			Wind:     domutil.Float(o, "wind", 0),
			Gravity:  domutil.Float(o, "gravity", 0),
			Mix:      domutil.Float(o, "mix", 1),
			Reset:    true,
		}
		out = append(out, c)
	}
	return out, nil
}
