package binshared

import (
	"github.com/duskforge/skelasset/internal/wire"
	"github.com/duskforge/skelasset/skeldata"
)

// readAnimation decodes one named animation's full timeline set (spec.md
// §4.5), in the section order the format stores them: slot, bone, IK,
// transform-constraint, path-constraint, physics-constraint (4.2 only),
// deform, draw-order, event.
func readAnimation(cur *wire.Cursor, dialect Dialect, scale float32, data *skeldata.SkeletonData, name string, strings []string) (*skeldata.Animation, error) {
	if _, err := cur.Varint("animation timeline count", true); err != nil {
		return nil, err
	}

	anim := &skeldata.Animation{Name: name}

	slotTimelines, err := readSlotTimelines(cur, dialect, strings)
	if err != nil {
		return nil, err
	}
	anim.Timelines = append(anim.Timelines, slotTimelines...)

	boneTimelines, err := readBoneTimelines(cur, dialect, scale)
	if err != nil {
		return nil, err
	}
	anim.Timelines = append(anim.Timelines, boneTimelines...)

	ikTimelines, err := readIkConstraintTimelines(cur, dialect, scale)
	if err != nil {
		return nil, err
	}
	anim.Timelines = append(anim.Timelines, ikTimelines...)

	transformTimelines, err := readTransformConstraintTimelines(cur, dialect)
	if err != nil {
		return nil, err
	}
	anim.Timelines = append(anim.Timelines, transformTimelines...)

	pathTimelines, err := readPathConstraintTimelines(cur, dialect, scale, data.PathConstraints)
	if err != nil {
		return nil, err
	}
	anim.Timelines = append(anim.Timelines, pathTimelines...)

	if dialect.HasPhysicsConstraints {
		physicsTimelines, err := readPhysicsConstraintTimelines(cur, scale)
		if err != nil {
			return nil, err
		}
		anim.Timelines = append(anim.Timelines, physicsTimelines...)
	}

	deformTimelines, err := readDeformTimelines(cur, dialect, scale, data.Skins, strings)
	if err != nil {
		return nil, err
	}
	anim.Timelines = append(anim.Timelines, deformTimelines...)

	drawOrder, err := readDrawOrderTimeline(cur, len(data.Slots))
	if err != nil {
		return nil, err
	}
	if drawOrder != nil {
		anim.Timelines = append(anim.Timelines, drawOrder)
	}

	event, err := readEventTimeline(cur, data.Events)
	if err != nil {
		return nil, err
	}
	if event != nil {
		anim.Timelines = append(anim.Timelines, event)
	}

	anim.ComputeDuration()
	return anim, nil
}

func readSlotTimelines(cur *wire.Cursor, dialect Dialect, strings []string) ([]skeldata.Timeline, error) {
	n, err := cur.Varint("slot timeline slots count", true)
	if err != nil {
		return nil, err
	}
	var out []skeldata.Timeline
	for i := int32(0); i < n; i++ {
		slotIndex, err := cur.Varint("slot timeline slot index", true)
		if err != nil {
			return nil, err
		}
		nn, err := cur.Varint("slot timeline count", true)
		if err != nil {
			return nil, err
		}
		for j := int32(0); j < nn; j++ {
			kind, err := cur.Byte("slot timeline kind")
			if err != nil {
				return nil, err
			}
			frameCount, err := cur.Varint("slot timeline frame count", true)
			if err != nil {
				return nil, err
			}

			switch kind {
			case slotTimelineAttachment:
				t := &skeldata.AttachmentTimeline{SlotIndex: int(slotIndex)}
				for f := int32(0); f < frameCount; f++ {
					time, err := cur.Float32("attachment timeline time")
					if err != nil {
						return nil, err
					}
					nameStr, err := cur.StringRef("attachment timeline name", strings)
					if err != nil {
						return nil, err
					}
					t.Frames = append(t.Frames, skeldata.AttachmentFrame{Time: time, Name: nameStr, HasName: nameStr != ""})
				}
				out = append(out, t)

			case slotTimelineRGBA:
				t := &skeldata.RGBATimeline{SlotIndex: int(slotIndex)}
				if dialect.Legacy38 {
					if t.ValueFrames, err = readLegacyPackedColor(cur, "slot rgba timeline", frameCount); err != nil {
						return nil, err
					}
				} else {
					if err := bezierCountPrefix(cur, dialect); err != nil {
						return nil, err
					}
					if t.ValueFrames, err = readColorCurve(cur, "slot rgba timeline", frameCount, 4); err != nil {
						return nil, err
					}
				}
				out = append(out, t)

			case slotTimelineRGB:
				if dialect.Legacy38 {
					// 3.8's tag 2 is SLOT_TWO_COLOR (7 channels), not a
					// 3-channel RGB timeline.
					t := &skeldata.RGBA2Timeline{SlotIndex: int(slotIndex)}
					if t.ValueFrames, err = readLegacyPackedColor2(cur, "slot rgb2 timeline", frameCount); err != nil {
						return nil, err
					}
					out = append(out, t)
					continue
				}
				t := &skeldata.RGBTimeline{SlotIndex: int(slotIndex)}
				if err := bezierCountPrefix(cur, dialect); err != nil {
					return nil, err
				}
				if t.ValueFrames, err = readColorCurve(cur, "slot rgb timeline", frameCount, 3); err != nil {
					return nil, err
				}
				out = append(out, t)

			case slotTimelineRGBA2:
				t := &skeldata.RGBA2Timeline{SlotIndex: int(slotIndex)}
				if err := bezierCountPrefix(cur, dialect); err != nil {
					return nil, err
				}
				if t.ValueFrames, err = readColorCurve(cur, "slot rgba2 timeline", frameCount, 7); err != nil {
					return nil, err
				}
				out = append(out, t)

			case slotTimelineRGB2:
				t := &skeldata.RGB2Timeline{SlotIndex: int(slotIndex)}
				if err := bezierCountPrefix(cur, dialect); err != nil {
					return nil, err
				}
				if t.ValueFrames, err = readColorCurve(cur, "slot rgb2 timeline", frameCount, 6); err != nil {
					return nil, err
				}
				out = append(out, t)

			case slotTimelineAlpha:
				t := &skeldata.AlphaTimeline{SlotIndex: int(slotIndex)}
				if err := bezierCountPrefix(cur, dialect); err != nil {
					return nil, err
				}
				if t.ValueFrames, err = readColorCurve(cur, "slot alpha timeline", frameCount, 1); err != nil {
					return nil, err
				}
				out = append(out, t)

			default:
				return nil, errf("slot timeline kind", "unknown slot timeline kind tag %d", kind)
			}
		}
	}
	return out, nil
}

func readBoneTimelines(cur *wire.Cursor, dialect Dialect, scale float32) ([]skeldata.Timeline, error) {
	n, err := cur.Varint("bone timeline bones count", true)
	if err != nil {
		return nil, err
	}
	var out []skeldata.Timeline
	for i := int32(0); i < n; i++ {
		boneIndex, err := cur.Varint("bone timeline bone index", true)
		if err != nil {
			return nil, err
		}
		nn, err := cur.Varint("bone timeline count", true)
		if err != nil {
			return nil, err
		}
		for j := int32(0); j < nn; j++ {
			kind, err := cur.Byte("bone timeline kind")
			if err != nil {
				return nil, err
			}
			frameCount, err := cur.Varint("bone timeline frame count", true)
			if err != nil {
				return nil, err
			}
			if kind == boneTimelineInherit {
				if !dialect.HasInheritTimeline {
					return nil, errf("bone timeline kind", "inherit timeline not supported by %s", dialect.Name)
				}
				t := &skeldata.InheritTimeline{BoneIndex: int(boneIndex)}
				for f := int32(0); f < frameCount; f++ {
					time, err := cur.Float32("inherit timeline time")
					if err != nil {
						return nil, err
					}
					v, err := cur.Varint("inherit timeline value", true)
					if err != nil {
						return nil, err
					}
					t.Frames = append(t.Frames, skeldata.InheritFrame{Time: time, Inherit: skeldata.Inherit(v)})
				}
				out = append(out, t)
				continue
			}

			if err := bezierCountPrefix(cur, dialect); err != nil {
				return nil, err
			}

			switch kind {
			case boneTimelineRotate:
				vf, err := readCurveValues(cur, dialect, "bone rotate timeline", frameCount, ones(1))
				if err != nil {
					return nil, err
				}
				out = append(out, &skeldata.RotateTimeline{BoneIndex: int(boneIndex), ValueFrames: vf})
			case boneTimelineTranslate:
				vf, err := readCurveValues(cur, dialect, "bone translate timeline", frameCount, scaled(2, scale))
				if err != nil {
					return nil, err
				}
				out = append(out, &skeldata.TranslateTimeline{BoneIndex: int(boneIndex), ValueFrames: vf})
			case boneTimelineTranslateX:
				vf, err := readCurveValues(cur, dialect, "bone translateX timeline", frameCount, scaled(1, scale))
				if err != nil {
					return nil, err
				}
				out = append(out, &skeldata.TranslateXTimeline{BoneIndex: int(boneIndex), ValueFrames: vf})
			case boneTimelineTranslateY:
				vf, err := readCurveValues(cur, dialect, "bone translateY timeline", frameCount, scaled(1, scale))
				if err != nil {
					return nil, err
				}
				out = append(out, &skeldata.TranslateYTimeline{BoneIndex: int(boneIndex), ValueFrames: vf})
			case boneTimelineScale:
				vf, err := readCurveValues(cur, dialect, "bone scale timeline", frameCount, ones(2))
				if err != nil {
					return nil, err
				}
				out = append(out, &skeldata.ScaleTimeline{BoneIndex: int(boneIndex), ValueFrames: vf})
			case boneTimelineScaleX:
				vf, err := readCurveValues(cur, dialect, "bone scaleX timeline", frameCount, ones(1))
				if err != nil {
					return nil, err
				}
				out = append(out, &skeldata.ScaleXTimeline{BoneIndex: int(boneIndex), ValueFrames: vf})
			case boneTimelineScaleY:
				vf, err := readCurveValues(cur, dialect, "bone scaleY timeline", frameCount, ones(1))
				if err != nil {
					return nil, err
				}
				out = append(out, &skeldata.ScaleYTimeline{BoneIndex: int(boneIndex), ValueFrames: vf})
			case boneTimelineShear:
				vf, err := readCurveValues(cur, dialect, "bone shear timeline", frameCount, ones(2))
				if err != nil {
					return nil, err
				}
				out = append(out, &skeldata.ShearTimeline{BoneIndex: int(boneIndex), ValueFrames: vf})
			case boneTimelineShearX:
				vf, err := readCurveValues(cur, dialect, "bone shearX timeline", frameCount, ones(1))
				if err != nil {
					return nil, err
				}
				out = append(out, &skeldata.ShearXTimeline{BoneIndex: int(boneIndex), ValueFrames: vf})
			case boneTimelineShearY:
				vf, err := readCurveValues(cur, dialect, "bone shearY timeline", frameCount, ones(1))
				if err != nil {
					return nil, err
				}
				out = append(out, &skeldata.ShearYTimeline{BoneIndex: int(boneIndex), ValueFrames: vf})
			default:
				return nil, errf("bone timeline kind", "unknown bone timeline kind tag %d", kind)
			}
		}
	}
	return out, nil
}

// readIkConstraintTimelines decodes the IK timeline section. The
// bend-direction/compress/stretch flags are non-curved and read inline
// alongside the curved mix/softness channels, so it cannot reuse the
// generic curve helper.
func readIkConstraintTimelines(cur *wire.Cursor, dialect Dialect, scale float32) ([]skeldata.Timeline, error) {
	n, err := cur.Varint("ik constraint timeline count", true)
	if err != nil {
		return nil, err
	}
	out := make([]skeldata.Timeline, n)
	for i := int32(0); i < n; i++ {
		index, err := cur.Varint("ik constraint timeline index", true)
		if err != nil {
			return nil, err
		}
		frameCount, err := cur.Varint("ik constraint timeline frame count", true)
		if err != nil {
			return nil, err
		}
		if err := bezierCountPrefix(cur, dialect); err != nil {
			return nil, err
		}

		t := &skeldata.IkConstraintTimeline{ConstraintIndex: int(index)}
		t.ValueFrames.Stride = 3

		readFrameValues := func() (float32, float32, float32, error) {
			time, err := cur.Float32("ik timeline time")
			if err != nil {
				return 0, 0, 0, err
			}
			mix, err := cur.Float32("ik timeline mix")
			if err != nil {
				return 0, 0, 0, err
			}
			soft, err := cur.Float32("ik timeline softness")
			if err != nil {
				return 0, 0, 0, err
			}
			return time, mix, soft * scale, nil
		}

		time, mix, softness, err := readFrameValues()
		if err != nil {
			return nil, err
		}
		frameLast := frameCount - 1
		var frames []float32

		for frame := int32(0); ; frame++ {
			bend, err := cur.SByte("ik timeline bendDirection")
			if err != nil {
				return nil, err
			}
			compress, err := cur.Boolean("ik timeline compress")
			if err != nil {
				return nil, err
			}
			stretch, err := cur.Boolean("ik timeline stretch")
			if err != nil {
				return nil, err
			}
			t.Flags = append(t.Flags, skeldata.IkConstraintFlags{BendDirection: bend, Compress: compress, Stretch: stretch})
			frames = append(frames, time, mix, softness)

			if frame == frameLast {
				break
			}
			time2, mix2, softness2, err := readFrameValues()
			if err != nil {
				return nil, err
			}
			tag, err := cur.SByte("ik timeline curve tag")
			if err != nil {
				return nil, err
			}
			switch tag {
			case curveStepped:
				t.Curves.Types = append(t.Curves.Types, skeldata.CurveStepped)
			case curveBezier:
				t.Curves.Types = append(t.Curves.Types, skeldata.CurveBezier)
				bpMix, err := readBezierPoint(cur, "ik timeline bezier mix", 1)
				if err != nil {
					return nil, err
				}
				bpSoft, err := readBezierPoint(cur, "ik timeline bezier softness", scale)
				if err != nil {
					return nil, err
				}
				t.Curves.Beziers = append(t.Curves.Beziers, bpMix, bpSoft)
			default:
				t.Curves.Types = append(t.Curves.Types, skeldata.CurveLinear)
			}
			time, mix, softness = time2, mix2, softness2
		}

		t.Frames = frames
		out[i] = t
	}
	return out, nil
}

func readTransformConstraintTimelines(cur *wire.Cursor, dialect Dialect) ([]skeldata.Timeline, error) {
	n, err := cur.Varint("transform constraint timeline count", true)
	if err != nil {
		return nil, err
	}
	out := make([]skeldata.Timeline, n)
	for i := int32(0); i < n; i++ {
		index, err := cur.Varint("transform constraint timeline index", true)
		if err != nil {
			return nil, err
		}
		frameCount, err := cur.Varint("transform constraint timeline frame count", true)
		if err != nil {
			return nil, err
		}
		if err := bezierCountPrefix(cur, dialect); err != nil {
			return nil, err
		}
		var vf skeldata.ValueFrames
		if dialect.Legacy38 {
			// 3.8 wrote only (rotateMix, translateMix, scaleMix, shearMix)
			// per frame; translateMix and scaleMix are broadcast into the
			// X/Y pairs the 4.x format split out.
			vf, err = readBroadcastCurve(cur, "transform constraint timeline", frameCount, 4, []int{0, 1, 1, 2, 2, 3})
		} else {
			vf, err = readCurveValues(cur, dialect, "transform constraint timeline", frameCount, ones(6))
		}
		if err != nil {
			return nil, err
		}
		out[i] = &skeldata.TransformConstraintTimeline{ConstraintIndex: int(index), ValueFrames: vf}
	}
	return out, nil
}

func readPathConstraintTimelines(cur *wire.Cursor, dialect Dialect, scale float32, constraints []*skeldata.PathConstraint) ([]skeldata.Timeline, error) {
	n, err := cur.Varint("path constraint timeline constraints count", true)
	if err != nil {
		return nil, err
	}
	var out []skeldata.Timeline
	for i := int32(0); i < n; i++ {
		index, err := cur.Varint("path constraint timeline index", true)
		if err != nil {
			return nil, err
		}
		if int(index) < 0 || int(index) >= len(constraints) {
			return nil, errf("path constraint timeline index", "index %d out of range", index)
		}
		pc := constraints[index]

		nn, err := cur.Varint("path constraint timeline count", true)
		if err != nil {
			return nil, err
		}
		for j := int32(0); j < nn; j++ {
			kind, err := cur.SByte("path constraint timeline kind")
			if err != nil {
				return nil, err
			}
			frameCount, err := cur.Varint("path constraint timeline frame count", true)
			if err != nil {
				return nil, err
			}
			if err := bezierCountPrefix(cur, dialect); err != nil {
				return nil, err
			}

			switch kind {
			case pathTimelinePosition:
				s := float32(1)
				if pc.PositionMode == skeldata.PositionFixed {
					s = scale
				}
				vf, err := readCurveValues(cur, dialect, "path position timeline", frameCount, []float32{s})
				if err != nil {
					return nil, err
				}
				out = append(out, &skeldata.PathConstraintPositionTimeline{ConstraintIndex: int(index), ValueFrames: vf})
			case pathTimelineSpacing:
				s := float32(1)
				if pc.SpacingMode == skeldata.SpacingLength || pc.SpacingMode == skeldata.SpacingFixed {
					s = scale
				}
				vf, err := readCurveValues(cur, dialect, "path spacing timeline", frameCount, []float32{s})
				if err != nil {
					return nil, err
				}
				out = append(out, &skeldata.PathConstraintSpacingTimeline{ConstraintIndex: int(index), ValueFrames: vf})
			case pathTimelineMix:
				var vf skeldata.ValueFrames
				if dialect.Legacy38 {
					// 3.8 wrote only (rotateMix, translateMix); translateMix
					// broadcasts into both mixX and mixY.
					vf, err = readBroadcastCurve(cur, "path mix timeline", frameCount, 2, []int{0, 1, 1})
				} else {
					vf, err = readCurveValues(cur, dialect, "path mix timeline", frameCount, ones(3))
				}
				if err != nil {
					return nil, err
				}
				out = append(out, &skeldata.PathConstraintMixTimeline{ConstraintIndex: int(index), ValueFrames: vf})
			default:
				return nil, errf("path constraint timeline kind", "unknown path constraint timeline kind tag %d", kind)
			}
		}
	}
	return out, nil
}

// readPhysicsConstraintTimelines decodes the 4.2-only physics constraint
// timeline section. Reset carries no curve and no value, just a flat list
// of re-trigger times.
func readPhysicsConstraintTimelines(cur *wire.Cursor, scale float32) ([]skeldata.Timeline, error) {
	n, err := cur.Varint("physics constraint timeline constraints count", true)
	if err != nil {
		return nil, err
	}
	var out []skeldata.Timeline
	for i := int32(0); i < n; i++ {
		index, err := cur.Varint("physics constraint timeline index", true)
		if err != nil {
			return nil, err
		}
		constraintIndex := int(index) - 1

		nn, err := cur.Varint("physics constraint timeline count", true)
		if err != nil {
			return nil, err
		}
		for j := int32(0); j < nn; j++ {
			kind, err := cur.Byte("physics constraint timeline kind")
			if err != nil {
				return nil, err
			}
			frameCount, err := cur.Varint("physics constraint timeline frame count", true)
			if err != nil {
				return nil, err
			}

			if skeldata.PhysicsKind(kind) == skeldata.PhysicsReset {
				times := make([]float32, frameCount)
				for f := range times {
					t, err := cur.Float32("physics reset time")
					if err != nil {
						return nil, err
					}
					times[f] = t
				}
				out = append(out, &skeldata.PhysicsConstraintTimeline{
					ConstraintIndex: constraintIndex,
					Kind:            skeldata.PhysicsReset,
					ResetTimes:      times,
				})
				continue
			}

			bezierCount, err := cur.Varint("physics constraint timeline bezier count", true)
			if err != nil {
				return nil, err
			}
			_ = bezierCount

			vf, err := readCurveValues(cur, V42, "physics constraint timeline", frameCount, []float32{1})
			if err != nil {
				return nil, err
			}
			out = append(out, &skeldata.PhysicsConstraintTimeline{
				ConstraintIndex: constraintIndex,
				Kind:            skeldata.PhysicsKind(kind),
				ValueFrames:     vf,
			})
		}
	}
	return out, nil
}

// readDeformTimelines decodes the deform (and, on dialects carrying
// Sequence, per-attachment Sequence) timeline section (spec.md §4.5).
func readDeformTimelines(cur *wire.Cursor, dialect Dialect, scale float32, skins []*skeldata.Skin, strings []string) ([]skeldata.Timeline, error) {
	n, err := cur.Varint("deform timeline skins count", true)
	if err != nil {
		return nil, err
	}
	var out []skeldata.Timeline
	for i := int32(0); i < n; i++ {
		skinIndex, err := cur.Varint("deform timeline skin index", true)
		if err != nil {
			return nil, err
		}
		if int(skinIndex) < 0 || int(skinIndex) >= len(skins) {
			return nil, errf("deform timeline skin index", "index %d out of range", skinIndex)
		}
		skin := skins[skinIndex]

		nn, err := cur.Varint("deform timeline slots count", true)
		if err != nil {
			return nil, err
		}
		for j := int32(0); j < nn; j++ {
			slotIndex, err := cur.Varint("deform timeline slot index", true)
			if err != nil {
				return nil, err
			}
			nnn, err := cur.Varint("deform timeline attachments count", true)
			if err != nil {
				return nil, err
			}
			for k := int32(0); k < nnn; k++ {
				attachmentName, err := cur.StringRef("deform timeline attachment name", strings)
				if err != nil {
					return nil, err
				}
				attachment := skin.GetAttachment(int(slotIndex), attachmentName)
				if attachment == nil {
					return nil, errf("deform timeline", "Attachment not found: %s", attachmentName)
				}
				mesh, ok := attachment.(*skeldata.MeshAttachment)
				if !ok {
					return nil, errf("deform timeline", "Attachment not found: %s", attachmentName)
				}

				if dialect.HasSequence {
					kindCount, err := cur.Varint("deform/sequence timeline count", true)
					if err != nil {
						return nil, err
					}
					for m := int32(0); m < kindCount; m++ {
						kind, err := cur.Byte("deform/sequence timeline kind")
						if err != nil {
							return nil, err
						}
						if kind == 1 {
							st, err := readSequenceTimeline(cur, int(slotIndex), attachmentName)
							if err != nil {
								return nil, err
							}
							out = append(out, st)
							continue
						}
						dt, err := readOneDeformTimeline(cur, dialect, scale, int(slotIndex), mesh)
						if err != nil {
							return nil, err
						}
						out = append(out, dt)
					}
					continue
				}

				dt, err := readOneDeformTimeline(cur, dialect, scale, int(slotIndex), mesh)
				if err != nil {
					return nil, err
				}
				out = append(out, dt)
			}
		}
	}
	return out, nil
}

func readOneDeformTimeline(cur *wire.Cursor, dialect Dialect, scale float32, slotIndex int, mesh *skeldata.MeshAttachment) (*skeldata.DeformTimeline, error) {
	deformLength := len(mesh.UVs)
	weighted := mesh.Vertices.Weighted
	setup := mesh.Vertices.SetupVertices

	frameCount, err := cur.Varint("deform timeline frame count", true)
	if err != nil {
		return nil, err
	}
	if err := bezierCountPrefix(cur, dialect); err != nil {
		return nil, err
	}

	t := &skeldata.DeformTimeline{SlotIndex: slotIndex, Attachment: mesh}

	readOne := func() (skeldata.DeformFrame, error) {
		time, err := cur.Float32("deform timeline time")
		if err != nil {
			return skeldata.DeformFrame{}, err
		}
		end, err := cur.Varint("deform timeline end", true)
		if err != nil {
			return skeldata.DeformFrame{}, err
		}
		var deform []float32
		if end == 0 {
			if weighted {
				deform = make([]float32, deformLength)
			} else {
				deform = append([]float32(nil), setup...)
			}
		} else {
			start, err := cur.Varint("deform timeline start", true)
			if err != nil {
				return skeldata.DeformFrame{}, err
			}
			deform = make([]float32, deformLength)
			for v := start; v < start+end; v++ {
				f, err := cur.Float32("deform timeline value")
				if err != nil {
					return skeldata.DeformFrame{}, err
				}
				deform[v] = f * scale
			}
			if !weighted {
				for v := range deform {
					deform[v] += setup[v]
				}
			}
		}
		return skeldata.DeformFrame{Time: time, Vertices: deform}, nil
	}

	frame, err := readOne()
	if err != nil {
		return nil, err
	}
	frameLast := frameCount - 1
	for f := int32(0); ; f++ {
		t.Frames = append(t.Frames, frame)
		if f == frameLast {
			break
		}
		next, err := readOne()
		if err != nil {
			return nil, err
		}
		tag, err := cur.SByte("deform timeline curve tag")
		if err != nil {
			return nil, err
		}
		switch tag {
		case curveStepped:
			t.Curves.Types = append(t.Curves.Types, skeldata.CurveStepped)
		case curveBezier:
			t.Curves.Types = append(t.Curves.Types, skeldata.CurveBezier)
			bp, err := readBezierPoint(cur, "deform timeline bezier", 1)
			if err != nil {
				return nil, err
			}
			t.Curves.Beziers = append(t.Curves.Beziers, bp)
		default:
			t.Curves.Types = append(t.Curves.Types, skeldata.CurveLinear)
		}
		frame = next
	}

	return t, nil
}

func readSequenceTimeline(cur *wire.Cursor, slotIndex int, attachmentName string) (*skeldata.SequenceTimeline, error) {
	frameCount, err := cur.Varint("sequence timeline frame count", true)
	if err != nil {
		return nil, err
	}
	t := &skeldata.SequenceTimeline{SlotIndex: slotIndex, AttachmentName: attachmentName}
	for f := int32(0); f < frameCount; f++ {
		time, err := cur.Float32("sequence timeline time")
		if err != nil {
			return nil, err
		}
		mode, err := cur.Int32("sequence timeline mode")
		if err != nil {
			return nil, err
		}
		index, err := cur.Varint("sequence timeline index", true)
		if err != nil {
			return nil, err
		}
		delay, err := cur.Float32("sequence timeline delay")
		if err != nil {
			return nil, err
		}
		t.Frames = append(t.Frames, skeldata.SequenceFrame{Time: time, Mode: mode, Index: index, Delay: delay})
	}
	return t, nil
}

// readDrawOrderTimeline reconstructs the per-frame slot permutation from
// the packed differential encoding (spec.md §4.5).
func readDrawOrderTimeline(cur *wire.Cursor, slotCount int) (*skeldata.DrawOrderTimeline, error) {
	n, err := cur.Varint("draw order timeline count", true)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	t := &skeldata.DrawOrderTimeline{Frames: make([]skeldata.DrawOrderFrame, n)}
	for i := int32(0); i < n; i++ {
		time, err := cur.Float32("draw order timeline time")
		if err != nil {
			return nil, err
		}
		offsetCount, err := cur.Varint("draw order timeline offset count", true)
		if err != nil {
			return nil, err
		}

		drawOrder := make([]int32, slotCount)
		for i := range drawOrder {
			drawOrder[i] = -1
		}
		unchanged := make([]int32, 0, slotCount-int(offsetCount))

		var originalIndex int32
		for o := int32(0); o < offsetCount; o++ {
			slotIndex, err := cur.Varint("draw order timeline slot index", true)
			if err != nil {
				return nil, err
			}
			for originalIndex != slotIndex {
				unchanged = append(unchanged, originalIndex)
				originalIndex++
			}
			offset, err := cur.Varint("draw order timeline offset", true)
			if err != nil {
				return nil, err
			}
			drawOrder[originalIndex+offset] = originalIndex
			originalIndex++
		}
		for originalIndex < int32(slotCount) {
			unchanged = append(unchanged, originalIndex)
			originalIndex++
		}

		for i := slotCount - 1; i >= 0; i-- {
			if drawOrder[i] == -1 {
				drawOrder[i] = unchanged[len(unchanged)-1]
				unchanged = unchanged[:len(unchanged)-1]
			}
		}

		t.Frames[i] = skeldata.DrawOrderFrame{Time: time, DrawOrder: drawOrder}
	}
	return t, nil
}

// readEventTimeline decodes the single event timeline (spec.md §4.5).
func readEventTimeline(cur *wire.Cursor, events []*skeldata.EventData) (*skeldata.EventTimeline, error) {
	n, err := cur.Varint("event timeline count", true)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	t := &skeldata.EventTimeline{Frames: make([]skeldata.EventFrame, n)}
	for i := int32(0); i < n; i++ {
		time, err := cur.Float32("event timeline time")
		if err != nil {
			return nil, err
		}
		eventIndex, err := cur.Varint("event timeline event index", true)
		if err != nil {
			return nil, err
		}
		if int(eventIndex) < 0 || int(eventIndex) >= len(events) {
			return nil, errf("event timeline event index", "index %d out of range", eventIndex)
		}
		def := events[eventIndex]

		intVal, err := cur.Varint("event timeline int value", false)
		if err != nil {
			return nil, err
		}
		floatVal, err := cur.Float32("event timeline float value")
		if err != nil {
			return nil, err
		}
		freeString, err := cur.Boolean("event timeline freeString")
		if err != nil {
			return nil, err
		}
		str := def.Str
		if freeString {
			s, _, err := cur.String("event timeline string value")
			if err != nil {
				return nil, err
			}
			str = s
		}

		frame := skeldata.EventFrame{Time: time, Data: def, Int: intVal, Float: floatVal, Str: str}
		if def.AudioPath != "" {
			if frame.Volume, err = cur.Float32("event timeline volume"); err != nil {
				return nil, err
			}
			if frame.Balance, err = cur.Float32("event timeline balance"); err != nil {
				return nil, err
			}
		}
		t.Frames[i] = frame
	}
	return t, nil
}
