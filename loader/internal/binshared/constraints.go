package binshared

import (
	"github.com/duskforge/skelasset/internal/wire"
	"github.com/duskforge/skelasset/skeldata"
)

func readConstraintBones(cur *wire.Cursor, bones []*skeldata.Bone) ([]*skeldata.Bone, error) {
	n, err := cur.Varint("constraint bones count", true)
	if err != nil {
		return nil, err
	}
	out := make([]*skeldata.Bone, n)
	for i := range out {
		idx, err := cur.Varint("constraint bone index", true)
		if err != nil {
			return nil, err
		}
		if idx < 0 || int(idx) >= len(bones) {
			return nil, errf("constraint bone index", "index %d out of range", idx)
		}
		out[i] = bones[idx]
	}
	return out, nil
}

func readIkConstraints(cur *wire.Cursor, bones []*skeldata.Bone) ([]*skeldata.IkConstraint, error) {
	n, err := cur.Varint("ik constraints count", true)
	if err != nil {
		return nil, err
	}
	out := make([]*skeldata.IkConstraint, n)
	for i := range out {
		name, _, err := cur.String("ik constraint name")
		if err != nil {
			return nil, err
		}
		c := &skeldata.IkConstraint{Name: name}

		order, err := cur.Varint("ik constraint order", true)
		if err != nil {
			return nil, err
		}
		c.Order = order
		if c.SkinRequired, err = cur.Boolean("ik constraint skinRequired"); err != nil {
			return nil, err
		}
		if c.Bones, err = readConstraintBones(cur, bones); err != nil {
			return nil, err
		}
		targetIdx, err := cur.Varint("ik constraint target", true)
		if err != nil {
			return nil, err
		}
		if targetIdx < 0 || int(targetIdx) >= len(bones) {
			return nil, errf("ik constraint target", "index %d out of range", targetIdx)
		}
		c.Target = bones[targetIdx]

		if c.Mix, err = cur.Float32("ik constraint mix"); err != nil {
			return nil, err
		}
		soft, err := cur.Float32("ik constraint softness")
		if err != nil {
			return nil, err
		}
		c.Softness = soft

		bend, err := cur.SByte("ik constraint bendDirection")
		if err != nil {
			return nil, err
		}
		c.BendDirection = int32(bend)

		if c.Compress, err = cur.Boolean("ik constraint compress"); err != nil {
			return nil, err
		}
		if c.Stretch, err = cur.Boolean("ik constraint stretch"); err != nil {
			return nil, err
		}
		if c.Uniform, err = cur.Boolean("ik constraint uniform"); err != nil {
			return nil, err
		}

		out[i] = c
	}
	return out, nil
}

// readTransformConstraints branches on Dialect.Legacy38: the pre-4.0
// format reads one translateMix and one scaleMix value, broadcasting each
// into the pair of axis-specific mix fields (spec.md §4.3, §9).
func readTransformConstraints(cur *wire.Cursor, dialect Dialect, scale float32, bones []*skeldata.Bone) ([]*skeldata.TransformConstraint, error) {
	n, err := cur.Varint("transform constraints count", true)
	if err != nil {
		return nil, err
	}
	out := make([]*skeldata.TransformConstraint, n)
	for i := range out {
		name, _, err := cur.String("transform constraint name")
		if err != nil {
			return nil, err
		}
		c := &skeldata.TransformConstraint{Name: name}

		if c.Order, err = cur.Varint("transform constraint order", true); err != nil {
			return nil, err
		}
		if c.SkinRequired, err = cur.Boolean("transform constraint skinRequired"); err != nil {
			return nil, err
		}
		if c.Bones, err = readConstraintBones(cur, bones); err != nil {
			return nil, err
		}
		targetIdx, err := cur.Varint("transform constraint target", true)
		if err != nil {
			return nil, err
		}
		if targetIdx < 0 || int(targetIdx) >= len(bones) {
			return nil, errf("transform constraint target", "index %d out of range", targetIdx)
		}
		c.Target = bones[targetIdx]

		if dialect.Legacy38 {
			if c.RelativeValues, err = cur.Boolean("transform constraint local"); err != nil {
				return nil, err
			}
			c.LocalValues = c.RelativeValues
			if c.RelativeValues, err = cur.Boolean("transform constraint relative"); err != nil {
				return nil, err
			}
			if c.OffsetRotation, err = cur.Float32("transform constraint offsetRotation"); err != nil {
				return nil, err
			}
			ox, err := cur.Float32("transform constraint offsetX")
			if err != nil {
				return nil, err
			}
			c.OffsetX = ox * scale
			oy, err := cur.Float32("transform constraint offsetY")
			if err != nil {
				return nil, err
			}
			c.OffsetY = oy * scale
			if c.OffsetScaleX, err = cur.Float32("transform constraint offsetScaleX"); err != nil {
				return nil, err
			}
			if c.OffsetScaleY, err = cur.Float32("transform constraint offsetScaleY"); err != nil {
				return nil, err
			}
			if c.OffsetShearY, err = cur.Float32("transform constraint offsetShearY"); err != nil {
				return nil, err
			}
			rotateMix, err := cur.Float32("transform constraint rotateMix")
			if err != nil {
				return nil, err
			}
			translateMix, err := cur.Float32("transform constraint translateMix")
			if err != nil {
				return nil, err
			}
			scaleMix, err := cur.Float32("transform constraint scaleMix")
			if err != nil {
				return nil, err
			}
			shearMix, err := cur.Float32("transform constraint shearMix")
			if err != nil {
				return nil, err
			}
			c.MixRotate = rotateMix
			c.MixX = translateMix
			c.MixY = translateMix
			c.MixScaleX = scaleMix
			c.MixScaleY = scaleMix
			c.MixShearY = shearMix
			out[i] = c
			continue
		}

		if c.LocalValues, err = cur.Boolean("transform constraint local"); err != nil {
			return nil, err
		}
		if c.RelativeValues, err = cur.Boolean("transform constraint relative"); err != nil {
			return nil, err
		}
		if c.OffsetRotation, err = cur.Float32("transform constraint offsetRotation"); err != nil {
			return nil, err
		}
		ox, err := cur.Float32("transform constraint offsetX")
		if err != nil {
			return nil, err
		}
		c.OffsetX = ox * scale
		oy, err := cur.Float32("transform constraint offsetY")
		if err != nil {
			return nil, err
		}
		c.OffsetY = oy * scale
		if c.OffsetScaleX, err = cur.Float32("transform constraint offsetScaleX"); err != nil {
			return nil, err
		}
		if c.OffsetScaleY, err = cur.Float32("transform constraint offsetScaleY"); err != nil {
			return nil, err
		}
		if c.OffsetShearY, err = cur.Float32("transform constraint offsetShearY"); err != nil {
			return nil, err
		}
		if c.MixRotate, err = cur.Float32("transform constraint mixRotate"); err != nil {
			return nil, err
		}
		if c.MixX, err = cur.Float32("transform constraint mixX"); err != nil {
			return nil, err
		}
		if c.MixY, err = cur.Float32("transform constraint mixY"); err != nil {
			return nil, err
		}
		if c.MixScaleX, err = cur.Float32("transform constraint mixScaleX"); err != nil {
			return nil, err
		}
		if c.MixScaleY, err = cur.Float32("transform constraint mixScaleY"); err != nil {
			return nil, err
		}
		if c.MixShearY, err = cur.Float32("transform constraint mixShearY"); err != nil {
			return nil, err
		}

		out[i] = c
	}
	return out, nil
}

func readPathConstraints(cur *wire.Cursor, scale float32, bones []*skeldata.Bone, slots []*skeldata.Slot) ([]*skeldata.PathConstraint, error) {
	n, err := cur.Varint("path constraints count", true)
	if err != nil {
		return nil, err
	}
	out := make([]*skeldata.PathConstraint, n)
	for i := range out {
		name, _, err := cur.String("path constraint name")
		if err != nil {
			return nil, err
		}
		c := &skeldata.PathConstraint{Name: name}

		if c.Order, err = cur.Varint("path constraint order", true); err != nil {
			return nil, err
		}
		if c.SkinRequired, err = cur.Boolean("path constraint skinRequired"); err != nil {
			return nil, err
		}
		if c.Bones, err = readConstraintBones(cur, bones); err != nil {
			return nil, err
		}
		targetIdx, err := cur.Varint("path constraint target", true)
		if err != nil {
			return nil, err
		}
		if targetIdx < 0 || int(targetIdx) >= len(slots) {
			return nil, errf("path constraint target", "index %d out of range", targetIdx)
		}
		c.Target = slots[targetIdx]

		posMode, err := cur.Varint("path constraint positionMode", true)
		if err != nil {
			return nil, err
		}
		c.PositionMode = skeldata.PositionMode(posMode)
		spaceMode, err := cur.Varint("path constraint spacingMode", true)
		if err != nil {
			return nil, err
		}
		c.SpacingMode = skeldata.SpacingMode(spaceMode)
		rotMode, err := cur.Varint("path constraint rotateMode", true)
		if err != nil {
			return nil, err
		}
		c.RotateMode = skeldata.RotateMode(rotMode)

		if c.OffsetRotation, err = cur.Float32("path constraint offsetRotation"); err != nil {
			return nil, err
		}
		if c.Position, err = cur.Float32("path constraint position"); err != nil {
			return nil, err
		}
		if c.PositionMode == skeldata.PositionFixed {
			c.Position *= scale
		}
		if c.Spacing, err = cur.Float32("path constraint spacing"); err != nil {
			return nil, err
		}
		if c.SpacingMode == skeldata.SpacingLength || c.SpacingMode == skeldata.SpacingFixed {
			c.Spacing *= scale
		}
		if c.MixRotate, err = cur.Float32("path constraint mixRotate"); err != nil {
			return nil, err
		}
		if c.MixX, err = cur.Float32("path constraint mixX"); err != nil {
			return nil, err
		}
		if c.MixY, err = cur.Float32("path constraint mixY"); err != nil {
			return nil, err
		}

		out[i] = c
	}
	return out, nil
}

// readPhysicsConstraints decodes the 4.2-only physics constraint section
// (spec.md §4.3).
func readPhysicsConstraints(cur *wire.Cursor, bones []*skeldata.Bone) ([]*skeldata.PhysicsConstraint, error) {
	n, err := cur.Varint("physics constraints count", true)
	if err != nil {
		return nil, err
	}
	out := make([]*skeldata.PhysicsConstraint, n)
	for i := range out {
		name, _, err := cur.String("physics constraint name")
		if err != nil {
			return nil, err
		}
		c := &skeldata.PhysicsConstraint{Name: name}

		if c.Order, err = cur.Varint("physics constraint order", true); err != nil {
			return nil, err
		}
		if c.SkinRequired, err = cur.Boolean("physics constraint skinRequired"); err != nil {
			return nil, err
		}
		boneIdx, err := cur.Varint("physics constraint bone", true)
		if err != nil {
			return nil, err
		}
		if boneIdx < 0 || int(boneIdx) >= len(bones) {
			return nil, errf("physics constraint bone", "index %d out of range", boneIdx)
		}
		c.Bone = bones[boneIdx]

		if c.Inertia, err = cur.Float32("physics constraint inertia"); err != nil {
			return nil, err
		}
		if c.Strength, err = cur.Float32("physics constraint strength"); err != nil {
			return nil, err
		}
		if c.Damping, err = cur.Float32("physics constraint damping"); err != nil {
			return nil, err
		}
		if c.Mass, err = cur.Float32("physics constraint mass"); err != nil {
			return nil, err
		}
		if c.Wind, err = cur.Float32("physics constraint wind"); err != nil {
			return nil, err
		}
		if c.Gravity, err = cur.Float32("physics constraint gravity"); err != nil {
			return nil, err
		}
		if c.Mix, err = cur.Float32("physics constraint mix"); err != nil {
			return nil, err
		}
		if c.Reset, err = cur.Boolean("physics constraint reset"); err != nil {
			return nil, err
		}

		out[i] = c
	}
	return out, nil
}
