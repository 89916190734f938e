package binshared

import (
	"github.com/duskforge/skelasset/internal/wire"
	"github.com/duskforge/skelasset/skeldata"
)

// readBones decodes the bones[] section (spec.md §4.3). Entry 0 has no
// parent index in the stream; every later entry's parent was already
// appended, so the index resolves directly.
func readBones(cur *wire.Cursor, dialect Dialect, scale float32, nonessential bool) ([]*skeldata.Bone, error) {
	n, err := cur.Varint("bones count", true)
	if err != nil {
		return nil, err
	}
	bones := make([]*skeldata.Bone, n)
	for i := range bones {
		name, _, err := cur.String("bone name")
		if err != nil {
			return nil, err
		}

		b := &skeldata.Bone{Name: name}
		if i != 0 {
			parentIdx, err := cur.Varint("bone parent index", true)
			if err != nil {
				return nil, err
			}
			if parentIdx < 0 || int(parentIdx) >= i {
				return nil, errf("bone parent index", "index %d out of range", parentIdx)
			}
			b.Parent = bones[parentIdx]
		}

		if b.Rotation, err = cur.Float32("bone rotation"); err != nil {
			return nil, err
		}
		if b.X, err = cur.Float32("bone x"); err != nil {
			return nil, err
		}
		b.X *= scale
		if b.Y, err = cur.Float32("bone y"); err != nil {
			return nil, err
		}
		b.Y *= scale
		if b.ScaleX, err = cur.Float32("bone scaleX"); err != nil {
			return nil, err
		}
		if b.ScaleY, err = cur.Float32("bone scaleY"); err != nil {
			return nil, err
		}
		if b.ShearX, err = cur.Float32("bone shearX"); err != nil {
			return nil, err
		}
		if b.ShearY, err = cur.Float32("bone shearY"); err != nil {
			return nil, err
		}
		if b.Length, err = cur.Float32("bone length"); err != nil {
			return nil, err
		}
		b.Length *= scale

		inherit, err := cur.Varint("bone inherit", true)
		if err != nil {
			return nil, err
		}
		b.Inherit = skeldata.Inherit(inherit)

		if b.SkinRequired, err = cur.Boolean("bone skinRequired"); err != nil {
			return nil, err
		}

		if nonessential {
			if dialect.Legacy38 {
				packed, err := cur.Int32("bone color")
				if err != nil {
					return nil, err
				}
				b.Color = unpackColorRGBA8888(packed)
			} else {
				rgba, err := cur.ColorRGBA("bone color")
				if err != nil {
					return nil, err
				}
				b.Color = &skeldata.Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
			}
		}

		bones[i] = b
	}
	return bones, nil
}

// unpackColorRGBA8888 splits a single packed 0xRRGGBBAA int32, the 3.8
// bone-color nonessential encoding, into a Color.
func unpackColorRGBA8888(packed int32) *skeldata.Color {
	u := uint32(packed)
	return &skeldata.Color{
		R: float32(u>>24&0xff) / 255.0,
		G: float32(u>>16&0xff) / 255.0,
		B: float32(u>>8&0xff) / 255.0,
		A: float32(u&0xff) / 255.0,
	}
}

// readSlots decodes the slots[] section. Dark color byte order is the one
// real per-byte wire difference between 3.8 and 4.x (spec.md §4.3, §9).
func readSlots(cur *wire.Cursor, dialect Dialect, bones []*skeldata.Bone, strings []string) ([]*skeldata.Slot, error) {
	n, err := cur.Varint("slots count", true)
	if err != nil {
		return nil, err
	}
	slots := make([]*skeldata.Slot, n)
	for i := range slots {
		name, _, err := cur.String("slot name")
		if err != nil {
			return nil, err
		}
		boneIdx, err := cur.Varint("slot bone index", true)
		if err != nil {
			return nil, err
		}
		if boneIdx < 0 || int(boneIdx) >= len(bones) {
			return nil, errf("slot bone index", "index %d out of range", boneIdx)
		}

		s := &skeldata.Slot{Name: name, Bone: bones[boneIdx]}

		rgba, err := cur.ColorRGBA("slot color")
		if err != nil {
			return nil, err
		}
		s.Color = skeldata.Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}

		var dark [4]float32
		if dialect.Legacy38 {
			dark, err = cur.ColorRGBA("slot dark color")
		} else {
			dark, err = cur.ColorARGB("slot dark color")
		}
		if err != nil {
			return nil, err
		}
		if dark != [4]float32{1, 1, 1, 1} {
			s.DarkColor = &skeldata.Color{R: dark[0], G: dark[1], B: dark[2], A: 1}
		}

		s.AttachmentName, err = cur.StringRef("slot attachment name", strings)
		if err != nil {
			return nil, err
		}

		blend, err := cur.Varint("slot blend mode", true)
		if err != nil {
			return nil, err
		}
		s.Blend = skeldata.BlendMode(blend)

		slots[i] = s
	}
	return slots, nil
}
