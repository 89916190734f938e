package binshared

import (
	"github.com/duskforge/skelasset/internal/wire"
	"github.com/duskforge/skelasset/loader/internal/linkedmesh"
	"github.com/duskforge/skelasset/skeldata"
)

// skinRefs bundles the already-read root sequences a skin's non-default
// body resolves its required-bones/constraints indices against.
type skinRefs struct {
	Strings              []string
	Bones                []*skeldata.Bone
	Slots                []*skeldata.Slot
	IkConstraints        []*skeldata.IkConstraint
	TransformConstraints []*skeldata.TransformConstraint
	PathConstraints      []*skeldata.PathConstraint
}

// readSkin decodes one skin body (spec.md §4.4). defaultSkin selects the
// distinguished shape: no name/bones/constraints prefix, and a slot count
// of 0 means "no default skin" (nil, nil, nil returned).
func readSkin(cur *wire.Cursor, dialect Dialect, scale float32, nonessential bool, refs skinRefs, defaultSkin bool) (*skeldata.Skin, []linkedmesh.Pending, error) {
	var skin *skeldata.Skin
	var slotCount int32
	var err error

	if defaultSkin {
		if slotCount, err = cur.Varint("default skin slot count", true); err != nil {
			return nil, nil, err
		}
		if slotCount == 0 {
			return nil, nil, nil
		}
		skin = skeldata.NewSkin("default")
	} else {
		name, err := cur.StringRef("skin name", refs.Strings)
		if err != nil {
			return nil, nil, err
		}
		skin = skeldata.NewSkin(name)

		n, err := cur.Varint("skin bones count", true)
		if err != nil {
			return nil, nil, err
		}
		for i := int32(0); i < n; i++ {
			idx, err := cur.Varint("skin bone index", true)
			if err != nil {
				return nil, nil, err
			}
			if idx < 0 || int(idx) >= len(refs.Bones) {
				return nil, nil, errf("skin bone index", "index %d out of range", idx)
			}
			skin.Bones = append(skin.Bones, refs.Bones[idx])
		}

		n, err = cur.Varint("skin ik constraints count", true)
		if err != nil {
			return nil, nil, err
		}
		for i := int32(0); i < n; i++ {
			idx, err := cur.Varint("skin ik constraint index", true)
			if err != nil {
				return nil, nil, err
			}
			if idx < 0 || int(idx) >= len(refs.IkConstraints) {
				return nil, nil, errf("skin ik constraint index", "index %d out of range", idx)
			}
			skin.IkConstraints = append(skin.IkConstraints, refs.IkConstraints[idx])
		}

		n, err = cur.Varint("skin transform constraints count", true)
		if err != nil {
			return nil, nil, err
		}
		for i := int32(0); i < n; i++ {
			idx, err := cur.Varint("skin transform constraint index", true)
			if err != nil {
				return nil, nil, err
			}
			if idx < 0 || int(idx) >= len(refs.TransformConstraints) {
				return nil, nil, errf("skin transform constraint index", "index %d out of range", idx)
			}
			skin.TransformConstraints = append(skin.TransformConstraints, refs.TransformConstraints[idx])
		}

		n, err = cur.Varint("skin path constraints count", true)
		if err != nil {
			return nil, nil, err
		}
		for i := int32(0); i < n; i++ {
			idx, err := cur.Varint("skin path constraint index", true)
			if err != nil {
				return nil, nil, err
			}
			if idx < 0 || int(idx) >= len(refs.PathConstraints) {
				return nil, nil, errf("skin path constraint index", "index %d out of range", idx)
			}
			skin.PathConstraints = append(skin.PathConstraints, refs.PathConstraints[idx])
		}

		if slotCount, err = cur.Varint("skin slot count", true); err != nil {
			return nil, nil, err
		}
	}

	var pending []linkedmesh.Pending
	for i := int32(0); i < slotCount; i++ {
		slotIndex, err := cur.Varint("skin attachment slot index", true)
		if err != nil {
			return nil, nil, err
		}
		attachCount, err := cur.Varint("skin attachment count", true)
		if err != nil {
			return nil, nil, err
		}
		for j := int32(0); j < attachCount; j++ {
			attachmentName, err := cur.StringRef("skin attachment name", refs.Strings)
			if err != nil {
				return nil, nil, err
			}
			attachment, linked, err := readAttachment(cur, dialect, scale, nonessential, refs.Strings, refs.Slots, int(slotIndex), attachmentName)
			if err != nil {
				return nil, nil, err
			}
			skin.SetAttachment(int(slotIndex), attachmentName, attachment)
			if linked != nil {
				pending = append(pending, *linked)
			}
		}
	}

	return skin, pending, nil
}
