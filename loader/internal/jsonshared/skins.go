package jsonshared

import (
	"github.com/duskforge/skelasset/internal/domutil"
	"github.com/duskforge/skelasset/loader/internal/binshared"
	"github.com/duskforge/skelasset/loader/internal/linkedmesh"
	"github.com/duskforge/skelasset/skeldata"
)

// skinRefs bundles the already-read root sequences a skin's bones/ik/
// transform/path required-reference lists resolve names against.
type skinRefs struct {
	Bones                []*skeldata.Bone
	Slots                []*skeldata.Slot
	IkConstraints        []*skeldata.IkConstraint
	TransformConstraints []*skeldata.TransformConstraint
	PathConstraints      []*skeldata.PathConstraint
}

func findIk(cs []*skeldata.IkConstraint, name string) (*skeldata.IkConstraint, error) {
	for _, c := range cs {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, errf("skin ik constraint", "unknown ik constraint %q", name)
}

func findTransform(cs []*skeldata.TransformConstraint, name string) (*skeldata.TransformConstraint, error) {
	for _, c := range cs {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, errf("skin transform constraint", "unknown transform constraint %q", name)
}

func findPath(cs []*skeldata.PathConstraint, name string) (*skeldata.PathConstraint, error) {
	for _, c := range cs {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, errf("skin path constraint", "unknown path constraint %q", name)
}

func slotIndexByName(slots []*skeldata.Slot, name string) (int, error) {
	for i, s := range slots {
		if s.Name == name {
			return i, nil
		}
	}
	return 0, errf("skin attachment slot", "unknown slot %q", name)
}

// readOneSkin decodes one skin object's bones/ik/transform/path required-
// reference lists and its attachments map (spec.md §4.4).
func readOneSkin(o domutil.Object, dialect binshared.Dialect, scale float32, nonessential bool, refs skinRefs) (*skeldata.Skin, []linkedmesh.Pending, error) {
	skin := skeldata.NewSkin(domutil.Str(o, "name", ""))

	if boneArr, ok := domutil.Arr(o, "bones"); ok {
		for _, item := range boneArr {
			name, _ := item.(string)
			b, err := findBone(refs.Bones, name)
			if err != nil {
				return nil, nil, err
			}
			skin.Bones = append(skin.Bones, b)
		}
	}
	if ikArr, ok := domutil.Arr(o, "ik"); ok {
		for _, item := range ikArr {
			name, _ := item.(string)
			c, err := findIk(refs.IkConstraints, name)
			if err != nil {
				return nil, nil, err
			}
			skin.IkConstraints = append(skin.IkConstraints, c)
		}
	}
	if transformArr, ok := domutil.Arr(o, "transform"); ok {
		for _, item := range transformArr {
			name, _ := item.(string)
			c, err := findTransform(refs.TransformConstraints, name)
			if err != nil {
				return nil, nil, err
			}
			skin.TransformConstraints = append(skin.TransformConstraints, c)
		}
	}
	if pathArr, ok := domutil.Arr(o, "path"); ok {
		for _, item := range pathArr {
			name, _ := item.(string)
			c, err := findPath(refs.PathConstraints, name)
			if err != nil {
				return nil, nil, err
			}
			skin.PathConstraints = append(skin.PathConstraints, c)
		}
	}

	var pending []linkedmesh.Pending
	attachments, _ := domutil.Obj(o, "attachments")
	for slotName, v := range attachments {
		slotAttachments, ok := v.(domutil.Object)
		if !ok {
			continue
		}
		slotIndex, err := slotIndexByName(refs.Slots, slotName)
		if err != nil {
			return nil, nil, err
		}
		for attachmentName, av := range slotAttachments {
			ao, ok := av.(domutil.Object)
			if !ok {
				continue
			}
			attachment, linked, err := readAttachment(ao, dialect, scale, nonessential, refs.Slots, slotIndex, attachmentName)
			if err != nil {
				return nil, nil, err
			}
			skin.SetAttachment(slotIndex, attachmentName, attachment)
			if linked != nil {
				pending = append(pending, *linked)
			}
		}
	}

	return skin, pending, nil
}

// readSkins decodes the "skins" array, returning the skin named "default"
// (or nil) separately from the full ordered skin list, matching the binary
// reader's default-skin/skins-slice split.
func readSkins(root domutil.Object, dialect binshared.Dialect, scale float32, nonessential bool, refs skinRefs) (*skeldata.Skin, []*skeldata.Skin, []linkedmesh.Pending, error) {
	arr, _ := domutil.Arr(root, "skins")

	var defaultSkin *skeldata.Skin
	var all []*skeldata.Skin
	var pending []linkedmesh.Pending

	for i, item := range arr {
		o, ok := item.(domutil.Object)
		if !ok {
			return nil, nil, nil, errf("skin", "entry %d is not an object", i)
		}
		skin, spending, err := readOneSkin(o, dialect, scale, nonessential, refs)
		if err != nil {
			return nil, nil, nil, err
		}
		all = append(all, skin)
		pending = append(pending, spending...)
		if skin.Name == "default" {
			defaultSkin = skin
		}
	}

	return defaultSkin, all, pending, nil
}
