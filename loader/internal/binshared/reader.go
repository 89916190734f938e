package binshared

import (
	"github.com/duskforge/skelasset/internal/wire"
	"github.com/duskforge/skelasset/loader/internal/linkedmesh"
	"github.com/duskforge/skelasset/skeldata"
)

// Read decodes the entire body of a skeleton binary document (everything
// after the version header) into data, following the section order spec.md
// §2 names: bones → slots → IK/transform/path/physics constraints → skins
// → linked-mesh resolution → events → animations.
func Read(cur *wire.Cursor, dialect Dialect, scale float32, data *skeldata.SkeletonData, attachLoader linkedmesh.AttachmentLoader) error {
	nonessential, strings, err := readBody(cur, data)
	if err != nil {
		return err
	}

	bones, err := readBones(cur, dialect, scale, nonessential)
	if err != nil {
		return err
	}
	data.Bones = bones

	slots, err := readSlots(cur, dialect, bones, strings)
	if err != nil {
		return err
	}
	data.Slots = slots

	ik, err := readIkConstraints(cur, bones)
	if err != nil {
		return err
	}
	data.IkConstraints = ik

	transform, err := readTransformConstraints(cur, dialect, scale, bones)
	if err != nil {
		return err
	}
	data.TransformConstraints = transform

	path, err := readPathConstraints(cur, scale, bones, slots)
	if err != nil {
		return err
	}
	data.PathConstraints = path

	if dialect.HasPhysicsConstraints {
		physics, err := readPhysicsConstraints(cur, bones)
		if err != nil {
			return err
		}
		data.PhysicsConstraints = physics
	}

	refs := skinRefs{
		Strings:              strings,
		Bones:                bones,
		Slots:                slots,
		IkConstraints:        ik,
		TransformConstraints: transform,
		PathConstraints:      path,
	}

	var pending []linkedmesh.Pending
	defaultSkin, dpending, err := readSkin(cur, dialect, scale, nonessential, refs, true)
	if err != nil {
		return err
	}
	data.DefaultSkin = defaultSkin
	pending = append(pending, dpending...)

	skinCount, err := cur.Varint("skins count", true)
	if err != nil {
		return err
	}
	data.Skins = make([]*skeldata.Skin, 0, skinCount)
	if defaultSkin != nil {
		data.Skins = append(data.Skins, defaultSkin)
	}
	for i := int32(0); i < skinCount; i++ {
		skin, spending, err := readSkin(cur, dialect, scale, nonessential, refs, false)
		if err != nil {
			return err
		}
		data.Skins = append(data.Skins, skin)
		pending = append(pending, spending...)
	}

	if err := linkedmesh.Resolve(data, pending, attachLoader); err != nil {
		return err
	}

	events, err := readEvents(cur, strings)
	if err != nil {
		return err
	}
	data.Events = events

	animCount, err := cur.Varint("animations count", true)
	if err != nil {
		return err
	}
	data.Animations = make([]*skeldata.Animation, animCount)
	for i := int32(0); i < animCount; i++ {
		animName, err := cur.StringRef("animation name", strings)
		if err != nil {
			return err
		}
		anim, err := readAnimation(cur, dialect, scale, data, animName, strings)
		if err != nil {
			return err
		}
		data.Animations[i] = anim
	}

	return nil
}

// readEvents decodes the events[] section.
func readEvents(cur *wire.Cursor, strings []string) ([]*skeldata.EventData, error) {
	n, err := cur.Varint("events count", true)
	if err != nil {
		return nil, err
	}
	out := make([]*skeldata.EventData, n)
	for i := range out {
		name, err := cur.StringRef("event name", strings)
		if err != nil {
			return nil, err
		}
		e := &skeldata.EventData{Name: name}
		if e.Int, err = cur.Varint("event int", false); err != nil {
			return nil, err
		}
		if e.Float, err = cur.Float32("event float"); err != nil {
			return nil, err
		}
		if e.Str, _, err = cur.String("event string"); err != nil {
			return nil, err
		}
		if e.AudioPath, _, err = cur.String("event audioPath"); err != nil {
			return nil, err
		}
		if e.AudioPath != "" {
			if e.Volume, err = cur.Float32("event volume"); err != nil {
				return nil, err
			}
			if e.Balance, err = cur.Float32("event balance"); err != nil {
				return nil, err
			}
		}
		out[i] = e
	}
	return out, nil
}
