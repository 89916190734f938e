package jsonshared

import (
	"github.com/duskforge/skelasset/internal/domutil"
	"github.com/duskforge/skelasset/loader/internal/binshared"
	"github.com/duskforge/skelasset/loader/internal/linkedmesh"
	"github.com/duskforge/skelasset/skeldata"
)

// Read decodes the sections following the header (already consumed by
// loader.readJSONHeader) into data, in the same order binshared.Read uses:
// bones → slots → IK/transform/path/physics constraints → skins →
// linked-mesh resolution → events → animations.
func Read(root domutil.Object, dialect binshared.Dialect, scale float32, data *skeldata.SkeletonData, attachLoader linkedmesh.AttachmentLoader) error {
	nonessential := domutil.Bool(root, "nonessential", false)

	bones, err := readBones(root, scale)
	if err != nil {
		return err
	}
	data.Bones = bones

	slots, err := readSlots(root, bones)
	if err != nil {
		return err
	}
	data.Slots = slots

	ik, err := readIkConstraints(root, bones)
	if err != nil {
		return err
	}
	data.IkConstraints = ik

	transform, err := readTransformConstraints(root, dialect, scale, bones)
	if err != nil {
		return err
	}
	data.TransformConstraints = transform

	path, err := readPathConstraints(root, scale, bones, slots)
	if err != nil {
		return err
	}
	data.PathConstraints = path

	if dialect.HasPhysicsConstraints {
		physics, err := readPhysicsConstraints(root, bones)
		if err != nil {
			return err
		}
		data.PhysicsConstraints = physics
	}

	refs := skinRefs{
		Bones:                bones,
		Slots:                slots,
		IkConstraints:        ik,
		TransformConstraints: transform,
		PathConstraints:      path,
	}
	defaultSkin, skins, pending, err := readSkins(root, dialect, scale, nonessential, refs)
	if err != nil {
		return err
	}
	data.DefaultSkin = defaultSkin
	data.Skins = skins

	if err := linkedmesh.Resolve(data, pending, attachLoader); err != nil {
		return err
	}

	events, err := readEvents(root)
	if err != nil {
		return err
	}
	data.Events = events

	animations, err := readAnimations(root, dialect, scale, data)
	if err != nil {
		return err
	}
	data.Animations = animations

	return nil
}

// readEvents decodes the "events" object (name -> definition).
func readEvents(root domutil.Object) ([]*skeldata.EventData, error) {
	obj, _ := domutil.Obj(root, "events")
	out := make([]*skeldata.EventData, 0, len(obj))
	for name, v := range obj {
		o, ok := v.(domutil.Object)
		if !ok {
			continue
		}
		e := &skeldata.EventData{
			Name:      name,
			Int:       int32(domutil.Int(o, "int", 0)),
			Float:     domutil.Float(o, "float", 0),
			Str:       domutil.Str(o, "string", ""),
			AudioPath: domutil.Str(o, "audio", ""),
		}
		if e.AudioPath != "" {
			e.Volume = domutil.Float(o, "volume", 1)
			e.Balance = domutil.Float(o, "balance", 0)
		}
		out = append(out, e)
	}
	return out, nil
}
