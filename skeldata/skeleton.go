// Package skeldata holds the passive output record of a skeleton asset
// deserialization: the skeleton hierarchy, skins, constraints, events and
// animations that describe one rigged character. Nothing in this package
// evaluates a pose, solves a constraint, or renders anything — it is the
// shape of the data a loader produces, not a runtime.
package skeldata

// SkeletonData is the root of the loaded object graph. Every field is
// either owned directly (slices of value or pointer records) or a resolved
// reference (an index into one of the ordered sequences, or a pointer once
// that sequence is stable).
type SkeletonData struct {
	Hash    string
	Version string

	X, Y, Width, Height float32

	FPS   float32
	Audio string

	Bones                []*Bone
	Slots                []*Slot
	IkConstraints        []*IkConstraint
	TransformConstraints []*TransformConstraint
	PathConstraints      []*PathConstraint
	PhysicsConstraints   []*PhysicsConstraint

	Skins      []*Skin
	DefaultSkin *Skin

	Events     []*EventData
	Animations []*Animation

	// Strings is the string-intern table read at the start of the stream;
	// StringRef indices resolve against these exact entries for the whole
	// document.
	Strings []string
}

// New returns an empty SkeletonData ready for section-by-section population.
func New() *SkeletonData {
	return &SkeletonData{}
}

// FindBone returns the bone with the given name, or nil.
func (s *SkeletonData) FindBone(name string) *Bone {
	for _, b := range s.Bones {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// FindSlot returns the slot with the given name, or nil.
func (s *SkeletonData) FindSlot(name string) *Slot {
	for _, sl := range s.Slots {
		if sl.Name == name {
			return sl
		}
	}
	return nil
}

// FindSkin returns the skin with the given name, or nil. An empty name
// never matches — callers that mean "the default skin" for an empty name
// should check that case themselves, since an empty-name lookup is a
// distinct, legitimate miss in the non-default-skin case.
func (s *SkeletonData) FindSkin(name string) *Skin {
	for _, sk := range s.Skins {
		if sk.Name == name {
			return sk
		}
	}
	return nil
}

// FindEventData returns the event definition with the given name, or nil.
func (s *SkeletonData) FindEventData(name string) *EventData {
	for _, e := range s.Events {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// FindAnimation returns the animation with the given name, or nil.
func (s *SkeletonData) FindAnimation(name string) *Animation {
	for _, a := range s.Animations {
		if a.Name == name {
			return a
		}
	}
	return nil
}
