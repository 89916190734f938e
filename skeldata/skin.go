package skeldata

// Skin groups, per slot, a mapping from attachment name to attachment
// record. The default skin (SkeletonData.DefaultSkin) is always consulted
// first; any other skin is layered over it by name.
type Skin struct {
	Name string

	// Attachments maps slot index -> attachment name -> attachment.
	Attachments map[int]map[string]Attachment

	// Bones and the constraint slices list the bones/constraints this
	// (non-default) skin requires to be present for its attachments to
	// resolve correctly.
	Bones                []*Bone
	IkConstraints        []*IkConstraint
	TransformConstraints []*TransformConstraint
	PathConstraints      []*PathConstraint
}

// NewSkin returns an empty, ready-to-populate skin.
func NewSkin(name string) *Skin {
	return &Skin{Name: name, Attachments: make(map[int]map[string]Attachment)}
}

// SetAttachment records an attachment under (slotIndex, name).
func (s *Skin) SetAttachment(slotIndex int, name string, attachment Attachment) {
	if s.Attachments[slotIndex] == nil {
		s.Attachments[slotIndex] = make(map[string]Attachment)
	}
	s.Attachments[slotIndex][name] = attachment
}

// GetAttachment looks up an attachment by (slotIndex, name).
func (s *Skin) GetAttachment(slotIndex int, name string) Attachment {
	byName := s.Attachments[slotIndex]
	if byName == nil {
		return nil
	}
	return byName[name]
}
