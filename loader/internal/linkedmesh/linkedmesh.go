// Package linkedmesh implements the post-pass that resolves forward
// references between meshes across skins and slots, after every skin has
// been materialized (spec.md §4.6).
package linkedmesh

import (
	"fmt"

	"github.com/duskforge/skelasset/skeldata"
)

// Pending is one queued Linkedmesh attachment awaiting its parent mesh.
type Pending struct {
	Mesh            *skeldata.MeshAttachment
	SkinName        string // empty means the default skin
	SlotIndex       int
	ParentName      string
	InheritTimeline bool
}

// AttachmentLoader is invoked once per resolved linked mesh, mirroring the
// spec's external "attachmentLoader.configureAttachment(mesh)" call
// (spec.md §4.6). The core provides no concrete implementation; a nil
// loader is accepted and Resolve then skips the call.
type AttachmentLoader interface {
	ConfigureAttachment(mesh *skeldata.MeshAttachment)
}

// Resolve drains the pending queue, wiring every Linkedmesh's ParentMesh
// and TimelineAttachment. It returns the first error encountered (a
// missing skin or parent attachment is fatal per spec.md §7); the caller's
// queue is discarded along with the rest of the read state once Resolve
// returns, matching spec.md's "Clear and free the linked-mesh work list".
func Resolve(data *skeldata.SkeletonData, pending []Pending, attachLoader AttachmentLoader) error {
	for _, p := range pending {
		skin := data.DefaultSkin
		if p.SkinName != "" {
			skin = data.FindSkin(p.SkinName)
		}
		if skin == nil {
			return fmt.Errorf("Skin not found: %s", p.SkinName)
		}

		parentAttachment := skin.GetAttachment(p.SlotIndex, p.ParentName)
		if parentAttachment == nil {
			return fmt.Errorf("Parent mesh not found: %s", p.ParentName)
		}
		parent, ok := parentAttachment.(*skeldata.MeshAttachment)
		if !ok {
			return fmt.Errorf("Attachment not found: %s", p.ParentName)
		}

		if p.InheritTimeline {
			p.Mesh.TimelineAttachment = parent
		} else {
			p.Mesh.TimelineAttachment = p.Mesh
		}
		p.Mesh.ParentMesh = parent

		if attachLoader != nil {
			attachLoader.ConfigureAttachment(p.Mesh)
		}
	}

	return nil
}
