// Package binshared is the version-parameterized binary section-reading
// engine loader.Loader.ReadBinary dispatches into once readBinaryHeader has
// resolved a Dialect. One Dialect value captures the handful of wire
// differences spec.md documents between schema versions so the ~20
// timeline kinds, the attachment reader, and the section state machine are
// written once instead of once per version.
package binshared

// Dialect carries the format differences between skeleton binary schema
// versions that the shared reader must branch on. The loader package's
// version-prefix dispatch picks one of the fixed values V38/V40/V42;
// nothing in this package inspects a version string itself.
type Dialect struct {
	// Name is the human-readable version this dialect renders, used only
	// in error messages ("version not supported" carries the raw string
	// read from the stream, not this).
	Name string

	// Legacy38 selects the pre-4.0 header shape (length-prefixed hash then
	// version string, both probed via the ≤0x40 heuristic in the registry
	// rather than here), the packed-int32 bone color, the RGBA (not ARGB)
	// slot dark-color byte order, the broadcast transform-constraint mix,
	// and the curve-reading loop that never pre-sizes a Bézier buffer.
	Legacy38 bool

	// HasPhysicsConstraints gates the physics constraint section and its
	// timeline kinds (4.2 only).
	HasPhysicsConstraints bool

	// HasSequence gates the attachment-level Sequence sub-record on
	// Region, Mesh, and LinkedMesh attachments (4.2 only).
	HasSequence bool

	// HasInheritTimeline gates the bone Inherit timeline kind, tag 10
	// (4.2 only; the 4.0 reader's bone timeline switch stops at ShearY).
	HasInheritTimeline bool
}

// V38 is the dialect for schema 3.8.
var V38 = Dialect{Name: "3.8", Legacy38: true}

// V40 is the dialect for schema 4.0.
var V40 = Dialect{Name: "4.0"}

// V42 is the dialect for schema 4.1 and 4.2 (the registry maps both
// prefixes to this dialect per spec.md §4.2).
var V42 = Dialect{
	Name:                  "4.2",
	HasPhysicsConstraints: true,
	HasSequence:           true,
	HasInheritTimeline:    true,
}
