package skeldata

// AttachmentKind discriminates the Attachment variants. The spec's class
// hierarchy carries no behavior that cannot be expressed as a tagged union,
// so each variant is a distinct struct interpreted by switching on Kind().
type AttachmentKind int

const (
	AttachmentRegion AttachmentKind = iota
	AttachmentBoundingBox
	AttachmentMesh
	AttachmentPath
	AttachmentPoint
	AttachmentClipping
)

// Attachment is implemented by every attachment variant. There is no
// Linkedmesh variant: a linked mesh is stored in its Skin as a
// *MeshAttachment, and ParentMesh is set before the read returns.
type Attachment interface {
	Kind() AttachmentKind
	AttachmentName() string
}

// Sequence (4.2+) drives a region or mesh attachment through a strip of
// frames (e.g. a sprite sheet animation) independent of any timeline.
type Sequence struct {
	Count      int32
	Start      int32
	Digits     int32
	SetupIndex int32
}

// RegionAttachment is a single quad textured by an image.
type RegionAttachment struct {
	Name string
	Path string

	Rotation       float32
	X, Y           float32
	ScaleX, ScaleY float32
	Width, Height  float32

	Color Color

	Sequence *Sequence
}

func (a *RegionAttachment) Kind() AttachmentKind { return AttachmentRegion }
func (a *RegionAttachment) AttachmentName() string { return a.Name }

// BoundingBoxAttachment is a polygon used for hit testing, not rendering.
type BoundingBoxAttachment struct {
	Name     string
	Vertices VertexData
	Color    *Color
}

func (a *BoundingBoxAttachment) Kind() AttachmentKind { return AttachmentBoundingBox }
func (a *BoundingBoxAttachment) AttachmentName() string { return a.Name }

// MeshAttachment is a triangulated, optionally bone-weighted mesh. A mesh
// loaded from a Linkedmesh record is stored in its Skin when read and also
// queued on the loader's pending-linked-mesh work list; ParentMesh is set
// once the linked-mesh resolution pass runs, before the read returns.
type MeshAttachment struct {
	Name string
	Path string
	Color Color

	UVs      []float32 // unscaled, 2 per vertex
	Triangles []uint16
	Vertices VertexData

	HullLength int32
	Edges      []uint16 // present only when nonessential
	Width, Height float32 // present only when nonessential

	Sequence *Sequence

	// Linked-mesh fields. ParentMesh and TimelineAttachment are nil until
	// the linked-mesh resolution pass runs (see loader/internal/linkedmesh);
	// a non-linked mesh never populates them.
	ParentMesh        *MeshAttachment
	TimelineAttachment Attachment
	InheritTimeline    bool
}

func (a *MeshAttachment) Kind() AttachmentKind { return AttachmentMesh }
func (a *MeshAttachment) AttachmentName() string { return a.Name }

// PathAttachment is an open or closed curve other attachments/constraints
// can follow.
type PathAttachment struct {
	Name string

	Closed        bool
	ConstantSpeed bool

	Vertices VertexData
	Lengths  []float32 // vertex count / 3 entries, scaled

	Color *Color
}

func (a *PathAttachment) Kind() AttachmentKind { return AttachmentPath }
func (a *PathAttachment) AttachmentName() string { return a.Name }

// PointAttachment marks a single scaled point and rotation, e.g. for
// attaching effects.
type PointAttachment struct {
	Name string

	Rotation float32
	X, Y     float32

	Color *Color
}

func (a *PointAttachment) Kind() AttachmentKind { return AttachmentPoint }
func (a *PointAttachment) AttachmentName() string { return a.Name }

// ClippingAttachment is a polygon that clips rendering of everything up to
// EndSlot.
type ClippingAttachment struct {
	Name    string
	EndSlot *Slot

	Vertices VertexData
	Color    *Color
}

func (a *ClippingAttachment) Kind() AttachmentKind { return AttachmentClipping }
func (a *ClippingAttachment) AttachmentName() string { return a.Name }

// VertexData stores an attachment's vertex positions, either as a flat,
// unweighted array of setup-pose coordinates or as a bone-weighted
// interleaved array. Exactly one representation is populated, selected by
// Weighted.
type VertexData struct {
	Weighted bool

	// SetupVertices holds 2 floats per vertex (x, y) when unweighted.
	SetupVertices []float32

	// Bones and Weights hold the weighted encoding: for each vertex, a bone
	// count, that many bone indices, and that many (x, y, weight) triples —
	// the count and indices are interleaved into Bones exactly as read off
	// the wire (count, boneIndex, boneIndex, ...repeated per vertex), while
	// Weights holds the matching flat run of (x, y, weight) triples.
	Bones   []int32
	Weights []float32
}
