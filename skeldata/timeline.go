package skeldata

// CurveType is the per-frame interpolation tag between a keyframe and the
// one following it.
type CurveType int8

const (
	CurveLinear CurveType = iota
	CurveStepped
	CurveBezier
)

// BezierPoint is one (cx1, cy1, cx2, cy2) Bézier control-point quadruple.
// 4.x binary stores one per curved channel per Bézier gap; 3.8 binary and
// JSON store one per Bézier gap, shared by every channel.
type BezierPoint struct {
	CX1, CY1, CX2, CY2 float32
}

// Curves holds the per-frame-gap interpolation tags and the packed
// auxiliary Bézier control points referenced by CurveBezier entries. Types
// has one entry per frame except the last (there is nothing to interpolate
// toward after it).
type Curves struct {
	Types   []CurveType
	Beziers []BezierPoint
}

// Timeline is implemented by every timeline variant. Duration is the time
// of the timeline's last frame, matching spec invariant 5
// (animation.duration == max(timeline.duration)).
type Timeline interface {
	Duration() float32
}

// ValueFrames is the shared representation for every timeline whose frames
// are (time, value...) tuples on a fixed stride, with optional per-gap
// curve interpolation. Most curve timelines (RGBA, Rotate, Translate,
// Scale, Shear, the constraint mix timelines, the physics value timelines)
// embed this directly.
type ValueFrames struct {
	Stride int // 1 (time) + channel count
	Frames []float32
	Curves Curves
}

func (v *ValueFrames) Duration() float32 {
	if len(v.Frames) < v.Stride {
		return 0
	}
	return v.Frames[len(v.Frames)-v.Stride]
}

// FrameCount returns how many (time, value...) tuples are stored.
func (v *ValueFrames) FrameCount() int {
	if v.Stride == 0 {
		return 0
	}
	return len(v.Frames) / v.Stride
}

// AttachmentFrame sets or clears a slot's active attachment at Time.
type AttachmentFrame struct {
	Time float32
	Name string // empty + HasName == false means "no attachment"
	HasName bool
}

// AttachmentTimeline swaps a slot's attachment by name; it has no curve
// interpolation, since an attachment name cannot be interpolated.
type AttachmentTimeline struct {
	SlotIndex int
	Frames    []AttachmentFrame
}

func (t *AttachmentTimeline) Duration() float32 {
	if len(t.Frames) == 0 {
		return 0
	}
	return t.Frames[len(t.Frames)-1].Time
}

// RGBATimeline animates a slot's light+alpha color (4 channels: r,g,b,a).
type RGBATimeline struct {
	SlotIndex int
	ValueFrames
}

// RGBTimeline animates a slot's light color only (3 channels), alpha fixed.
type RGBTimeline struct {
	SlotIndex int
	ValueFrames
}

// AlphaTimeline animates a slot's alpha channel only (1 channel).
type AlphaTimeline struct {
	SlotIndex int
	ValueFrames
}

// RGBA2Timeline animates a slot's light+alpha and dark color (7 channels:
// r,g,b,a, r2,g2,b2).
type RGBA2Timeline struct {
	SlotIndex int
	ValueFrames
}

// RGB2Timeline animates a slot's light and dark color (6 channels: r,g,b,
// r2,g2,b2), no alpha.
type RGB2Timeline struct {
	SlotIndex int
	ValueFrames
}

// RotateTimeline animates a bone's local rotation (1 channel, degrees).
type RotateTimeline struct {
	BoneIndex int
	ValueFrames
}

// TranslateTimeline animates a bone's x and y (2 channels).
type TranslateTimeline struct {
	BoneIndex int
	ValueFrames
}

// TranslateXTimeline/TranslateYTimeline animate one axis (1 channel).
type TranslateXTimeline struct {
	BoneIndex int
	ValueFrames
}
type TranslateYTimeline struct {
	BoneIndex int
	ValueFrames
}

// ScaleTimeline animates a bone's scaleX and scaleY (2 channels).
type ScaleTimeline struct {
	BoneIndex int
	ValueFrames
}
type ScaleXTimeline struct {
	BoneIndex int
	ValueFrames
}
type ScaleYTimeline struct {
	BoneIndex int
	ValueFrames
}

// ShearTimeline animates a bone's shearX and shearY (2 channels).
type ShearTimeline struct {
	BoneIndex int
	ValueFrames
}
type ShearXTimeline struct {
	BoneIndex int
	ValueFrames
}
type ShearYTimeline struct {
	BoneIndex int
	ValueFrames
}

// InheritTimeline sets a bone's Inherit mode at each frame; like
// AttachmentTimeline, it has no curve interpolation.
type InheritFrame struct {
	Time    float32
	Inherit Inherit
}
type InheritTimeline struct {
	BoneIndex int
	Frames    []InheritFrame
}

func (t *InheritTimeline) Duration() float32 {
	if len(t.Frames) == 0 {
		return 0
	}
	return t.Frames[len(t.Frames)-1].Time
}

// IkConstraintFlags carries the per-frame non-curved flags alongside the
// curved mix/softness values stored in the owning timeline's ValueFrames.
type IkConstraintFlags struct {
	BendDirection int8
	Compress      bool
	Stretch       bool
}

// IkConstraintTimeline animates mix and softness (2 curved channels) plus
// per-frame bend-direction/compress/stretch flags.
type IkConstraintTimeline struct {
	ConstraintIndex int
	Flags           []IkConstraintFlags // one entry per frame, parallel to ValueFrames
	ValueFrames
}

// TransformConstraintTimeline animates all six mix components (6 channels).
type TransformConstraintTimeline struct {
	ConstraintIndex int
	ValueFrames
}

// PathConstraintPositionTimeline/SpacingTimeline animate one value (1
// channel); PathConstraintMixTimeline animates mixRotate/mixX/mixY (3
// channels, or effectively 2 distinct values pre-4.0 — see loader package
// for the legacy broadcast).
type PathConstraintPositionTimeline struct {
	ConstraintIndex int
	ValueFrames
}
type PathConstraintSpacingTimeline struct {
	ConstraintIndex int
	ValueFrames
}
type PathConstraintMixTimeline struct {
	ConstraintIndex int
	ValueFrames
}

// PhysicsKind selects which scalar property a PhysicsConstraintTimeline
// animates (or, for Reset, that it simply re-triggers the constraint).
type PhysicsKind int

// The wire tags skip 3 (spec.md §6's timeline kind table lists Mass at
// tag 4, not 3 — a gap in the original enum this reader preserves rather
// than silently renumbering).
const (
	PhysicsInertia PhysicsKind = iota
	PhysicsStrength
	PhysicsDamping
	physicsReservedTag3
	PhysicsMass
	PhysicsWind
	PhysicsGravity
	PhysicsMix
	PhysicsReset
)

// PhysicsConstraintTimeline animates one scalar physics property (1
// channel), or for PhysicsReset simply re-triggers the constraint at each
// frame time with no curve and no value.
type PhysicsConstraintTimeline struct {
	ConstraintIndex int // -1 means "all physics constraints"
	Kind            PhysicsKind
	ResetTimes      []float32 // populated only when Kind == PhysicsReset
	ValueFrames
}

func (t *PhysicsConstraintTimeline) Duration() float32 {
	if t.Kind == PhysicsReset {
		if len(t.ResetTimes) == 0 {
			return 0
		}
		return t.ResetTimes[len(t.ResetTimes)-1]
	}
	return t.ValueFrames.Duration()
}

// DeformFrame is one deform keyframe: the dense vertex-offset array after
// the start/end slice and (for unweighted attachments) setup-vertex
// addition described in spec.md §4.5 has already been applied.
type DeformFrame struct {
	Time     float32
	Vertices []float32
}

// DeformTimeline animates a mesh attachment's per-vertex offsets.
type DeformTimeline struct {
	SlotIndex  int
	Attachment *MeshAttachment
	Frames     []DeformFrame
	Curves     Curves
}

func (t *DeformTimeline) Duration() float32 {
	if len(t.Frames) == 0 {
		return 0
	}
	return t.Frames[len(t.Frames)-1].Time
}

// DrawOrderFrame is a fully resolved permutation of slot indices (spec
// invariant 6: a permutation of 0..slotCount-1, no -1 left).
type DrawOrderFrame struct {
	Time      float32
	DrawOrder []int32
}

type DrawOrderTimeline struct {
	Frames []DrawOrderFrame
}

func (t *DrawOrderTimeline) Duration() float32 {
	if len(t.Frames) == 0 {
		return 0
	}
	return t.Frames[len(t.Frames)-1].Time
}

// EventFrame is one firing of an event during an animation, with its
// instance-specific values resolved from either the stream or the event's
// definition defaults.
type EventFrame struct {
	Time        float32
	Data        *EventData
	Int         int32
	Float       float32
	Str         string
	Volume      float32
	Balance     float32
}

type EventTimeline struct {
	Frames []EventFrame
}

func (t *EventTimeline) Duration() float32 {
	if len(t.Frames) == 0 {
		return 0
	}
	return t.Frames[len(t.Frames)-1].Time
}

// SequenceFrame drives an attachment's Sequence strip.
type SequenceFrame struct {
	Time  float32
	Mode  int32
	Index int32
	Delay float32
}

type SequenceTimeline struct {
	SlotIndex      int
	AttachmentName string
	Frames         []SequenceFrame
}

func (t *SequenceTimeline) Duration() float32 {
	if len(t.Frames) == 0 {
		return 0
	}
	return t.Frames[len(t.Frames)-1].Time
}
