package skeldata

// Inherit describes how a bone's local transform combines with its parent's.
type Inherit int32

const (
	InheritNormal Inherit = iota
	InheritOnlyTranslation
	InheritNoRotationOrReflection
	InheritNoScale
	InheritNoScaleOrReflection
)

// Bone is one node of the skeleton transform tree. Entry 0 has no parent;
// every subsequent bone's Parent was defined earlier in Bones, so the slice
// is already in topological order.
type Bone struct {
	Name   string
	Parent *Bone // nil for the root bone

	// Setup-pose local transform.
	Rotation           float32
	X, Y               float32
	ScaleX, ScaleY     float32
	ShearX, ShearY     float32
	Length             float32

	Inherit Inherit

	// SkinRequired is true when this bone is only relevant to skins that
	// declare it in their required-bones list (see Skin.Bones).
	SkinRequired bool

	// Color is present only when the stream's nonessential flag was set.
	Color *Color
}
