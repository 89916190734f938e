package skeldata

// IkConstraint drives one or two bones to reach toward a target bone.
type IkConstraint struct {
	Name         string
	Order        int32
	SkinRequired bool

	Bones  []*Bone
	Target *Bone

	Mix       float32
	Softness  float32
	BendDirection int32
	Compress  bool
	Stretch   bool
	Uniform   bool
}

// TransformConstraint copies or offsets a target bone's transform onto a
// set of constrained bones.
type TransformConstraint struct {
	Name         string
	Order        int32
	SkinRequired bool

	Bones  []*Bone
	Target *Bone

	MixRotate, MixX, MixY, MixScaleX, MixScaleY, MixShearY float32

	OffsetRotation                     float32
	OffsetX, OffsetY                   float32
	OffsetScaleX, OffsetScaleY         float32
	OffsetShearY                       float32

	RelativeValues bool
	LocalValues    bool
}

// PositionMode and SpacingMode select how a PathConstraint's Position and
// Spacing fields are interpreted along the path.
type PositionMode int32

const (
	PositionFixed PositionMode = iota
	PositionPercent
)

type SpacingMode int32

const (
	SpacingLength SpacingMode = iota
	SpacingFixed
	SpacingPercent
	SpacingProportional
)

type RotateMode int32

const (
	RotateTangent RotateMode = iota
	RotateChain
	RotateChainScale
)

// PathConstraint binds a chain of bones to a path attachment on a slot.
type PathConstraint struct {
	Name         string
	Order        int32
	SkinRequired bool

	Bones  []*Bone
	Target *Slot

	PositionMode PositionMode
	SpacingMode  SpacingMode
	RotateMode   RotateMode

	OffsetRotation float32
	Position       float32
	Spacing        float32

	MixRotate, MixX, MixY float32
}

// PhysicsConstraint (4.2+) adds spring-like secondary motion to one bone.
type PhysicsConstraint struct {
	Name         string
	Order        int32
	SkinRequired bool

	Bone *Bone

	Inertia, Strength, Damping float32
	Mass                       float32
	Wind, Gravity, Mix         float32

	Reset bool
}
