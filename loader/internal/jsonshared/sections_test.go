package jsonshared

import (
	"testing"

	"github.com/duskforge/skelasset/internal/domutil"
	"github.com/duskforge/skelasset/loader/internal/binshared"
	"github.com/duskforge/skelasset/skeldata"
)

func TestParseColorSixAndEightDigitAndMalformed(t *testing.T) {
	if c := parseColor("ff0000"); c != [4]float32{1, 0, 0, 1} {
		t.Errorf("unexpected 6-digit color: %v", c)
	}
	if c := parseColor("80808080"); c[3] != float32(0x80)/255 {
		t.Errorf("unexpected alpha channel: %v", c)
	}
	if c := parseColor("zz"); c != [4]float32{1, 1, 1, 1} {
		t.Errorf("expected white default for malformed color, got %v", c)
	}
}

func TestReadBonesParentAndInherit(t *testing.T) {
	root := domutil.Object{
		"bones": domutil.Array{
			domutil.Object{"name": "root"},
			domutil.Object{"name": "hip", "parent": "root", "x": 1.0, "y": 2.0, "inherit": "noScale"},
		},
	}
	bones, err := readBones(root, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bones) != 2 {
		t.Fatalf("expected 2 bones, got %d", len(bones))
	}
	if bones[1].Parent != bones[0] {
		t.Error("expected hip's parent to be root")
	}
	if bones[1].X != 2 || bones[1].Y != 4 {
		t.Errorf("expected scaled position, got x=%v y=%v", bones[1].X, bones[1].Y)
	}
	if bones[1].Inherit != skeldata.InheritNoScale {
		t.Errorf("expected InheritNoScale, got %v", bones[1].Inherit)
	}
}

func TestReadBonesUnknownParentErrors(t *testing.T) {
	root := domutil.Object{"bones": domutil.Array{domutil.Object{"name": "hip", "parent": "missing"}}}
	if _, err := readBones(root, 1); err == nil {
		t.Error("expected an error for an unknown parent reference")
	}
}

func TestReadSlotsResolvesBoneAndColor(t *testing.T) {
	bones := []*skeldata.Bone{{Name: "root"}}
	root := domutil.Object{
		"slots": domutil.Array{
			domutil.Object{"name": "body", "bone": "root", "color": "ff0000ff", "attachment": "body-img"},
		},
	}
	slots, err := readSlots(root, bones)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 1 || slots[0].Bone != bones[0] {
		t.Fatalf("expected slot bound to root bone, got %+v", slots)
	}
	if slots[0].Color.R != 1 || slots[0].Color.G != 0 {
		t.Errorf("unexpected slot color: %+v", slots[0].Color)
	}
	if slots[0].AttachmentName != "body-img" {
		t.Errorf("expected attachment name body-img, got %q", slots[0].AttachmentName)
	}
}

func TestReadIkConstraintsBendDirectionDefault(t *testing.T) {
	bones := []*skeldata.Bone{{Name: "a"}, {Name: "b"}}
	root := domutil.Object{
		"ik": domutil.Array{
			domutil.Object{"name": "ik1", "bones": domutil.Array{"a"}, "target": "b", "bendPositive": false},
		},
	}
	out, err := readIkConstraints(root, bones)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].BendDirection != -1 {
		t.Errorf("expected bend direction -1, got %+v", out)
	}
	if out[0].Target != bones[1] {
		t.Error("expected target to resolve to bone b")
	}
}

func TestReadTransformConstraintsLegacyBroadcast(t *testing.T) {
	bones := []*skeldata.Bone{{Name: "a"}, {Name: "b"}}
	root := domutil.Object{
		"transform": domutil.Array{
			domutil.Object{
				"name": "tc", "bones": domutil.Array{"a"}, "target": "b",
				"rotateMix": 0.5, "translateMix": 0.25, "scaleMix": 0.75, "shearMix": 1.0,
			},
		},
	}
	out, err := readTransformConstraints(root, binshared.V38, 1, bones)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := out[0]
	if c.MixRotate != 0.5 || c.MixX != 0.25 || c.MixY != 0.25 || c.MixScaleX != 0.75 || c.MixScaleY != 0.75 || c.MixShearY != 1.0 {
		t.Errorf("unexpected broadcast mix values: %+v", c)
	}
}

func TestReadTransformConstraintsModernFields(t *testing.T) {
	bones := []*skeldata.Bone{{Name: "a"}, {Name: "b"}}
	root := domutil.Object{
		"transform": domutil.Array{
			domutil.Object{
				"name": "tc", "bones": domutil.Array{"a"}, "target": "b",
				"mixRotate": 0.1, "mixX": 0.2, "mixY": 0.3, "mixScaleX": 0.4, "mixScaleY": 0.5, "mixShearY": 0.6,
			},
		},
	}
	out, err := readTransformConstraints(root, binshared.V42, 1, bones)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := out[0]
	if c.MixRotate != 0.1 || c.MixX != 0.2 || c.MixShearY != 0.6 {
		t.Errorf("unexpected modern mix values: %+v", c)
	}
}

func TestReadPathConstraintsScalesFixedModes(t *testing.T) {
	bones := []*skeldata.Bone{{Name: "a"}}
	slots := []*skeldata.Slot{{Name: "target-slot"}}
	root := domutil.Object{
		"path": domutil.Array{
			domutil.Object{
				"name": "pc", "bones": domutil.Array{"a"}, "target": "target-slot",
				"positionMode": "fixed", "spacingMode": "fixed",
				"position": 10.0, "spacing": 5.0,
			},
		},
	}
	out, err := readPathConstraints(root, 2, bones, slots)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := out[0]
	if c.Position != 20 || c.Spacing != 10 {
		t.Errorf("expected scaled fixed position/spacing, got position=%v spacing=%v", c.Position, c.Spacing)
	}
	if c.Target != slots[0] {
		t.Error("expected target to resolve to target-slot")
	}
}

func TestReadPhysicsConstraintsDefaults(t *testing.T) {
	bones := []*skeldata.Bone{{Name: "a"}}
	root := domutil.Object{
		"physics": domutil.Array{domutil.Object{"name": "phys", "bone": "a"}},
	}
	out, err := readPhysicsConstraints(root, bones)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := out[0]
	if c.Inertia != 1 || c.Strength != 100 || c.Damping != 1 || c.Mass != 1 || c.Mix != 1 {
		t.Errorf("unexpected physics constraint defaults: %+v", c)
	}
	if c.Bone != bones[0] {
		t.Error("expected bone to resolve to a")
	}
}
