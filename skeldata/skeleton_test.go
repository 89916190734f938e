package skeldata

import "testing"

func TestFindHelpersMissAndHit(t *testing.T) {
	data := New()
	data.Bones = []*Bone{{Name: "root"}, {Name: "hip"}}
	data.Slots = []*Slot{{Name: "body"}}
	data.Skins = []*Skin{{Name: "default"}}
	data.Events = []*EventData{{Name: "footstep"}}
	data.Animations = []*Animation{{Name: "walk"}}

	if b := data.FindBone("hip"); b == nil || b.Name != "hip" {
		t.Errorf("expected to find bone hip, got %v", b)
	}
	if b := data.FindBone("missing"); b != nil {
		t.Errorf("expected nil for missing bone, got %v", b)
	}
	if s := data.FindSlot("body"); s == nil {
		t.Error("expected to find slot body")
	}
	if sk := data.FindSkin("default"); sk == nil {
		t.Error("expected to find skin default")
	}
	if e := data.FindEventData("footstep"); e == nil {
		t.Error("expected to find event footstep")
	}
	if a := data.FindAnimation("walk"); a == nil {
		t.Error("expected to find animation walk")
	}
}
