package jsonshared

import (
	"testing"

	"github.com/duskforge/skelasset/internal/domutil"
	"github.com/duskforge/skelasset/loader/internal/binshared"
	"github.com/duskforge/skelasset/skeldata"
)

func TestReadEndToEndSkeletonWithAnimation(t *testing.T) {
	root := domutil.Object{
		"bones": domutil.Array{
			domutil.Object{"name": "root"},
			domutil.Object{"name": "hip", "parent": "root"},
		},
		"slots": domutil.Array{
			domutil.Object{"name": "body", "bone": "hip", "attachment": "body-img"},
		},
		"events": domutil.Object{
			"footstep": domutil.Object{"int": 1.0},
		},
		"animations": domutil.Object{
			"walk": domutil.Object{
				"bones": domutil.Object{
					"hip": domutil.Object{
						"rotate": domutil.Array{
							domutil.Object{"time": 0.0, "value": 0.0},
							domutil.Object{"time": 1.0, "value": 90.0},
						},
					},
				},
			},
		},
	}

	data := skeldata.New()
	err := Read(root, binshared.V42, 1, data, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(data.Bones) != 2 {
		t.Fatalf("expected 2 bones, got %d", len(data.Bones))
	}
	if data.Bones[1].Parent != data.Bones[0] {
		t.Error("expected hip's parent to resolve to root")
	}
	if len(data.Slots) != 1 || data.Slots[0].AttachmentName != "body-img" {
		t.Fatalf("unexpected slots: %+v", data.Slots)
	}
	if len(data.Events) != 1 || data.Events[0].Name != "footstep" {
		t.Fatalf("unexpected events: %+v", data.Events)
	}
	if len(data.Animations) != 1 {
		t.Fatalf("expected 1 animation, got %d", len(data.Animations))
	}
	anim := data.Animations[0]
	if anim.Name != "walk" {
		t.Errorf("expected animation named walk, got %q", anim.Name)
	}
	if anim.Duration != 1 {
		t.Errorf("expected duration 1, got %v", anim.Duration)
	}
	if len(anim.Timelines) != 1 {
		t.Fatalf("expected 1 timeline, got %d", len(anim.Timelines))
	}
	rt, ok := anim.Timelines[0].(*skeldata.RotateTimeline)
	if !ok {
		t.Fatalf("expected a RotateTimeline, got %T", anim.Timelines[0])
	}
	if rt.BoneIndex != 1 {
		t.Errorf("expected bone index 1 for hip, got %d", rt.BoneIndex)
	}
	if rt.FrameCount() != 2 {
		t.Errorf("expected 2 frames, got %d", rt.FrameCount())
	}
}
