package jsonshared

import (
	"testing"

	"github.com/duskforge/skelasset/internal/domutil"
	"github.com/duskforge/skelasset/skeldata"
)

func TestReadCurveFramesLinearStepAndBezier(t *testing.T) {
	arr := domutil.Array{
		domutil.Object{"time": 0.0, "x": 1.0, "y": 2.0},
		domutil.Object{"time": 0.5, "x": 3.0, "y": 4.0, "curve": domutil.Array{0.25, 0.1, 0.75, 0.9}},
		// A frame's "curve" describes the gap after it, so the last frame's
		// "stepped" has no gap to apply to and is ignored.
		domutil.Object{"time": 1.0, "x": 5.0, "y": 6.0, "curve": "stepped"},
	}
	channels := []channelSpec{{key: "x", scale: 1}, {key: "y", scale: 2}}

	vf, err := readCurveFrames(arr, channels, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vf.Stride != 3 {
		t.Fatalf("expected stride 3, got %d", vf.Stride)
	}
	if vf.FrameCount() != 3 {
		t.Fatalf("expected 3 frames, got %d", vf.FrameCount())
	}
	if got := vf.Frames[1*3+2]; got != 8 {
		t.Errorf("expected scaled y value 8, got %v", got)
	}
	if len(vf.Curves.Types) != 2 {
		t.Fatalf("expected 2 curve gaps, got %d", len(vf.Curves.Types))
	}
	if vf.Curves.Types[0] != skeldata.CurveLinear {
		t.Errorf("expected first gap linear, got %v", vf.Curves.Types[0])
	}
	if vf.Curves.Types[1] != skeldata.CurveBezier {
		t.Errorf("expected second gap bezier, got %v", vf.Curves.Types[1])
	}
	if len(vf.Curves.Beziers) != 1 || vf.Curves.Beziers[0].CX1 != 0.25 {
		t.Errorf("unexpected bezier point: %+v", vf.Curves.Beziers)
	}
}

func TestReadCurveFramesEmpty(t *testing.T) {
	vf, err := readCurveFrames(nil, []channelSpec{{key: "x", scale: 1}}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vf.FrameCount() != 0 {
		t.Errorf("expected 0 frames, got %d", vf.FrameCount())
	}
}

func TestReadColorCurveFramesDefaultsAndParsing(t *testing.T) {
	arr := domutil.Array{
		domutil.Object{"time": 0.0, "color": "ff0000ff"},
		domutil.Object{"time": 1.0},
	}
	vf, err := readColorCurveFrames(arr, []colorPart{{key: "color", channels: 4}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vf.Stride != 5 {
		t.Fatalf("expected stride 5, got %d", vf.Stride)
	}
	if vf.Frames[1] != 1 || vf.Frames[2] != 0 || vf.Frames[3] != 0 || vf.Frames[4] != 1 {
		t.Errorf("unexpected first frame rgba: %v", vf.Frames[1:5])
	}
	second := vf.Frames[5:10]
	if second[1] != 1 || second[2] != 1 || second[3] != 1 || second[4] != 1 {
		t.Errorf("expected default white for missing color field, got %v", second[1:5])
	}
}

func TestReadBroadcastCurveFramesExpandsLegacyFields(t *testing.T) {
	arr := domutil.Array{
		domutil.Object{"time": 0.0, "rotateMix": 0.5, "translateMix": 0.25},
	}
	vf, err := readBroadcastCurveFrames(arr, []string{"rotateMix", "translateMix"}, []int{0, 1, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vf.Stride != 4 {
		t.Fatalf("expected stride 4, got %d", vf.Stride)
	}
	if vf.Frames[1] != 0.5 || vf.Frames[2] != 0.25 || vf.Frames[3] != 0.25 {
		t.Errorf("unexpected broadcast frame: %v", vf.Frames[1:4])
	}
}

func TestReadCurveFramesRejectsNonObjectEntry(t *testing.T) {
	arr := domutil.Array{"not-an-object"}
	if _, err := readCurveFrames(arr, []channelSpec{{key: "x", scale: 1}}, 1); err == nil {
		t.Error("expected an error for a non-object frame entry")
	}
}
