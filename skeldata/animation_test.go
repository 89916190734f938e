package skeldata

import "testing"

type stubTimeline struct{ duration float32 }

func (s stubTimeline) Duration() float32 { return s.duration }

func TestComputeDurationTakesMax(t *testing.T) {
	anim := &Animation{Timelines: []Timeline{stubTimeline{1}, stubTimeline{3.5}, stubTimeline{2}}}
	anim.ComputeDuration()
	if anim.Duration != 3.5 {
		t.Errorf("expected 3.5, got %v", anim.Duration)
	}
}

func TestComputeDurationEmpty(t *testing.T) {
	anim := &Animation{}
	anim.ComputeDuration()
	if anim.Duration != 0 {
		t.Errorf("expected 0, got %v", anim.Duration)
	}
}

func TestValueFramesDuration(t *testing.T) {
	vf := ValueFrames{Stride: 2, Frames: []float32{0, 1, 0.5, 2, 1.25, 3}}
	if d := vf.Duration(); d != 1.25 {
		t.Errorf("expected 1.25, got %v", d)
	}
	if n := vf.FrameCount(); n != 3 {
		t.Errorf("expected 3 frames, got %d", n)
	}
}
