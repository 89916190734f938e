package binshared

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/duskforge/skelasset/internal/wire"
	"github.com/duskforge/skelasset/skeldata"
)

type bufBuilder struct{ buf []byte }

func (b *bufBuilder) f32(v float32) *bufBuilder {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], math.Float32bits(v))
	b.buf = append(b.buf, tmp[:]...)
	return b
}

func (b *bufBuilder) sbyte(v int8) *bufBuilder {
	b.buf = append(b.buf, byte(v))
	return b
}

func (b *bufBuilder) byte(v byte) *bufBuilder {
	b.buf = append(b.buf, v)
	return b
}

func (b *bufBuilder) i32(v int32) *bufBuilder {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], uint32(v))
	b.buf = append(b.buf, tmp[:]...)
	return b
}

// varint encodes small non-negative values (<128) as the single-byte
// optimize-positive varint readDrawOrderTimeline/readEventTimeline expect.
func (b *bufBuilder) varint(v int32) *bufBuilder {
	b.buf = append(b.buf, byte(v))
	return b
}

func TestReadCurveValuesLinearAndBezier4x(t *testing.T) {
	b := &bufBuilder{}
	b.f32(0).f32(1) // frame 0: time=0 value=1
	b.f32(1).f32(3) // frame 1: time=1 value=3
	b.sbyte(curveBezier).
		f32(0.1).f32(0.2).f32(0.3).f32(0.4) // gap 0->1: bezier tuple

	cur := wire.NewCursor(b.buf)
	vf, err := readCurveValues(cur, V42, "rotate", 2, []float32{1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vf.Stride != 2 || vf.FrameCount() != 2 {
		t.Fatalf("unexpected shape: stride=%d frames=%d", vf.Stride, vf.FrameCount())
	}
	if vf.Frames[2] != 1 || vf.Frames[3] != 3 {
		t.Errorf("unexpected frame values: %v", vf.Frames)
	}
	if len(vf.Curves.Types) != 1 || vf.Curves.Types[0] != skeldata.CurveBezier {
		t.Fatalf("expected one bezier gap, got %+v", vf.Curves.Types)
	}
	if vf.Curves.Beziers[0].CX1 != 0.1 {
		t.Errorf("unexpected bezier cx1: %v", vf.Curves.Beziers[0].CX1)
	}
}

func TestReadCurveValuesScalesOnlyValueChannels(t *testing.T) {
	b := &bufBuilder{}
	b.f32(0).f32(1).f32(2) // frame 0: time, x, y
	// single frame: no gap to read
	cur := wire.NewCursor(b.buf)
	vf, err := readCurveValues(cur, V42, "translate", 1, []float32{2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vf.Frames[1] != 2 || vf.Frames[2] != 6 {
		t.Errorf("expected scaled values [2,6], got %v", vf.Frames[1:3])
	}
}

func TestReadColorCurveBytesToFloat(t *testing.T) {
	b := &bufBuilder{}
	b.f32(0).byte(255).byte(0).byte(128).byte(255)
	cur := wire.NewCursor(b.buf)
	vf, err := readColorCurve(cur, "rgba", 1, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vf.Frames[1] != 1 || vf.Frames[2] != 0 || vf.Frames[4] != 1 {
		t.Errorf("unexpected color values: %v", vf.Frames[1:5])
	}
}

func TestReadLegacyPackedColorSingleFrame(t *testing.T) {
	b := &bufBuilder{}
	packed := uint32(0xff00ff80)
	b.f32(0).i32(int32(packed))
	cur := wire.NewCursor(b.buf)
	vf, err := readLegacyPackedColor(cur, "color", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vf.Stride != 5 {
		t.Fatalf("expected stride 5, got %d", vf.Stride)
	}
	if vf.Frames[1] != 1 || vf.Frames[2] != 0 || vf.Frames[3] != 1 {
		t.Errorf("unexpected packed color: %v", vf.Frames[1:5])
	}
}

func TestReadBroadcastCurveExpandsRawChannels(t *testing.T) {
	b := &bufBuilder{}
	b.f32(0).f32(0.5).f32(0.25) // time, rotateMix, translateMix
	cur := wire.NewCursor(b.buf)
	vf, err := readBroadcastCurve(cur, "transform mix", 1, 2, []int{0, 1, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vf.Stride != 4 {
		t.Fatalf("expected stride 4, got %d", vf.Stride)
	}
	if vf.Frames[1] != 0.5 || vf.Frames[2] != 0.25 || vf.Frames[3] != 0.25 {
		t.Errorf("unexpected broadcast values: %v", vf.Frames[1:4])
	}
}

func TestReadCurveValuesZeroFrames(t *testing.T) {
	cur := wire.NewCursor(nil)
	vf, err := readCurveValues(cur, V42, "rotate", 0, []float32{1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vf.FrameCount() != 0 {
		t.Errorf("expected 0 frames, got %d", vf.FrameCount())
	}
}

func TestReadDrawOrderTimelinePermutation(t *testing.T) {
	b := &bufBuilder{}
	b.varint(1)    // 1 frame
	b.f32(0)       // time
	b.varint(1)    // 1 offset
	b.varint(0)    // slot index 0
	b.varint(2)    // offset +2 -> slot 0 moves to position 2

	cur := wire.NewCursor(b.buf)
	tl, err := readDrawOrderTimeline(cur, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tl.Frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(tl.Frames))
	}
	got := tl.Frames[0].DrawOrder
	want := []int32{1, 2, 0}
	for i, v := range want {
		if got[i] != v {
			t.Errorf("drawOrder[%d]: expected %d, got %d (full: %v)", i, v, got[i], got)
		}
	}
}

func TestReadDrawOrderTimelineZeroCountReturnsNil(t *testing.T) {
	b := &bufBuilder{}
	b.varint(0)
	cur := wire.NewCursor(b.buf)
	tl, err := readDrawOrderTimeline(cur, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tl != nil {
		t.Errorf("expected nil timeline for zero-count, got %+v", tl)
	}
}

func TestReadEventTimelineResolvesDefaultsAndOverrides(t *testing.T) {
	events := []*skeldata.EventData{{Name: "footstep", Str: "default-str"}}

	b := &bufBuilder{}
	b.varint(1)     // 1 frame
	b.f32(1.5)      // time
	b.varint(0)     // event index 0
	b.varint(14)    // int value 7, zig-zag encoded (7<<1)
	b.f32(0.25)     // float value
	b.byte(0)       // freeString = false -> use def.Str

	cur := wire.NewCursor(b.buf)
	tl, err := readEventTimeline(cur, events)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tl.Frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(tl.Frames))
	}
	f := tl.Frames[0]
	if f.Time != 1.5 || f.Int != 7 || f.Float != 0.25 || f.Str != "default-str" {
		t.Errorf("unexpected event frame: %+v", f)
	}
	if f.Data != events[0] {
		t.Error("expected frame.Data to resolve to the event definition")
	}
}

func TestReadEventTimelineOutOfRangeIndexErrors(t *testing.T) {
	events := []*skeldata.EventData{{Name: "only"}}
	b := &bufBuilder{}
	b.varint(1).f32(0).varint(5)
	cur := wire.NewCursor(b.buf)
	if _, err := readEventTimeline(cur, events); err == nil {
		t.Error("expected an error for an out-of-range event index")
	}
}
