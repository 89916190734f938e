package binshared

import (
	"github.com/duskforge/skelasset/internal/wire"
	"github.com/duskforge/skelasset/skeldata"
)

// Binary timeline kind tags (spec.md §6).
const (
	slotTimelineAttachment = 0
	slotTimelineRGBA       = 1
	slotTimelineRGB        = 2
	slotTimelineRGBA2      = 3
	slotTimelineRGB2       = 4
	slotTimelineAlpha      = 5

	boneTimelineRotate      = 0
	boneTimelineTranslate   = 1
	boneTimelineTranslateX  = 2
	boneTimelineTranslateY  = 3
	boneTimelineScale       = 4
	boneTimelineScaleX      = 5
	boneTimelineScaleY      = 6
	boneTimelineShear       = 7
	boneTimelineShearX      = 8
	boneTimelineShearY      = 9
	boneTimelineInherit     = 10

	pathTimelinePosition = 0
	pathTimelineSpacing  = 1
	pathTimelineMix      = 2

	curveLinear  = 0
	curveStepped = 1
	curveBezier  = 2
)

// bezierCountPrefix consumes the varint "bezier count" that non-Legacy38
// dialects store ahead of a timeline's frame loop (Legacy38 stores none).
// The count only pre-sizes the C++ loader's auxiliary buffer; the Go reader
// allocates dynamically, so the value is discarded.
func bezierCountPrefix(cur *wire.Cursor, dialect Dialect) error {
	if dialect.Legacy38 {
		return nil
	}
	_, err := cur.Varint("timeline bezier count", true)
	return err
}

// readCurveValues decodes the shared (time, value...) curve frame loop
// used by every plain-float multi-channel timeline (rotate, translate,
// scale, shear, transform-constraint mix, path position/spacing/mix,
// physics value timelines). One scale factor is supplied per channel.
//
// dialect.Legacy38 changes how a BEZIER frame gap is encoded: 4.x stores
// one independent (cx1,cy1,cx2,cy2) control-point tuple per channel, while
// 3.8 stores a single tuple that applies to every channel in the gap.
func readCurveValues(cur *wire.Cursor, dialect Dialect, context string, frameCount int32, scales []float32) (skeldata.ValueFrames, error) {
	channels := len(scales)
	vf := skeldata.ValueFrames{Stride: 1 + channels}
	if frameCount == 0 {
		return vf, nil
	}

	time, err := cur.Float32(context + " time")
	if err != nil {
		return vf, err
	}
	vals := make([]float32, channels)
	for ch := 0; ch < channels; ch++ {
		v, err := cur.Float32(context + " value")
		if err != nil {
			return vf, err
		}
		vals[ch] = v * scales[ch]
	}

	frames := make([]float32, 0, int(frameCount)*vf.Stride)
	var curves skeldata.Curves
	frameLast := frameCount - 1

	for frame := int32(0); ; frame++ {
		frames = append(frames, time)
		frames = append(frames, vals...)
		if frame == frameLast {
			break
		}

		time2, err := cur.Float32(context + " time2")
		if err != nil {
			return vf, err
		}
		vals2 := make([]float32, channels)
		for ch := 0; ch < channels; ch++ {
			v, err := cur.Float32(context + " value2")
			if err != nil {
				return vf, err
			}
			vals2[ch] = v * scales[ch]
		}

		tag, err := cur.SByte(context + " curve tag")
		if err != nil {
			return vf, err
		}
		switch tag {
		case curveStepped:
			curves.Types = append(curves.Types, skeldata.CurveStepped)
		case curveBezier:
			curves.Types = append(curves.Types, skeldata.CurveBezier)
			if dialect.Legacy38 {
				bp, err := readBezierPoint(cur, context, 1)
				if err != nil {
					return vf, err
				}
				curves.Beziers = append(curves.Beziers, bp)
			} else {
				for ch := 0; ch < channels; ch++ {
					bp, err := readBezierPoint(cur, context, scales[ch])
					if err != nil {
						return vf, err
					}
					curves.Beziers = append(curves.Beziers, bp)
				}
			}
		default:
			curves.Types = append(curves.Types, skeldata.CurveLinear)
		}

		time, vals = time2, vals2
	}

	vf.Frames = frames
	vf.Curves = curves
	return vf, nil
}

// readBezierPoint reads the four control-point floats a BEZIER frame tag
// emits. Only the value-axis points (cy1, cy2) are scaled; the time-axis
// points (cx1, cx2) never are (spec.md §4.5).
func readBezierPoint(cur *wire.Cursor, context string, scale float32) (skeldata.BezierPoint, error) {
	cx1, err := cur.Float32(context + " bezier cx1")
	if err != nil {
		return skeldata.BezierPoint{}, err
	}
	cy1, err := cur.Float32(context + " bezier cy1")
	if err != nil {
		return skeldata.BezierPoint{}, err
	}
	cx2, err := cur.Float32(context + " bezier cx2")
	if err != nil {
		return skeldata.BezierPoint{}, err
	}
	cy2, err := cur.Float32(context + " bezier cy2")
	if err != nil {
		return skeldata.BezierPoint{}, err
	}
	return skeldata.BezierPoint{CX1: cx1, CY1: cy1 * scale, CX2: cx2, CY2: cy2 * scale}, nil
}

// readColorCurve decodes the byte-encoded (r,g,b,a,...) color frame loop
// shared by RGBA/RGB/Alpha/RGBA2/RGB2; channel values are always bytes
// divided by 255, never scaled by the skeleton scale.
func readColorCurve(cur *wire.Cursor, context string, frameCount int32, channels int) (skeldata.ValueFrames, error) {
	vf := skeldata.ValueFrames{Stride: 1 + channels}
	if frameCount == 0 {
		return vf, nil
	}

	time, err := cur.Float32(context + " time")
	if err != nil {
		return vf, err
	}
	vals := make([]float32, channels)
	for ch := 0; ch < channels; ch++ {
		b, err := cur.Byte(context + " color byte")
		if err != nil {
			return vf, err
		}
		vals[ch] = float32(b) / 255.0
	}

	frames := make([]float32, 0, int(frameCount)*vf.Stride)
	var curves skeldata.Curves
	frameLast := frameCount - 1

	for frame := int32(0); ; frame++ {
		frames = append(frames, time)
		frames = append(frames, vals...)
		if frame == frameLast {
			break
		}

		time2, err := cur.Float32(context + " time2")
		if err != nil {
			return vf, err
		}
		vals2 := make([]float32, channels)
		for ch := 0; ch < channels; ch++ {
			b, err := cur.Byte(context + " color byte2")
			if err != nil {
				return vf, err
			}
			vals2[ch] = float32(b) / 255.0
		}

		tag, err := cur.SByte(context + " curve tag")
		if err != nil {
			return vf, err
		}
		switch tag {
		case curveStepped:
			curves.Types = append(curves.Types, skeldata.CurveStepped)
		case curveBezier:
			curves.Types = append(curves.Types, skeldata.CurveBezier)
			for range make([]struct{}, channels) {
				bp, err := readBezierPoint(cur, context, 1)
				if err != nil {
					return vf, err
				}
				curves.Beziers = append(curves.Beziers, bp)
			}
		default:
			curves.Types = append(curves.Types, skeldata.CurveLinear)
		}

		time, vals = time2, vals2
	}

	vf.Frames = frames
	vf.Curves = curves
	return vf, nil
}

// readLegacyPackedColor decodes the 3.8 SLOT_RGBA frame loop: each frame's
// color arrives as one packed big-endian int32 (spec.md §9's bone-color
// packing applies to slot colors too, pre-4.0), with a single bezier tuple
// per frame gap shared across all four channels.
func readLegacyPackedColor(cur *wire.Cursor, context string, frameCount int32) (skeldata.ValueFrames, error) {
	vf := skeldata.ValueFrames{Stride: 5}
	if frameCount == 0 {
		return vf, nil
	}

	readFrame := func() (float32, [4]float32, error) {
		t, err := cur.Float32(context + " time")
		if err != nil {
			return 0, [4]float32{}, err
		}
		packed, err := cur.Int32(context + " color")
		if err != nil {
			return 0, [4]float32{}, err
		}
		u := uint32(packed)
		return t, [4]float32{
			float32(u>>24&0xff) / 255.0,
			float32(u>>16&0xff) / 255.0,
			float32(u>>8&0xff) / 255.0,
			float32(u&0xff) / 255.0,
		}, nil
	}

	time, vals, err := readFrame()
	if err != nil {
		return vf, err
	}

	frames := make([]float32, 0, int(frameCount)*vf.Stride)
	var curves skeldata.Curves
	frameLast := frameCount - 1

	for frame := int32(0); ; frame++ {
		frames = append(frames, time, vals[0], vals[1], vals[2], vals[3])
		if frame == frameLast {
			break
		}
		time2, vals2, err := readFrame()
		if err != nil {
			return vf, err
		}
		tag, err := cur.SByte(context + " curve tag")
		if err != nil {
			return vf, err
		}
		switch tag {
		case curveStepped:
			curves.Types = append(curves.Types, skeldata.CurveStepped)
		case curveBezier:
			curves.Types = append(curves.Types, skeldata.CurveBezier)
			bp, err := readBezierPoint(cur, context, 1)
			if err != nil {
				return vf, err
			}
			curves.Beziers = append(curves.Beziers, bp)
		default:
			curves.Types = append(curves.Types, skeldata.CurveLinear)
		}
		time, vals = time2, vals2
	}

	vf.Frames = frames
	vf.Curves = curves
	return vf, nil
}

// readLegacyPackedColor2 decodes the 3.8 SLOT_RGB ("two color") frame loop:
// a full RGBA packed int32 plus a second 0x00rrggbb packed int32 (no alpha
// channel), 7 channels total.
func readLegacyPackedColor2(cur *wire.Cursor, context string, frameCount int32) (skeldata.ValueFrames, error) {
	vf := skeldata.ValueFrames{Stride: 8}
	if frameCount == 0 {
		return vf, nil
	}

	readFrame := func() (float32, [7]float32, error) {
		t, err := cur.Float32(context + " time")
		if err != nil {
			return 0, [7]float32{}, err
		}
		color, err := cur.Int32(context + " color")
		if err != nil {
			return 0, [7]float32{}, err
		}
		color2, err := cur.Int32(context + " color2")
		if err != nil {
			return 0, [7]float32{}, err
		}
		u, u2 := uint32(color), uint32(color2)
		return t, [7]float32{
			float32(u>>24&0xff) / 255.0,
			float32(u>>16&0xff) / 255.0,
			float32(u>>8&0xff) / 255.0,
			float32(u&0xff) / 255.0,
			float32(u2>>16&0xff) / 255.0,
			float32(u2>>8&0xff) / 255.0,
			float32(u2&0xff) / 255.0,
		}, nil
	}

	time, vals, err := readFrame()
	if err != nil {
		return vf, err
	}

	frames := make([]float32, 0, int(frameCount)*vf.Stride)
	var curves skeldata.Curves
	frameLast := frameCount - 1

	for frame := int32(0); ; frame++ {
		frames = append(frames, time)
		frames = append(frames, vals[:]...)
		if frame == frameLast {
			break
		}
		time2, vals2, err := readFrame()
		if err != nil {
			return vf, err
		}
		tag, err := cur.SByte(context + " curve tag")
		if err != nil {
			return vf, err
		}
		switch tag {
		case curveStepped:
			curves.Types = append(curves.Types, skeldata.CurveStepped)
		case curveBezier:
			curves.Types = append(curves.Types, skeldata.CurveBezier)
			bp, err := readBezierPoint(cur, context, 1)
			if err != nil {
				return vf, err
			}
			curves.Beziers = append(curves.Beziers, bp)
		default:
			curves.Types = append(curves.Types, skeldata.CurveLinear)
		}
		time, vals = time2, vals2
	}

	vf.Frames = frames
	vf.Curves = curves
	return vf, nil
}

// readBroadcastCurve decodes a curve timeline whose wire frame carries
// fewer raw channels than are stored, replicating each raw value across
// the stored channels broadcast[i] names. Used only by Legacy38's
// transform/path constraint mix timelines, which still wrote the pre-4.0
// two-value (translate/scale) mix even though later schema versions split
// translate and scale into independent X/Y channels.
func readBroadcastCurve(cur *wire.Cursor, context string, frameCount int32, rawChannels int, broadcast []int) (skeldata.ValueFrames, error) {
	storedChannels := len(broadcast)
	vf := skeldata.ValueFrames{Stride: 1 + storedChannels}
	if frameCount == 0 {
		return vf, nil
	}

	readRaw := func() (float32, []float32, error) {
		t, err := cur.Float32(context + " time")
		if err != nil {
			return 0, nil, err
		}
		raw := make([]float32, rawChannels)
		for i := range raw {
			v, err := cur.Float32(context + " value")
			if err != nil {
				return 0, nil, err
			}
			raw[i] = v
		}
		return t, raw, nil
	}
	expand := func(raw []float32) []float32 {
		out := make([]float32, storedChannels)
		for i, r := range broadcast {
			out[i] = raw[r]
		}
		return out
	}

	time, raw, err := readRaw()
	if err != nil {
		return vf, err
	}
	vals := expand(raw)

	frames := make([]float32, 0, int(frameCount)*vf.Stride)
	var curves skeldata.Curves
	frameLast := frameCount - 1

	for frame := int32(0); ; frame++ {
		frames = append(frames, time)
		frames = append(frames, vals...)
		if frame == frameLast {
			break
		}

		time2, raw2, err := readRaw()
		if err != nil {
			return vf, err
		}
		vals2 := expand(raw2)

		tag, err := cur.SByte(context + " curve tag")
		if err != nil {
			return vf, err
		}
		switch tag {
		case curveStepped:
			curves.Types = append(curves.Types, skeldata.CurveStepped)
		case curveBezier:
			curves.Types = append(curves.Types, skeldata.CurveBezier)
			bp, err := readBezierPoint(cur, context, 1)
			if err != nil {
				return vf, err
			}
			curves.Beziers = append(curves.Beziers, bp)
		default:
			curves.Types = append(curves.Types, skeldata.CurveLinear)
		}

		time, vals = time2, vals2
	}

	vf.Frames = frames
	vf.Curves = curves
	return vf, nil
}

func ones(n int) []float32 {
	s := make([]float32, n)
	for i := range s {
		s[i] = 1
	}
	return s
}

func scaled(n int, scale float32) []float32 {
	s := make([]float32, n)
	for i := range s {
		s[i] = scale
	}
	return s
}
