package jsonshared

import (
	"github.com/duskforge/skelasset/internal/domutil"
	"github.com/duskforge/skelasset/skeldata"
)

// channelSpec names one curve channel's JSON key and the scale applied to
// its value.
type channelSpec struct {
	key   string
	scale float32
}

// readCurveFrames decodes the shared JSON (time, value..., curve?) frame
// array used by every multi-channel curve timeline. Unlike the binary
// format, a JSON curve frame never packs one Bézier tuple per channel: a
// "curve" array is a single shared tuple applied to every channel in that
// frame gap, so bezierScale picks one representative channel's scale for
// the stored control-point y-values.
func readCurveFrames(arr domutil.Array, channels []channelSpec, bezierScale float32) (skeldata.ValueFrames, error) {
	vf := skeldata.ValueFrames{Stride: 1 + len(channels)}
	if len(arr) == 0 {
		return vf, nil
	}

	frames := make([]float32, 0, len(arr)*vf.Stride)
	var curves skeldata.Curves

	for i, item := range arr {
		o, ok := item.(domutil.Object)
		if !ok {
			return vf, errf("curve frame", "entry %d is not an object", i)
		}
		frames = append(frames, domutil.Float(o, "time", 0))
		for _, ch := range channels {
			frames = append(frames, domutil.Float(o, ch.key, 0)*ch.scale)
		}
		if i == len(arr)-1 {
			continue
		}
		appendCurveGap(&curves, o, bezierScale)
	}

	vf.Frames = frames
	vf.Curves = curves
	return vf, nil
}

// appendCurveGap decodes the shared "curve" field (absent/"linear", the
// string "stepped", or a [cx1,cy1,cx2,cy2] array) and appends the matching
// entries to curves. Every JSON curve timeline — colored or not — carries
// exactly one Bézier tuple per frame gap; there is no per-channel tuple
// packing the way the 4.x binary format has.
func appendCurveGap(curves *skeldata.Curves, o domutil.Object, bezierScale float32) {
	switch cv := o["curve"].(type) {
	case string:
		if cv == "stepped" {
			curves.Types = append(curves.Types, skeldata.CurveStepped)
		} else {
			curves.Types = append(curves.Types, skeldata.CurveLinear)
		}
	case domutil.Array:
		curves.Types = append(curves.Types, skeldata.CurveBezier)
		var bp skeldata.BezierPoint
		if len(cv) >= 4 {
			cx1, _ := cv[0].(float64)
			cy1, _ := cv[1].(float64)
			cx2, _ := cv[2].(float64)
			cy2, _ := cv[3].(float64)
			bp = skeldata.BezierPoint{CX1: float32(cx1), CY1: float32(cy1) * bezierScale, CX2: float32(cx2), CY2: float32(cy2) * bezierScale}
		}
		curves.Beziers = append(curves.Beziers, bp)
	default:
		curves.Types = append(curves.Types, skeldata.CurveLinear)
	}
}

// colorPart names one hex-color JSON field ("color", "light", "dark") and
// how many channels it contributes (4 for an alpha-bearing color, 3 for
// one without).
type colorPart struct {
	key      string
	channels int
}

// readColorCurveFrames is readCurveFrames' counterpart for slot color
// timelines, whose per-frame values are hex color strings rather than bare
// numbers. 3.8's "color"/"twoColor" keys and 4.x's "rgba"/"rgb"/"rgba2"/
// "rgb2" keys both flow through this, differing only in which colorPart
// list the caller supplies.
func readColorCurveFrames(arr domutil.Array, parts []colorPart) (skeldata.ValueFrames, error) {
	total := 0
	for _, p := range parts {
		total += p.channels
	}
	vf := skeldata.ValueFrames{Stride: 1 + total}
	if len(arr) == 0 {
		return vf, nil
	}

	frames := make([]float32, 0, len(arr)*vf.Stride)
	var curves skeldata.Curves

	for i, item := range arr {
		o, ok := item.(domutil.Object)
		if !ok {
			return vf, errf("color curve frame", "entry %d is not an object", i)
		}
		frames = append(frames, domutil.Float(o, "time", 0))
		for _, p := range parts {
			def := "ffffffff"
			if p.channels == 3 {
				def = "ffffff"
			}
			rgba := parseColor(domutil.Str(o, p.key, def))
			frames = append(frames, rgba[:p.channels]...)
		}
		if i == len(arr)-1 {
			continue
		}
		appendCurveGap(&curves, o, 1)
	}

	vf.Frames = frames
	vf.Curves = curves
	return vf, nil
}

// readBroadcastCurveFrames mirrors binshared.readBroadcastCurve for the
// Legacy38 transform/path constraint mix timelines: it reads rawKeys (the
// old, narrower set of JSON fields 3.8 wrote) and replicates each read
// value into every stored channel the broadcast index map points at.
func readBroadcastCurveFrames(arr domutil.Array, rawKeys []string, broadcast []int) (skeldata.ValueFrames, error) {
	vf := skeldata.ValueFrames{Stride: 1 + len(broadcast)}
	if len(arr) == 0 {
		return vf, nil
	}

	frames := make([]float32, 0, len(arr)*vf.Stride)
	var curves skeldata.Curves

	for i, item := range arr {
		o, ok := item.(domutil.Object)
		if !ok {
			return vf, errf("broadcast curve frame", "entry %d is not an object", i)
		}
		frames = append(frames, domutil.Float(o, "time", 0))
		raw := make([]float32, len(rawKeys))
		for k, key := range rawKeys {
			raw[k] = domutil.Float(o, key, 1)
		}
		for _, idx := range broadcast {
			frames = append(frames, raw[idx])
		}
		if i == len(arr)-1 {
			continue
		}
		appendCurveGap(&curves, o, 1)
	}

	vf.Frames = frames
	vf.Curves = curves
	return vf, nil
}
