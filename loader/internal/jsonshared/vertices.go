package jsonshared

import (
	"github.com/duskforge/skelasset/internal/domutil"
	"github.com/duskforge/skelasset/skeldata"
)

// attachmentVertexCount resolves how many vertices a vertex-bearing
// attachment has. A weighted attachment carries an explicit "vertexCount";
// an unweighted one is a flat (x,y) array, so the count is half its length.
func attachmentVertexCount(o domutil.Object) int {
	if _, weighted := o["vertexCount"]; weighted {
		return domutil.Int(o, "vertexCount", 0)
	}
	arr, _ := domutil.Arr(o, "vertices")
	return len(arr) / 2
}

// readVertices decodes the shared vertex encoding (spec.md §4.4): the flat
// unweighted array when no "vertexCount" field is present, else the
// packed (boneCount, boneIndex, x, y, weight, ...) weighted encoding.
func readVertices(o domutil.Object, scale float32, vertexCount int) (skeldata.VertexData, error) {
	arr, _ := domutil.Arr(o, "vertices")

	if _, weighted := o["vertexCount"]; !weighted {
		return skeldata.VertexData{SetupVertices: domutil.FloatArray(arr, scale)}, nil
	}

	toFloat := func(v any) float32 {
		f, _ := v.(float64)
		return float32(f)
	}

	var bones []int32
	var weights []float32
	idx := 0
	for v := 0; v < vertexCount; v++ {
		if idx >= len(arr) {
			return skeldata.VertexData{}, errf("vertices", "truncated weighted vertex array")
		}
		boneCount := int(toFloat(arr[idx]))
		idx++
		bones = append(bones, int32(boneCount))
		for b := 0; b < boneCount; b++ {
			if idx+3 >= len(arr) {
				return skeldata.VertexData{}, errf("vertices", "truncated weighted vertex array")
			}
			boneIdx := int32(toFloat(arr[idx]))
			x := toFloat(arr[idx+1]) * scale
			y := toFloat(arr[idx+2]) * scale
			w := toFloat(arr[idx+3])
			idx += 4
			bones = append(bones, boneIdx)
			weights = append(weights, x, y, w)
		}
	}
	return skeldata.VertexData{Weighted: true, Bones: bones, Weights: weights}, nil
}

// readSequence decodes the 4.2 "sequence" sub-object, present on
// Region/Mesh/LinkedMesh attachments.
func readSequence(o domutil.Object) *skeldata.Sequence {
	sub, ok := domutil.Obj(o, "sequence")
	if !ok {
		return nil
	}
	return &skeldata.Sequence{
		Count:      int32(domutil.Int(sub, "count", 0)),
		Start:      int32(domutil.Int(sub, "start", 0)),
		Digits:     int32(domutil.Int(sub, "digits", 0)),
		SetupIndex: int32(domutil.Int(sub, "setup", 0)),
	}
}
