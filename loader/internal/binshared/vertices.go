package binshared

import (
	"github.com/duskforge/skelasset/internal/wire"
	"github.com/duskforge/skelasset/skeldata"
)

// readVertices decodes the shared vertex encoding of every VertexAttachment
// (spec.md §4.4 "Vertex encoding"): one boolean selects unweighted (a flat
// scaled float pair per vertex) versus weighted (bone count + per-bone
// index/x/y/weight runs, interleaved exactly as read off the wire).
func readVertices(cur *wire.Cursor, scale float32, vertexCount int32) (skeldata.VertexData, error) {
	weighted, err := cur.Boolean("vertex weighted flag")
	if err != nil {
		return skeldata.VertexData{}, err
	}

	if !weighted {
		flat, err := cur.FloatArray("unweighted vertices", int(vertexCount)*2, scale)
		if err != nil {
			return skeldata.VertexData{}, err
		}
		return skeldata.VertexData{SetupVertices: flat}, nil
	}

	var bones []int32
	var weights []float32
	for i := int32(0); i < vertexCount; i++ {
		boneCount, err := cur.Varint("vertex bone count", true)
		if err != nil {
			return skeldata.VertexData{}, err
		}
		bones = append(bones, boneCount)
		for b := int32(0); b < boneCount; b++ {
			boneIdx, err := cur.Varint("vertex bone index", true)
			if err != nil {
				return skeldata.VertexData{}, err
			}
			x, err := cur.Float32("vertex weighted x")
			if err != nil {
				return skeldata.VertexData{}, err
			}
			y, err := cur.Float32("vertex weighted y")
			if err != nil {
				return skeldata.VertexData{}, err
			}
			w, err := cur.Float32("vertex weight")
			if err != nil {
				return skeldata.VertexData{}, err
			}
			bones = append(bones, boneIdx)
			weights = append(weights, x*scale, y*scale, w)
		}
	}
	return skeldata.VertexData{Weighted: true, Bones: bones, Weights: weights}, nil
}

// readSequence decodes the 4.2 Sequence sub-record (spec.md §4.4).
func readSequence(cur *wire.Cursor) (*skeldata.Sequence, error) {
	count, err := cur.Varint("sequence count", true)
	if err != nil {
		return nil, err
	}
	start, err := cur.Varint("sequence start", true)
	if err != nil {
		return nil, err
	}
	digits, err := cur.Varint("sequence digits", true)
	if err != nil {
		return nil, err
	}
	setup, err := cur.Varint("sequence setupIndex", true)
	if err != nil {
		return nil, err
	}
	return &skeldata.Sequence{Count: count, Start: start, Digits: digits, SetupIndex: setup}, nil
}

// maybeReadSequence reads a Sequence only when the dialect carries one and
// a "has sequence" boolean (present on Region/Mesh/LinkedMesh) is true.
func maybeReadSequence(cur *wire.Cursor, dialect Dialect) (*skeldata.Sequence, error) {
	if !dialect.HasSequence {
		return nil, nil
	}
	has, err := cur.Boolean("attachment has sequence")
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, nil
	}
	return readSequence(cur)
}
