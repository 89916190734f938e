package jsonshared

import (
	"github.com/duskforge/skelasset/internal/domutil"
	"github.com/duskforge/skelasset/loader/internal/binshared"
	"github.com/duskforge/skelasset/loader/internal/linkedmesh"
	"github.com/duskforge/skelasset/skeldata"
)

// readAttachment dispatches on the "type" string (default "region") and
// decodes one attachment body (spec.md §4.4), mirroring
// binshared.readAttachment's binary dispatch. A linkedmesh body returns a
// non-nil *linkedmesh.Pending the caller must queue.
func readAttachment(o domutil.Object, dialect binshared.Dialect, scale float32, nonessential bool, slots []*skeldata.Slot, slotIndex int, attachmentName string) (skeldata.Attachment, *linkedmesh.Pending, error) {
	name := domutil.Str(o, "name", attachmentName)

	switch domutil.Str(o, "type", "region") {
	case "region":
		a := &skeldata.RegionAttachment{
			Name:     name,
			Path:     domutil.Str(o, "path", name),
			Rotation: domutil.Float(o, "rotation", 0),
			X:        domutil.Float(o, "x", 0) * scale,
			Y:        domutil.Float(o, "y", 0) * scale,
			ScaleX:   domutil.Float(o, "scaleX", 1),
			ScaleY:   domutil.Float(o, "scaleY", 1),
			Width:    domutil.Float(o, "width", 0) * scale,
			Height:   domutil.Float(o, "height", 0) * scale,
		}
		rgba := parseColor(domutil.Str(o, "color", "ffffffff"))
		a.Color = skeldata.Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
		if dialect.HasSequence {
			a.Sequence = readSequence(o)
		}
		return a, nil, nil

	case "boundingbox":
		vertexCount := attachmentVertexCount(o)
		vertices, err := readVertices(o, scale, vertexCount)
		if err != nil {
			return nil, nil, err
		}
		a := &skeldata.BoundingBoxAttachment{Name: name, Vertices: vertices}
		if nonessential {
			if colorStr := domutil.Str(o, "color", ""); colorStr != "" {
				rgba := parseColor(colorStr)
				a.Color = &skeldata.Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
			}
		}
		return a, nil, nil

	case "mesh":
		uvArr, _ := domutil.Arr(o, "uvs")
		trianglesArr, _ := domutil.Arr(o, "triangles")
		vertexCount := len(uvArr) / 2

		a := &skeldata.MeshAttachment{
			Name:       name,
			Path:       domutil.Str(o, "path", name),
			UVs:        domutil.FloatArray(uvArr, 1),
			Triangles:  intArrayToUint16(domutil.IntArray(trianglesArr)),
			HullLength: int32(domutil.Int(o, "hull", 0)) * 2,
		}
		rgba := parseColor(domutil.Str(o, "color", "ffffffff"))
		a.Color = skeldata.Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}

		vertices, err := readVertices(o, scale, vertexCount)
		if err != nil {
			return nil, nil, err
		}
		a.Vertices = vertices

		if dialect.HasSequence {
			a.Sequence = readSequence(o)
		}
		if nonessential {
			edgesArr, _ := domutil.Arr(o, "edges")
			a.Edges = intArrayToUint16(domutil.IntArray(edgesArr))
			a.Width = domutil.Float(o, "width", 0) * scale
			a.Height = domutil.Float(o, "height", 0) * scale
		}
		return a, nil, nil

	case "linkedmesh":
		a := &skeldata.MeshAttachment{
			Name: name,
			Path: domutil.Str(o, "path", name),
		}
		rgba := parseColor(domutil.Str(o, "color", "ffffffff"))
		a.Color = skeldata.Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}

		if dialect.HasSequence {
			a.Sequence = readSequence(o)
		}
		if nonessential {
			a.Width = domutil.Float(o, "width", 0) * scale
			a.Height = domutil.Float(o, "height", 0) * scale
		}

		// "deform" defaults true (this mesh has its own deform timeline);
		// false means it inherits the parent mesh's deform timeline.
		inheritTimeline := !domutil.Bool(o, "deform", true)
		pending := &linkedmesh.Pending{
			Mesh:            a,
			SkinName:        domutil.Str(o, "skin", ""),
			SlotIndex:       slotIndex,
			ParentName:      domutil.Str(o, "parent", ""),
			InheritTimeline: inheritTimeline,
		}
		return a, pending, nil

	case "path":
		vertexCount := attachmentVertexCount(o)
		vertices, err := readVertices(o, scale, vertexCount)
		if err != nil {
			return nil, nil, err
		}
		lengthsArr, _ := domutil.Arr(o, "lengths")
		a := &skeldata.PathAttachment{
			Name:          name,
			Closed:        domutil.Bool(o, "closed", false),
			ConstantSpeed: domutil.Bool(o, "constantSpeed", true),
			Vertices:      vertices,
			Lengths:       domutil.FloatArray(lengthsArr, scale),
		}
		if nonessential {
			if colorStr := domutil.Str(o, "color", ""); colorStr != "" {
				rgba := parseColor(colorStr)
				a.Color = &skeldata.Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
			}
		}
		return a, nil, nil

	case "point":
		a := &skeldata.PointAttachment{
			Name:     name,
			Rotation: domutil.Float(o, "rotation", 0),
			X:        domutil.Float(o, "x", 0) * scale,
			Y:        domutil.Float(o, "y", 0) * scale,
		}
		if nonessential {
			if colorStr := domutil.Str(o, "color", ""); colorStr != "" {
				rgba := parseColor(colorStr)
				a.Color = &skeldata.Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
			}
		}
		return a, nil, nil

	case "clipping":
		endSlot, err := findSlot(slots, domutil.Str(o, "end", ""))
		if err != nil {
			return nil, nil, err
		}
		vertexCount := attachmentVertexCount(o)
		vertices, err := readVertices(o, scale, vertexCount)
		if err != nil {
			return nil, nil, err
		}
		a := &skeldata.ClippingAttachment{Name: name, EndSlot: endSlot, Vertices: vertices}
		if nonessential {
			if colorStr := domutil.Str(o, "color", ""); colorStr != "" {
				rgba := parseColor(colorStr)
				a.Color = &skeldata.Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
			}
		}
		return a, nil, nil
	}

	return nil, nil, errf("attachment type", "unknown attachment type %q", domutil.Str(o, "type", ""))
}

func intArrayToUint16(in []int32) []uint16 {
	if in == nil {
		return nil
	}
	out := make([]uint16, len(in))
	for i, v := range in {
		out[i] = uint16(v)
	}
	return out
}
