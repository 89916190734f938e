package binshared

import (
	"github.com/duskforge/skelasset/internal/wire"
	"github.com/duskforge/skelasset/loader/internal/linkedmesh"
	"github.com/duskforge/skelasset/skeldata"
)

// attachmentType is the binary kind tag read as the first byte of every
// attachment body (spec.md §4.4).
type attachmentType byte

const (
	attachmentRegion attachmentType = iota
	attachmentBoundingBox
	attachmentMesh
	attachmentLinkedMesh
	attachmentPath
	attachmentPoint
	attachmentClipping
)

// readAttachment dispatches on the kind tag and decodes one attachment
// body. A LinkedMesh body returns a *skeldata.MeshAttachment with no
// ParentMesh set, plus a non-nil *linkedmesh.Pending the caller must queue;
// every other kind returns a nil Pending.
func readAttachment(cur *wire.Cursor, dialect Dialect, scale float32, nonessential bool, strings []string, slots []*skeldata.Slot, slotIndex int, attachmentName string) (skeldata.Attachment, *linkedmesh.Pending, error) {
	name, err := cur.StringRef("attachment name", strings)
	if err != nil {
		return nil, nil, err
	}
	if name == "" {
		name = attachmentName
	}

	tagByte, err := cur.Byte("attachment type")
	if err != nil {
		return nil, nil, err
	}

	switch attachmentType(tagByte) {
	case attachmentRegion:
		path, err := cur.StringRef("region path", strings)
		if err != nil {
			return nil, nil, err
		}
		if path == "" {
			path = name
		}
		a := &skeldata.RegionAttachment{Name: name, Path: path}
		if a.Rotation, err = cur.Float32("region rotation"); err != nil {
			return nil, nil, err
		}
		x, err := cur.Float32("region x")
		if err != nil {
			return nil, nil, err
		}
		a.X = x * scale
		y, err := cur.Float32("region y")
		if err != nil {
			return nil, nil, err
		}
		a.Y = y * scale
		if a.ScaleX, err = cur.Float32("region scaleX"); err != nil {
			return nil, nil, err
		}
		if a.ScaleY, err = cur.Float32("region scaleY"); err != nil {
			return nil, nil, err
		}
		width, err := cur.Float32("region width")
		if err != nil {
			return nil, nil, err
		}
		a.Width = width * scale
		height, err := cur.Float32("region height")
		if err != nil {
			return nil, nil, err
		}
		a.Height = height * scale
		rgba, err := cur.ColorRGBA("region color")
		if err != nil {
			return nil, nil, err
		}
		a.Color = skeldata.Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
		if a.Sequence, err = maybeReadSequence(cur, dialect); err != nil {
			return nil, nil, err
		}
		return a, nil, nil

	case attachmentBoundingBox:
		vertexCount, err := cur.Varint("boundingbox vertex count", true)
		if err != nil {
			return nil, nil, err
		}
		a := &skeldata.BoundingBoxAttachment{Name: name}
		if a.Vertices, err = readVertices(cur, scale, vertexCount); err != nil {
			return nil, nil, err
		}
		if nonessential {
			rgba, err := cur.ColorRGBA("boundingbox color")
			if err != nil {
				return nil, nil, err
			}
			a.Color = &skeldata.Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
		}
		return a, nil, nil

	case attachmentMesh:
		path, err := cur.StringRef("mesh path", strings)
		if err != nil {
			return nil, nil, err
		}
		if path == "" {
			path = name
		}
		a := &skeldata.MeshAttachment{Name: name, Path: path}
		rgba, err := cur.ColorRGBA("mesh color")
		if err != nil {
			return nil, nil, err
		}
		a.Color = skeldata.Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}

		vertexCount, err := cur.Varint("mesh vertex count", true)
		if err != nil {
			return nil, nil, err
		}
		if a.UVs, err = cur.FloatArray("mesh uvs", int(vertexCount)*2, 1); err != nil {
			return nil, nil, err
		}
		if a.Triangles, err = cur.ShortArray("mesh triangles"); err != nil {
			return nil, nil, err
		}
		if a.Vertices, err = readVertices(cur, scale, vertexCount); err != nil {
			return nil, nil, err
		}
		hullLength, err := cur.Varint("mesh hull length", true)
		if err != nil {
			return nil, nil, err
		}
		a.HullLength = hullLength * 2
		if dialect.HasSequence {
			if a.Sequence, err = maybeReadSequence(cur, dialect); err != nil {
				return nil, nil, err
			}
		}
		if nonessential {
			if a.Edges, err = cur.ShortArray("mesh edges"); err != nil {
				return nil, nil, err
			}
			width, err := cur.Float32("mesh width")
			if err != nil {
				return nil, nil, err
			}
			a.Width = width * scale
			height, err := cur.Float32("mesh height")
			if err != nil {
				return nil, nil, err
			}
			a.Height = height * scale
		}
		return a, nil, nil

	case attachmentLinkedMesh:
		path, err := cur.StringRef("linkedmesh path", strings)
		if err != nil {
			return nil, nil, err
		}
		if path == "" {
			path = name
		}
		a := &skeldata.MeshAttachment{Name: name, Path: path}
		rgba, err := cur.ColorRGBA("linkedmesh color")
		if err != nil {
			return nil, nil, err
		}
		a.Color = skeldata.Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}

		skinName, err := cur.StringRef("linkedmesh skin", strings)
		if err != nil {
			return nil, nil, err
		}
		parentName, err := cur.StringRef("linkedmesh parent", strings)
		if err != nil {
			return nil, nil, err
		}
		inheritTimeline, err := cur.Boolean("linkedmesh inheritTimeline")
		if err != nil {
			return nil, nil, err
		}
		if dialect.HasSequence {
			if a.Sequence, err = maybeReadSequence(cur, dialect); err != nil {
				return nil, nil, err
			}
		}
		if nonessential {
			width, err := cur.Float32("linkedmesh width")
			if err != nil {
				return nil, nil, err
			}
			a.Width = width * scale
			height, err := cur.Float32("linkedmesh height")
			if err != nil {
				return nil, nil, err
			}
			a.Height = height * scale
		}
		pending := &linkedmesh.Pending{
			Mesh:            a,
			SkinName:        skinName,
			SlotIndex:       slotIndex,
			ParentName:      parentName,
			InheritTimeline: inheritTimeline,
		}
		return a, pending, nil

	case attachmentPath:
		a := &skeldata.PathAttachment{Name: name}
		if a.Closed, err = cur.Boolean("path closed"); err != nil {
			return nil, nil, err
		}
		if a.ConstantSpeed, err = cur.Boolean("path constantSpeed"); err != nil {
			return nil, nil, err
		}
		vertexCount, err := cur.Varint("path vertex count", true)
		if err != nil {
			return nil, nil, err
		}
		if a.Vertices, err = readVertices(cur, scale, vertexCount); err != nil {
			return nil, nil, err
		}
		lengths, err := cur.FloatArray("path lengths", int(vertexCount)/3, scale)
		if err != nil {
			return nil, nil, err
		}
		a.Lengths = lengths
		if nonessential {
			rgba, err := cur.ColorRGBA("path color")
			if err != nil {
				return nil, nil, err
			}
			a.Color = &skeldata.Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
		}
		return a, nil, nil

	case attachmentPoint:
		a := &skeldata.PointAttachment{Name: name}
		if a.Rotation, err = cur.Float32("point rotation"); err != nil {
			return nil, nil, err
		}
		x, err := cur.Float32("point x")
		if err != nil {
			return nil, nil, err
		}
		a.X = x * scale
		y, err := cur.Float32("point y")
		if err != nil {
			return nil, nil, err
		}
		a.Y = y * scale
		if nonessential {
			rgba, err := cur.ColorRGBA("point color")
			if err != nil {
				return nil, nil, err
			}
			a.Color = &skeldata.Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
		}
		return a, nil, nil

	case attachmentClipping:
		endSlotIdx, err := cur.Varint("clipping endSlot", true)
		if err != nil {
			return nil, nil, err
		}
		vertexCount, err := cur.Varint("clipping vertex count", true)
		if err != nil {
			return nil, nil, err
		}
		if endSlotIdx < 0 || int(endSlotIdx) >= len(slots) {
			return nil, nil, errf("clipping endSlot", "index %d out of range", endSlotIdx)
		}
		a := &skeldata.ClippingAttachment{Name: name, EndSlot: slots[endSlotIdx]}
		if a.Vertices, err = readVertices(cur, scale, vertexCount); err != nil {
			return nil, nil, err
		}
		if nonessential {
			rgba, err := cur.ColorRGBA("clipping color")
			if err != nil {
				return nil, nil, err
			}
			a.Color = &skeldata.Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
		}
		return a, nil, nil
	}

	return nil, nil, errf("attachment type", "unknown attachment type tag %d", tagByte)
}
