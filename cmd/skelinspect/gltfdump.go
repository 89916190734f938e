package main

import (
	"math"
	"path/filepath"

	"github.com/qmuntal/gltf"

	"github.com/duskforge/skelasset/skeldata"
)

// dumpGLTF writes one node per bone, positioned and oriented by its
// setup-pose local transform and nested under its parent. It carries no
// mesh or animation data — just enough to eyeball a skeleton's hierarchy
// and proportions in any glTF viewer.
func dumpGLTF(data *skeldata.SkeletonData, path string) error {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "skelinspect"
	doc.Scenes = append(doc.Scenes, &gltf.Scene{Name: "Scene"})
	doc.Scene = gltf.Index(0)

	nodeIndex := make(map[*skeldata.Bone]uint32, len(data.Bones))
	for _, b := range data.Bones {
		angle := float64(b.Rotation) * math.Pi / 180
		node := &gltf.Node{
			Name:        b.Name,
			Translation: [3]float32{b.X, b.Y, 0},
			Rotation:    [4]float32{0, 0, float32(math.Sin(angle / 2)), float32(math.Cos(angle / 2))},
			Scale:       [3]float32{b.ScaleX, b.ScaleY, 1},
		}
		idx := uint32(len(doc.Nodes))
		doc.Nodes = append(doc.Nodes, node)
		nodeIndex[b] = idx

		if b.Parent == nil {
			doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, idx)
			continue
		}
		parentIdx := nodeIndex[b.Parent]
		doc.Nodes[parentIdx].Children = append(doc.Nodes[parentIdx].Children, idx)
	}

	if filepath.Ext(path) == ".glb" {
		return gltf.SaveBinary(doc, path)
	}
	return gltf.Save(doc, path)
}
