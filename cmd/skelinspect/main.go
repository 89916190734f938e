// Command skelinspect reads a skeleton binary or JSON document and prints a
// summary of its resolved object graph, optionally dumping a bone-hierarchy
// glTF file alongside it.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/duskforge/skelasset/internal/config"
	"github.com/duskforge/skelasset/internal/logger"
	"github.com/duskforge/skelasset/loader"
	"github.com/duskforge/skelasset/skeldata"
)

func main() {
	opts := config.NewOptions()

	scale := flag.Float64("scale", float64(opts.Scale), "multiplicative scale applied to position/length fields")
	verbose := flag.Bool("v", false, "verbose (info-level) logging")
	quiet := flag.Bool("q", false, "only log errors")
	dumpGLTF := flag.String("dump-gltf", "", "write a bone-hierarchy glTF (.gltf or .glb) dump to this path")
	imagesDir := flag.String("images", "", "directory of texture images used to resolve linked-mesh dimensions")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: skelinspect [flags] <skeleton.skel|skeleton.json>")
		os.Exit(2)
	}

	opts.Scale = float32(*scale)
	opts.DumpGLTF = *dumpGLTF != ""
	opts.GLTFPath = *dumpGLTF
	opts.ImagesDir = *imagesDir
	switch {
	case *verbose:
		opts.Verbosity = logger.VerbosityInfo
	case *quiet:
		opts.Verbosity = logger.VerbosityError
	default:
		opts.Verbosity = logger.VerbosityWarning
	}
	log := logger.NewConsoleLogger(opts.Verbosity)

	path := flag.Arg(0)
	raw, err := os.ReadFile(path)
	if err != nil {
		log.LogError(err.Error())
		os.Exit(1)
	}

	l := loader.New()
	l.SetScale(opts.Scale)
	if opts.ImagesDir != "" {
		l.SetAttachmentLoader(loader.NewDirAttachmentLoader(opts.ImagesDir))
	}

	var data *skeldata.SkeletonData
	if looksLikeJSON(raw) {
		data, err = l.ReadJSON(raw)
	} else {
		data, err = l.ReadBinary(raw)
	}
	if err != nil {
		log.LogError(err.Error())
		os.Exit(1)
	}

	log.LogInfo(fmt.Sprintf("hash=%s version=%s fps=%g", data.Hash, data.Version, data.FPS))
	printSummary(data)

	if opts.DumpGLTF {
		if err := dumpGLTF(data, opts.GLTFPath); err != nil {
			log.LogError(err.Error())
			os.Exit(1)
		}
		log.LogInfo("wrote " + opts.GLTFPath)
	}
}

// looksLikeJSON sniffs the document kind from its leading byte: a binary
// document always opens with either a hash-length byte or a raw int32, a
// JSON document always opens with '{' once whitespace is trimmed.
func looksLikeJSON(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func printSummary(data *skeldata.SkeletonData) {
	fmt.Printf("bones:      %d\n", len(data.Bones))
	fmt.Printf("slots:      %d\n", len(data.Slots))
	fmt.Printf("skins:      %d\n", len(data.Skins))
	fmt.Printf("ik:         %d\n", len(data.IkConstraints))
	fmt.Printf("transform:  %d\n", len(data.TransformConstraints))
	fmt.Printf("path:       %d\n", len(data.PathConstraints))
	fmt.Printf("physics:    %d\n", len(data.PhysicsConstraints))
	fmt.Printf("events:     %d\n", len(data.Events))
	fmt.Printf("animations: %d\n", len(data.Animations))
	for _, a := range data.Animations {
		fmt.Printf("  %-24s duration=%.3fs timelines=%d\n", a.Name, a.Duration, len(a.Timelines))
	}
}
