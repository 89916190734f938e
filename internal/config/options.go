// Package config holds the CLI-facing options for skelinspect. The core
// loader packages never read from this package — scale is a per-call
// Loader property (spec.md §6), not ambient configuration.
package config

import "github.com/duskforge/skelasset/internal/logger"

// Options holds the configuration the skelinspect command assembles from
// its flags before constructing a Loader.
type Options struct {
	// Scale is forwarded to Loader.SetScale; 1.0 leaves position/length
	// values as stored in the asset.
	Scale float32

	// Verbosity controls how much the command logs while it runs.
	Verbosity logger.Verbosity

	// DumpGLTF requests a glTF bone-hierarchy dump alongside the summary.
	DumpGLTF bool

	// GLTFPath is the output path for the glTF dump, when DumpGLTF is set.
	GLTFPath string

	// ImagesDir, when non-empty, is passed to loader.DirAttachmentLoader so
	// linked-mesh attachments resolve against on-disk images.
	ImagesDir string
}

// NewOptions returns Options populated with the same defaults the core
// loader itself assumes when a caller never calls SetScale.
func NewOptions() *Options {
	return &Options{
		Scale:     1.0,
		Verbosity: logger.VerbosityInfo,
	}
}
