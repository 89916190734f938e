// Package loader implements the public deserialization façade: a version
// registry that dispatches a binary or JSON document to the shared
// section-reading engine in loader/internal/binshared and
// loader/internal/jsonshared (spec.md §2, §4.2).
package loader

import (
	"github.com/duskforge/skelasset/internal/wire"
	"github.com/duskforge/skelasset/loader/internal/binshared"
	"github.com/duskforge/skelasset/loader/internal/jsonshared"
	"github.com/duskforge/skelasset/loader/internal/linkedmesh"
	"github.com/duskforge/skelasset/skeldata"
)

// Loader deserializes one document at a time. It is not safe for concurrent
// use by multiple goroutines (spec.md §5); construct one Loader per call
// site that needs independent state.
type Loader struct {
	scale        float32
	attachLoader linkedmesh.AttachmentLoader
	err          error
}

// New returns a Loader with scale 1 and no attachment loader.
func New() *Loader {
	return &Loader{scale: 1}
}

// SetScale applies a multiplicative scale to every length-denominated field
// read by subsequent ReadBinary/ReadJSON calls. Default 1.
func (l *Loader) SetScale(scale float32) {
	l.scale = scale
}

// SetAttachmentLoader installs the collaborator invoked once per resolved
// linked mesh; other attachment kinds are not passed to it. A nil loader
// (the default) configures nothing.
func (l *Loader) SetAttachmentLoader(al linkedmesh.AttachmentLoader) {
	l.attachLoader = al
}

// Err returns the error from the most recent ReadBinary/ReadJSON call, or
// nil if it succeeded. Mirrors the spine-cpp loader façade's getError()
// accessor named in spec.md §7.
func (l *Loader) Err() error {
	return l.err
}

// ReadBinary decodes a skeleton binary document. On any decode error the
// returned *skeldata.SkeletonData is nil and the error is also retained for
// Err().
func (l *Loader) ReadBinary(data []byte) (*skeldata.SkeletonData, error) {
	l.err = nil
	out := skeldata.New()

	cur := wire.NewCursor(data)
	dialect, err := readBinaryHeader(cur, out)
	if err != nil {
		l.err = err
		return nil, err
	}

	if err := binshared.Read(cur, dialect, l.scale, out, l.attachLoader); err != nil {
		l.err = err
		return nil, err
	}

	return out, nil
}

// ReadJSON decodes a skeleton JSON document.
func (l *Loader) ReadJSON(text []byte) (*skeldata.SkeletonData, error) {
	l.err = nil
	out := skeldata.New()

	root, err := jsonshared.Parse(text)
	if err != nil {
		l.err = err
		return nil, err
	}

	dialect, err := readJSONHeader(root, out)
	if err != nil {
		l.err = err
		return nil, err
	}

	if err := jsonshared.Read(root, dialect, l.scale, out, l.attachLoader); err != nil {
		l.err = err
		return nil, err
	}

	return out, nil
}
