// Package jsonshared is the version-parameterized JSON section-reading
// engine the loader façade's ReadJSON dispatches into once readJSONHeader
// has resolved a dialect. It mirrors loader/internal/binshared section for
// section, substituting a domutil.Object/Array DOM walk for the binary
// cursor, and reuses binshared.Dialect directly since nothing about the
// JSON/binary version differences this reader cares about needs its own
// type.
package jsonshared

import (
	"encoding/json"
	"fmt"

	"github.com/duskforge/skelasset/internal/domutil"
)

// Parse decodes the raw document into a domutil.Object tree. encoding/json
// is the pre-existing DOM collaborator spec.md names; every number decodes
// to float64 and every object/array decodes to map[string]any/[]any, which
// domutil's accessors narrow on demand.
func Parse(text []byte) (domutil.Object, error) {
	var root domutil.Object
	if err := json.Unmarshal(text, &root); err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}
	return root, nil
}
