package loader

import (
	"fmt"
	"strings"

	"github.com/duskforge/skelasset/internal/domutil"
	"github.com/duskforge/skelasset/internal/wire"
	"github.com/duskforge/skelasset/loader/internal/binshared"
	"github.com/duskforge/skelasset/skeldata"
)

// binaryDialectFor selects the shared binary dialect for a parsed version
// string by MAJOR.MINOR prefix match (spec.md §4.2, step 3). 4.1 and 4.2
// share one dialect since neither the binary nor JSON format differs
// between them in any way this reader distinguishes.
func binaryDialectFor(version string) (binshared.Dialect, bool) {
	switch {
	case strings.HasPrefix(version, "4.2"), strings.HasPrefix(version, "4.1"):
		return binshared.V42, true
	case strings.HasPrefix(version, "4.0"):
		return binshared.V40, true
	case strings.HasPrefix(version, "3.8"):
		return binshared.V38, true
	default:
		return binshared.Dialect{}, false
	}
}

// readBinaryHeader performs the version-dispatch heuristic from spec.md
// §4.2: probe for a 3.8 header, fall back to the 4.x layout, then resolve
// a dialect by version prefix. It returns the cursor positioned right
// after the version string, with data.Hash and data.Version already set.
func readBinaryHeader(cur *wire.Cursor, data *skeldata.SkeletonData) (binshared.Dialect, error) {
	if b, err := cur.PeekBytes("header", 1); err == nil && len(b) == 1 && b[0] <= 0x40 {
		probe := *cur
		hash, _, hashErr := probe.String("header hash")
		version, _, versionErr := probe.String("header version")
		// Whether or not this turns out to be a 3.8 header, the probe reads
		// are never undone: *cur always follows probe from here on, matching
		// original_source's SkeletonBinary.cpp, which only frees the probed
		// strings on a failed match and never resets input->cursor.
		*cur = probe
		if hashErr == nil && versionErr == nil && strings.HasPrefix(version, "3.") && len(version) > 2 && version[2] >= '1' && version[2] <= '9' {
			data.Hash = hash
			data.Version = version
			dialect, ok := binaryDialectFor(version)
			if !ok {
				return dialect, decodeErrorf("header", "Skeleton version %s does not match any supported version.", version)
			}
			return dialect, nil
		}
		// Probe failed: the hash/version strings it consumed are discarded
		// and decoding falls through to the 4.x layout from the
		// already-advanced position.
	}

	// The first int read is the low half, the second is the high half; the
	// printed hash is high-half-first (hashHex's own doc comment), so the
	// second read goes first in the hashHex call below.
	loHalf, err := cur.Int32("header hash lo")
	if err != nil {
		return binshared.Dialect{}, err
	}
	hiHalf, err := cur.Int32("header hash hi")
	if err != nil {
		return binshared.Dialect{}, err
	}
	data.Hash = hashHex(hiHalf, loHalf)

	version, _, err := cur.String("header version")
	if err != nil {
		return binshared.Dialect{}, err
	}
	data.Version = version

	dialect, ok := binaryDialectFor(version)
	if !ok {
		return dialect, decodeErrorf("header", "Skeleton version %s does not match any supported version.", version)
	}
	return dialect, nil
}

// hashHex mirrors the original loader's snprintf("%x", ...) concatenation:
// each 32-bit half is printed unpadded, high half first, with no
// zero-fill between them.
func hashHex(hi, lo int32) string {
	return fmt.Sprintf("%x%x", uint32(hi), uint32(lo))
}

// jsonDialectFor selects the shared JSON dialect for a "spine" version
// string; the version-differentiated behavior is identical to the binary
// dialects, so jsonshared reuses binshared.Dialect directly.
func jsonDialectFor(version string) (binshared.Dialect, bool) {
	return binaryDialectFor(version)
}

// readJSONHeader extracts the root "skeleton" object's header fields
// (spec.md §4.1) and resolves a dialect from its "spine" version string.
func readJSONHeader(root domutil.Object, data *skeldata.SkeletonData) (binshared.Dialect, error) {
	skel, err := domutil.RequireObj(root, "skeleton", "document")
	if err != nil {
		return binshared.Dialect{}, decodeErrorf("document", "%s", err)
	}

	data.Hash = domutil.Str(skel, "hash", "")
	version := domutil.Str(skel, "spine", "")
	data.Version = version
	data.X = domutil.Float(skel, "x", 0)
	data.Y = domutil.Float(skel, "y", 0)
	data.Width = domutil.Float(skel, "width", 0)
	data.Height = domutil.Float(skel, "height", 0)
	data.FPS = domutil.Float(skel, "fps", 30)
	data.Audio = domutil.Str(skel, "audio", "")
	// referenceScale and images are part of the header but carry no field
	// in SkeletonData: referenceScale only matters to editors re-scaling a
	// hand-authored document, and images is a relative-path hint for an
	// external atlas loader, outside this reader's resolved object graph.
	_ = domutil.Float(skel, "referenceScale", 100)
	_ = domutil.Str(skel, "images", "")

	dialect, ok := jsonDialectFor(version)
	if !ok {
		return dialect, decodeErrorf("header", "Skeleton version %s does not match any supported version.", version)
	}
	return dialect, nil
}
