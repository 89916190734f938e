package binshared

import (
	"github.com/duskforge/skelasset/internal/wire"
	"github.com/duskforge/skelasset/skeldata"
)

// readBody reads the portion of the header spec.md §4.3 calls "all
// versions": the skeleton's bounding box, the nonessential flag, its
// gated fps/images/audio trio, and the string-intern table. data.Hash and
// data.Version are already set by the caller (spec.md §4.2's version
// dispatch happens before a dialect is even known).
func readBody(cur *wire.Cursor, data *skeldata.SkeletonData) (nonessential bool, strings []string, err error) {
	if data.X, err = cur.Float32("skeleton x"); err != nil {
		return
	}
	if data.Y, err = cur.Float32("skeleton y"); err != nil {
		return
	}
	if data.Width, err = cur.Float32("skeleton width"); err != nil {
		return
	}
	if data.Height, err = cur.Float32("skeleton height"); err != nil {
		return
	}

	if nonessential, err = cur.Boolean("skeleton nonessential"); err != nil {
		return
	}
	if nonessential {
		if data.FPS, err = cur.Float32("skeleton fps"); err != nil {
			return
		}
		if _, _, err = cur.String("skeleton images path"); err != nil {
			return
		}
		if data.Audio, _, err = cur.String("skeleton audio path"); err != nil {
			return
		}
	}

	n, err := cur.Varint("strings count", true)
	if err != nil {
		return
	}
	strings = make([]string, n)
	for i := range strings {
		s, _, serr := cur.String("string table entry")
		if serr != nil {
			err = serr
			return
		}
		strings[i] = s
	}
	data.Strings = strings
	return nonessential, strings, nil
}
