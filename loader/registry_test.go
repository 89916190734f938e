package loader

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/duskforge/skelasset/internal/wire"
	"github.com/duskforge/skelasset/skeldata"
)

type hdrBuilder struct{ buf []byte }

func (b *hdrBuilder) i32(v int32) *hdrBuilder {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], uint32(v))
	b.buf = append(b.buf, tmp[:]...)
	return b
}

func (b *hdrBuilder) f32(v float32) *hdrBuilder {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], math.Float32bits(v))
	b.buf = append(b.buf, tmp[:]...)
	return b
}

func (b *hdrBuilder) byteVal(v byte) *hdrBuilder {
	b.buf = append(b.buf, v)
	return b
}

// str encodes a length-prefixed string the way wire.Cursor.String expects:
// a single-byte varint of len(s)+1 followed by the raw bytes. Only valid for
// strings under 127 bytes, which is all this file needs.
func (b *hdrBuilder) str(s string) *hdrBuilder {
	b.buf = append(b.buf, byte(len(s)+1))
	b.buf = append(b.buf, s...)
	return b
}

// nullStr encodes wire.Cursor.String's null-string form: a zero-length
// varint and no following bytes.
func (b *hdrBuilder) nullStr() *hdrBuilder {
	b.buf = append(b.buf, 0)
	return b
}

func (b *hdrBuilder) varint(v int32) *hdrBuilder {
	b.buf = append(b.buf, byte(v))
	return b
}

func TestHashHexConcatenatesHighHalfFirst(t *testing.T) {
	if got := hashHex(0x55667788, 0x11223344); got != "5566778811223344" {
		t.Errorf("expected high-half-first concatenation, got %q", got)
	}
}

func TestReadBinaryHeaderOrdersHashHalvesLowThenHigh(t *testing.T) {
	b := &hdrBuilder{}
	b.i32(0x41000001) // first read (low half): first byte 0x41 > 0x40, skips the 3.8 probe
	b.i32(0x00000002) // second read (high half)
	b.str("4.0.00")

	cur := wire.NewCursor(b.buf)
	data := skeldata.New()
	dialect, err := readBinaryHeader(cur, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dialect.Name != "4.0" {
		t.Errorf("expected dialect 4.0, got %q", dialect.Name)
	}
	if data.Version != "4.0.00" {
		t.Errorf("expected version 4.0.00, got %q", data.Version)
	}
	want := hashHex(0x00000002, 0x41000001) // high (second-read) first, low (first-read) second
	if data.Hash != want {
		t.Errorf("expected hash %q, got %q", want, data.Hash)
	}
}

// TestReadBinaryHeaderFailedProbeContinuesWithoutRewind exercises a 4.x
// document whose leading byte happens to be <= 0x40 (the 3.8-probe
// heuristic's trigger byte). A failed probe must never rewind the cursor:
// original_source's SkeletonBinary.cpp only frees the probed strings and
// keeps decoding from the already-advanced position.
func TestReadBinaryHeaderFailedProbeContinuesWithoutRewind(t *testing.T) {
	b := &hdrBuilder{}
	b.nullStr()       // probed "hash" string: null, first byte 0x00 <= 0x40 triggers the probe
	b.str("4.0.00")   // probed "version" string: doesn't start with "3.", so the probe fails
	b.i32(0x11223344) // the real 4.x low half, read from the probe's advanced position
	b.i32(0x55667788) // the real 4.x high half
	b.str("4.1.00")   // the real 4.x version string

	cur := wire.NewCursor(b.buf)
	data := skeldata.New()
	dialect, err := readBinaryHeader(cur, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dialect.Name != "4.2" {
		t.Errorf("expected dialect 4.2 (4.1 maps to V42), got %q", dialect.Name)
	}
	if data.Version != "4.1.00" {
		t.Errorf("expected version 4.1.00, got %q", data.Version)
	}
	want := hashHex(0x55667788, 0x11223344)
	if data.Hash != want {
		t.Errorf("expected hash %q (no rewind), got %q", want, data.Hash)
	}
	if cur.Pos() != len(b.buf) {
		t.Errorf("expected the cursor to have consumed the entire buffer, stopped at %d of %d", cur.Pos(), len(b.buf))
	}
}

func TestReadBinaryHeaderProbes38Header(t *testing.T) {
	b := &hdrBuilder{}
	b.str("deadbeef") // 3.8 hash string, first byte 0x09 <= 0x40 triggers the probe
	b.str("3.8.95")   // 3.8 version string, matches the "3.<digit>" pattern

	cur := wire.NewCursor(b.buf)
	data := skeldata.New()
	dialect, err := readBinaryHeader(cur, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dialect.Name != "3.8" {
		t.Errorf("expected dialect 3.8, got %q", dialect.Name)
	}
	if data.Hash != "deadbeef" || data.Version != "3.8.95" {
		t.Errorf("unexpected header: hash=%q version=%q", data.Hash, data.Version)
	}
	if cur.Pos() != len(b.buf) {
		t.Errorf("expected the cursor to have consumed exactly the probed strings, stopped at %d of %d", cur.Pos(), len(b.buf))
	}
}

// TestLoaderReadBinaryMinimalDocument exercises the public Loader.ReadBinary
// entry point end to end against a synthetic document with every section
// empty, confirming the header and body readers agree on cursor position.
func TestLoaderReadBinaryMinimalDocument(t *testing.T) {
	b := &hdrBuilder{}
	b.i32(0x41000001).i32(0x00000002).str("4.0.00") // header
	b.f32(0).f32(0).f32(0).f32(0)                   // x, y, width, height
	b.byteVal(0)                                     // nonessential = false
	b.varint(0)                                      // strings count
	b.varint(0)                                      // bones count
	b.varint(0)                                      // slots count
	b.varint(0)                                      // ik constraints count
	b.varint(0)                                      // transform constraints count
	b.varint(0)                                      // path constraints count
	b.varint(0)                                      // default skin slot count (0 -> no default skin)
	b.varint(0)                                      // skins count
	b.varint(0)                                      // events count
	b.varint(0)                                      // animations count

	l := New()
	data, err := l.ReadBinary(b.buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Err() != nil {
		t.Errorf("expected Err() nil after a successful read, got %v", l.Err())
	}
	if data.Version != "4.0.00" {
		t.Errorf("expected version 4.0.00, got %q", data.Version)
	}
	if len(data.Bones) != 0 || len(data.Slots) != 0 || len(data.Animations) != 0 {
		t.Errorf("expected every section empty, got %+v", data)
	}
	if data.DefaultSkin != nil {
		t.Errorf("expected no default skin, got %+v", data.DefaultSkin)
	}
}

// TestLoaderReadJSONMinimalDocument exercises the public Loader.ReadJSON
// entry point end to end against a small hand-authored document.
func TestLoaderReadJSONMinimalDocument(t *testing.T) {
	doc := []byte(`{
		"skeleton": {"hash": "abc123", "spine": "4.0.00"},
		"bones": [{"name": "root"}],
		"animations": {}
	}`)

	l := New()
	data, err := l.ReadJSON(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Hash != "abc123" || data.Version != "4.0.00" {
		t.Errorf("unexpected header: hash=%q version=%q", data.Hash, data.Version)
	}
	if len(data.Bones) != 1 || data.Bones[0].Name != "root" {
		t.Errorf("unexpected bones: %+v", data.Bones)
	}
}
