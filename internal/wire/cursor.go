// Package wire implements the primitive binary decoders shared by every
// version-specific skeleton reader: a cursor over a byte buffer plus the
// varint, fixed-width integer, float, string, and array decoders the wire
// format is built from.
package wire

import (
	"fmt"
	"math"
)

// Cursor is a forward-only read position over a byte buffer. It carries no
// behavior beyond decoding primitives at the current position; every method
// advances the position and returns an error on underflow.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor wraps data for sequential primitive reads.
func NewCursor(data []byte) *Cursor {
	return &Cursor{buf: data}
}

// Len returns the number of unread bytes.
func (c *Cursor) Len() int {
	return len(c.buf) - c.pos
}

// Pos returns the current read offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the unread tail of the buffer without advancing.
func (c *Cursor) Remaining() []byte {
	return c.buf[c.pos:]
}

func underflow(context string, need, have int) error {
	return fmt.Errorf("%s: unexpected end of data (need %d bytes, have %d)", context, need, have)
}

// Byte reads a single unsigned byte.
func (c *Cursor) Byte(context string) (byte, error) {
	if c.pos >= len(c.buf) {
		return 0, underflow(context, 1, 0)
	}
	b := c.buf[c.pos]
	c.pos++
	return b, nil
}

// SByte reads a single signed byte.
func (c *Cursor) SByte(context string) (int8, error) {
	b, err := c.Byte(context)
	return int8(b), err
}

// Bytes reads n raw bytes.
func (c *Cursor) Bytes(context string, n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: negative length %d", context, n)
	}
	if c.Len() < n {
		return nil, underflow(context, n, c.Len())
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// Int32 reads a big-endian signed 32-bit integer.
func (c *Cursor) Int32(context string) (int32, error) {
	b, err := c.Bytes(context, 4)
	if err != nil {
		return 0, err
	}
	u := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	return int32(u), nil
}

// Float32 reads a big-endian IEEE-754 single-precision float.
func (c *Cursor) Float32(context string) (float32, error) {
	u, err := c.Int32(context)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(u)), nil
}

// Boolean reads one byte; zero is false, anything else is true.
func (c *Cursor) Boolean(context string) (bool, error) {
	b, err := c.Byte(context)
	return b != 0, err
}

// Varint reads a little-endian 7-bit-group variable-length integer, up to 5
// bytes. When optimizePositive is false the raw unsigned value is zig-zag
// decoded into a signed result.
func (c *Cursor) Varint(context string, optimizePositive bool) (int32, error) {
	b, err := c.Byte(context)
	if err != nil {
		return 0, err
	}
	var result uint32 = uint32(b) & 0x7F
	if b&0x80 != 0 {
		b, err = c.Byte(context)
		if err != nil {
			return 0, err
		}
		result |= (uint32(b) & 0x7F) << 7
		if b&0x80 != 0 {
			b, err = c.Byte(context)
			if err != nil {
				return 0, err
			}
			result |= (uint32(b) & 0x7F) << 14
			if b&0x80 != 0 {
				b, err = c.Byte(context)
				if err != nil {
					return 0, err
				}
				result |= (uint32(b) & 0x7F) << 21
				if b&0x80 != 0 {
					b, err = c.Byte(context)
					if err != nil {
						return 0, err
					}
					result |= (uint32(b) & 0x7F) << 28
					if b&0x80 != 0 {
						return 0, fmt.Errorf("%s: varint exceeds 5 bytes", context)
					}
				}
			}
		}
	}
	if optimizePositive {
		return int32(result), nil
	}
	return int32(result>>1) ^ -int32(result&1), nil
}

// String reads a varint length L (optimizePositive); L == 0 means null,
// otherwise L-1 bytes of UTF-8 follow (the writer encodes 1+byteLen).
func (c *Cursor) String(context string) (string, bool, error) {
	n, err := c.Varint(context, true)
	if err != nil {
		return "", false, err
	}
	if n == 0 {
		return "", false, nil
	}
	if n < 0 {
		return "", false, fmt.Errorf("%s: negative string length", context)
	}
	b, err := c.Bytes(context, int(n-1))
	if err != nil {
		return "", false, err
	}
	return string(b), true, nil
}

// StringRef reads a varint index into the string table; 0 means null,
// otherwise index-1 is the resolved entry.
func (c *Cursor) StringRef(context string, strings []string) (string, error) {
	i, err := c.Varint(context, true)
	if err != nil {
		return "", err
	}
	if i == 0 {
		return "", nil
	}
	idx := int(i - 1)
	if idx < 0 || idx >= len(strings) {
		return "", fmt.Errorf("%s: string ref index %d out of range (have %d)", context, idx, len(strings))
	}
	return strings[idx], nil
}

// Color38 reads four bytes in RGBA order, each divided by 255.
func (c *Cursor) Color38(context string) ([4]float32, error) {
	return c.colorBytes(context, [4]int{0, 1, 2, 3})
}

// ColorARGB reads four bytes in ARGB order (4.0+ slot dark color), returned
// as [R, G, B, A].
func (c *Cursor) ColorARGB(context string) ([4]float32, error) {
	return c.colorBytes(context, [4]int{1, 2, 3, 0})
}

// ColorRGBA reads four bytes in RGBA order, returned as [R, G, B, A].
func (c *Cursor) ColorRGBA(context string) ([4]float32, error) {
	return c.colorBytes(context, [4]int{0, 1, 2, 3})
}

func (c *Cursor) colorBytes(context string, order [4]int) ([4]float32, error) {
	var raw [4]byte
	for i := range raw {
		b, err := c.Byte(context)
		if err != nil {
			return [4]float32{}, err
		}
		raw[i] = b
	}
	var out [4]float32
	for outIdx, srcIdx := range order {
		out[outIdx] = float32(raw[srcIdx]) / 255.0
	}
	return out, nil
}

// PeekBytes returns the next n bytes without advancing the cursor. The
// binary header probe uses it to inspect the first byte before choosing
// the 3.8 or 4.x header layout.
func (c *Cursor) PeekBytes(context string, n int) ([]byte, error) {
	if c.Len() < n {
		return nil, underflow(context, n, c.Len())
	}
	return c.buf[c.pos : c.pos+n], nil
}

// FloatArray reads n consecutive floats, each multiplied by scale unless
// scale == 1.
func (c *Cursor) FloatArray(context string, n int, scale float32) ([]float32, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: negative array length", context)
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		v, err := c.Float32(context)
		if err != nil {
			return nil, err
		}
		if scale != 1 {
			v *= scale
		}
		out[i] = v
	}
	return out, nil
}

// ShortArray reads a varint length n followed by n pairs of bytes combined
// as (hi<<8)|lo.
func (c *Cursor) ShortArray(context string) ([]uint16, error) {
	n, err := c.Varint(context, true)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%s: negative array length", context)
	}
	out := make([]uint16, n)
	for i := range out {
		hi, err := c.Byte(context)
		if err != nil {
			return nil, err
		}
		lo, err := c.Byte(context)
		if err != nil {
			return nil, err
		}
		out[i] = uint16(hi)<<8 | uint16(lo)
	}
	return out, nil
}

// IntArray reads a varint length n followed by n optimize-positive varints
// (no zig-zag decoding).
func (c *Cursor) IntArray(context string) ([]int32, error) {
	n, err := c.Varint(context, true)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%s: negative array length", context)
	}
	out := make([]int32, n)
	for i := range out {
		v, err := c.Varint(context, true)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
