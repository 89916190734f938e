package wire

import "testing"

func TestVarintOptimizePositive(t *testing.T) {
	c := NewCursor([]byte{0x96, 0x01})
	v, err := c.Varint("test", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 150 {
		t.Errorf("expected 150, got %d", v)
	}
}

func TestVarintZigZag(t *testing.T) {
	c := NewCursor([]byte{0x96, 0x01})
	v, err := c.Varint("test", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 75 {
		t.Errorf("expected 75, got %d", v)
	}
}

func TestVarintFiveByteBoundary(t *testing.T) {
	// 0xFF 0xFF 0xFF 0xFF 0x0F decodes the max 32-bit value with continuation
	// bits set on the first four bytes.
	c := NewCursor([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F})
	v, err := c.Varint("test", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uint32(v) != 0xFFFFFFFF {
		t.Errorf("expected max uint32, got %x", uint32(v))
	}
}

func TestVarintSixthByteIsError(t *testing.T) {
	c := NewCursor([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01})
	if _, err := c.Varint("test", true); err == nil {
		t.Fatal("expected an error for a six-byte varint")
	}
}

func TestStringNullSentinel(t *testing.T) {
	c := NewCursor([]byte{0x00})
	s, ok, err := c.String("test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok || s != "" {
		t.Errorf("expected null string, got %q ok=%v", s, ok)
	}
}

func TestStringRefNullSentinel(t *testing.T) {
	c := NewCursor([]byte{0x00})
	s, err := c.StringRef("test", []string{"a", "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != "" {
		t.Errorf("expected null string ref, got %q", s)
	}
}

func TestStringRoundTrip(t *testing.T) {
	// "hi" is 2 bytes, so the length prefix is 3.
	c := NewCursor([]byte{0x03, 'h', 'i'})
	s, ok, err := c.String("test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok || s != "hi" {
		t.Errorf("expected %q, got %q ok=%v", "hi", s, ok)
	}
}

func TestInt32BigEndian(t *testing.T) {
	c := NewCursor([]byte{0x00, 0x00, 0x00, 0x01})
	v, err := c.Int32("test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 1 {
		t.Errorf("expected 1, got %d", v)
	}
}

func TestFloatArrayScale(t *testing.T) {
	// 1.0f big-endian is 0x3F800000.
	c := NewCursor([]byte{0x3F, 0x80, 0x00, 0x00})
	out, err := c.FloatArray("test", 1, 2.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0] != 2.0 {
		t.Errorf("expected 2.0, got %v", out[0])
	}
}

func TestByteUnderflow(t *testing.T) {
	c := NewCursor(nil)
	if _, err := c.Byte("test"); err == nil {
		t.Fatal("expected underflow error")
	}
}

func TestShortArray(t *testing.T) {
	// length 2, then (0x01,0x02) and (0x00,0xFF)
	c := NewCursor([]byte{0x02, 0x01, 0x02, 0x00, 0xFF})
	out, err := c.ShortArray("test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 || out[0] != 0x0102 || out[1] != 0x00FF {
		t.Errorf("unexpected short array: %v", out)
	}
}
