package bitstream

import (
	"testing"
)

// TestUintMSBFirst checks that Uint takes fields from the top of the
// register downwards: the first field taken from a fresh register is
// x >> (width - n).
func TestUintMSBFirst(t *testing.T) {

	var testData = []struct {
		description string
		register    uint32
		n           uint
		want        uint64
	}{
		{"top bit set", 0x80000000, 1, 1},
		{"top bit clear", 0x7fffffff, 1, 0},
		{"top byte", 0xc8370d06, 8, 0xc8},
		{"whole word", 0xc8370d06, 32, 0xc8370d06},
		{"ten bits", 0xffc00000, 10, 0x3ff},
	}

	for _, td := range testData {
		reader := NewReader(td.register)
		got := reader.Uint(td.n)
		if got != td.want {
			t.Errorf("%s: want 0x%x, got 0x%x", td.description, td.want, got)
		}
	}
}

// TestUintSequence checks that the cursor advances so that successive
// calls return successive fields.
func TestUintSequence(t *testing.T) {

	// 1100 1000 0011 0111 0000 1101 0000 0110
	reader := NewReader(0xc8370d06)

	if got := reader.Uint(1); got != 1 {
		t.Errorf("first bit: want 1, got %d", got)
	}
	if got := reader.Uint(1); got != 1 {
		t.Errorf("second bit: want 1, got %d", got)
	}
	if got := reader.Uint(6); got != 0x08 {
		t.Errorf("six bits: want 0x08, got 0x%x", got)
	}
	if got := reader.Uint(24); got != 0x370d06 {
		t.Errorf("last 24 bits: want 0x370d06, got 0x%x", got)
	}
	if reader.Pos() != 32 {
		t.Errorf("want pos 32, got %d", reader.Pos())
	}
}

// TestInt checks the sign extension of signed fields.
func TestInt(t *testing.T) {

	var testData = []struct {
		description string
		register    uint32
		skip        uint
		n           uint
		want        int64
	}{
		{"minus one", 0xfff00000, 0, 12, -1},
		{"minus two", 0xffe00000, 0, 12, -2},
		{"positive", 0x7ff00000, 0, 12, 0x7ff},
		{"after skip", 0x0fff0000, 4, 12, -1},
		{"whole word", 0xffffffff, 0, 32, -1},
		{"single bit set", 0x80000000, 0, 1, -1},
	}

	for _, td := range testData {
		reader := NewReader(td.register)
		reader.Skip(td.skip)
		got := reader.Int(td.n)
		if got != td.want {
			t.Errorf("%s: want %d, got %d", td.description, td.want, got)
		}
	}
}

// TestReader64 checks that a 64-bit register behaves like the 32-bit one.
func TestReader64(t *testing.T) {
	reader := NewReader64(0xfd00000000000000)
	if got := reader.Uint(6); got != 0x3f {
		t.Errorf("want 0x3f, got 0x%x", got)
	}
	if got := reader.Uint(1); got != 0 {
		t.Errorf("want 0, got %d", got)
	}
	if got := reader.Uint(1); got != 1 {
		t.Errorf("want 1, got %d", got)
	}
}

// TestConcatRoundTrip checks that concatenating a high and low part and
// splitting the result again returns the original parts.
func TestConcatRoundTrip(t *testing.T) {

	var testData = []struct {
		description string
		hi          int64
		lo          uint64
		loBits      uint
		want        int64
	}{
		{"simple", 1, 2, 18, (1 << 18) | 2},
		{"negative high", -1, 0x3fe, 10, -2},
		{"negative high, zero low", -1, 0, 5, -32},
		{"wide", -3, 0x1d, 5, -67},
		{"fourteen and eighteen", 0x155, 0x2aaaa, 18, 0x556aaaa},
	}

	for _, td := range testData {
		got := Concat(td.hi, td.lo, td.loBits)
		if got != td.want {
			t.Errorf("%s: want %d, got %d", td.description, td.want, got)
			continue
		}

		// Split the result again.
		gotLo := uint64(got) & ((1 << td.loBits) - 1)
		gotHi := got >> td.loBits
		if gotHi != td.hi || gotLo != td.lo {
			t.Errorf("%s: round trip want (%d, %d), got (%d, %d)",
				td.description, td.hi, td.lo, gotHi, gotLo)
		}
	}
}

// TestConcatUint checks the unsigned concatenation.
func TestConcatUint(t *testing.T) {
	if got := ConcatUint(0x2a, 0x180, 11); got != 86400 {
		t.Errorf("want 86400, got %d", got)
	}
	if got := ConcatUint(12, 12, 6); got != 780 {
		t.Errorf("want 780, got %d", got)
	}
}
