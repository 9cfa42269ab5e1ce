package words

import (
	"fmt"

	"github.com/goblimey/go-galileo/galileo/bitstream"
	"github.com/goblimey/go-galileo/galileo/page"
)

// This file handles word types 17 to 20 - the FEC2 Reed-Solomon words for
// the clock and ephemeris data.  The decoder extracts the raw symbol
// fields; it does not run the Reed-Solomon decode (the receiver has
// already applied forward error correction to the data words it delivers).

// Lengths of the fields and field parts in the bit stream.
const lenFECField1 = 8
const lenFECLsb = 2
const lenFEC2High = 14
const lenFEC2Mid = 32
const lenFEC2Low = 18
const lenFEC3High = 14
const lenFEC3Low = 34

// Type17 is an FEC2 word (types 17-20): the raw Reed-Solomon symbols.
type Type17 struct {
	// WordType distinguishes the four FEC2 words, 17-20.
	WordType uint

	// Field1 is the first symbol byte.
	Field1 uint

	// Lsb is the 2-bit least-significant-bits field.
	Lsb uint

	// Symbols1 is the first 64-bit run of symbol bits.
	Symbols1 uint64

	// Symbols2 is the trailing 48-bit run of symbol bits.
	Symbols2 uint64
}

// getType17 decodes a word type 17, 18, 19 or 20 page.
func getType17(p *page.Page) *Type17 {

	word1 := p.Word1()
	field1 := word1.Uint(lenFECField1)
	lsb := word1.Uint(lenFECLsb)
	symbols1High := word1.Uint(lenFEC2High)

	word2 := p.Word2()
	symbols1Mid := word2.Uint(lenFEC2Mid)

	word3 := p.Word3()
	symbols1Low := word3.Uint(lenFEC2Low)
	symbols2High := word3.Uint(lenFEC3High)

	midData := p.MidData()
	symbols2Low := midData.Uint(lenFEC3Low)

	symbols1 := bitstream.ConcatUint(symbols1High, symbols1Mid, lenFEC2Mid)
	symbols1 = bitstream.ConcatUint(symbols1, symbols1Low, lenFEC2Low)
	symbols2 := bitstream.ConcatUint(symbols2High, symbols2Low, lenFEC3Low)

	word := Type17{
		WordType: p.WordType,
		Field1:   uint(field1),
		Lsb:      uint(lsb),
		Symbols1: symbols1,
		Symbols2: symbols2,
	}

	return &word
}

// String returns a readable version of an FEC2 word.
func (word *Type17) String() string {
	return fmt.Sprintf("FEC2 (type %d): field1 0x%02x, lsb %d, symbols 0x%016x 0x%012x",
		word.WordType, word.Field1, word.Lsb, word.Symbols1, word.Symbols2)
}
