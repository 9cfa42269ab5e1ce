// The testdata package builds byte-exact UBX frames and SFRBX payloads
// for the unit tests.  The builder packs fields most significant bit
// first into the content of a nominal page - the 24 bits of word 1 after
// the page header, words 2 and 3, and the 34-bit continuation field - and
// then scatters the continuation field, the tail bits and the odd
// half-page flags across words 4 and 5 the way the receiver delivers
// them.
package testdata

import (
	"encoding/binary"

	"github.com/goblimey/go-galileo/ubx"
)

// ContentBits is the number of content bits in a page: the 8-bit header
// plus 24 bits of word 1, words 2 and 3, and the 34-bit continuation.
const ContentBits = 8 + 24 + 32 + 32 + 34

// Field is one bit field of page content.  Value holds the bits in twos
// complement for a signed field.
type Field struct {
	Value uint64
	Width uint
}

// packer packs fields MSB-first into a fixed run of bits.
type packer struct {
	bits [ContentBits]byte
	pos  uint
}

// add appends the bottom width bits of value.
func (p *packer) add(value uint64, width uint) {
	for i := uint(0); i < width; i++ {
		p.bits[p.pos] = byte((value >> (width - 1 - i)) & 1)
		p.pos++
	}
}

// word returns the 32 bits starting at the given bit offset as a word.
func (p *packer) word(offset uint) uint32 {
	return uint32(p.slice(offset, 32))
}

// slice returns width bits starting at the given offset.
func (p *packer) slice(offset, width uint) uint64 {
	var result uint64
	for i := uint(0); i < width; i++ {
		result = result<<1 | uint64(p.bits[offset+i])
	}
	return result
}

// Payload builds an SFRBX payload carrying one Galileo I/NAV page.  The
// page header (even/odd flag, page type 0, the word type) is followed by
// the given fields; any content not covered by the fields is zero.  The
// tail bits are zero and the odd half-page flags are set consistently,
// so the page passes the assembly gates.
func Payload(svID, sigID byte, evenOdd, wordType uint, fields []Field) []byte {

	var p packer
	p.add(uint64(evenOdd), 1)
	p.add(0, 1) // page type - nominal
	p.add(uint64(wordType), 6)
	for _, field := range fields {
		p.add(field.Value, field.Width)
	}

	word1 := p.word(0)
	word2 := p.word(32)
	word3 := p.word(64)

	// The 34-bit continuation field is delivered as the top 18 bits of
	// word 4 and bits 29-14 of word 5.  The tail sits below the data in
	// word 4; the odd half-page flags sit at the top of word 5.
	midHigh := uint32(p.slice(96, 18))
	midLow := uint32(p.slice(114, 16))

	word4 := midHigh << 14 // tail bits 13-8 are zero
	word5 := (1 - uint32(evenOdd)) << 31
	word5 |= midLow << 14

	payload := []byte{2, svID, sigID, 0, 8, 0, 0, 0}
	for _, word := range []uint32{word1, word2, word3, word4, word5, 0, 0, 0} {
		payload = binary.LittleEndian.AppendUint32(payload, word)
	}

	return payload
}

// Frame wraps a payload in a UBX frame: preamble, class, ID, length,
// payload and checksum.
func Frame(class, id byte, payload []byte) []byte {
	frame := []byte{0xb5, 0x62, class, id,
		byte(len(payload)), byte(len(payload) >> 8)}
	frame = append(frame, payload...)
	ckA, ckB := ubx.Checksum(class, id, payload)
	frame = append(frame, ckA, ckB)
	return frame
}

// SFRBXFrame wraps a payload in a UBX-RXM-SFRBX frame.
func SFRBXFrame(payload []byte) []byte {
	return Frame(0x02, 0x13, payload)
}
