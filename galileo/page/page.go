// The page package rebuilds a Galileo I/NAV nominal page from the payload
// of a UBX-RXM-SFRBX frame.
//
// The receiver delivers the page as eight 32-bit data words (nine on E5b -
// the ninth is not part of the page).  Each word is little-endian on the
// wire, but the bit layout inside the reconstructed word is most
// significant bit first, so every word is byte-swapped before any bits are
// taken from it.  The first word starts with a three-field header:
// even/odd flag, page type (1 = alert page) and the six-bit word type.
// The page content then runs through words 1-3 and continues in a 34-bit
// field spread across words 4 and 5.  Words 4 and 5 also hold the six tail
// bits and the even/odd and page-type flags of the odd half-page; words
// 6-8 carry CRC and SAR data which this decoder does not use.
package page

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/goblimey/go-galileo/galileo/bitstream"
	"github.com/goblimey/go-galileo/galileo/utils"
)

// lenSFRBXHeader is the length of the fixed header of an SFRBX payload.
const lenSFRBXHeader = 8

// Lengths of the fields at the start of the first data word.
const lenEvenOdd = 1
const lenPageType = 1
const lenWordType = 6

// HeaderBits is the number of bits consumed from the first word by the
// even/odd, page type and word type fields.
const HeaderBits = lenEvenOdd + lenPageType + lenWordType

// The page-level rejections.  None of them is fatal - the handler counts
// the page and moves on.
var (
	// ErrNotGalileo - the subframe belongs to another constellation.
	ErrNotGalileo = errors.New("not a Galileo subframe")
	// ErrAlertPage - the page type flag marks an alert page.
	ErrAlertPage = errors.New("alert page")
	// ErrUnknownWordType - the word type is not one that I/NAV defines.
	ErrUnknownWordType = errors.New("unknown word type")
	// ErrBadTail - the six tail bits are not zero.
	ErrBadTail = errors.New("non-zero tail")
	// ErrEvenOddMismatch - the odd half-page flag does not complement the
	// even half-page flag.
	ErrEvenOddMismatch = errors.New("even/odd flags do not complement")
)

// Header is the fixed 8-byte header of an SFRBX payload.
type Header struct {
	// GnssID identifies the constellation - 2 is Galileo.
	GnssID byte

	// SvID is the satellite, 1-36 for Galileo.
	SvID byte

	// SigID identifies the signal - 1 is E1-B, 5 is E5b.  (The interface
	// description labels this byte reserved, but the receiver fills it in.)
	SigID byte

	// FreqID is only meaningful for Glonass.
	FreqID byte

	// NumWords is the number of 32-bit data words that follow - 8 for
	// Galileo E1-B, 9 for E5b.
	NumWords byte

	// Channel is the tracking channel number.
	Channel byte

	// Version is the message version.
	Version byte
}

// GetHeader breaks out the fixed header of an SFRBX payload.
func GetHeader(payload []byte) (*Header, error) {
	if len(payload) < lenSFRBXHeader {
		em := fmt.Sprintf("overrun - SFRBX payload is %d bytes, want at least %d",
			len(payload), lenSFRBXHeader)
		return nil, errors.New(em)
	}

	header := Header{
		GnssID:   payload[0],
		SvID:     payload[1],
		SigID:    payload[2],
		FreqID:   payload[3],
		NumWords: payload[4],
		Channel:  payload[5],
		Version:  payload[6],
	}
	return &header, nil
}

// Page is an assembled I/NAV nominal page, ready for the word-type
// decoders.  The decoders take bits from Word1, then Word2, then Word3,
// then MidData, in that order.
type Page struct {
	// Header is the SFRBX payload header.
	Header Header

	// EvenOdd is the even/odd flag of the even half-page.
	EvenOdd uint

	// WordType says which fields the page carries - see the words package.
	WordType uint

	// Tail is the six tail bits dug out of the middle words.  Always zero
	// on a page that passed assembly.
	Tail uint

	word1 uint32
	word2 uint32
	word3 uint32

	// midData is the 34-bit continuation field from words 4 and 5,
	// aligned at the most significant bit.
	midData uint64
}

// knownWordType reports whether I/NAV defines the word type.
func knownWordType(wordType uint) bool {
	switch {
	case wordType <= 10:
		return true
	case wordType >= 16 && wordType <= 20:
		return true
	case wordType == 63:
		return true
	default:
		return false
	}
}

// dataWord returns data word i (numbered from 1) of the payload,
// byte-swapped into its MSB-first form.
func dataWord(payload []byte, i int) uint32 {
	start := lenSFRBXHeader + (i-1)*4
	return binary.LittleEndian.Uint32(payload[start : start+4])
}

// GetPage assembles a nominal page from an SFRBX payload, applying the
// gates: constellation, alert flag, word type, tail bits and the
// even/odd cross-check between the two half-pages.
func GetPage(payload []byte) (*Page, error) {

	header, headerError := GetHeader(payload)
	if headerError != nil {
		return nil, headerError
	}

	if header.GnssID != utils.GnssGalileo {
		return nil, ErrNotGalileo
	}

	if header.NumWords != utils.NumWordsE1 && header.NumWords != utils.NumWordsE5b {
		em := fmt.Sprintf("SFRBX payload has %d words, want %d or %d",
			header.NumWords, utils.NumWordsE1, utils.NumWordsE5b)
		return nil, errors.New(em)
	}

	wantLength := lenSFRBXHeader + int(header.NumWords)*4
	if len(payload) < wantLength {
		em := fmt.Sprintf("overrun - SFRBX payload is %d bytes, want %d for %d words",
			len(payload), wantLength, header.NumWords)
		return nil, errors.New(em)
	}

	page := Page{
		Header: *header,
		word1:  dataWord(payload, 1),
		word2:  dataWord(payload, 2),
		word3:  dataWord(payload, 3),
	}

	// The three header fields at the top of word 1.
	reader := bitstream.NewReader(page.word1)
	page.EvenOdd = uint(reader.Uint(lenEvenOdd))
	pageType := uint(reader.Uint(lenPageType))
	page.WordType = uint(reader.Uint(lenWordType))

	if pageType == 1 {
		return nil, ErrAlertPage
	}

	if !knownWordType(page.WordType) {
		return nil, ErrUnknownWordType
	}

	// Concatenate words 4 and 5 and take the two projections.
	middle := uint64(dataWord(payload, 4))<<32 | uint64(dataWord(payload, 5))

	// The tail and the odd half-page flags, packed at the top of the
	// register as tail(6) | even_odd(1) | page_type(1).
	util := middle & utils.MaskUtil
	util = (util << utils.UtilShiftTail) | (util << utils.UtilShiftFlags)

	utilReader := bitstream.NewReader64(util)
	page.Tail = uint(utilReader.Uint(6))
	oddEvenOdd := uint(utilReader.Uint(1))

	if page.Tail != 0 {
		return nil, ErrBadTail
	}

	// The two half-pages arrive as an even/odd pair, so the flags must
	// complement each other.
	if oddEvenOdd == page.EvenOdd {
		return nil, ErrEvenOddMismatch
	}

	// The 34 data bits that continue the page after word 3.
	page.midData = (middle & utils.MaskDataHigh) |
		((middle & utils.MaskDataLow) << utils.DataShiftLow)

	return &page, nil
}

// Word1 returns a bit reader over the first data word, positioned past the
// even/odd, page type and word type fields - 24 data bits remain.
func (page *Page) Word1() *bitstream.Reader {
	reader := bitstream.NewReader(page.word1)
	reader.Skip(HeaderBits)
	return reader
}

// Word2 returns a bit reader over the second data word.
func (page *Page) Word2() *bitstream.Reader {
	return bitstream.NewReader(page.word2)
}

// Word3 returns a bit reader over the third data word.
func (page *Page) Word3() *bitstream.Reader {
	return bitstream.NewReader(page.word3)
}

// MidData returns a bit reader over the 34-bit continuation field from
// words 4 and 5.
func (page *Page) MidData() *bitstream.Reader {
	return bitstream.NewReader64(page.midData)
}
