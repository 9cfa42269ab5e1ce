// The words package decodes the content of an assembled I/NAV nominal
// page.  Each word type lays out its own set of bit fields, many of them
// straddling the 32-bit data words, so each decoder takes bits from the
// page in strict order - word 1 (after the page header), word 2, word 3,
// then the 34-bit continuation field from the middle words - and glues the
// straddling fields back together.  The decoded records hold values in
// engineering units: the power-of-two scale factor is applied, and
// quantities broadcast in semicircles are converted to radians.
package words

import (
	"errors"

	"github.com/goblimey/go-galileo/galileo/page"
)

// The I/NAV word types.
const (
	TypeSpare       = 0  // Spare word carrying WN and TOW.
	TypeEphemeris1  = 1  // Ephemeris 1/4.
	TypeEphemeris2  = 2  // Ephemeris 2/4.
	TypeEphemeris3  = 3  // Ephemeris 3/4 and SISA.
	TypeEphemeris4  = 4  // Ephemeris 4/4 and clock correction.
	TypeIonospheric = 5  // Ionospheric correction, BGD, health, GST.
	TypeGSTUTC      = 6  // GST-UTC conversion.
	TypeAlmanac1    = 7  // Almanac: SVID1 (1/2).
	TypeAlmanac2    = 8  // Almanac: SVID1 (2/2) and SVID2 (1/2).
	TypeAlmanac3    = 9  // Almanac: SVID2 (2/2) and SVID3 (1/2).
	TypeAlmanac4    = 10 // Almanac: SVID3 (2/2) and GST-GPS conversion.
	TypeReducedCED  = 16 // Reduced clock and ephemeris data.
	TypeFEC2First   = 17 // FEC2 Reed-Solomon for CED, first of four.
	TypeFEC2Last    = 20 // FEC2 Reed-Solomon for CED, last of four.
	TypeDummy       = 63 // Dummy word, no content.
)

// Word is a decoded I/NAV word of any type.
type Word interface {
	// String returns the word in readable form.
	String() string
}

// GetWord decodes the content of the page according to its word type.
func GetWord(p *page.Page) (Word, error) {
	switch {
	case p.WordType == TypeSpare:
		return getType0(p), nil
	case p.WordType == TypeEphemeris1:
		return getType1(p), nil
	case p.WordType == TypeEphemeris2:
		return getType2(p), nil
	case p.WordType == TypeEphemeris3:
		return getType3(p), nil
	case p.WordType == TypeEphemeris4:
		return getType4(p), nil
	case p.WordType == TypeIonospheric:
		return getType5(p), nil
	case p.WordType == TypeGSTUTC:
		return getType6(p), nil
	case p.WordType == TypeAlmanac1:
		return getType7(p), nil
	case p.WordType == TypeAlmanac2:
		return getType8(p), nil
	case p.WordType == TypeAlmanac3:
		return getType9(p), nil
	case p.WordType == TypeAlmanac4:
		return getType10(p), nil
	case p.WordType == TypeReducedCED:
		return getType16(p), nil
	case p.WordType >= TypeFEC2First && p.WordType <= TypeFEC2Last:
		return getType17(p), nil
	case p.WordType == TypeDummy:
		return &Type63{}, nil
	default:
		// The page assembler only passes known word types, so this
		// is unreachable in the normal flow.
		return nil, errors.New("unknown word type")
	}
}
