package words

import (
	"fmt"

	"github.com/goblimey/go-galileo/galileo/bitstream"
	"github.com/goblimey/go-galileo/galileo/page"
	"github.com/goblimey/go-galileo/galileo/utils"
)

// This file handles word type 3 - ephemeris (3/4) and SISA.

// Lengths of the fields and field parts in the bit stream.
const lenAscensionRateHigh = 14
const lenAscensionRateLow = 10
const lenMeanMotion = 16
const lenHarmonic = 16
const lenHarmonicHigh = 6
const lenHarmonicLow = 10
const lenSISA = 8

// Type3 is word type 3: perturbation terms and the signal-in-space
// accuracy index.
type Type3 struct {
	// IssueOfData is the 10-bit IODnav.
	IssueOfData uint

	// AscensionRate is Omega-dot, the rate of change of right ascension,
	// in radians per second.
	AscensionRate float64

	// MeanMotionDifference is delta-n, the mean motion difference from
	// the computed value, in radians per second.
	MeanMotionDifference float64

	// Cuc and Cus are the harmonic correction terms to the argument of
	// latitude, in radians.
	Cuc float64
	Cus float64

	// Crc and Crs are the harmonic correction terms to the orbit radius,
	// in metres.
	Crc float64
	Crs float64

	// SISA is the signal-in-space accuracy index, unscaled.
	SISA uint
}

// getType3 decodes a word type 3 page.
func getType3(p *page.Page) *Type3 {

	word1 := p.Word1()
	issueOfData := word1.Uint(lenIssueOfData)
	ascensionRateHigh := word1.Int(lenAscensionRateHigh)

	word2 := p.Word2()
	ascensionRateLow := word2.Uint(lenAscensionRateLow)
	meanMotionDifference := word2.Int(lenMeanMotion)
	cucHigh := word2.Int(lenHarmonicHigh)

	word3 := p.Word3()
	cucLow := word3.Uint(lenHarmonicLow)
	cus := word3.Int(lenHarmonic)
	crcHigh := word3.Int(lenHarmonicHigh)

	midData := p.MidData()
	crcLow := midData.Uint(lenHarmonicLow)
	crs := midData.Int(lenHarmonic)
	sisa := midData.Uint(lenSISA)

	ascensionRate := bitstream.Concat(ascensionRateHigh, ascensionRateLow, lenAscensionRateLow)
	cuc := bitstream.Concat(cucHigh, cucLow, lenHarmonicLow)
	crc := bitstream.Concat(crcHigh, crcLow, lenHarmonicLow)

	word := Type3{
		IssueOfData:          uint(issueOfData),
		AscensionRate:        float64(ascensionRate) * utils.Scale(-43) * utils.Pi,
		MeanMotionDifference: float64(meanMotionDifference) * utils.Scale(-43) * utils.Pi,
		Cuc:                  float64(cuc) * utils.Scale(-29),
		Cus:                  float64(cus) * utils.Scale(-29),
		Crc:                  float64(crc) * utils.Scale(-5),
		Crs:                  float64(crs) * utils.Scale(-5),
		SISA:                 uint(sisa),
	}

	return &word
}

// String returns a readable version of a word type 3.
func (word *Type3) String() string {
	return fmt.Sprintf("ephemeris (3/4): IOD %d, omega-dot %e, delta-n %e, Cuc %e, Cus %e, Crc %e, Crs %e, SISA %d",
		word.IssueOfData, word.AscensionRate, word.MeanMotionDifference,
		word.Cuc, word.Cus, word.Crc, word.Crs, word.SISA)
}
