package words

import (
	"fmt"

	"github.com/goblimey/go-galileo/galileo/bitstream"
	"github.com/goblimey/go-galileo/galileo/page"
)

// This file handles word type 16 - reduced clock and ephemeris data.  The
// record is decoded and counted but not merged into the navigation record.

// Lengths of the fields and field parts in the bit stream.
const lenReducedDeltaA = 5
const lenReducedEx = 13
const lenReducedEyHigh = 6
const lenReducedEyLow = 7
const lenReducedInclination = 17
const lenReducedLongitudeHigh = 8
const lenReducedLongitudeLow = 15
const lenReducedLambdaHigh = 17
const lenReducedLambdaLow = 6
const lenReducedClockBias = 22
const lenReducedClockDrift = 6

// Type16 is word type 16: the reduced CED parameters, raw.
type Type16 struct {
	// DeltaA is the difference between the reduced CED semi-major axis
	// and the nominal value.
	DeltaA int

	// Ex and Ey are the reduced CED eccentricity vector components.
	Ex int
	Ey int

	// DeltaInclination is the difference from the nominal inclination.
	DeltaInclination int

	// Longitude of the ascending node at weekly epoch.
	Longitude int

	// Lambda is the reduced CED mean argument of latitude.
	Lambda int

	// ClockBias and ClockDrift are the reduced CED clock correction
	// coefficients.
	ClockBias  int
	ClockDrift int
}

// getType16 decodes a word type 16 page.
func getType16(p *page.Page) *Type16 {

	word1 := p.Word1()
	deltaA := word1.Int(lenReducedDeltaA)
	ex := word1.Int(lenReducedEx)
	eyHigh := word1.Int(lenReducedEyHigh)

	word2 := p.Word2()
	eyLow := word2.Uint(lenReducedEyLow)
	deltaInclination := word2.Int(lenReducedInclination)
	longitudeHigh := word2.Int(lenReducedLongitudeHigh)

	word3 := p.Word3()
	longitudeLow := word3.Uint(lenReducedLongitudeLow)
	lambdaHigh := word3.Int(lenReducedLambdaHigh)

	midData := p.MidData()
	lambdaLow := midData.Uint(lenReducedLambdaLow)
	clockBias := midData.Int(lenReducedClockBias)
	clockDrift := midData.Int(lenReducedClockDrift)

	ey := bitstream.Concat(eyHigh, eyLow, lenReducedEyLow)
	longitude := bitstream.Concat(longitudeHigh, longitudeLow, lenReducedLongitudeLow)
	lambda := bitstream.Concat(lambdaHigh, lambdaLow, lenReducedLambdaLow)

	word := Type16{
		DeltaA:           int(deltaA),
		Ex:               int(ex),
		Ey:               int(ey),
		DeltaInclination: int(deltaInclination),
		Longitude:        int(longitude),
		Lambda:           int(lambda),
		ClockBias:        int(clockBias),
		ClockDrift:       int(clockDrift),
	}

	return &word
}

// String returns a readable version of a word type 16.
func (word *Type16) String() string {
	return fmt.Sprintf("reduced CED: delta A %d, ex %d, ey %d, delta i0 %d, omega0 %d, lambda0 %d, af0 %d, af1 %d",
		word.DeltaA, word.Ex, word.Ey, word.DeltaInclination,
		word.Longitude, word.Lambda, word.ClockBias, word.ClockDrift)
}
