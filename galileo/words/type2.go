package words

import (
	"fmt"

	"github.com/goblimey/go-galileo/galileo/bitstream"
	"github.com/goblimey/go-galileo/galileo/page"
	"github.com/goblimey/go-galileo/galileo/utils"
)

// This file handles word type 2 - ephemeris (2/4).  The longitude,
// inclination and perigee fields are all 32 bits, delivered as 14 bits at
// the end of one word and 18 bits at the start of the next.

// Lengths of the field parts in the bit stream.
const lenOrbitalHigh = 14
const lenOrbitalLow = 18
const lenInclinationRate = 14

// Type2 is word type 2: the orbital plane of the satellite.
type Type2 struct {
	// IssueOfData is the 10-bit IODnav.
	IssueOfData uint

	// Longitude is Omega0, the longitude of the ascending node of the
	// orbital plane at the weekly epoch, in radians.
	Longitude float64

	// InclinationAngle is i0, the inclination angle at reference time,
	// in radians.
	InclinationAngle float64

	// Perigee is omega, the argument of perigee, in radians.
	Perigee float64

	// InclinationRate is i-dot, the rate of change of the inclination
	// angle, in radians per second.
	InclinationRate float64
}

// getType2 decodes a word type 2 page.
func getType2(p *page.Page) *Type2 {

	word1 := p.Word1()
	issueOfData := word1.Uint(lenIssueOfData)
	longitudeHigh := word1.Int(lenOrbitalHigh)

	word2 := p.Word2()
	longitudeLow := word2.Uint(lenOrbitalLow)
	inclinationHigh := word2.Int(lenOrbitalHigh)

	word3 := p.Word3()
	inclinationLow := word3.Uint(lenOrbitalLow)
	perigeeHigh := word3.Int(lenOrbitalHigh)

	midData := p.MidData()
	perigeeLow := midData.Uint(lenOrbitalLow)
	inclinationRate := midData.Int(lenInclinationRate)

	longitude := bitstream.Concat(longitudeHigh, longitudeLow, lenOrbitalLow)
	inclination := bitstream.Concat(inclinationHigh, inclinationLow, lenOrbitalLow)
	perigee := bitstream.Concat(perigeeHigh, perigeeLow, lenOrbitalLow)

	word := Type2{
		IssueOfData:      uint(issueOfData),
		Longitude:        float64(longitude) * utils.Scale(-31) * utils.Pi,
		InclinationAngle: float64(inclination) * utils.Scale(-31) * utils.Pi,
		Perigee:          float64(perigee) * utils.Scale(-31) * utils.Pi,
		InclinationRate:  float64(inclinationRate) * utils.Scale(-43) * utils.Pi,
	}

	return &word
}

// String returns a readable version of a word type 2.
func (word *Type2) String() string {
	return fmt.Sprintf("ephemeris (2/4): IOD %d, omega0 %e, i0 %e, omega %e, i-dot %e",
		word.IssueOfData, word.Longitude, word.InclinationAngle,
		word.Perigee, word.InclinationRate)
}
