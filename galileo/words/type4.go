package words

import (
	"fmt"

	"github.com/goblimey/go-galileo/galileo/bitstream"
	"github.com/goblimey/go-galileo/galileo/page"
	"github.com/goblimey/go-galileo/galileo/utils"
)

// This file handles word type 4 - SVID, ephemeris (4/4) and the clock
// correction parameters.

// Lengths of the fields and field parts in the bit stream.
const lenSvid = 6
const lenCicHigh = 8
const lenCicLow = 8
const lenClockTimeHigh = 8
const lenClockTimeLow = 6
const lenClockBiasHigh = 26
const lenClockBiasLow = 5
const lenClockDrift = 21
const lenClockDriftRate = 6

// Type4 is word type 4: the last of the harmonic terms and the satellite
// clock correction.
type Type4 struct {
	// IssueOfData is the 10-bit IODnav.
	IssueOfData uint

	// Svid is the satellite that the ephemeris describes.
	Svid uint

	// Cic and Cis are the harmonic correction terms to the angle of
	// inclination, in radians.
	Cic float64
	Cis float64

	// ClockTime is t0c, the clock correction data reference time, in
	// seconds of week.
	ClockTime float64

	// ClockBias is af0, the clock bias correction coefficient, in
	// seconds.
	ClockBias float64

	// ClockDrift is af1, the clock drift correction coefficient, in
	// seconds per second.
	ClockDrift float64

	// ClockDriftRate is af2, the clock drift rate correction
	// coefficient, in seconds per second squared.
	ClockDriftRate float64
}

// getType4 decodes a word type 4 page.
func getType4(p *page.Page) *Type4 {

	word1 := p.Word1()
	issueOfData := word1.Uint(lenIssueOfData)
	svid := word1.Uint(lenSvid)
	cicHigh := word1.Int(lenCicHigh)

	word2 := p.Word2()
	cicLow := word2.Uint(lenCicLow)
	cis := word2.Int(lenHarmonic)
	clockTimeHigh := word2.Uint(lenClockTimeHigh)

	word3 := p.Word3()
	clockTimeLow := word3.Uint(lenClockTimeLow)
	clockBiasHigh := word3.Int(lenClockBiasHigh)

	midData := p.MidData()
	clockBiasLow := midData.Uint(lenClockBiasLow)
	clockDrift := midData.Int(lenClockDrift)
	clockDriftRate := midData.Int(lenClockDriftRate)

	cic := bitstream.Concat(cicHigh, cicLow, lenCicLow)
	clockTime := bitstream.ConcatUint(clockTimeHigh, clockTimeLow, lenClockTimeLow)
	clockBias := bitstream.Concat(clockBiasHigh, clockBiasLow, lenClockBiasLow)

	word := Type4{
		IssueOfData:    uint(issueOfData),
		Svid:           uint(svid),
		Cic:            float64(cic) * utils.Scale(-29),
		Cis:            float64(cis) * utils.Scale(-29),
		ClockTime:      float64(clockTime) * 60,
		ClockBias:      float64(clockBias) * utils.Scale(-34),
		ClockDrift:     float64(clockDrift) * utils.Scale(-46),
		ClockDriftRate: float64(clockDriftRate) * utils.Scale(-59),
	}

	return &word
}

// String returns a readable version of a word type 4.
func (word *Type4) String() string {
	return fmt.Sprintf("ephemeris (4/4): IOD %d, svid %d, Cic %e, Cis %e, t0c %.0f, af0 %e, af1 %e, af2 %e",
		word.IssueOfData, word.Svid, word.Cic, word.Cis,
		word.ClockTime, word.ClockBias, word.ClockDrift, word.ClockDriftRate)
}
