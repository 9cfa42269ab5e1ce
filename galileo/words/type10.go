package words

import (
	"fmt"

	"github.com/goblimey/go-galileo/galileo/bitstream"
	"github.com/goblimey/go-galileo/galileo/page"
	"github.com/goblimey/go-galileo/galileo/utils"
)

// This file handles word type 10 - almanac for SVID3 (2/2) and the
// GST-GPS conversion parameters.

// Lengths of the fields and field parts in the bit stream.
const lenAlmAscensionRateHigh = 4
const lenAlmAscensionRateLow = 7
const lenAlmClockBiasHigh = 9
const lenAlmClockBiasLow = 7
const lenA0GHigh = 8
const lenA0GLow = 8
const lenA1G = 12
const lenGPSTime = 8
const lenGPSWeek = 6

// Type10 is word type 10: the rest of the SVID3 almanac and the
// polynomial converting Galileo system time to GPS time.
type Type10 struct {
	// IssueOfData is IODa.
	IssueOfData uint

	// The remaining orbital and clock fields for SVID3, raw as in Type7
	// and Type8.
	Longitude     int
	AscensionRate int
	MeanAnomaly   int
	ClockBias     int
	ClockDrift    int

	// E5bHS and E1BHS are the SVID3 signal health statuses.
	E5bHS uint
	E1BHS uint

	// A0G is the constant term of the GST-GPS offset polynomial, in
	// seconds.
	A0G float64

	// A1G is the first-order term, in seconds per second.
	A1G float64

	// ReferenceTime is t0G, the reference time for the GGTO data, in
	// seconds.
	ReferenceTime uint

	// ReferenceWeek is WN0G, the week number of the GGTO reference.
	ReferenceWeek uint
}

// getType10 decodes a word type 10 page.
func getType10(p *page.Page) *Type10 {

	word1 := p.Word1()
	issueOfData := word1.Uint(lenAlmIssueOfData)
	longitude := word1.Int(lenAlmLongitude)
	ascensionRateHigh := word1.Int(lenAlmAscensionRateHigh)

	word2 := p.Word2()
	ascensionRateLow := word2.Uint(lenAlmAscensionRateLow)
	meanAnomaly := word2.Int(lenAlmAnomaly)
	clockBiasHigh := word2.Int(lenAlmClockBiasHigh)

	word3 := p.Word3()
	clockBiasLow := word3.Uint(lenAlmClockBiasLow)
	clockDrift := word3.Int(lenAlmClockDrift)
	e5bHS := word3.Uint(lenHealth)
	e1bHS := word3.Uint(lenHealth)
	a0gHigh := word3.Int(lenA0GHigh)

	midData := p.MidData()
	a0gLow := midData.Uint(lenA0GLow)
	a1g := midData.Int(lenA1G)
	referenceTime := midData.Uint(lenGPSTime)
	referenceWeek := midData.Uint(lenGPSWeek)

	ascensionRate := bitstream.Concat(ascensionRateHigh, ascensionRateLow, lenAlmAscensionRateLow)
	clockBias := bitstream.Concat(clockBiasHigh, clockBiasLow, lenAlmClockBiasLow)
	a0g := bitstream.Concat(a0gHigh, a0gLow, lenA0GLow)

	word := Type10{
		IssueOfData:   uint(issueOfData),
		Longitude:     int(longitude),
		AscensionRate: int(ascensionRate),
		MeanAnomaly:   int(meanAnomaly),
		ClockBias:     int(clockBias),
		ClockDrift:    int(clockDrift),
		E5bHS:         uint(e5bHS),
		E1BHS:         uint(e1bHS),
		A0G:           float64(a0g) * utils.Scale(-35),
		A1G:           float64(a1g) * utils.Scale(-51),
		ReferenceTime: uint(referenceTime) * 3600,
		ReferenceWeek: uint(referenceWeek),
	}

	return &word
}

// String returns a readable version of a word type 10.
func (word *Type10) String() string {
	return fmt.Sprintf("almanac (SVID3 2/2) and GST-GPS: IODa %d, omega0 %d, omega-dot %d, M0 %d, af0 %d, af1 %d, health %d/%d, A0G %e, A1G %e, t0G %d, WN0G %d",
		word.IssueOfData, word.Longitude, word.AscensionRate,
		word.MeanAnomaly, word.ClockBias, word.ClockDrift,
		word.E5bHS, word.E1BHS, word.A0G, word.A1G,
		word.ReferenceTime, word.ReferenceWeek)
}
