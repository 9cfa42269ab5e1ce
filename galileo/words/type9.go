package words

import (
	"fmt"

	"github.com/goblimey/go-galileo/galileo/bitstream"
	"github.com/goblimey/go-galileo/galileo/page"
)

// This file handles word type 9 - almanac for SVID2 (2/2) and SVID3 (1/2).

// Lengths of the field parts in the bit stream.
const lenAlmAnomalyHigh = 8
const lenAlmAnomalyLow = 8
const lenAlmClockDriftHigh8 = 8
const lenAlmClockDriftLow5 = 5
const lenAlmEccentricityHigh = 4
const lenAlmEccentricityLow = 7

// Type9 is word type 9: the clock and health half of the SVID2 almanac
// and the start of the SVID3 almanac.
type Type9 struct {
	// IssueOfData is IODa.
	IssueOfData uint

	// WeekNumber is WNa.
	WeekNumber uint

	// ReferenceTime is t0a, raw.
	ReferenceTime uint

	// MeanAnomaly is M0 for SVID2, raw semicircles.
	MeanAnomaly int

	// ClockBias is af0 for SVID2, truncated, raw.
	ClockBias int

	// ClockDrift is af1 for SVID2, truncated, raw.
	ClockDrift int

	// E5bHS and E1BHS are the SVID2 signal health statuses.
	E5bHS uint
	E1BHS uint

	// Svid is the third satellite of the almanac cycle.
	Svid uint

	// The first orbital fields for SVID3, raw as in Type7.
	DeltaRootA       int
	Eccentricity     uint
	Perigee          int
	DeltaInclination int
}

// getType9 decodes a word type 9 page.
func getType9(p *page.Page) *Type9 {

	word1 := p.Word1()
	issueOfData := word1.Uint(lenAlmIssueOfData)
	weekNumber := word1.Uint(lenAlmWeek)
	referenceTime := word1.Uint(lenAlmTime)
	meanAnomalyHigh := word1.Int(lenAlmAnomalyHigh)

	word2 := p.Word2()
	meanAnomalyLow := word2.Uint(lenAlmAnomalyLow)
	clockBias := word2.Int(lenAlmClockBias)
	clockDriftHigh := word2.Int(lenAlmClockDriftHigh8)

	word3 := p.Word3()
	clockDriftLow := word3.Uint(lenAlmClockDriftLow5)
	e5bHS := word3.Uint(lenHealth)
	e1bHS := word3.Uint(lenHealth)
	svid := word3.Uint(lenSvid)
	deltaRootA := word3.Int(lenDeltaRootA)
	eccentricityHigh := word3.Uint(lenAlmEccentricityHigh)

	midData := p.MidData()
	eccentricityLow := midData.Uint(lenAlmEccentricityLow)
	perigee := midData.Int(lenAlmPerigee)
	deltaInclination := midData.Int(lenDeltaInclination)

	meanAnomaly := bitstream.Concat(meanAnomalyHigh, meanAnomalyLow, lenAlmAnomalyLow)
	clockDrift := bitstream.Concat(clockDriftHigh, clockDriftLow, lenAlmClockDriftLow5)
	eccentricity := bitstream.ConcatUint(eccentricityHigh, eccentricityLow, lenAlmEccentricityLow)

	word := Type9{
		IssueOfData:      uint(issueOfData),
		WeekNumber:       uint(weekNumber),
		ReferenceTime:    uint(referenceTime),
		MeanAnomaly:      int(meanAnomaly),
		ClockBias:        int(clockBias),
		ClockDrift:       int(clockDrift),
		E5bHS:            uint(e5bHS),
		E1BHS:            uint(e1bHS),
		Svid:             uint(svid),
		DeltaRootA:       int(deltaRootA),
		Eccentricity:     uint(eccentricity),
		Perigee:          int(perigee),
		DeltaInclination: int(deltaInclination),
	}

	return &word
}

// String returns a readable version of a word type 9.
func (word *Type9) String() string {
	return fmt.Sprintf("almanac (SVID2 2/2, SVID3 1/2): IODa %d, WNa %d, t0a %d, M0 %d, af0 %d, af1 %d, health %d/%d, svid %d, delta root A %d, e %d, perigee %d, delta i %d",
		word.IssueOfData, word.WeekNumber, word.ReferenceTime,
		word.MeanAnomaly, word.ClockBias, word.ClockDrift,
		word.E5bHS, word.E1BHS, word.Svid, word.DeltaRootA,
		word.Eccentricity, word.Perigee, word.DeltaInclination)
}
