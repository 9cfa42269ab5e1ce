package words

import (
	"fmt"

	"github.com/goblimey/go-galileo/galileo/bitstream"
	"github.com/goblimey/go-galileo/galileo/page"
)

// This file handles word type 8 - almanac for SVID1 (2/2) and SVID2 (1/2).

// Lengths of the fields and field parts in the bit stream.
const lenAlmClockBias = 16
const lenAlmClockDrift = 13
const lenAlmClockDriftHigh4 = 4
const lenAlmClockDriftLow9 = 9
const lenDeltaInclinationHigh = 5
const lenDeltaInclinationLow = 6

// Type8 is word type 8: the clock and health half of the SVID1 almanac
// and the orbital half of the SVID2 almanac.
type Type8 struct {
	// IssueOfData is IODa.
	IssueOfData uint

	// ClockBias is af0 for SVID1, truncated, raw.
	ClockBias int

	// ClockDrift is af1 for SVID1, truncated, raw.
	ClockDrift int

	// E5bHS and E1BHS are the SVID1 signal health statuses.
	E5bHS uint
	E1BHS uint

	// Svid is the second satellite of the almanac cycle.
	Svid uint

	// The orbital fields for SVID2, raw as in Type7.
	DeltaRootA       int
	Eccentricity     uint
	Perigee          int
	DeltaInclination int
	Longitude        int
	AscensionRate    int
}

// getType8 decodes a word type 8 page.
func getType8(p *page.Page) *Type8 {

	word1 := p.Word1()
	issueOfData := word1.Uint(lenAlmIssueOfData)
	clockBias := word1.Int(lenAlmClockBias)
	clockDriftHigh := word1.Int(lenAlmClockDriftHigh4)

	word2 := p.Word2()
	clockDriftLow := word2.Uint(lenAlmClockDriftLow9)
	e5bHS := word2.Uint(lenHealth)
	e1bHS := word2.Uint(lenHealth)
	svid := word2.Uint(lenSvid)
	deltaRootA := word2.Int(lenDeltaRootA)

	word3 := p.Word3()
	eccentricity := word3.Uint(lenAlmEccentricity)
	perigee := word3.Int(lenAlmPerigee)
	deltaInclinationHigh := word3.Int(lenDeltaInclinationHigh)

	midData := p.MidData()
	deltaInclinationLow := midData.Uint(lenDeltaInclinationLow)
	longitude := midData.Int(lenAlmLongitude)
	ascensionRate := midData.Int(lenAlmAscensionRate)

	clockDrift := bitstream.Concat(clockDriftHigh, clockDriftLow, lenAlmClockDriftLow9)
	deltaInclination := bitstream.Concat(deltaInclinationHigh, deltaInclinationLow, lenDeltaInclinationLow)

	word := Type8{
		IssueOfData:      uint(issueOfData),
		ClockBias:        int(clockBias),
		ClockDrift:       int(clockDrift),
		E5bHS:            uint(e5bHS),
		E1BHS:            uint(e1bHS),
		Svid:             uint(svid),
		DeltaRootA:       int(deltaRootA),
		Eccentricity:     uint(eccentricity),
		Perigee:          int(perigee),
		DeltaInclination: int(deltaInclination),
		Longitude:        int(longitude),
		AscensionRate:    int(ascensionRate),
	}

	return &word
}

// String returns a readable version of a word type 8.
func (word *Type8) String() string {
	return fmt.Sprintf("almanac (SVID1 2/2, SVID2 1/2): IODa %d, af0 %d, af1 %d, health %d/%d, svid %d, delta root A %d, e %d, perigee %d, delta i %d, omega0 %d, omega-dot %d",
		word.IssueOfData, word.ClockBias, word.ClockDrift,
		word.E5bHS, word.E1BHS, word.Svid, word.DeltaRootA,
		word.Eccentricity, word.Perigee, word.DeltaInclination,
		word.Longitude, word.AscensionRate)
}
