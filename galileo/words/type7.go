package words

import (
	"fmt"

	"github.com/goblimey/go-galileo/galileo/bitstream"
	"github.com/goblimey/go-galileo/galileo/page"
)

// This file handles word type 7 - the first half of the almanac for the
// first of the three satellites covered by an almanac cycle, plus the
// almanac reference time and week.
//
// The almanac fields are kept as the raw broadcast integers.  The
// accumulator assembles the halves; the coarse almanac scale factors are a
// concern for whatever consumes the assembled set.

// Lengths of the fields and field parts in the bit stream.
const lenAlmIssueOfData = 4
const lenAlmWeek = 2
const lenAlmTime = 10
const lenDeltaRootAHigh2 = 2
const lenDeltaRootALow11 = 11
const lenDeltaRootA = 13
const lenAlmEccentricity = 11
const lenAlmPerigee = 16
const lenAlmPerigeeHigh = 10
const lenAlmPerigeeLow = 6
const lenDeltaInclination = 11
const lenAlmLongitude = 16
const lenAlmLongitudeHigh = 15
const lenAlmLongitudeLow = 1
const lenAlmAscensionRate = 11
const lenAlmAnomaly = 16

// Type7 is word type 7: almanac for SVID1 (1/2).
type Type7 struct {
	// IssueOfData is IODa, the 4-bit almanac issue of data.
	IssueOfData uint

	// WeekNumber is WNa, the two low bits of the almanac reference week.
	WeekNumber uint

	// ReferenceTime is t0a, the almanac reference time, raw (600 second
	// units).
	ReferenceTime uint

	// Svid is the satellite the almanac describes.
	Svid uint

	// DeltaRootA is the difference between the square root of the
	// semi-major axis and the nominal value, raw.
	DeltaRootA int

	// Eccentricity, raw.
	Eccentricity uint

	// Perigee is the argument of perigee, raw semicircles.
	Perigee int

	// DeltaInclination is the difference from the nominal inclination,
	// raw semicircles.
	DeltaInclination int

	// Longitude is the longitude of the ascending node, raw semicircles.
	Longitude int

	// AscensionRate is the rate of change of right ascension, raw.
	AscensionRate int

	// MeanAnomaly at reference time, raw semicircles.
	MeanAnomaly int
}

// getType7 decodes a word type 7 page.
func getType7(p *page.Page) *Type7 {

	word1 := p.Word1()
	issueOfData := word1.Uint(lenAlmIssueOfData)
	weekNumber := word1.Uint(lenAlmWeek)
	referenceTime := word1.Uint(lenAlmTime)
	svid := word1.Uint(lenSvid)
	deltaRootAHigh := word1.Int(lenDeltaRootAHigh2)

	word2 := p.Word2()
	deltaRootALow := word2.Uint(lenDeltaRootALow11)
	eccentricity := word2.Uint(lenAlmEccentricity)
	perigeeHigh := word2.Int(lenAlmPerigeeHigh)

	word3 := p.Word3()
	perigeeLow := word3.Uint(lenAlmPerigeeLow)
	deltaInclination := word3.Int(lenDeltaInclination)
	longitudeHigh := word3.Int(lenAlmLongitudeHigh)

	midData := p.MidData()
	longitudeLow := midData.Uint(lenAlmLongitudeLow)
	ascensionRate := midData.Int(lenAlmAscensionRate)
	meanAnomaly := midData.Int(lenAlmAnomaly)

	deltaRootA := bitstream.Concat(deltaRootAHigh, deltaRootALow, lenDeltaRootALow11)
	perigee := bitstream.Concat(perigeeHigh, perigeeLow, lenAlmPerigeeLow)
	longitude := bitstream.Concat(longitudeHigh, longitudeLow, lenAlmLongitudeLow)

	word := Type7{
		IssueOfData:      uint(issueOfData),
		WeekNumber:       uint(weekNumber),
		ReferenceTime:    uint(referenceTime),
		Svid:             uint(svid),
		DeltaRootA:       int(deltaRootA),
		Eccentricity:     uint(eccentricity),
		Perigee:          int(perigee),
		DeltaInclination: int(deltaInclination),
		Longitude:        int(longitude),
		AscensionRate:    int(ascensionRate),
		MeanAnomaly:      int(meanAnomaly),
	}

	return &word
}

// String returns a readable version of a word type 7.
func (word *Type7) String() string {
	return fmt.Sprintf("almanac (SVID1 1/2): IODa %d, WNa %d, t0a %d, svid %d, delta root A %d, e %d, perigee %d, delta i %d, omega0 %d, omega-dot %d, M0 %d",
		word.IssueOfData, word.WeekNumber, word.ReferenceTime, word.Svid,
		word.DeltaRootA, word.Eccentricity, word.Perigee,
		word.DeltaInclination, word.Longitude, word.AscensionRate,
		word.MeanAnomaly)
}
