package navdata

import (
	"fmt"

	"github.com/goblimey/go-galileo/galileo/words"
)

// The almanac for three satellites arrives spread across word types 7 to
// 10: word 7 opens the set for the first satellite, words 8 and 9 each
// finish one satellite and start the next, and word 10 finishes the
// third.  Each Galileo signal broadcasts its own almanac cycle, so there
// is one Almanac accumulator per signal per satellite slot.  All values
// are the raw broadcast integers.

// AlmanacSatellite holds the almanac of one of the three satellites in a
// cycle.
type AlmanacSatellite struct {
	Svid             uint
	DeltaRootA       int
	Eccentricity     uint
	Perigee          int
	DeltaInclination int
	Longitude        int
	AscensionRate    int
	MeanAnomaly      int
	ClockBias        int
	ClockDrift       int
	E5bHS            uint
	E1BHS            uint
}

// Almanac accumulates one signal's almanac cycle.
type Almanac struct {
	// IssueOfData is the IODa the cycle was collected under.  When a
	// word arrives with a different IODa the cycle has moved on and the
	// accumulated halves no longer match, so the accumulator is reset
	// before the new word is merged.
	IssueOfData uint

	// WeekNumber and ReferenceTime are WNa and t0a, raw.
	WeekNumber    uint
	ReferenceTime uint

	// Sat1, Sat2 and Sat3 are the three satellites of the cycle.
	Sat1 AlmanacSatellite
	Sat2 AlmanacSatellite
	Sat3 AlmanacSatellite

	started bool
}

// checkIssueOfData resets the accumulator if the given IODa does not
// match the one the cycle was collected under.
func (almanac *Almanac) checkIssueOfData(issueOfData uint) {
	if almanac.started && almanac.IssueOfData != issueOfData {
		*almanac = Almanac{}
	}
	almanac.IssueOfData = issueOfData
	almanac.started = true
}

// addType7 merges the first half of the first satellite's almanac.
func (almanac *Almanac) addType7(word *words.Type7) {
	almanac.checkIssueOfData(word.IssueOfData)

	almanac.WeekNumber = word.WeekNumber
	almanac.ReferenceTime = word.ReferenceTime

	almanac.Sat1.Svid = word.Svid
	almanac.Sat1.DeltaRootA = word.DeltaRootA
	almanac.Sat1.Eccentricity = word.Eccentricity
	almanac.Sat1.Perigee = word.Perigee
	almanac.Sat1.DeltaInclination = word.DeltaInclination
	almanac.Sat1.Longitude = word.Longitude
	almanac.Sat1.AscensionRate = word.AscensionRate
	almanac.Sat1.MeanAnomaly = word.MeanAnomaly
}

// addType8 merges the second half of the first satellite's almanac and
// the first half of the second.
func (almanac *Almanac) addType8(word *words.Type8) {
	almanac.checkIssueOfData(word.IssueOfData)

	almanac.Sat1.ClockBias = word.ClockBias
	almanac.Sat1.ClockDrift = word.ClockDrift
	almanac.Sat1.E5bHS = word.E5bHS
	almanac.Sat1.E1BHS = word.E1BHS

	almanac.Sat2.Svid = word.Svid
	almanac.Sat2.DeltaRootA = word.DeltaRootA
	almanac.Sat2.Eccentricity = word.Eccentricity
	almanac.Sat2.Perigee = word.Perigee
	almanac.Sat2.DeltaInclination = word.DeltaInclination
	almanac.Sat2.Longitude = word.Longitude
	almanac.Sat2.AscensionRate = word.AscensionRate
}

// addType9 merges the second half of the second satellite's almanac and
// the first half of the third.
func (almanac *Almanac) addType9(word *words.Type9) {
	almanac.checkIssueOfData(word.IssueOfData)

	almanac.WeekNumber = word.WeekNumber
	almanac.ReferenceTime = word.ReferenceTime

	almanac.Sat2.MeanAnomaly = word.MeanAnomaly
	almanac.Sat2.ClockBias = word.ClockBias
	almanac.Sat2.ClockDrift = word.ClockDrift
	almanac.Sat2.E5bHS = word.E5bHS
	almanac.Sat2.E1BHS = word.E1BHS

	almanac.Sat3.Svid = word.Svid
	almanac.Sat3.DeltaRootA = word.DeltaRootA
	almanac.Sat3.Eccentricity = word.Eccentricity
	almanac.Sat3.Perigee = word.Perigee
	almanac.Sat3.DeltaInclination = word.DeltaInclination
}

// addType10 merges the rest of the third satellite's almanac.
func (almanac *Almanac) addType10(word *words.Type10) {
	almanac.checkIssueOfData(word.IssueOfData)

	almanac.Sat3.Longitude = word.Longitude
	almanac.Sat3.AscensionRate = word.AscensionRate
	almanac.Sat3.MeanAnomaly = word.MeanAnomaly
	almanac.Sat3.ClockBias = word.ClockBias
	almanac.Sat3.ClockDrift = word.ClockDrift
	almanac.Sat3.E5bHS = word.E5bHS
	almanac.Sat3.E1BHS = word.E1BHS
}

// String returns the almanac cycle in readable form.
func (almanac *Almanac) String() string {
	display := fmt.Sprintf("almanac: IODa %d, WNa %d, t0a %d\n",
		almanac.IssueOfData, almanac.WeekNumber, almanac.ReferenceTime)
	for _, sat := range []*AlmanacSatellite{&almanac.Sat1, &almanac.Sat2, &almanac.Sat3} {
		display += fmt.Sprintf("  svid %d: delta root A %d, e %d, perigee %d, delta i %d, omega0 %d, omega-dot %d, M0 %d, af0 %d, af1 %d, health %d/%d\n",
			sat.Svid, sat.DeltaRootA, sat.Eccentricity, sat.Perigee,
			sat.DeltaInclination, sat.Longitude, sat.AscensionRate,
			sat.MeanAnomaly, sat.ClockBias, sat.ClockDrift,
			sat.E5bHS, sat.E1BHS)
	}
	return display
}

// GetAlmanac returns the almanac accumulated for the given satellite and
// signal so far.
func (store *Store) GetAlmanac(svID uint, sigID byte) *Almanac {
	if svID < 1 || svID > uint(len(store.satellites)) {
		return nil
	}
	return store.satellites[svID-1].almanac(sigID)
}
