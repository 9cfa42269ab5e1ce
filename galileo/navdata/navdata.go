// The navdata package accumulates decoded I/NAV words into complete
// navigation records.  The broadcast spreads one ephemeris across four
// word types, with the group delays and health flags in a fifth, so the
// decoder collects the pieces per satellite and only emits a record once
// every required field has arrived.  The one-shot header values - the
// ionospheric model and the GST-UTC and GST-GPS conversions - are latched
// the first time they are seen and emitted once, ahead of the first
// record.
package navdata

import (
	"fmt"

	"github.com/goblimey/go-galileo/galileo/utils"
	"github.com/goblimey/go-galileo/galileo/words"
)

// The parts of a navigation record, used as presence flags.  Each word
// type fills in its whole group of fields at once, so completeness is
// tracked per part.  (The original implementation marked each field
// missing with a magic double value; explicit flags avoid a legal value
// aliasing the sentinel.)
const (
	partEphemeris1 = 1 << iota // From word type 1.
	partEphemeris2             // From word type 2.
	partEphemeris3             // From word type 3.
	partEphemeris4             // From word type 4.
	partIonoHealth             // From word type 5.
)

// partsComplete is the value of parts when every group has arrived.
const partsComplete = partEphemeris1 | partEphemeris2 | partEphemeris3 |
	partEphemeris4 | partIonoHealth

// satellite is the accumulator for one satellite.
type satellite struct {
	record Record

	// parts records which word types have contributed since the last
	// reset.
	parts uint

	// prevReferenceTime is the t0e of the last record emitted for this
	// satellite.  A completed set with the same t0e is a repeat of the
	// same ephemeris and is suppressed.
	prevReferenceTime float64

	// emitted says whether prevReferenceTime is meaningful.
	emitted bool

	// The per-signal almanac accumulators.  The E1-B and E5b streams
	// each carry their own almanac cycle.
	almanacE1  Almanac
	almanacE5b Almanac
}

// Record is a complete navigation record for one satellite - the
// ephemeris, clock correction, accuracy, health and group delay values in
// engineering units.
type Record struct {
	// SvID is the satellite, 1-36.
	SvID uint

	// Epoch is t0c, the clock data reference time, in seconds of week.
	Epoch uint

	// ClockBias, ClockDrift and ClockDriftRate are af0, af1 and af2.
	ClockBias      float64
	ClockDrift     float64
	ClockDriftRate float64

	// IssueOfData is the IODnav of the last ephemeris word merged.
	IssueOfData uint

	// The Keplerian elements and perturbation terms.
	Crs               float64
	DeltaN            float64
	MeanAnomaly       float64
	Cuc               float64
	Eccentricity      float64
	Cus               float64
	RootSemiMajorAxis float64
	ReferenceTime     float64 // t0e, seconds of week.
	Cic               float64
	Omega0            float64
	Cis               float64
	InclinationAngle  float64
	Crc               float64
	Perigee           float64
	OmegaDot          float64
	InclinationRate   float64

	// WeekNumber is the Galileo week number from word type 5.
	WeekNumber uint

	// SISA is the signal-in-space accuracy index.
	SISA float64

	// HealthValidity packs the signal health and data validity flags.
	HealthValidity float64

	// BGD1 and BGD2 are the E1-E5a and E1-E5b broadcast group delays,
	// in seconds.
	BGD1 float64
	BGD2 float64
}

// String returns the record in the row layout used for conversion to a
// RINEX navigation file: the satellite and epoch, then rows of values in
// scientific notation.
func (record *Record) String() string {
	display := fmt.Sprintf("\nE%d\t%d %d %d\t%.12e\t%.12e\t%.12e\n",
		record.SvID, record.Epoch,
		(record.Epoch%86400)/3600, (record.Epoch%3600)/60,
		record.ClockBias, record.ClockDrift, record.ClockDriftRate)

	display += fmt.Sprintf("  \t%.12e\t%.12e\t%.12e\t%.12e\n",
		float64(record.IssueOfData), record.Crs, record.DeltaN,
		record.MeanAnomaly)

	display += fmt.Sprintf("  \t%.12e\t%.12e\t%.12e\t%.12e\n",
		record.Cuc, record.Eccentricity, record.Cus,
		record.RootSemiMajorAxis)

	display += fmt.Sprintf("  \t%.12e\t%.12e\t%.12e\t%.12e\n",
		record.ReferenceTime, record.Cic, record.Omega0, record.Cis)

	display += fmt.Sprintf("  \t%.12e\t%.12e\t%.12e\t%.12e\n",
		record.InclinationAngle, record.Crc, record.Perigee,
		record.OmegaDot)

	display += fmt.Sprintf("  \t%.12e\t\t  \t%d\t%.12e\n",
		record.InclinationRate, record.WeekNumber, float64(0))

	display += fmt.Sprintf("  \t%.12e\t%.12e\t%.12e\t%.12e\n",
		record.SISA, record.HealthValidity, record.BGD1, record.BGD2)

	return display
}

// Header is the process-wide header block: the ionospheric model and the
// two time-system conversions.  Each group is latched the first time it
// is seen.
type Header struct {
	// Ai0, Ai1 and Ai2 are the NeQuick ionospheric model parameters.
	Ai0 float64
	Ai1 float64
	Ai2 float64

	// A0, A1, T0t and WN0t convert Galileo system time to UTC.
	A0   float64
	A1   float64
	T0t  uint
	WN0t uint

	// A0G, A1G, T0G and WN0G convert Galileo system time to GPS time.
	A0G  float64
	A1G  float64
	T0G  uint
	WN0G uint
}

// String returns the header block in readable form.
func (header *Header) String() string {
	display := "\n\n\t\tHEADER\n"
	display += fmt.Sprintf("GAL\t%.12e\t%.12e\t%.12e\tIONOSPHERIC CORR\n",
		header.Ai0, header.Ai1, header.Ai2)
	display += fmt.Sprintf("GAUT\t%.12e\t%.12e\t%d\t%d\tTIME SYSTEM CORR\n",
		header.A0, header.A1, header.T0t, header.WN0t)
	display += fmt.Sprintf("GPGA\t%.12e\t%.12e\t%d\t%d\tTIME SYSTEM CORR\n\n",
		header.A0G, header.A1G, header.T0G, header.WN0G)
	return display
}

// Store holds the decoder's accumulated state: one accumulator per
// satellite and the process-wide header block.  A Store belongs to one
// decoding run; a batch over several files uses one Store per file.
type Store struct {
	satellites [utils.MaxSatellites]satellite

	header Header

	// The one-shot latches for the header groups.
	haveIono bool
	haveUTC  bool
	haveGPS  bool

	// headerWritten gates emission of the header: it goes out once, as
	// soon as all three groups are latched, before the first record.
	headerWritten bool
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Add merges a decoded word into the accumulator for the given satellite.
// It returns the header block if this word completed it, and a navigation
// record if this word completed one.  Either or both are nil on most
// calls.  The sigID says which signal carried the word - the almanac
// accumulates separately per signal.
func (store *Store) Add(svID uint, sigID byte, word words.Word) (*Header, *Record) {

	if svID < 1 || svID > utils.MaxSatellites {
		return nil, nil
	}

	sv := &store.satellites[svID-1]

	switch w := word.(type) {

	case *words.Type1:
		sv.record.SvID = svID
		sv.record.IssueOfData = w.IssueOfData
		sv.record.ReferenceTime = w.ReferenceTime
		sv.record.MeanAnomaly = w.MeanAnomaly
		sv.record.Eccentricity = w.Eccentricity
		sv.record.RootSemiMajorAxis = w.RootSemiMajorAxis
		sv.parts |= partEphemeris1

	case *words.Type2:
		sv.record.SvID = svID
		sv.record.IssueOfData = w.IssueOfData
		sv.record.Omega0 = w.Longitude
		sv.record.InclinationAngle = w.InclinationAngle
		sv.record.Perigee = w.Perigee
		sv.record.InclinationRate = w.InclinationRate
		sv.parts |= partEphemeris2

	case *words.Type3:
		sv.record.SvID = svID
		sv.record.IssueOfData = w.IssueOfData
		sv.record.OmegaDot = w.AscensionRate
		sv.record.DeltaN = w.MeanMotionDifference
		sv.record.Cuc = w.Cuc
		sv.record.Cus = w.Cus
		sv.record.Crc = w.Crc
		sv.record.Crs = w.Crs
		sv.record.SISA = float64(w.SISA)
		sv.parts |= partEphemeris3

	case *words.Type4:
		sv.record.SvID = svID
		sv.record.IssueOfData = w.IssueOfData
		sv.record.Cic = w.Cic
		sv.record.Cis = w.Cis
		sv.record.Epoch = uint(w.ClockTime)
		sv.record.ClockBias = w.ClockBias
		sv.record.ClockDrift = w.ClockDrift
		sv.record.ClockDriftRate = w.ClockDriftRate
		sv.parts |= partEphemeris4

	case *words.Type5:
		sv.record.SvID = svID
		sv.record.BGD1 = w.BGD1
		sv.record.BGD2 = w.BGD2
		sv.record.HealthValidity = float64(w.HealthValidity)
		sv.record.WeekNumber = w.WeekNumber
		sv.parts |= partIonoHealth

		if !store.haveIono {
			store.header.Ai0 = w.Ai0
			store.header.Ai1 = w.Ai1
			store.header.Ai2 = w.Ai2
			store.haveIono = true
		}

	case *words.Type6:
		if !store.haveUTC {
			store.header.A0 = w.A0
			store.header.A1 = w.A1
			store.header.T0t = w.ReferenceTime
			store.header.WN0t = w.ReferenceWeek
			store.haveUTC = true
		}

	case *words.Type7:
		sv.almanac(sigID).addType7(w)

	case *words.Type8:
		sv.almanac(sigID).addType8(w)

	case *words.Type9:
		sv.almanac(sigID).addType9(w)

	case *words.Type10:
		if !store.haveGPS {
			store.header.A0G = w.A0G
			store.header.A1G = w.A1G
			store.header.T0G = w.ReferenceTime
			store.header.WN0G = w.ReferenceWeek
			store.haveGPS = true
		}
		sv.almanac(sigID).addType10(w)
	}

	return store.checkComplete(sv)
}

// almanac selects the per-signal almanac accumulator.  Anything other
// than E5b accumulates with E1 - the receiver only labels Galileo I/NAV
// subframes with those two signals.
func (sv *satellite) almanac(sigID byte) *Almanac {
	if sigID == utils.SignalE5b {
		return &sv.almanacE5b
	}
	return &sv.almanacE1
}

// checkComplete emits the header and the satellite's record if they have
// become complete, and resets the satellite's accumulator when its record
// is complete whether or not the record was a duplicate.
func (store *Store) checkComplete(sv *satellite) (*Header, *Record) {

	var header *Header
	if store.haveIono && store.haveUTC && store.haveGPS && !store.headerWritten {
		headerCopy := store.header
		header = &headerCopy
		store.headerWritten = true
	}

	if sv.parts != partsComplete {
		return header, nil
	}

	// A record only goes out once the header groups have all been seen,
	// so that the header always precedes the first record.  Until then
	// the completed set is kept - a later word will get it emitted.
	if !store.headerWritten {
		return header, nil
	}

	var record *Record
	if !sv.emitted || sv.record.ReferenceTime != sv.prevReferenceTime {
		recordCopy := sv.record
		record = &recordCopy
		sv.prevReferenceTime = sv.record.ReferenceTime
		sv.emitted = true
	}

	sv.record = Record{}
	sv.parts = 0

	return header, record
}
