package words

import (
	"fmt"

	"github.com/goblimey/go-galileo/galileo/bitstream"
	"github.com/goblimey/go-galileo/galileo/page"
	"github.com/goblimey/go-galileo/galileo/utils"
)

// This file handles word type 6 - GST-UTC conversion parameters.

// Lengths of the fields and field parts in the bit stream.
const lenA0High = 24
const lenA0Low = 8
const lenA1 = 24
const lenLeapCount = 8
const lenUTCTime = 8
const lenUTCWeek = 8
const lenLeapWeek = 8
const lenDayNumber = 3
const lenTow = 20

// Type6 is word type 6: the polynomial converting Galileo system time to
// UTC, and the leap second schedule.
type Type6 struct {
	// A0 is the constant term of the polynomial, in seconds.
	A0 float64

	// A1 is the first-order term, in seconds per second.
	A1 float64

	// LeapCountBefore is delta-tLS, the leap second count before the
	// adjustment.
	LeapCountBefore int

	// ReferenceTime is t0t, the UTC data reference time of week, in
	// seconds.
	ReferenceTime uint

	// ReferenceWeek is WN0t, the UTC data reference week number.
	ReferenceWeek uint

	// LeapWeek is WNlsf, the week number of the leap second adjustment.
	LeapWeek uint

	// DayNumber is DN, the day at the end of which the adjustment takes
	// effect - 1 (Sunday) to 7 (Saturday).
	DayNumber uint

	// LeapCountAfter is delta-tLSF, the leap second count after the
	// adjustment.
	LeapCountAfter int

	// TimeOfWeek is the GST time of week, in seconds.
	TimeOfWeek uint
}

// getType6 decodes a word type 6 page.
func getType6(p *page.Page) *Type6 {

	word1 := p.Word1()
	a0High := word1.Int(lenA0High)

	word2 := p.Word2()
	a0Low := word2.Uint(lenA0Low)
	a1 := word2.Int(lenA1)

	word3 := p.Word3()
	leapCountBefore := word3.Int(lenLeapCount)
	referenceTime := word3.Uint(lenUTCTime)
	referenceWeek := word3.Uint(lenUTCWeek)
	leapWeek := word3.Uint(lenLeapWeek)

	midData := p.MidData()
	dayNumber := midData.Uint(lenDayNumber)
	leapCountAfter := midData.Int(lenLeapCount)
	tow := midData.Uint(lenTow)

	a0 := bitstream.Concat(a0High, a0Low, lenA0Low)

	word := Type6{
		A0:              float64(a0) * utils.Scale(-30),
		A1:              float64(a1) * utils.Scale(-50),
		LeapCountBefore: int(leapCountBefore),
		ReferenceTime:   uint(referenceTime) * 3600,
		ReferenceWeek:   uint(referenceWeek),
		LeapWeek:        uint(leapWeek),
		DayNumber:       uint(dayNumber),
		LeapCountAfter:  int(leapCountAfter),
		TimeOfWeek:      uint(tow),
	}

	return &word
}

// String returns a readable version of a word type 6.
func (word *Type6) String() string {
	return fmt.Sprintf("GST-UTC: A0 %e, A1 %e, dtLS %d, t0t %d, WN0t %d, WNlsf %d, DN %d, dtLSF %d, TOW %d",
		word.A0, word.A1, word.LeapCountBefore, word.ReferenceTime,
		word.ReferenceWeek, word.LeapWeek, word.DayNumber,
		word.LeapCountAfter, word.TimeOfWeek)
}
