package words

import (
	"fmt"

	"github.com/goblimey/go-galileo/galileo/page"
)

// This file handles word type 0 - the I/NAV spare word.  Apart from the
// padding it carries the week number and time of week.

// Lengths of the fields and field parts in the bit stream.
const lenTimeFlag = 2
const lenSpareHigh = 22
const lenSpareMid = 32
const lenSpareLow = 10
const lenSpare2High = 22
const lenSpare2Low = 2

// Type0 is word type 0: spare padding plus WN and TOW.
type Type0 struct {
	// Time is the 2-bit time flag - 2 means the WN and TOW fields are
	// valid.
	Time uint

	// WeekNumber is the Galileo week number.
	WeekNumber uint

	// TimeOfWeek is the GST time of week, in seconds.
	TimeOfWeek uint
}

// getType0 decodes a word type 0 page.
func getType0(p *page.Page) *Type0 {

	word1 := p.Word1()
	timeFlag := word1.Uint(lenTimeFlag)
	word1.Skip(lenSpareHigh)

	word2 := p.Word2()
	word2.Skip(lenSpareMid)

	word3 := p.Word3()
	word3.Skip(lenSpareLow)
	word3.Skip(lenSpare2High)

	midData := p.MidData()
	midData.Skip(lenSpare2Low)
	weekNumber := midData.Uint(lenWeekNumber)
	tow := midData.Uint(lenTow)

	word := Type0{
		Time:       uint(timeFlag),
		WeekNumber: uint(weekNumber),
		TimeOfWeek: uint(tow),
	}

	return &word
}

// String returns a readable version of a word type 0.
func (word *Type0) String() string {
	return fmt.Sprintf("spare: time %d, WN %d, TOW %d",
		word.Time, word.WeekNumber, word.TimeOfWeek)
}
