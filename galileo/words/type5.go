package words

import (
	"fmt"

	"github.com/goblimey/go-galileo/galileo/bitstream"
	"github.com/goblimey/go-galileo/galileo/page"
	"github.com/goblimey/go-galileo/galileo/utils"
)

// This file handles word type 5 - ionospheric correction, broadcast group
// delays, signal health, data validity and GST.

// Lengths of the fields and field parts in the bit stream.
const lenIono0 = 11
const lenIono1 = 11
const lenIono2High = 2
const lenIono2Low = 12
const lenRegionFlag = 1
const lenBGD = 10
const lenBGDHigh = 5
const lenBGDLow = 5
const lenHealth = 2
const lenValidity = 1
const lenWeekNumber = 12
const lenTowHigh = 9
const lenTowLow = 11
const lenSpare5 = 11

// Type5 is word type 5: the ionospheric model, the broadcast group
// delays, the signal health flags and the Galileo system time.
type Type5 struct {
	// Ai0, Ai1 and Ai2 are the effective ionisation level parameters of
	// the NeQuick model.
	Ai0 float64
	Ai1 float64
	Ai2 float64

	// Region1 to Region5 are the ionospheric disturbance flags.
	Region1 uint
	Region2 uint
	Region3 uint
	Region4 uint
	Region5 uint

	// BGD1 is the E1-E5a broadcast group delay, in seconds.
	BGD1 float64

	// BGD2 is the E1-E5b broadcast group delay, in seconds.
	BGD2 float64

	// E5bHS and E1BHS are the signal health statuses.
	E5bHS uint
	E1BHS uint

	// E5bDVS and E1BDVS are the data validity statuses.
	E5bDVS uint
	E1BDVS uint

	// HealthValidity is the health and validity flags packed into a
	// single value for the navigation record: E5bHS, E5bDVS, three zero
	// bits, E1BHS, E1BDVS.
	HealthValidity uint

	// WeekNumber is the Galileo week number.
	WeekNumber uint

	// TimeOfWeek is the GST time of week, in seconds.
	TimeOfWeek uint
}

// getType5 decodes a word type 5 page.
func getType5(p *page.Page) *Type5 {

	word1 := p.Word1()
	iono0 := word1.Uint(lenIono0)
	iono1 := word1.Int(lenIono1)
	iono2High := word1.Int(lenIono2High)

	word2 := p.Word2()
	iono2Low := word2.Uint(lenIono2Low)
	region1 := word2.Uint(lenRegionFlag)
	region2 := word2.Uint(lenRegionFlag)
	region3 := word2.Uint(lenRegionFlag)
	region4 := word2.Uint(lenRegionFlag)
	region5 := word2.Uint(lenRegionFlag)
	bgd1 := word2.Int(lenBGD)
	bgd2High := word2.Int(lenBGDHigh)

	word3 := p.Word3()
	bgd2Low := word3.Uint(lenBGDLow)
	e5bHS := word3.Uint(lenHealth)
	e1bHS := word3.Uint(lenHealth)
	e5bDVS := word3.Uint(lenValidity)
	e1bDVS := word3.Uint(lenValidity)
	weekNumber := word3.Uint(lenWeekNumber)
	towHigh := word3.Uint(lenTowHigh)

	midData := p.MidData()
	towLow := midData.Uint(lenTowLow)
	midData.Skip(lenSpare5)

	iono2 := bitstream.Concat(iono2High, iono2Low, lenIono2Low)
	bgd2 := bitstream.Concat(bgd2High, bgd2Low, lenBGDLow)
	tow := bitstream.ConcatUint(towHigh, towLow, lenTowLow)

	// Pack the health and validity flags: E5bHS, E5bDVS, three zero
	// bits, E1BHS, E1BDVS.
	healthValidity := bitstream.ConcatUint(e5bHS, e5bDVS, lenValidity)
	healthValidity = bitstream.ConcatUint(healthValidity, 0, 3)
	healthValidity = bitstream.ConcatUint(healthValidity, e1bHS, lenHealth)
	healthValidity = bitstream.ConcatUint(healthValidity, e1bDVS, lenValidity)

	word := Type5{
		Ai0:            float64(iono0) * utils.Scale(-2),
		Ai1:            float64(iono1) * utils.Scale(-8),
		Ai2:            float64(iono2) * utils.Scale(-15),
		Region1:        uint(region1),
		Region2:        uint(region2),
		Region3:        uint(region3),
		Region4:        uint(region4),
		Region5:        uint(region5),
		BGD1:           float64(bgd1) * utils.Scale(-32),
		BGD2:           float64(bgd2) * utils.Scale(-32),
		E5bHS:          uint(e5bHS),
		E1BHS:          uint(e1bHS),
		E5bDVS:         uint(e5bDVS),
		E1BDVS:         uint(e1bDVS),
		HealthValidity: uint(healthValidity),
		WeekNumber:     uint(weekNumber),
		TimeOfWeek:     uint(tow),
	}

	return &word
}

// String returns a readable version of a word type 5.
func (word *Type5) String() string {
	return fmt.Sprintf("iono and GST: ai0 %e, ai1 %e, ai2 %e, BGD(E1,E5a) %e, BGD(E1,E5b) %e, health 0x%x, WN %d, TOW %d",
		word.Ai0, word.Ai1, word.Ai2, word.BGD1, word.BGD2,
		word.HealthValidity, word.WeekNumber, word.TimeOfWeek)
}
