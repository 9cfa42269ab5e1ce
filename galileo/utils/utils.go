// The utils package contains general-purpose constants and functions for
// the Galileo decoder.
package utils

import (
	"log"
	"math"

	"github.com/goblimey/go-tools/dailylogger"
)

// SyncByte1 is the first byte of the UBX frame preamble.
const SyncByte1 byte = 0xb5

// SyncByte2 is the second byte of the UBX frame preamble.
const SyncByte2 byte = 0x62

// The UBX message classes and IDs that the decoder consumes.  Anything
// else is skipped.
const (
	ClassRXM byte = 0x02
	IDSFRBX  byte = 0x13
	ClassNAV byte = 0x01
	IDSig    byte = 0x43
)

// GNSS identifiers carried in the SFRBX payload header.
const (
	GnssGPS     = 0
	GnssSBAS    = 1
	GnssGalileo = 2
	GnssBeidou  = 3
	GnssQZSS    = 5
	GnssGlonass = 6
)

// Signal identifiers carried in the SFRBX payload header for Galileo.
// The E1-B and E5b-I signals both broadcast the I/NAV message.
const (
	SignalE1  = 1
	SignalE5b = 5
)

// MaxSatellites is the number of satellites in the Galileo constellation.
// Satellite IDs run from 1 to 36.
const MaxSatellites = 36

// Word counts in an SFRBX payload carrying a Galileo I/NAV page -
// 8 on E1-B, 9 on E5b.
const (
	NumWordsE1  = 8
	NumWordsE5b = 9
)

// MaxPayloadLength is the largest payload a UBX frame can carry - the
// length field is 16 bits.
const MaxPayloadLength = 0xffff

// The masks used to dig the page fields out of the middle pair of data
// words (words 4 and 5 of the SFRBX payload, concatenated into 64 bits).
//
// MaskUtil selects the six tail bits from word 4 and the even/odd and page
// type bits of the odd half-page from word 5.  Shifting the masked value up
// by UtilShiftTail and UtilShiftFlags and merging aligns them at the top of
// the register as tail(6) | even_odd(1) | page_type(1).
//
// MaskDataHigh and MaskDataLow select the 18 data bits at the top of word 4
// and the 16 data bits in the middle of word 5.  Shifting the low part up
// by 16 makes the 34 bits contiguous at the top of the register.
const (
	MaskUtil     uint64 = 0x00003F00C0000000
	MaskDataHigh uint64 = 0xFFFFC00000000000
	MaskDataLow  uint64 = 0x000000003FFFC000

	UtilShiftTail  = 18
	UtilShiftFlags = 26
	DataShiftLow   = 16
)

// MidDataBits is the number of meaningful bits in the data field projected
// from the middle pair of words.
const MidDataBits = 34

// Pi is the semicircle-to-radian conversion factor.  The broadcast encodes
// angles in semicircles; multiplying the scaled value by Pi gives radians.
const Pi = math.Pi

// Scale returns two to the power n.  The broadcast fields are fixed-point
// integers and each carries a power-of-two scale factor, mostly negative.
func Scale(n int) float64 {
	return math.Pow(2, float64(n))
}

// EqualWithin return true if the given float64 values are equal
// within (precision) decimal places after rounding.  (This can fail if
// either of the numbers or the difference between them are too large.)
func EqualWithin(precision uint, f1, f2 float64) bool {

	var scaleFactor float64 = math.Pow(10, float64(precision))

	f1 = math.Round(f1 * scaleFactor)
	f2 = math.Round(f2 * scaleFactor)

	return math.Abs(f1-f2) <= 0.1
}

// GetDailyLogger gets a daily log file which can be written to as a logger
// (each line decorated with filename, date, time, etc).
func GetDailyLogger(name string) *log.Logger {
	dailyLog := dailylogger.New("logs", name+".", ".log")
	logFlags := log.LstdFlags | log.Lshortfile | log.Lmicroseconds
	return log.New(dailyLog, name, logFlags)
}
