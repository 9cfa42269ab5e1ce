package ubx

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// This file handles the payload of a UBX-NAV-SIG frame.  The frame lists
// the signals the receiver is tracking, one 16-byte block per signal.  It
// carries no navigation data - the decoder parses it only to count the
// signals seen per constellation.

// lenNavSigHeader is the length of the fixed part of the payload.
const lenNavSigHeader = 8

// lenSignalBlock is the length of one per-signal block.
const lenSignalBlock = 16

// NavSig is the broken-out payload of a UBX-NAV-SIG frame.
type NavSig struct {
	// ITOW is the GPS time of week of the navigation epoch, in
	// milliseconds.
	ITOW uint32

	// Version is the message version.
	Version byte

	// Signals holds one entry per tracked signal.
	Signals []SignalInfo
}

// SignalInfo is one per-signal block of a UBX-NAV-SIG payload.
type SignalInfo struct {
	GnssID     byte
	SvID       byte
	SigID      byte
	FreqID     byte
	PrRes      int16 // Pseudorange residual in 0.1 m units.
	Cno        byte  // Carrier-to-noise ratio in dB-Hz.
	QualityInd byte
	CorrSource byte
	IonoModel  byte
	SigFlags   uint16
}

// GetNavSig breaks out a UBX-NAV-SIG payload.  The payload is an 8-byte
// header giving the number of signals, followed by one 16-byte block per
// signal.
func GetNavSig(payload []byte) (*NavSig, error) {

	if len(payload) < lenNavSigHeader {
		em := fmt.Sprintf("overrun - NAV-SIG payload is %d bytes, want at least %d",
			len(payload), lenNavSigHeader)
		return nil, errors.New(em)
	}

	numSigs := int(payload[5])

	wantLength := lenNavSigHeader + numSigs*lenSignalBlock
	if len(payload) < wantLength {
		em := fmt.Sprintf("overrun - NAV-SIG payload is %d bytes, want %d for %d signals",
			len(payload), wantLength, numSigs)
		return nil, errors.New(em)
	}

	navSig := NavSig{
		ITOW:    binary.LittleEndian.Uint32(payload[0:4]),
		Version: payload[4],
		Signals: make([]SignalInfo, 0, numSigs),
	}

	for i := 0; i < numSigs; i++ {
		block := payload[lenNavSigHeader+i*lenSignalBlock:]
		signal := SignalInfo{
			GnssID:     block[0],
			SvID:       block[1],
			SigID:      block[2],
			FreqID:     block[3],
			PrRes:      int16(binary.LittleEndian.Uint16(block[4:6])),
			Cno:        block[6],
			QualityInd: block[7],
			CorrSource: block[8],
			IonoModel:  block[9],
			SigFlags:   binary.LittleEndian.Uint16(block[10:12]),
		}
		navSig.Signals = append(navSig.Signals, signal)
	}

	return &navSig, nil
}
