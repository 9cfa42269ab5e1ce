// The ubx package reads u-blox UBX message frames from a byte stream.
// A UBX frame is a two-byte preamble (0xb5 0x62), a one-byte message class,
// a one-byte message ID, a two-byte little-endian payload length, the
// payload and a two-byte checksum.  The checksum is an eight-bit Fletcher
// sum computed over the class, ID, length and payload bytes.
//
// The stream from a u-blox receiver contains many kinds of frame.  This
// decoder consumes just two: UBX-RXM-SFRBX (class 0x02, ID 0x13), which
// carries the raw broadcast navigation words, and UBX-NAV-SIG (class 0x01,
// ID 0x43), which describes the signals being tracked and is used only for
// counting.
package ubx

import (
	"fmt"

	"github.com/goblimey/go-galileo/galileo/utils"
)

// MessageType identifies the frames that the decoder handles.
type MessageType int

const (
	// TypeUnknown is any frame other than the two below.
	TypeUnknown MessageType = iota
	// TypeSFRBX is a UBX-RXM-SFRBX subframe-broadcast frame.
	TypeSFRBX
	// TypeNavSig is a UBX-NAV-SIG signal-information frame.
	TypeNavSig
)

// HeaderLength is the length of the class, ID and length fields.
const HeaderLength = 4

// ChecksumLength is the length of the checksum at the end of a frame.
const ChecksumLength = 2

// Frame is one UBX message frame, stripped of the preamble and checksum.
type Frame struct {
	// Class is the message class byte.
	Class byte

	// ID is the message ID byte.
	ID byte

	// Payload is the message payload.  Its length is given by the
	// 16-bit length field of the frame.
	Payload []byte
}

// Type classifies the frame by its class and ID.
func (frame *Frame) Type() MessageType {
	switch {
	case frame.Class == utils.ClassRXM && frame.ID == utils.IDSFRBX:
		return TypeSFRBX
	case frame.Class == utils.ClassNAV && frame.ID == utils.IDSig:
		return TypeNavSig
	default:
		return TypeUnknown
	}
}

// String returns a short readable description of the frame.
func (frame *Frame) String() string {
	var name string
	switch frame.Type() {
	case TypeSFRBX:
		name = "UBX-RXM-SFRBX"
	case TypeNavSig:
		name = "UBX-NAV-SIG"
	default:
		name = "unknown"
	}
	return fmt.Sprintf("%s class 0x%02x ID 0x%02x length %d",
		name, frame.Class, frame.ID, len(frame.Payload))
}

// Checksum computes the two eight-bit Fletcher checksum bytes over the
// class, ID, length and payload of a frame.  The bytes are summed unsigned.
func Checksum(class, id byte, payload []byte) (byte, byte) {
	var ckA, ckB byte

	add := func(b byte) {
		ckA += b
		ckB += ckA
	}

	add(class)
	add(id)
	// The length field, little-endian.
	add(byte(len(payload)))
	add(byte(len(payload) >> 8))
	for _, b := range payload {
		add(b)
	}

	return ckA, ckB
}
