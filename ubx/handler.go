package ubx

import (
	"github.com/goblimey/go-galileo/galileo/utils"
	"github.com/goblimey/go-galileo/ubx/pushback"
)

// Handler fetches UBX frames from a byte stream.  The stream is scanned
// byte by byte for the two-byte preamble; anything between frames (NMEA
// sentences, other binary protocols, line noise) is simply skipped.  A
// frame only counts once its checksum has been verified, so a preamble
// found in the middle of other binary data does no harm - the bytes that
// follow it fail the checksum and scanning picks up where it left off.
type Handler struct {
	// ChecksumFailures counts the frames dropped because the stored
	// checksum did not match the computed one.
	ChecksumFailures uint
}

// New creates a Handler.
func New() *Handler {
	return &Handler{}
}

// FetchNextFrame gets the next UBX frame from the given byte channel.  It
// hunts for the preamble, reads the header, payload and checksum, and
// returns the frame if the checksum matches.  On a mismatch the bytes
// following the preamble are pushed back, so the scan resumes at the byte
// after the failed preamble - the length field of a corrupt frame cannot
// be trusted to advance the scan.  When the channel is exhausted, even
// part way through a frame, the error from the channel is returned and
// the caller should treat it as a clean end of input.
func (handler *Handler) FetchNextFrame(pc *pushback.ByteChannel) (*Frame, error) {

	for {
		// Phase 1: hunt for the preamble.
		b, err := pc.GetNextByte()
		if err != nil {
			return nil, err
		}
		if b != utils.SyncByte1 {
			continue
		}

		b, err = pc.GetNextByte()
		if err != nil {
			return nil, err
		}
		if b != utils.SyncByte2 {
			// A lone 0xb5.  Resume the hunt with the byte just read -
			// it could itself be the start of a preamble.
			pc.PushBack(b)
			continue
		}

		// Phase 2: the preamble has been seen.  Read the class, ID and
		// length, then the payload and checksum.  Keep hold of everything
		// read so that it can be pushed back if the checksum fails.
		body := make([]byte, 0, HeaderLength)
		for i := 0; i < HeaderLength; i++ {
			b, err = pc.GetNextByte()
			if err != nil {
				return nil, err
			}
			body = append(body, b)
		}

		payloadLength := int(body[2]) | int(body[3])<<8

		for i := 0; i < payloadLength+ChecksumLength; i++ {
			b, err = pc.GetNextByte()
			if err != nil {
				return nil, err
			}
			body = append(body, b)
		}

		// Phase 3: verify the checksum.
		payload := body[HeaderLength : HeaderLength+payloadLength]
		ckA, ckB := Checksum(body[0], body[1], payload)
		if ckA != body[len(body)-2] || ckB != body[len(body)-1] {
			// The frame is corrupt.  Resume scanning at the byte after
			// the preamble.
			handler.ChecksumFailures++
			pc.PushBackAll(body)
			continue
		}

		frame := Frame{
			Class:   body[0],
			ID:      body[1],
			Payload: payload,
		}

		return &frame, nil
	}
}
