package ubx

import (
	"testing"

	"github.com/goblimey/go-galileo/ubx/pushback"
)

// newByteChannel loads the given bytes into a closed pushback channel, so
// a test can scan them as a finite stream.
func newByteChannel(data []byte) *pushback.ByteChannel {
	ch := make(chan byte, len(data))
	for _, b := range data {
		ch <- b
	}
	close(ch)
	return pushback.New(ch)
}

// A valid UBX-NAV-SIG frame with an empty payload.  The checksum bytes
// are computed by hand - see TestChecksum.
var validNavSigFrame = []byte{0xb5, 0x62, 0x01, 0x43, 0x00, 0x00, 0x44, 0xcd}

// TestFetchNextFrameWithLeadingGarbage checks that the scanner skips
// leading non-UBX data and returns the frame that follows, and nothing
// else.
func TestFetchNextFrameWithLeadingGarbage(t *testing.T) {

	data := append([]byte{0xff, 0xff}, validNavSigFrame...)

	handler := New()
	pc := newByteChannel(data)

	frame, err := handler.FetchNextFrame(pc)
	if err != nil {
		t.Fatal(err)
	}

	if frame.Class != 0x01 || frame.ID != 0x43 {
		t.Errorf("want class 0x01 ID 0x43, got 0x%02x 0x%02x",
			frame.Class, frame.ID)
	}
	if len(frame.Payload) != 0 {
		t.Errorf("want empty payload, got %d bytes", len(frame.Payload))
	}
	if frame.Type() != TypeNavSig {
		t.Errorf("want a NAV-SIG frame, got %v", frame.Type())
	}

	// The input is exhausted - no ghost frame.
	frame, err = handler.FetchNextFrame(pc)
	if err == nil {
		t.Errorf("expected an error, got frame %v", frame)
	}
	if handler.ChecksumFailures != 0 {
		t.Errorf("want 0 checksum failures, got %d", handler.ChecksumFailures)
	}
}

// TestFetchNextFrameWithBadChecksum checks that a frame with a corrupt
// checksum is dropped and counted.
func TestFetchNextFrameWithBadChecksum(t *testing.T) {

	data := make([]byte, len(validNavSigFrame))
	copy(data, validNavSigFrame)
	data[len(data)-1] = 0x00

	handler := New()
	pc := newByteChannel(data)

	frame, err := handler.FetchNextFrame(pc)
	if err == nil {
		t.Errorf("expected an error, got frame %v", frame)
	}

	if handler.ChecksumFailures != 1 {
		t.Errorf("want 1 checksum failure, got %d", handler.ChecksumFailures)
	}
}

// TestFetchNextFrameResync checks that after a checksum failure the scan
// resumes at the byte after the failed preamble and still finds a valid
// frame later in the stream.
func TestFetchNextFrameResync(t *testing.T) {

	corrupt := make([]byte, len(validNavSigFrame))
	copy(corrupt, validNavSigFrame)
	corrupt[len(corrupt)-1] = 0x00

	data := append(corrupt, validNavSigFrame...)

	handler := New()
	pc := newByteChannel(data)

	frame, err := handler.FetchNextFrame(pc)
	if err != nil {
		t.Fatal(err)
	}

	if frame.Type() != TypeNavSig {
		t.Errorf("want a NAV-SIG frame, got %v", frame.Type())
	}

	if handler.ChecksumFailures != 1 {
		t.Errorf("want 1 checksum failure, got %d", handler.ChecksumFailures)
	}
}

// TestFetchNextFrameWithRepeatedSyncByte checks that a 0xb5 followed by
// another 0xb5 0x62 doesn't lose the real preamble.
func TestFetchNextFrameWithRepeatedSyncByte(t *testing.T) {

	data := append([]byte{0xb5}, validNavSigFrame...)

	handler := New()
	pc := newByteChannel(data)

	frame, err := handler.FetchNextFrame(pc)
	if err != nil {
		t.Fatal(err)
	}

	if frame.Type() != TypeNavSig {
		t.Errorf("want a NAV-SIG frame, got %v", frame.Type())
	}
}

// TestFetchNextFrameTruncated checks that a stream that ends part way
// through a frame gives a clean end of input, not a frame.
func TestFetchNextFrameTruncated(t *testing.T) {

	var testData = []struct {
		description string
		data        []byte
	}{
		{"mid header", []byte{0xb5, 0x62, 0x02}},
		{"mid payload", []byte{0xb5, 0x62, 0x02, 0x13, 0x05, 0x00, 0x01, 0x02}},
		{"mid checksum", []byte{0xb5, 0x62, 0x01, 0x43, 0x00, 0x00, 0x44}},
	}

	for _, td := range testData {
		handler := New()
		pc := newByteChannel(td.data)

		frame, err := handler.FetchNextFrame(pc)
		if err == nil {
			t.Errorf("%s: expected an error, got frame %v", td.description, frame)
		}
		if err != nil && err.Error() != "done" {
			t.Errorf("%s: want done, got %v", td.description, err)
		}
	}
}
