package handler

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/goblimey/go-galileo/galileo/navdata"
	"github.com/goblimey/go-galileo/galileo/testdata"
	"github.com/goblimey/go-galileo/galileo/utils"
)

// runHandler feeds the given bytes through a handler and collects the
// output messages.
func runHandler(t *testing.T, data []byte) (*Handler, []Message) {
	t.Helper()

	byteChan := make(chan byte, len(data))
	for _, b := range data {
		byteChan <- b
	}
	close(byteChan)

	messageChan := make(chan Message, 10)

	handler := New(slog.LevelDebug)
	go handler.HandleMessages(byteChan, messageChan)

	messages := make([]Message, 0)
	for message := range messageChan {
		messages = append(messages, message)
	}

	return handler, messages
}

// TestFullRecordAssembly feeds a stream carrying word types 1-6 and 10
// for satellite 11 and checks that exactly one header and one record come
// out, with the scale factors applied.
func TestFullRecordAssembly(t *testing.T) {

	handler, messages := runHandler(t, testdata.CompleteEphemerisStream())

	if len(messages) != 2 {
		t.Fatalf("want 2 messages, got %d", len(messages))
	}

	header := messages[0].Header
	if header == nil {
		t.Fatal("want the header first")
	}

	wantHeader := navdata.Header{
		Ai0: 40 * utils.Scale(-2),
		Ai1: -2 * utils.Scale(-8),
		Ai2: 5 * utils.Scale(-15),
		A0:  100 * utils.Scale(-30),
		A1:  -6 * utils.Scale(-50),
		T0t: 36000, WN0t: 95,
		A0G: -7 * utils.Scale(-35),
		A1G: 8 * utils.Scale(-51),
		T0G: 7200, WN0G: 21,
	}
	if *header != wantHeader {
		t.Errorf("want header %v, got %v", wantHeader, *header)
	}

	record := messages[1].Record
	if record == nil {
		t.Fatal("want a record second")
	}

	wantRecord := navdata.Record{
		SvID:              11,
		Epoch:             46800,
		ClockBias:         -3 * utils.Scale(-34),
		ClockDrift:        4 * utils.Scale(-46),
		ClockDriftRate:    -1 * utils.Scale(-59),
		IssueOfData:       52,
		Crs:               9 * utils.Scale(-5),
		DeltaN:            5 * utils.Scale(-43) * utils.Pi,
		MeanAnomaly:       -1 * utils.Scale(-31) * utils.Pi,
		Cuc:               6 * utils.Scale(-29),
		Eccentricity:      10 * utils.Scale(-33),
		Cus:               7 * utils.Scale(-29),
		RootSemiMajorAxis: 20 * utils.Scale(-19),
		ReferenceTime:     36000,
		Cic:               1 * utils.Scale(-29),
		Omega0:            1 * utils.Scale(-31) * utils.Pi,
		Cis:               2 * utils.Scale(-29),
		InclinationAngle:  -1 * utils.Scale(-31) * utils.Pi,
		Crc:               8 * utils.Scale(-5),
		Perigee:           2 * utils.Scale(-31) * utils.Pi,
		OmegaDot:          -2 * utils.Scale(-43) * utils.Pi,
		InclinationRate:   3 * utils.Scale(-43) * utils.Pi,
		WeekNumber:        1145,
		SISA:              107,
		HealthValidity:    0xc0,
		BGD1:              3 * utils.Scale(-32),
		BGD2:              -4 * utils.Scale(-32),
	}
	if *record != wantRecord {
		t.Errorf("want record %v, got %v", wantRecord, *record)
	}

	if handler.Counts.SFRBXFrames != 7 {
		t.Errorf("want 7 SFRBX frames, got %d", handler.Counts.SFRBXFrames)
	}
	if handler.Counts.AcceptedPages != 7 {
		t.Errorf("want 7 accepted pages, got %d", handler.Counts.AcceptedPages)
	}
	if handler.Counts.BySatellite[10] != 7 {
		t.Errorf("want 7 pages for satellite 11, got %d", handler.Counts.BySatellite[10])
	}

	display := handler.CountDisplay()
	if !strings.Contains(display, "Galileo: 7") {
		t.Errorf("bad count display:\n%s", display)
	}
}

// TestNonGalileoSubframe checks that an SFRBX frame from another
// constellation is counted but produces no output and updates no state.
func TestNonGalileoSubframe(t *testing.T) {

	payload := testdata.Payload(11, 1, 0, 1, nil)
	// Relabel the subframe as GPS.
	payload[0] = utils.GnssGPS

	handler, messages := runHandler(t, testdata.SFRBXFrame(payload))

	if len(messages) != 0 {
		t.Errorf("want no messages, got %d", len(messages))
	}
	if handler.Counts.SFRBXByGnss[utils.GnssGPS] != 1 {
		t.Errorf("want 1 GPS subframe, got %d",
			handler.Counts.SFRBXByGnss[utils.GnssGPS])
	}
	if handler.Counts.AcceptedPages != 0 {
		t.Errorf("want 0 accepted pages, got %d", handler.Counts.AcceptedPages)
	}
	if handler.Counts.RejectedPages != 0 {
		t.Errorf("want 0 rejected pages, got %d", handler.Counts.RejectedPages)
	}
}

// TestAlertPage checks that an alert page is consumed but dropped.
func TestAlertPage(t *testing.T) {

	payload := testdata.Payload(11, 1, 0, 1, nil)
	// Set the page type flag in the first data word.  The word is
	// little-endian, so bit 30 is in the last byte of the four.
	payload[11] |= 0x40

	handler, messages := runHandler(t, testdata.SFRBXFrame(payload))

	if len(messages) != 0 {
		t.Errorf("want no messages, got %d", len(messages))
	}
	if handler.Counts.RejectedPages != 1 {
		t.Errorf("want 1 rejected page, got %d", handler.Counts.RejectedPages)
	}
}

// TestChecksumFailureCounted checks that a corrupt frame surfaces in the
// counters and produces no output.
func TestChecksumFailureCounted(t *testing.T) {

	data := testdata.SFRBXFrame(testdata.Payload(11, 1, 0, 1, nil))
	// Corrupt the final checksum byte.
	data[len(data)-1] ^= 0xff

	handler, messages := runHandler(t, data)

	if len(messages) != 0 {
		t.Errorf("want no messages, got %d", len(messages))
	}
	if handler.Counts.ChecksumFailures != 1 {
		t.Errorf("want 1 checksum failure, got %d", handler.Counts.ChecksumFailures)
	}
	if handler.Counts.SFRBXFrames != 0 {
		t.Errorf("want 0 SFRBX frames, got %d", handler.Counts.SFRBXFrames)
	}
}

// TestNavSigCounting checks that a NAV-SIG frame is decoded and its
// signals counted by constellation.
func TestNavSigCounting(t *testing.T) {

	// A NAV-SIG payload with two signals, one Galileo and one GPS.
	payload := []byte{
		0x10, 0x27, 0x00, 0x00, // iTOW.
		0x00, 0x02, 0x00, 0x00, // version, numSigs = 2, reserved.
		2, 11, 1, 0, 0x05, 0x00, 45, 4, 1, 0, 0x29, 0x00, 0, 0, 0, 0,
		0, 3, 0, 0, 0x02, 0x00, 38, 4, 1, 0, 0x29, 0x00, 0, 0, 0, 0,
	}

	handler, messages := runHandler(t, testdata.Frame(0x01, 0x43, payload))

	if len(messages) != 0 {
		t.Errorf("want no messages, got %d", len(messages))
	}
	if handler.Counts.NavSigFrames != 1 {
		t.Errorf("want 1 NAV-SIG frame, got %d", handler.Counts.NavSigFrames)
	}
	if handler.Counts.NavSigByGnss[utils.GnssGalileo] != 1 {
		t.Errorf("want 1 Galileo signal, got %d",
			handler.Counts.NavSigByGnss[utils.GnssGalileo])
	}
	if handler.Counts.NavSigByGnss[utils.GnssGPS] != 1 {
		t.Errorf("want 1 GPS signal, got %d",
			handler.Counts.NavSigByGnss[utils.GnssGPS])
	}
}
