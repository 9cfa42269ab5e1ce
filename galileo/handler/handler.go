// The handler package is the driver of the decoder.  It reads bytes from
// a channel, extracts UBX frames, assembles the Galileo subframes into
// I/NAV pages, decodes the pages and accumulates them per satellite,
// issuing the header block and each completed navigation record on its
// output channel.
//
//	handler := handler.New(slog.LevelInfo)
//	go handler.HandleMessages(byteChan, messageChan)
//
// The caller owns both channels.  When the byte channel is closed the
// handler finishes what it can and closes the message channel.  All state
// lives in the handler, so several files can be decoded concurrently by
// giving each its own handler.
package handler

import (
	"fmt"
	"log/slog"

	"github.com/goblimey/go-galileo/galileo/navdata"
	"github.com/goblimey/go-galileo/galileo/page"
	"github.com/goblimey/go-galileo/galileo/utils"
	"github.com/goblimey/go-galileo/galileo/words"
	"github.com/goblimey/go-galileo/ubx"
	"github.com/goblimey/go-galileo/ubx/pushback"
)

// Message is one item of decoder output - the one-shot header block or a
// completed navigation record.  Exactly one of the fields is set.
type Message struct {
	// Header is the header block, sent once, before the first record.
	Header *navdata.Header

	// Record is a completed navigation record.
	Record *navdata.Record
}

// String returns the message in readable form.
func (message *Message) String() string {
	if message.Header != nil {
		return message.Header.String()
	}
	if message.Record != nil {
		return message.Record.String()
	}
	return ""
}

// Counts holds the diagnostic counters kept while decoding.  They don't
// affect the output; they give a picture of what the input contained.
type Counts struct {
	// Frames by type.
	SFRBXFrames   uint
	NavSigFrames  uint
	UnknownFrames uint

	// ChecksumFailures counts frames dropped by the frame scanner.
	ChecksumFailures uint

	// Subframes by constellation.
	SFRBXByGnss [8]uint

	// Tracked signals by constellation, from NAV-SIG frames.
	NavSigByGnss [8]uint

	// Galileo subframes by satellite.  Slot 0 is satellite 1.
	BySatellite [utils.MaxSatellites]uint

	// Galileo pages by word type.
	ByWordType map[uint]uint

	// AcceptedPages and RejectedPages count the Galileo pages that
	// passed or failed the assembly gates (alert flag, unknown word
	// type, tail bits, even/odd cross-check, short payload).
	AcceptedPages uint
	RejectedPages uint
}

// gnssName gives the constellation names for the count display.
var gnssName = map[int]string{
	utils.GnssGPS:     "GPS",
	utils.GnssSBAS:    "SBAS",
	utils.GnssGalileo: "Galileo",
	utils.GnssBeidou:  "Beidou",
	utils.GnssQZSS:    "QZSS",
	utils.GnssGlonass: "Glonass",
}

// display returns the counters in readable form.  At debug level the
// per-satellite and per-word-type breakdowns are included.
func (counts *Counts) display(logLevel slog.Level) string {

	display := fmt.Sprintf("UBX-RXM-SFRBX: %d\n", counts.SFRBXFrames)
	for gnss := 0; gnss < len(counts.SFRBXByGnss); gnss++ {
		name, known := gnssName[gnss]
		if !known {
			continue
		}
		display += fmt.Sprintf("%s: %d\n", name, counts.SFRBXByGnss[gnss])
	}

	display += fmt.Sprintf("\nUBX-NAV-SIG: %d\n", counts.NavSigFrames)
	for gnss := 0; gnss < len(counts.NavSigByGnss); gnss++ {
		name, known := gnssName[gnss]
		if !known {
			continue
		}
		display += fmt.Sprintf("%s: %d\n", name, counts.NavSigByGnss[gnss])
	}

	if logLevel == slog.LevelDebug {
		display += "\n"
		for i := 0; i < len(counts.BySatellite); i++ {
			display += fmt.Sprintf("SVID %d: %d\n", i+1, counts.BySatellite[i])
		}

		display += "\n"
		for _, wordType := range []uint{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 16, 17, 18, 19, 20, 63} {
			display += fmt.Sprintf("Word Type %d: %d\n",
				wordType, counts.ByWordType[wordType])
		}
	}

	display += fmt.Sprintf("\nAccepted: %d\nRejected: %d\nChecksum failures: %d\n",
		counts.AcceptedPages, counts.RejectedPages, counts.ChecksumFailures)

	return display
}

// Handler decodes a stream of UBX frames into Galileo navigation records.
type Handler struct {
	// Counts are the diagnostic counters.
	Counts Counts

	ubxHandler *ubx.Handler
	store      *navdata.Store

	// logLevel is a slog-style logging level (Debug, Info etc).  It
	// controls the data that the count display produces.
	logLevel slog.Level
}

// New creates a handler.  The log level controls the count display.
func New(logLevel slog.Level) *Handler {
	handler := Handler{
		ubxHandler: ubx.New(),
		store:      navdata.NewStore(),
		logLevel:   logLevel,
	}
	handler.Counts.ByWordType = make(map[uint]uint)
	return &handler
}

// HandleMessages reads bytes from chIn, decodes them and writes the
// header block and the completed navigation records to chOut.  The caller
// is responsible for creating both channels and for closing chIn; chOut
// is closed when the input is exhausted.
func (handler *Handler) HandleMessages(chIn chan byte, chOut chan Message) {

	// Turn the input channel into a pushback channel.
	pc := pushback.New(chIn)

	// Fetch frames until there are no more.
	for {
		frame, err := handler.ubxHandler.FetchNextFrame(pc)
		if err != nil {
			// There is no more input.
			handler.Counts.ChecksumFailures = handler.ubxHandler.ChecksumFailures
			close(chOut)
			return
		}

		for _, message := range handler.handleFrame(frame) {
			chOut <- message
		}
	}
}

// handleFrame processes one UBX frame and returns any resulting output
// messages - at most the header block and one record.
func (handler *Handler) handleFrame(frame *ubx.Frame) []Message {

	switch frame.Type() {

	case ubx.TypeSFRBX:
		handler.Counts.SFRBXFrames++
		return handler.handleSFRBX(frame.Payload)

	case ubx.TypeNavSig:
		handler.Counts.NavSigFrames++
		handler.handleNavSig(frame.Payload)

	default:
		// A frame we don't consume.
		handler.Counts.UnknownFrames++
	}

	return nil
}

// handleSFRBX assembles and decodes one subframe-broadcast payload and
// feeds the accumulator.
func (handler *Handler) handleSFRBX(payload []byte) []Message {

	// Count the subframe by constellation before the Galileo gate.
	if header, err := page.GetHeader(payload); err == nil {
		if int(header.GnssID) < len(handler.Counts.SFRBXByGnss) {
			handler.Counts.SFRBXByGnss[header.GnssID]++
		}
	}

	p, pageError := page.GetPage(payload)
	if pageError != nil {
		if pageError != page.ErrNotGalileo {
			// A Galileo page that failed assembly.
			handler.Counts.RejectedPages++
		}
		return nil
	}

	handler.Counts.AcceptedPages++
	if p.Header.SvID >= 1 && p.Header.SvID <= utils.MaxSatellites {
		handler.Counts.BySatellite[p.Header.SvID-1]++
	}
	handler.Counts.ByWordType[p.WordType]++

	word, wordError := words.GetWord(p)
	if wordError != nil {
		handler.Counts.RejectedPages++
		return nil
	}

	header, record := handler.store.Add(uint(p.Header.SvID), p.Header.SigID, word)

	// The header goes out before the record that completed alongside it.
	var messages []Message
	if header != nil {
		messages = append(messages, Message{Header: header})
	}
	if record != nil {
		messages = append(messages, Message{Record: record})
	}

	return messages
}

// handleNavSig counts the tracked signals described by a NAV-SIG payload.
func (handler *Handler) handleNavSig(payload []byte) {
	navSig, err := ubx.GetNavSig(payload)
	if err != nil {
		return
	}

	for i := range navSig.Signals {
		gnss := int(navSig.Signals[i].GnssID)
		if gnss < len(handler.Counts.NavSigByGnss) {
			handler.Counts.NavSigByGnss[gnss]++
		}
	}
}

// CountDisplay returns the diagnostic counters in readable form.
func (handler *Handler) CountDisplay() string {
	handler.Counts.ChecksumFailures = handler.ubxHandler.ChecksumFailures
	return handler.Counts.display(handler.logLevel)
}

// Store exposes the accumulated state, for example to inspect the
// almanac collected so far.
func (handler *Handler) Store() *navdata.Store {
	return handler.store
}
