package filehandler

import (
	"io"
	"log/slog"

	galileo "github.com/goblimey/go-galileo/galileo/handler"
)

// Handler runs the Galileo decoder over a finite byte source - a capture
// file from a u-blox receiver, or a buffer.  The input has a definite
// end: running out of data is the normal way for a decode to finish, not
// a fault, so end of file is absorbed here and anything else is returned
// to the caller.
type Handler struct {
	GalileoHandler *galileo.Handler     // Decodes the UBX frames ...
	MessageChan    chan galileo.Message // ... and issues results on this channel.
}

// readChunkSize is the size of the reads from the input.  A capture file
// holds many small UBX frames, so there is nothing to gain from reading
// it frame by frame.
const readChunkSize = 4096

// New creates a handler.
func New(messageChan chan galileo.Message) *Handler {

	handler := Handler{
		MessageChan: messageChan,
	}
	return &handler
}

// Handle reads the input to its end and sends the contents to a Galileo
// handler, which decodes the navigation data and sends the header and
// completed records to the message channel.  When the input is exhausted
// the decoder is allowed to drain and the message channel is closed, so
// the caller can simply range over it.  End of file gives a nil return;
// a real read failure is returned, after the channels have been shut
// down the same way.
func (handler *Handler) Handle(logLevel slog.Level, reader io.Reader) error {

	byteChan := make(chan byte, readChunkSize)

	// Set up a Galileo handler connected to the input and output channels
	// and start it running.  It closes the message channel once the byte
	// channel is closed and drained.
	handler.GalileoHandler = galileo.New(logLevel)
	go handler.GalileoHandler.HandleMessages(byteChan, handler.MessageChan)

	buffer := make([]byte, readChunkSize)
	for {
		n, err := reader.Read(buffer)

		for _, b := range buffer[:n] {
			byteChan <- b
		}

		if err != nil {
			// The input is done, cleanly or otherwise.  Either way the
			// decoder gets whatever arrived before the failure.
			close(byteChan)
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}
