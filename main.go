// go-galileo reads raw u-blox receiver output, decodes the Galileo I/NAV
// navigation message carried in the UBX-RXM-SFRBX frames and writes the
// broadcast ephemeris records to stdout in a readable form, ready for
// conversion to a RINEX navigation file.  The header values (ionospheric
// model and time system conversions) are written once, before the first
// record.  At the end of the input a summary of what the stream contained
// is written to stderr.
//
// The program takes one argument, the name of the file of receiver
// output.  With no argument it reads from stdin.  The flag -v adds the
// per-satellite and per-word-type counts to the summary.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	filehandler "github.com/goblimey/go-galileo/file_handler"
	galileo "github.com/goblimey/go-galileo/galileo/handler"
)

func main() {

	verbose := flag.Bool("v", false, "verbose summary")
	flag.Parse()

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}

	var reader io.Reader = os.Stdin
	if flag.NArg() > 0 {
		file, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()
		reader = file
	}

	messageChan := make(chan galileo.Message, 10)

	fh := filehandler.New(messageChan)

	done := make(chan struct{})
	go func() {
		for message := range messageChan {
			fmt.Print(message.String())
		}
		close(done)
	}()

	// Process the whole file.
	if err := fh.Handle(logLevel, reader); err != nil {
		log.Fatal(err)
	}

	<-done

	fmt.Fprint(os.Stderr, fh.GalileoHandler.CountDisplay())
}
