// The galileonav application reads raw output from a u-blox GNSS receiver,
// decodes the Galileo I/NAV navigation message and records the broadcast
// ephemeris.  It's designed to run against a live receiver on a serial USB
// connection, so it reconnects if the connection dies and it runs until
// forcibly stopped.
//
// When the application starts up it looks for a JSON config file given by
// the -c flag.  The config lists the devices that may represent the
// connection and the output options, for example:
//
//	{
//	    "input": ["/dev/ttyACM0", "/dev/ttyACM1"],
//	    "displayrecords": true,
//	    "writerecordlog": true,
//	    "recordlogdirectory": "navdata",
//	    "timeout": 1,
//	    "sleeptime": 2
//	}
//
// The decoded records are written to stdout and, if requested, to a
// datestamped daily log file, so each log file contains the ephemeris
// collected in one day.  Events (connection losses, reconnections) go to
// a daily event log.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	filehandler "github.com/goblimey/go-galileo/file_handler"
	galileo "github.com/goblimey/go-galileo/galileo/handler"
	"github.com/goblimey/go-galileo/galileo/utils"
	"github.com/goblimey/go-galileo/jsonconfig"

	"github.com/goblimey/go-tools/dailylogger"
)

// MessageChannel carries the decoded output.
type MessageChannel chan galileo.Message

func main() {

	// logger writes to the daily event log.
	logger := utils.GetDailyLogger("galileonav")

	// Get the name of the config file (mandatory).
	var configFileName string
	flag.StringVar(&configFileName, "c", "", "JSON config file")
	flag.StringVar(&configFileName, "config", "", "JSON config file")

	flag.Parse()

	if len(configFileName) == 0 {
		logger.Println("missing config file: -c or --config")
		os.Exit(-1)
	}

	// Get the config.
	config, errConfig := jsonconfig.GetJSONConfigFromFile(configFileName, logger)

	if errConfig != nil {
		logger.Println(errConfig.Error())
		os.Exit(-1)
	}

	logLevel := slog.LevelInfo
	if config.Debug {
		logLevel = slog.LevelDebug
	}

	// recordWriter writes the decoded records - to stdout, to a daily
	// log, to both or to neither depending on the config.
	recordWriter := getRecordWriter(config)

	// Decode until the input runs out, then reconnect and go again.  The
	// read deadline set when the device is opened turns a dead connection
	// into a read error, which ends the current decode.
	for {
		reader := jsonconfig.WaitAndConnectToInput(config)

		messageChan := make(MessageChannel, 10)

		fh := filehandler.New(messageChan)

		go writeMessages(messageChan, recordWriter)

		if handleError := fh.Handle(logLevel, reader); handleError != nil {
			logger.Printf("connection lost - %v.  Reconnecting", handleError)
			continue
		}

		logger.Println("input exhausted.  Reconnecting")
	}
}

// getRecordWriter builds the writer for the decoded records from the
// config settings.
func getRecordWriter(config *jsonconfig.Config) io.Writer {

	writers := make([]io.Writer, 0)

	if config.DisplayRecords {
		writers = append(writers, os.Stdout)
	}

	if config.WriteRecordLog {
		directory := config.RecordLogDirectory
		if len(directory) == 0 {
			directory = "navdata"
		}
		writers = append(writers, dailylogger.New(directory, "navdata.", ".txt"))
	}

	return io.MultiWriter(writers...)
}

// writeMessages receives the decoded messages from the channel and writes
// them to the given writer.  If the channel is closed or there is an
// error while writing, it terminates.  It can be run in a go routine.
func writeMessages(ch MessageChannel, writer io.Writer) {
	for {
		message, ok := <-ch
		if !ok {
			return
		}

		_, writeError := fmt.Fprint(writer, message.String())
		if writeError != nil {
			return
		}
	}
}
