package jsonconfig

import (
	"log"
	"os"
	"strings"
	"testing"

	"github.com/goblimey/go-tools/switchwriter"
	"github.com/goblimey/go-tools/testsupport"
)

// TestGetJSONControl tests that the correct data is produced when the
// text from a JSON control file is unmarshalled.
func TestGetJSONControl(t *testing.T) {
	reader := strings.NewReader(`{
		"input": ["a", "b"],
		"displayrecords": true,
		"writerecordlog": true,
		"recordlogdirectory": "someDirectory",
		"debug": true,
		"timeout": 1,
		"sleeptime": 2
	}`)

	writer := switchwriter.New()
	logger := log.New(writer, "jsonconfig_test", 0)

	config, err := getJSONConfig(reader, logger)
	if err != nil {
		t.Fatal(err)
	}

	if config == nil {
		t.Fatal("parsing json failed - nil")
	}

	numFiles := len(config.Filenames)
	if numFiles != 2 {
		t.Fatalf("parsing json, expected 2 files, got %d", numFiles)
	}

	if config.Filenames[0] != "a" {
		t.Errorf("parsing json, expected file 0 to be a, got %s",
			config.Filenames[0])
	}

	if config.Filenames[1] != "b" {
		t.Errorf("parsing json, expected file 1 to be b, got %s",
			config.Filenames[1])
	}

	if !config.DisplayRecords {
		t.Error("parsing json, expected displayrecords to be true")
	}

	if !config.WriteRecordLog {
		t.Error("parsing json, expected writerecordlog to be true")
	}

	if config.RecordLogDirectory != "someDirectory" {
		t.Errorf("parsing json, expected recordlogdirectory to be \"someDirectory\", got \"%s\"",
			config.RecordLogDirectory)
	}

	if !config.Debug {
		t.Error("parsing json, expected debug to be true")
	}

	if config.LostInputConnectionTimeout != 1 {
		t.Errorf("parsing json, expected timeout to be 1, got %d",
			config.LostInputConnectionTimeout)
	}

	if config.LostInputConnectionSleepTime != 2 {
		t.Errorf("parsing json, expected sleep time to be 2, got %d",
			config.LostInputConnectionSleepTime)
	}
}

// TestGetJSONControlWithBadInput tests that getJSONConfig returns an
// error when the JSON is malformed.
func TestGetJSONControlWithBadInput(t *testing.T) {
	reader := strings.NewReader(`{"input": ["a", "b"`)

	writer := switchwriter.New()
	logger := log.New(writer, "jsonconfig_test", 0)

	config, err := getJSONConfig(reader, logger)
	if err == nil {
		t.Errorf("expected an error, got config %v", config)
	}
}

// TestGetJSONConfigFromFile tests reading the config from a file in a
// temporary working directory.
func TestGetJSONConfigFromFile(t *testing.T) {

	workingDirectory, createError := testsupport.CreateWorkingDirectory()
	if createError != nil {
		t.Fatal(createError)
	}
	defer testsupport.RemoveWorkingDirectory(workingDirectory)

	const configName = "config.json"
	writeError := os.WriteFile(configName,
		[]byte(`{"input": ["ubx.raw"], "displayrecords": true}`), 0644)
	if writeError != nil {
		t.Fatal(writeError)
	}

	writer := switchwriter.New()
	logger := log.New(writer, "jsonconfig_test", 0)

	config, err := GetJSONConfigFromFile(configName, logger)
	if err != nil {
		t.Fatal(err)
	}

	if len(config.Filenames) != 1 || config.Filenames[0] != "ubx.raw" {
		t.Errorf("bad filenames: %v", config.Filenames)
	}
	if !config.DisplayRecords {
		t.Error("expected displayrecords to be true")
	}
}

// TestGetJSONConfigFromFileWithMissingFile tests the error case.
func TestGetJSONConfigFromFileWithMissingFile(t *testing.T) {

	writer := switchwriter.New()
	logger := log.New(writer, "jsonconfig_test", 0)

	config, err := GetJSONConfigFromFile("no/such/file.json", logger)
	if err == nil {
		t.Errorf("expected an error, got config %v", config)
	}
}
