// Package report serializes scan results to the output file.
package report

import (
	"encoding/json"
	"fmt"

	"jzorko/emso-scan/internal/document"
	"jzorko/emso-scan/internal/fileutils"
	"jzorko/emso-scan/internal/parsererror"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Write serializes records to outputFile in the given format ("json" or
// "csv").
func Write(records []document.Record, outputFile, format string) error {
	switch format {
	case "json":
		return WriteJSON(records, outputFile)
	case "csv":
		return WriteCSV(records, outputFile)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteJSON writes records as a JSON array, one object per record. Absent
// values serialize as null, non-ASCII characters are preserved literally,
// and an empty batch produces an empty array.
func WriteJSON(records []document.Record, outputFile string) error {
	if records == nil {
		records = []document.Record{}
	}

	log.WithFields(logrus.Fields{
		"file":  outputFile,
		"count": len(records),
	}).Info("Writing records to JSON file")

	file, err := fileutils.CreateFile(outputFile)
	if err != nil {
		return &parsererror.OutputError{FilePath: outputFile, Format: "json", Err: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			log.WithError(cerr).Warn("Failed to close output file")
		}
	}()

	encoder := json.NewEncoder(file)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(records); err != nil {
		return &parsererror.OutputError{FilePath: outputFile, Format: "json", Err: err}
	}

	return nil
}

// WriteCSV writes records as CSV with a header row. Absent values serialize
// as empty cells.
func WriteCSV(records []document.Record, outputFile string) error {
	if records == nil {
		records = []document.Record{}
	}

	log.WithFields(logrus.Fields{
		"file":  outputFile,
		"count": len(records),
	}).Info("Writing records to CSV file")

	file, err := fileutils.CreateFile(outputFile)
	if err != nil {
		return &parsererror.OutputError{FilePath: outputFile, Format: "csv", Err: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			log.WithError(cerr).Warn("Failed to close output file")
		}
	}()

	if err := gocsv.MarshalFile(&records, file); err != nil {
		return &parsererror.OutputError{FilePath: outputFile, Format: "csv", Err: err}
	}

	return nil
}
