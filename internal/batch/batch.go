// Package batch drives scanning over one PDF file or a directory of them.
package batch

import (
	"os"
	"path/filepath"

	"jzorko/emso-scan/internal/document"
	"jzorko/emso-scan/internal/fileutils"
	"jzorko/emso-scan/internal/parsererror"
	"jzorko/emso-scan/internal/pdfextract"

	"github.com/sirupsen/logrus"
)

// PDFExtension is the input file extension, matched case-insensitively.
const PDFExtension = ".pdf"

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Runner processes a batch of PDF files into document records. Documents are
// processed sequentially, each to completion, in input order.
type Runner struct {
	extractor pdfextract.Extractor
	label     string
}

// NewRunner creates a Runner using the given text extractor and reference
// label.
func NewRunner(extractor pdfextract.Extractor, label string) *Runner {
	return &Runner{
		extractor: extractor,
		label:     label,
	}
}

// Run resolves inputPath and scans every selected file. Extraction failures
// degrade to empty text: the document is skipped with a warning and the rest
// of the batch continues. The returned slice is never nil; a batch with no
// processable documents yields an empty slice.
//
// Only path resolution can fail; by then nothing has been processed yet.
func (r *Runner) Run(inputPath string) ([]document.Record, error) {
	files, err := ResolveInputFiles(inputPath)
	if err != nil {
		return nil, err
	}

	records := make([]document.Record, 0, len(files))
	for _, file := range files {
		log.WithField("file", file).Info("Processing PDF file")

		text, err := r.extractor.ExtractText(file)
		if err != nil {
			extractErr := &parsererror.ExtractionError{FilePath: file, Err: err}
			log.WithError(extractErr).Warn("Skipping document after extraction failure")
			continue
		}

		record := document.ProcessWithLabel(filepath.Base(file), text, r.label)
		if record == nil {
			log.WithField("file", file).Warn("No text extracted, skipping document")
			continue
		}

		records = append(records, *record)
	}

	log.WithFields(logrus.Fields{
		"files":   len(files),
		"records": len(records),
	}).Info("Batch processing completed")

	return records, nil
}

// ResolveInputFiles expands inputPath into the list of PDF files to process.
// A directory selects its directly contained .pdf files (case-insensitive,
// non-recursive); a .pdf file selects itself. Anything else is an input-path
// error and the whole run halts before any document is touched.
func ResolveInputFiles(inputPath string) ([]string, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, &parsererror.InputPathError{Path: inputPath, Reason: "path does not exist"}
	}

	if info.IsDir() {
		files, err := fileutils.ListFilesWithExtension(inputPath, PDFExtension)
		if err != nil {
			return nil, &parsererror.InputPathError{Path: inputPath, Reason: err.Error()}
		}
		log.WithFields(logrus.Fields{
			"directory": inputPath,
			"count":     len(files),
		}).Info("Found PDF files in directory")
		return files, nil
	}

	if fileutils.HasExtension(inputPath, PDFExtension) {
		return []string{inputPath}, nil
	}

	return nil, &parsererror.InputPathError{Path: inputPath, Reason: "not a PDF file or a directory"}
}
