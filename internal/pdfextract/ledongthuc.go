package pdfextract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// FileExtractor implements Extractor using the ledongthuc/pdf library.
// This is the production implementation; it reads the text layer only and
// performs no OCR, so scanned documents yield an empty string.
type FileExtractor struct{}

// NewFileExtractor creates a new FileExtractor instance.
func NewFileExtractor() *FileExtractor {
	return &FileExtractor{}
}

// ExtractText extracts text from every page of the PDF at pdfPath, joined by
// a single newline. Pages that carry no text are logged and skipped; the
// remaining pages are still returned.
func (e *FileExtractor) ExtractText(pdfPath string) (string, error) {
	f, reader, err := pdf.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("error opening PDF file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.WithError(cerr).Warn("Failed to close PDF file")
		}
	}()

	numPages := reader.NumPage()
	log.WithField("pages", numPages).Debug("Extracting text from PDF")

	var pages []string
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			log.WithField("page", i).Warn("No content on page")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			log.WithError(err).WithField("page", i).Warn("Failed to extract text from page")
			continue
		}
		if text == "" {
			log.WithField("page", i).Warn("No text found on page")
			continue
		}

		pages = append(pages, text)
	}

	return strings.Join(pages, "\n"), nil
}
