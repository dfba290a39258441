// Package pdfextract extracts the text layer from PDF files.
package pdfextract

import "github.com/sirupsen/logrus"

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Extractor defines the interface for extracting text from PDF files.
// The batch driver depends on this interface rather than a concrete
// implementation so that tests can substitute canned text.
type Extractor interface {
	// ExtractText returns the concatenated text of all pages of the PDF at
	// the given path, pages joined by a newline. An empty string with a nil
	// error means the document has no text layer.
	ExtractText(pdfPath string) (string, error)
}

// MockExtractor implements Extractor for testing purposes. It returns
// predefined text instead of reading a PDF file.
type MockExtractor struct {
	MockText string
	MockErr  error
}

// NewMockExtractor creates a MockExtractor with the given canned result.
func NewMockExtractor(mockText string, mockErr error) *MockExtractor {
	return &MockExtractor{
		MockText: mockText,
		MockErr:  mockErr,
	}
}

// ExtractText returns the predefined mock text or error.
func (e *MockExtractor) ExtractText(pdfPath string) (string, error) {
	if e.MockErr != nil {
		return "", e.MockErr
	}
	return e.MockText, nil
}
