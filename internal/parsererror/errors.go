package parsererror

import "fmt"

// InputPathError represents a fatal problem with the user-supplied input
// path: it does not exist, or is neither a PDF file nor a directory.
// Nothing is processed when this error is raised.
type InputPathError struct {
	Path   string
	Reason string
}

func (e *InputPathError) Error() string {
	return fmt.Sprintf("invalid input path '%s': %s", e.Path, e.Reason)
}

// ExtractionError represents a per-document text extraction failure. The
// batch driver logs it and degrades the document to empty text; it never
// aborts the batch.
type ExtractionError struct {
	FilePath string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("text extraction failed for '%s': %v", e.FilePath, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// OutputError represents a failure writing the result file after processing
// completed.
type OutputError struct {
	FilePath string
	Format   string
	Err      error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("failed to write %s output to '%s': %v", e.Format, e.FilePath, e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}
