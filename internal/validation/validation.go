package validation

import "fmt"

// IsValidOutputFormat checks if the given report format is supported.
func IsValidOutputFormat(format string) error {
	switch format {
	case "json", "csv":
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s. Supported formats are 'json', 'csv'", format)
	}
}

// IsValidReferenceLabel checks that the configured reference label is usable
// for substring scanning. An empty label would match at the start of every
// document.
func IsValidReferenceLabel(label string) error {
	if label == "" {
		return fmt.Errorf("reference label must not be empty")
	}
	return nil
}
