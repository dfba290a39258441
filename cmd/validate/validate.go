// Package validate handles the validate command
package validate

import (
	"jzorko/emso-scan/cmd/root"
	"jzorko/emso-scan/internal/fileutils"
	"jzorko/emso-scan/internal/pdfextract"

	"github.com/spf13/cobra"
)

// Cmd represents the validate command
var Cmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate that a file is a structurally sound PDF",
	Long: `Validate checks whether the given file can be read as a PDF document.
A document that fails validation would be skipped during a scan.`,
	Args: cobra.ExactArgs(1),
	Run:  validateFunc,
}

func validateFunc(cmd *cobra.Command, args []string) {
	pdfFile := args[0]

	if !fileutils.FileExists(pdfFile) {
		root.Log.Fatalf("File does not exist: %s", pdfFile)
	}

	valid, err := pdfextract.ValidateFormat(pdfFile)
	if err != nil {
		root.Log.Fatalf("Error validating PDF file: %v", err)
	}

	if valid {
		root.Log.Infof("'%s' is a valid PDF file", pdfFile)
	} else {
		root.Log.Infof("'%s' is NOT a valid PDF file", pdfFile)
	}
}
