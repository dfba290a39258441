// Package scan handles the scan command
package scan

import (
	"jzorko/emso-scan/cmd/root"
	"jzorko/emso-scan/internal/batch"
	"jzorko/emso-scan/internal/pdfextract"
	"jzorko/emso-scan/internal/report"
	"jzorko/emso-scan/internal/validation"

	"github.com/spf13/cobra"
)

var (
	outputFile   string
	outputFormat string
)

// Cmd represents the scan command
var Cmd = &cobra.Command{
	Use:   "scan <path>",
	Short: "Scan a PDF file or directory and write the results",
	Long: `Scan a single PDF file, or every .pdf file directly inside a directory,
for an EMŠO and a Številka value. One record is written per document that
yielded any text; the results go to the output file as JSON (default) or CSV.

Example:
  emso-scan scan ./inbox -o results.json`,
	Args: cobra.ExactArgs(1),
	Run:  scanFunc,
}

func init() {
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path (default: output.json)")
	Cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "Output format: json or csv (default: json)")
}

func scanFunc(cmd *cobra.Command, args []string) {
	inputPath := args[0]

	output := outputFile
	if output == "" {
		output = root.Cfg.Output.Path
	}
	format := outputFormat
	if format == "" {
		format = root.Cfg.Output.Format
	}
	if err := validation.IsValidOutputFormat(format); err != nil {
		root.Log.Fatalf("Invalid output format: %v", err)
	}

	root.Log.Infof("Input path: %s", inputPath)
	root.Log.Infof("Output file: %s", output)

	runner := batch.NewRunner(pdfextract.NewFileExtractor(), root.Cfg.Scan.ReferenceLabel)
	records, err := runner.Run(inputPath)
	if err != nil {
		root.Log.Fatalf("Error processing input path: %v", err)
	}

	if err := report.Write(records, output, format); err != nil {
		root.Log.Fatalf("Error writing output file: %v", err)
	}

	root.Log.Infof("Processing complete. %d record(s) saved to '%s'.", len(records), output)
}
