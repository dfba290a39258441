// Package document assembles per-document scan results into records.
package document

import (
	"jzorko/emso-scan/internal/emso"
	"jzorko/emso-scan/internal/scan"
)

// Record is the result of scanning one document. Reference and identifier
// are nil when not found; a nil identifier always carries EMSOValid false.
// Field names follow the JSON output contract.
type Record struct {
	FileName  string  `json:"fileName" csv:"fileName"`
	Reference *string `json:"stevilkaDokumenta" csv:"stevilkaDokumenta"`
	EMSO      *string `json:"emso" csv:"emso"`
	EMSOValid bool    `json:"emsoIsValid" csv:"emsoIsValid"`
}

// Process scans the extracted text of a single document and builds its
// Record. Empty text means extraction produced nothing; the document is
// skipped and Process returns nil. Absence of the identifier or the
// reference is recorded in the Record, never reported as an error.
func Process(fileName, text string) *Record {
	return ProcessWithLabel(fileName, text, scan.ReferenceLabel)
}

// ProcessWithLabel is Process with a caller-supplied reference label.
func ProcessWithLabel(fileName, text, label string) *Record {
	if text == "" {
		return nil
	}

	record := &Record{FileName: fileName}

	if id, found := scan.FindIdentifier(text); found {
		record.EMSO = &id
		record.EMSOValid = emso.Validate(id)
	}

	if ref, found := scan.FindLabeledValue(text, label); found {
		record.Reference = &ref
	}

	return record
}
