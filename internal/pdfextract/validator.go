package pdfextract

import (
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ValidateFormat checks whether the file at pdfPath is a structurally valid
// PDF. Validation uses relaxed mode so slightly non-conforming documents
// that extractors can still read are accepted. A malformed document yields
// (false, nil); errors are reserved for problems reading the file itself.
func ValidateFormat(pdfPath string) (bool, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	if err := api.ValidateFile(pdfPath, conf); err != nil {
		log.WithError(err).WithField("file", pdfPath).Debug("PDF validation failed")
		return false, nil
	}

	return true, nil
}
