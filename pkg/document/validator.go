package document

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Validator reports whether an upload is a usable PDF. It is a predicate:
// corrupt or non-PDF content yields false, never an error.
type Validator struct {
	conf *model.Configuration
}

func NewValidator() *Validator {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	return &Validator{conf: conf}
}

// IsPDF requires both the .pdf extension and content that parses as a PDF.
func (v *Validator) IsPDF(filename string, content []byte) bool {
	if strings.ToLower(filepath.Ext(filename)) != ".pdf" {
		return false
	}

	if len(content) == 0 {
		return false
	}

	return api.Validate(bytes.NewReader(content), v.conf) == nil
}
