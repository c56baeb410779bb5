package templates

import "errors"

// ErrUnknownAsset is returned when no static asset is registered for a
// (docType, templateStyle) pair.
var ErrUnknownAsset = errors.New("template asset not found")

// assets maps docType -> templateStyle -> static PDF path served alongside
// the frontend bundle.
var assets = map[string]map[string]string{
	"resume": {
		"basic":  "/templates/resume_basic.pdf",
		"modern": "/templates/resume_modern.pdf",
	},
	"resignation": {
		"basic":  "/templates/resignation_basic.pdf",
		"modern": "/templates/resignation_modern.pdf",
	},
	"biodata":           {"basic": "/templates/biodata_basic.pdf"},
	"application":       {"basic": "/templates/application_basic.pdf"},
	"recommendation":    {"basic": "/templates/recommendation_basic.pdf"},
	"cv":                {"basic": "/templates/cv_basic.pdf"},
	"missed-assessment": {"basic": "/templates/missed_assessment_basic.pdf"},
	"accomplishment":    {"basic": "/templates/accomplishment_basic.pdf"},
	"reaction":          {"basic": "/templates/reaction_basic.pdf"},
	"loa":               {"basic": "/templates/loa_basic.pdf"},
}

// ResolveAsset returns the static asset path for the docType/style pair.
func ResolveAsset(docType, templateStyle string) (string, error) {
	styles, ok := assets[docType]
	if !ok {
		return "", ErrUnknownAsset
	}
	path, ok := styles[templateStyle]
	if !ok {
		return "", ErrUnknownAsset
	}
	return path, nil
}
