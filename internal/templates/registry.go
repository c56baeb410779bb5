package templates

// GenericDefault is the fallback content for document types with no
// registered template. Unrecognized types never fail: the enumeration is
// open-ended at this layer even though the editors cover a closed set.
const GenericDefault = "Generic Document Template..."

// defaults maps a docType slug to its starting content. Extending the
// product with a new document type is a data change here, not a code change.
var defaults = map[string]string{
	"resume":            "Basic Resume Template...",
	"resignation":       "Formal Resignation Letter Template...",
	"biodata":           "Personal Bio Data Template...",
	"application":       "Job Application Letter Template...",
	"recommendation":    "Recommendation Letter Template...",
	"cv":                "Curriculum Vitae Template...",
	"missed-assessment": "Missed Assessment Request Template...",
	"accomplishment":    "Accomplishment Report Template...",
	"reaction":          "Reaction Paper Template...",
	"loa":               "Leave of Absence Letter Template...",
}

// Default returns the template content registered for the docType, or the
// generic fallback.
func Default(docType string) string {
	if tpl, ok := defaults[docType]; ok {
		return tpl
	}
	return GenericDefault
}

// Resolve decides a new document's initial content. Caller-supplied content
// wins verbatim and leaves the template field empty; otherwise both content
// and template are set to the registered default. Applied exactly once, at
// creation time.
func Resolve(docType, supplied string) (content, template string) {
	if supplied != "" {
		return supplied, ""
	}
	tpl := Default(docType)
	return tpl, tpl
}

// KnownTypes lists every docType with a registered template.
func KnownTypes() []string {
	types := make([]string, 0, len(defaults))
	for docType := range defaults {
		types = append(types, docType)
	}
	return types
}
