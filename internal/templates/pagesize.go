package templates

// PageSize holds a page format's dimensions in points (1" = 72pt). The
// store does not validate the value saved on a document; this table only
// backs the preview/export layer.
type PageSize struct {
	Name   string  `json:"name"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

var pageSizes = map[string]PageSize{
	"A4":    {Name: "A4", Width: 595.28, Height: 841.89},  // 210mm x 297mm
	"A3":    {Name: "A3", Width: 841.89, Height: 1190.55}, // 297mm x 420mm
	"Legal": {Name: "Legal", Width: 612, Height: 1008},    // 8.5" x 14"
	"Long":  {Name: "Long", Width: 612, Height: 936},      // 8.5" x 13"
	"Short": {Name: "Short", Width: 612, Height: 792},     // 8.5" x 11"
}

// Size looks up a page format by name.
func Size(name string) (PageSize, bool) {
	s, ok := pageSizes[name]
	return s, ok
}
