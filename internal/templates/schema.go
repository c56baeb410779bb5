package templates

// Field describes one input of the generic editor: what to call it, how to
// render it, and where its value lands in the preview surface.
type Field struct {
	Name    string `json:"name"`
	Label   string `json:"label"`
	Kind    string `json:"kind"`    // text, textarea, date, file
	Preview string `json:"preview"` // header, body, sidebar, signature
}

// FormSchema drives one document type's editor. A single schema-driven form
// replaces the per-type editor pages.
type FormSchema struct {
	DocType string  `json:"docType"`
	Title   string  `json:"title"`
	Fields  []Field `json:"fields"`
}

var schemas = map[string]FormSchema{
	"resume": {
		DocType: "resume",
		Title:   "Resume",
		Fields: []Field{
			{Name: "name", Label: "Full Name", Kind: "text", Preview: "header"},
			{Name: "picture", Label: "Profile Picture", Kind: "file", Preview: "sidebar"},
			{Name: "education", Label: "Education", Kind: "textarea", Preview: "body"},
			{Name: "description", Label: "About Me", Kind: "textarea", Preview: "body"},
			{Name: "skills", Label: "Skills (comma separated)", Kind: "text", Preview: "sidebar"},
		},
	},
	"resignation": {
		DocType: "resignation",
		Title:   "Resignation Letter",
		Fields: []Field{
			{Name: "employeeName", Label: "Your Name", Kind: "text", Preview: "signature"},
			{Name: "recipientName", Label: "Recipient", Kind: "text", Preview: "header"},
			{Name: "companyName", Label: "Company", Kind: "text", Preview: "header"},
			{Name: "lastWorkingDay", Label: "Last Working Day", Kind: "date", Preview: "body"},
			{Name: "reason", Label: "Reason", Kind: "textarea", Preview: "body"},
		},
	},
	"biodata": {
		DocType: "biodata",
		Title:   "Bio Data",
		Fields: []Field{
			{Name: "fullName", Label: "Full Name", Kind: "text", Preview: "header"},
			{Name: "dateOfBirth", Label: "Date of Birth", Kind: "date", Preview: "body"},
			{Name: "gender", Label: "Gender", Kind: "text", Preview: "body"},
			{Name: "nationality", Label: "Nationality", Kind: "text", Preview: "body"},
			{Name: "maritalStatus", Label: "Marital Status", Kind: "text", Preview: "body"},
			{Name: "currentAddress", Label: "Current Address", Kind: "textarea", Preview: "body"},
			{Name: "contactNumber", Label: "Contact Number", Kind: "text", Preview: "sidebar"},
			{Name: "emailAddress", Label: "Email Address", Kind: "text", Preview: "sidebar"},
			{Name: "highestLevelOfEducation", Label: "Highest Education", Kind: "text", Preview: "body"},
			{Name: "skillsAndCompetencies", Label: "Skills and Competencies", Kind: "textarea", Preview: "body"},
		},
	},
	"application": {
		DocType: "application",
		Title:   "Application Letter",
		Fields: []Field{
			{Name: "applicantName", Label: "Your Name", Kind: "text", Preview: "signature"},
			{Name: "recipientName", Label: "Hiring Manager", Kind: "text", Preview: "header"},
			{Name: "companyName", Label: "Company", Kind: "text", Preview: "header"},
			{Name: "position", Label: "Position Applied For", Kind: "text", Preview: "body"},
			{Name: "body", Label: "Letter Body", Kind: "textarea", Preview: "body"},
		},
	},
	"recommendation": {
		DocType: "recommendation",
		Title:   "Recommendation Letter",
		Fields: []Field{
			{Name: "recommenderName", Label: "Recommender", Kind: "text", Preview: "signature"},
			{Name: "candidateName", Label: "Candidate", Kind: "text", Preview: "header"},
			{Name: "relationship", Label: "Relationship", Kind: "text", Preview: "body"},
			{Name: "body", Label: "Recommendation", Kind: "textarea", Preview: "body"},
		},
	},
	"cv": {
		DocType: "cv",
		Title:   "Curriculum Vitae",
		Fields: []Field{
			{Name: "fullName", Label: "Full Name", Kind: "text", Preview: "header"},
			{Name: "picture", Label: "Photo", Kind: "file", Preview: "sidebar"},
			{Name: "summary", Label: "Professional Summary", Kind: "textarea", Preview: "body"},
			{Name: "workExperience", Label: "Work Experience", Kind: "textarea", Preview: "body"},
			{Name: "education", Label: "Education", Kind: "textarea", Preview: "body"},
			{Name: "publications", Label: "Publications", Kind: "textarea", Preview: "body"},
		},
	},
	"missed-assessment": {
		DocType: "missed-assessment",
		Title:   "Missed Assessment Request",
		Fields: []Field{
			{Name: "studentName", Label: "Student Name", Kind: "text", Preview: "signature"},
			{Name: "instructorName", Label: "Instructor", Kind: "text", Preview: "header"},
			{Name: "courseCode", Label: "Course", Kind: "text", Preview: "body"},
			{Name: "assessmentDate", Label: "Assessment Date", Kind: "date", Preview: "body"},
			{Name: "reason", Label: "Reason for Absence", Kind: "textarea", Preview: "body"},
		},
	},
	"accomplishment": {
		DocType: "accomplishment",
		Title:   "Accomplishment Report",
		Fields: []Field{
			{Name: "authorName", Label: "Prepared By", Kind: "text", Preview: "signature"},
			{Name: "period", Label: "Reporting Period", Kind: "text", Preview: "header"},
			{Name: "highlights", Label: "Highlights", Kind: "textarea", Preview: "body"},
			{Name: "details", Label: "Details", Kind: "textarea", Preview: "body"},
		},
	},
	"reaction": {
		DocType: "reaction",
		Title:   "Reaction Paper",
		Fields: []Field{
			{Name: "authorName", Label: "Author", Kind: "text", Preview: "header"},
			{Name: "subject", Label: "Subject Work", Kind: "text", Preview: "header"},
			{Name: "summary", Label: "Summary", Kind: "textarea", Preview: "body"},
			{Name: "reaction", Label: "Reaction", Kind: "textarea", Preview: "body"},
		},
	},
	"loa": {
		DocType: "loa",
		Title:   "Leave of Absence Letter",
		Fields: []Field{
			{Name: "requesterName", Label: "Your Name", Kind: "text", Preview: "signature"},
			{Name: "recipientName", Label: "Addressed To", Kind: "text", Preview: "header"},
			{Name: "startDate", Label: "Leave Start", Kind: "date", Preview: "body"},
			{Name: "endDate", Label: "Leave End", Kind: "date", Preview: "body"},
			{Name: "reason", Label: "Reason", Kind: "textarea", Preview: "body"},
		},
	},
}

// Schema returns the editor schema for a docType. Unlike template
// resolution there is no fallback: the generic editor only renders types it
// has fields for.
func Schema(docType string) (FormSchema, bool) {
	s, ok := schemas[docType]
	return s, ok
}
