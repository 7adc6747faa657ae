package domain

// CurrentFormData is form input the caregiver has typed but not yet saved.
// It is merged into the shift document ahead of DB data because it is the
// freshest information available.
type CurrentFormData struct {
	VitalSigns     map[string]string `json:"vital_signs,omitempty"` // e.g. { "sBP": "120", "dBP": "80" }
	Ratings        []FormRating      `json:"ratings,omitempty"`
	ReportTemplate string            `json:"report_template,omitempty"` // free-text note the NA already wrote
}

// FormRating is one health-scale rating from the form.
type FormRating struct {
	Subject string `json:"subject"`
	Rating  int    `json:"rating"`
	Choice  string `json:"choice,omitempty"`
	Note    string `json:"note,omitempty"`
}
