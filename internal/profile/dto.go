package profile

// profileResponse is the wire shape for GET/PUT responses. Validation rides
// along so clients can surface missing-field hints without a second call.
type profileResponse struct {
	Profile    Profile    `json:"profile"`
	Validation Validation `json:"validation"`
}

// importResponse adds the extraction warnings from a resume file import.
type importResponse struct {
	Profile    Profile    `json:"profile"`
	Validation Validation `json:"validation"`
	Warnings   []string   `json:"warnings,omitempty"`
}
