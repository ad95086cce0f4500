package domain

// SubstitutionRow is one row of the upstream substitution/cancellation feed.
// All fields are free text as published by the school; rows carry no
// referential link to any user and are matched purely by content.
type SubstitutionRow struct {
	Hours   string `json:"hours"`
	Subject string `json:"subject"`
	Room    string `json:"room"`
	Teacher string `json:"teacher"`
	Type    string `json:"type"`
	Info    string `json:"info"`
}
