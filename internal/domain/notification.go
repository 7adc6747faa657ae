package domain

// Notification is one push notification record. The push endpoint accepts
// either a bare notification or a DB-webhook payload wrapping it in "record".
type Notification struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	ImageURL string `json:"image_url,omitempty"`
	// Deep-linking metadata so the app can navigate on tap.
	Type           string `json:"type,omitempty"` // post, task, incident, ...
	ReferenceID    *int64 `json:"reference_id,omitempty"`
	ReferenceTable string `json:"reference_table,omitempty"`
	ActionURL      string `json:"action_url,omitempty"`
}
