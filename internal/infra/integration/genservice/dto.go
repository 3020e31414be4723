package genservice

// Campaign request/response shapes live in entity; their json tags are the
// wire contract. Only the audio endpoint has a payload of its own.

type audioRequest struct {
	EmailBody string `json:"email_body"`
	Language  string `json:"language"`
}
