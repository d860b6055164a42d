package digest

// Envelope is the JSON payload handed to downstream automation (the n8n
// workflow that mails the digest). Field names match what the workflow
// already consumes, so they stay camelCase rather than snake_case.
type Envelope struct {
	Subject   string `json:"subject"`
	HTMLBody  string `json:"htmlBody"`
	Session   string `json:"session"`
	Articles  int    `json:"articles"`
	SavedFile string `json:"savedFile"`
}

// NewEnvelope assembles the delivery envelope for one finished run.
func NewEnvelope(subject, htmlBody, session, savedFile string, articles int) *Envelope {
	return &Envelope{
		Subject:   subject,
		HTMLBody:  htmlBody,
		Session:   session,
		Articles:  articles,
		SavedFile: savedFile,
	}
}
