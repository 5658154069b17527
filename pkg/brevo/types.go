package brevo

// Party is a named email address.
type Party struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

// SendEmailRequest is the POST /v3/smtp/email payload.
type SendEmailRequest struct {
	Sender      Party   `json:"sender"`
	To          []Party `json:"to"`
	Subject     string  `json:"subject"`
	HTMLContent string  `json:"htmlContent"`
}
