package models

// Message is a rendered reminder email.
type Message struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}
