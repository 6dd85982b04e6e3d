// Package mailer describes outbound e-mail delivery.
//
//go:generate mockgen -package mockmailer -source=interface.go -destination=mock/mockmailer.go *
package mailer

import "context"

// Message is a plain text e-mail to a single recipient.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Mailer delivers messages. Implementations bound every delivery with their
// own timeout and do not retry.
type Mailer interface {
	Send(ctx context.Context, message Message) error
}
