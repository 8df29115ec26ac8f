// Package email delivers transactional mail.
package email

import (
	"context"
)

// Message is a single outgoing email.
type Message struct {
	To      []string
	Subject string
	HTML    string
	Text    string
}

// Sender delivers a Message and returns the provider message ID.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}
