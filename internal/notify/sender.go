// Package notify abstracts outbound message delivery. Real SMS/email
// providers live behind the Sender seam and are out of scope here.
package notify

import "context"

// Message is one outbound SMS.
type Message struct {
	Phone string
	Body  string
}

// Sender delivers a message to a recipient.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
