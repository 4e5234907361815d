package email

import "context"

// SendOptions describes a single outbound email
type SendOptions struct {
	To      string
	ToName  string
	Subject string
	Text    string
	HTML    string
}

// SendResult reports the outcome of a send attempt
type SendResult struct {
	Success   bool
	MessageID string
	Error     string
}

// Sender delivers transactional email. Implementations must not panic
// across the boundary; delivery failures come back in the result or error.
type Sender interface {
	Send(ctx context.Context, opts SendOptions) (*SendResult, error)
}
