package ports

import "context"

// Mailer sends transactional email. Implementations talk to an external
// provider; the outbox dispatcher is the only caller.
type Mailer interface {
	Send(ctx context.Context, toEmail, toName, subject, body string) error
}
