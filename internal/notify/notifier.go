package notify

import "context"

// Notifier delivers intake notifications to the clinic inbox. The interface
// keeps the email provider swappable without refactoring the services.
type Notifier interface {
	Send(ctx context.Context, subject, body string) error
}
