package notify

import (
	"context"

	"go.uber.org/zap"
)

// LogNotifier logs instead of emailing. Used when no Resend API key is
// configured.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{
		log: log.With(zap.String("notifier", "log")),
	}
}

func (n *LogNotifier) Send(ctx context.Context, subject, body string) error {
	n.log.Info("Notification (dev mode, not emailed)",
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}
