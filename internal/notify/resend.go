package notify

import (
	"context"
	"fmt"

	"clinic-backend/pkg/utils"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// ResendNotifier emails the clinic inbox through Resend.
type ResendNotifier struct {
	client *resend.Client
	from   string
	to     string
	log    *zap.Logger
}

func NewResendNotifier(config utils.NotifyConfig, log *zap.Logger) *ResendNotifier {
	return &ResendNotifier{
		client: resend.NewClient(config.ResendAPIKey),
		from:   config.FromAddress,
		to:     config.ClinicInbox,
		log:    log.With(zap.String("notifier", "resend")),
	}
}

func (n *ResendNotifier) Send(ctx context.Context, subject, body string) error {
	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{n.to},
		Subject: subject,
		Text:    body,
	}

	sent, err := n.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("send notification email: %w", err)
	}

	n.log.Info("Notification email sent",
		zap.String("email_id", sent.Id),
		zap.String("subject", subject),
	)

	return nil
}
