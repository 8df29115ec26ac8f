package email

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/resend/resend-go/v2"
)

// ResendSender sends emails via the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
	log    *slog.Logger
}

// NewResendSender creates a sender for the given API key and From address.
// A nil httpClient uses http.DefaultClient.
func NewResendSender(apiKey, from string, httpClient *http.Client, logger *slog.Logger) *ResendSender {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ResendSender{
		client: resend.NewCustomClient(httpClient, apiKey),
		from:   from,
		log:    logger.With("adapter", "resend"),
	}
}

// Send delivers msg and returns the Resend message ID.
func (s *ResendSender) Send(ctx context.Context, msg Message) (string, error) {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("resend send: %w", err)
	}

	s.log.InfoContext(ctx, "email sent",
		slog.String("message_id", sent.Id),
		slog.String("subject", msg.Subject),
	)
	return sent.Id, nil
}
