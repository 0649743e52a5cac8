package mail

import (
	"context"

	"github.com/tourbase/tourbase/pkg/logger"
	"go.uber.org/zap"
)

// OutboundEmail is a rendered email addressed for delivery
type OutboundEmail struct {
	From      string
	FromName  string
	Recipient string
	Email
}

// Sender delivers rendered emails. The production implementation talks to
// the managed delivery provider; tests and local development use LogSender.
type Sender interface {
	Send(ctx context.Context, email OutboundEmail) error
}

// LogSender writes outbound emails to the log instead of delivering them.
// Used in development and as the default when no provider is configured.
type LogSender struct {
	log *logger.Logger
}

// NewLogSender creates a LogSender
func NewLogSender(log *logger.Logger) *LogSender {
	return &LogSender{log: log.Named("mail")}
}

// Send logs the email and reports success
func (s *LogSender) Send(ctx context.Context, email OutboundEmail) error {
	s.log.WithContext(ctx).Info("outbound email",
		zap.String("recipient", email.Recipient),
		zap.String("subject", email.Subject),
	)
	return nil
}
