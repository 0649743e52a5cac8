package service

import (
	"context"
	"fmt"

	"github.com/tourbase/tourbase/internal/domain"
	"github.com/tourbase/tourbase/internal/events"
	"github.com/tourbase/tourbase/internal/mail"
	"github.com/tourbase/tourbase/internal/repository"
	"github.com/tourbase/tourbase/pkg/logger"
	"github.com/tourbase/tourbase/pkg/telemetry"
	"go.uber.org/zap"
)

// defaultBatchSize bounds one drain when no batch size is configured
const defaultBatchSize = 50

// MailerService owns the transactional email outbox: notification call
// sites enqueue, the cron-triggered drain renders and delivers.
type MailerService interface {
	// Enqueue records a pending outbound email
	Enqueue(ctx context.Context, tenantID string, kind domain.EmailKind, recipient string, payload map[string]interface{}) error
	// ProcessPending drains pending jobs and returns the number delivered.
	// An empty outbox is a no-op returning 0.
	ProcessPending(ctx context.Context) (int, error)
}

// MailerConfig holds mailer settings
type MailerConfig struct {
	FromAddress string
	FromName    string
	BatchSize   int
}

type mailerService struct {
	jobs   repository.EmailJobRepository
	sender mail.Sender
	events events.Publisher
	cfg    MailerConfig
	log    *logger.Logger
}

// NewMailerService creates a new MailerService
func NewMailerService(
	jobs repository.EmailJobRepository,
	sender mail.Sender,
	publisher events.Publisher,
	cfg MailerConfig,
	log *logger.Logger,
) MailerService {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	return &mailerService{
		jobs:   jobs,
		sender: sender,
		events: publisher,
		cfg:    cfg,
		log:    log.Named("mailer"),
	}
}

// Enqueue records a pending outbound email
func (s *mailerService) Enqueue(ctx context.Context, tenantID string, kind domain.EmailKind, recipient string, payload map[string]interface{}) error {
	if recipient == "" {
		return fmt.Errorf("email job requires a recipient")
	}
	job := domain.NewEmailJob(tenantID, kind, recipient, payload)
	if err := s.jobs.Enqueue(ctx, job); err != nil {
		return fmt.Errorf("failed to enqueue email job: %w", err)
	}
	return nil
}

// ProcessPending drains pending jobs and returns the number delivered.
// A job that fails to render or send is marked failed and skipped; the
// drain continues so one bad job cannot wedge the queue. Repository
// failures abort the drain.
func (s *mailerService) ProcessPending(ctx context.Context) (int, error) {
	ctx, span := telemetry.StartSpan(ctx, "MailerService.ProcessPending")
	defer span.End()

	claimed, err := s.jobs.ClaimPending(ctx, s.cfg.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to claim pending email jobs: %w", err)
	}

	processed := 0
	for _, job := range claimed {
		if err := s.deliver(ctx, job); err != nil {
			s.log.Warn("email delivery failed",
				zap.String("job_id", job.ID),
				zap.String("kind", string(job.Kind)),
				zap.Error(err),
			)
			if markErr := s.jobs.MarkFailed(ctx, job.ID, err.Error()); markErr != nil {
				return processed, fmt.Errorf("failed to mark email job failed: %w", markErr)
			}
			continue
		}

		if err := s.jobs.MarkSent(ctx, job.ID); err != nil {
			return processed, fmt.Errorf("failed to mark email job sent: %w", err)
		}
		processed++

		if err := s.events.Publish(ctx, events.TopicEmails, events.Event{
			Type:     "email.sent",
			TenantID: job.TenantID,
			EntityID: job.ID,
			Payload:  map[string]interface{}{"kind": job.Kind},
		}); err != nil {
			s.log.Warn("failed to publish email event", zap.Error(err))
		}
	}

	return processed, nil
}

func (s *mailerService) deliver(ctx context.Context, job *domain.EmailJob) error {
	rendered, err := mail.Render(job.Kind, job.Payload)
	if err != nil {
		return err
	}
	return s.sender.Send(ctx, mail.OutboundEmail{
		From:      s.cfg.FromAddress,
		FromName:  s.cfg.FromName,
		Recipient: job.Recipient,
		Email:     rendered,
	})
}
