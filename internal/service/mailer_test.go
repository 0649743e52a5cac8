package service

import (
	"context"
	"testing"

	"github.com/tourbase/tourbase/internal/domain"
	"github.com/tourbase/tourbase/internal/events"
	"github.com/tourbase/tourbase/pkg/logger"
)

func newMailerForTest(jobs *mockEmailJobRepository, sender *spySender) MailerService {
	return NewMailerService(jobs, sender, events.NopPublisher{}, MailerConfig{
		FromAddress: "no-reply@tourbase.io",
		FromName:    "Tourbase",
		BatchSize:   10,
	}, logger.NewNop())
}

func welcomePayload() map[string]interface{} {
	return map[string]interface{}{
		"tenant_name":   "Andes Trails",
		"customer_name": "Maya",
	}
}

func TestMailer_ProcessPending_EmptyQueue(t *testing.T) {
	svc := newMailerForTest(&mockEmailJobRepository{}, newSpySender())

	processed, err := svc.ProcessPending(context.Background())
	if err != nil {
		t.Fatalf("ProcessPending failed: %v", err)
	}
	if processed != 0 {
		t.Errorf("processed = %d, want 0 for an empty queue", processed)
	}
}

func TestMailer_ProcessPending_DrainsAndCounts(t *testing.T) {
	jobs := &mockEmailJobRepository{}
	sender := newSpySender()
	svc := newMailerForTest(jobs, sender)
	ctx := context.Background()

	for _, rcpt := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		if err := svc.Enqueue(ctx, "tenant-a", domain.EmailKindWelcome, rcpt, welcomePayload()); err != nil {
			t.Fatalf("Enqueue failed: %v", err)
		}
	}

	processed, err := svc.ProcessPending(ctx)
	if err != nil {
		t.Fatalf("ProcessPending failed: %v", err)
	}
	if processed != 3 {
		t.Errorf("processed = %d, want 3", processed)
	}
	if len(sender.sent) != 3 {
		t.Errorf("sender delivered %d, want 3", len(sender.sent))
	}
	if sender.sent[0].Subject != "Welcome to Andes Trails" {
		t.Errorf("subject = %q, want rendered welcome subject", sender.sent[0].Subject)
	}

	// A second drain finds nothing pending
	processed, err = svc.ProcessPending(ctx)
	if err != nil {
		t.Fatalf("second ProcessPending failed: %v", err)
	}
	if processed != 0 {
		t.Errorf("second drain processed = %d, want 0", processed)
	}
}

func TestMailer_ProcessPending_FailedSendSkippedNotCounted(t *testing.T) {
	jobs := &mockEmailJobRepository{}
	sender := newSpySender()
	sender.failAddresses["bad@example.com"] = true
	svc := newMailerForTest(jobs, sender)
	ctx := context.Background()

	_ = svc.Enqueue(ctx, "tenant-a", domain.EmailKindWelcome, "good@example.com", welcomePayload())
	_ = svc.Enqueue(ctx, "tenant-a", domain.EmailKindWelcome, "bad@example.com", welcomePayload())

	processed, err := svc.ProcessPending(ctx)
	if err != nil {
		t.Fatalf("ProcessPending failed: %v", err)
	}
	if processed != 1 {
		t.Errorf("processed = %d, want 1 (failed send not counted)", processed)
	}

	var badID string
	for _, j := range jobs.jobs {
		if j.Recipient == "bad@example.com" {
			badID = j.ID
		}
	}
	if got := jobs.statusOf(badID); got != domain.EmailJobStatusFailed {
		t.Errorf("failed job status = %s, want failed", got)
	}
}

func TestMailer_ProcessPending_UnrenderablePayloadMarkedFailed(t *testing.T) {
	jobs := &mockEmailJobRepository{}
	svc := newMailerForTest(jobs, newSpySender())
	ctx := context.Background()

	_ = svc.Enqueue(ctx, "tenant-a", domain.EmailKind("no_such_template"), "x@example.com", welcomePayload())

	processed, err := svc.ProcessPending(ctx)
	if err != nil {
		t.Fatalf("ProcessPending failed: %v", err)
	}
	if processed != 0 {
		t.Errorf("processed = %d, want 0", processed)
	}
	if jobs.jobs[0].Status != domain.EmailJobStatusFailed {
		t.Errorf("job status = %s, want failed", jobs.jobs[0].Status)
	}
	if jobs.jobs[0].LastError == "" {
		t.Error("expected last_error to record the render failure")
	}
}

func TestMailer_ProcessPending_RepositoryFailureAborts(t *testing.T) {
	svc := newMailerForTest(&mockEmailJobRepository{claimErr: errOutboxUnreadable}, newSpySender())

	if _, err := svc.ProcessPending(context.Background()); err == nil {
		t.Error("ProcessPending succeeded despite outbox failure, want error")
	}
}

func TestMailer_Enqueue_RequiresRecipient(t *testing.T) {
	svc := newMailerForTest(&mockEmailJobRepository{}, newSpySender())

	if err := svc.Enqueue(context.Background(), "tenant-a", domain.EmailKindWelcome, "", welcomePayload()); err == nil {
		t.Error("Enqueue succeeded with empty recipient, want error")
	}
}
