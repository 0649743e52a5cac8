package domain

import (
	"time"

	"github.com/google/uuid"
)

// EmailKind identifies a transactional email template
type EmailKind string

const (
	EmailKindWelcome             EmailKind = "welcome"
	EmailKindBookingConfirmation EmailKind = "booking_confirmation"
	EmailKindBookingCancellation EmailKind = "booking_cancellation"
	EmailKindPaymentReceived     EmailKind = "payment_received"
	EmailKindReviewRequest       EmailKind = "review_request"
	EmailKindTourReminder        EmailKind = "tour_reminder"
	EmailKindStaffInvite         EmailKind = "staff_invite"
	EmailKindPasswordReset       EmailKind = "password_reset"
)

// EmailJobStatus is the delivery state of an outbox entry
type EmailJobStatus string

const (
	EmailJobStatusPending    EmailJobStatus = "pending"
	EmailJobStatusProcessing EmailJobStatus = "processing"
	EmailJobStatusSent       EmailJobStatus = "sent"
	EmailJobStatusFailed     EmailJobStatus = "failed"
)

// EmailJob is one pending outbound email in the outbox. Jobs are enqueued
// by notification call sites and drained by the cron-triggered processor.
type EmailJob struct {
	ID        string                 `json:"id"`
	TenantID  string                 `json:"tenant_id"`
	Kind      EmailKind              `json:"kind"`
	Recipient string                 `json:"recipient"`
	Payload   map[string]interface{} `json:"payload"`
	Status    EmailJobStatus         `json:"status"`
	Attempts  int                    `json:"attempts"`
	LastError string                 `json:"last_error,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	SentAt    *time.Time             `json:"sent_at,omitempty"`
}

// NewEmailJob constructs a pending outbox entry
func NewEmailJob(tenantID string, kind EmailKind, recipient string, payload map[string]interface{}) *EmailJob {
	return &EmailJob{
		ID:        uuid.NewString(),
		TenantID:  tenantID,
		Kind:      kind,
		Recipient: recipient,
		Payload:   payload,
		Status:    EmailJobStatusPending,
		CreatedAt: time.Now().UTC(),
	}
}
