package service

import "errors"

// Shared sentinel failures for exercising error propagation in tests
var (
	errAuditDown        = errors.New("audit store unavailable")
	errDeliveryRefused  = errors.New("delivery provider refused message")
	errOutboxUnreadable = errors.New("outbox unavailable")
)
