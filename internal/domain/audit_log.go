package domain

import (
	"time"
)

// AuditAction names a state-changing operation
type AuditAction string

const (
	AuditActionCreate  AuditAction = "create"
	AuditActionUpdate  AuditAction = "update"
	AuditActionDelete  AuditAction = "delete"
	AuditActionPublish AuditAction = "publish"
	AuditActionArchive AuditAction = "archive"
)

// AuditLog is an immutable record of who changed what, when, with optional
// before/after snapshots. Entries are only ever inserted, never updated or
// deleted.
type AuditLog struct {
	ID         string                 `json:"id"`
	TenantID   string                 `json:"tenant_id"`
	UserID     *string                `json:"user_id,omitempty"`
	Action     AuditAction            `json:"action"`
	EntityType string                 `json:"entity_type"`
	EntityID   string                 `json:"entity_id"`
	Before     map[string]interface{} `json:"before,omitempty"`
	After      map[string]interface{} `json:"after,omitempty"`
	IPAddress  string                 `json:"ip_address,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}
