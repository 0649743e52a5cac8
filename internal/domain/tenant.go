package domain

import (
	"time"
)

// Tenant represents a tour operator account, the root of data isolation.
// Every other entity in the system is partitioned by tenant ID. Tenants are
// provisioned out of band; this service only reads them.
type Tenant struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Slug          string                 `json:"slug"`
	Domain        string                 `json:"domain,omitempty"`
	LogoURL       string                 `json:"logo_url,omitempty"`
	DefaultLocale string                 `json:"default_locale,omitempty"`
	Settings      map[string]interface{} `json:"settings,omitempty"`
	IsActive      bool                   `json:"is_active"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}
