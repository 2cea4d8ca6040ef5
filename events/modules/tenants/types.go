// Package tenant defines types for Kafka events describing tenant lifecycle changes.
package tenant

import "time"

// TenantLifecycleEvent represents a tenant lifecycle change published to Kafka.
// EventType is one of tenant.created, tenant.renamed, tenant.deleted.
type TenantLifecycleEvent struct {
	EventType     string    `json:"event_type"`
	EventID       string    `json:"event_id"`
	EventTime     time.Time `json:"event_time"`
	SchemaVersion string    `json:"schema_version"`

	TenantName     string `json:"tenant_name"`
	PreviousName   string `json:"previous_name,omitempty"`
	CollectionName string `json:"collection_name"`
	AdminUserKey   string `json:"admin_user_key,omitempty"`
}
