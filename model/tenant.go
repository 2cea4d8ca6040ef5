// Package model defines the data structures for tenant management.
package model

import "time"

// TenantMetadata represents a tenant record stored in master_tenants.
// CollectionName is always derivable from Name via util.CollectionNameForTenant
// and is recomputed on rename rather than trusted as free-form state.
type TenantMetadata struct {
	Key               string    `json:"_key,omitempty"`
	Name              string    `json:"name"`
	CollectionName    string    `json:"collection_name"`
	AdminUserKey      string    `json:"admin_user_key"`
	ConnectionDetails string    `json:"connection_details"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// NewTenantMetadata creates tenant metadata pointing at its partition and admin.
// ConnectionDetails is a placeholder for future multi-store routing.
func NewTenantMetadata(name, collectionName, adminUserKey string) *TenantMetadata {
	now := time.Now().UTC()
	return &TenantMetadata{
		Name:              name,
		CollectionName:    collectionName,
		AdminUserKey:      adminUserKey,
		ConnectionDetails: "single_arango_instance",
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
