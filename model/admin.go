// Package model provides data models for the tenant backend.
package model

import "time"

// AdminUser represents a tenant administrator stored in master_admins.
// The password hash is bcrypt and is never copied into tenant partitions.
type AdminUser struct {
	Key          string    `json:"_key,omitempty"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash,omitempty"`
	TenantName   string    `json:"tenant_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewAdminUser creates an administrator bound to a tenant
func NewAdminUser(email, passwordHash, tenantName string) *AdminUser {
	now := time.Now().UTC()
	return &AdminUser{
		Email:        email,
		PasswordHash: passwordHash,
		TenantName:   tenantName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
