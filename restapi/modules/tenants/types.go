// Package tenants provides REST handlers for the tenant lifecycle operations.
package tenants

// CreateTenantRequest defines the body for tenant creation
type CreateTenantRequest struct {
	TenantName string `json:"tenant_name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

// RenameTenantRequest defines the body for a tenant rename
type RenameTenantRequest struct {
	TenantName    string `json:"tenant_name"`
	NewTenantName string `json:"new_tenant_name"`
}

// UpdateCredentialsRequest defines the body for an admin credentials update
type UpdateCredentialsRequest struct {
	TenantName string `json:"tenant_name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}
