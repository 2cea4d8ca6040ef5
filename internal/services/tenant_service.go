// Package services contains the tenant lifecycle manager, which orchestrates
// the identity store, tenant registry, and partition provisioner.
package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/orgstack/tenant-backend/internal/errs"
	"github.com/orgstack/tenant-backend/model"
	"github.com/orgstack/tenant-backend/util"
)

// IdentityStore persists administrator records
type IdentityStore interface {
	FindByEmail(ctx context.Context, email string) (*model.AdminUser, error)
	FindByKey(ctx context.Context, key string) (*model.AdminUser, error)
	FindByTenant(ctx context.Context, tenantName string) ([]model.AdminUser, error)
	Insert(ctx context.Context, admin *model.AdminUser) (*model.AdminUser, error)
	Update(ctx context.Context, admin *model.AdminUser) error
	Delete(ctx context.Context, key string) error
}

// TenantRegistry persists tenant metadata records
type TenantRegistry interface {
	FindByName(ctx context.Context, name string) (*model.TenantMetadata, error)
	Insert(ctx context.Context, meta *model.TenantMetadata) (*model.TenantMetadata, error)
	Update(ctx context.Context, meta *model.TenantMetadata) error
	Delete(ctx context.Context, key string) error
}

// PartitionProvisioner creates, copies, and drops named partitions in the
// shared store
type PartitionProvisioner interface {
	Exists(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, name string) error
	InsertOne(ctx context.Context, name string, record map[string]interface{}) error
	InsertMany(ctx context.Context, name string, records []map[string]interface{}) error
	FindAll(ctx context.Context, name string) ([]map[string]interface{}, error)
	Drop(ctx context.Context, name string) error
	EnsureIndex(ctx context.Context, name, field string) error
}

// PasswordHasher is the one-way hash-and-verify capability
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

// TenantService is the sole writer of tenant metadata and the sole
// orchestrator of cross-entity updates. Uniqueness of tenant names and admin
// emails is enforced by lookup immediately before acting, not atomically with
// the write; concurrent creates for the same name or email can race.
type TenantService struct {
	admins     IdentityStore
	tenants    TenantRegistry
	partitions PartitionProvisioner
	hasher     PasswordHasher
	logger     *zap.Logger
}

// NewTenantService wires the lifecycle manager to its capabilities
func NewTenantService(admins IdentityStore, tenants TenantRegistry, partitions PartitionProvisioner, hasher PasswordHasher, logger *zap.Logger) *TenantService {
	return &TenantService{
		admins:     admins,
		tenants:    tenants,
		partitions: partitions,
		hasher:     hasher,
		logger:     logger,
	}
}

// schemaTemplateRecord marks a fresh partition as non-empty and documents the
// expected record shape.
func schemaTemplateRecord(now time.Time) map[string]interface{} {
	return map[string]interface{}{
		"template": true,
		"fields": map[string]string{
			"name":      "string",
			"email":     "string",
			"position":  "string",
			"salary":    "number",
			"createdAt": "date",
			"updatedAt": "date",
		},
		"createdAt":   now,
		"description": "This is a template document describing the tenant 'Employee' schema. Remove if needed.",
	}
}

// renameTemplateRecord seeds a rename target whose source partition was empty
func renameTemplateRecord(currentName, newName string, now time.Time) map[string]interface{} {
	record := schemaTemplateRecord(now)
	record["description"] = "Template added during rename from " + currentName + " to " + newName
	return record
}

// adminProfileRecord is the denormalized admin document placed inside the
// tenant partition. It never carries the password hash.
func adminProfileRecord(admin *model.AdminUser, tenantName string, now time.Time) map[string]interface{} {
	return map[string]interface{}{
		"type":       "admin_profile",
		"adminId":    admin.Key,
		"adminEmail": admin.Email,
		"tenantName": tenantName,
		"createdAt":  now,
	}
}

// Create provisions a new tenant: administrator record, seeded partition,
// and tenant metadata, in that order. The three writes share no transaction;
// a failure after the administrator write leaves it in place.
func (s *TenantService) Create(ctx context.Context, tenantName, adminEmail, adminPassword string) (*model.TenantMetadata, error) {
	tenantName = strings.TrimSpace(tenantName)
	adminEmail = strings.TrimSpace(adminEmail)

	if tenantName == "" {
		return nil, errs.Invalid("tenant name required")
	}
	if adminEmail == "" {
		return nil, errs.Invalid("admin email required")
	}
	if util.IsEmpty(adminPassword) {
		return nil, errs.Invalid("admin password required")
	}

	existing, err := s.admins.FindByEmail(ctx, adminEmail)
	if err != nil {
		return nil, errs.Internal("lookup admin by email", err)
	}
	if existing != nil {
		return nil, errs.Conflict("admin email already used")
	}

	meta, err := s.tenants.FindByName(ctx, tenantName)
	if err != nil {
		return nil, errs.Internal("lookup tenant by name", err)
	}
	if meta != nil {
		return nil, errs.Conflict("tenant already exists")
	}

	hash, err := s.hasher.Hash(adminPassword)
	if err != nil {
		return nil, errs.Internal("hash admin password", err)
	}

	admin, err := s.admins.Insert(ctx, model.NewAdminUser(adminEmail, hash, tenantName))
	if err != nil {
		return nil, errs.Internal("insert admin", err)
	}

	collName := util.CollectionNameForTenant(tenantName)
	exists, err := s.partitions.Exists(ctx, collName)
	if err != nil {
		return nil, errs.Internal("check partition", err)
	}

	if !exists {
		if err := s.partitions.Create(ctx, collName); err != nil {
			return nil, errs.Internal("create partition", err)
		}

		now := time.Now().UTC()
		if err := s.partitions.InsertOne(ctx, collName, schemaTemplateRecord(now)); err != nil {
			return nil, errs.Internal("seed schema template", err)
		}
		if err := s.partitions.InsertOne(ctx, collName, adminProfileRecord(admin, tenantName, now)); err != nil {
			return nil, errs.Internal("seed admin profile", err)
		}

		// Best effort: an index failure must not block tenant creation
		if err := s.partitions.EnsureIndex(ctx, collName, "adminEmail"); err != nil {
			s.logger.Warn("could not create adminEmail index on partition",
				zap.String("partition", collName), zap.Error(err))
		}
	}

	saved, err := s.tenants.Insert(ctx, model.NewTenantMetadata(tenantName, collName, admin.Key))
	if err != nil {
		return nil, errs.Internal("insert tenant metadata", err)
	}
	return saved, nil
}

// GetByName returns the metadata for a tenant name
func (s *TenantService) GetByName(ctx context.Context, tenantName string) (*model.TenantMetadata, error) {
	meta, err := s.tenants.FindByName(ctx, tenantName)
	if err != nil {
		return nil, errs.Internal("lookup tenant by name", err)
	}
	if meta == nil {
		return nil, errs.NotFound("tenant not found: %s", tenantName)
	}
	return meta, nil
}

// Rename moves a tenant to a new name: the partition is copied (not moved)
// to the identifier derived from the new name, administrators are re-bound,
// and the metadata is updated. The old partition is retained as a recovery
// path. Tokens issued under the old name stop authorizing once the
// administrators are re-bound.
func (s *TenantService) Rename(ctx context.Context, currentName, newName string) (*model.TenantMetadata, error) {
	currentName = strings.TrimSpace(currentName)
	newName = strings.TrimSpace(newName)

	if currentName == "" || newName == "" {
		return nil, errs.Invalid("current and new tenant names required")
	}

	meta, err := s.tenants.FindByName(ctx, currentName)
	if err != nil {
		return nil, errs.Internal("lookup tenant by name", err)
	}
	if meta == nil {
		return nil, errs.NotFound("tenant not found: %s", currentName)
	}

	target, err := s.tenants.FindByName(ctx, newName)
	if err != nil {
		return nil, errs.Internal("lookup tenant by name", err)
	}
	if target != nil {
		return nil, errs.Conflict("target tenant name already exists: %s", newName)
	}

	oldColl := util.CollectionNameForTenant(currentName)
	newColl := util.CollectionNameForTenant(newName)

	if err := s.partitions.Create(ctx, newColl); err != nil {
		return nil, errs.Internal("create partition", err)
	}

	// The old partition can be gone already: two tenant names can derive the
	// same partition identifier, and deleting one drops it. A missing old
	// partition reads as empty.
	var docs []map[string]interface{}
	oldExists, err := s.partitions.Exists(ctx, oldColl)
	if err != nil {
		return nil, errs.Internal("check partition", err)
	}
	if oldExists {
		docs, err = s.partitions.FindAll(ctx, oldColl)
		if err != nil {
			return nil, errs.Internal("read partition", err)
		}
	}
	if len(docs) > 0 {
		if err := s.partitions.InsertMany(ctx, newColl, docs); err != nil {
			return nil, errs.Internal("copy partition", err)
		}
	} else {
		// Never leave the new partition empty
		if err := s.partitions.InsertOne(ctx, newColl, renameTemplateRecord(currentName, newName, time.Now().UTC())); err != nil {
			return nil, errs.Internal("seed renamed partition", err)
		}
	}

	// Re-bind every matching administrator. Usually exactly one, but zero or
	// several must not fail the rename.
	admins, err := s.admins.FindByTenant(ctx, currentName)
	if err != nil {
		return nil, errs.Internal("lookup admins by tenant", err)
	}
	for i := range admins {
		admins[i].TenantName = newName
		admins[i].UpdatedAt = time.Now().UTC()
		if err := s.admins.Update(ctx, &admins[i]); err != nil {
			return nil, errs.Internal("update admin tenant", err)
		}
	}

	meta.Name = newName
	meta.CollectionName = newColl
	meta.UpdatedAt = time.Now().UTC()
	if err := s.tenants.Update(ctx, meta); err != nil {
		return nil, errs.Internal("update tenant metadata", err)
	}

	s.logger.Info("tenant renamed",
		zap.String("from", currentName),
		zap.String("to", newName),
		zap.String("old_partition", oldColl),
		zap.String("new_partition", newColl),
		zap.Int("copied_records", len(docs)))

	return meta, nil
}

// UpdateCredentials replaces the administrator's email and password hash in
// place. Tenant identity is untouched; the unchanged metadata is returned.
func (s *TenantService) UpdateCredentials(ctx context.Context, tenantName, newEmail, newPassword string) (*model.TenantMetadata, error) {
	tenantName = strings.TrimSpace(tenantName)
	newEmail = strings.TrimSpace(newEmail)

	if tenantName == "" {
		return nil, errs.Invalid("tenant name required")
	}
	if newEmail == "" {
		return nil, errs.Invalid("email required")
	}
	if util.IsEmpty(newPassword) {
		return nil, errs.Invalid("password required")
	}

	meta, err := s.tenants.FindByName(ctx, tenantName)
	if err != nil {
		return nil, errs.Internal("lookup tenant by name", err)
	}
	if meta == nil {
		return nil, errs.NotFound("tenant not found: %s", tenantName)
	}

	admins, err := s.admins.FindByTenant(ctx, tenantName)
	if err != nil {
		return nil, errs.Internal("lookup admins by tenant", err)
	}
	if len(admins) == 0 {
		return nil, errs.NotFound("admin not found for tenant: %s", tenantName)
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return nil, errs.Internal("hash admin password", err)
	}

	admin := admins[0]
	admin.Email = newEmail
	admin.PasswordHash = hash
	admin.UpdatedAt = time.Now().UTC()
	if err := s.admins.Update(ctx, &admin); err != nil {
		return nil, errs.Internal("update admin", err)
	}

	return meta, nil
}

// Delete tears down a tenant. Partition drop runs first, then administrator
// deletion, then metadata deletion, so a crash mid-sequence leaves metadata
// pointing at already-cleaned-up state rather than orphaning a live
// partition with no owner.
func (s *TenantService) Delete(ctx context.Context, tenantName string) error {
	meta, err := s.tenants.FindByName(ctx, tenantName)
	if err != nil {
		return errs.Internal("lookup tenant by name", err)
	}
	if meta == nil {
		return errs.NotFound("tenant not found: %s", tenantName)
	}

	exists, err := s.partitions.Exists(ctx, meta.CollectionName)
	if err != nil {
		return errs.Internal("check partition", err)
	}
	if exists {
		if err := s.partitions.Drop(ctx, meta.CollectionName); err != nil {
			return errs.Internal("drop partition", err)
		}
	}

	admins, err := s.admins.FindByTenant(ctx, tenantName)
	if err != nil {
		return errs.Internal("lookup admins by tenant", err)
	}
	for _, admin := range admins {
		if err := s.admins.Delete(ctx, admin.Key); err != nil {
			return errs.Internal("delete admin", err)
		}
	}

	if err := s.tenants.Delete(ctx, meta.Key); err != nil {
		return errs.Internal("delete tenant metadata", err)
	}

	s.logger.Info("tenant deleted",
		zap.String("tenant", tenantName),
		zap.String("partition", meta.CollectionName),
		zap.Int("admins_removed", len(admins)))

	return nil
}
