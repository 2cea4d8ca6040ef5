// Package store provides the ArangoDB-backed implementations of the identity
// store, tenant registry, and partition provisioner capabilities.
package store

import (
	"context"

	"github.com/arangodb/go-driver/v2/arangodb"

	"github.com/orgstack/tenant-backend/database"
	"github.com/orgstack/tenant-backend/model"
)

// AdminStore persists administrator records in the master_admins collection
type AdminStore struct {
	db database.DBConnection
}

// NewAdminStore returns an AdminStore backed by the shared database
func NewAdminStore(db database.DBConnection) *AdminStore {
	return &AdminStore{db: db}
}

// FindByEmail returns the administrator with the given email, or nil if absent
func (s *AdminStore) FindByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	query := `
		FOR a IN master_admins
			FILTER a.email == @email
			LIMIT 1
			RETURN a
	`
	cursor, err := s.db.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{"email": email},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	if !cursor.HasMore() {
		return nil, nil
	}

	var admin model.AdminUser
	if _, err := cursor.ReadDocument(ctx, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// FindByKey returns the administrator with the given document key, or nil if absent
func (s *AdminStore) FindByKey(ctx context.Context, key string) (*model.AdminUser, error) {
	query := `
		FOR a IN master_admins
			FILTER a._key == @key
			LIMIT 1
			RETURN a
	`
	cursor, err := s.db.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{"key": key},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	if !cursor.HasMore() {
		return nil, nil
	}

	var admin model.AdminUser
	if _, err := cursor.ReadDocument(ctx, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// FindByTenant returns every administrator whose tenant assignment matches.
// Zero matches yields an empty slice, not an error.
func (s *AdminStore) FindByTenant(ctx context.Context, tenantName string) ([]model.AdminUser, error) {
	query := `
		FOR a IN master_admins
			FILTER a.tenant_name == @tenant
			RETURN a
	`
	cursor, err := s.db.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{"tenant": tenantName},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	admins := []model.AdminUser{}
	for cursor.HasMore() {
		var admin model.AdminUser
		if _, err := cursor.ReadDocument(ctx, &admin); err != nil {
			return nil, err
		}
		admins = append(admins, admin)
	}
	return admins, nil
}

// Insert stores a new administrator and returns it with the assigned key
func (s *AdminStore) Insert(ctx context.Context, admin *model.AdminUser) (*model.AdminUser, error) {
	query := `INSERT @doc INTO master_admins RETURN NEW`
	cursor, err := s.db.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{"doc": admin},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	var saved model.AdminUser
	if _, err := cursor.ReadDocument(ctx, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// Update overwrites the mutable fields of an existing administrator
func (s *AdminStore) Update(ctx context.Context, admin *model.AdminUser) error {
	query := `
		UPDATE @key WITH {
			email: @email,
			password_hash: @passwordHash,
			tenant_name: @tenantName,
			updated_at: @updatedAt
		} IN master_admins
	`
	cursor, err := s.db.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{
			"key":          admin.Key,
			"email":        admin.Email,
			"passwordHash": admin.PasswordHash,
			"tenantName":   admin.TenantName,
			"updatedAt":    admin.UpdatedAt,
		},
	})
	if err != nil {
		return err
	}
	return cursor.Close()
}

// Delete removes an administrator by key
func (s *AdminStore) Delete(ctx context.Context, key string) error {
	query := `REMOVE @key IN master_admins`
	cursor, err := s.db.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{"key": key},
	})
	if err != nil {
		return err
	}
	return cursor.Close()
}
