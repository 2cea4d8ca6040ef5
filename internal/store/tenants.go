package store

import (
	"context"

	"github.com/arangodb/go-driver/v2/arangodb"

	"github.com/orgstack/tenant-backend/database"
	"github.com/orgstack/tenant-backend/model"
)

// TenantStore persists tenant metadata in the master_tenants collection
type TenantStore struct {
	db database.DBConnection
}

// NewTenantStore returns a TenantStore backed by the shared database
func NewTenantStore(db database.DBConnection) *TenantStore {
	return &TenantStore{db: db}
}

// FindByName returns the metadata for a tenant name, or nil if absent
func (s *TenantStore) FindByName(ctx context.Context, name string) (*model.TenantMetadata, error) {
	query := `
		FOR t IN master_tenants
			FILTER t.name == @name
			LIMIT 1
			RETURN t
	`
	cursor, err := s.db.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{"name": name},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	if !cursor.HasMore() {
		return nil, nil
	}

	var meta model.TenantMetadata
	if _, err := cursor.ReadDocument(ctx, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// Insert stores new tenant metadata and returns it with the assigned key
func (s *TenantStore) Insert(ctx context.Context, meta *model.TenantMetadata) (*model.TenantMetadata, error) {
	query := `INSERT @doc INTO master_tenants RETURN NEW`
	cursor, err := s.db.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{"doc": meta},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	var saved model.TenantMetadata
	if _, err := cursor.ReadDocument(ctx, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// Update overwrites the mutable fields of existing tenant metadata
func (s *TenantStore) Update(ctx context.Context, meta *model.TenantMetadata) error {
	query := `
		UPDATE @key WITH {
			name: @name,
			collection_name: @collectionName,
			updated_at: @updatedAt
		} IN master_tenants
	`
	cursor, err := s.db.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{
			"key":            meta.Key,
			"name":           meta.Name,
			"collectionName": meta.CollectionName,
			"updatedAt":      meta.UpdatedAt,
		},
	})
	if err != nil {
		return err
	}
	return cursor.Close()
}

// Delete removes tenant metadata by key
func (s *TenantStore) Delete(ctx context.Context, key string) error {
	query := `REMOVE @key IN master_tenants`
	cursor, err := s.db.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{"key": key},
	})
	if err != nil {
		return err
	}
	return cursor.Close()
}
