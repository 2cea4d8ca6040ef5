package store

import (
	"context"

	"github.com/arangodb/go-driver/v2/arangodb"

	"github.com/orgstack/tenant-backend/database"
)

// PartitionStore manages the dynamically named per-tenant collections in the
// shared store. Operations are individually atomic at single-document
// granularity only; no cross-call atomicity is provided.
type PartitionStore struct {
	db database.DBConnection
}

// NewPartitionStore returns a PartitionStore backed by the shared database
func NewPartitionStore(db database.DBConnection) *PartitionStore {
	return &PartitionStore{db: db}
}

// Exists reports whether the partition collection is present
func (s *PartitionStore) Exists(ctx context.Context, name string) (bool, error) {
	return s.db.Database.CollectionExists(ctx, name)
}

// Create creates the partition collection. No-op if it already exists.
func (s *PartitionStore) Create(ctx context.Context, name string) error {
	exists, err := s.db.Database.CollectionExists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	_, err = s.db.Database.CreateCollection(ctx, name, nil)
	return err
}

// InsertOne stores a single document in the partition
func (s *PartitionStore) InsertOne(ctx context.Context, name string, record map[string]interface{}) error {
	query := `INSERT @doc INTO @@col`
	cursor, err := s.db.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{
			"@col": name,
			"doc":  record,
		},
	})
	if err != nil {
		return err
	}
	return cursor.Close()
}

// InsertMany stores documents in the partition. Documents carrying a _key
// that already exists in the target are replaced, which makes re-copying a
// partition (rename there and back) safe.
func (s *PartitionStore) InsertMany(ctx context.Context, name string, records []map[string]interface{}) error {
	if len(records) == 0 {
		return nil
	}
	query := `
		FOR d IN @docs
			INSERT d INTO @@col OPTIONS { overwriteMode: "replace" }
	`
	cursor, err := s.db.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{
			"@col": name,
			"docs": records,
		},
	})
	if err != nil {
		return err
	}
	return cursor.Close()
}

// FindAll returns every document in the partition with the system _id and
// _rev fields stripped so the result can be inserted elsewhere verbatim.
// The whole partition is read into memory; callers treat this as a
// long-running operation for large partitions.
func (s *PartitionStore) FindAll(ctx context.Context, name string) ([]map[string]interface{}, error) {
	query := `
		FOR d IN @@col
			RETURN UNSET(d, "_id", "_rev")
	`
	cursor, err := s.db.Database.Query(ctx, query, &arangodb.QueryOptions{
		BindVars: map[string]interface{}{"@col": name},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close()

	docs := []map[string]interface{}{}
	for cursor.HasMore() {
		var doc map[string]interface{}
		if _, err := cursor.ReadDocument(ctx, &doc); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Drop removes the partition collection and all of its documents
func (s *PartitionStore) Drop(ctx context.Context, name string) error {
	var options arangodb.GetCollectionOptions
	col, err := s.db.Database.GetCollection(ctx, name, &options)
	if err != nil {
		return err
	}
	return col.Remove(ctx)
}

// EnsureIndex creates a persistent index on the given field. Callers treat
// failures as best-effort and must not escalate them.
func (s *PartitionStore) EnsureIndex(ctx context.Context, name, field string) error {
	var options arangodb.GetCollectionOptions
	col, err := s.db.Database.GetCollection(ctx, name, &options)
	if err != nil {
		return err
	}

	False := false
	indexOptions := arangodb.CreatePersistentIndexOptions{
		Unique: &False,
		Sparse: &False,
		Name:   name + "_" + field,
	}
	_, _, err = col.EnsurePersistentIndex(ctx, []string{field}, &indexOptions)
	return err
}
