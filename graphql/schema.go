// Package graphql assembles the root query schema for the tenant backend.
package graphql

import (
	gql "github.com/graphql-go/graphql"

	"github.com/orgstack/tenant-backend/database"
	"github.com/orgstack/tenant-backend/graphql/modules/tenants"
)

// CreateSchema builds the root schema from the per-module query fields
func CreateSchema(db database.DBConnection) (gql.Schema, error) {
	fields := gql.Fields{}

	for name, field := range tenants.GetQueryFields(db) {
		fields[name] = field
	}

	rootQuery := gql.NewObject(gql.ObjectConfig{
		Name:   "Query",
		Fields: fields,
	})

	return gql.NewSchema(gql.SchemaConfig{Query: rootQuery})
}
