// Package tenants defines the GraphQL queries for tenant metadata.
package tenants

import (
	"context"

	"github.com/arangodb/go-driver/v2/arangodb"
	"github.com/graphql-go/graphql"

	"github.com/orgstack/tenant-backend/database"
	"github.com/orgstack/tenant-backend/model"
)

// GetQueryFields returns the tenant queries to be mounted in the root schema.
func GetQueryFields(db database.DBConnection) graphql.Fields {
	return graphql.Fields{
		"tenant": &graphql.Field{
			Type: TenantType,
			Args: graphql.FieldConfigArgument{
				"name": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				name := p.Args["name"].(string)

				ctx := context.Background()
				query := `
					FOR t IN master_tenants
						FILTER t.name == @name
						LIMIT 1
						RETURN t
				`
				cursor, err := db.Database.Query(ctx, query, &arangodb.QueryOptions{
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
				return meta, nil
			},
		},
		"tenants": &graphql.Field{
			Type: graphql.NewList(TenantType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				ctx := context.Background()
				query := `
					FOR t IN master_tenants
						SORT t.name ASC
						RETURN t
				`
				cursor, err := db.Database.Query(ctx, query, nil)
				if err != nil {
					return nil, err
				}
				defer cursor.Close()

				results := []model.TenantMetadata{}
				for cursor.HasMore() {
					var meta model.TenantMetadata
					if _, err := cursor.ReadDocument(ctx, &meta); err != nil {
						return nil, err
					}
					results = append(results, meta)
				}
				return results, nil
			},
		},
	}
}
