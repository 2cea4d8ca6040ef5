// Package tenants defines the GraphQL types for tenant metadata queries.
package tenants

import (
	"github.com/graphql-go/graphql"

	"github.com/orgstack/tenant-backend/model"
)

// TenantType represents tenant metadata from the registry
var TenantType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Tenant",
	Fields: graphql.Fields{
		"key": &graphql.Field{
			Type: graphql.String,
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				if meta, ok := p.Source.(model.TenantMetadata); ok {
					return meta.Key, nil
				}
				return nil, nil
			},
		},
		"name":               &graphql.Field{Type: graphql.String},
		"collection_name":    &graphql.Field{Type: graphql.String},
		"admin_user_key":     &graphql.Field{Type: graphql.String},
		"connection_details": &graphql.Field{Type: graphql.String},
		"created_at":         &graphql.Field{Type: graphql.DateTime},
		"updated_at":         &graphql.Field{Type: graphql.DateTime},
	},
})
