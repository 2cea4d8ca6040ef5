// Package restapi provides the main router and initialization for REST API endpoints.
package restapi

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	tenantevents "github.com/orgstack/tenant-backend/events/modules/tenants"
	"github.com/orgstack/tenant-backend/internal/services"
	"github.com/orgstack/tenant-backend/restapi/modules/auth"
	"github.com/orgstack/tenant-backend/restapi/modules/tenants"
)

// Deps bundles everything the route tree needs
type Deps struct {
	Tenants *services.TenantService
	Admins  services.IdentityStore
	Tokens  *auth.TokenService
	Guard   *auth.Guard
	Events  *tenantevents.TenantProducer
	Schema  graphql.Schema
}

// SetupRoutes configures all REST API routes and the GraphQL endpoint
func SetupRoutes(app *fiber.App, deps Deps) {

	// API Group /api/v1
	api := app.Group("/api/v1")

	// GraphQL Route - read-only tenant queries
	api.Post("/graphql", GraphQLHandler(deps.Schema))

	// Auth Routes
	authGroup := api.Group("/auth")
	authGroup.Post("/login", auth.Login(deps.Admins, deps.Tokens))

	// Tenant lifecycle routes. Delete is the only guarded operation.
	tenantGroup := api.Group("/tenants")
	tenantGroup.Post("/", tenants.CreateTenant(deps.Tenants, deps.Events))
	tenantGroup.Get("/", tenants.GetTenant(deps.Tenants))
	tenantGroup.Put("/rename", tenants.RenameTenant(deps.Tenants, deps.Events))
	tenantGroup.Put("/credentials", tenants.UpdateTenantCredentials(deps.Tenants))
	tenantGroup.Delete("/", tenants.DeleteTenant(deps.Tenants, deps.Guard, deps.Events))

	log.Println("API routes initialized successfully")
}
