// Package main provides the entry point for the tenant-backend microservice,
// which provisions, renames, and tears down per-tenant data partitions and
// issues tenant-scoped identity tokens.
package main

import (
	"log"
	"strings"
	"time"

	"github.com/orgstack/tenant-backend/config"
	"github.com/orgstack/tenant-backend/database"
	tenantevents "github.com/orgstack/tenant-backend/events/modules/tenants"
	gqlschema "github.com/orgstack/tenant-backend/graphql"
	"github.com/orgstack/tenant-backend/internal/api"
	"github.com/orgstack/tenant-backend/internal/services"
	"github.com/orgstack/tenant-backend/internal/store"
	"github.com/orgstack/tenant-backend/restapi"
	"github.com/orgstack/tenant-backend/restapi/modules/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database connection
	db := database.InitializeDatabase(cfg.Arango)
	zlog := database.InitLogger()

	// Store capabilities
	admins := store.NewAdminStore(db)
	tenants := store.NewTenantStore(db)
	partitions := store.NewPartitionStore(db)

	// Lifecycle manager and token layer
	svc := services.NewTenantService(admins, tenants, partitions, auth.BcryptHasher{}, zlog)
	tokens := auth.NewTokenService(cfg.JWT.Secret, time.Duration(cfg.JWT.LifetimeMinutes)*time.Minute)
	guard := auth.NewGuard(tokens, admins)

	// Optional lifecycle event producer
	var events *tenantevents.TenantProducer
	if cfg.Kafka.Brokers != "" {
		events = tenantevents.NewTenantProducer(strings.Split(cfg.Kafka.Brokers, ","), cfg.Kafka.Topic)
		defer events.Close()
	}

	// Initialize GraphQL schema
	schema, err := gqlschema.CreateSchema(db)
	if err != nil {
		log.Fatalf("Failed to create GraphQL schema: %v", err)
	}

	app := api.NewFiberApp(restapi.Deps{
		Tenants: svc,
		Admins:  admins,
		Tokens:  tokens,
		Guard:   guard,
		Events:  events,
		Schema:  schema,
	})

	// Start server
	log.Printf("Starting server on port %s", cfg.Port)
	log.Printf("GraphQL endpoint available at /api/v1/graphql")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
