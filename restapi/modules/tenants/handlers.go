// Package tenants provides REST handlers for the tenant lifecycle operations.
package tenants

import (
	"context"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	tenantevents "github.com/orgstack/tenant-backend/events/modules/tenants"
	"github.com/orgstack/tenant-backend/internal/errs"
	"github.com/orgstack/tenant-backend/internal/services"
	"github.com/orgstack/tenant-backend/restapi/modules/auth"
)

// statusForError maps the service error taxonomy to HTTP statuses
func statusForError(err error) int {
	switch errs.ErrorCode(err) {
	case errs.EInvalid:
		return fiber.StatusBadRequest
	case errs.EConflict:
		return fiber.StatusConflict
	case errs.ENotFound:
		return fiber.StatusNotFound
	case errs.EForbidden:
		return fiber.StatusForbidden
	case errs.ETokenInvalid:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

func errorJSON(c *fiber.Ctx, err error) error {
	return c.Status(statusForError(err)).JSON(fiber.Map{"error": errs.ErrorMessage(err)})
}

// CreateTenant provisions a tenant with its administrator and seeded partition
func CreateTenant(svc *services.TenantService, events *tenantevents.TenantProducer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req CreateTenantRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		meta, err := svc.Create(c.Context(), req.TenantName, req.Email, req.Password)
		if err != nil {
			return errorJSON(c, err)
		}

		if events != nil {
			saved := *meta
			go func() {
				if err := events.PublishTenantCreated(context.Background(), saved); err != nil {
					log.Printf("WARNING: Failed to publish tenant.created event: %v", err)
				}
			}()
		}

		return c.Status(fiber.StatusCreated).JSON(meta)
	}
}

// GetTenant returns the metadata for a tenant name
func GetTenant(svc *services.TenantService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Query("tenant_name")
		if name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "tenant_name query parameter required"})
		}

		meta, err := svc.GetByName(c.Context(), name)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(meta)
	}
}

// RenameTenant moves a tenant to a new name, copying its partition
func RenameTenant(svc *services.TenantService, events *tenantevents.TenantProducer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req RenameTenantRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		meta, err := svc.Rename(c.Context(), req.TenantName, req.NewTenantName)
		if err != nil {
			return errorJSON(c, err)
		}

		if events != nil {
			previous := req.TenantName
			saved := *meta
			go func() {
				if err := events.PublishTenantRenamed(context.Background(), previous, saved); err != nil {
					log.Printf("WARNING: Failed to publish tenant.renamed event: %v", err)
				}
			}()
		}

		return c.JSON(meta)
	}
}

// UpdateTenantCredentials replaces the administrator's email and password
func UpdateTenantCredentials(svc *services.TenantService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req UpdateCredentialsRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}

		meta, err := svc.UpdateCredentials(c.Context(), req.TenantName, req.Email, req.Password)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(meta)
	}
}

// DeleteTenant tears down a tenant. This is the only operation gated by the
// authorization guard: the bearer token must bind the caller to the tenant
// being deleted.
func DeleteTenant(svc *services.TenantService, guard *auth.Guard, events *tenantevents.TenantProducer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Query("tenant_name")
		if name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "tenant_name query parameter required"})
		}

		authorization := c.Get("Authorization")
		if !strings.HasPrefix(authorization, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization header required"})
		}
		token := strings.TrimPrefix(authorization, "Bearer ")

		if _, err := guard.Authorize(c.Context(), token, name); err != nil {
			return errorJSON(c, err)
		}

		meta, err := svc.GetByName(c.Context(), name)
		if err != nil {
			return errorJSON(c, err)
		}

		if err := svc.Delete(c.Context(), name); err != nil {
			return errorJSON(c, err)
		}

		if events != nil {
			collection := meta.CollectionName
			go func() {
				if err := events.PublishTenantDeleted(context.Background(), name, collection); err != nil {
					log.Printf("WARNING: Failed to publish tenant.deleted event: %v", err)
				}
			}()
		}

		return c.JSON(fiber.Map{"message": "tenant deleted"})
	}
}
