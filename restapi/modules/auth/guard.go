package auth

import (
	"context"

	"github.com/orgstack/tenant-backend/internal/errs"
	"github.com/orgstack/tenant-backend/internal/services"
)

// Guard confirms that a token entitles its bearer to act on a claimed tenant.
// Beyond signature and expiry, it re-checks the administrator's live tenant
// assignment, which rejects tokens issued before a rename.
type Guard struct {
	tokens *TokenService
	admins services.IdentityStore
}

// NewGuard wires the guard to the token service and identity store
func NewGuard(tokens *TokenService, admins services.IdentityStore) *Guard {
	return &Guard{tokens: tokens, admins: admins}
}

// Authorize validates the token and returns the administrator key when the
// token's tenant claim matches claimedTenant and the administrator is still
// assigned to that tenant.
func (g *Guard) Authorize(ctx context.Context, token, claimedTenant string) (string, error) {
	claims, err := g.tokens.Validate(token)
	if err != nil {
		return "", err
	}

	if claims.Tenant != claimedTenant {
		return "", errs.Forbidden("token does not belong to tenant %q", claimedTenant)
	}

	admin, err := g.admins.FindByKey(ctx, claims.Subject)
	if err != nil {
		return "", errs.Internal("lookup admin by key", err)
	}
	if admin == nil || admin.TenantName != claimedTenant {
		return "", errs.Forbidden("administrator is not assigned to tenant %q", claimedTenant)
	}

	return admin.Key, nil
}
