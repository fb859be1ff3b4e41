// Package policy centralizes role and ownership checks shared by every endpoint.
package policy

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-agent-wallet/internal/models"
)

// Actor is the authenticated caller.
type Actor struct {
	UserID uuid.UUID
	Role   models.Role
}

// Role sets behind the checks below.
var (
	WalletManagers = []models.Role{models.RoleAdmin, models.RoleSales}
	ClaimReviewers = []models.Role{models.RoleAdmin, models.RoleOperations}
	BookingManager = []models.Role{models.RoleAdmin, models.RoleOperations}
	Agents         = []models.Role{models.RoleAgent}
)

// HasRole reports whether the actor holds one of roles.
func (a Actor) HasRole(roles ...models.Role) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}

// CanManageWallets allows credit limit changes, manual transactions and wallet listing.
func CanManageWallets(a Actor) bool {
	return a.HasRole(WalletManagers...)
}

// CanViewWallet allows wallet managers, and agents for their own wallet.
func CanViewWallet(a Actor, ownerID uuid.UUID) bool {
	if CanManageWallets(a) {
		return true
	}
	return a.Role == models.RoleAgent && a.UserID == ownerID
}

// IsAgent allows agents only: their own wallet and claim views.
func IsAgent(a Actor) bool {
	return a.HasRole(Agents...)
}

// CanSubmitClaim allows agents only.
func CanSubmitClaim(a Actor) bool {
	return IsAgent(a)
}

// CanListAllClaims allows claim reviewers.
func CanListAllClaims(a Actor) bool {
	return a.HasRole(ClaimReviewers...)
}

// CanDecideClaim allows claim reviewers.
func CanDecideClaim(a Actor) bool {
	return a.HasRole(ClaimReviewers...)
}

// CanViewClaim allows reviewers, and the agent who submitted the claim.
func CanViewClaim(a Actor, claim *models.Claim) bool {
	if CanListAllClaims(a) {
		return true
	}
	return a.Role == models.RoleAgent && claim != nil && claim.AgentID == a.UserID
}

// CanManageBookings allows booking status and payment overrides.
func CanManageBookings(a Actor) bool {
	return a.HasRole(BookingManager...)
}

type actorKey struct{}

// WithActor stores the actor in ctx.
func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// ActorFromContext returns the actor stored by the auth middleware.
func ActorFromContext(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(actorKey{}).(Actor)
	return a, ok
}
