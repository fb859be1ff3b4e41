package policy

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-agent-wallet/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestWalletChecks(t *testing.T) {
	owner := uuid.New()
	admin := Actor{UserID: uuid.New(), Role: models.RoleAdmin}
	sales := Actor{UserID: uuid.New(), Role: models.RoleSales}
	ops := Actor{UserID: uuid.New(), Role: models.RoleOperations}
	agent := Actor{UserID: owner, Role: models.RoleAgent}
	stranger := Actor{UserID: uuid.New(), Role: models.RoleAgent}

	assert.True(t, CanManageWallets(admin))
	assert.True(t, CanManageWallets(sales))
	assert.False(t, CanManageWallets(ops))
	assert.False(t, CanManageWallets(agent))

	assert.True(t, CanViewWallet(admin, owner))
	assert.True(t, CanViewWallet(agent, owner))
	assert.False(t, CanViewWallet(stranger, owner))
	assert.False(t, CanViewWallet(ops, owner))
}

func TestClaimChecks(t *testing.T) {
	agentID := uuid.New()
	claim := &models.Claim{AgentID: agentID}
	agent := Actor{UserID: agentID, Role: models.RoleAgent}
	other := Actor{UserID: uuid.New(), Role: models.RoleAgent}
	ops := Actor{UserID: uuid.New(), Role: models.RoleOperations}
	sales := Actor{UserID: uuid.New(), Role: models.RoleSales}

	assert.True(t, IsAgent(agent))
	assert.False(t, IsAgent(sales))
	assert.True(t, CanSubmitClaim(agent))
	assert.False(t, CanSubmitClaim(ops))

	assert.True(t, CanViewClaim(agent, claim))
	assert.False(t, CanViewClaim(other, claim))
	assert.True(t, CanViewClaim(ops, claim))
	assert.False(t, CanViewClaim(sales, claim))
	assert.False(t, CanViewClaim(agent, nil))

	assert.True(t, CanDecideClaim(ops))
	assert.False(t, CanDecideClaim(agent))
	assert.True(t, CanListAllClaims(Actor{Role: models.RoleAdmin}))
	assert.True(t, CanManageBookings(ops))
	assert.False(t, CanManageBookings(sales))
}

func TestActorContext(t *testing.T) {
	_, ok := ActorFromContext(context.Background())
	assert.False(t, ok)

	a := Actor{UserID: uuid.New(), Role: models.RoleAgent}
	got, ok := ActorFromContext(WithActor(context.Background(), a))
	assert.True(t, ok)
	assert.Equal(t, a, got)
}
