package authz

import (
	"github.com/dapittriandi/simdor-service/internal/entities"
	"github.com/dapittriandi/simdor-service/pkg/constants"
	"github.com/dapittriandi/simdor-service/pkg/types"
)

// Gatekeeper bundles the record-level access checks.
type Gatekeeper struct{}

func NewGatekeeper() *Gatekeeper {
	return &Gatekeeper{}
}

// CanDeleteOrder: only a portfolio admin of the owning portfolio may delete
// an order.
func (g *Gatekeeper) CanDeleteOrder(actor types.Actor, target *entities.Order) bool {
	if actor.Role != constants.RolePortfolioAdmin {
		return false
	}
	return actor.Portfolio == target.Portfolio
}

// CanCreateOrder: orders are opened by portfolio admins for their own
// portfolio.
func (g *Gatekeeper) CanCreateOrder(actor types.Actor, portfolio string) bool {
	if actor.Role != constants.RolePortfolioAdmin {
		return false
	}
	return actor.Portfolio == portfolio
}
