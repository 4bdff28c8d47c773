package services

import (
	"context"

	"github.com/dapittriandi/simdor-service/internal/dto"
	"github.com/dapittriandi/simdor-service/internal/repositories"
	"github.com/dapittriandi/simdor-service/pkg/constants"
	"github.com/dapittriandi/simdor-service/pkg/types"
)

type DashboardServiceInterface interface {
	GetStats(ctx context.Context, actor types.Actor) (*dto.DashboardStatsDTO, error)
}

type DashboardService struct {
	dashboardRepo repositories.DashboardRepositoryInterface
}

func NewDashboardService(dashboardRepo repositories.DashboardRepositoryInterface) DashboardServiceInterface {
	return &DashboardService{dashboardRepo: dashboardRepo}
}

// GetStats scopes the aggregates to the actor's portfolio for portfolio
// admins; every other role sees the company-wide picture.
func (s *DashboardService) GetStats(ctx context.Context, actor types.Actor) (*dto.DashboardStatsDTO, error) {
	portfolio := ""
	if actor.Role == constants.RolePortfolioAdmin {
		portfolio = actor.Portfolio
	}
	return s.dashboardRepo.GetStats(ctx, portfolio)
}
