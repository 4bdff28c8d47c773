package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dapittriandi/simdor-service/internal/dto"
)

type DashboardRepositoryInterface interface {
	GetStats(ctx context.Context, portfolio string) (*dto.DashboardStatsDTO, error)
}

type DashboardRepository struct {
	storage *pgxpool.Pool
}

func NewDashboardRepository(storage *pgxpool.Pool) DashboardRepositoryInterface {
	return &DashboardRepository{storage: storage}
}

// GetStats aggregates counts per status and revenue per portfolio. An empty
// portfolio means "all portfolios" (coordinator view).
func (r *DashboardRepository) GetStats(ctx context.Context, portfolio string) (*dto.DashboardStatsDTO, error) {
	stats := &dto.DashboardStatsDTO{
		CountsByStatus:     make(map[string]uint64),
		RevenueByPortfolio: make(map[string]float64),
	}

	countBuilder := psql.Select("status", "COUNT(*)").From("orders").GroupBy("status")
	if portfolio != "" {
		countBuilder = countBuilder.Where(sq.Eq{"portfolio": portfolio})
	}
	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build status count query: %w", err)
	}

	rows, err := r.storage.Query(ctx, countQuery, countArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to query status counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count uint64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		stats.CountsByStatus[status] = count
		stats.TotalOrders += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	revenueBuilder := psql.
		Select("portfolio",
			"COALESCE(SUM(nilai_invoice), 0)",
			"COALESCE(SUM(nilai_proforma), 0)").
		From("orders").
		GroupBy("portfolio")
	if portfolio != "" {
		revenueBuilder = revenueBuilder.Where(sq.Eq{"portfolio": portfolio})
	}
	revenueQuery, revenueArgs, err := revenueBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build revenue query: %w", err)
	}

	revRows, err := r.storage.Query(ctx, revenueQuery, revenueArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to query revenue: %w", err)
	}
	defer revRows.Close()

	for revRows.Next() {
		var p string
		var invoiced, proforma float64
		if err := revRows.Scan(&p, &invoiced, &proforma); err != nil {
			return nil, fmt.Errorf("failed to scan revenue row: %w", err)
		}
		stats.RevenueByPortfolio[p] = invoiced
		stats.TotalInvoiced += invoiced
		stats.TotalProforma += proforma
	}
	return stats, revRows.Err()
}
