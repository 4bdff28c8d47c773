package dto

// DashboardStatsDTO summarizes order counts and revenue for the dashboard
// pages.
type DashboardStatsDTO struct {
	TotalOrders        uint64             `json:"totalOrders"`
	CountsByStatus     map[string]uint64  `json:"countsByStatus"`
	RevenueByPortfolio map[string]float64 `json:"revenueByPortfolio"`
	TotalInvoiced      float64            `json:"totalInvoiced"`
	TotalProforma      float64            `json:"totalProforma"`
}
