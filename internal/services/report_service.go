package services

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/dapittriandi/simdor-service/internal/dto"
	"github.com/dapittriandi/simdor-service/internal/repositories"
	"github.com/dapittriandi/simdor-service/pkg/constants"
	"github.com/dapittriandi/simdor-service/pkg/types"
)

type ReportServiceInterface interface {
	GetReport(ctx context.Context, actor types.Actor, filter dto.ReportFilterDTO) ([]dto.ReportItemDTO, error)
	ExportReport(ctx context.Context, actor types.Actor, filter dto.ReportFilterDTO) (*excelize.File, error)
}

type ReportService struct {
	reportRepo repositories.ReportRepositoryInterface
	logger     *zap.Logger
}

func NewReportService(reportRepo repositories.ReportRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &ReportService{reportRepo: reportRepo, logger: logger}
}

// GetReport applies the actor's portfolio scope on top of the requested
// filter. Portfolio admins only ever see their own book.
func (s *ReportService) GetReport(ctx context.Context, actor types.Actor, filter dto.ReportFilterDTO) ([]dto.ReportItemDTO, error) {
	if actor.Role == constants.RolePortfolioAdmin {
		filter.Portfolio = actor.Portfolio
	}
	return s.reportRepo.GetReport(ctx, filter)
}

var reportHeader = []interface{}{
	"Nomor Order", "Portofolio", "Nama Customer", "Status",
	"Nama Kapal", "Tonase Asli", "Nilai Proforma", "Nomor Invoice",
	"Nilai Invoice", "Tanggal Order",
}

// ExportReport builds the same rows as GetReport into an Excel workbook.
func (s *ReportService) ExportReport(ctx context.Context, actor types.Actor, filter dto.ReportFilterDTO) (*excelize.File, error) {
	items, err := s.GetReport(ctx, actor, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Laporan Order"
	f.SetSheetName("Sheet1", sheet)

	if err := f.SetSheetRow(sheet, "A1", &reportHeader); err != nil {
		return nil, fmt.Errorf("failed to write report header: %w", err)
	}

	for i, item := range items {
		row := []interface{}{
			item.NomorOrder.String,
			item.Portfolio,
			item.Customer,
			item.Status,
			item.NamaKapal.String,
			item.TonaseAsli.Float64,
			item.NilaiProforma.Float64,
			item.NomorInvoice.String,
			item.NilaiInvoice.Float64,
			"",
		}
		if item.TanggalOrder.Valid {
			row[9] = item.TanggalOrder.Time.Format("2006-01-02")
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write report row: %w", err)
		}
	}

	s.logger.Info("report exported",
		zap.Int("rows", len(items)),
		zap.String("portfolio", filter.Portfolio),
	)
	return f, nil
}
