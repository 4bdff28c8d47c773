package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dapittriandi/simdor-service/internal/dto"
)

type ReportRepositoryInterface interface {
	GetReport(ctx context.Context, filter dto.ReportFilterDTO) ([]dto.ReportItemDTO, error)
}

type ReportRepository struct {
	storage *pgxpool.Pool
}

func NewReportRepository(storage *pgxpool.Pool) ReportRepositoryInterface {
	return &ReportRepository{storage: storage}
}

func (r *ReportRepository) GetReport(ctx context.Context, filter dto.ReportFilterDTO) ([]dto.ReportItemDTO, error) {
	builder := psql.
		Select("nomor_order", "portfolio", "nama_customer", "status",
			"nama_kapal", "tonase_asli", "nilai_proforma",
			"nomor_invoice", "nilai_invoice", "tanggal_order").
		From("orders").
		OrderBy("created_at DESC")

	if filter.Portfolio != "" {
		builder = builder.Where(sq.Eq{"portfolio": filter.Portfolio})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}
	if filter.DateFrom != "" {
		builder = builder.Where(sq.GtOrEq{"tanggal_order": filter.DateFrom})
	}
	if filter.DateTo != "" {
		builder = builder.Where(sq.LtOrEq{"tanggal_order": filter.DateTo})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build report query: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query report: %w", err)
	}
	defer rows.Close()

	items := make([]dto.ReportItemDTO, 0)
	for rows.Next() {
		var item dto.ReportItemDTO
		if err := rows.Scan(
			&item.NomorOrder, &item.Portfolio, &item.Customer, &item.Status,
			&item.NamaKapal, &item.TonaseAsli, &item.NilaiProforma,
			&item.NomorInvoice, &item.NilaiInvoice, &item.TanggalOrder,
		); err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
