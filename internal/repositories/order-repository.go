package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dapittriandi/simdor-service/internal/entities"
	appdb "github.com/dapittriandi/simdor-service/internal/infrastructure/db"
	apperrors "github.com/dapittriandi/simdor-service/pkg/errors"
	"github.com/dapittriandi/simdor-service/pkg/types"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// orderColumns is the select list shared by point lookup and listing.
var orderColumns = []string{
	"id", "portfolio", "nama_customer", "status", "status_changed_at",
	"nomor_order", "tanggal_order", "jenis_pekerjaan", "lokasi_pekerjaan",
	"nama_kapal", "estimasi_tonase",
	"tanggal_pekerjaan", "tonase_asli", "nomor_si_spk",
	"jenis_sertifikat", "no_sertifikat", "keterangan_sertifikat_pm06",
	"no_sertifikat_pm06", "tanggal_pengajuan",
	"tanggal_serah_ops", "tanggal_serah_dukungan", "tanggal_proforma_sistem",
	"nilai_proforma", "nomor_invoice", "faktur_pajak", "nilai_invoice",
	"pengirim_sertifikat", "tanggal_pengiriman", "penerima_sertifikat",
	"tanggal_diterima",
	"created_by", "last_updated_by", "created_at", "updated_at",
}

// orderListAllowedFields whitelists query filters/sorts for the list
// endpoint.
var orderListAllowedFields = map[string]string{
	"status":       "status",
	"portfolio":    "portfolio",
	"namaCustomer": "nama_customer",
	"nomorOrder":   "nomor_order",
	"created_at":   "created_at",
}

type OrderRepositoryInterface interface {
	FindOrder(ctx context.Context, id string) (*entities.Order, error)
	CreateOrder(ctx context.Context, order *entities.Order) error
	// UpdateOrderFields merges only the given columns; untouched fields
	// keep their stored values.
	UpdateOrderFields(ctx context.Context, id string, cols map[string]interface{}) error
	UpsertDocument(ctx context.Context, orderID string, doc entities.Document) error
	DeleteOrder(ctx context.Context, id string) error
	GetOrders(ctx context.Context, filter types.Filter) ([]entities.Order, uint64, error)
}

type OrderRepository struct {
	storage *pgxpool.Pool
}

func NewOrderRepository(storage *pgxpool.Pool) OrderRepositoryInterface {
	return &OrderRepository{storage: storage}
}

func scanOrder(row pgx.Row, order *entities.Order) error {
	return row.Scan(
		&order.ID, &order.Portfolio, &order.Customer, &order.Status, &order.StatusChangedAt,
		&order.NomorOrder, &order.TanggalOrder, &order.JenisPekerjaan, &order.LokasiPekerjaan,
		&order.NamaKapal, &order.EstimasiTonase,
		&order.TanggalPekerjaan, &order.TonaseAsli, &order.NomorSiSpk,
		&order.JenisSertifikat, &order.NoSertifikat, &order.KeteranganSertifikatPM06,
		&order.NoSertifikatPM06, &order.TanggalPengajuan,
		&order.TanggalSerahOps, &order.TanggalSerahDukungan, &order.TanggalProformaSistem,
		&order.NilaiProforma, &order.NomorInvoice, &order.FakturPajak, &order.NilaiInvoice,
		&order.PengirimSertifikat, &order.TanggalPengiriman, &order.PenerimaSertifikat,
		&order.TanggalDiterima,
		&order.CreatedBy, &order.LastUpdatedBy, &order.CreatedAt, &order.UpdatedAt,
	)
}

func (r *OrderRepository) FindOrder(ctx context.Context, id string) (*entities.Order, error) {
	query, args, err := psql.Select(orderColumns...).From("orders").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build order query: %w", err)
	}

	var order entities.Order
	if err := scanOrder(r.storage.QueryRow(ctx, query, args...), &order); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan order: %w", err)
	}

	docs, err := r.loadDocuments(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Documents = docs

	return &order, nil
}

func (r *OrderRepository) loadDocuments(ctx context.Context, orderID string) (map[string]entities.Document, error) {
	query, args, err := psql.
		Select("kind", "file_name", "file_url", "public_id", "uploaded_by", "uploaded_at").
		From("order_documents").
		Where(sq.Eq{"order_id": orderID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build documents query: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query order documents: %w", err)
	}
	defer rows.Close()

	docs := make(map[string]entities.Document)
	for rows.Next() {
		var doc entities.Document
		if err := rows.Scan(&doc.Kind, &doc.FileName, &doc.FileURL, &doc.PublicID, &doc.UploadedBy, &doc.UploadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order document: %w", err)
		}
		docs[doc.Kind] = doc
	}
	return docs, rows.Err()
}

func (r *OrderRepository) CreateOrder(ctx context.Context, order *entities.Order) error {
	query, args, err := psql.Insert("orders").
		Columns("id", "portfolio", "nama_customer", "status", "status_changed_at",
			"jenis_pekerjaan", "nama_kapal", "estimasi_tonase",
			"created_by", "last_updated_by", "created_at", "updated_at").
		Values(order.ID, order.Portfolio, order.Customer, order.Status, order.StatusChangedAt,
			order.JenisPekerjaan, order.NamaKapal, order.EstimasiTonase,
			order.CreatedBy, order.LastUpdatedBy, order.CreatedAt, order.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build order insert: %w", err)
	}

	if _, err := r.storage.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (r *OrderRepository) UpdateOrderFields(ctx context.Context, id string, cols map[string]interface{}) error {
	if len(cols) == 0 {
		return nil
	}

	query, args, err := psql.Update("orders").SetMap(cols).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build order update: %w", err)
	}

	tag, err := r.storage.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *OrderRepository) UpsertDocument(ctx context.Context, orderID string, doc entities.Document) error {
	query := `
		INSERT INTO order_documents (order_id, kind, file_name, file_url, public_id, uploaded_by, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (order_id, kind) DO UPDATE SET
			file_name = EXCLUDED.file_name,
			file_url = EXCLUDED.file_url,
			public_id = EXCLUDED.public_id,
			uploaded_by = EXCLUDED.uploaded_by,
			uploaded_at = EXCLUDED.uploaded_at`

	if _, err := r.storage.Exec(ctx, query,
		orderID, doc.Kind, doc.FileName, doc.FileURL, doc.PublicID, doc.UploadedBy, doc.UploadedAt); err != nil {
		return fmt.Errorf("failed to upsert order document: %w", err)
	}
	return nil
}

func (r *OrderRepository) DeleteOrder(ctx context.Context, id string) error {
	tag, err := r.storage.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *OrderRepository) GetOrders(ctx context.Context, filter types.Filter) ([]entities.Order, uint64, error) {
	searchPredicate := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search == "" {
			return b
		}
		like := "%" + filter.Search + "%"
		return b.Where(sq.Or{
			sq.ILike{"nama_customer": like},
			sq.ILike{"nomor_order": like},
			sq.ILike{"nama_kapal": like},
		})
	}

	countBuilder := searchPredicate(psql.Select("COUNT(*)").From("orders"))
	countBuilder = appdb.ApplyListParams(countBuilder, types.Filter{Filter: filter.Filter}, orderListAllowedFields)
	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build order count query: %w", err)
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	builder := searchPredicate(psql.Select(orderColumns...).From("orders"))
	if len(filter.Sort) == 0 {
		builder = builder.OrderBy("created_at DESC")
	}
	builder = appdb.ApplyListParams(builder, filter, orderListAllowedFields)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build order list query: %w", err)
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := make([]entities.Order, 0)
	for rows.Next() {
		var order entities.Order
		if err := scanOrder(rows, &order); err != nil {
			return nil, 0, fmt.Errorf("failed to scan order in list: %w", err)
		}
		orders = append(orders, order)
	}
	return orders, total, rows.Err()
}
