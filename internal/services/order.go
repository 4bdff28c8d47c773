package services

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dapittriandi/simdor-service/internal/authz"
	"github.com/dapittriandi/simdor-service/internal/dto"
	"github.com/dapittriandi/simdor-service/internal/entities"
	"github.com/dapittriandi/simdor-service/internal/lifecycle"
	"github.com/dapittriandi/simdor-service/internal/repositories"
	"github.com/dapittriandi/simdor-service/pkg/constants"
	apperrors "github.com/dapittriandi/simdor-service/pkg/errors"
	"github.com/dapittriandi/simdor-service/pkg/filestorage"
	"github.com/dapittriandi/simdor-service/pkg/types"
	"github.com/dapittriandi/simdor-service/pkg/utils"
)

const dateLayout = "2006-01-02"

// PendingFile is one not-yet-uploaded document accompanying a stage
// submission.
type PendingFile struct {
	Kind     string
	FileName string
	Content  io.Reader
}

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, actor types.Actor, data dto.CreateOrderDTO) (*entities.Order, error)
	FindOrder(ctx context.Context, actor types.Actor, id string) (*entities.Order, error)
	GetOrders(ctx context.Context, actor types.Actor, filter types.Filter) ([]entities.Order, uint64, error)
	SubmitStage(ctx context.Context, actor types.Actor, orderID string, edits dto.SubmitStageDTO, files []PendingFile) (*entities.Order, error)
	ValidateStage(ctx context.Context, actor types.Actor, orderID string, edits dto.SubmitStageDTO, pendingKinds []string) ([]string, error)
	DeleteOrder(ctx context.Context, actor types.Actor, orderID string) error
}

type OrderService struct {
	orderRepo   repositories.OrderRepositoryInterface
	fileStorage filestorage.FileStorage
	gatekeeper  *authz.Gatekeeper
	logger      *zap.Logger
}

func NewOrderService(
	orderRepo repositories.OrderRepositoryInterface,
	fileStorage filestorage.FileStorage,
	gatekeeper *authz.Gatekeeper,
	logger *zap.Logger,
) OrderServiceInterface {
	return &OrderService{
		orderRepo:   orderRepo,
		fileStorage: fileStorage,
		gatekeeper:  gatekeeper,
		logger:      logger,
	}
}

func (s *OrderService) CreateOrder(ctx context.Context, actor types.Actor, data dto.CreateOrderDTO) (*entities.Order, error) {
	if !constants.IsValidPortfolio(data.Portfolio) {
		return nil, apperrors.NewInvalidInputError("portfolio %q tidak dikenal", data.Portfolio)
	}
	if !s.gatekeeper.CanCreateOrder(actor, data.Portfolio) {
		return nil, apperrors.ErrForbidden
	}

	now := time.Now()
	order := &entities.Order{
		ID:              uuid.New().String(),
		Portfolio:       data.Portfolio,
		Customer:        data.Customer,
		Status:          string(lifecycle.StatusNewOrder),
		StatusChangedAt: now,
		JenisPekerjaan:  data.JenisPekerjaan,
		NamaKapal:       data.NamaKapal,
		EstimasiTonase:  data.EstimasiTonase,
		Documents:       map[string]entities.Document{},
	}
	order.CreatedBy = actor.ID
	order.LastUpdatedBy = actor.ID
	order.CreatedAt = now
	order.UpdatedAt = now

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		s.logger.Error("failed to create order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (s *OrderService) FindOrder(ctx context.Context, _ types.Actor, id string) (*entities.Order, error) {
	return s.orderRepo.FindOrder(ctx, id)
}

func (s *OrderService) GetOrders(ctx context.Context, _ types.Actor, filter types.Filter) ([]entities.Order, uint64, error) {
	return s.orderRepo.GetOrders(ctx, filter)
}

// ValidateStage runs the same rules SubmitStage runs, without side effects.
// Backs the live inline validation of the forms; pendingKinds names the
// files staged in the browser but not yet uploaded.
func (s *OrderService) ValidateStage(ctx context.Context, actor types.Actor, orderID string, edits dto.SubmitStageDTO, pendingKinds []string) ([]string, error) {
	order, err := s.orderRepo.FindOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	merged := cloneOrder(order)
	if _, err := applyEdits(merged, &edits, actor.Role); err != nil {
		return nil, err
	}
	markPendingDocuments(merged, pendingKinds, actor)

	return lifecycle.Validate(merged), nil
}

// SubmitStage completes one stage: validate, upload pending files, merge,
// advance the status and persist. Validation failures have no side effects;
// files already uploaded when a later file fails are not rolled back.
func (s *OrderService) SubmitStage(ctx context.Context, actor types.Actor, orderID string, edits dto.SubmitStageDTO, files []PendingFile) (*entities.Order, error) {
	order, err := s.orderRepo.FindOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	for _, f := range files {
		if !entities.IsValidDocumentKind(f.Kind) {
			return nil, apperrors.NewInvalidInputError("jenis dokumen %q tidak dikenal", f.Kind)
		}
	}

	merged := cloneOrder(order)
	cols, err := applyEdits(merged, &edits, actor.Role)
	if err != nil {
		return nil, err
	}

	pendingKinds := make([]string, 0, len(files))
	for _, f := range files {
		pendingKinds = append(pendingKinds, f.Kind)
	}
	markPendingDocuments(merged, pendingKinds, actor)

	if reasons := lifecycle.Validate(merged); len(reasons) > 0 {
		return nil, apperrors.NewValidationError(reasons)
	}

	uploaded, err := s.uploadAll(ctx, actor, orderID, files)
	if err != nil {
		return nil, err
	}

	next, err := lifecycle.NextFor(merged)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	statusChangedAt := now
	// Leaving certificate processing backdates the transition to the
	// submitted filing date.
	if lifecycle.Status(order.Status) == lifecycle.StatusDiprosesSertifikat && merged.TanggalPengajuan.Valid {
		statusChangedAt = merged.TanggalPengajuan.Time
	}

	cols["status"] = string(next)
	cols["status_changed_at"] = statusChangedAt
	cols["updated_at"] = now
	cols["last_updated_by"] = actor.ID

	if err := s.orderRepo.UpdateOrderFields(ctx, orderID, cols); err != nil {
		s.logger.Error("failed to persist stage submission",
			zap.String("orderId", orderID), zap.Error(err))
		return nil, err
	}

	for _, doc := range uploaded {
		if err := s.orderRepo.UpsertDocument(ctx, orderID, doc); err != nil {
			s.logger.Error("failed to persist order document",
				zap.String("orderId", orderID), zap.String("kind", doc.Kind), zap.Error(err))
			return nil, err
		}
	}

	s.logger.Info("stage completed",
		zap.String("orderId", orderID),
		zap.String("from", order.Status),
		zap.String("to", string(next)),
		zap.String("actor", actor.ID),
	)

	return s.orderRepo.FindOrder(ctx, orderID)
}

func (s *OrderService) DeleteOrder(ctx context.Context, actor types.Actor, orderID string) error {
	order, err := s.orderRepo.FindOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if !s.gatekeeper.CanDeleteOrder(actor, order) {
		return apperrors.ErrForbidden
	}
	// Uploaded files stay behind in the media host; the delete-file proxy
	// is the manual cleanup path.
	return s.orderRepo.DeleteOrder(ctx, orderID)
}

// uploadAll pushes every pending file to the media host in parallel and
// collects the results. The first failure fails the submission; siblings
// that already made it stay in storage.
func (s *OrderService) uploadAll(ctx context.Context, actor types.Actor, orderID string, files []PendingFile) ([]entities.Document, error) {
	if len(files) == 0 {
		return nil, nil
	}

	type result struct {
		doc entities.Document
		err error
	}

	results := make(chan result, len(files))
	var wg sync.WaitGroup
	for _, pf := range files {
		wg.Add(1)
		go func(pf PendingFile) {
			defer wg.Done()
			stored, err := s.fileStorage.Store(ctx, pf.Content, pf.FileName, "simdor/"+orderID)
			if err != nil {
				results <- result{err: apperrors.NewUploadError(pf.Kind, err)}
				return
			}
			results <- result{doc: entities.Document{
				Kind:       pf.Kind,
				FileName:   stored.FileName,
				FileURL:    stored.URL,
				PublicID:   stored.PublicID,
				UploadedBy: actor.ID,
				UploadedAt: time.Now(),
			}}
		}(pf)
	}
	wg.Wait()
	close(results)

	docs := make([]entities.Document, 0, len(files))
	for r := range results {
		if r.err != nil {
			return nil, r.err
		}
		docs = append(docs, r.doc)
	}
	return docs, nil
}

// cloneOrder copies the aggregate, including the documents map, so
// validation can run on a merged snapshot without mutating the stored
// record.
func cloneOrder(o *entities.Order) *entities.Order {
	clone := *o
	clone.Documents = make(map[string]entities.Document, len(o.Documents))
	for k, v := range o.Documents {
		clone.Documents[k] = v
	}
	return &clone
}

// markPendingDocuments makes files staged in this submission count as
// present for the pairing rules.
func markPendingDocuments(o *entities.Order, kinds []string, actor types.Actor) {
	for _, kind := range kinds {
		if _, exists := o.Documents[kind]; !exists {
			o.Documents[kind] = entities.Document{Kind: kind, UploadedBy: actor.ID}
		}
	}
}

// applyEdits merges the submitted edits into the snapshot, restricted to
// the fields the actor's role may edit at the order's current stage, and
// returns the database columns to persist. Dates and monetary text are
// normalized here, before anything else sees them.
func applyEdits(o *entities.Order, d *dto.SubmitStageDTO, role string) (map[string]interface{}, error) {
	allowed := make(map[lifecycle.Field]bool)
	for _, f := range authz.VisibleFields(role, lifecycle.Status(o.Status)) {
		allowed[f] = true
	}

	cols := make(map[string]interface{})

	setString := func(field lifecycle.Field, col string, val null.String, dst *null.String) {
		if !val.Valid || !allowed[field] {
			return
		}
		*dst = val
		cols[col] = val.String
	}

	parseDate := func(field lifecycle.Field, col string, raw null.String, dst *null.Time) error {
		if !raw.Valid || !allowed[field] {
			return nil
		}
		t, err := time.Parse(dateLayout, raw.String)
		if err != nil {
			return apperrors.NewInvalidInputError("tanggal %q tidak valid untuk %s", raw.String, field)
		}
		dst.SetValid(t)
		cols[col] = t
		return nil
	}

	parseMoney := func(field lifecycle.Field, col string, raw null.String, dst *null.Float64) error {
		if !raw.Valid || !allowed[field] {
			return nil
		}
		v, err := utils.NormalizeCurrency(raw.String)
		if err != nil {
			return err
		}
		dst.SetValid(v)
		cols[col] = v
		return nil
	}

	setString(lifecycle.FieldNomorOrder, "nomor_order", d.NomorOrder, &o.NomorOrder)
	if err := parseDate(lifecycle.FieldTanggalOrder, "tanggal_order", d.TanggalOrder, &o.TanggalOrder); err != nil {
		return nil, err
	}
	if d.Customer.Valid && allowed[lifecycle.FieldNamaCustomer] {
		o.Customer = d.Customer.String
		cols["nama_customer"] = d.Customer.String
	}
	setString(lifecycle.FieldJenisPekerjaan, "jenis_pekerjaan", d.JenisPekerjaan, &o.JenisPekerjaan)
	setString(lifecycle.FieldLokasiPekerjaan, "lokasi_pekerjaan", d.LokasiPekerjaan, &o.LokasiPekerjaan)
	setString(lifecycle.FieldNamaKapal, "nama_kapal", d.NamaKapal, &o.NamaKapal)
	if d.EstimasiTonase.Valid && allowed[lifecycle.FieldEstimasiTonase] {
		o.EstimasiTonase = d.EstimasiTonase
		cols["estimasi_tonase"] = d.EstimasiTonase.Float64
	}

	if err := parseDate(lifecycle.FieldTanggalPekerjaan, "tanggal_pekerjaan", d.TanggalPekerjaan, &o.TanggalPekerjaan); err != nil {
		return nil, err
	}
	if d.TonaseAsli.Valid && allowed[lifecycle.FieldTonaseAsli] {
		if d.TonaseAsli.Float64 < 0 {
			return nil, apperrors.NewInvalidInputError("tonase asli tidak boleh negatif")
		}
		o.TonaseAsli = d.TonaseAsli
		cols["tonase_asli"] = d.TonaseAsli.Float64
	}
	setString(lifecycle.FieldNomorSiSpk, "nomor_si_spk", d.NomorSiSpk, &o.NomorSiSpk)

	setString(lifecycle.FieldJenisSertifikat, "jenis_sertifikat", d.JenisSertifikat, &o.JenisSertifikat)
	setString(lifecycle.FieldNoSertifikat, "no_sertifikat", d.NoSertifikat, &o.NoSertifikat)
	setString(lifecycle.FieldKeteranganSertifikatPM06, "keterangan_sertifikat_pm06", d.KeteranganSertifikatPM06, &o.KeteranganSertifikatPM06)
	setString(lifecycle.FieldNoSertifikatPM06, "no_sertifikat_pm06", d.NoSertifikatPM06, &o.NoSertifikatPM06)
	if err := parseDate(lifecycle.FieldTanggalPengajuan, "tanggal_pengajuan", d.TanggalPengajuan, &o.TanggalPengajuan); err != nil {
		return nil, err
	}

	if err := parseDate(lifecycle.FieldTanggalSerahOps, "tanggal_serah_ops", d.TanggalSerahOps, &o.TanggalSerahOps); err != nil {
		return nil, err
	}
	if err := parseDate(lifecycle.FieldTanggalSerahDukungan, "tanggal_serah_dukungan", d.TanggalSerahDukungan, &o.TanggalSerahDukungan); err != nil {
		return nil, err
	}
	if err := parseDate(lifecycle.FieldTanggalProformaSistem, "tanggal_proforma_sistem", d.TanggalProformaSistem, &o.TanggalProformaSistem); err != nil {
		return nil, err
	}
	if err := parseMoney(lifecycle.FieldNilaiProforma, "nilai_proforma", d.NilaiProforma, &o.NilaiProforma); err != nil {
		return nil, err
	}
	setString(lifecycle.FieldNomorInvoice, "nomor_invoice", d.NomorInvoice, &o.NomorInvoice)
	setString(lifecycle.FieldFakturPajak, "faktur_pajak", d.FakturPajak, &o.FakturPajak)
	if err := parseMoney(lifecycle.FieldNilaiInvoice, "nilai_invoice", d.NilaiInvoice, &o.NilaiInvoice); err != nil {
		return nil, err
	}

	setString(lifecycle.FieldPengirimSertifikat, "pengirim_sertifikat", d.PengirimSertifikat, &o.PengirimSertifikat)
	if err := parseDate(lifecycle.FieldTanggalPengiriman, "tanggal_pengiriman", d.TanggalPengiriman, &o.TanggalPengiriman); err != nil {
		return nil, err
	}
	setString(lifecycle.FieldPenerimaSertifikat, "penerima_sertifikat", d.PenerimaSertifikat, &o.PenerimaSertifikat)
	if err := parseDate(lifecycle.FieldTanggalDiterima, "tanggal_diterima", d.TanggalDiterima, &o.TanggalDiterima); err != nil {
		return nil, err
	}

	return cols, nil
}
