package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dapittriandi/simdor-service/internal/authz"
	"github.com/dapittriandi/simdor-service/internal/dto"
	"github.com/dapittriandi/simdor-service/internal/entities"
	"github.com/dapittriandi/simdor-service/internal/lifecycle"
	"github.com/dapittriandi/simdor-service/pkg/constants"
	apperrors "github.com/dapittriandi/simdor-service/pkg/errors"
	"github.com/dapittriandi/simdor-service/pkg/filestorage"
	"github.com/dapittriandi/simdor-service/pkg/types"
)

// fakeOrderRepo keeps orders in memory and mimics the partial-merge update
// semantics of the real repository closely enough for workflow tests.
type fakeOrderRepo struct {
	orders  map[string]*entities.Order
	updates []map[string]interface{}
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entities.Order{}}
}

func (r *fakeOrderRepo) FindOrder(_ context.Context, id string) (*entities.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	clone := *o
	clone.Documents = make(map[string]entities.Document, len(o.Documents))
	for k, v := range o.Documents {
		clone.Documents[k] = v
	}
	return &clone, nil
}

func (r *fakeOrderRepo) CreateOrder(_ context.Context, order *entities.Order) error {
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) UpdateOrderFields(_ context.Context, id string, cols map[string]interface{}) error {
	o, ok := r.orders[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	r.updates = append(r.updates, cols)
	for col, val := range cols {
		switch col {
		case "status":
			o.Status = val.(string)
		case "status_changed_at":
			o.StatusChangedAt = val.(time.Time)
		case "nomor_order":
			o.NomorOrder = null.StringFrom(val.(string))
		case "tanggal_order":
			o.TanggalOrder = null.TimeFrom(val.(time.Time))
		case "tanggal_pekerjaan":
			o.TanggalPekerjaan = null.TimeFrom(val.(time.Time))
		case "tonase_asli":
			o.TonaseAsli = null.Float64From(val.(float64))
		case "nomor_si_spk":
			o.NomorSiSpk = null.StringFrom(val.(string))
		case "jenis_sertifikat":
			o.JenisSertifikat = null.StringFrom(val.(string))
		case "tanggal_pengajuan":
			o.TanggalPengajuan = null.TimeFrom(val.(time.Time))
		case "tanggal_serah_ops":
			o.TanggalSerahOps = null.TimeFrom(val.(time.Time))
		case "tanggal_serah_dukungan":
			o.TanggalSerahDukungan = null.TimeFrom(val.(time.Time))
		case "tanggal_proforma_sistem":
			o.TanggalProformaSistem = null.TimeFrom(val.(time.Time))
		case "nilai_proforma":
			o.NilaiProforma = null.Float64From(val.(float64))
		case "nomor_invoice":
			o.NomorInvoice = null.StringFrom(val.(string))
		case "faktur_pajak":
			o.FakturPajak = null.StringFrom(val.(string))
		case "nilai_invoice":
			o.NilaiInvoice = null.Float64From(val.(float64))
		case "pengirim_sertifikat":
			o.PengirimSertifikat = null.StringFrom(val.(string))
		case "tanggal_pengiriman":
			o.TanggalPengiriman = null.TimeFrom(val.(time.Time))
		case "penerima_sertifikat":
			o.PenerimaSertifikat = null.StringFrom(val.(string))
		case "tanggal_diterima":
			o.TanggalDiterima = null.TimeFrom(val.(time.Time))
		}
	}
	return nil
}

func (r *fakeOrderRepo) UpsertDocument(_ context.Context, orderID string, doc entities.Document) error {
	o, ok := r.orders[orderID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if o.Documents == nil {
		o.Documents = map[string]entities.Document{}
	}
	o.Documents[doc.Kind] = doc
	return nil
}

func (r *fakeOrderRepo) DeleteOrder(_ context.Context, id string) error {
	if _, ok := r.orders[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) GetOrders(_ context.Context, _ types.Filter) ([]entities.Order, uint64, error) {
	out := make([]entities.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, uint64(len(out)), nil
}

// fakeStorage records uploads; file names listed in failOn fail.
type fakeStorage struct {
	failOn map[string]bool
	stored []string
}

func (s *fakeStorage) Store(_ context.Context, _ io.Reader, originalFileName, _ string) (*filestorage.StoredFile, error) {
	if s.failOn[originalFileName] {
		return nil, fmt.Errorf("connection reset by peer")
	}
	s.stored = append(s.stored, originalFileName)
	return &filestorage.StoredFile{
		FileName: originalFileName,
		URL:      "https://media.example/" + originalFileName,
		PublicID: "pub-" + originalFileName,
	}, nil
}

func (s *fakeStorage) Delete(_ context.Context, _ string) error { return nil }

var (
	csActor = types.Actor{ID: "u-cs", Name: "CS", Role: constants.RoleCustomerService}
	paActor = types.Actor{ID: "u-pa", Name: "Admin Batubara", Role: constants.RolePortfolioAdmin, Portfolio: constants.PortfolioBatubara}
	faActor = types.Actor{ID: "u-fa", Name: "Keuangan", Role: constants.RoleFinanceAdmin}
	koActor = types.Actor{ID: "u-ko", Name: "Koordinator", Role: constants.RoleKoordinator}
)

func newTestService(repo *fakeOrderRepo, storage *fakeStorage) OrderServiceInterface {
	if storage == nil {
		storage = &fakeStorage{}
	}
	return NewOrderService(repo, storage, authz.NewGatekeeper(), zap.NewNop())
}

func seedOrder(repo *fakeOrderRepo, status lifecycle.Status) *entities.Order {
	o := &entities.Order{
		ID:              "ord-1",
		Portfolio:       constants.PortfolioBatubara,
		Customer:        "PT Samudra Jaya",
		Status:          string(status),
		StatusChangedAt: time.Now().Add(-24 * time.Hour),
		Documents:       map[string]entities.Document{},
	}
	repo.orders[o.ID] = o
	return o
}

func TestSubmitStageAdvancesNewOrder(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(repo, lifecycle.StatusNewOrder)
	svc := newTestService(repo, nil)

	edits := dto.SubmitStageDTO{
		NomorOrder:   null.StringFrom("ORD-2026-001"),
		TanggalOrder: null.StringFrom("2026-08-01"),
	}
	updated, err := svc.SubmitStage(context.Background(), csActor, "ord-1", edits, nil)
	require.NoError(t, err)

	assert.Equal(t, string(lifecycle.StatusEntry), updated.Status)
	assert.Equal(t, "ORD-2026-001", updated.NomorOrder.String)
	assert.True(t, updated.TanggalOrder.Valid)
}

func TestSubmitStageMissingFieldsReportsAllReasons(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(repo, lifecycle.StatusNewOrder)
	svc := newTestService(repo, nil)

	_, err := svc.SubmitStage(context.Background(), csActor, "ord-1", dto.SubmitStageDTO{}, nil)
	require.Error(t, err)

	var vErr *apperrors.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Len(t, vErr.Reasons, 2)

	// No side effects on a rejected submission.
	assert.Empty(t, repo.updates)
	assert.Equal(t, string(lifecycle.StatusNewOrder), repo.orders["ord-1"].Status)
}

func TestSubmitStageIgnoresFieldsOutsideRole(t *testing.T) {
	// Finance has no intake permissions: its edits are dropped, so the
	// required intake fields stay empty and validation rejects the attempt.
	repo := newFakeOrderRepo()
	seedOrder(repo, lifecycle.StatusNewOrder)
	svc := newTestService(repo, nil)

	edits := dto.SubmitStageDTO{
		NomorOrder:   null.StringFrom("ORD-2026-001"),
		TanggalOrder: null.StringFrom("2026-08-01"),
	}
	_, err := svc.SubmitStage(context.Background(), faActor, "ord-1", edits, nil)

	var vErr *apperrors.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.False(t, repo.orders["ord-1"].NomorOrder.Valid)
}

func TestSubmitStageNotFound(t *testing.T) {
	svc := newTestService(newFakeOrderRepo(), nil)
	_, err := svc.SubmitStage(context.Background(), csActor, "missing", dto.SubmitStageDTO{}, nil)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestSubmitStageAlreadyTerminal(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(repo, lifecycle.StatusSelesai)
	svc := newTestService(repo, nil)

	_, err := svc.SubmitStage(context.Background(), paActor, "ord-1", dto.SubmitStageDTO{}, nil)
	assert.True(t, errors.Is(err, apperrors.ErrAlreadyTerminal))
	assert.Empty(t, repo.updates)
}

func TestSubmitStageNormalizesCurrency(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(repo, lifecycle.StatusClosedOrder)
	svc := newTestService(repo, nil)

	edits := dto.SubmitStageDTO{
		TanggalSerahOps:       null.StringFrom("2026-08-10"),
		TanggalSerahDukungan:  null.StringFrom("2026-08-11"),
		TanggalProformaSistem: null.StringFrom("2026-08-12"),
		NilaiProforma:         null.StringFrom("Rp 1.500.000,75"),
	}
	updated, err := svc.SubmitStage(context.Background(), faActor, "ord-1", edits, nil)
	require.NoError(t, err)

	assert.Equal(t, string(lifecycle.StatusPenerbitanProforma), updated.Status)
	assert.Equal(t, 1500000.75, updated.NilaiProforma.Float64)
}

func TestSubmitStageRejectsBadDate(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(repo, lifecycle.StatusNewOrder)
	svc := newTestService(repo, nil)

	edits := dto.SubmitStageDTO{
		NomorOrder:   null.StringFrom("ORD-1"),
		TanggalOrder: null.StringFrom("01/08/2026"),
	}
	_, err := svc.SubmitStage(context.Background(), csActor, "ord-1", edits, nil)

	var inputErr *apperrors.InvalidInputError
	assert.True(t, errors.As(err, &inputErr))
	assert.Empty(t, repo.updates)
}

func TestSubmitStagePairingWithPendingFile(t *testing.T) {
	// The reference number and its file arrive in the same submission: the
	// pending file must count as present, the pair persisted together.
	repo := newFakeOrderRepo()
	seedOrder(repo, lifecycle.StatusEntry)
	storage := &fakeStorage{}
	svc := newTestService(repo, storage)

	edits := dto.SubmitStageDTO{
		TanggalPekerjaan: null.StringFrom("2026-08-05"),
		TonaseAsli:       null.Float64From(7500),
		NomorSiSpk:       null.StringFrom("SI-001"),
	}
	files := []PendingFile{{
		Kind:     entities.DocKindSiSpk,
		FileName: "si-spk.pdf",
		Content:  strings.NewReader("%PDF-1.4"),
	}}

	updated, err := svc.SubmitStage(context.Background(), csActor, "ord-1", edits, files)
	require.NoError(t, err)

	assert.Equal(t, string(lifecycle.StatusDiprosesLapangan), updated.Status)
	require.Contains(t, updated.Documents, entities.DocKindSiSpk)
	doc := updated.Documents[entities.DocKindSiSpk]
	assert.Equal(t, "pub-si-spk.pdf", doc.PublicID)
	assert.Equal(t, csActor.ID, doc.UploadedBy)
	assert.Equal(t, []string{"si-spk.pdf"}, storage.stored)
}

func TestSubmitStageReferenceWithoutFileFails(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(repo, lifecycle.StatusEntry)
	svc := newTestService(repo, nil)

	edits := dto.SubmitStageDTO{
		TanggalPekerjaan: null.StringFrom("2026-08-05"),
		TonaseAsli:       null.Float64From(7500),
		NomorSiSpk:       null.StringFrom("SI-001"),
	}
	_, err := svc.SubmitStage(context.Background(), csActor, "ord-1", edits, nil)

	var vErr *apperrors.ValidationError
	require.True(t, errors.As(err, &vErr))
	require.Len(t, vErr.Reasons, 1)
	assert.Contains(t, vErr.Reasons[0], "SI/SPK")
}

func TestSubmitStageUploadFailure(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(repo, lifecycle.StatusEntry)
	storage := &fakeStorage{failOn: map[string]bool{"si-spk.pdf": true}}
	svc := newTestService(repo, storage)

	edits := dto.SubmitStageDTO{
		TanggalPekerjaan: null.StringFrom("2026-08-05"),
		TonaseAsli:       null.Float64From(7500),
		NomorSiSpk:       null.StringFrom("SI-001"),
	}
	files := []PendingFile{{
		Kind:     entities.DocKindSiSpk,
		FileName: "si-spk.pdf",
		Content:  strings.NewReader("%PDF-1.4"),
	}}

	_, err := svc.SubmitStage(context.Background(), csActor, "ord-1", edits, files)
	require.Error(t, err)

	var upErr *apperrors.UploadError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, entities.DocKindSiSpk, upErr.Kind)

	// Nothing persisted: status and fields unchanged.
	assert.Empty(t, repo.updates)
	assert.Equal(t, string(lifecycle.StatusEntry), repo.orders["ord-1"].Status)
}

func TestSubmitStageUnknownDocumentKind(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(repo, lifecycle.StatusEntry)
	svc := newTestService(repo, nil)

	files := []PendingFile{{Kind: "ktp", FileName: "ktp.pdf", Content: strings.NewReader("x")}}
	_, err := svc.SubmitStage(context.Background(), csActor, "ord-1", dto.SubmitStageDTO{}, files)

	var inputErr *apperrors.InvalidInputError
	assert.True(t, errors.As(err, &inputErr))
}

func TestSubmitStageBackdatesCertificateTransition(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(repo, lifecycle.StatusDiprosesSertifikat)
	svc := newTestService(repo, nil)

	edits := dto.SubmitStageDTO{TanggalPengajuan: null.StringFrom("2026-01-15")}
	updated, err := svc.SubmitStage(context.Background(), paActor, "ord-1", edits, nil)
	require.NoError(t, err)

	assert.Equal(t, string(lifecycle.StatusClosedOrder), updated.Status)
	want, _ := time.Parse("2006-01-02", "2026-01-15")
	assert.True(t, updated.StatusChangedAt.Equal(want))
}

func TestSubmitStageInvoiceCompletesOrder(t *testing.T) {
	repo := newFakeOrderRepo()
	o := seedOrder(repo, lifecycle.StatusInvoice)
	o.NomorInvoice = null.StringFrom("INV-9")
	o.Documents[entities.DocKindInvoice] = entities.Document{Kind: entities.DocKindInvoice}
	svc := newTestService(repo, nil)

	// The distribution group is editable by every role at this stage,
	// koordinator included.
	edits := dto.SubmitStageDTO{
		PengirimSertifikat: null.StringFrom("Kurir A"),
		TanggalPengiriman:  null.StringFrom("2026-08-20"),
		PenerimaSertifikat: null.StringFrom("Bp. Surya"),
		TanggalDiterima:    null.StringFrom("2026-08-22"),
	}
	updated, err := svc.SubmitStage(context.Background(), koActor, "ord-1", edits, nil)
	require.NoError(t, err)
	assert.Equal(t, string(lifecycle.StatusSelesai), updated.Status)
}

func TestSubmitStagePM06DeclaredButMissing(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(repo, lifecycle.StatusDiprosesLapangan)
	svc := newTestService(repo, nil)

	edits := dto.SubmitStageDTO{
		JenisSertifikat:          null.StringFrom(lifecycle.CertTypeNone),
		KeteranganSertifikatPM06: null.StringFrom(lifecycle.KeteranganPM06Ada),
	}
	_, err := svc.SubmitStage(context.Background(), paActor, "ord-1", edits, nil)

	var vErr *apperrors.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Len(t, vErr.Reasons, 2)
	assert.Equal(t, string(lifecycle.StatusDiprosesLapangan), repo.orders["ord-1"].Status)
}

func TestSubmitStageProformaToInvoice(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(repo, lifecycle.StatusPenerbitanProforma)
	storage := &fakeStorage{}
	svc := newTestService(repo, storage)

	edits := dto.SubmitStageDTO{
		NomorInvoice: null.StringFrom("INV-5"),
		FakturPajak:  null.StringFrom("FP-5"),
		NilaiInvoice: null.StringFrom("1.000.000"),
	}
	files := []PendingFile{
		{Kind: entities.DocKindInvoice, FileName: "invoice.pdf", Content: strings.NewReader("%PDF-1.4")},
		{Kind: entities.DocKindFakturPajak, FileName: "faktur.pdf", Content: strings.NewReader("%PDF-1.4")},
	}

	updated, err := svc.SubmitStage(context.Background(), faActor, "ord-1", edits, files)
	require.NoError(t, err)

	assert.Equal(t, string(lifecycle.StatusInvoice), updated.Status)
	assert.Equal(t, float64(1000000), updated.NilaiInvoice.Float64)
	assert.Contains(t, updated.Documents, entities.DocKindInvoice)
	assert.Contains(t, updated.Documents, entities.DocKindFakturPajak)
	assert.Len(t, storage.stored, 2)
}

func TestSubmitStageLeavesUntouchedFieldsAlone(t *testing.T) {
	repo := newFakeOrderRepo()
	o := seedOrder(repo, lifecycle.StatusEntry)
	o.NomorOrder = null.StringFrom("ORD-KEEP")
	o.TanggalOrder = null.TimeFrom(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))
	svc := newTestService(repo, nil)

	edits := dto.SubmitStageDTO{
		TanggalPekerjaan: null.StringFrom("2026-08-05"),
		TonaseAsli:       null.Float64From(7500),
	}
	updated, err := svc.SubmitStage(context.Background(), csActor, "ord-1", edits, nil)
	require.NoError(t, err)

	// Partial merge: intake fields from the earlier stage survive.
	assert.Equal(t, "ORD-KEEP", updated.NomorOrder.String)
	assert.True(t, updated.TanggalOrder.Valid)
	assert.Equal(t, "PT Samudra Jaya", updated.Customer)
}

func TestValidateStageIsDryRun(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(repo, lifecycle.StatusNewOrder)
	svc := newTestService(repo, nil)

	reasons, err := svc.ValidateStage(context.Background(), csActor, "ord-1", dto.SubmitStageDTO{}, nil)
	require.NoError(t, err)
	assert.Len(t, reasons, 2)
	assert.Empty(t, repo.updates)

	edits := dto.SubmitStageDTO{
		NomorOrder:   null.StringFrom("ORD-1"),
		TanggalOrder: null.StringFrom("2026-08-01"),
	}
	reasons, err = svc.ValidateStage(context.Background(), csActor, "ord-1", edits, nil)
	require.NoError(t, err)
	assert.Empty(t, reasons)
	assert.Equal(t, string(lifecycle.StatusNewOrder), repo.orders["ord-1"].Status)
}

func TestCreateOrderGatekeeping(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newTestService(repo, nil)
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, csActor, dto.CreateOrderDTO{Portfolio: constants.PortfolioBatubara, Customer: "PT A"})
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))

	_, err = svc.CreateOrder(ctx, paActor, dto.CreateOrderDTO{Portfolio: constants.PortfolioMineral, Customer: "PT A"})
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))

	order, err := svc.CreateOrder(ctx, paActor, dto.CreateOrderDTO{Portfolio: constants.PortfolioBatubara, Customer: "PT A"})
	require.NoError(t, err)
	assert.Equal(t, string(lifecycle.StatusNewOrder), order.Status)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, paActor.ID, order.CreatedBy)
}

func TestCreateOrderUnknownPortfolio(t *testing.T) {
	svc := newTestService(newFakeOrderRepo(), nil)
	_, err := svc.CreateOrder(context.Background(), paActor, dto.CreateOrderDTO{Portfolio: "perikanan", Customer: "PT A"})

	var inputErr *apperrors.InvalidInputError
	assert.True(t, errors.As(err, &inputErr))
}

func TestDeleteOrderGatekeeping(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(repo, lifecycle.StatusEntry)
	svc := newTestService(repo, nil)
	ctx := context.Background()

	assert.True(t, errors.Is(svc.DeleteOrder(ctx, koActor, "ord-1"), apperrors.ErrForbidden))

	otherAdmin := paActor
	otherAdmin.Portfolio = constants.PortfolioAgri
	assert.True(t, errors.Is(svc.DeleteOrder(ctx, otherAdmin, "ord-1"), apperrors.ErrForbidden))

	require.NoError(t, svc.DeleteOrder(ctx, paActor, "ord-1"))
	assert.True(t, errors.Is(svc.DeleteOrder(ctx, paActor, "ord-1"), apperrors.ErrNotFound))
}
