package lifecycle

import (
	"strings"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dapittriandi/simdor-service/internal/entities"
)

func newOrderAt(status Status) *entities.Order {
	return &entities.Order{
		ID:        "ord-1",
		Portfolio: "batubara",
		Customer:  "PT Samudra Jaya",
		Status:    string(status),
		Documents: map[string]entities.Document{},
	}
}

func withDocument(o *entities.Order, kind string) *entities.Order {
	o.Documents[kind] = entities.Document{Kind: kind, FileName: kind + ".pdf"}
	return o
}

func TestValidateNewOrderMissingEverything(t *testing.T) {
	o := newOrderAt(StatusNewOrder)

	reasons := Validate(o)
	require.Len(t, reasons, 2)
	assert.Contains(t, reasons[0], "Nomor Order")
	assert.Contains(t, reasons[1], "Tanggal Order")
}

func TestValidateNewOrderComplete(t *testing.T) {
	o := newOrderAt(StatusNewOrder)
	o.NomorOrder = null.StringFrom("ORD-2026-001")
	o.TanggalOrder = null.TimeFrom(time.Now())

	assert.Empty(t, Validate(o))
}

func TestValidateCollectsAllViolations(t *testing.T) {
	// Closed Order requires four fields; none are filled, so all four must
	// be reported at once, not just the first.
	o := newOrderAt(StatusClosedOrder)

	reasons := Validate(o)
	assert.Len(t, reasons, 4)
}

func TestValidateDoesNotMutate(t *testing.T) {
	o := newOrderAt(StatusEntry)
	before := *o

	Validate(o)

	assert.Equal(t, before.Status, o.Status)
	assert.Equal(t, before.TonaseAsli, o.TonaseAsli)
	assert.Empty(t, o.Documents)
}

func TestPairingReferenceWithoutFile(t *testing.T) {
	o := newOrderAt(StatusEntry)
	o.TanggalPekerjaan = null.TimeFrom(time.Now())
	o.TonaseAsli = null.Float64From(7500)
	o.NomorSiSpk = null.StringFrom("SI-001")

	reasons := Validate(o)
	require.Len(t, reasons, 1)
	assert.Contains(t, reasons[0], "SI/SPK")
	assert.Contains(t, reasons[0], "belum diunggah")
}

func TestPairingFileWithoutReference(t *testing.T) {
	o := newOrderAt(StatusEntry)
	o.TanggalPekerjaan = null.TimeFrom(time.Now())
	o.TonaseAsli = null.Float64From(7500)
	withDocument(o, entities.DocKindSiSpk)

	reasons := Validate(o)
	require.Len(t, reasons, 1)
	assert.Contains(t, reasons[0], "SI/SPK")
	assert.Contains(t, reasons[0], "belum diisi")
}

func TestPairingBothSidesPresent(t *testing.T) {
	o := newOrderAt(StatusEntry)
	o.TanggalPekerjaan = null.TimeFrom(time.Now())
	o.TonaseAsli = null.Float64From(7500)
	o.NomorSiSpk = null.StringFrom("SI-001")
	withDocument(o, entities.DocKindSiSpk)

	assert.Empty(t, Validate(o))
}

func TestPM06AdaDemandsNumberAndDocument(t *testing.T) {
	o := newOrderAt(StatusDiprosesLapangan)
	o.JenisSertifikat = null.StringFrom(CertTypeNone)
	o.KeteranganSertifikatPM06 = null.StringFrom(KeteranganPM06Ada)

	reasons := Validate(o)
	require.Len(t, reasons, 2)
	assert.Contains(t, strings.Join(reasons, "; "), "No Sertifikat PM06")
	assert.Contains(t, strings.Join(reasons, "; "), "dokumen sertifikat PM06")
}

func TestPM06AdaSatisfied(t *testing.T) {
	o := newOrderAt(StatusDiprosesLapangan)
	o.JenisSertifikat = null.StringFrom(CertTypeNone)
	o.KeteranganSertifikatPM06 = null.StringFrom(KeteranganPM06Ada)
	o.NoSertifikatPM06 = null.StringFrom("PM06-77")
	withDocument(o, entities.DocKindSertifikatPM06)

	assert.Empty(t, Validate(o))
}

func TestPM06NotAdaRequiresNothing(t *testing.T) {
	o := newOrderAt(StatusDiprosesLapangan)
	o.JenisSertifikat = null.StringFrom(CertTypeNone)
	o.KeteranganSertifikatPM06 = null.StringFrom("Tidak Ada")

	assert.Empty(t, Validate(o))
}

func TestIssuedCertificateDemandsNumberAndDocument(t *testing.T) {
	o := newOrderAt(StatusDiprosesLapangan)
	o.JenisSertifikat = null.StringFrom("COW")

	reasons := Validate(o)
	require.Len(t, reasons, 2)
}

func TestCertTypeNoneSkipsCertificateRule(t *testing.T) {
	o := newOrderAt(StatusDiprosesLapangan)
	o.JenisSertifikat = null.StringFrom(CertTypeNone)

	assert.Empty(t, Validate(o))
}

func TestValidateIsIdempotent(t *testing.T) {
	o := newOrderAt(StatusPenerbitanProforma)
	o.NomorInvoice = null.StringFrom("INV-9")

	first := Validate(o)
	second := Validate(o)
	assert.Equal(t, first, second)
}

func TestNextForRegularAdvance(t *testing.T) {
	o := newOrderAt(StatusEntry)
	next, err := NextFor(o)
	require.NoError(t, err)
	assert.Equal(t, StatusDiprosesLapangan, next)
}

func TestNextForInvoiceAutoCompletion(t *testing.T) {
	o := newOrderAt(StatusInvoice)
	o.PengirimSertifikat = null.StringFrom("Kurir A")
	o.TanggalPengiriman = null.TimeFrom(time.Now())
	o.PenerimaSertifikat = null.StringFrom("Bp. Surya")
	o.TanggalDiterima = null.TimeFrom(time.Now())

	next, err := NextFor(o)
	require.NoError(t, err)
	assert.Equal(t, StatusSelesai, next)
}

func TestNextForTerminal(t *testing.T) {
	o := newOrderAt(StatusSelesai)
	_, err := NextFor(o)
	assert.Error(t, err)
}
