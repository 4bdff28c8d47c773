package entities

import (
	"time"

	"github.com/aarondl/null/v8"

	"github.com/dapittriandi/simdor-service/pkg/types"
)

// Order is the central aggregate: one certification order moving through
// the fixed lifecycle. Every stage-payload field is optional until its
// stage requires it, hence the null types.
type Order struct {
	ID        string `json:"id"`
	Portfolio string `json:"portfolio"`
	Customer  string `json:"namaCustomer"`

	Status          string    `json:"status"`
	StatusChangedAt time.Time `json:"statusChangedAt"`

	// Intake
	NomorOrder      null.String  `json:"nomorOrder"`
	TanggalOrder    null.Time    `json:"tanggalOrder"`
	JenisPekerjaan  null.String  `json:"jenisPekerjaan"`
	LokasiPekerjaan null.String  `json:"lokasiPekerjaan"`
	NamaKapal       null.String  `json:"namaKapal"`
	EstimasiTonase  null.Float64 `json:"estimasiTonase"`

	// Field work
	TanggalPekerjaan null.Time    `json:"tanggalPekerjaan"`
	TonaseAsli       null.Float64 `json:"tonaseAsli"`
	NomorSiSpk       null.String  `json:"nomorSiSpk"`

	// Certificates
	JenisSertifikat          null.String `json:"jenisSertifikat"`
	NoSertifikat             null.String `json:"noSertifikat"`
	KeteranganSertifikatPM06 null.String `json:"keteranganSertifikatPM06"`
	NoSertifikatPM06         null.String `json:"noSertifikatPM06"`
	TanggalPengajuan         null.Time   `json:"tanggalPengajuan"`

	// Proforma and invoicing
	TanggalSerahOps       null.Time    `json:"tanggalSerahOps"`
	TanggalSerahDukungan  null.Time    `json:"tanggalSerahDukungan"`
	TanggalProformaSistem null.Time    `json:"tanggalProformaSistem"`
	NilaiProforma         null.Float64 `json:"nilaiProforma"`
	NomorInvoice          null.String  `json:"nomorInvoice"`
	FakturPajak           null.String  `json:"fakturPajak"`
	NilaiInvoice          null.Float64 `json:"nilaiInvoice"`

	// Certificate distribution
	PengirimSertifikat null.String `json:"pengirimSertifikat"`
	TanggalPengiriman  null.Time   `json:"tanggalPengiriman"`
	PenerimaSertifikat null.String `json:"penerimaSertifikat"`
	TanggalDiterima    null.Time   `json:"tanggalDiterima"`

	// kind -> attachment; a missing key means "not uploaded".
	Documents map[string]Document `json:"documents"`

	types.BaseEntity
}

// HasDocument reports whether an attachment of the given kind exists.
func (o *Order) HasDocument(kind string) bool {
	if o.Documents == nil {
		return false
	}
	_, ok := o.Documents[kind]
	return ok
}
