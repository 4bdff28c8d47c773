package dto

import (
	"time"

	"github.com/aarondl/null/v8"

	"github.com/dapittriandi/simdor-service/internal/entities"
)

// CreateOrderDTO opens a new order with the minimal intake fields. Status
// starts at the first stage.
type CreateOrderDTO struct {
	Portfolio      string       `json:"portfolio" validate:"required"`
	Customer       string       `json:"namaCustomer" validate:"required"`
	JenisPekerjaan null.String  `json:"jenisPekerjaan"`
	NamaKapal      null.String  `json:"namaKapal"`
	EstimasiTonase null.Float64 `json:"estimasiTonase"`
}

// SubmitStageDTO carries one stage-completion submission. Dates arrive as
// "2006-01-02" strings, monetary values as user-typed text ("1.500.000");
// both are normalized at the workflow ingress before anything is merged or
// validated.
type SubmitStageDTO struct {
	NomorOrder      null.String  `json:"nomorOrder"`
	TanggalOrder    null.String  `json:"tanggalOrder"`
	Customer        null.String  `json:"namaCustomer"`
	JenisPekerjaan  null.String  `json:"jenisPekerjaan"`
	LokasiPekerjaan null.String  `json:"lokasiPekerjaan"`
	NamaKapal       null.String  `json:"namaKapal"`
	EstimasiTonase  null.Float64 `json:"estimasiTonase"`

	TanggalPekerjaan null.String  `json:"tanggalPekerjaan"`
	TonaseAsli       null.Float64 `json:"tonaseAsli"`
	NomorSiSpk       null.String  `json:"nomorSiSpk"`

	JenisSertifikat          null.String `json:"jenisSertifikat"`
	NoSertifikat             null.String `json:"noSertifikat"`
	KeteranganSertifikatPM06 null.String `json:"keteranganSertifikatPM06"`
	NoSertifikatPM06         null.String `json:"noSertifikatPM06"`
	TanggalPengajuan         null.String `json:"tanggalPengajuan"`

	TanggalSerahOps       null.String `json:"tanggalSerahOps"`
	TanggalSerahDukungan  null.String `json:"tanggalSerahDukungan"`
	TanggalProformaSistem null.String `json:"tanggalProformaSistem"`
	NilaiProforma         null.String `json:"nilaiProforma"`
	NomorInvoice          null.String `json:"nomorInvoice"`
	FakturPajak           null.String `json:"fakturPajak"`
	NilaiInvoice          null.String `json:"nilaiInvoice"`

	PengirimSertifikat null.String `json:"pengirimSertifikat"`
	TanggalPengiriman  null.String `json:"tanggalPengiriman"`
	PenerimaSertifikat null.String `json:"penerimaSertifikat"`
	TanggalDiterima    null.String `json:"tanggalDiterima"`
}

// OrderDTO is the API shape of one order.
type OrderDTO struct {
	entities.Order
}

// OrderListItemDTO trims the aggregate for list views.
type OrderListItemDTO struct {
	ID              string      `json:"id"`
	Portfolio       string      `json:"portfolio"`
	Customer        string      `json:"namaCustomer"`
	Status          string      `json:"status"`
	StatusChangedAt time.Time   `json:"statusChangedAt"`
	NomorOrder      null.String `json:"nomorOrder"`
	NamaKapal       null.String `json:"namaKapal"`
	CreatedAt       time.Time   `json:"createdAt"`
}
