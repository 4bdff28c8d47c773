package dto

import "github.com/aarondl/null/v8"

// ReportFilterDTO narrows the order export.
type ReportFilterDTO struct {
	Portfolio string `json:"portfolio"`
	DateFrom  string `json:"dateFrom"`
	DateTo    string `json:"dateTo"`
	Status    string `json:"status"`
}

// ReportItemDTO is one row of the Excel export.
type ReportItemDTO struct {
	NomorOrder    null.String  `json:"nomorOrder"`
	Portfolio     string       `json:"portfolio"`
	Customer      string       `json:"namaCustomer"`
	Status        string       `json:"status"`
	NamaKapal     null.String  `json:"namaKapal"`
	TonaseAsli    null.Float64 `json:"tonaseAsli"`
	NilaiProforma null.Float64 `json:"nilaiProforma"`
	NomorInvoice  null.String  `json:"nomorInvoice"`
	NilaiInvoice  null.Float64 `json:"nilaiInvoice"`
	TanggalOrder  null.Time    `json:"tanggalOrder"`
}
