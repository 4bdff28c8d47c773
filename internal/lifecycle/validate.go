package lifecycle

import (
	"fmt"

	"github.com/dapittriandi/simdor-service/internal/entities"
)

// fieldLabels are the user-facing names used in validation messages.
var fieldLabels = map[Field]string{
	FieldNomorOrder:               "Nomor Order",
	FieldTanggalOrder:             "Tanggal Order",
	FieldNamaCustomer:             "Nama Customer",
	FieldJenisPekerjaan:           "Jenis Pekerjaan",
	FieldLokasiPekerjaan:          "Lokasi Pekerjaan",
	FieldNamaKapal:                "Nama Kapal",
	FieldEstimasiTonase:           "Estimasi Tonase",
	FieldTanggalPekerjaan:         "Tanggal Pekerjaan",
	FieldTonaseAsli:               "Tonase Asli",
	FieldNomorSiSpk:               "Nomor SI/SPK",
	FieldJenisSertifikat:          "Jenis Sertifikat",
	FieldNoSertifikat:             "No Sertifikat",
	FieldKeteranganSertifikatPM06: "Keterangan Sertifikat PM06",
	FieldNoSertifikatPM06:         "No Sertifikat PM06",
	FieldTanggalPengajuan:         "Tanggal Pengajuan",
	FieldTanggalSerahOps:          "Tanggal Serah Proforma ke Ops",
	FieldTanggalSerahDukungan:     "Tanggal Serah Proforma ke Dukungan Bisnis",
	FieldTanggalProformaSistem:    "Tanggal Proforma by System",
	FieldNilaiProforma:            "Nilai Proforma",
	FieldNomorInvoice:             "Nomor Invoice",
	FieldFakturPajak:              "Faktur Pajak",
	FieldNilaiInvoice:             "Nilai Invoice",
	FieldPengirimSertifikat:       "Pengirim Sertifikat",
	FieldTanggalPengiriman:        "Tanggal Pengiriman",
	FieldPenerimaSertifikat:       "Penerima Sertifikat",
	FieldTanggalDiterima:          "Tanggal Diterima",
}

func labelOf(f Field) string {
	if l, ok := fieldLabels[f]; ok {
		return l
	}
	return string(f)
}

// documentPairs couples a reference-number field with its attachment kind.
// The rule holds at every stage: reference without file, or file without
// reference, is a violation.
var documentPairs = []struct {
	refField Field
	docKind  string
	label    string
}{
	{FieldNomorSiSpk, entities.DocKindSiSpk, "SI/SPK"},
	{FieldFakturPajak, entities.DocKindFakturPajak, "Faktur Pajak"},
	{FieldNomorInvoice, entities.DocKindInvoice, "Invoice"},
}

// FieldFilled reports whether the given field carries a value on the
// (merged) order snapshot.
func FieldFilled(o *entities.Order, f Field) bool {
	switch f {
	case FieldNomorOrder:
		return o.NomorOrder.Valid && o.NomorOrder.String != ""
	case FieldTanggalOrder:
		return o.TanggalOrder.Valid
	case FieldNamaCustomer:
		return o.Customer != ""
	case FieldJenisPekerjaan:
		return o.JenisPekerjaan.Valid && o.JenisPekerjaan.String != ""
	case FieldLokasiPekerjaan:
		return o.LokasiPekerjaan.Valid && o.LokasiPekerjaan.String != ""
	case FieldNamaKapal:
		return o.NamaKapal.Valid && o.NamaKapal.String != ""
	case FieldEstimasiTonase:
		return o.EstimasiTonase.Valid
	case FieldTanggalPekerjaan:
		return o.TanggalPekerjaan.Valid
	case FieldTonaseAsli:
		return o.TonaseAsli.Valid
	case FieldNomorSiSpk:
		return o.NomorSiSpk.Valid && o.NomorSiSpk.String != ""
	case FieldJenisSertifikat:
		return o.JenisSertifikat.Valid && o.JenisSertifikat.String != ""
	case FieldNoSertifikat:
		return o.NoSertifikat.Valid && o.NoSertifikat.String != ""
	case FieldKeteranganSertifikatPM06:
		return o.KeteranganSertifikatPM06.Valid && o.KeteranganSertifikatPM06.String != ""
	case FieldNoSertifikatPM06:
		return o.NoSertifikatPM06.Valid && o.NoSertifikatPM06.String != ""
	case FieldTanggalPengajuan:
		return o.TanggalPengajuan.Valid
	case FieldTanggalSerahOps:
		return o.TanggalSerahOps.Valid
	case FieldTanggalSerahDukungan:
		return o.TanggalSerahDukungan.Valid
	case FieldTanggalProformaSistem:
		return o.TanggalProformaSistem.Valid
	case FieldNilaiProforma:
		return o.NilaiProforma.Valid
	case FieldNomorInvoice:
		return o.NomorInvoice.Valid && o.NomorInvoice.String != ""
	case FieldFakturPajak:
		return o.FakturPajak.Valid && o.FakturPajak.String != ""
	case FieldNilaiInvoice:
		return o.NilaiInvoice.Valid
	case FieldPengirimSertifikat:
		return o.PengirimSertifikat.Valid && o.PengirimSertifikat.String != ""
	case FieldTanggalPengiriman:
		return o.TanggalPengiriman.Valid
	case FieldPenerimaSertifikat:
		return o.PenerimaSertifikat.Valid && o.PenerimaSertifikat.String != ""
	case FieldTanggalDiterima:
		return o.TanggalDiterima.Valid
	}
	return false
}

// Validate runs every stage and pairing rule against the merged order
// snapshot and returns all violations at once. It never mutates the order.
// An empty result means the order may leave its current stage.
func Validate(o *entities.Order) []string {
	var reasons []string

	// Required fields of the current stage.
	for _, f := range requiredFields[Status(o.Status)] {
		if !FieldFilled(o, f) {
			reasons = append(reasons, fmt.Sprintf("%s wajib diisi pada tahap %s", labelOf(f), o.Status))
		}
	}

	// Paired reference+file rule, independent of the active stage.
	for _, pair := range documentPairs {
		refFilled := FieldFilled(o, pair.refField)
		docPresent := o.HasDocument(pair.docKind)
		if refFilled && !docPresent {
			reasons = append(reasons, fmt.Sprintf("dokumen %s belum diunggah padahal nomornya sudah diisi", pair.label))
		}
		if docPresent && !refFilled {
			reasons = append(reasons, fmt.Sprintf("nomor %s belum diisi padahal dokumennya sudah diunggah", pair.label))
		}
	}

	// PM06 certificate rule: flag "Ada" demands both number and document.
	if o.KeteranganSertifikatPM06.Valid && o.KeteranganSertifikatPM06.String == KeteranganPM06Ada {
		if !FieldFilled(o, FieldNoSertifikatPM06) {
			reasons = append(reasons, "No Sertifikat PM06 wajib diisi karena sertifikat PM06 dinyatakan Ada")
		}
		if !o.HasDocument(entities.DocKindSertifikatPM06) {
			reasons = append(reasons, "dokumen sertifikat PM06 wajib diunggah karena sertifikat PM06 dinyatakan Ada")
		}
	}

	// Main certificate rule: any issued certificate type demands both
	// number and document.
	if o.JenisSertifikat.Valid && o.JenisSertifikat.String != "" && o.JenisSertifikat.String != CertTypeNone {
		if !FieldFilled(o, FieldNoSertifikat) {
			reasons = append(reasons, "No Sertifikat wajib diisi untuk jenis sertifikat "+o.JenisSertifikat.String)
		}
		if !o.HasDocument(entities.DocKindSertifikat) {
			reasons = append(reasons, "dokumen sertifikat wajib diunggah untuk jenis sertifikat "+o.JenisSertifikat.String)
		}
	}

	return reasons
}

// NextFor computes the status the order advances to once its current stage
// is complete. At Invoice, a fully filled certificate-distribution group
// completes the order outright (Selesai) instead of stopping at an
// intermediate value.
func NextFor(o *entities.Order) (Status, error) {
	current := Status(o.Status)

	if current == StatusInvoice {
		allFilled := true
		for _, f := range DistributionFields {
			if !FieldFilled(o, f) {
				allFilled = false
				break
			}
		}
		if allFilled {
			return StatusSelesai, nil
		}
	}

	return NextStatus(current)
}
