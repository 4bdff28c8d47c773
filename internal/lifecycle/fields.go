package lifecycle

// Field names the order attributes as they appear on the wire (JSON keys).
type Field string

const (
	FieldNomorOrder               Field = "nomorOrder"
	FieldTanggalOrder             Field = "tanggalOrder"
	FieldNamaCustomer             Field = "namaCustomer"
	FieldJenisPekerjaan           Field = "jenisPekerjaan"
	FieldLokasiPekerjaan          Field = "lokasiPekerjaan"
	FieldNamaKapal                Field = "namaKapal"
	FieldEstimasiTonase           Field = "estimasiTonase"
	FieldTanggalPekerjaan         Field = "tanggalPekerjaan"
	FieldTonaseAsli               Field = "tonaseAsli"
	FieldNomorSiSpk               Field = "nomorSiSpk"
	FieldJenisSertifikat          Field = "jenisSertifikat"
	FieldNoSertifikat             Field = "noSertifikat"
	FieldKeteranganSertifikatPM06 Field = "keteranganSertifikatPM06"
	FieldNoSertifikatPM06         Field = "noSertifikatPM06"
	FieldTanggalPengajuan         Field = "tanggalPengajuan"
	FieldTanggalSerahOps          Field = "tanggalSerahOps"
	FieldTanggalSerahDukungan     Field = "tanggalSerahDukungan"
	FieldTanggalProformaSistem    Field = "tanggalProformaSistem"
	FieldNilaiProforma            Field = "nilaiProforma"
	FieldNomorInvoice             Field = "nomorInvoice"
	FieldFakturPajak              Field = "fakturPajak"
	FieldNilaiInvoice             Field = "nilaiInvoice"
	FieldPengirimSertifikat       Field = "pengirimSertifikat"
	FieldTanggalPengiriman        Field = "tanggalPengiriman"
	FieldPenerimaSertifikat       Field = "penerimaSertifikat"
	FieldTanggalDiterima          Field = "tanggalDiterima"
)

// KeteranganPM06Ada marks "a PM06 certificate exists for this order".
const KeteranganPM06Ada = "Ada"

// CertTypeNone is the certificate type meaning no certificate is issued.
const CertTypeNone = "Tidak Terbit"

// requiredFields is the single source of truth for what the validator
// checks before allowing advancement out of a stage.
var requiredFields = map[Status][]Field{
	StatusNewOrder: {
		FieldNomorOrder,
		FieldTanggalOrder,
	},
	StatusEntry: {
		FieldTanggalPekerjaan,
		FieldTonaseAsli,
	},
	StatusDiprosesLapangan: {
		FieldJenisSertifikat,
	},
	StatusDiprosesSertifikat: {
		FieldTanggalPengajuan,
	},
	StatusClosedOrder: {
		FieldTanggalSerahOps,
		FieldTanggalSerahDukungan,
		FieldTanggalProformaSistem,
		FieldNilaiProforma,
	},
	StatusPenerbitanProforma: {
		FieldNomorInvoice,
		FieldFakturPajak,
		FieldNilaiInvoice,
	},
	StatusInvoice: {
		FieldPengirimSertifikat,
		FieldTanggalPengiriman,
		FieldPenerimaSertifikat,
		FieldTanggalDiterima,
	},
	StatusSelesai: {},
}

// stageFields is the stage-relevance set: the required fields of the stage
// plus the display-only attributes that belong to it.
var stageFields = map[Status][]Field{
	StatusNewOrder: {
		FieldNomorOrder,
		FieldTanggalOrder,
		FieldNamaCustomer,
		FieldJenisPekerjaan,
		FieldLokasiPekerjaan,
		FieldNamaKapal,
		FieldEstimasiTonase,
		FieldNomorSiSpk,
	},
	StatusEntry: {
		FieldTanggalPekerjaan,
		FieldTonaseAsli,
		FieldLokasiPekerjaan,
		FieldNamaKapal,
		FieldNomorSiSpk,
	},
	StatusDiprosesLapangan: {
		FieldJenisSertifikat,
		FieldNoSertifikat,
		FieldKeteranganSertifikatPM06,
		FieldNoSertifikatPM06,
		FieldTonaseAsli,
	},
	StatusDiprosesSertifikat: {
		FieldTanggalPengajuan,
		FieldJenisSertifikat,
		FieldNoSertifikat,
	},
	StatusClosedOrder: {
		FieldTanggalSerahOps,
		FieldTanggalSerahDukungan,
		FieldTanggalProformaSistem,
		FieldNilaiProforma,
	},
	StatusPenerbitanProforma: {
		FieldNomorInvoice,
		FieldFakturPajak,
		FieldNilaiInvoice,
		FieldNilaiProforma,
	},
	StatusInvoice: {
		FieldPengirimSertifikat,
		FieldTanggalPengiriman,
		FieldPenerimaSertifikat,
		FieldTanggalDiterima,
		FieldNomorInvoice,
	},
	StatusSelesai: {},
}

// DistributionFields is the certificate-distribution group, shown to every
// role at the Invoice stage.
var DistributionFields = []Field{
	FieldPengirimSertifikat,
	FieldTanggalPengiriman,
	FieldPenerimaSertifikat,
	FieldTanggalDiterima,
}

// RequiredFields returns the exact set the validator checks before the
// order may leave the given stage.
func RequiredFields(s Status) []Field {
	out := make([]Field, len(requiredFields[s]))
	copy(out, requiredFields[s])
	return out
}

// StageFields returns the fields relevant to the given stage.
func StageFields(s Status) []Field {
	out := make([]Field, len(stageFields[s]))
	copy(out, stageFields[s])
	return out
}
