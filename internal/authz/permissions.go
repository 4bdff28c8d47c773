// Package authz decides what an actor may see, edit and delete. Field
// visibility is the intersection of a static role permission set with the
// stage relevance set owned by the lifecycle package.
package authz

import (
	"github.com/dapittriandi/simdor-service/internal/lifecycle"
	"github.com/dapittriandi/simdor-service/pkg/constants"
)

// RoleAll is the pseudo-role whose field set is granted to every actor (the
// certificate-distribution group at the Invoice stage).
const RoleAll = "all"

// roleFields is the static per-role permission list. Permission is broader
// than requirement: a portfolio admin may touch the job location at any
// stage even though only one stage requires it.
var roleFields = map[string][]lifecycle.Field{
	constants.RoleCustomerService: {
		lifecycle.FieldNomorOrder,
		lifecycle.FieldTanggalOrder,
		lifecycle.FieldNamaCustomer,
		lifecycle.FieldJenisPekerjaan,
		lifecycle.FieldLokasiPekerjaan,
		lifecycle.FieldNamaKapal,
		lifecycle.FieldEstimasiTonase,
		lifecycle.FieldTanggalPekerjaan,
		lifecycle.FieldTonaseAsli,
		lifecycle.FieldNomorSiSpk,
	},
	constants.RolePortfolioAdmin: {
		lifecycle.FieldNamaCustomer,
		lifecycle.FieldJenisPekerjaan,
		lifecycle.FieldLokasiPekerjaan,
		lifecycle.FieldNamaKapal,
		lifecycle.FieldEstimasiTonase,
		lifecycle.FieldTanggalPekerjaan,
		lifecycle.FieldTonaseAsli,
		lifecycle.FieldNomorSiSpk,
		lifecycle.FieldJenisSertifikat,
		lifecycle.FieldNoSertifikat,
		lifecycle.FieldKeteranganSertifikatPM06,
		lifecycle.FieldNoSertifikatPM06,
		lifecycle.FieldTanggalPengajuan,
	},
	constants.RoleFinanceAdmin: {
		lifecycle.FieldTanggalSerahOps,
		lifecycle.FieldTanggalSerahDukungan,
		lifecycle.FieldTanggalProformaSistem,
		lifecycle.FieldNilaiProforma,
		lifecycle.FieldNomorInvoice,
		lifecycle.FieldFakturPajak,
		lifecycle.FieldNilaiInvoice,
	},
	// Koordinator is read-only: no editable fields.
	constants.RoleKoordinator: {},
	RoleAll: {
		lifecycle.FieldPengirimSertifikat,
		lifecycle.FieldTanggalPengiriman,
		lifecycle.FieldPenerimaSertifikat,
		lifecycle.FieldTanggalDiterima,
	},
}

// RoleFieldSet returns the static permission list of a role.
func RoleFieldSet(role string) []lifecycle.Field {
	out := make([]lifecycle.Field, len(roleFields[role]))
	copy(out, roleFields[role])
	return out
}
