package entities

import "time"

// Document kinds. Keys of Order.Documents; also the multipart part names
// used by the stage-submission endpoint.
const (
	DocKindSiSpk          = "siSpk"
	DocKindSertifikat     = "sertifikat"
	DocKindSertifikatPM06 = "sertifikatPM06"
	DocKindInvoice        = "invoice"
	DocKindFakturPajak    = "fakturPajak"
)

var AllDocumentKinds = []string{
	DocKindSiSpk,
	DocKindSertifikat,
	DocKindSertifikatPM06,
	DocKindInvoice,
	DocKindFakturPajak,
}

func IsValidDocumentKind(kind string) bool {
	for _, k := range AllDocumentKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Document is one uploaded attachment. PublicID is the media-host handle
// needed by the delete-file proxy.
type Document struct {
	Kind       string    `json:"kind"`
	FileName   string    `json:"fileName"`
	FileURL    string    `json:"fileUrl"`
	PublicID   string    `json:"publicId"`
	UploadedBy string    `json:"uploadedBy"`
	UploadedAt time.Time `json:"uploadedAt"`
}
