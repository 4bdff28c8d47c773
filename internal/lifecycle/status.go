// Package lifecycle is the single owner of the order status sequence and of
// the per-stage field rules. Nothing else in the service compares status
// strings or re-derives stage order.
package lifecycle

import (
	apperrors "github.com/dapittriandi/simdor-service/pkg/errors"
)

type Status string

// The fixed stage sequence. Labels match the stored status values.
const (
	StatusNewOrder           Status = "New Order"
	StatusEntry              Status = "Entry"
	StatusDiprosesLapangan   Status = "Diproses - Lapangan"
	StatusDiprosesSertifikat Status = "Diproses - Sertifikat"
	StatusClosedOrder        Status = "Closed Order"
	StatusPenerbitanProforma Status = "Penerbitan Proforma"
	StatusInvoice            Status = "Invoice"
	StatusSelesai            Status = "Selesai"
)

// StatusSequence is ordered; an order only ever moves forward along it,
// one step at a time (the Invoice auto-completion in NextFor is the one
// sanctioned shortcut).
var StatusSequence = []Status{
	StatusNewOrder,
	StatusEntry,
	StatusDiprosesLapangan,
	StatusDiprosesSertifikat,
	StatusClosedOrder,
	StatusPenerbitanProforma,
	StatusInvoice,
	StatusSelesai,
}

// StatusIndex returns the position of s in the sequence, or -1 for an
// unknown status.
func StatusIndex(s Status) int {
	for i, v := range StatusSequence {
		if v == s {
			return i
		}
	}
	return -1
}

func IsValidStatus(s Status) bool { return StatusIndex(s) >= 0 }

func IsTerminal(s Status) bool { return s == StatusSelesai }

// NextStatus returns the successor of the given stage. Advancing past the
// terminal stage is an error, surfaced to the caller, never silently
// ignored.
func NextStatus(current Status) (Status, error) {
	idx := StatusIndex(current)
	if idx < 0 {
		return "", apperrors.NewInvalidInputError("status %q tidak dikenal", string(current))
	}
	if idx == len(StatusSequence)-1 {
		return "", apperrors.ErrAlreadyTerminal
	}
	return StatusSequence[idx+1], nil
}
