package utils

import (
	"strconv"
	"strings"

	apperrors "github.com/dapittriandi/simdor-service/pkg/errors"
)

// NormalizeCurrency parses a monetary amount as typed by users
// ("1.500.000", "1.500.000,75", "Rp 1.500.000", plain "1500000") into a
// non-negative number. Dots are thousand separators, a comma is the decimal
// separator. Runs at the workflow ingress so persistence only ever sees
// plain numbers.
func NormalizeCurrency(input string) (float64, error) {
	s := strings.TrimSpace(input)
	s = strings.TrimPrefix(s, "Rp")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, apperrors.NewInvalidInputError("nilai nominal kosong")
	}

	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, apperrors.NewInvalidInputError("nilai nominal %q tidak valid", input)
	}
	if value < 0 {
		return 0, apperrors.NewInvalidInputError("nilai nominal tidak boleh negatif")
	}
	return value, nil
}
