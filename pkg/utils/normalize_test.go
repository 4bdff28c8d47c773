package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCurrency(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1500000", 1500000},
		{"1.500.000", 1500000},
		{"1.500.000,75", 1500000.75},
		{"Rp 1.500.000", 1500000},
		{"Rp1.500.000", 1500000},
		{" 250,5 ", 250.5},
		{"0", 0},
	}
	for _, c := range cases {
		got, err := NormalizeCurrency(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestNormalizeCurrencyRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "   ", "Rp", "abc", "1.5x0", "-500"} {
		_, err := NormalizeCurrency(in)
		assert.Error(t, err, in)
	}
}
