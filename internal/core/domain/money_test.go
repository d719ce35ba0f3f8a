package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"$5M", 5_000_000},
		{"$500K", 500_000},
		{"$500K ARR", 500_000},
		{"$1.5M", 1_500_000},
		{"$2B", 2_000_000_000},
		{"1,200,000", 1_200_000},
		{" $250k ", 250_000},
		{"750", 750},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, in := range []string{"", "$", "$M", "lots", "-5M", "NaN", "Inf", "1e30B", "$1E3K", "0x1p4", "1.2.3M", "$9999999999B"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseAmount(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidAmount))
		})
	}
}

func TestParseAmount_Largest(t *testing.T) {
	got, err := ParseAmount("$9000000000B")
	require.NoError(t, err)
	assert.Equal(t, int64(9_000_000_000_000_000_000), got)
	assert.Positive(t, got)
}

func TestParseCheckSize(t *testing.T) {
	cs, err := ParseCheckSize("$1M-$10M")
	require.NoError(t, err)

	assert.Equal(t, int64(1_000_000), cs.Min)
	assert.Equal(t, int64(10_000_000), cs.Max)
	assert.Equal(t, "$1M-$10M", cs.Label)
}

func TestParseCheckSize_Invalid(t *testing.T) {
	for _, in := range []string{"$5M", "$10M-$1M", "$1M-big"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseCheckSize(in)
			assert.ErrorIs(t, err, ErrInvalidAmount)
		})
	}
}

func TestCheckSize_Contains(t *testing.T) {
	cs := CheckSize{Min: 1_000_000, Max: 10_000_000}

	assert.True(t, cs.Contains(1_000_000))
	assert.True(t, cs.Contains(5_000_000))
	assert.True(t, cs.Contains(10_000_000))
	assert.False(t, cs.Contains(500_000))
	assert.False(t, cs.Contains(10_000_001))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "$5M", FormatAmount(5_000_000))
	assert.Equal(t, "$1.5M", FormatAmount(1_500_000))
	assert.Equal(t, "$500K", FormatAmount(500_000))
	assert.Equal(t, "$2B", FormatAmount(2_000_000_000))
	assert.Equal(t, "$999", FormatAmount(999))
}

func TestCheckSize_String(t *testing.T) {
	assert.Equal(t, "$1M-$10M", CheckSize{Min: 1_000_000, Max: 10_000_000, Label: "$1M-$10M"}.String())
	assert.Equal(t, "$250K-$2M", CheckSize{Min: 250_000, Max: 2_000_000}.String())
}
