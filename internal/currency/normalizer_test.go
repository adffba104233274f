package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/affipay/affipay/internal/apperrors"
)

func testRates(t *testing.T) map[string]decimal.Decimal {
	t.Helper()
	rates, err := ParseRates("GHS=14,NGN=1520.5,KES=129")
	require.NoError(t, err)
	return rates
}

func TestNormalizer_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		policy   UnknownPolicy
		amount   string
		currency string
		want     string
		wantErr  error
	}{
		{
			name:     "usd passes through",
			policy:   UnknownReject,
			amount:   "250.55",
			currency: "USD",
			want:     "250.55",
		},
		{
			name:     "ghs divided by units per usd",
			policy:   UnknownReject,
			amount:   "1400",
			currency: "GHS",
			want:     "100",
		},
		{
			name:     "lowercase code accepted",
			policy:   UnknownReject,
			amount:   "1520.5",
			currency: "ngn",
			want:     "1",
		},
		{
			name:     "unknown code rejected under reject policy",
			policy:   UnknownReject,
			amount:   "50",
			currency: "XXX",
			wantErr:  apperrors.ErrUnknownCurrency,
		},
		{
			name:     "unknown code passes through under passthrough policy",
			policy:   UnknownPassThrough,
			amount:   "50",
			currency: "XXX",
			want:     "50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := NewNormalizer(testRates(t), tt.policy)
			require.NoError(t, err)

			got, err := n.Normalize(decimal.RequireFromString(tt.amount), tt.currency)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestNormalizer_NormalizeIsStable(t *testing.T) {
	n, err := NewNormalizer(testRates(t), UnknownReject)
	require.NoError(t, err)

	amount := decimal.RequireFromString("1400")
	first, err := n.Normalize(amount, "GHS")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := n.Normalize(amount, "GHS")
		require.NoError(t, err)
		assert.True(t, first.Equal(again))
	}
}

func TestNewNormalizer_InvalidInput(t *testing.T) {
	_, err := NewNormalizer(map[string]decimal.Decimal{"GHS": decimal.Zero}, UnknownReject)
	assert.Error(t, err)

	_, err = NewNormalizer(nil, UnknownPolicy("whatever"))
	assert.Error(t, err)
}

func TestParseRates(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantLen int
		wantErr bool
	}{
		{"empty string", "", 0, false},
		{"single pair", "GHS=14", 1, false},
		{"several pairs with spaces", " GHS=14 , kes = 129 ", 2, false},
		{"missing value", "GHS", 0, true},
		{"bad number", "GHS=abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rates, err := ParseRates(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, rates, tt.wantLen)
		})
	}
}
