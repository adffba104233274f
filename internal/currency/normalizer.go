package currency

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/affipay/affipay/internal/apperrors"
)

// UnknownPolicy decides what Normalize does with a currency code missing
// from the rate table.
type UnknownPolicy string

const (
	// UnknownReject fails normalization for unrecognized codes.
	UnknownReject UnknownPolicy = "reject"
	// UnknownPassThrough treats unrecognized codes as already USD.
	UnknownPassThrough UnknownPolicy = "passthrough"
)

const usd = "USD"

// Normalizer converts amounts to canonical USD using a static
// units-per-USD rate table. It is built once at startup and never mutated,
// which keeps stored amount_usd values stable forever.
type Normalizer struct {
	rates  map[string]decimal.Decimal
	policy UnknownPolicy
}

func NewNormalizer(rates map[string]decimal.Decimal, policy UnknownPolicy) (*Normalizer, error) {
	if policy != UnknownReject && policy != UnknownPassThrough {
		return nil, fmt.Errorf("unsupported unknown-currency policy %q", policy)
	}

	own := make(map[string]decimal.Decimal, len(rates))
	for code, rate := range rates {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			continue
		}
		if !rate.IsPositive() {
			return nil, fmt.Errorf("rate for %s must be positive, got %s", code, rate)
		}
		own[code] = rate
	}
	return &Normalizer{rates: own, policy: policy}, nil
}

// Normalize converts (amount, code) to USD. USD passes through unchanged.
func (n *Normalizer) Normalize(amount decimal.Decimal, code string) (decimal.Decimal, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == usd {
		return amount, nil
	}

	rate, ok := n.rates[code]
	if !ok {
		if n.policy == UnknownPassThrough {
			return amount, nil
		}
		return decimal.Decimal{}, fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrency, code)
	}

	return amount.DivRound(rate, 4), nil
}

// Knows reports whether the code is USD or present in the rate table.
func (n *Normalizer) Knows(code string) bool {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == usd {
		return true
	}
	_, ok := n.rates[code]
	return ok
}

// ParseRates parses a "CODE=units-per-usd" list such as
// "GHS=14,NGN=1520.5,KES=129".
func ParseRates(raw string) (map[string]decimal.Decimal, error) {
	rates := make(map[string]decimal.Decimal)
	if strings.TrimSpace(raw) == "" {
		return rates, nil
	}

	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed rate entry %q", pair)
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("malformed rate for %s: %w", parts[0], err)
		}
		rates[strings.ToUpper(strings.TrimSpace(parts[0]))] = rate
	}
	return rates, nil
}
