package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CommissionSource string

const (
	SourceReferralMembership CommissionSource = "referral_membership"
	SourceLearnerRenewal     CommissionSource = "learner_renewal"
	SourceDCSAddon           CommissionSource = "dcs_addon"
	SourceAffiliateReferral  CommissionSource = "affiliate_referral"
)

func (s CommissionSource) Valid() bool {
	switch s {
	case SourceReferralMembership, SourceLearnerRenewal, SourceDCSAddon, SourceAffiliateReferral:
		return true
	}
	return false
}

const (
	CommissionStatusPending   = "pending"
	CommissionStatusAvailable = "available"
	CommissionStatusRejected  = "rejected"
	CommissionStatusPaid      = "paid"
)

// Commission is a ledger entry for money owed to an affiliate.
// AmountUSD and SaleAmountUSD are computed once when the row is recorded
// and never recomputed, so later rate-table changes cannot alter history.
type Commission struct {
	ID              int64            `json:"id" db:"id"`
	AffiliateID     int64            `json:"affiliate_id" db:"affiliate_id"`
	Source          CommissionSource `json:"source" db:"source"`
	Amount          decimal.Decimal  `json:"amount" db:"amount"`
	Currency        string           `json:"currency" db:"currency"`
	AmountUSD       decimal.Decimal  `json:"amount_usd" db:"amount_usd"`
	SaleAmountUSD   decimal.Decimal  `json:"sale_amount_usd" db:"sale_amount_usd"`
	Rate            decimal.Decimal  `json:"rate" db:"rate"`
	Status          string           `json:"status" db:"status"`
	LinkedPaymentID *string          `json:"linked_payment_id,omitempty" db:"linked_payment_id"`
	CreatedAt       time.Time        `json:"created_at" db:"created_at"`
	PaidAt          *time.Time       `json:"paid_at,omitempty" db:"paid_at"`
}

// SaleEvent is the inbound payment notification that originates a commission.
type SaleEvent struct {
	AffiliateID     int64            `json:"affiliate_id"`
	Source          CommissionSource `json:"source_type"`
	Amount          decimal.Decimal  `json:"amount"`
	Currency        string           `json:"currency"`
	Rate            decimal.Decimal  `json:"rate"`
	LinkedPaymentID string           `json:"linked_payment_id"`
}

// CommissionSummary aggregates counts and USD totals per status.
type CommissionSummary struct {
	Status   string          `json:"status" db:"status"`
	Count    int64           `json:"count" db:"count"`
	TotalUSD decimal.Decimal `json:"total_usd" db:"total_usd"`
}
