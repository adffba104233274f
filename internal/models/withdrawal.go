package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	WithdrawalStatusPending    = "PENDING"
	WithdrawalStatusApproved   = "APPROVED"
	WithdrawalStatusRejected   = "REJECTED"
	WithdrawalStatusProcessing = "PROCESSING"
	WithdrawalStatusPaid       = "PAID"
	WithdrawalStatusFailed     = "FAILED"
)

// OpenWithdrawalStatuses are the statuses whose amounts reserve balance.
var OpenWithdrawalStatuses = []string{
	WithdrawalStatusPending,
	WithdrawalStatusApproved,
	WithdrawalStatusProcessing,
}

// WithdrawalRequest is an affiliate's instruction to convert available
// balance into an external payout. Reference is the idempotency key used
// for provider transfers.
type WithdrawalRequest struct {
	ID              int64           `json:"id" db:"id"`
	UserID          int64           `json:"user_id" db:"user_id"`
	AmountUSD       decimal.Decimal `json:"amount_usd" db:"amount_usd"`
	Currency        string          `json:"currency" db:"currency"`
	Status          string          `json:"status" db:"status"`
	PayoutChannel   string          `json:"payout_channel" db:"payout_channel"`
	AccountDetails  string          `json:"account_details" db:"account_details"`
	Reference       string          `json:"reference" db:"reference"`
	Attempts        int             `json:"attempts" db:"attempts"`
	RejectionReason *string         `json:"rejection_reason,omitempty" db:"rejection_reason"`
	FailureReason   *string         `json:"failure_reason,omitempty" db:"failure_reason"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	ProcessedAt     *time.Time      `json:"processed_at,omitempty" db:"processed_at"`
}

type WithdrawalSummary struct {
	Status   string          `json:"status" db:"status"`
	Count    int64           `json:"count" db:"count"`
	TotalUSD decimal.Decimal `json:"total_usd" db:"total_usd"`
}

// Balance is the affiliate's spendable view: available commissions minus
// amounts reserved by open withdrawal requests.
type Balance struct {
	Available decimal.Decimal `json:"available"`
	Reserved  decimal.Decimal `json:"reserved"`
}
