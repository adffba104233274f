package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	BatchStatusDraft              = "DRAFT"
	BatchStatusReady              = "READY"
	BatchStatusProcessing         = "PROCESSING"
	BatchStatusCompleted          = "COMPLETED"
	BatchStatusPartiallyCompleted = "PARTIALLY_COMPLETED"
	BatchStatusFailed             = "FAILED"
)

const (
	BatchItemStatusPending = "PENDING"
	BatchItemStatusSuccess = "SUCCESS"
	BatchItemStatusFailed  = "FAILED"
)

// PayoutBatch groups approved withdrawals for one (provider, currency)
// corridor. TotalAmountUSD always equals the sum of its items' amounts.
type PayoutBatch struct {
	ID               int64           `json:"id" db:"id"`
	BatchReference   string          `json:"batch_reference" db:"batch_reference"`
	Provider         string          `json:"provider" db:"provider"`
	Currency         string          `json:"currency" db:"currency"`
	Status           string          `json:"status" db:"status"`
	Notes            string          `json:"notes,omitempty" db:"notes"`
	TotalWithdrawals int             `json:"total_withdrawals" db:"total_withdrawals"`
	TotalAmountUSD   decimal.Decimal `json:"total_amount_usd" db:"total_amount_usd"`
	SuccessfulCount  int             `json:"successful_count" db:"successful_count"`
	FailedCount      int             `json:"failed_count" db:"failed_count"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
}

// BatchItem is one transfer attempt inside a batch. It weakly references
// its withdrawal: the withdrawal outlives any single failed batch attempt.
type BatchItem struct {
	ID                int64           `json:"id" db:"id"`
	BatchID           int64           `json:"batch_id" db:"batch_id"`
	WithdrawalID      int64           `json:"withdrawal_id" db:"withdrawal_id"`
	Amount            decimal.Decimal `json:"amount" db:"amount"`
	ProviderReference *string         `json:"provider_reference,omitempty" db:"provider_reference"`
	Status            string          `json:"status" db:"status"`
	FailureReason     *string         `json:"failure_reason,omitempty" db:"failure_reason"`
}
