package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BatchWorkItem is a batch item joined with the withdrawal fields needed
// to instruct the provider.
type BatchWorkItem struct {
	ItemID         int64           `db:"item_id"`
	WithdrawalID   int64           `db:"withdrawal_id"`
	UserID         int64           `db:"user_id"`
	Reference      string          `db:"reference"`
	Amount         decimal.Decimal `db:"amount"`
	Currency       string          `db:"currency"`
	AccountDetails string          `db:"account_details"`
	Attempts       int             `db:"attempts"`
}

// BatchExportRow is one line of a batch reconciliation CSV.
type BatchExportRow struct {
	Reference     string          `db:"reference"`
	Affiliate     string          `db:"affiliate"`
	Email         string          `db:"email"`
	AmountUSD     decimal.Decimal `db:"amount_usd"`
	Currency      string          `db:"currency"`
	Channel       string          `db:"payout_channel"`
	Status        string          `db:"status"`
	FailureReason *string         `db:"failure_reason"`
}

// CommissionReportRow is one line of the commission report CSV. Monetary
// values were normalized to USD when the commission was recorded.
type CommissionReportRow struct {
	Affiliate     string           `db:"affiliate"`
	Email         string           `db:"email"`
	Source        CommissionSource `db:"source"`
	CommissionUSD decimal.Decimal  `db:"amount_usd"`
	SaleAmountUSD decimal.Decimal  `db:"sale_amount_usd"`
	Rate          decimal.Decimal  `db:"rate"`
	Status        string           `db:"status"`
	CreatedAt     time.Time        `db:"created_at"`
}
