package apperrors

import "errors"

var (
	ErrValidation            = errors.New("invalid request")
	ErrStateConflict         = errors.New("operation not allowed in current status")
	ErrInsufficientBalance   = errors.New("insufficient available balance")
	ErrBelowMinimumPayout    = errors.New("amount below minimum payout")
	ErrDuplicateRequest      = errors.New("identical open withdrawal request exists")
	ErrUnknownCurrency       = errors.New("unknown currency code")
	ErrNotFound              = errors.New("not found")
	ErrEmptyBatch            = errors.New("batch has no items")
	ErrBatchNotReprocessable = errors.New("only partially completed batches can be reprocessed")
	ErrBatchNotDeletable     = errors.New("only draft or ready batches can be deleted")
	ErrRetryLimitReached     = errors.New("withdrawal retry limit reached")
)
