package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/affipay/affipay/internal/apperrors"
	"github.com/affipay/affipay/internal/logger"
	"github.com/affipay/affipay/internal/models"
)

type WithdrawalRepository interface {
	Save(ctx context.Context, request *models.WithdrawalRequest) error
	GetByID(ctx context.Context, id int64) (*models.WithdrawalRequest, error)
	SumOpenByUser(ctx context.Context, userID int64) (decimal.Decimal, error)
	HasOpenDuplicate(ctx context.Context, userID int64, amountUSD decimal.Decimal) (bool, error)
	Transition(ctx context.Context, id int64, from, to string) error
	RejectPending(ctx context.Context, id int64, reason string) error
	List(ctx context.Context, status string) ([]models.WithdrawalRequest, error)
	Summary(ctx context.Context) ([]models.WithdrawalSummary, error)
}

type withdrawalRepo struct {
	db *sql.DB
}

func NewWithdrawalRepository(db *sql.DB) WithdrawalRepository {
	return &withdrawalRepo{db: db}
}

const withdrawalColumns = `id, user_id, amount_usd, currency, status, payout_channel, account_details, reference, attempts, rejection_reason, failure_reason, created_at, processed_at`

func scanWithdrawal(row interface{ Scan(...any) error }) (*models.WithdrawalRequest, error) {
	var w models.WithdrawalRequest
	err := row.Scan(&w.ID, &w.UserID, &w.AmountUSD, &w.Currency, &w.Status,
		&w.PayoutChannel, &w.AccountDetails, &w.Reference, &w.Attempts,
		&w.RejectionReason, &w.FailureReason, &w.CreatedAt, &w.ProcessedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *withdrawalRepo) Save(ctx context.Context, request *models.WithdrawalRequest) error {
	query := `INSERT INTO withdrawal_requests (user_id, amount_usd, currency, status, payout_channel, account_details, reference, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		request.UserID, request.AmountUSD, request.Currency, request.Status,
		request.PayoutChannel, request.AccountDetails, request.Reference, request.CreatedAt,
	).Scan(&request.ID)
	if err != nil {
		logger.Log.Error("failed to save withdrawal request", zap.Error(err))
	}
	return err
}

func (r *withdrawalRepo) GetByID(ctx context.Context, id int64) (*models.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE id=$1`

	request, err := scanWithdrawal(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		logger.Log.Error("failed to get withdrawal request", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return request, nil
}

// SumOpenByUser totals the amounts reserved by the user's PENDING, APPROVED
// and PROCESSING requests. Subtracting this from available commissions is
// what prevents double-spending one balance across concurrent requests.
func (r *withdrawalRepo) SumOpenByUser(ctx context.Context, userID int64) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount_usd), 0) FROM withdrawal_requests
			  WHERE user_id=$1 AND status IN ('PENDING', 'APPROVED', 'PROCESSING')`

	var total decimal.Decimal
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&total); err != nil {
		logger.Log.Error("failed to sum open withdrawals", zap.Int64("user", userID), zap.Error(err))
		return decimal.Decimal{}, err
	}
	return total, nil
}

func (r *withdrawalRepo) HasOpenDuplicate(ctx context.Context, userID int64, amountUSD decimal.Decimal) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1 FROM withdrawal_requests
				WHERE user_id=$1 AND amount_usd=$2 AND status IN ('PENDING', 'APPROVED', 'PROCESSING'))`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, userID, amountUSD).Scan(&exists); err != nil {
		logger.Log.Error("failed to check duplicate withdrawal", zap.Int64("user", userID), zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *withdrawalRepo) Transition(ctx context.Context, id int64, from, to string) error {
	query := `UPDATE withdrawal_requests SET status=$1 WHERE id=$2 AND status=$3`

	result, err := r.db.ExecContext(ctx, query, to, id, from)
	if err != nil {
		logger.Log.Error("failed to transition withdrawal", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return r.checkTransition(ctx, result, id)
}

func (r *withdrawalRepo) RejectPending(ctx context.Context, id int64, reason string) error {
	query := `UPDATE withdrawal_requests SET status='REJECTED', rejection_reason=$1, processed_at=$2
			  WHERE id=$3 AND status='PENDING'`

	result, err := r.db.ExecContext(ctx, query, reason, time.Now(), id)
	if err != nil {
		logger.Log.Error("failed to reject withdrawal", zap.Int64("id", id), zap.Error(err))
		return err
	}
	return r.checkTransition(ctx, result, id)
}

func (r *withdrawalRepo) checkTransition(ctx context.Context, result sql.Result, id int64) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected != 0 {
		return nil
	}

	var status string
	err = r.db.QueryRowContext(ctx, `SELECT status FROM withdrawal_requests WHERE id=$1`, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return err
	}
	return apperrors.ErrStateConflict
}

func (r *withdrawalRepo) List(ctx context.Context, status string) ([]models.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests
			  WHERE ($1 = '' OR status = $1) ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		logger.Log.Error("failed to query withdrawals", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var requests []models.WithdrawalRequest
	for rows.Next() {
		request, err := scanWithdrawal(rows)
		if err != nil {
			logger.Log.Error("failed to scan withdrawal", zap.Error(err))
			return nil, err
		}
		requests = append(requests, *request)
	}
	return requests, rows.Err()
}

func (r *withdrawalRepo) Summary(ctx context.Context) ([]models.WithdrawalSummary, error) {
	query := `SELECT status, COUNT(*), COALESCE(SUM(amount_usd), 0)
			  FROM withdrawal_requests GROUP BY status ORDER BY status`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Log.Error("failed to query withdrawal summary", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var summaries []models.WithdrawalSummary
	for rows.Next() {
		var s models.WithdrawalSummary
		if err := rows.Scan(&s.Status, &s.Count, &s.TotalUSD); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
