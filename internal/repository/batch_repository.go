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

type BatchRepository interface {
	Create(ctx context.Context, batch *models.PayoutBatch) error
	GetByID(ctx context.Context, id int64) (*models.PayoutBatch, error)
	List(ctx context.Context) ([]models.PayoutBatch, error)
	ListItems(ctx context.Context, batchID int64) ([]models.BatchItem, error)
	AttachApproved(ctx context.Context, batchID int64) (int, error)
	Transition(ctx context.Context, id int64, from, to string) error
	SetOutcome(ctx context.Context, id int64, status string, successful, failed int) error
	ItemCounts(ctx context.Context, batchID int64) (successful, failed, pending int, err error)
	ListWorkItems(ctx context.Context, batchID int64, itemStatus string) ([]models.BatchWorkItem, error)
	PrepareItemRetry(ctx context.Context, itemID int64, maxAttempts int) error
	ApplyItemSuccess(ctx context.Context, itemID int64, providerReference string) error
	ApplyItemFailure(ctx context.Context, itemID int64, reason string) error
	ListExportRows(ctx context.Context, batchID int64) ([]models.BatchExportRow, error)
	Delete(ctx context.Context, batchID int64) error
}

type batchRepo struct {
	db *sql.DB
}

func NewBatchRepository(db *sql.DB) BatchRepository {
	return &batchRepo{db: db}
}

func (r *batchRepo) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Log.Error("rollback error", zap.Error(rbErr))
		}
		return err
	}
	return tx.Commit()
}

func (r *batchRepo) Create(ctx context.Context, batch *models.PayoutBatch) error {
	query := `INSERT INTO payout_batches (batch_reference, provider, currency, status, notes, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		batch.BatchReference, batch.Provider, batch.Currency, batch.Status, batch.Notes, batch.CreatedAt,
	).Scan(&batch.ID)
	if err != nil {
		logger.Log.Error("failed to create batch", zap.Error(err))
	}
	return err
}

const batchColumns = `id, batch_reference, provider, currency, status, notes, total_withdrawals, total_amount_usd, successful_count, failed_count, created_at`

func scanBatch(row interface{ Scan(...any) error }) (*models.PayoutBatch, error) {
	var b models.PayoutBatch
	err := row.Scan(&b.ID, &b.BatchReference, &b.Provider, &b.Currency, &b.Status, &b.Notes,
		&b.TotalWithdrawals, &b.TotalAmountUSD, &b.SuccessfulCount, &b.FailedCount, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *batchRepo) GetByID(ctx context.Context, id int64) (*models.PayoutBatch, error) {
	query := `SELECT ` + batchColumns + ` FROM payout_batches WHERE id=$1`

	batch, err := scanBatch(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		logger.Log.Error("failed to get batch", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return batch, nil
}

func (r *batchRepo) List(ctx context.Context) ([]models.PayoutBatch, error) {
	query := `SELECT ` + batchColumns + ` FROM payout_batches ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Log.Error("failed to query batches", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var batches []models.PayoutBatch
	for rows.Next() {
		batch, err := scanBatch(rows)
		if err != nil {
			return nil, err
		}
		batches = append(batches, *batch)
	}
	return batches, rows.Err()
}

func (r *batchRepo) ListItems(ctx context.Context, batchID int64) ([]models.BatchItem, error) {
	query := `SELECT id, batch_id, withdrawal_id, amount, provider_reference, status, failure_reason
			  FROM batch_items WHERE batch_id=$1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, batchID)
	if err != nil {
		logger.Log.Error("failed to query batch items", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var items []models.BatchItem
	for rows.Next() {
		var item models.BatchItem
		err := rows.Scan(&item.ID, &item.BatchID, &item.WithdrawalID, &item.Amount,
			&item.ProviderReference, &item.Status, &item.FailureReason)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// AttachApproved attaches every APPROVED withdrawal matching the batch's
// (provider, currency) corridor that is not already held by a live batch.
// Attached withdrawals move to PROCESSING in the same transaction, and the
// batch totals stay equal to the sum of its items.
func (r *batchRepo) AttachApproved(ctx context.Context, batchID int64) (int, error) {
	var attached int
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		var provider, currency, status string
		err := tx.QueryRowContext(ctx,
			`SELECT provider, currency, status FROM payout_batches WHERE id=$1 FOR UPDATE`, batchID,
		).Scan(&provider, &currency, &status)
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		if err != nil {
			return err
		}
		if status != models.BatchStatusDraft && status != models.BatchStatusReady {
			return apperrors.ErrStateConflict
		}

		rows, err := tx.QueryContext(ctx, `
			SELECT w.id, w.amount_usd FROM withdrawal_requests w
			WHERE w.status='APPROVED' AND w.payout_channel=$1 AND w.currency=$2
			  AND NOT EXISTS (
				SELECT 1 FROM batch_items bi
				JOIN payout_batches b ON b.id = bi.batch_id
				WHERE bi.withdrawal_id = w.id AND bi.status <> 'FAILED' AND b.status <> 'FAILED')
			ORDER BY w.created_at
			FOR UPDATE OF w`, provider, currency)
		if err != nil {
			return err
		}

		type candidate struct {
			id     int64
			amount decimal.Decimal
		}
		var candidates []candidate
		for rows.Next() {
			var c candidate
			if err := rows.Scan(&c.id, &c.amount); err != nil {
				_ = rows.Close()
				return err
			}
			candidates = append(candidates, c)
		}
		if err := rows.Close(); err != nil {
			return err
		}
		if err := rows.Err(); err != nil {
			return err
		}

		total := decimal.Zero
		for _, c := range candidates {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO batch_items (batch_id, withdrawal_id, amount, status)
				VALUES ($1, $2, $3, 'PENDING')`, batchID, c.id, c.amount)
			if err != nil {
				return err
			}

			_, err = tx.ExecContext(ctx, `
				UPDATE withdrawal_requests SET status='PROCESSING', attempts=attempts+1
				WHERE id=$1 AND status='APPROVED'`, c.id)
			if err != nil {
				return err
			}
			total = total.Add(c.amount)
		}

		if len(candidates) > 0 {
			_, err = tx.ExecContext(ctx, `
				UPDATE payout_batches
				SET total_withdrawals = total_withdrawals + $1,
				    total_amount_usd = total_amount_usd + $2,
				    status = 'READY'
				WHERE id=$3`, len(candidates), total, batchID)
			if err != nil {
				return err
			}
		}

		attached = len(candidates)
		return nil
	})
	return attached, err
}

func (r *batchRepo) Transition(ctx context.Context, id int64, from, to string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE payout_batches SET status=$1 WHERE id=$2 AND status=$3`, to, id, from)
	if err != nil {
		logger.Log.Error("failed to transition batch", zap.Int64("id", id), zap.Error(err))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected != 0 {
		return nil
	}

	var status string
	err = r.db.QueryRowContext(ctx, `SELECT status FROM payout_batches WHERE id=$1`, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return err
	}
	return apperrors.ErrStateConflict
}

func (r *batchRepo) SetOutcome(ctx context.Context, id int64, status string, successful, failed int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE payout_batches SET status=$1, successful_count=$2, failed_count=$3 WHERE id=$4`,
		status, successful, failed, id)
	if err != nil {
		logger.Log.Error("failed to set batch outcome", zap.Int64("id", id), zap.Error(err))
	}
	return err
}

func (r *batchRepo) ItemCounts(ctx context.Context, batchID int64) (int, int, int, error) {
	query := `SELECT
				COUNT(*) FILTER (WHERE status='SUCCESS'),
				COUNT(*) FILTER (WHERE status='FAILED'),
				COUNT(*) FILTER (WHERE status='PENDING')
			  FROM batch_items WHERE batch_id=$1`

	var successful, failed, pending int
	if err := r.db.QueryRowContext(ctx, query, batchID).Scan(&successful, &failed, &pending); err != nil {
		logger.Log.Error("failed to count batch items", zap.Int64("batch", batchID), zap.Error(err))
		return 0, 0, 0, err
	}
	return successful, failed, pending, nil
}

func (r *batchRepo) ListWorkItems(ctx context.Context, batchID int64, itemStatus string) ([]models.BatchWorkItem, error) {
	query := `SELECT bi.id, w.id, w.user_id, w.reference, bi.amount, w.currency, w.account_details, w.attempts
			  FROM batch_items bi
			  JOIN withdrawal_requests w ON w.id = bi.withdrawal_id
			  WHERE bi.batch_id=$1 AND bi.status=$2
			  ORDER BY bi.id`

	rows, err := r.db.QueryContext(ctx, query, batchID, itemStatus)
	if err != nil {
		logger.Log.Error("failed to query work items", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var items []models.BatchWorkItem
	for rows.Next() {
		var item models.BatchWorkItem
		err := rows.Scan(&item.ItemID, &item.WithdrawalID, &item.UserID, &item.Reference,
			&item.Amount, &item.Currency, &item.AccountDetails, &item.Attempts)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// PrepareItemRetry resets a FAILED item to PENDING and moves its withdrawal
// back to PROCESSING for a reprocess pass. Refused once the withdrawal has
// exhausted its attempt limit.
func (r *batchRepo) PrepareItemRetry(ctx context.Context, itemID int64, maxAttempts int) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		var withdrawalID int64
		var attempts int
		err := tx.QueryRowContext(ctx, `
			SELECT w.id, w.attempts FROM batch_items bi
			JOIN withdrawal_requests w ON w.id = bi.withdrawal_id
			WHERE bi.id=$1 AND bi.status='FAILED'
			FOR UPDATE OF w`, itemID).Scan(&withdrawalID, &attempts)
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		if err != nil {
			return err
		}
		if attempts >= maxAttempts {
			return apperrors.ErrRetryLimitReached
		}

		result, err := tx.ExecContext(ctx, `
			UPDATE withdrawal_requests SET status='PROCESSING', attempts=attempts+1, failure_reason=NULL
			WHERE id=$1 AND status='FAILED'`, withdrawalID)
		if err != nil {
			return err
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperrors.ErrStateConflict
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE batch_items SET status='PENDING', failure_reason=NULL, provider_reference=NULL
			WHERE id=$1`, itemID)
		return err
	})
}

// ApplyItemSuccess records a confirmed transfer: the item, its withdrawal
// and the backing commissions change together or not at all. Available
// commissions are consumed oldest-first until their USD total covers the
// withdrawal amount.
func (r *batchRepo) ApplyItemSuccess(ctx context.Context, itemID int64, providerReference string) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		var withdrawalID, userID int64
		var amount decimal.Decimal
		err := tx.QueryRowContext(ctx, `
			SELECT w.id, w.user_id, bi.amount FROM batch_items bi
			JOIN withdrawal_requests w ON w.id = bi.withdrawal_id
			WHERE bi.id=$1 AND bi.status='PENDING'
			FOR UPDATE OF w`, itemID).Scan(&withdrawalID, &userID, &amount)
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrStateConflict
		}
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE batch_items SET status='SUCCESS', provider_reference=$1, failure_reason=NULL
			WHERE id=$2`, providerReference, itemID)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE withdrawal_requests SET status='PAID', processed_at=$1, failure_reason=NULL
			WHERE id=$2 AND status='PROCESSING'`, time.Now(), withdrawalID)
		if err != nil {
			return err
		}

		return consumeCommissions(ctx, tx, userID, amount)
	})
}

func consumeCommissions(ctx context.Context, tx *sql.Tx, userID int64, amount decimal.Decimal) error {
	rows, err := tx.QueryContext(ctx, `
		SELECT id, amount_usd FROM commissions
		WHERE affiliate_id=$1 AND status='available'
		ORDER BY created_at, id
		FOR UPDATE`, userID)
	if err != nil {
		return err
	}

	var ids []int64
	covered := decimal.Zero
	for rows.Next() {
		var id int64
		var usd decimal.Decimal
		if err := rows.Scan(&id, &usd); err != nil {
			_ = rows.Close()
			return err
		}
		ids = append(ids, id)
		covered = covered.Add(usd)
		if covered.GreaterThanOrEqual(amount) {
			break
		}
	}
	if err := rows.Close(); err != nil {
		return err
	}
	if err := rows.Err(); err != nil {
		return err
	}

	now := time.Now()
	for _, id := range ids {
		_, err := tx.ExecContext(ctx, `
			UPDATE commissions SET status='paid', paid_at=$1 WHERE id=$2 AND status='available'`, now, id)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *batchRepo) ApplyItemFailure(ctx context.Context, itemID int64, reason string) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		var withdrawalID int64
		err := tx.QueryRowContext(ctx, `
			SELECT withdrawal_id FROM batch_items WHERE id=$1 AND status='PENDING' FOR UPDATE`,
			itemID).Scan(&withdrawalID)
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrStateConflict
		}
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE batch_items SET status='FAILED', failure_reason=$1 WHERE id=$2`, reason, itemID)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE withdrawal_requests SET status='FAILED', failure_reason=$1, processed_at=$2
			WHERE id=$3 AND status='PROCESSING'`, reason, time.Now(), withdrawalID)
		return err
	})
}

func (r *batchRepo) ListExportRows(ctx context.Context, batchID int64) ([]models.BatchExportRow, error) {
	query := `SELECT w.reference, a.name, a.email, bi.amount, w.currency, w.payout_channel, bi.status, bi.failure_reason
			  FROM batch_items bi
			  JOIN withdrawal_requests w ON w.id = bi.withdrawal_id
			  JOIN affiliates a ON a.id = w.user_id
			  WHERE bi.batch_id=$1
			  ORDER BY bi.id`

	rows, err := r.db.QueryContext(ctx, query, batchID)
	if err != nil {
		logger.Log.Error("failed to query batch export rows", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var export []models.BatchExportRow
	for rows.Next() {
		var row models.BatchExportRow
		err := rows.Scan(&row.Reference, &row.Affiliate, &row.Email, &row.AmountUSD,
			&row.Currency, &row.Channel, &row.Status, &row.FailureReason)
		if err != nil {
			return nil, err
		}
		export = append(export, row)
	}
	return export, rows.Err()
}

// Delete removes a DRAFT or READY batch and releases its withdrawals back
// to APPROVED. PROCESSING and finished batches are immutable history.
func (r *batchRepo) Delete(ctx context.Context, batchID int64) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		var status string
		err := tx.QueryRowContext(ctx,
			`SELECT status FROM payout_batches WHERE id=$1 FOR UPDATE`, batchID).Scan(&status)
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		if err != nil {
			return err
		}
		if status != models.BatchStatusDraft && status != models.BatchStatusReady {
			return apperrors.ErrBatchNotDeletable
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE withdrawal_requests SET status='APPROVED'
			WHERE status='PROCESSING'
			  AND id IN (SELECT withdrawal_id FROM batch_items WHERE batch_id=$1)`, batchID)
		if err != nil {
			return err
		}

		if _, err = tx.ExecContext(ctx, `DELETE FROM batch_items WHERE batch_id=$1`, batchID); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `DELETE FROM payout_batches WHERE id=$1`, batchID)
		return err
	})
}
