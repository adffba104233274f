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

type CommissionRepository interface {
	Save(ctx context.Context, commission *models.Commission) error
	GetByID(ctx context.Context, id int64) (*models.Commission, error)
	FindByPayment(ctx context.Context, affiliateID int64, source models.CommissionSource, linkedPaymentID string) (*models.Commission, error)
	Transition(ctx context.Context, id int64, from, to string, paidAt *time.Time) error
	SumAvailableByAffiliate(ctx context.Context, affiliateID int64) (decimal.Decimal, error)
	List(ctx context.Context, status string) ([]models.Commission, error)
	Summary(ctx context.Context) ([]models.CommissionSummary, error)
	ListReportRows(ctx context.Context, status string) ([]models.CommissionReportRow, error)
}

type commissionRepo struct {
	db *sql.DB
}

func NewCommissionRepository(db *sql.DB) CommissionRepository {
	return &commissionRepo{db: db}
}

const commissionColumns = `id, affiliate_id, source, amount, currency, amount_usd, sale_amount_usd, rate, status, linked_payment_id, created_at, paid_at`

func scanCommission(row interface{ Scan(...any) error }) (*models.Commission, error) {
	var c models.Commission
	err := row.Scan(&c.ID, &c.AffiliateID, &c.Source, &c.Amount, &c.Currency,
		&c.AmountUSD, &c.SaleAmountUSD, &c.Rate, &c.Status, &c.LinkedPaymentID,
		&c.CreatedAt, &c.PaidAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *commissionRepo) Save(ctx context.Context, commission *models.Commission) error {
	query := `INSERT INTO commissions (affiliate_id, source, amount, currency, amount_usd, sale_amount_usd, rate, status, linked_payment_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		commission.AffiliateID, commission.Source, commission.Amount, commission.Currency,
		commission.AmountUSD, commission.SaleAmountUSD, commission.Rate, commission.Status,
		commission.LinkedPaymentID, commission.CreatedAt,
	).Scan(&commission.ID)
	if err != nil {
		logger.Log.Error("failed to save commission", zap.Error(err))
	}
	return err
}

func (r *commissionRepo) GetByID(ctx context.Context, id int64) (*models.Commission, error) {
	query := `SELECT ` + commissionColumns + ` FROM commissions WHERE id=$1`

	commission, err := scanCommission(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		logger.Log.Error("failed to get commission", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return commission, nil
}

func (r *commissionRepo) FindByPayment(ctx context.Context, affiliateID int64, source models.CommissionSource, linkedPaymentID string) (*models.Commission, error) {
	query := `SELECT ` + commissionColumns + ` FROM commissions
			  WHERE affiliate_id=$1 AND source=$2 AND linked_payment_id=$3`

	commission, err := scanCommission(r.db.QueryRowContext(ctx, query, affiliateID, source, linkedPaymentID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Error("failed to look up commission by payment", zap.Error(err))
		return nil, err
	}
	return commission, nil
}

// Transition moves a commission from one status to another. The guard on
// the current status makes the transition atomic: a lost race surfaces as
// a state conflict instead of a silent double-apply.
func (r *commissionRepo) Transition(ctx context.Context, id int64, from, to string, paidAt *time.Time) error {
	query := `UPDATE commissions SET status=$1, paid_at=COALESCE($2, paid_at) WHERE id=$3 AND status=$4`

	result, err := r.db.ExecContext(ctx, query, to, paidAt, id, from)
	if err != nil {
		logger.Log.Error("failed to transition commission", zap.Int64("id", id), zap.Error(err))
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return r.transitionConflict(ctx, id)
	}
	return nil
}

func (r *commissionRepo) transitionConflict(ctx context.Context, id int64) error {
	var status string
	err := r.db.QueryRowContext(ctx, `SELECT status FROM commissions WHERE id=$1`, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return err
	}
	return apperrors.ErrStateConflict
}

func (r *commissionRepo) SumAvailableByAffiliate(ctx context.Context, affiliateID int64) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount_usd), 0) FROM commissions WHERE affiliate_id=$1 AND status='available'`

	var total decimal.Decimal
	if err := r.db.QueryRowContext(ctx, query, affiliateID).Scan(&total); err != nil {
		logger.Log.Error("failed to sum available commissions", zap.Int64("affiliate", affiliateID), zap.Error(err))
		return decimal.Decimal{}, err
	}
	return total, nil
}

func (r *commissionRepo) List(ctx context.Context, status string) ([]models.Commission, error) {
	query := `SELECT ` + commissionColumns + ` FROM commissions
			  WHERE ($1 = '' OR status = $1) ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		logger.Log.Error("failed to query commissions", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var commissions []models.Commission
	for rows.Next() {
		commission, err := scanCommission(rows)
		if err != nil {
			logger.Log.Error("failed to scan commission", zap.Error(err))
			return nil, err
		}
		commissions = append(commissions, *commission)
	}
	return commissions, rows.Err()
}

func (r *commissionRepo) Summary(ctx context.Context) ([]models.CommissionSummary, error) {
	query := `SELECT status, COUNT(*), COALESCE(SUM(amount_usd), 0)
			  FROM commissions GROUP BY status ORDER BY status`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Log.Error("failed to query commission summary", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var summaries []models.CommissionSummary
	for rows.Next() {
		var s models.CommissionSummary
		if err := rows.Scan(&s.Status, &s.Count, &s.TotalUSD); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *commissionRepo) ListReportRows(ctx context.Context, status string) ([]models.CommissionReportRow, error) {
	query := `SELECT a.name, a.email, c.source, c.amount_usd, c.sale_amount_usd, c.rate, c.status, c.created_at
			  FROM commissions c JOIN affiliates a ON a.id = c.affiliate_id
			  WHERE ($1 = '' OR c.status = $1) ORDER BY c.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		logger.Log.Error("failed to query commission report", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var report []models.CommissionReportRow
	for rows.Next() {
		var row models.CommissionReportRow
		err := rows.Scan(&row.Affiliate, &row.Email, &row.Source, &row.CommissionUSD,
			&row.SaleAmountUSD, &row.Rate, &row.Status, &row.CreatedAt)
		if err != nil {
			return nil, err
		}
		report = append(report, row)
	}
	return report, rows.Err()
}
