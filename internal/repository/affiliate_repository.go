package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/affipay/affipay/internal/apperrors"
	"github.com/affipay/affipay/internal/logger"
	"github.com/affipay/affipay/internal/models"
	"go.uber.org/zap"
)

type AffiliateRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Affiliate, error)
}

type affiliateRepo struct {
	db *sql.DB
}

func NewAffiliateRepository(db *sql.DB) AffiliateRepository {
	return &affiliateRepo{db: db}
}

func (r *affiliateRepo) GetByID(ctx context.Context, id int64) (*models.Affiliate, error) {
	query := `SELECT id, name, email FROM affiliates WHERE id=$1`

	var affiliate models.Affiliate
	err := r.db.QueryRowContext(ctx, query, id).Scan(&affiliate.ID, &affiliate.Name, &affiliate.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		logger.Log.Error("failed to get affiliate", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return &affiliate, nil
}
