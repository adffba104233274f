package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/affipay/affipay/internal/apperrors"
	"github.com/affipay/affipay/internal/currency"
	"github.com/affipay/affipay/internal/lock"
	"github.com/affipay/affipay/internal/logger"
	"github.com/affipay/affipay/internal/models"
	"github.com/affipay/affipay/internal/notify"
	"github.com/affipay/affipay/internal/repository"
)

// LedgerService is the commission ledger: it records money owed to
// affiliates and derives their spendable balance.
type LedgerService interface {
	RecordCommission(ctx context.Context, event models.SaleEvent) (*models.Commission, error)
	Approve(ctx context.Context, id int64) error
	Reject(ctx context.Context, id int64) error
	MarkPaid(ctx context.Context, id int64, batchItemRef string) error
	AvailableBalance(ctx context.Context, affiliateID int64) (models.Balance, error)
	ListCommissions(ctx context.Context, status string) ([]models.Commission, error)
	Summary(ctx context.Context) ([]models.CommissionSummary, error)
	ReportRows(ctx context.Context, status string) ([]models.CommissionReportRow, error)
}

type ledgerService struct {
	commissions repository.CommissionRepository
	withdrawals repository.WithdrawalRepository
	affiliates  repository.AffiliateRepository
	normalizer  *currency.Normalizer
	locks       lock.Manager
	events      notify.Emitter
}

func NewLedgerService(
	commissions repository.CommissionRepository,
	withdrawals repository.WithdrawalRepository,
	affiliates repository.AffiliateRepository,
	normalizer *currency.Normalizer,
	locks lock.Manager,
	events notify.Emitter,
) LedgerService {
	return &ledgerService{
		commissions: commissions,
		withdrawals: withdrawals,
		affiliates:  affiliates,
		normalizer:  normalizer,
		locks:       locks,
		events:      events,
	}
}

// RecordCommission creates a pending ledger entry for a sale event. It is
// idempotent on (affiliate, source, linked payment): webhook redelivery
// returns the already-recorded row instead of a duplicate.
func (s *ledgerService) RecordCommission(ctx context.Context, event models.SaleEvent) (*models.Commission, error) {
	if !event.Source.Valid() {
		return nil, fmt.Errorf("%w: unknown commission source %q", apperrors.ErrValidation, event.Source)
	}
	if !event.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if event.Rate.IsNegative() {
		return nil, fmt.Errorf("%w: rate must not be negative", apperrors.ErrValidation)
	}

	if _, err := s.affiliates.GetByID(ctx, event.AffiliateID); err != nil {
		return nil, err
	}

	if event.LinkedPaymentID != "" {
		existing, err := s.commissions.FindByPayment(ctx, event.AffiliateID, event.Source, event.LinkedPaymentID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			logger.Log.Info("duplicate sale event, returning existing commission",
				zap.Int64("commission", existing.ID), zap.String("payment", event.LinkedPaymentID))
			return existing, nil
		}
	}

	// amount_usd is computed exactly once here; later rate-table changes
	// must never alter historical totals.
	amountUSD, err := s.normalizer.Normalize(event.Amount, event.Currency)
	if err != nil {
		return nil, err
	}

	saleAmountUSD := decimal.Zero
	if event.Rate.IsPositive() {
		saleAmountUSD = amountUSD.DivRound(event.Rate, 4)
	}

	commission := &models.Commission{
		AffiliateID:   event.AffiliateID,
		Source:        event.Source,
		Amount:        event.Amount,
		Currency:      event.Currency,
		AmountUSD:     amountUSD,
		SaleAmountUSD: saleAmountUSD,
		Rate:          event.Rate,
		Status:        models.CommissionStatusPending,
		CreatedAt:     time.Now(),
	}
	if event.LinkedPaymentID != "" {
		paymentID := event.LinkedPaymentID
		commission.LinkedPaymentID = &paymentID
	}

	if err := s.commissions.Save(ctx, commission); err != nil {
		// a redelivered webhook may have raced us past the first lookup;
		// the unique index makes the second lookup authoritative
		if event.LinkedPaymentID != "" {
			existing, findErr := s.commissions.FindByPayment(ctx, event.AffiliateID, event.Source, event.LinkedPaymentID)
			if findErr == nil && existing != nil {
				return existing, nil
			}
		}
		return nil, err
	}

	s.events.Emit(notify.Event{Name: notify.EventCommissionRecorded, Payload: commission})
	return commission, nil
}

func (s *ledgerService) Approve(ctx context.Context, id int64) error {
	commission, err := s.commissions.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.locks.WithAffiliate(ctx, commission.AffiliateID, func(ctx context.Context) error {
		return s.commissions.Transition(ctx, id, models.CommissionStatusPending, models.CommissionStatusAvailable, nil)
	})
	if err != nil {
		return err
	}

	s.events.Emit(notify.Event{Name: notify.EventBalanceChanged, Payload: map[string]int64{"affiliate_id": commission.AffiliateID}})
	return nil
}

func (s *ledgerService) Reject(ctx context.Context, id int64) error {
	commission, err := s.commissions.GetByID(ctx, id)
	if err != nil {
		return err
	}

	return s.locks.WithAffiliate(ctx, commission.AffiliateID, func(ctx context.Context) error {
		return s.commissions.Transition(ctx, id, models.CommissionStatusPending, models.CommissionStatusRejected, nil)
	})
}

func (s *ledgerService) MarkPaid(ctx context.Context, id int64, batchItemRef string) error {
	commission, err := s.commissions.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.locks.WithAffiliate(ctx, commission.AffiliateID, func(ctx context.Context) error {
		now := time.Now()
		return s.commissions.Transition(ctx, id, models.CommissionStatusAvailable, models.CommissionStatusPaid, &now)
	})
	if err != nil {
		return err
	}

	logger.Log.Info("commission marked paid",
		zap.Int64("commission", id), zap.String("batch_item", batchItemRef))
	s.events.Emit(notify.Event{Name: notify.EventBalanceChanged, Payload: map[string]int64{"affiliate_id": commission.AffiliateID}})
	return nil
}

// AvailableBalance is the sum of available commissions minus the amounts
// reserved by open (PENDING, APPROVED, PROCESSING) withdrawal requests.
func (s *ledgerService) AvailableBalance(ctx context.Context, affiliateID int64) (models.Balance, error) {
	available, err := s.commissions.SumAvailableByAffiliate(ctx, affiliateID)
	if err != nil {
		return models.Balance{}, err
	}

	reserved, err := s.withdrawals.SumOpenByUser(ctx, affiliateID)
	if err != nil {
		return models.Balance{}, err
	}

	return models.Balance{
		Available: available.Sub(reserved),
		Reserved:  reserved,
	}, nil
}

func (s *ledgerService) ListCommissions(ctx context.Context, status string) ([]models.Commission, error) {
	return s.commissions.List(ctx, status)
}

func (s *ledgerService) Summary(ctx context.Context) ([]models.CommissionSummary, error) {
	return s.commissions.Summary(ctx)
}

func (s *ledgerService) ReportRows(ctx context.Context, status string) ([]models.CommissionReportRow, error) {
	return s.commissions.ListReportRows(ctx, status)
}
