package service

import (
	"context"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/affipay/affipay/internal/apperrors"
	"github.com/affipay/affipay/internal/lock"
	"github.com/affipay/affipay/internal/models"
	"github.com/affipay/affipay/internal/notify"
	"github.com/affipay/affipay/internal/repository"
)

// CreateWithdrawalInput carries an affiliate's payout instruction.
type CreateWithdrawalInput struct {
	UserID         int64           `json:"user_id"`
	AmountUSD      decimal.Decimal `json:"amount_usd"`
	Currency       string          `json:"currency"`
	PayoutChannel  string          `json:"payout_channel"`
	AccountDetails string          `json:"account_details"`
}

func (in CreateWithdrawalInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.UserID, validation.Required),
		validation.Field(&in.PayoutChannel, validation.Required, validation.Length(2, 64)),
		validation.Field(&in.AccountDetails, validation.Required, validation.Length(2, 512)),
		validation.Field(&in.Currency, validation.Required, validation.Length(3, 3)),
	)
}

type WithdrawalService interface {
	CreateRequest(ctx context.Context, input CreateWithdrawalInput) (*models.WithdrawalRequest, error)
	Approve(ctx context.Context, id int64) error
	Reject(ctx context.Context, id int64, reason string) error
	Requeue(ctx context.Context, id int64) error
	List(ctx context.Context, status string) ([]models.WithdrawalRequest, error)
	Summary(ctx context.Context) ([]models.WithdrawalSummary, error)
}

type withdrawalService struct {
	withdrawals     repository.WithdrawalRepository
	commissions     repository.CommissionRepository
	affiliates      repository.AffiliateRepository
	locks           lock.Manager
	events          notify.Emitter
	minPayoutUSD    decimal.Decimal
	maxItemAttempts int
}

func NewWithdrawalService(
	withdrawals repository.WithdrawalRepository,
	commissions repository.CommissionRepository,
	affiliates repository.AffiliateRepository,
	locks lock.Manager,
	events notify.Emitter,
	minPayoutUSD decimal.Decimal,
	maxItemAttempts int,
) WithdrawalService {
	return &withdrawalService{
		withdrawals:     withdrawals,
		commissions:     commissions,
		affiliates:      affiliates,
		locks:           locks,
		events:          events,
		minPayoutUSD:    minPayoutUSD,
		maxItemAttempts: maxItemAttempts,
	}
}

// availableBalance: available commissions minus open withdrawal reservations.
func (s *withdrawalService) availableBalance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	available, err := s.commissions.SumAvailableByAffiliate(ctx, userID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	reserved, err := s.withdrawals.SumOpenByUser(ctx, userID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return available.Sub(reserved), nil
}

func (s *withdrawalService) CreateRequest(ctx context.Context, input CreateWithdrawalInput) (*models.WithdrawalRequest, error) {
	if input.Currency == "" {
		input.Currency = "USD"
	}
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if !input.AmountUSD.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if input.AmountUSD.LessThan(s.minPayoutUSD) {
		return nil, apperrors.ErrBelowMinimumPayout
	}

	if _, err := s.affiliates.GetByID(ctx, input.UserID); err != nil {
		return nil, err
	}

	var request *models.WithdrawalRequest
	err := s.locks.WithAffiliate(ctx, input.UserID, func(ctx context.Context) error {
		duplicate, err := s.withdrawals.HasOpenDuplicate(ctx, input.UserID, input.AmountUSD)
		if err != nil {
			return err
		}
		if duplicate {
			return apperrors.ErrDuplicateRequest
		}

		balance, err := s.availableBalance(ctx, input.UserID)
		if err != nil {
			return err
		}
		if input.AmountUSD.GreaterThan(balance) {
			return apperrors.ErrInsufficientBalance
		}

		request = &models.WithdrawalRequest{
			UserID:         input.UserID,
			AmountUSD:      input.AmountUSD,
			Currency:       input.Currency,
			Status:         models.WithdrawalStatusPending,
			PayoutChannel:  input.PayoutChannel,
			AccountDetails: input.AccountDetails,
			Reference:      "wd-" + uuid.NewString(),
			CreatedAt:      time.Now(),
		}
		return s.withdrawals.Save(ctx, request)
	})
	if err != nil {
		return nil, err
	}

	s.events.Emit(notify.Event{Name: notify.EventWithdrawalStatusChanged, Payload: request})
	s.events.Emit(notify.Event{Name: notify.EventBalanceChanged, Payload: map[string]int64{"affiliate_id": input.UserID}})
	return request, nil
}

// Approve re-validates the balance before PENDING -> APPROVED: the backing
// commissions may have shrunk since the request was created.
func (s *withdrawalService) Approve(ctx context.Context, id int64) error {
	request, err := s.withdrawals.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.locks.WithAffiliate(ctx, request.UserID, func(ctx context.Context) error {
		// the request's own amount is already inside the reserved sum,
		// so a deficit shows up as a negative balance
		balance, err := s.availableBalance(ctx, request.UserID)
		if err != nil {
			return err
		}
		if balance.IsNegative() {
			return apperrors.ErrInsufficientBalance
		}
		return s.withdrawals.Transition(ctx, id, models.WithdrawalStatusPending, models.WithdrawalStatusApproved)
	})
	if err != nil {
		return err
	}

	s.events.Emit(notify.Event{Name: notify.EventWithdrawalStatusChanged, Payload: map[string]any{"id": id, "status": models.WithdrawalStatusApproved}})
	return nil
}

func (s *withdrawalService) Reject(ctx context.Context, id int64, reason string) error {
	request, err := s.withdrawals.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.locks.WithAffiliate(ctx, request.UserID, func(ctx context.Context) error {
		return s.withdrawals.RejectPending(ctx, id, reason)
	})
	if err != nil {
		return err
	}

	// rejection releases the reserved amount
	s.events.Emit(notify.Event{Name: notify.EventWithdrawalStatusChanged, Payload: map[string]any{"id": id, "status": models.WithdrawalStatusRejected}})
	s.events.Emit(notify.Event{Name: notify.EventBalanceChanged, Payload: map[string]int64{"affiliate_id": request.UserID}})
	return nil
}

// Requeue returns a FAILED request to APPROVED so it can be picked up by a
// new batch. This is an explicit admin action, bounded by the attempt
// limit; nothing in the engine retries silently.
func (s *withdrawalService) Requeue(ctx context.Context, id int64) error {
	request, err := s.withdrawals.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if request.Status != models.WithdrawalStatusFailed {
		return apperrors.ErrStateConflict
	}
	if request.Attempts >= s.maxItemAttempts {
		return apperrors.ErrRetryLimitReached
	}

	err = s.locks.WithAffiliate(ctx, request.UserID, func(ctx context.Context) error {
		// a FAILED request holds no reservation; re-entering the open set
		// must fit the current balance
		balance, err := s.availableBalance(ctx, request.UserID)
		if err != nil {
			return err
		}
		if request.AmountUSD.GreaterThan(balance) {
			return apperrors.ErrInsufficientBalance
		}
		return s.withdrawals.Transition(ctx, id, models.WithdrawalStatusFailed, models.WithdrawalStatusApproved)
	})
	if err != nil {
		return err
	}

	s.events.Emit(notify.Event{Name: notify.EventWithdrawalStatusChanged, Payload: map[string]any{"id": id, "status": models.WithdrawalStatusApproved}})
	return nil
}

func (s *withdrawalService) List(ctx context.Context, status string) ([]models.WithdrawalRequest, error) {
	return s.withdrawals.List(ctx, status)
}

func (s *withdrawalService) Summary(ctx context.Context) ([]models.WithdrawalSummary, error) {
	return s.withdrawals.Summary(ctx)
}
