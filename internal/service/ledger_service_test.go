package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang/mock/gomock"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/affipay/affipay/internal/apperrors"
	"github.com/affipay/affipay/internal/currency"
	"github.com/affipay/affipay/internal/lock"
	"github.com/affipay/affipay/internal/mocks/repository_mocks"
	"github.com/affipay/affipay/internal/models"
	"github.com/affipay/affipay/internal/notify"
)

func newTestLocks(t *testing.T) lock.Manager {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return lock.NewRedisManager(client, 5*time.Second, time.Second)
}

func newTestNormalizer(t *testing.T) *currency.Normalizer {
	t.Helper()
	normalizer, err := currency.NewNormalizer(map[string]decimal.Decimal{
		"GHS": decimal.NewFromInt(14),
		"NGN": decimal.RequireFromString("1520.5"),
	}, currency.UnknownReject)
	require.NoError(t, err)
	return normalizer
}

func TestLedgerService_RecordCommission(t *testing.T) {
	affiliate := &models.Affiliate{ID: 7, Name: "Kwame Mensah", Email: "kwame@example.com"}

	tests := []struct {
		name          string
		event         models.SaleEvent
		setupMocks    func(commissions *repository_mocks.MockCommissionRepository, affiliates *repository_mocks.MockAffiliateRepository)
		wantErr       error
		checkRecorded func(t *testing.T, got *models.Commission)
	}{
		{
			name: "normalizes foreign currency once at record time",
			event: models.SaleEvent{
				AffiliateID:     7,
				Source:          models.SourceReferralMembership,
				Amount:          decimal.NewFromInt(1400),
				Currency:        "GHS",
				Rate:            decimal.RequireFromString("0.2"),
				LinkedPaymentID: "pay-100",
			},
			setupMocks: func(commissions *repository_mocks.MockCommissionRepository, affiliates *repository_mocks.MockAffiliateRepository) {
				affiliates.EXPECT().GetByID(gomock.Any(), int64(7)).Return(affiliate, nil)
				commissions.EXPECT().FindByPayment(gomock.Any(), int64(7), models.SourceReferralMembership, "pay-100").Return(nil, nil)
				commissions.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c *models.Commission) error {
						c.ID = 1
						return nil
					})
			},
			checkRecorded: func(t *testing.T, got *models.Commission) {
				assert.True(t, got.AmountUSD.Equal(decimal.NewFromInt(100)), "amount_usd = %s", got.AmountUSD)
				assert.True(t, got.SaleAmountUSD.Equal(decimal.NewFromInt(500)), "sale_amount_usd = %s", got.SaleAmountUSD)
				assert.Equal(t, models.CommissionStatusPending, got.Status)
				require.NotNil(t, got.LinkedPaymentID)
				assert.Equal(t, "pay-100", *got.LinkedPaymentID)
			},
		},
		{
			name: "redelivered payment returns the existing row",
			event: models.SaleEvent{
				AffiliateID:     7,
				Source:          models.SourceLearnerRenewal,
				Amount:          decimal.NewFromInt(50),
				Currency:        "USD",
				LinkedPaymentID: "pay-200",
			},
			setupMocks: func(commissions *repository_mocks.MockCommissionRepository, affiliates *repository_mocks.MockAffiliateRepository) {
				affiliates.EXPECT().GetByID(gomock.Any(), int64(7)).Return(affiliate, nil)
				commissions.EXPECT().FindByPayment(gomock.Any(), int64(7), models.SourceLearnerRenewal, "pay-200").
					Return(&models.Commission{ID: 42, AffiliateID: 7}, nil)
			},
			checkRecorded: func(t *testing.T, got *models.Commission) {
				assert.Equal(t, int64(42), got.ID)
			},
		},
		{
			name: "unknown source is rejected",
			event: models.SaleEvent{
				AffiliateID: 7,
				Source:      "store_credit",
				Amount:      decimal.NewFromInt(10),
				Currency:    "USD",
			},
			setupMocks: func(*repository_mocks.MockCommissionRepository, *repository_mocks.MockAffiliateRepository) {},
			wantErr:    apperrors.ErrValidation,
		},
		{
			name: "non-positive amount is rejected",
			event: models.SaleEvent{
				AffiliateID: 7,
				Source:      models.SourceDCSAddon,
				Amount:      decimal.Zero,
				Currency:    "USD",
			},
			setupMocks: func(*repository_mocks.MockCommissionRepository, *repository_mocks.MockAffiliateRepository) {},
			wantErr:    apperrors.ErrValidation,
		},
		{
			name: "unknown currency is rejected under the reject policy",
			event: models.SaleEvent{
				AffiliateID: 7,
				Source:      models.SourceAffiliateReferral,
				Amount:      decimal.NewFromInt(30),
				Currency:    "XOF",
			},
			setupMocks: func(commissions *repository_mocks.MockCommissionRepository, affiliates *repository_mocks.MockAffiliateRepository) {
				affiliates.EXPECT().GetByID(gomock.Any(), int64(7)).Return(affiliate, nil)
			},
			wantErr: apperrors.ErrUnknownCurrency,
		},
		{
			name: "unknown affiliate fails the lookup",
			event: models.SaleEvent{
				AffiliateID: 99,
				Source:      models.SourceReferralMembership,
				Amount:      decimal.NewFromInt(10),
				Currency:    "USD",
			},
			setupMocks: func(commissions *repository_mocks.MockCommissionRepository, affiliates *repository_mocks.MockAffiliateRepository) {
				affiliates.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, apperrors.ErrNotFound)
			},
			wantErr: apperrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			commissions := repository_mocks.NewMockCommissionRepository(ctrl)
			withdrawals := repository_mocks.NewMockWithdrawalRepository(ctrl)
			affiliates := repository_mocks.NewMockAffiliateRepository(ctrl)
			tt.setupMocks(commissions, affiliates)

			svc := NewLedgerService(commissions, withdrawals, affiliates, newTestNormalizer(t), newTestLocks(t), notify.Noop{})

			got, err := svc.RecordCommission(context.Background(), tt.event)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.checkRecorded(t, got)
		})
	}
}

func TestLedgerService_RecordCommission_SaveRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	commissions := repository_mocks.NewMockCommissionRepository(ctrl)
	withdrawals := repository_mocks.NewMockWithdrawalRepository(ctrl)
	affiliates := repository_mocks.NewMockAffiliateRepository(ctrl)

	affiliates.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&models.Affiliate{ID: 3}, nil)
	first := commissions.EXPECT().FindByPayment(gomock.Any(), int64(3), models.SourceReferralMembership, "pay-7").Return(nil, nil)
	commissions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(assert.AnError)
	commissions.EXPECT().FindByPayment(gomock.Any(), int64(3), models.SourceReferralMembership, "pay-7").
		After(first).Return(&models.Commission{ID: 11, AffiliateID: 3}, nil)

	svc := NewLedgerService(commissions, withdrawals, affiliates, newTestNormalizer(t), newTestLocks(t), notify.Noop{})

	got, err := svc.RecordCommission(context.Background(), models.SaleEvent{
		AffiliateID:     3,
		Source:          models.SourceReferralMembership,
		Amount:          decimal.NewFromInt(25),
		Currency:        "USD",
		LinkedPaymentID: "pay-7",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), got.ID)
}

func TestLedgerService_Approve(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(commissions *repository_mocks.MockCommissionRepository)
		wantErr    error
	}{
		{
			name: "pending commission becomes available",
			setupMocks: func(commissions *repository_mocks.MockCommissionRepository) {
				commissions.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&models.Commission{ID: 5, AffiliateID: 2, Status: models.CommissionStatusPending}, nil)
				commissions.EXPECT().Transition(gomock.Any(), int64(5), models.CommissionStatusPending, models.CommissionStatusAvailable, nil).Return(nil)
			},
		},
		{
			name: "already paid commission reports a state conflict",
			setupMocks: func(commissions *repository_mocks.MockCommissionRepository) {
				commissions.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&models.Commission{ID: 5, AffiliateID: 2, Status: models.CommissionStatusPaid}, nil)
				commissions.EXPECT().Transition(gomock.Any(), int64(5), models.CommissionStatusPending, models.CommissionStatusAvailable, nil).Return(apperrors.ErrStateConflict)
			},
			wantErr: apperrors.ErrStateConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			commissions := repository_mocks.NewMockCommissionRepository(ctrl)
			withdrawals := repository_mocks.NewMockWithdrawalRepository(ctrl)
			affiliates := repository_mocks.NewMockAffiliateRepository(ctrl)
			tt.setupMocks(commissions)

			svc := NewLedgerService(commissions, withdrawals, affiliates, newTestNormalizer(t), newTestLocks(t), notify.Noop{})

			err := svc.Approve(context.Background(), 5)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLedgerService_MarkPaid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	commissions := repository_mocks.NewMockCommissionRepository(ctrl)
	withdrawals := repository_mocks.NewMockWithdrawalRepository(ctrl)
	affiliates := repository_mocks.NewMockAffiliateRepository(ctrl)

	commissions.EXPECT().GetByID(gomock.Any(), int64(8)).Return(&models.Commission{ID: 8, AffiliateID: 4, Status: models.CommissionStatusAvailable}, nil)
	commissions.EXPECT().Transition(gomock.Any(), int64(8), models.CommissionStatusAvailable, models.CommissionStatusPaid, gomock.Not(gomock.Nil())).Return(nil)

	svc := NewLedgerService(commissions, withdrawals, affiliates, newTestNormalizer(t), newTestLocks(t), notify.Noop{})

	assert.NoError(t, svc.MarkPaid(context.Background(), 8, "item-8"))
}

func TestLedgerService_AvailableBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	commissions := repository_mocks.NewMockCommissionRepository(ctrl)
	withdrawals := repository_mocks.NewMockWithdrawalRepository(ctrl)
	affiliates := repository_mocks.NewMockAffiliateRepository(ctrl)

	commissions.EXPECT().SumAvailableByAffiliate(gomock.Any(), int64(7)).Return(decimal.NewFromInt(250), nil)
	withdrawals.EXPECT().SumOpenByUser(gomock.Any(), int64(7)).Return(decimal.NewFromInt(100), nil)

	svc := NewLedgerService(commissions, withdrawals, affiliates, newTestNormalizer(t), newTestLocks(t), notify.Noop{})

	balance, err := svc.AvailableBalance(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, balance.Available.Equal(decimal.NewFromInt(150)), "available = %s", balance.Available)
	assert.True(t, balance.Reserved.Equal(decimal.NewFromInt(100)), "reserved = %s", balance.Reserved)
}
