package service

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/affipay/affipay/internal/apperrors"
	"github.com/affipay/affipay/internal/mocks/repository_mocks"
	"github.com/affipay/affipay/internal/models"
	"github.com/affipay/affipay/internal/notify"
)

func TestWithdrawalService_CreateRequest(t *testing.T) {
	affiliate := &models.Affiliate{ID: 7, Name: "Kwame Mensah", Email: "kwame@example.com"}

	validInput := CreateWithdrawalInput{
		UserID:         7,
		AmountUSD:      decimal.NewFromInt(50),
		PayoutChannel:  "mobile_money",
		AccountDetails: "233-555-0101",
	}

	tests := []struct {
		name       string
		input      CreateWithdrawalInput
		setupMocks func(withdrawals *repository_mocks.MockWithdrawalRepository, commissions *repository_mocks.MockCommissionRepository, affiliates *repository_mocks.MockAffiliateRepository)
		wantErr    error
	}{
		{
			name:  "creates a pending request with a fresh reference",
			input: validInput,
			setupMocks: func(withdrawals *repository_mocks.MockWithdrawalRepository, commissions *repository_mocks.MockCommissionRepository, affiliates *repository_mocks.MockAffiliateRepository) {
				affiliates.EXPECT().GetByID(gomock.Any(), int64(7)).Return(affiliate, nil)
				withdrawals.EXPECT().HasOpenDuplicate(gomock.Any(), int64(7), gomock.Any()).Return(false, nil)
				commissions.EXPECT().SumAvailableByAffiliate(gomock.Any(), int64(7)).Return(decimal.NewFromInt(200), nil)
				withdrawals.EXPECT().SumOpenByUser(gomock.Any(), int64(7)).Return(decimal.Zero, nil)
				withdrawals.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, r *models.WithdrawalRequest) error {
						r.ID = 1
						return nil
					})
			},
		},
		{
			name: "reservations count against the spendable balance",
			// $100 available with $100 already reserved leaves nothing
			// for a $50 request
			input: validInput,
			setupMocks: func(withdrawals *repository_mocks.MockWithdrawalRepository, commissions *repository_mocks.MockCommissionRepository, affiliates *repository_mocks.MockAffiliateRepository) {
				affiliates.EXPECT().GetByID(gomock.Any(), int64(7)).Return(affiliate, nil)
				withdrawals.EXPECT().HasOpenDuplicate(gomock.Any(), int64(7), gomock.Any()).Return(false, nil)
				commissions.EXPECT().SumAvailableByAffiliate(gomock.Any(), int64(7)).Return(decimal.NewFromInt(100), nil)
				withdrawals.EXPECT().SumOpenByUser(gomock.Any(), int64(7)).Return(decimal.NewFromInt(100), nil)
			},
			wantErr: apperrors.ErrInsufficientBalance,
		},
		{
			name:  "open request with the same amount is a duplicate",
			input: validInput,
			setupMocks: func(withdrawals *repository_mocks.MockWithdrawalRepository, commissions *repository_mocks.MockCommissionRepository, affiliates *repository_mocks.MockAffiliateRepository) {
				affiliates.EXPECT().GetByID(gomock.Any(), int64(7)).Return(affiliate, nil)
				withdrawals.EXPECT().HasOpenDuplicate(gomock.Any(), int64(7), gomock.Any()).Return(true, nil)
			},
			wantErr: apperrors.ErrDuplicateRequest,
		},
		{
			name: "amount below the minimum payout",
			input: CreateWithdrawalInput{
				UserID:         7,
				AmountUSD:      decimal.NewFromInt(5),
				PayoutChannel:  "mobile_money",
				AccountDetails: "233-555-0101",
			},
			setupMocks: func(*repository_mocks.MockWithdrawalRepository, *repository_mocks.MockCommissionRepository, *repository_mocks.MockAffiliateRepository) {},
			wantErr:    apperrors.ErrBelowMinimumPayout,
		},
		{
			name: "missing payout channel",
			input: CreateWithdrawalInput{
				UserID:         7,
				AmountUSD:      decimal.NewFromInt(50),
				AccountDetails: "233-555-0101",
			},
			setupMocks: func(*repository_mocks.MockWithdrawalRepository, *repository_mocks.MockCommissionRepository, *repository_mocks.MockAffiliateRepository) {},
			wantErr:    apperrors.ErrValidation,
		},
		{
			name:  "unknown affiliate",
			input: validInput,
			setupMocks: func(withdrawals *repository_mocks.MockWithdrawalRepository, commissions *repository_mocks.MockCommissionRepository, affiliates *repository_mocks.MockAffiliateRepository) {
				affiliates.EXPECT().GetByID(gomock.Any(), int64(7)).Return(nil, apperrors.ErrNotFound)
			},
			wantErr: apperrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			withdrawals := repository_mocks.NewMockWithdrawalRepository(ctrl)
			commissions := repository_mocks.NewMockCommissionRepository(ctrl)
			affiliates := repository_mocks.NewMockAffiliateRepository(ctrl)
			tt.setupMocks(withdrawals, commissions, affiliates)

			svc := NewWithdrawalService(withdrawals, commissions, affiliates, newTestLocks(t), notify.Noop{}, decimal.NewFromInt(10), 3)

			got, err := svc.CreateRequest(context.Background(), tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.WithdrawalStatusPending, got.Status)
			assert.Equal(t, "USD", got.Currency)
			assert.True(t, strings.HasPrefix(got.Reference, "wd-"), "reference = %s", got.Reference)
		})
	}
}

func TestWithdrawalService_Approve(t *testing.T) {
	request := &models.WithdrawalRequest{ID: 2, UserID: 7, AmountUSD: decimal.NewFromInt(50), Status: models.WithdrawalStatusPending}

	tests := []struct {
		name       string
		setupMocks func(withdrawals *repository_mocks.MockWithdrawalRepository, commissions *repository_mocks.MockCommissionRepository)
		wantErr    error
	}{
		{
			name: "pending request becomes approved",
			setupMocks: func(withdrawals *repository_mocks.MockWithdrawalRepository, commissions *repository_mocks.MockCommissionRepository) {
				withdrawals.EXPECT().GetByID(gomock.Any(), int64(2)).Return(request, nil)
				commissions.EXPECT().SumAvailableByAffiliate(gomock.Any(), int64(7)).Return(decimal.NewFromInt(100), nil)
				withdrawals.EXPECT().SumOpenByUser(gomock.Any(), int64(7)).Return(decimal.NewFromInt(50), nil)
				withdrawals.EXPECT().Transition(gomock.Any(), int64(2), models.WithdrawalStatusPending, models.WithdrawalStatusApproved).Return(nil)
			},
		},
		{
			name: "shrunk balance blocks approval",
			setupMocks: func(withdrawals *repository_mocks.MockWithdrawalRepository, commissions *repository_mocks.MockCommissionRepository) {
				withdrawals.EXPECT().GetByID(gomock.Any(), int64(2)).Return(request, nil)
				commissions.EXPECT().SumAvailableByAffiliate(gomock.Any(), int64(7)).Return(decimal.NewFromInt(20), nil)
				withdrawals.EXPECT().SumOpenByUser(gomock.Any(), int64(7)).Return(decimal.NewFromInt(50), nil)
			},
			wantErr: apperrors.ErrInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			withdrawals := repository_mocks.NewMockWithdrawalRepository(ctrl)
			commissions := repository_mocks.NewMockCommissionRepository(ctrl)
			affiliates := repository_mocks.NewMockAffiliateRepository(ctrl)
			tt.setupMocks(withdrawals, commissions)

			svc := NewWithdrawalService(withdrawals, commissions, affiliates, newTestLocks(t), notify.Noop{}, decimal.NewFromInt(10), 3)

			err := svc.Approve(context.Background(), 2)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestWithdrawalService_Reject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	withdrawals := repository_mocks.NewMockWithdrawalRepository(ctrl)
	commissions := repository_mocks.NewMockCommissionRepository(ctrl)
	affiliates := repository_mocks.NewMockAffiliateRepository(ctrl)

	withdrawals.EXPECT().GetByID(gomock.Any(), int64(9)).Return(&models.WithdrawalRequest{ID: 9, UserID: 4, Status: models.WithdrawalStatusPending}, nil)
	withdrawals.EXPECT().RejectPending(gomock.Any(), int64(9), "account details unverified").Return(nil)

	svc := NewWithdrawalService(withdrawals, commissions, affiliates, newTestLocks(t), notify.Noop{}, decimal.NewFromInt(10), 3)

	assert.NoError(t, svc.Reject(context.Background(), 9, "account details unverified"))
}

func TestWithdrawalService_Requeue(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(withdrawals *repository_mocks.MockWithdrawalRepository, commissions *repository_mocks.MockCommissionRepository)
		wantErr    error
	}{
		{
			name: "failed request returns to approved",
			setupMocks: func(withdrawals *repository_mocks.MockWithdrawalRepository, commissions *repository_mocks.MockCommissionRepository) {
				withdrawals.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&models.WithdrawalRequest{
					ID: 3, UserID: 7, AmountUSD: decimal.NewFromInt(40), Status: models.WithdrawalStatusFailed, Attempts: 1,
				}, nil)
				commissions.EXPECT().SumAvailableByAffiliate(gomock.Any(), int64(7)).Return(decimal.NewFromInt(100), nil)
				withdrawals.EXPECT().SumOpenByUser(gomock.Any(), int64(7)).Return(decimal.Zero, nil)
				withdrawals.EXPECT().Transition(gomock.Any(), int64(3), models.WithdrawalStatusFailed, models.WithdrawalStatusApproved).Return(nil)
			},
		},
		{
			name: "attempt limit is enforced",
			setupMocks: func(withdrawals *repository_mocks.MockWithdrawalRepository, commissions *repository_mocks.MockCommissionRepository) {
				withdrawals.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&models.WithdrawalRequest{
					ID: 3, UserID: 7, AmountUSD: decimal.NewFromInt(40), Status: models.WithdrawalStatusFailed, Attempts: 3,
				}, nil)
			},
			wantErr: apperrors.ErrRetryLimitReached,
		},
		{
			name: "only failed requests can be requeued",
			setupMocks: func(withdrawals *repository_mocks.MockWithdrawalRepository, commissions *repository_mocks.MockCommissionRepository) {
				withdrawals.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&models.WithdrawalRequest{
					ID: 3, UserID: 7, AmountUSD: decimal.NewFromInt(40), Status: models.WithdrawalStatusPaid,
				}, nil)
			},
			wantErr: apperrors.ErrStateConflict,
		},
		{
			name: "requeue must fit the current balance",
			setupMocks: func(withdrawals *repository_mocks.MockWithdrawalRepository, commissions *repository_mocks.MockCommissionRepository) {
				withdrawals.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&models.WithdrawalRequest{
					ID: 3, UserID: 7, AmountUSD: decimal.NewFromInt(40), Status: models.WithdrawalStatusFailed, Attempts: 1,
				}, nil)
				commissions.EXPECT().SumAvailableByAffiliate(gomock.Any(), int64(7)).Return(decimal.NewFromInt(30), nil)
				withdrawals.EXPECT().SumOpenByUser(gomock.Any(), int64(7)).Return(decimal.Zero, nil)
			},
			wantErr: apperrors.ErrInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			withdrawals := repository_mocks.NewMockWithdrawalRepository(ctrl)
			commissions := repository_mocks.NewMockCommissionRepository(ctrl)
			affiliates := repository_mocks.NewMockAffiliateRepository(ctrl)
			tt.setupMocks(withdrawals, commissions)

			svc := NewWithdrawalService(withdrawals, commissions, affiliates, newTestLocks(t), notify.Noop{}, decimal.NewFromInt(10), 3)

			err := svc.Requeue(context.Background(), 3)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
