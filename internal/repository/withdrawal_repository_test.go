package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/affipay/affipay/internal/apperrors"
	"github.com/affipay/affipay/internal/models"
)

func newWithdrawalMock(t *testing.T) (*withdrawalRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &withdrawalRepo{db: db}, mock
}

func TestWithdrawalRepo_Save(t *testing.T) {
	repo, mock := newWithdrawalMock(t)

	request := &models.WithdrawalRequest{
		UserID:         1,
		AmountUSD:      decimal.RequireFromString("100"),
		Currency:       "USD",
		Status:         models.WithdrawalStatusPending,
		PayoutChannel:  "paystack",
		AccountDetails: "acct-1",
		Reference:      "ref-1",
		CreatedAt:      time.Now(),
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO withdrawal_requests`)).
		WithArgs(request.UserID, request.AmountUSD, request.Currency, request.Status,
			request.PayoutChannel, request.AccountDetails, request.Reference, request.CreatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	require.NoError(t, repo.Save(context.Background(), request))
	assert.Equal(t, int64(11), request.ID)
}

func TestWithdrawalRepo_SumOpenByUser(t *testing.T) {
	repo, mock := newWithdrawalMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(amount_usd), 0) FROM withdrawal_requests`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow("100"))

	total, err := repo.SumOpenByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("100")))
}

func TestWithdrawalRepo_HasOpenDuplicate(t *testing.T) {
	repo, mock := newWithdrawalMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS`)).
		WithArgs(int64(1), decimal.RequireFromString("100")).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.HasOpenDuplicate(context.Background(), 1, decimal.RequireFromString("100"))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestWithdrawalRepo_Transition(t *testing.T) {
	t.Run("pending to approved", func(t *testing.T) {
		repo, mock := newWithdrawalMock(t)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE withdrawal_requests SET status=$1`)).
			WithArgs(models.WithdrawalStatusApproved, int64(4), models.WithdrawalStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Transition(context.Background(), 4, models.WithdrawalStatusPending, models.WithdrawalStatusApproved)
		assert.NoError(t, err)
	})

	t.Run("lost race surfaces as state conflict", func(t *testing.T) {
		repo, mock := newWithdrawalMock(t)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE withdrawal_requests SET status=$1`)).
			WithArgs(models.WithdrawalStatusApproved, int64(4), models.WithdrawalStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT status FROM withdrawal_requests WHERE id=$1`)).
			WithArgs(int64(4)).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("REJECTED"))

		err := repo.Transition(context.Background(), 4, models.WithdrawalStatusPending, models.WithdrawalStatusApproved)
		assert.ErrorIs(t, err, apperrors.ErrStateConflict)
	})
}

func TestWithdrawalRepo_RejectPending(t *testing.T) {
	repo, mock := newWithdrawalMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE withdrawal_requests SET status='REJECTED'`)).
		WithArgs("balance no longer covers request", sqlmock.AnyArg(), int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.RejectPending(context.Background(), 8, "balance no longer covers request")
	assert.NoError(t, err)
}
