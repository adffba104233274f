package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/affipay/affipay/internal/apperrors"
	"github.com/affipay/affipay/internal/lock"
	"github.com/affipay/affipay/internal/logger"
	"github.com/affipay/affipay/internal/models"
	"github.com/affipay/affipay/internal/notify"
	"github.com/affipay/affipay/internal/provider"
	"github.com/affipay/affipay/internal/repository"
)

// BatchService groups approved withdrawals into payout batches and drives
// them through external providers with per-item failure isolation.
type BatchService interface {
	Create(ctx context.Context, providerName, currency, notes string) (*models.PayoutBatch, error)
	AddApprovedWithdrawals(ctx context.Context, batchID int64) (int, error)
	Submit(ctx context.Context, batchID int64) (*models.PayoutBatch, error)
	Reprocess(ctx context.Context, batchID int64) (*models.PayoutBatch, error)
	Get(ctx context.Context, batchID int64) (*models.PayoutBatch, []models.BatchItem, error)
	List(ctx context.Context) ([]models.PayoutBatch, error)
	ExportRows(ctx context.Context, batchID int64) ([]models.BatchExportRow, error)
	Delete(ctx context.Context, batchID int64) error
}

type batchService struct {
	batches         repository.BatchRepository
	providers       *provider.Registry
	locks           lock.Manager
	events          notify.Emitter
	providerTimeout time.Duration
	maxItemAttempts int
}

func NewBatchService(
	batches repository.BatchRepository,
	providers *provider.Registry,
	locks lock.Manager,
	events notify.Emitter,
	providerTimeout time.Duration,
	maxItemAttempts int,
) BatchService {
	return &batchService{
		batches:         batches,
		providers:       providers,
		locks:           locks,
		events:          events,
		providerTimeout: providerTimeout,
		maxItemAttempts: maxItemAttempts,
	}
}

func (s *batchService) Create(ctx context.Context, providerName, currency, notes string) (*models.PayoutBatch, error) {
	providerName = strings.ToLower(strings.TrimSpace(providerName))
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if providerName == "" || currency == "" {
		return nil, fmt.Errorf("%w: provider and currency are required", apperrors.ErrValidation)
	}
	if _, err := s.providers.Get(providerName); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	batch := &models.PayoutBatch{
		BatchReference: "batch-" + uuid.NewString(),
		Provider:       providerName,
		Currency:       currency,
		Status:         models.BatchStatusDraft,
		Notes:          notes,
		CreatedAt:      time.Now(),
	}
	if err := s.batches.Create(ctx, batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// AddApprovedWithdrawals attaches every eligible APPROVED withdrawal in the
// batch's (provider, currency) corridor. A provider bulk payload is a
// single corridor; mixing currencies would corrupt it.
func (s *batchService) AddApprovedWithdrawals(ctx context.Context, batchID int64) (int, error) {
	attached, err := s.batches.AttachApproved(ctx, batchID)
	if err != nil {
		return 0, err
	}
	if attached > 0 {
		s.events.Emit(notify.Event{Name: notify.EventBatchStatusChanged,
			Payload: map[string]any{"batch_id": batchID, "status": models.BatchStatusReady}})
	}
	return attached, nil
}

func (s *batchService) Submit(ctx context.Context, batchID int64) (*models.PayoutBatch, error) {
	batch, err := s.batches.GetByID(ctx, batchID)
	if err != nil {
		return nil, err
	}

	adapter, err := s.providers.Get(batch.Provider)
	if err != nil {
		return nil, err
	}

	items, err := s.batches.ListWorkItems(ctx, batchID, models.BatchItemStatusPending)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.ErrEmptyBatch
	}

	// the status guard rejects resubmitting PROCESSING or finished batches
	if err := s.batches.Transition(ctx, batchID, models.BatchStatusReady, models.BatchStatusProcessing); err != nil {
		return nil, err
	}

	s.runItems(ctx, adapter, items)
	return s.finalize(ctx, batchID)
}

// Reprocess retries only the FAILED items of a PARTIALLY_COMPLETED batch.
// This is the single sanctioned retry path.
func (s *batchService) Reprocess(ctx context.Context, batchID int64) (*models.PayoutBatch, error) {
	batch, err := s.batches.GetByID(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if batch.Status != models.BatchStatusPartiallyCompleted {
		return nil, apperrors.ErrBatchNotReprocessable
	}

	adapter, err := s.providers.Get(batch.Provider)
	if err != nil {
		return nil, err
	}

	failed, err := s.batches.ListWorkItems(ctx, batchID, models.BatchItemStatusFailed)
	if err != nil {
		return nil, err
	}

	if err := s.batches.Transition(ctx, batchID, models.BatchStatusPartiallyCompleted, models.BatchStatusProcessing); err != nil {
		return nil, err
	}

	var retry []models.BatchWorkItem
	for _, item := range failed {
		if err := s.batches.PrepareItemRetry(ctx, item.ItemID, s.maxItemAttempts); err != nil {
			logger.Log.Warn("skipping item retry",
				zap.Int64("item", item.ItemID), zap.Error(err))
			continue
		}
		retry = append(retry, item)
	}

	s.runItems(ctx, adapter, retry)
	return s.finalize(ctx, batchID)
}

// runItems dispatches items sequentially. The provider call runs without
// any affiliate lock held; the lock is taken only to apply the outcome.
// One item's failure never aborts the rest.
func (s *batchService) runItems(ctx context.Context, adapter provider.Adapter, items []models.BatchWorkItem) {
	for _, item := range items {
		result, callErr := s.submitOne(ctx, adapter, item)

		err := s.locks.WithAffiliate(ctx, item.UserID, func(ctx context.Context) error {
			switch {
			case callErr != nil:
				return s.batches.ApplyItemFailure(ctx, item.ItemID, callErr.Error())
			case !result.Success:
				reason := result.FailureReason
				if reason == "" {
					reason = "transfer declined by provider"
				}
				return s.batches.ApplyItemFailure(ctx, item.ItemID, reason)
			default:
				return s.batches.ApplyItemSuccess(ctx, item.ItemID, result.ProviderReference)
			}
		})
		if err != nil {
			logger.Log.Error("failed to apply item outcome",
				zap.Int64("item", item.ItemID), zap.Error(err))
			continue
		}

		if callErr == nil && result.Success {
			s.events.Emit(notify.Event{Name: notify.EventBalanceChanged,
				Payload: map[string]int64{"affiliate_id": item.UserID}})
		}
	}
}

// submitOne performs the single provider call for an item under a bounded
// timeout. A timeout counts as a failed item in this pass; it is never
// retried in-pass, so a slow transfer cannot be double-instructed.
func (s *batchService) submitOne(ctx context.Context, adapter provider.Adapter, item models.BatchWorkItem) (*provider.Result, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	defer cancel()

	result, err := adapter.SubmitTransfer(callCtx, provider.Instruction{
		Reference:      item.Reference,
		Amount:         item.Amount,
		Currency:       item.Currency,
		AccountDetails: item.AccountDetails,
	})
	if err != nil {
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("provider call timed out after %s", s.providerTimeout)
		}
		return nil, err
	}
	return result, nil
}

func (s *batchService) finalize(ctx context.Context, batchID int64) (*models.PayoutBatch, error) {
	successful, failed, pending, err := s.batches.ItemCounts(ctx, batchID)
	if err != nil {
		return nil, err
	}

	status := deriveStatus(successful, failed, pending)
	if err := s.batches.SetOutcome(ctx, batchID, status, successful, failed); err != nil {
		return nil, err
	}

	s.events.Emit(notify.Event{Name: notify.EventBatchStatusChanged,
		Payload: map[string]any{"batch_id": batchID, "status": status}})

	return s.batches.GetByID(ctx, batchID)
}

// deriveStatus maps item outcomes to the batch status deterministically.
func deriveStatus(successful, failed, pending int) string {
	switch {
	case pending > 0:
		return models.BatchStatusProcessing
	case failed == 0 && successful > 0:
		return models.BatchStatusCompleted
	case successful == 0 && failed > 0:
		return models.BatchStatusFailed
	default:
		return models.BatchStatusPartiallyCompleted
	}
}

func (s *batchService) Get(ctx context.Context, batchID int64) (*models.PayoutBatch, []models.BatchItem, error) {
	batch, err := s.batches.GetByID(ctx, batchID)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.batches.ListItems(ctx, batchID)
	if err != nil {
		return nil, nil, err
	}
	return batch, items, nil
}

func (s *batchService) List(ctx context.Context) ([]models.PayoutBatch, error) {
	return s.batches.List(ctx)
}

func (s *batchService) ExportRows(ctx context.Context, batchID int64) ([]models.BatchExportRow, error) {
	if _, err := s.batches.GetByID(ctx, batchID); err != nil {
		return nil, err
	}
	return s.batches.ListExportRows(ctx, batchID)
}

func (s *batchService) Delete(ctx context.Context, batchID int64) error {
	return s.batches.Delete(ctx, batchID)
}
