// Package export renders admin reports as CSV. Monetary columns carry
// values normalized to USD when the rows were recorded, never recomputed
// at export time.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/affipay/affipay/internal/models"
)

var commissionHeader = []string{"Affiliate", "Email", "Type", "Commission(USD)", "SaleAmount(USD)", "Rate", "Status", "Date"}

var batchHeader = []string{"Reference", "Affiliate", "Email", "Amount(USD)", "Currency", "Channel", "Status", "FailureReason"}

// WriteCommissionReport streams the commission report rows as CSV.
func WriteCommissionReport(w io.Writer, rows []models.CommissionReportRow) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(commissionHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Affiliate,
			row.Email,
			string(row.Source),
			row.CommissionUSD.StringFixed(2),
			row.SaleAmountUSD.StringFixed(2),
			row.Rate.String(),
			row.Status,
			row.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteBatchExport streams a batch reconciliation snapshot as CSV. Each
// line maps one-to-one to a batch item via the withdrawal reference.
func WriteBatchExport(w io.Writer, rows []models.BatchExportRow) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(batchHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		failureReason := ""
		if row.FailureReason != nil {
			failureReason = *row.FailureReason
		}
		record := []string{
			row.Reference,
			row.Affiliate,
			row.Email,
			row.AmountUSD.StringFixed(2),
			row.Currency,
			row.Channel,
			row.Status,
			failureReason,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
