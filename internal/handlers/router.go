package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"github.com/affipay/affipay/internal/middleware"
)

func NewRouter(handler *Handler, webhookKey string) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.NewLoggingMiddleware())
	r.Use(middleware.NewGzipMiddleware())
	r.Use(middleware.RateLimitMiddleware(middleware.NewIPRateLimiter(rate.Limit(50), 100)))

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid URL format", http.StatusNotFound)
	})

	r.Route("/api", func(r chi.Router) {
		r.With(middleware.NewSignatureMiddleware(webhookKey)).
			Post("/events/sale", handler.RecordSaleEvent)

		r.Route("/affiliates/{id}", func(r chi.Router) {
			r.Get("/balance", handler.GetBalance)
			r.Post("/withdrawals", handler.CreateWithdrawal)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Route("/commissions", func(r chi.Router) {
				r.Get("/", handler.ListCommissions)
				r.Get("/summary", handler.CommissionSummary)
				r.Get("/export", handler.ExportCommissions)
				r.Post("/{id}/approve", handler.ApproveCommission)
				r.Post("/{id}/reject", handler.RejectCommission)
			})

			r.Route("/withdrawals", func(r chi.Router) {
				r.Get("/", handler.ListWithdrawals)
				r.Get("/summary", handler.WithdrawalSummary)
				r.Post("/{id}/approve", handler.ApproveWithdrawal)
				r.Post("/{id}/reject", handler.RejectWithdrawal)
				r.Post("/{id}/requeue", handler.RequeueWithdrawal)
			})

			r.Route("/batches", func(r chi.Router) {
				r.Post("/", handler.CreateBatch)
				r.Get("/", handler.ListBatches)
				r.Get("/{id}", handler.GetBatch)
				r.Post("/{id}/withdrawals", handler.AddBatchWithdrawals)
				r.Post("/{id}/submit", handler.SubmitBatch)
				r.Post("/{id}/reprocess", handler.ReprocessBatch)
				r.Get("/{id}/export", handler.ExportBatch)
				r.Delete("/{id}", handler.DeleteBatch)
			})
		})
	})

	return r
}
