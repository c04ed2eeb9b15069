package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finnypolicy/internal/http/request"
	"github.com/MrJamesThe3rd/finnypolicy/internal/transaction"
	"github.com/MrJamesThe3rd/finnypolicy/internal/violation"
)

// Recomputer refreshes the violations of a transaction after it changes.
type Recomputer interface {
	Recompute(ctx context.Context, txID uuid.UUID) ([]violation.Violation, error)
}

type Handler struct {
	svc        *transaction.Service
	violations Recomputer
}

func NewHandler(svc *transaction.Service, violations Recomputer) *Handler {
	return &Handler{svc: svc, violations: violations}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Delete("/{id}", h.delete)
	r.Patch("/{id}/receipt", h.updateReceipt)
	r.Patch("/{id}", h.update)
}

type createTransactionRequest struct {
	PolicyID         uuid.UUID `json:"policy_id" validate:"required"`
	Amount           int64     `json:"amount"`
	Currency         string    `json:"currency" validate:"omitempty,iso4217"`
	Merchant         string    `json:"merchant"`
	Category         string    `json:"category"`
	Tag              string    `json:"tag"`
	Created          time.Time `json:"created" validate:"required"`
	CustomUnitRateID string    `json:"custom_unit_rate_id"`
	IsInvoice        bool      `json:"is_invoice"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := request.Decode(w, r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	tx, err := h.svc.Create(r.Context(), transaction.CreateParams{
		PolicyID:         req.PolicyID,
		Amount:           req.Amount,
		Currency:         currency,
		Merchant:         req.Merchant,
		Category:         req.Category,
		Tag:              req.Tag,
		Created:          req.Created,
		CustomUnitRateID: req.CustomUnitRateID,
		IsInvoice:        req.IsInvoice,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, h.withViolations(r.Context(), tx))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := transaction.ListFilter{}

	if s := r.URL.Query().Get("policy_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid policy_id", http.StatusBadRequest)
			return
		}

		filter.PolicyID = &id
	}

	if s := r.URL.Query().Get("start_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.StartDate = new(t)
		}
	}

	if s := r.URL.Query().Get("end_date"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.EndDate = new(t)
		}
	}

	txs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, toResponseList(txs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	tx, ok := h.load(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, toResponse(tx))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// updateTransactionRequest patches a transaction. The modified_* overrides
// are cleared by sending null.
type updateTransactionRequest struct {
	ModifiedAmount   nullable[int64]     `json:"modified_amount"`
	ModifiedMerchant nullable[string]    `json:"modified_merchant"`
	ModifiedCreated  nullable[time.Time] `json:"modified_created"`
	Merchant         *string             `json:"merchant,omitempty"`
	Amount           *int64              `json:"amount,omitempty"`
	Currency         *string             `json:"currency,omitempty" validate:"omitempty,iso4217"`
	Category         *string             `json:"category,omitempty"`
	Tag              *string             `json:"tag,omitempty"`
	CustomUnitRateID *string             `json:"custom_unit_rate_id,omitempty"`
	IsInvoice        *bool               `json:"is_invoice,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req updateTransactionRequest
	if err := request.Decode(w, r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tx, ok := h.load(w, r)
	if !ok {
		return
	}

	req.ModifiedAmount.apply(&tx.ModifiedAmount)
	req.ModifiedMerchant.apply(&tx.ModifiedMerchant)
	req.ModifiedCreated.apply(&tx.ModifiedCreated)

	if req.Merchant != nil {
		tx.Merchant = *req.Merchant
	}

	if req.Amount != nil {
		tx.Amount = *req.Amount
	}

	if req.Currency != nil {
		tx.Currency = *req.Currency
	}

	if req.Category != nil {
		tx.Category = *req.Category
	}

	if req.Tag != nil {
		tx.Tag = *req.Tag
	}

	if req.CustomUnitRateID != nil {
		tx.CustomUnitRateID = *req.CustomUnitRateID
	}

	if req.IsInvoice != nil {
		tx.IsInvoice = *req.IsInvoice
	}

	if err := h.svc.Update(r.Context(), tx); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, h.withViolations(r.Context(), tx))
}

type updateReceiptRequest struct {
	Source string                   `json:"source"`
	State  transaction.ReceiptState `json:"state"`
}

// updateReceipt attaches a receipt. An empty source detaches it.
func (h *Handler) updateReceipt(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateReceiptRequest
	if err := request.Decode(w, r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var receipt *transaction.Receipt
	if req.Source != "" {
		receipt = &transaction.Receipt{Source: req.Source, State: req.State}
	}

	if err := h.svc.AttachReceipt(r.Context(), id, receipt); err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	if _, err := h.violations.Recompute(r.Context(), id); err != nil {
		slog.Error("failed to recompute violations", "transaction_id", id, "error", err)
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) (*transaction.Transaction, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return nil, false
	}

	tx, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return nil, false
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return nil, false
	}

	return tx, true
}

// withViolations recomputes the violations of a saved transaction. A failed
// recompute is logged and the response goes out without them.
func (h *Handler) withViolations(ctx context.Context, tx *transaction.Transaction) transactionResponse {
	resp := toResponse(tx)

	vs, err := h.violations.Recompute(ctx, tx.ID)
	if err != nil {
		slog.Error("failed to recompute violations", "transaction_id", tx.ID, "error", err)
		return resp
	}

	resp.Violations = vs

	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
