package report

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finnypolicy/internal/http/violation"
	"github.com/MrJamesThe3rd/finnypolicy/internal/report"
	"github.com/MrJamesThe3rd/finnypolicy/internal/transaction"
)

type Handler struct {
	svc           *report.Service
	defaultLocale string
}

func NewHandler(svc *report.Service, defaultLocale string) *Handler {
	return &Handler{svc: svc, defaultLocale: defaultLocale}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/violations", h.violations)
}

func (h *Handler) violations(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	items, err := h.svc.Build(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	t := violation.Translator(r, h.defaultLocale)

	body, err := h.svc.Render(items, t.Translate)
	if err != nil {
		slog.Error("failed to render violations report", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Language", t.Locale().String())
	_, _ = w.Write([]byte(body))
}

func parseFilter(r *http.Request) (transaction.ListFilter, error) {
	var filter transaction.ListFilter

	q := r.URL.Query()

	if s := q.Get("start_date"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return filter, err
		}

		filter.StartDate = &t
	}

	if s := q.Get("end_date"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return filter, err
		}

		filter.EndDate = &t
	}

	if s := q.Get("policy_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return filter, err
		}

		filter.PolicyID = &id
	}

	return filter, nil
}
