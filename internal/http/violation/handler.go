package violation

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finnypolicy/internal/i18n"
	"github.com/MrJamesThe3rd/finnypolicy/internal/transaction"
	"github.com/MrJamesThe3rd/finnypolicy/internal/violation"
)

type Handler struct {
	svc           *violation.Service
	defaultLocale string
}

func NewHandler(svc *violation.Service, defaultLocale string) *Handler {
	return &Handler{svc: svc, defaultLocale: defaultLocale}
}

// Routes mounts under /transactions.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/{id}/violations", h.list)
	r.Post("/{id}/violations/recompute", h.recompute)
}

type listResponse struct {
	Locale     string              `json:"locale"`
	Violations []violation.Message `json:"violations"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	tr := Translator(r, h.defaultLocale)

	msgs, err := h.svc.Messages(r.Context(), id, tr.Translate, canEdit(r))
	if errors.Is(err, violation.ErrUnknownKind) {
		slog.Warn("skipping violations of unknown kind", "transaction_id", id, "error", err)
	} else if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, listResponse{Locale: tr.Locale().String(), Violations: msgs})
}

func (h *Handler) recompute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	vs, err := h.svc.Recompute(r.Context(), id)
	if err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		slog.Error("failed to recompute violations", "transaction_id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if vs == nil {
		vs = []violation.Violation{}
	}

	writeJSON(w, http.StatusOK, vs)
}

// Translator picks the message locale from the lang query parameter, then
// Accept-Language, then the fallback.
func Translator(r *http.Request, fallback string) *i18n.Translator {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return i18n.New(lang)
	}

	if accept := r.Header.Get("Accept-Language"); accept != "" {
		return i18n.New(accept)
	}

	return i18n.New(fallback)
}

// canEdit reads the viewer's edit permission from the can_edit query flag.
// Viewers can edit unless the flag says otherwise.
func canEdit(r *http.Request) bool {
	v := r.URL.Query().Get("can_edit")
	if v == "" {
		return true
	}

	allowed, err := strconv.ParseBool(v)

	return err != nil || allowed
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
