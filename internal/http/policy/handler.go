package policy

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/finnypolicy/internal/encoding"
	"github.com/MrJamesThe3rd/finnypolicy/internal/http/request"
	"github.com/MrJamesThe3rd/finnypolicy/internal/importer"
	"github.com/MrJamesThe3rd/finnypolicy/internal/policy"
)

const maxUploadBytes = 10 << 20

// Recomputer refreshes the violations of every transaction of a policy.
type Recomputer interface {
	RecomputePolicy(ctx context.Context, policyID uuid.UUID) (int, error)
}

// Invalidator drops cached copies of a policy configuration.
type Invalidator interface {
	Invalidate(ctx context.Context, policyID uuid.UUID) error
}

type Handler struct {
	svc        *policy.Service
	importSvc  *importer.Service
	cache      Invalidator
	violations Recomputer
}

func NewHandler(svc *policy.Service, importSvc *importer.Service, cache Invalidator, violations Recomputer) *Handler {
	return &Handler{
		svc:        svc,
		importSvc:  importSvc,
		cache:      cache,
		violations: violations,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.replace)
	r.Get("/{id}/categories", h.searchCategories)
	r.Post("/{id}/import/categories", h.importFile(importer.KindCategories))
	r.Post("/{id}/import/tags", h.importFile(importer.KindTags))
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req policyRequest
	if err := request.Decode(w, r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cfg := req.toConfig(uuid.Nil)

	if err := h.svc.Create(r.Context(), cfg.Policy); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := h.store(r.Context(), cfg); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toResponse(cfg))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.load(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, toResponse(cfg))
}

// replace overwrites the whole configuration and recomputes the policy's
// transactions when anything they depend on changed.
func (h *Handler) replace(w http.ResponseWriter, r *http.Request) {
	var req policyRequest
	if err := request.Decode(w, r, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	before, ok := h.load(w, r)
	if !ok {
		return
	}

	cfg := req.toConfig(before.Policy.ID)

	if err := h.svc.Update(r.Context(), cfg.Policy); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if err := h.store(r.Context(), cfg); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := toResponse(cfg)
	resp.Recomputed = h.refresh(r.Context(), before, cfg)

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) searchCategories(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.load(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, cfg.Categories.Search(r.URL.Query().Get("q")))
}

type importResponse struct {
	Profile    string `json:"profile"`
	Charset    string `json:"charset"`
	Imported   int    `json:"imported"`
	Recomputed *int   `json:"recomputed,omitempty"`
}

func (h *Handler) importFile(kind importer.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		before, ok := h.load(w, r)
		if !ok {
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "file field is required", http.StatusBadRequest)
			return
		}
		defer file.Close()

		result, err := h.importSvc.Import(kind, file)
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, encoding.ErrNotText) {
				status = http.StatusUnsupportedMediaType
			}

			http.Error(w, err.Error(), status)

			return
		}

		after := &policy.Config{Policy: before.Policy, Categories: before.Categories, TagLists: before.TagLists}
		resp := importResponse{Profile: result.Profile, Charset: result.Charset}

		switch kind {
		case importer.KindCategories:
			after.Categories = result.Categories
			resp.Imported = len(result.Categories)
			err = h.svc.SetCategories(r.Context(), before.Policy.ID, result.Categories)
		case importer.KindTags:
			after.TagLists = result.TagLists
			for _, l := range result.TagLists {
				resp.Imported += len(l.Tags)
			}

			err = h.svc.SetTagLists(r.Context(), before.Policy.ID, result.TagLists)
		}

		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		resp.Recomputed = h.refresh(r.Context(), before, after)

		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) (*policy.Config, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return nil, false
	}

	cfg, err := h.svc.Config(r.Context(), id)
	if err != nil {
		if errors.Is(err, policy.ErrNotFound) {
			http.Error(w, "policy not found", http.StatusNotFound)
			return nil, false
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return nil, false
	}

	return cfg, true
}

func (h *Handler) store(ctx context.Context, cfg *policy.Config) error {
	if err := h.svc.SetCategories(ctx, cfg.Policy.ID, cfg.Categories); err != nil {
		return fmt.Errorf("saving categories: %w", err)
	}

	if err := h.svc.SetTagLists(ctx, cfg.Policy.ID, cfg.TagLists); err != nil {
		return fmt.Errorf("saving tag lists: %w", err)
	}

	return nil
}

// refresh invalidates the cached configuration and recomputes the policy's
// transactions if the configuration changed. It returns how many were
// recomputed, or nil when nothing ran.
func (h *Handler) refresh(ctx context.Context, before, after *policy.Config) *int {
	id := after.Policy.ID

	changed := true

	a, errA := before.Fingerprint()
	b, errB := after.Fingerprint()

	if errA == nil && errB == nil {
		changed = a != b
	}

	if !changed {
		return nil
	}

	if err := h.cache.Invalidate(ctx, id); err != nil {
		slog.Error("failed to invalidate policy config", "policy_id", id, "error", err)
	}

	n, err := h.violations.RecomputePolicy(ctx, id)
	if err != nil {
		slog.Error("failed to recompute policy violations", "policy_id", id, "error", err)
		return nil
	}

	slog.Info("recomputed policy violations", "policy_id", id, "transactions", n)

	return &n
}

func sortResponse(resp *policyResponse) {
	slices.SortFunc(resp.CustomUnitRates, func(a, b rateDTO) int { return cmp.Compare(a.ID, b.ID) })
	slices.SortFunc(resp.Categories, func(a, b categoryDTO) int { return cmp.Compare(a.Name, b.Name) })

	for i := range resp.TagLists {
		slices.SortFunc(resp.TagLists[i].Tags, func(a, b tagDTO) int { return cmp.Compare(a.Name, b.Name) })
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
