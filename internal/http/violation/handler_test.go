package violation_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	handler "github.com/MrJamesThe3rd/finnypolicy/internal/http/violation"
	"github.com/MrJamesThe3rd/finnypolicy/internal/transaction"
	"github.com/MrJamesThe3rd/finnypolicy/internal/violation"
)

type mocks struct {
	repo *violation.MockRepository
	txs  *violation.MockTransactionSource
}

func newRouter(t *testing.T) (http.Handler, mocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := mocks{
		repo: violation.NewMockRepository(ctrl),
		txs:  violation.NewMockTransactionSource(ctrl),
	}

	svc := violation.NewService(m.repo, m.txs, violation.NewMockPolicySource(ctrl), 1)

	r := chi.NewRouter()
	r.Route("/transactions", handler.NewHandler(svc, "en").Routes)

	return r, m
}

type listBody struct {
	Locale     string `json:"locale"`
	Violations []struct {
		Name    violation.Kind `json:"name"`
		Message string         `json:"message"`
	} `json:"violations"`
}

func TestHandler_List(t *testing.T) {
	type testCase struct {
		name        string
		query       string
		acceptLang  string
		wantLocale  string
		wantMessage string
	}

	tests := []testCase{
		{name: "Default Locale", wantLocale: "en", wantMessage: "Amount over $50.00/person limit"},
		{name: "Query Param", query: "?lang=es", wantLocale: "es", wantMessage: "Importe supera el límite de $50.00/persona"},
		{name: "Accept-Language", acceptLang: "es-ES,es;q=0.9", wantLocale: "es", wantMessage: "Importe supera el límite de $50.00/persona"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newRouter(t)
			id := uuid.New()

			m.repo.EXPECT().GetViolations(gomock.Any(), id).Return([]violation.Violation{violation.OverLimit("$50.00")}, nil)

			req := httptest.NewRequest(http.MethodGet, "/transactions/"+id.String()+"/violations"+tt.query, nil)
			if tt.acceptLang != "" {
				req.Header.Set("Accept-Language", tt.acceptLang)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)

			var body listBody
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

			assert.Equal(t, tt.wantLocale, body.Locale)
			require.Len(t, body.Violations, 1)
			assert.Equal(t, violation.KindOverLimit, body.Violations[0].Name)
			assert.Equal(t, tt.wantMessage, body.Violations[0].Message)
		})
	}
}

func TestHandler_List_InvalidID(t *testing.T) {
	router, _ := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/transactions/nope/violations", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Recompute_NotFound(t *testing.T) {
	router, m := newRouter(t)
	id := uuid.New()

	rtx := violation.NewMockRecomputeTx(gomock.NewController(t))

	m.repo.EXPECT().BeginRecompute(gomock.Any(), id).Return(rtx, nil)
	m.txs.EXPECT().Get(gomock.Any(), id).Return(nil, transaction.ErrNotFound)
	rtx.EXPECT().Rollback().Return(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/transactions/"+id.String()+"/violations/recompute", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_List_CanEdit(t *testing.T) {
	type testCase struct {
		name        string
		query       string
		wantMessage string
	}

	tests := []testCase{
		{name: "Default", wantMessage: "Receipt scanning failed. Enter details manually."},
		{name: "Explicit True", query: "?can_edit=true", wantMessage: "Receipt scanning failed. Enter details manually."},
		{name: "Explicit False", query: "?can_edit=false", wantMessage: "Receipt scanning failed."},
		{name: "Zero", query: "?can_edit=0", wantMessage: "Receipt scanning failed."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newRouter(t)
			id := uuid.New()

			m.repo.EXPECT().GetViolations(gomock.Any(), id).Return([]violation.Violation{
				violation.New(violation.KindSmartscanFailed, nil),
			}, nil)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/transactions/"+id.String()+"/violations"+tt.query, nil))

			require.Equal(t, http.StatusOK, rec.Code)

			var body listBody
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

			require.Len(t, body.Violations, 1)
			assert.Equal(t, tt.wantMessage, body.Violations[0].Message)
		})
	}
}
