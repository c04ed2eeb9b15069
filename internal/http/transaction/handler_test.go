package transaction_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	handler "github.com/MrJamesThe3rd/finnypolicy/internal/http/transaction"
	"github.com/MrJamesThe3rd/finnypolicy/internal/transaction"
	"github.com/MrJamesThe3rd/finnypolicy/internal/violation"
)

type fakeRecomputer struct {
	calls []uuid.UUID
	out   []violation.Violation
	err   error
}

func (f *fakeRecomputer) Recompute(ctx context.Context, txID uuid.UUID) ([]violation.Violation, error) {
	f.calls = append(f.calls, txID)
	return f.out, f.err
}

func newRouter(t *testing.T, rec *fakeRecomputer) (http.Handler, *transaction.MockRepository) {
	t.Helper()

	repo := transaction.NewMockRepository(gomock.NewController(t))

	r := chi.NewRouter()
	r.Route("/transactions", handler.NewHandler(transaction.NewService(repo), rec).Routes)

	return r, repo
}

type txBody struct {
	ID         uuid.UUID             `json:"id"`
	Currency   string                `json:"currency"`
	Violations []violation.Violation `json:"violations"`
}

func TestHandler_Create(t *testing.T) {
	type testCase struct {
		name       string
		body       string
		recomputer *fakeRecomputer
		wantStatus int
		wantKinds  []violation.Kind
	}

	policyID := uuid.New()

	tests := []testCase{
		{
			name:       "Returns Violations",
			body:       `{"policy_id":"` + policyID.String() + `","amount":12000,"merchant":"Cafe","created":"2026-03-01T00:00:00Z"}`,
			recomputer: &fakeRecomputer{out: []violation.Violation{violation.MissingCategory()}},
			wantStatus: http.StatusCreated,
			wantKinds:  []violation.Kind{violation.KindMissingCategory},
		},
		{
			name:       "Recompute Failure Still Saves",
			body:       `{"policy_id":"` + policyID.String() + `","amount":12000,"created":"2026-03-01T00:00:00Z"}`,
			recomputer: &fakeRecomputer{err: errors.New("db down")},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "Missing Policy",
			body:       `{"amount":12000,"created":"2026-03-01T00:00:00Z"}`,
			recomputer: &fakeRecomputer{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Unknown Field",
			body:       `{"policy_id":"` + policyID.String() + `","created":"2026-03-01T00:00:00Z","billable":true}`,
			recomputer: &fakeRecomputer{},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo := newRouter(t, tt.recomputer)
			id := uuid.New()

			if tt.wantStatus == http.StatusCreated {
				repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tx *transaction.Transaction) error {
						tx.ID = id
						return nil
					})
			}

			req := httptest.NewRequest(http.MethodPost, "/transactions/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			if tt.wantStatus != http.StatusCreated {
				assert.Empty(t, tt.recomputer.calls)
				return
			}

			var body txBody
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

			assert.Equal(t, id, body.ID)
			assert.Equal(t, "USD", body.Currency)
			assert.Equal(t, []uuid.UUID{id}, tt.recomputer.calls)

			kinds := make([]violation.Kind, 0, len(body.Violations))
			for _, v := range body.Violations {
				kinds = append(kinds, v.Name)
			}

			assert.ElementsMatch(t, tt.wantKinds, kinds)
		})
	}
}

func TestHandler_Update(t *testing.T) {
	recomputer := &fakeRecomputer{out: []violation.Violation{violation.CategoryOutOfPolicy()}}
	router, repo := newRouter(t, recomputer)

	tx := &transaction.Transaction{ID: uuid.New(), PolicyID: uuid.New(), Currency: "USD", Category: "Meals"}

	repo.EXPECT().GetTransaction(gomock.Any(), tx.ID).Return(tx, nil)
	repo.EXPECT().UpdateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, got *transaction.Transaction) error {
			assert.Equal(t, "Travel", got.Category)
			require.NotNil(t, got.ModifiedAmount)
			assert.Equal(t, int64(500), *got.ModifiedAmount)

			return nil
		})

	req := httptest.NewRequest(http.MethodPatch, "/transactions/"+tx.ID.String(),
		strings.NewReader(`{"category":"Travel","modified_amount":500}`))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body txBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

	require.Len(t, body.Violations, 1)
	assert.Equal(t, violation.KindCategoryOutOfPolicy, body.Violations[0].Name)
}

func TestHandler_Update_Overrides(t *testing.T) {
	type testCase struct {
		name         string
		body         string
		wantAmount   *int64
		wantMerchant *string
	}

	tests := []testCase{
		{
			name:         "Absent Keeps Overrides",
			body:         `{"category":"Meals"}`,
			wantAmount:   new(int64(900)),
			wantMerchant: new("Corner Cafe"),
		},
		{
			name:         "Null Clears Overrides",
			body:         `{"modified_amount":null,"modified_merchant":null}`,
			wantAmount:   nil,
			wantMerchant: nil,
		},
		{
			name:         "Value Replaces Override",
			body:         `{"modified_amount":1500}`,
			wantAmount:   new(int64(1500)),
			wantMerchant: new("Corner Cafe"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo := newRouter(t, &fakeRecomputer{})

			tx := &transaction.Transaction{
				ID:               uuid.New(),
				PolicyID:         uuid.New(),
				Amount:           1200,
				ModifiedAmount:   new(int64(900)),
				Currency:         "USD",
				Merchant:         "Cafe",
				ModifiedMerchant: new("Corner Cafe"),
			}

			var saved *transaction.Transaction

			repo.EXPECT().GetTransaction(gomock.Any(), tx.ID).Return(tx, nil)
			repo.EXPECT().UpdateTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, got *transaction.Transaction) error {
					saved = got
					return nil
				})

			req := httptest.NewRequest(http.MethodPatch, "/transactions/"+tx.ID.String(), strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			require.NotNil(t, saved)

			assert.Equal(t, tt.wantAmount, saved.ModifiedAmount)
			assert.Equal(t, tt.wantMerchant, saved.ModifiedMerchant)
		})
	}
}

func TestHandler_UpdateReceipt(t *testing.T) {
	type testCase struct {
		name        string
		body        string
		repoErr     error
		wantReceipt *transaction.Receipt
		wantStatus  int
		wantCalls   int
	}

	tests := []testCase{
		{
			name:        "Attach",
			body:        `{"source":"receipt.png","state":"SCANCOMPLETE"}`,
			wantReceipt: &transaction.Receipt{Source: "receipt.png", State: transaction.ReceiptStateScanned},
			wantStatus:  http.StatusNoContent,
			wantCalls:   1,
		},
		{
			name:       "Detach",
			body:       `{"source":""}`,
			wantStatus: http.StatusNoContent,
			wantCalls:  1,
		},
		{
			name:       "Not Found",
			body:       `{"source":"receipt.png"}`,
			repoErr:    transaction.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recomputer := &fakeRecomputer{}
			router, repo := newRouter(t, recomputer)
			id := uuid.New()

			repo.EXPECT().UpdateReceipt(gomock.Any(), id, tt.wantReceipt).Return(tt.repoErr)

			req := httptest.NewRequest(http.MethodPatch, "/transactions/"+id.String()+"/receipt", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Len(t, recomputer.calls, tt.wantCalls)
		})
	}
}
