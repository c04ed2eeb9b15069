package policy_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	handler "github.com/MrJamesThe3rd/finnypolicy/internal/http/policy"
	"github.com/MrJamesThe3rd/finnypolicy/internal/importer"
	"github.com/MrJamesThe3rd/finnypolicy/internal/policy"
)

type fakeInvalidator struct {
	invalidated []uuid.UUID
}

func (f *fakeInvalidator) Invalidate(ctx context.Context, id uuid.UUID) error {
	f.invalidated = append(f.invalidated, id)
	return nil
}

type fakeRecomputer struct {
	calls int
}

func (f *fakeRecomputer) RecomputePolicy(ctx context.Context, id uuid.UUID) (int, error) {
	f.calls++
	return 7, nil
}

type fixture struct {
	router     http.Handler
	repo       *policy.MockRepository
	cache      *fakeInvalidator
	recomputer *fakeRecomputer
	policy     *policy.Policy
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		repo:       policy.NewMockRepository(ctrl),
		cache:      &fakeInvalidator{},
		recomputer: &fakeRecomputer{},
		policy: &policy.Policy{
			ID:               uuid.New(),
			Name:             "Acme",
			Type:             policy.TypeCorporate,
			RequiresCategory: true,
			OutputCurrency:   "USD",
		},
	}

	h := handler.NewHandler(policy.NewService(f.repo), importer.NewService(), f.cache, f.recomputer)

	r := chi.NewRouter()
	r.Route("/policies", h.Routes)
	f.router = r

	return f
}

func (f *fixture) expectLoad(categories policy.Categories) {
	f.repo.EXPECT().GetPolicy(gomock.Any(), f.policy.ID).Return(f.policy, nil)
	f.repo.EXPECT().GetCategories(gomock.Any(), f.policy.ID).Return(categories, nil)
	f.repo.EXPECT().GetTagLists(gomock.Any(), f.policy.ID).Return(policy.TagLists{}, nil)
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	return rec
}

const replaceBody = `{
	"name": "Acme",
	"type": "corporate",
	"requires_category": true,
	"output_currency": "USD",
	"categories": [{"name": "Meals", "enabled": true}]
}`

func TestHandler_Replace_RecomputesOnChange(t *testing.T) {
	f := newFixture(t)
	f.expectLoad(policy.Categories{"Meals": {Name: "Meals", Enabled: false}})

	f.repo.EXPECT().UpdatePolicy(gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().ReplaceCategories(gomock.Any(), f.policy.ID, policy.Categories{"Meals": {Name: "Meals", Enabled: true}}).Return(nil)
	f.repo.EXPECT().ReplaceTagLists(gomock.Any(), f.policy.ID, gomock.Any()).Return(nil)

	rec := f.do(httptest.NewRequest(http.MethodPut, "/policies/"+f.policy.ID.String(), strings.NewReader(replaceBody)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		ID         uuid.UUID `json:"id"`
		Recomputed *int      `json:"recomputed"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

	assert.Equal(t, f.policy.ID, body.ID)
	require.NotNil(t, body.Recomputed)
	assert.Equal(t, 7, *body.Recomputed)
	assert.Equal(t, 1, f.recomputer.calls)
	assert.Equal(t, []uuid.UUID{f.policy.ID}, f.cache.invalidated)
}

func TestHandler_Replace_SkipsUnchanged(t *testing.T) {
	f := newFixture(t)
	f.expectLoad(policy.Categories{"Meals": {Name: "Meals", Enabled: true}})

	f.repo.EXPECT().UpdatePolicy(gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().ReplaceCategories(gomock.Any(), f.policy.ID, gomock.Any()).Return(nil)
	f.repo.EXPECT().ReplaceTagLists(gomock.Any(), f.policy.ID, gomock.Any()).Return(nil)

	rec := f.do(httptest.NewRequest(http.MethodPut, "/policies/"+f.policy.ID.String(), strings.NewReader(replaceBody)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Zero(t, f.recomputer.calls)
	assert.Empty(t, f.cache.invalidated)
}

func TestHandler_Replace_Invalid(t *testing.T) {
	f := newFixture(t)

	rec := f.do(httptest.NewRequest(http.MethodPut, "/policies/"+f.policy.ID.String(), strings.NewReader(`{"type":"enterprise"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Get_NotFound(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GetPolicy(gomock.Any(), f.policy.ID).Return(nil, policy.ErrNotFound)

	rec := f.do(httptest.NewRequest(http.MethodGet, "/policies/"+f.policy.ID.String(), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_SearchCategories(t *testing.T) {
	f := newFixture(t)
	f.expectLoad(policy.Categories{
		"Meals":  {Name: "Meals", Enabled: true},
		"Travel": {Name: "Travel", Enabled: true},
	})

	rec := f.do(httptest.NewRequest(http.MethodGet, "/policies/"+f.policy.ID.String()+"/categories?q=trv", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, []string{"Travel"}, got)
}

func multipartCSV(t *testing.T, content string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer

	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("file", "import.csv")
	require.NoError(t, err)

	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestHandler_ImportCategories(t *testing.T) {
	f := newFixture(t)
	f.expectLoad(policy.Categories{})

	want := policy.Categories{
		"Meals":  {Name: "Meals", Enabled: true},
		"Travel": {Name: "Travel", Enabled: false},
	}
	f.repo.EXPECT().ReplaceCategories(gomock.Any(), f.policy.ID, want).Return(nil)

	body, contentType := multipartCSV(t, "Category,Enabled\nMeals,yes\nTravel,no\n")
	req := httptest.NewRequest(http.MethodPost, "/policies/"+f.policy.ID.String()+"/import/categories", body)
	req.Header.Set("Content-Type", contentType)

	rec := f.do(req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got struct {
		Profile    string `json:"profile"`
		Imported   int    `json:"imported"`
		Recomputed *int   `json:"recomputed"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))

	assert.Equal(t, "categories", got.Profile)
	assert.Equal(t, 2, got.Imported)
	require.NotNil(t, got.Recomputed)
	assert.Equal(t, 1, f.recomputer.calls)
}

func TestHandler_ImportTags_BadFile(t *testing.T) {
	f := newFixture(t)
	f.expectLoad(policy.Categories{})

	body, contentType := multipartCSV(t, "Category,Enabled\nMeals,yes\n")
	req := httptest.NewRequest(http.MethodPost, "/policies/"+f.policy.ID.String()+"/import/tags", body)
	req.Header.Set("Content-Type", contentType)

	rec := f.do(req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, f.recomputer.calls)
}
