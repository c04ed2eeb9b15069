package policy_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/finnypolicy/internal/policy"
)

func TestTagLists_Sorted(t *testing.T) {
	lists := policy.TagLists{
		{Name: "Region", OrderWeight: 2},
		{Name: "Department", OrderWeight: 0},
		{Name: "Cost Center", OrderWeight: 1},
		{Name: "Another Cost Center", OrderWeight: 1},
	}

	sorted := lists.Sorted()

	names := make([]string, len(sorted))
	for i, l := range sorted {
		names[i] = l.Name
	}

	assert.Equal(t, []string{"Department", "Cost Center", "Another Cost Center", "Region"}, names)
	assert.Equal(t, "Region", lists[0].Name, "receiver must not be reordered")
}

func TestTagList_IsRequired(t *testing.T) {
	assert.True(t, policy.TagList{}.IsRequired())
	assert.True(t, policy.TagList{Required: new(true)}.IsRequired())
	assert.False(t, policy.TagList{Required: new(false)}.IsRequired())
}

func TestCategories_IsEnabled(t *testing.T) {
	categories := policy.Categories{
		"Meals":  {Name: "Meals", Enabled: true},
		"Travel": {Name: "Travel", Enabled: false},
	}

	assert.True(t, categories.IsEnabled("Meals"))
	assert.False(t, categories.IsEnabled("Travel"))
	assert.False(t, categories.IsEnabled("Unknown"))
	assert.False(t, policy.Categories(nil).IsEnabled("Meals"))
}

func TestPolicy_DistanceRate(t *testing.T) {
	p := policy.Policy{
		CustomUnitRates: map[string]policy.Rate{
			"rate-1": {ID: "rate-1", Name: "Default", Rate: 67, Enabled: true},
		},
	}

	r, ok := p.DistanceRate("rate-1")
	assert.True(t, ok)
	assert.Equal(t, "Default", r.Name)

	_, ok = p.DistanceRate("rate-2")
	assert.False(t, ok)

	_, ok = p.DistanceRate("")
	assert.False(t, ok)
}

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		policy    *policy.Policy
		setupMock func(m *policy.MockRepository)
		wantType  policy.Type
		wantErr   bool
	}

	tests := []testCase{
		{
			name:   "Defaults Type",
			policy: &policy.Policy{Name: "Acme"},
			setupMock: func(m *policy.MockRepository) {
				m.EXPECT().CreatePolicy(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantType: policy.TypeTeam,
		},
		{
			name:   "Keeps Type",
			policy: &policy.Policy{Name: "Acme", Type: policy.TypeCorporate},
			setupMock: func(m *policy.MockRepository) {
				m.EXPECT().CreatePolicy(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantType: policy.TypeCorporate,
		},
		{
			name:    "Missing Name",
			policy:  &policy.Policy{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := policy.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			err := policy.NewService(repo).Create(context.Background(), tt.policy)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantType, tt.policy.Type)
		})
	}
}

func TestService_Config(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	p := &policy.Policy{ID: id, Name: "Acme", Type: policy.TypeCorporate}
	categories := policy.Categories{"Meals": {Name: "Meals", Enabled: true}}
	lists := policy.TagLists{{Name: "Department", Tags: map[string]policy.Tag{"Eng": {Name: "Eng", Enabled: true}}}}

	repo := policy.NewMockRepository(ctrl)
	repo.EXPECT().GetPolicy(gomock.Any(), id).Return(p, nil)
	repo.EXPECT().GetCategories(gomock.Any(), id).Return(categories, nil)
	repo.EXPECT().GetTagLists(gomock.Any(), id).Return(lists, nil)

	cfg, err := policy.NewService(repo).Config(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, p, cfg.Policy)
	assert.Equal(t, categories, cfg.Categories)
	assert.Equal(t, lists, cfg.TagLists)
}

func TestService_Config_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := policy.NewMockRepository(ctrl)
	repo.EXPECT().GetPolicy(gomock.Any(), id).Return(nil, policy.ErrNotFound)

	_, err := policy.NewService(repo).Config(context.Background(), id)
	assert.True(t, errors.Is(err, policy.ErrNotFound))
}
