package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/finnypolicy/internal/policy"
	"github.com/MrJamesThe3rd/finnypolicy/internal/policy/cache"
)

const ttl = 5 * time.Minute

func sample(id uuid.UUID) *policy.Config {
	return &policy.Config{
		Policy:     &policy.Policy{ID: id, Name: "Acme", Type: policy.TypeCorporate, RequiresCategory: true},
		Categories: policy.Categories{"Meals": {Name: "Meals", Enabled: true}},
		TagLists:   policy.TagLists{{Name: "Department", Required: new(false)}},
	}
}

func TestCache_Config_Hit(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := cache.NewMockClient(ctrl)
	source := cache.NewMockSource(ctrl)

	id := uuid.New()
	want := sample(id)

	raw, err := json.Marshal(want)
	require.NoError(t, err)

	client.EXPECT().Get(gomock.Any(), "policy_config:"+id.String()).Return(redis.NewStringResult(string(raw), nil))

	got, err := cache.New(client, source, ttl).Config(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCache_Config_Miss(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := cache.NewMockClient(ctrl)
	source := cache.NewMockSource(ctrl)

	id := uuid.New()
	want := sample(id)

	client.EXPECT().Get(gomock.Any(), "policy_config:"+id.String()).Return(redis.NewStringResult("", redis.Nil))
	source.EXPECT().Config(gomock.Any(), id).Return(want, nil)
	client.EXPECT().Set(gomock.Any(), "policy_config:"+id.String(), gomock.Any(), ttl).Return(redis.NewStatusResult("OK", nil))

	got, err := cache.New(client, source, ttl).Config(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCache_Config_RedisDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := cache.NewMockClient(ctrl)
	source := cache.NewMockSource(ctrl)

	id := uuid.New()
	want := sample(id)
	down := errors.New("connection refused")

	client.EXPECT().Get(gomock.Any(), gomock.Any()).Return(redis.NewStringResult("", down))
	source.EXPECT().Config(gomock.Any(), id).Return(want, nil)
	client.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), ttl).Return(redis.NewStatusResult("", down))

	got, err := cache.New(client, source, ttl).Config(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCache_Config_SourceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := cache.NewMockClient(ctrl)
	source := cache.NewMockSource(ctrl)

	id := uuid.New()

	client.EXPECT().Get(gomock.Any(), gomock.Any()).Return(redis.NewStringResult("", redis.Nil))
	source.EXPECT().Config(gomock.Any(), id).Return(nil, policy.ErrNotFound)

	_, err := cache.New(client, source, ttl).Config(context.Background(), id)
	assert.ErrorIs(t, err, policy.ErrNotFound)
}

func TestCache_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := cache.NewMockSource(ctrl)

	id := uuid.New()
	source.EXPECT().Config(gomock.Any(), id).Return(sample(id), nil).Times(2)

	c := cache.New(nil, source, ttl)

	for range 2 {
		_, err := c.Config(context.Background(), id)
		require.NoError(t, err)
	}

	assert.NoError(t, c.Invalidate(context.Background(), id))
}

func TestCache_Invalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := cache.NewMockClient(ctrl)
	source := cache.NewMockSource(ctrl)

	id := uuid.New()
	client.EXPECT().Del(gomock.Any(), "policy_config:"+id.String()).Return(redis.NewIntResult(1, nil))

	assert.NoError(t, cache.New(client, source, ttl).Invalidate(context.Background(), id))
}
