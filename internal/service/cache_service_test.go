package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	appErrors "github.com/safari-for-safety/roadkill-api/pkg/errors"
)

type stubCacheRepo struct {
	store   map[string][]byte
	deleted []string
}

func (s *stubCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	payload, ok := s.store[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(payload, dest)
}

func (s *stubCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if s.store == nil {
		s.store = make(map[string][]byte)
	}
	s.store[key] = payload
	return nil
}

func (s *stubCacheRepo) DeleteByPattern(_ context.Context, pattern string) error {
	s.deleted = append(s.deleted, pattern)
	return nil
}

func TestCacheServiceRoundTrip(t *testing.T) {
	repo := &stubCacheRepo{}
	svc := NewCacheService(repo, nil, time.Minute, nil, true)

	require.NoError(t, svc.Set(context.Background(), "stats:animals", []string{"고라니"}, 0))

	var out []string
	hit, err := svc.Get(context.Background(), "stats:animals", &out)
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, []string{"고라니"}, out)

	hit, err = svc.Get(context.Background(), "stats:missing", &out)
	require.NoError(t, err)
	require.False(t, hit)
}

func TestCacheServiceNilIsDisabled(t *testing.T) {
	var svc *CacheService
	require.False(t, svc.Enabled())

	var out []string
	hit, err := svc.Get(context.Background(), "anything", &out)
	require.NoError(t, err)
	require.False(t, hit)
	require.NoError(t, svc.Set(context.Background(), "anything", out, 0))
	require.NoError(t, svc.Invalidate(context.Background(), "stats:*"))
}

func TestCacheServiceInvalidatePattern(t *testing.T) {
	repo := &stubCacheRepo{}
	svc := NewCacheService(repo, nil, time.Minute, nil, true)

	require.NoError(t, svc.Invalidate(context.Background(), "stats:*"))
	require.Equal(t, []string{"stats:*"}, repo.deleted)
}
