package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/influencer-match-api/internal/domain"
	"github.com/vfg2006/influencer-match-api/internal/usecases/searching/mocks"
	"go.uber.org/mock/gomock"
)

type memoryStore struct {
	values  map[string][]byte
	ttls    map[string]time.Duration
	failGet bool
	failSet bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (s *memoryStore) Get(_ context.Context, key string) ([]byte, error) {
	if s.failGet {
		return nil, errors.New("redis down")
	}
	return s.values[key], nil
}

func (s *memoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if s.failSet {
		return errors.New("redis down")
	}
	s.values[key] = value
	s.ttls[key] = ttl
	return nil
}

var candidates = []domain.ChannelCandidate{
	{ExternalID: "UC1", Title: "Tech Reviews", Description: "Gadgets", ThumbnailURL: "https://img/1.jpg"},
	{ExternalID: "UC2", Title: "Unboxing BR"},
}

func TestChannelSearchCache_SearchChannels(t *testing.T) {
	ctx := context.Background()

	t.Run("Segunda busca vem do cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := mocks.NewMockChannelSearcher(ctrl)
		next.EXPECT().SearchChannels(gomock.Any(), "Smartphone X", 10).Return(candidates, nil).Times(1)

		store := newMemoryStore()
		cache := NewChannelSearchCache(next, store, time.Hour)

		first, err := cache.SearchChannels(ctx, "Smartphone X", 10)
		require.NoError(t, err)
		second, err := cache.SearchChannels(ctx, "  smartphone   x ", 10)
		require.NoError(t, err)

		assert.Equal(t, candidates, first)
		assert.Equal(t, candidates, second)
		assert.Equal(t, time.Hour, store.ttls["search:channels:10:smartphone x"])
	})

	t.Run("Quantidade diferente não compartilha cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := mocks.NewMockChannelSearcher(ctrl)
		next.EXPECT().SearchChannels(gomock.Any(), "gaming", 10).Return(candidates, nil)
		next.EXPECT().SearchChannels(gomock.Any(), "gaming", 20).Return(candidates[:1], nil)

		cache := NewChannelSearchCache(next, newMemoryStore(), 0)

		_, err := cache.SearchChannels(ctx, "gaming", 10)
		require.NoError(t, err)
		result, err := cache.SearchChannels(ctx, "gaming", 20)
		require.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("Resultado vazio não é guardado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := mocks.NewMockChannelSearcher(ctrl)
		next.EXPECT().SearchChannels(gomock.Any(), "nada", 5).Return([]domain.ChannelCandidate{}, nil).Times(2)

		store := newMemoryStore()
		cache := NewChannelSearchCache(next, store, 0)

		_, _ = cache.SearchChannels(ctx, "nada", 5)
		_, _ = cache.SearchChannels(ctx, "nada", 5)
		assert.Empty(t, store.values)
	})

	t.Run("Falha no redis não impede a busca", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := mocks.NewMockChannelSearcher(ctrl)
		next.EXPECT().SearchChannels(gomock.Any(), "gaming", 10).Return(candidates, nil)

		store := newMemoryStore()
		store.failGet = true
		store.failSet = true

		result, err := NewChannelSearchCache(next, store, 0).SearchChannels(ctx, "gaming", 10)
		require.NoError(t, err)
		assert.Equal(t, candidates, result)
	})

	t.Run("Conteúdo corrompido refaz a busca", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := mocks.NewMockChannelSearcher(ctrl)
		next.EXPECT().SearchChannels(gomock.Any(), "gaming", 10).Return(candidates, nil)

		store := newMemoryStore()
		store.values["search:channels:10:gaming"] = []byte("{not json")

		result, err := NewChannelSearchCache(next, store, 0).SearchChannels(ctx, "gaming", 10)
		require.NoError(t, err)
		assert.Equal(t, candidates, result)
	})

	t.Run("Erro da busca é propagado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := mocks.NewMockChannelSearcher(ctrl)
		next.EXPECT().SearchChannels(gomock.Any(), "gaming", 10).Return(nil, errors.New("quota exceeded"))

		_, err := NewChannelSearchCache(next, newMemoryStore(), 0).SearchChannels(ctx, "gaming", 10)
		assert.EqualError(t, err, "quota exceeded")
	})
}
