package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-match-api/internal/domain"
	"github.com/vfg2006/influencer-match-api/internal/usecases/searching"
)

const defaultSearchTTL = 6 * time.Hour

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ChannelSearchCache guarda as buscas de canais para poupar a cota da API.
// Falhas do cache nunca impedem a busca.
type ChannelSearchCache struct {
	next  searching.ChannelSearcher
	store Store
	ttl   time.Duration
}

func NewChannelSearchCache(next searching.ChannelSearcher, store Store, ttl time.Duration) *ChannelSearchCache {
	if ttl <= 0 {
		ttl = defaultSearchTTL
	}

	return &ChannelSearchCache{
		next:  next,
		store: store,
		ttl:   ttl,
	}
}

func (c *ChannelSearchCache) SearchChannels(ctx context.Context, query string, maxResults int) ([]domain.ChannelCandidate, error) {
	key := searchKey(query, maxResults)
	logger := logrus.WithField("key", key)

	if raw, err := c.store.Get(ctx, key); err != nil {
		logger.WithError(err).Warn("cache: falha ao ler busca em cache")
	} else if raw != nil {
		var candidates []domain.ChannelCandidate
		if err := json.Unmarshal(raw, &candidates); err == nil {
			logger.Debug("cache: busca encontrada em cache")
			return candidates, nil
		}
		logger.Warn("cache: conteúdo inválido em cache, refazendo busca")
	}

	candidates, err := c.next.SearchChannels(ctx, query, maxResults)
	if err != nil {
		return nil, err
	}

	if len(candidates) == 0 {
		return candidates, nil
	}

	raw, err := json.Marshal(candidates)
	if err != nil {
		logger.WithError(err).Warn("cache: falha ao serializar busca")
		return candidates, nil
	}

	if err := c.store.Set(ctx, key, raw, c.ttl); err != nil {
		logger.WithError(err).Warn("cache: falha ao gravar busca em cache")
	}

	return candidates, nil
}

func searchKey(query string, maxResults int) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(query)), " ")
	return fmt.Sprintf("search:channels:%d:%s", maxResults, normalized)
}
