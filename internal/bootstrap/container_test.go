package bootstrap

import (
	"context"
	"testing"
	"time"

	"soundkey-be/internal/config"
	"soundkey-be/internal/entity"
	"soundkey-be/internal/pkg/logger"
	"soundkey-be/internal/repository/cache"
	"soundkey-be/internal/repository/memory"
	"soundkey-be/internal/repository/unitofwork"
	"soundkey-be/pkg/corpus"
	"soundkey-be/pkg/notation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQueryCache(t *testing.T) {
	log := logger.NewNopLogger()

	c, closer := newQueryCache(config.CacheConfig{Backend: "none"}, log)
	assert.Nil(t, c)
	assert.Nil(t, closer)

	c, closer = newQueryCache(config.CacheConfig{Backend: "memory", TTL: time.Minute}, log)
	assert.IsType(t, &cache.MemoryQueryCache{}, c)
	assert.Nil(t, closer)
}

func TestNewQueryCache_UnreachableRedisFallsBack(t *testing.T) {
	cfg := config.CacheConfig{Backend: "redis", TTL: time.Minute, RedisURL: "redis://127.0.0.1:1"}

	c, closer := newQueryCache(cfg, logger.NewNopLogger())
	assert.IsType(t, &cache.MemoryQueryCache{}, c)
	assert.Nil(t, closer)
}

func TestNewContainerWithFactory(t *testing.T) {
	generated, err := corpus.Generate(notation.NewParser())
	require.NoError(t, err)
	factory := unitofwork.NewCachedRepositoryFactory(
		unitofwork.NewMemoryRepositoryFactory(
			memory.NewChordRepository(generated.Chords...),
			memory.NewScaleRepository(generated.ScaleGroups, generated.Scales...),
		),
		cache.NewMemoryQueryCache(time.Minute),
	)

	c := NewContainerWithFactory(factory, logger.NewNopLogger())
	require.NotNil(t, c.ChordController)
	require.NotNil(t, c.ScaleController)

	chords, err := c.ChordService.GetChords(context.Background(), nil, "C", string(entity.CategorySeven))
	require.NoError(t, err)
	assert.NotEmpty(t, chords)
	assert.NoError(t, c.Close())
}
