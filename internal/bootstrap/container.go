package bootstrap

import (
	"context"
	"time"

	"soundkey-be/internal/config"
	"soundkey-be/internal/controller"
	"soundkey-be/internal/pkg/logger"
	"soundkey-be/internal/repository/cache"
	"soundkey-be/internal/repository/unitofwork"
	"soundkey-be/internal/service"
	"soundkey-be/pkg/notation"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChordController controller.IChordController
	ScaleController controller.IScaleController

	// Services
	ChordService service.IChordService
	ScaleService service.IScaleService

	Logger logger.ILogger

	closers []func() error
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	var uowFactory unitofwork.RepositoryFactory = unitofwork.NewRepositoryFactory(db, cfg.Database.QueryTimeout)
	queryCache, closer := newQueryCache(cfg.Cache, sysLogger)
	if queryCache != nil {
		uowFactory = unitofwork.NewCachedRepositoryFactory(uowFactory, queryCache)
	}

	c := NewContainerWithFactory(uowFactory, sysLogger)
	if closer != nil {
		c.closers = append(c.closers, closer)
	}
	return c
}

// NewContainerWithFactory wires services and controllers over any corpus
// backend, the in-memory one included.
func NewContainerWithFactory(uowFactory unitofwork.RepositoryFactory, sysLogger logger.ILogger) *Container {
	parser := notation.NewParser()

	chordService := service.NewChordService(uowFactory, parser, sysLogger)
	scaleService := service.NewScaleService(uowFactory, parser, sysLogger)

	return &Container{
		ChordController: controller.NewChordController(chordService),
		ScaleController: controller.NewScaleController(scaleService),
		ChordService:    chordService,
		ScaleService:    scaleService,
		Logger:          sysLogger,
	}
}

// Close releases cache connections and flushes the logger.
func (c *Container) Close() error {
	var firstErr error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	_ = c.Logger.Sync()
	return firstErr
}

// newQueryCache picks the result cache backend. An unreachable redis falls
// back to the in-process cache.
func newQueryCache(cfg config.CacheConfig, log logger.ILogger) (cache.QueryCache, func() error) {
	switch cfg.Backend {
	case "none", "":
		log.Info("Bootstrap", "Query cache disabled", nil)
		return nil, nil
	case "redis":
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Warn("Bootstrap", "Failed to parse Redis URL, using direct Addr", map[string]interface{}{
				"error": err.Error(),
			})
			opt = &redis.Options{Addr: cfg.RedisURL}
		}
		rdb := redis.NewClient(opt)

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn("Bootstrap", "Redis unreachable, falling back to memory cache", map[string]interface{}{
				"error": err.Error(),
			})
			_ = rdb.Close()
			return cache.NewMemoryQueryCache(cfg.TTL), nil
		}
		log.Info("Bootstrap", "Query cache backed by redis", map[string]interface{}{"ttl": cfg.TTL.String()})
		return cache.NewRedisQueryCache(rdb, cfg.TTL), rdb.Close
	default:
		log.Info("Bootstrap", "Query cache in memory", map[string]interface{}{"ttl": cfg.TTL.String()})
		return cache.NewMemoryQueryCache(cfg.TTL), nil
	}
}
