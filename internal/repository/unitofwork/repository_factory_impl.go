package unitofwork

import (
	"context"
	"time"

	"soundkey-be/internal/repository/cache"
	"soundkey-be/internal/repository/contract"
	"soundkey-be/internal/repository/memory"

	"gorm.io/gorm"
)

type RepositoryFactoryImpl struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewRepositoryFactory hands out postgres backed units of work. timeout
// bounds every corpus call; zero disables the bound.
func NewRepositoryFactory(db *gorm.DB, timeout time.Duration) RepositoryFactory {
	return &RepositoryFactoryImpl{
		db:      db,
		timeout: timeout,
	}
}

func (f *RepositoryFactoryImpl) NewUnitOfWork(ctx context.Context) UnitOfWork {
	return NewUnitOfWork(f.db, f.timeout)
}

// MemoryRepositoryFactory serves a corpus held in process. Transactions
// are no-ops.
type MemoryRepositoryFactory struct {
	chords *memory.ChordRepository
	scales *memory.ScaleRepository
}

func NewMemoryRepositoryFactory(chords *memory.ChordRepository, scales *memory.ScaleRepository) RepositoryFactory {
	return &MemoryRepositoryFactory{chords: chords, scales: scales}
}

func (f *MemoryRepositoryFactory) NewUnitOfWork(ctx context.Context) UnitOfWork {
	return &memoryUnitOfWork{chords: f.chords, scales: f.scales}
}

type memoryUnitOfWork struct {
	chords *memory.ChordRepository
	scales *memory.ScaleRepository
}

func (u *memoryUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *memoryUnitOfWork) Commit() error                   { return nil }
func (u *memoryUnitOfWork) Rollback() error                 { return nil }

func (u *memoryUnitOfWork) ChordRepository() contract.ChordRepository { return u.chords }
func (u *memoryUnitOfWork) ScaleRepository() contract.ScaleRepository { return u.scales }

// CachedRepositoryFactory decorates the read paths of another factory's
// repositories with a QueryCache.
type CachedRepositoryFactory struct {
	next  RepositoryFactory
	cache cache.QueryCache
}

func NewCachedRepositoryFactory(next RepositoryFactory, c cache.QueryCache) RepositoryFactory {
	return &CachedRepositoryFactory{next: next, cache: c}
}

func (f *CachedRepositoryFactory) NewUnitOfWork(ctx context.Context) UnitOfWork {
	return &cachedUnitOfWork{UnitOfWork: f.next.NewUnitOfWork(ctx), cache: f.cache}
}

type cachedUnitOfWork struct {
	UnitOfWork
	cache cache.QueryCache
}

func (u *cachedUnitOfWork) ChordRepository() contract.ChordRepository {
	return cache.NewChordRepository(u.UnitOfWork.ChordRepository(), u.cache)
}

func (u *cachedUnitOfWork) ScaleRepository() contract.ScaleRepository {
	return cache.NewScaleRepository(u.UnitOfWork.ScaleRepository(), u.cache)
}
