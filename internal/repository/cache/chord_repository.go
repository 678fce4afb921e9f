package cache

import (
	"context"

	"soundkey-be/internal/entity"
	"soundkey-be/internal/repository/contract"
	"soundkey-be/internal/repository/specification"
)

// ChordRepository serves repeated chord queries from a QueryCache. The
// corpus is read-only at runtime, so entries only age out by TTL.
type ChordRepository struct {
	next  contract.ChordRepository
	cache QueryCache
}

func NewChordRepository(next contract.ChordRepository, c QueryCache) contract.ChordRepository {
	return &ChordRepository{next: next, cache: c}
}

func (r *ChordRepository) Create(ctx context.Context, chord *entity.ChordRecord) error {
	return r.next.Create(ctx, chord)
}

func (r *ChordRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChordRecord, error) {
	key := specKey("chord:one", specs)
	if hit, ok := lookup[*entity.ChordRecord](ctx, r.cache, key); ok {
		return hit, nil
	}
	res, err := r.next.FindOne(ctx, specs...)
	if err != nil {
		return nil, err
	}
	store(ctx, r.cache, key, res)
	return res, nil
}

func (r *ChordRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChordRecord, error) {
	key := specKey("chord:all", specs)
	if hit, ok := lookup[[]*entity.ChordRecord](ctx, r.cache, key); ok {
		return hit, nil
	}
	res, err := r.next.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	store(ctx, r.cache, key, res)
	return res, nil
}

func (r *ChordRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return r.next.Count(ctx, specs...)
}
