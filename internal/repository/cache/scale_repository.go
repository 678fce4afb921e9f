package cache

import (
	"context"

	"soundkey-be/internal/entity"
	"soundkey-be/internal/repository/contract"
	"soundkey-be/internal/repository/specification"
)

type ScaleRepository struct {
	next  contract.ScaleRepository
	cache QueryCache
}

func NewScaleRepository(next contract.ScaleRepository, c QueryCache) contract.ScaleRepository {
	return &ScaleRepository{next: next, cache: c}
}

func (r *ScaleRepository) Create(ctx context.Context, scale *entity.ScaleRecord) error {
	return r.next.Create(ctx, scale)
}

func (r *ScaleRepository) CreateGroup(ctx context.Context, group *entity.ScaleGroup) error {
	return r.next.CreateGroup(ctx, group)
}

func (r *ScaleRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ScaleRecord, error) {
	key := specKey("scale:one", specs)
	if hit, ok := lookup[*entity.ScaleRecord](ctx, r.cache, key); ok {
		return hit, nil
	}
	res, err := r.next.FindOne(ctx, specs...)
	if err != nil {
		return nil, err
	}
	store(ctx, r.cache, key, res)
	return res, nil
}

func (r *ScaleRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ScaleRecord, error) {
	key := specKey("scale:all", specs)
	if hit, ok := lookup[[]*entity.ScaleRecord](ctx, r.cache, key); ok {
		return hit, nil
	}
	res, err := r.next.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	store(ctx, r.cache, key, res)
	return res, nil
}

func (r *ScaleRepository) FindGroups(ctx context.Context, specs ...specification.Specification) ([]*entity.ScaleGroup, error) {
	key := specKey("scale:groups", specs)
	if hit, ok := lookup[[]*entity.ScaleGroup](ctx, r.cache, key); ok {
		return hit, nil
	}
	res, err := r.next.FindGroups(ctx, specs...)
	if err != nil {
		return nil, err
	}
	store(ctx, r.cache, key, res)
	return res, nil
}

func (r *ScaleRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return r.next.Count(ctx, specs...)
}
