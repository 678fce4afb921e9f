package implementation

import (
	"context"
	"time"

	"soundkey-be/internal/entity"
	"soundkey-be/internal/mapper"
	"soundkey-be/internal/model"
	"soundkey-be/internal/repository/contract"
	"soundkey-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const scaleColumns = "h.name AS name, h.name AS label, h.root_note AS root_note, " +
	"h.group_id AS group_id, g.name AS group_name, " + noteAggregate

type ScaleRepositoryImpl struct {
	db      *gorm.DB
	mapper  *mapper.ScaleMapper
	timeout time.Duration
}

func NewScaleRepository(db *gorm.DB, timeout time.Duration) contract.ScaleRepository {
	return &ScaleRepositoryImpl{
		db:      db,
		mapper:  mapper.NewScaleMapper(),
		timeout: timeout,
	}
}

func (r *ScaleRepositoryImpl) grouped(db *gorm.DB) *gorm.DB {
	return db.Table("scales AS h").
		Select(scaleColumns).
		Joins("JOIN scale_has_note hn ON hn.scale_name = h.name AND hn.root_note = h.root_note").
		Joins("JOIN scale_groups g ON g.id = h.group_id").
		Group("h.name, h.root_note, h.group_id, g.name")
}

func (r *ScaleRepositoryImpl) Create(ctx context.Context, scale *entity.ScaleRecord) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	m := r.mapper.ToModel(scale)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Omit("Group").Create(m).Error
}

func (r *ScaleRepositoryImpl) CreateGroup(ctx context.Context, group *entity.ScaleGroup) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	m := r.mapper.GroupToModel(group)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(m).Error
}

func (r *ScaleRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ScaleRecord, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var aggs []*model.ScaleAggregate
	query := applySpecifications(r.grouped(r.db.WithContext(ctx)), specs...)
	if err := query.Limit(1).Scan(&aggs).Error; err != nil {
		return nil, err
	}
	if len(aggs) == 0 {
		return nil, nil
	}
	return r.mapper.ToEntity(aggs[0]), nil
}

func (r *ScaleRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ScaleRecord, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var aggs []*model.ScaleAggregate
	query := applySpecifications(r.grouped(r.db.WithContext(ctx)), specs...)
	if err := query.Scan(&aggs).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(aggs), nil
}

func (r *ScaleRepositoryImpl) FindGroups(ctx context.Context, specs ...specification.Specification) ([]*entity.ScaleGroup, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var groups []*model.ScaleGroup
	sub := applySpecifications(r.grouped(r.db.WithContext(ctx)), withoutOrdering(specs)...)
	err := r.db.WithContext(ctx).
		Table("(?) AS s", sub).
		Select("DISTINCT s.group_id AS id, s.group_name AS name").
		Order("id ASC").
		Scan(&groups).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.GroupToEntities(groups), nil
}

func (r *ScaleRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var count int64
	sub := applySpecifications(r.grouped(r.db.WithContext(ctx)), withoutOrdering(specs)...)
	if err := r.db.WithContext(ctx).Table("(?) AS c", sub).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
