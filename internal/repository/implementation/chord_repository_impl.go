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

const chordColumns = "h.symbol AS symbol, h.symbol AS label, h.name AS name, h.root_note AS root_note, " +
	"h.category AS category, h.triad_base AS triad_base, " + noteAggregate

type ChordRepositoryImpl struct {
	db      *gorm.DB
	mapper  *mapper.ChordMapper
	timeout time.Duration
}

func NewChordRepository(db *gorm.DB, timeout time.Duration) contract.ChordRepository {
	return &ChordRepositoryImpl{
		db:      db,
		mapper:  mapper.NewChordMapper(),
		timeout: timeout,
	}
}

func (r *ChordRepositoryImpl) grouped(db *gorm.DB) *gorm.DB {
	return db.Table("chords AS h").
		Select(chordColumns).
		Joins("JOIN chord_has_note hn ON hn.chord_symbol = h.symbol AND hn.root_note = h.root_note").
		Group("h.symbol, h.name, h.root_note, h.category, h.triad_base")
}

func (r *ChordRepositoryImpl) Create(ctx context.Context, chord *entity.ChordRecord) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	m := r.mapper.ToModel(chord)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(m).Error
}

func (r *ChordRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChordRecord, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var aggs []*model.ChordAggregate
	query := applySpecifications(r.grouped(r.db.WithContext(ctx)), specs...)
	if err := query.Limit(1).Scan(&aggs).Error; err != nil {
		return nil, err
	}
	if len(aggs) == 0 {
		return nil, nil
	}
	return r.mapper.ToEntity(aggs[0]), nil
}

func (r *ChordRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChordRecord, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var aggs []*model.ChordAggregate
	query := applySpecifications(r.grouped(r.db.WithContext(ctx)), specs...)
	if err := query.Scan(&aggs).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(aggs), nil
}

func (r *ChordRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var count int64
	sub := applySpecifications(r.grouped(r.db.WithContext(ctx)), withoutOrdering(specs)...)
	if err := r.db.WithContext(ctx).Table("(?) AS c", sub).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
