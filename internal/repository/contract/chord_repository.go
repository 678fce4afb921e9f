package contract

import (
	"context"

	"soundkey-be/internal/entity"
	"soundkey-be/internal/repository/specification"
)

// ChordRepository is read by the query engine and written only by seeding.
type ChordRepository interface {
	Create(ctx context.Context, chord *entity.ChordRecord) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChordRecord, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChordRecord, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
