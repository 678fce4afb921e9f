package contract

import (
	"context"

	"soundkey-be/internal/entity"
	"soundkey-be/internal/repository/specification"
)

type ScaleRepository interface {
	Create(ctx context.Context, scale *entity.ScaleRecord) error
	CreateGroup(ctx context.Context, group *entity.ScaleGroup) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ScaleRecord, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ScaleRecord, error)
	// FindGroups returns the distinct groups of the scales matched by specs,
	// ordered by group id.
	FindGroups(ctx context.Context, specs ...specification.Specification) ([]*entity.ScaleGroup, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
