package unitofwork

import (
	"context"

	"soundkey-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ChordRepository() contract.ChordRepository
	ScaleRepository() contract.ScaleRepository
}
