package unitofwork

import (
	"context"
	"fmt"
	"time"

	"soundkey-be/internal/repository/contract"
	"soundkey-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db      *gorm.DB
	tx      *gorm.DB
	timeout time.Duration
}

func NewUnitOfWork(db *gorm.DB, timeout time.Duration) UnitOfWork {
	return &UnitOfWorkImpl{
		db:      db,
		timeout: timeout,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) ChordRepository() contract.ChordRepository {
	return implementation.NewChordRepository(u.getDB(), u.timeout)
}

func (u *UnitOfWorkImpl) ScaleRepository() contract.ScaleRepository {
	return implementation.NewScaleRepository(u.getDB(), u.timeout)
}
