package postgres

import (
	"context"
	"fmt"

	"atlas/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and hands out repository
// instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // a GORM transaction object is also a *gorm.DB
}

// UserRepo returns a user repository bound to the transaction.
func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

// WorldRepo returns a world repository bound to the transaction.
func (f *gormRepositoryFactory) WorldRepo() repository.WorldRepository {
	return NewWorldRepository(f.tx)
}

// LocationRepo returns a location repository bound to the transaction.
func (f *gormRepositoryFactory) LocationRepo() repository.LocationRepository {
	return NewLocationRepository(f.tx)
}

// FileRepo returns a file repository bound to the transaction.
func (f *gormRepositoryFactory) FileRepo() repository.FileRepository {
	return NewFileRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// A panic inside the callback must never leak an open transaction.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	err := fn(factory)
	if err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Return the original business error; the rollback failure is secondary.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
