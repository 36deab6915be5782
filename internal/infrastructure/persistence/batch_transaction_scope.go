package persistence

import (
	"context"

	appbatch "github.com/cosmo/backend/internal/application/batch"
	"github.com/cosmo/backend/internal/domain/batch"
	"gorm.io/gorm"
)

// GormTransactionScope implements the batch TransactionScope using GORM
// transactions. It provides atomic execution of multiple repository operations.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appbatch.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormTransactionalRepositories provides access to the batch repositories
// within a transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// BatchRepo returns the batch repository scoped to the current transaction.
func (r *gormTransactionalRepositories) BatchRepo() batch.Repository {
	return NewGormBatchRepository(r.tx)
}

// SelectionRepo returns the supplier selection repository scoped to the current transaction.
func (r *gormTransactionalRepositories) SelectionRepo() batch.SelectionRepository {
	return NewGormSelectionRepository(r.tx)
}

// Ensure GormTransactionScope implements TransactionScope
var _ appbatch.TransactionScope = (*GormTransactionScope)(nil)

// Ensure gormTransactionalRepositories implements TransactionalRepositories
var _ appbatch.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
