package batch

import (
	"context"

	"github.com/cosmo/backend/internal/domain/batch"
)

// TransactionScope provides transactional access to batch repositories.
// When a function is executed within a transaction scope, all repository
// operations are part of the same database transaction and commit or roll
// back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the batch context repositories
// within a transaction. All repositories returned share the same underlying
// database transaction.
type TransactionalRepositories interface {
	// BatchRepo returns the batch repository scoped to the current transaction
	BatchRepo() batch.Repository
	// SelectionRepo returns the supplier selection repository scoped to the
	// current transaction
	SelectionRepo() batch.SelectionRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for testing or when transaction support is not
// required.
type NoOpTransactionScope struct {
	batchRepo     batch.Repository
	selectionRepo batch.SelectionRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(batchRepo batch.Repository, selectionRepo batch.SelectionRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		batchRepo:     batchRepo,
		selectionRepo: selectionRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// BatchRepo returns the batch repository.
func (s *NoOpTransactionScope) BatchRepo() batch.Repository {
	return s.batchRepo
}

// SelectionRepo returns the supplier selection repository.
func (s *NoOpTransactionScope) SelectionRepo() batch.SelectionRepository {
	return s.selectionRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
