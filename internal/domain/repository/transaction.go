package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction,
// so that all operations within a transaction share one database connection.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// WorldRepo returns a WorldRepository bound to the current transaction.
	WorldRepo() WorldRepository

	// LocationRepo returns a LocationRepository bound to the current transaction.
	LocationRepo() LocationRepository

	// FileRepo returns a FileRepository bound to the current transaction.
	FileRepo() FileRepository
}
