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

// RepositoryFactory provides repository instances bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// ShopRepo returns a ShopRepository bound to the current transaction.
	ShopRepo() ShopRepository

	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// GalleryRepo returns a GalleryRepository bound to the current transaction.
	GalleryRepo() GalleryRepository

	// TagRepo returns a TagRepository bound to the current transaction.
	TagRepo() TagRepository

	// InvitationRepo returns an InvitationRepository bound to the current transaction.
	InvitationRepo() InvitationRepository

	// OrderRepo returns an OrderRepository bound to the current transaction.
	OrderRepo() OrderRepository
}
