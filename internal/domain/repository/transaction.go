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

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// NewUserRepository returns a UserRepository instance bound to the current transaction.
	NewUserRepository() UserRepository

	// NewRoomRepository returns a RoomRepository instance bound to the current transaction.
	NewRoomRepository() RoomRepository

	// NewStrainRepository returns a StrainRepository instance bound to the current transaction.
	NewStrainRepository() StrainRepository

	// NewNutrientRepository returns a NutrientRepository instance bound to the current transaction.
	NewNutrientRepository() NutrientRepository

	// NewPlantRepository returns a PlantRepository instance bound to the current transaction.
	NewPlantRepository() PlantRepository

	// NewEventRepository returns an EventRepository instance bound to the current transaction.
	NewEventRepository() EventRepository

	// NewFavoriteRepository returns a FavoriteRepository instance bound to the current transaction.
	NewFavoriteRepository() FavoriteRepository
}
