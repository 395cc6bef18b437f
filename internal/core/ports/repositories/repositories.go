package repositories

// RepositoryProvider aggregates all repository implementations so they can be
// passed around as a single dependency.
type RepositoryProvider struct {
	UserRepo        UserRepository
	TransactionRepo TransactionRepository
}
