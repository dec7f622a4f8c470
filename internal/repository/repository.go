package repository

// UserRepository defines user registry operations
type UserRepository interface {
	// EnsureUserExists registers the user if absent and reports whether a
	// new entry was created
	EnsureUserExists(userID int64) (bool, error)
	CountUsers() (int, error)
	ListUsers() ([]int64, error)
}
