package postgres

import (
	"github.com/jmoiron/sqlx"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

// EnsureUserExists creates user if not exists
func (r *UserRepo) EnsureUserExists(userID int64) (bool, error) {
	query := `
		INSERT INTO users (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`
	res, err := r.db.Exec(query, userID)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// CountUsers returns the number of registered users
func (r *UserRepo) CountUsers() (int, error) {
	var count int
	if err := r.db.Get(&count, `SELECT COUNT(*) FROM users`); err != nil {
		return 0, err
	}
	return count, nil
}

// ListUsers returns registered user IDs in ascending order
func (r *UserRepo) ListUsers() ([]int64, error) {
	ids := []int64{}
	if err := r.db.Select(&ids, `SELECT user_id FROM users ORDER BY user_id`); err != nil {
		return nil, err
	}
	return ids, nil
}
