package postgres

import (
	"database/sql/driver"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockRepo(t *testing.T) (*UserRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewUserRepo(sqlx.NewDb(db, "sqlmock")), mock
}

func TestUserRepo_EnsureUserExists(t *testing.T) {
	tests := []struct {
		name            string
		userID          int64
		mockResult      driver.Result
		mockError       error
		expectedCreated bool
		expectedError   bool
	}{
		{
			name:            "new user",
			userID:          42,
			mockResult:      sqlmock.NewResult(0, 1),
			expectedCreated: true,
		},
		{
			name:            "existing user",
			userID:          42,
			mockResult:      sqlmock.NewResult(0, 0),
			expectedCreated: false,
		},
		{
			name:          "database error",
			userID:        42,
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)

			exp := mock.ExpectExec("INSERT INTO users").WithArgs(tt.userID)
			if tt.mockError != nil {
				exp.WillReturnError(tt.mockError)
			} else {
				exp.WillReturnResult(tt.mockResult)
			}

			created, err := repo.EnsureUserExists(tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedCreated, created)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepo_CountUsers(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountUsers()

	assert.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_CountUsers_Error(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT COUNT").WillReturnError(fmt.Errorf("db error"))

	count, err := repo.CountUsers()

	assert.Error(t, err)
	assert.Equal(t, 0, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_ListUsers(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT user_id FROM users ORDER BY user_id").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(7)).AddRow(int64(42)))

	ids, err := repo.ListUsers()

	assert.NoError(t, err)
	assert.Equal(t, []int64{7, 42}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_ListUsers_Empty(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT user_id FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	ids, err := repo.ListUsers()

	assert.NoError(t, err)
	assert.Empty(t, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
