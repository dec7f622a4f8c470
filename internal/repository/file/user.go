package file

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/moby/sys/atomicwriter"
)

// UserRepo implements repository.UserRepository on top of a JSON file
// holding an array of user IDs
type UserRepo struct {
	path string
	mu   sync.Mutex
}

// NewUserRepo creates a new file-backed user repository
func NewUserRepo(path string) (*UserRepo, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create users directory: %w", err)
		}
	}
	return &UserRepo{path: path}, nil
}

// Load reads the registry. A missing or empty file is an empty registry.
func (r *UserRepo) Load() (map[int64]struct{}, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// Save overwrites the registry file with the given set
func (r *UserRepo) Save(users map[int64]struct{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(users)
}

// EnsureUserExists adds the user to the file if not present
func (r *UserRepo) EnsureUserExists(userID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return false, err
	}
	if _, ok := users[userID]; ok {
		return false, nil
	}

	users[userID] = struct{}{}
	if err := r.save(users); err != nil {
		return false, err
	}
	return true, nil
}

// CountUsers returns the number of registered users
func (r *UserRepo) CountUsers() (int, error) {
	users, err := r.Load()
	if err != nil {
		return 0, err
	}
	return len(users), nil
}

// ListUsers returns registered user IDs in ascending order
func (r *UserRepo) ListUsers() ([]int64, error) {
	users, err := r.Load()
	if err != nil {
		return nil, err
	}
	return sortedIDs(users), nil
}

func (r *UserRepo) load() (map[int64]struct{}, error) {
	users := make(map[int64]struct{})

	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return users, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read users file: %w", err)
	}
	if len(data) == 0 {
		return users, nil
	}

	var ids []int64
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to parse users file %s: %w", r.path, err)
	}
	for _, id := range ids {
		users[id] = struct{}{}
	}
	return users, nil
}

func (r *UserRepo) save(users map[int64]struct{}) error {
	data, err := json.Marshal(sortedIDs(users))
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	// Temp file plus rename, a crash mid-write leaves the old file intact
	if err := atomicwriter.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write users file: %w", err)
	}
	return nil
}

func sortedIDs(users map[int64]struct{}) []int64 {
	ids := make([]int64, 0, len(users))
	for id := range users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
