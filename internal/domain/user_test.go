package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_DisplayUsername(t *testing.T) {
	tests := []struct {
		name     string
		user     User
		expected string
	}{
		{
			name:     "username set",
			user:     User{ID: 42, Username: "alice"},
			expected: "alice",
		},
		{
			name:     "username empty",
			user:     User{ID: 42},
			expected: "(no username)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.user.DisplayUsername())
		})
	}
}
