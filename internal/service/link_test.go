package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkService_MakeURL(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		userID   int64
		expected string
	}{
		{
			name:     "base without trailing slash",
			baseURL:  "https://tracker.example.com",
			userID:   42,
			expected: "https://tracker.example.com/session_42",
		},
		{
			name:     "base with trailing slash",
			baseURL:  "https://tracker.example.com/",
			userID:   42,
			expected: "https://tracker.example.com/session_42",
		},
		{
			name:     "base with path",
			baseURL:  "https://example.com/app",
			userID:   1944644584,
			expected: "https://example.com/app/session_1944644584",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewLinkService(tt.baseURL)
			assert.Equal(t, tt.expected, service.MakeURL(tt.userID))
		})
	}
}

func TestLinkService_MakeURLStableAndDistinct(t *testing.T) {
	service := NewLinkService("https://example.com")

	assert.Equal(t, service.MakeURL(42), service.MakeURL(42))

	seen := make(map[string]int64)
	for id := int64(1); id <= 1000; id++ {
		url := service.MakeURL(id)
		prev, dup := seen[url]
		assert.False(t, dup, "ids %d and %d share url %s", prev, id, url)
		seen[url] = id
	}
}
