package service

import (
	"strconv"
	"strings"
)

// LinkService builds per-user session links
type LinkService struct {
	baseURL string
}

// NewLinkService creates a new link service
func NewLinkService(baseURL string) *LinkService {
	return &LinkService{baseURL: strings.TrimRight(baseURL, "/")}
}

// MakeURL returns the session link for a user
func (s *LinkService) MakeURL(userID int64) string {
	return s.baseURL + "/session_" + strconv.FormatInt(userID, 10)
}
