package service

import (
	"sessionbot/internal/domain"
	"sessionbot/internal/menu"
)

// MenuService turns commands and button presses into screens
type MenuService struct {
	consent       *ConsentService
	links         *LinkService
	supportHandle string
}

// NewMenuService creates a new menu service
func NewMenuService(consent *ConsentService, links *LinkService, supportHandle string) *MenuService {
	return &MenuService{
		consent:       consent,
		links:         links,
		supportHandle: supportHandle,
	}
}

// Start registers the user and returns the welcome screen
func (s *MenuService) Start(user domain.User) (menu.Screen, error) {
	if err := s.consent.RegisterIfAbsent(user.ID); err != nil {
		return menu.Screen{}, err
	}
	return menu.Welcome(), nil
}

// Press applies the side effect of a button and returns the next screen
func (s *MenuService) Press(user domain.User, button string) (menu.Screen, error) {
	if button == menu.ButtonAccept {
		if err := s.consent.Accept(user.ID); err != nil {
			return menu.Screen{}, err
		}
	}

	return menu.Respond(button, menu.State{
		User:          user,
		Accepted:      s.consent.HasAccepted(user.ID),
		Link:          s.links.MakeURL(user.ID),
		SupportHandle: s.supportHandle,
	})
}
