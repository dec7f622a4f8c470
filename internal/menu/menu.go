// Package menu builds the screens shown by the bot. Every function here is
// pure: the same inputs always produce the same text and keyboard.
package menu

import (
	"errors"
	"fmt"

	"sessionbot/internal/domain"
)

// Callback identifiers attached to inline buttons
const (
	ButtonAccept  = "accept"
	ButtonMakeURL = "make_url"
	ButtonCoffee  = "coffee"
	ButtonAccount = "account"
	ButtonBack    = "back"
)

// ErrUnknownButton is returned for callback identifiers with no transition
var ErrUnknownButton = errors.New("unknown button")

// Button is a single inline button
type Button struct {
	Text   string
	Unique string
}

// Screen is the text and keyboard of one bot message
type Screen struct {
	ID       domain.Screen
	Text     string
	Markdown bool
	Rows     [][]Button
}

// State is everything a transition may depend on
type State struct {
	User          domain.User
	Accepted      bool
	Link          string
	SupportHandle string
}

var (
	btnAccept  = Button{Text: "I Accept ✅", Unique: ButtonAccept}
	btnMakeURL = Button{Text: "Make URL 🔗", Unique: ButtonMakeURL}
	btnCoffee  = Button{Text: "Buy Me a Coffee ☕", Unique: ButtonCoffee}
	btnAccount = Button{Text: "Account Info 👤", Unique: ButtonAccount}
	btnBack    = Button{Text: "Back to Main Menu 🔙", Unique: ButtonBack}
)

// Welcome returns the disclaimer shown on /start
func Welcome() Screen {
	return Screen{
		ID: domain.ScreenWelcome,
		Text: "👋 Hello!\n\n" +
			"Welcome to *Session Link Bot* 🔗\n\n" +
			"This bot issues you a personal session link.\n\n" +
			"⚠️ *Disclaimer:*\n" +
			"By clicking 'I Accept ✅', you agree to our terms:\n" +
			"➡️ Any activity you perform using this bot is *your responsibility*.\n" +
			"➡️ The creator of this bot is *not liable* for any misuse.",
		Markdown: true,
		Rows:     [][]Button{{btnAccept}},
	}
}

// Respond computes the screen that follows a button press
func Respond(button string, st State) (Screen, error) {
	switch button {
	case ButtonAccept:
		return mainMenu("✅ Terms accepted!\nChoose an option:"), nil
	case ButtonMakeURL:
		if !st.Accepted {
			return Screen{
				ID:   domain.ScreenNotAccepted,
				Text: "❌ Please accept the terms first by using /start.",
			}, nil
		}
		return Screen{
			ID: domain.ScreenURLIssued,
			Text: fmt.Sprintf("🔗 Your session URL:\n%s\n\n", st.Link) +
				"ℹ️ This link remains active while the server is online.",
			Rows: backRow(),
		}, nil
	case ButtonCoffee:
		return coffee(st.SupportHandle), nil
	case ButtonAccount:
		return Screen{
			ID: domain.ScreenAccountInfo,
			Text: fmt.Sprintf("👤 Account Info:\n\nUser ID: %d\nUsername: %s",
				st.User.ID, st.User.DisplayUsername()),
			Rows: backRow(),
		}, nil
	case ButtonBack:
		return mainMenu("🔙 Main Menu:\nChoose an option:"), nil
	}
	return Screen{}, fmt.Errorf("%w: %q", ErrUnknownButton, button)
}

func mainMenu(text string) Screen {
	return Screen{
		ID:   domain.ScreenMainMenu,
		Text: text,
		Rows: [][]Button{
			{btnMakeURL},
			{btnCoffee},
			{btnAccount},
		},
	}
}

func coffee(handle string) Screen {
	text := "☕ Support Us!\n\n" +
		"If you enjoy using this bot, consider buying us a coffee ❤️\n\n"
	if handle != "" {
		text += fmt.Sprintf("📲 Support ID: `%s`\n", handle)
	}
	text += "Thanks for supporting open tools!"

	return Screen{
		ID:       domain.ScreenCoffee,
		Text:     text,
		Markdown: true,
		Rows:     backRow(),
	}
}

func backRow() [][]Button {
	return [][]Button{{btnBack}}
}
