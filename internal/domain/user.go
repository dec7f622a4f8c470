package domain

// User represents a bot user as seen by a single update
type User struct {
	ID       int64
	Username string
}

// DisplayUsername returns the username or a placeholder when it is not set
func (u User) DisplayUsername() string {
	if u.Username == "" {
		return "(no username)"
	}
	return u.Username
}

// Screen identifies which message the user is currently looking at
type Screen string

const (
	ScreenWelcome     Screen = "welcome"
	ScreenMainMenu    Screen = "main_menu"
	ScreenURLIssued   Screen = "url_issued"
	ScreenCoffee      Screen = "coffee"
	ScreenAccountInfo Screen = "account_info"
	ScreenNotAccepted Screen = "not_accepted"
)
