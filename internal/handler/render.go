package handler

import (
	"sessionbot/internal/menu"

	tele "gopkg.in/telebot.v3"
)

// screenMarkup converts a screen keyboard into an inline markup,
// nil when the screen has no buttons
func screenMarkup(s menu.Screen) *tele.ReplyMarkup {
	if len(s.Rows) == 0 {
		return nil
	}

	markup := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(s.Rows))
	for _, row := range s.Rows {
		btns := make([]tele.Btn, 0, len(row))
		for _, b := range row {
			btns = append(btns, markup.Data(b.Text, b.Unique))
		}
		rows = append(rows, markup.Row(btns...))
	}
	markup.Inline(rows...)
	return markup
}

// screenOptions returns the send options for a screen
func screenOptions(s menu.Screen) []interface{} {
	var opts []interface{}
	if markup := screenMarkup(s); markup != nil {
		opts = append(opts, markup)
	}
	if s.Markdown {
		opts = append(opts, tele.ModeMarkdown)
	}
	return opts
}
