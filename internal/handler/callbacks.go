package handler

import (
	"errors"
	"strings"
	"unicode"

	"sessionbot/internal/menu"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	// The same button was pressed twice, the message already shows this screen
	if strings.Contains(err.Error(), "message is not modified") {
		h.logger.Debug("Message already up to date, acknowledging",
			zap.Int64("user_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleButton handles inline buttons routed by their unique identifier
func (h *Handler) handleButton(c tele.Context) error {
	return h.press(c, c.Callback().Unique)
}

// handleCallback handles callback queries that did not match a button endpoint
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	if callback.Unique != "" {
		data = callback.Unique
	}

	h.logger.Info("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("data_raw", callback.Data),
		zap.String("id", callback.ID),
		zap.Int64("user_id", c.Sender().ID),
	)

	return h.press(c, data)
}

// press applies a button and edits the message in place
func (h *Handler) press(c tele.Context, button string) error {
	user := senderUser(c)

	screen, err := h.menuService.Press(user, button)
	if errors.Is(err, menu.ErrUnknownButton) {
		h.logger.Warn("Unhandled callback",
			zap.String("data", button),
			zap.Int64("user_id", user.ID),
		)
		return c.Respond()
	}
	if err != nil {
		h.logger.Error("Failed to handle button",
			zap.Error(err),
			zap.String("button", button),
			zap.Int64("user_id", user.ID),
		)
		return c.Respond(&tele.CallbackResponse{Text: msgInternalError})
	}

	opts := screenOptions(screen)
	if err := c.Edit(screen.Text, opts...); err != nil {
		if handleErr := h.handleEditError(err, c, user.ID); handleErr == nil {
			return nil
		}
		return c.Send(screen.Text, opts...)
	}
	return c.Respond()
}
