package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"sessionbot/internal/domain"
	"sessionbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	user := senderUser(c)

	h.logger.Info("User started bot",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
	)

	screen, err := h.menuService.Start(user)
	if err != nil {
		h.logger.Error("Failed to register user", zap.Error(err), zap.Int64("user_id", user.ID))
		return c.Send(msgInternalError)
	}

	return c.Send(screen.Text, screenOptions(screen)...)
}

// handleUsers handles the admin-only /users command
func (h *Handler) handleUsers(c tele.Context) error {
	count, err := h.statsService.UsersCount(c.Sender().ID)
	if errors.Is(err, service.ErrAccessDenied) {
		return c.Send("❌ Access denied.")
	}
	if err != nil {
		return c.Send(msgInternalError)
	}

	return c.Send(fmt.Sprintf("📊 Total users: %d", count))
}

// maxMessageLen stays under Telegram's 4096 character limit
const maxMessageLen = 4000

// handleUserIDs handles the admin-only /userids command
func (h *Handler) handleUserIDs(c tele.Context) error {
	ids, err := h.statsService.UserIDs(c.Sender().ID)
	if errors.Is(err, service.ErrAccessDenied) {
		return c.Send("❌ Access denied.")
	}
	if err != nil {
		return c.Send(msgInternalError)
	}
	if len(ids) == 0 {
		return c.Send("📭 No registered users.")
	}

	for _, chunk := range chunkIDs(ids, maxMessageLen) {
		if err := c.Send(chunk); err != nil {
			return err
		}
	}
	return nil
}

// chunkIDs renders one id per line, splitting into messages of at most limit bytes
func chunkIDs(ids []int64, limit int) []string {
	var chunks []string
	var b strings.Builder
	for _, id := range ids {
		line := strconv.FormatInt(id, 10)
		if b.Len() > 0 && b.Len()+1+len(line) > limit {
			chunks = append(chunks, b.String())
			b.Reset()
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
	if b.Len() > 0 {
		chunks = append(chunks, b.String())
	}
	return chunks
}

func senderUser(c tele.Context) domain.User {
	sender := c.Sender()
	return domain.User{
		ID:       sender.ID,
		Username: sender.Username,
	}
}
