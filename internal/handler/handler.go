package handler

import (
	"sessionbot/internal/menu"
	"sessionbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const msgInternalError = "⚠️ Something went wrong. Please try again later."

// Handler manages all bot interactions
type Handler struct {
	bot          *tele.Bot
	menuService  *service.MenuService
	statsService *service.StatsService
	logger       *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	menuService *service.MenuService,
	statsService *service.StatsService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:          bot,
		menuService:  menuService,
		statsService: statsService,
		logger:       logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/users", h.handleUsers)
	h.bot.Handle("/userids", h.handleUserIDs)

	// Callback queries (inline buttons)
	for _, btn := range buttons {
		h.bot.Handle(btn, h.handleButton)
	}

	// Callbacks whose data carries no unique prefix
	h.bot.Handle(tele.OnCallback, h.handleCallback)
}

// Inline keyboard endpoints
var buttons = []*tele.Btn{
	{Unique: menu.ButtonAccept},
	{Unique: menu.ButtonMakeURL},
	{Unique: menu.ButtonCoffee},
	{Unique: menu.ButtonAccount},
	{Unique: menu.ButtonBack},
}
