package handler

import (
	"errors"
	"vacation-calendar-bot/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

func (h *Handler) register(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	username := ""
	if message.From != nil {
		username = message.From.UserName
	}

	user, err := h.userService.Register(chatID, username, args)
	if errors.Is(err, service.ErrEmptyEmployeeName) {
		h.reply(chatID, "❌ Use: /register NAME\nExample: /register Juan Ruiz")
		return
	}
	if err != nil {
		logrus.WithError(err).WithField("chat_id", chatID).Error("Failed to register user")
		h.reply(chatID, "❌ Registration failed: "+err.Error())
		return
	}

	h.reply(chatID, "✅ This chat is now linked to "+user.Employee+".\n\n"+h.userService.FormatUserInfo(user))
}

func (h *Handler) showProfile(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	user, err := h.userService.GetUser(chatID)
	if errors.Is(err, service.ErrUserNotFound) {
		h.reply(chatID, "❌ Profile not found.\nUse /register NAME to create it.")
		return
	}
	if err != nil {
		h.reply(chatID, "❌ Failed to load profile: "+err.Error())
		return
	}

	h.reply(chatID, h.userService.FormatUserInfo(user))
}
