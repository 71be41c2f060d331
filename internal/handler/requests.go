package handler

import (
	"fmt"
	"strconv"
	"strings"
	"vacation-calendar-bot/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// createRequest handles /request start end [note]. The dates are sorted
// before the request is stored; an overlap only produces a warning.
func (h *Handler) createRequest(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	user := h.registeredUser(chatID)
	if user == nil {
		return
	}

	parts := strings.Fields(args)
	if len(parts) < 2 {
		h.reply(chatID, `🏖️ Vacation request

Format:
/request start end [note]

Examples:
/request 01.07.2026 14.07.2026
/request 15.08 15.08 dentist`)
		return
	}

	now := h.now()
	startDate, err := parseDate(parts[0], now)
	if err != nil {
		h.reply(chatID, "❌ Start date: "+err.Error())
		return
	}
	endDate, err := parseDate(parts[1], now)
	if err != nil {
		h.reply(chatID, "❌ End date: "+err.Error())
		return
	}
	if endDate.Before(startDate) {
		startDate, endDate = endDate, startDate
	}
	note := strings.Join(parts[2:], " ")

	overlap, err := h.vacationService.HasOverlap(user.Employee, startDate, endDate, true)
	if err != nil {
		logrus.WithError(err).Error("Failed to check overlap")
		h.reply(chatID, "❌ Failed to check your existing requests: "+err.Error())
		return
	}
	if overlap {
		h.reply(chatID, "⚠️ You already have approved or pending requests overlapping these dates.")
	}

	request, err := h.vacationService.CreateRequest(user.Employee, startDate, endDate, note)
	if err != nil {
		logrus.WithError(err).Error("Failed to create vacation request")
		h.reply(chatID, "❌ Failed to create request: "+err.Error())
		return
	}

	h.reply(chatID, "✅ Request submitted and marked as pending.\n\n"+formatRequest(request))
	h.notifyManagers(request)
}

// notifyManagers sends the new request with decision buttons to every manager.
func (h *Handler) notifyManagers(request *models.VacationRequest) {
	managers, err := h.userService.GetManagers()
	if err != nil {
		logrus.WithError(err).Warn("Failed to load managers")
		return
	}

	for _, m := range managers {
		h.sendDecisionPrompt(m.ChatID, request, "🆕 New vacation request\n\n")
	}
}

func (h *Handler) sendDecisionPrompt(chatID int64, request *models.VacationRequest, prefix string) {
	id := strconv.FormatUint(uint64(request.ID), 10)
	msg := tgbotapi.NewMessage(chatID, prefix+formatRequest(request))
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Approve", "approve_"+id),
			tgbotapi.NewInlineKeyboardButtonData("❌ Reject", "reject_"+id),
		),
	)
	h.send(msg)
}

func (h *Handler) showMyRequests(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	user := h.registeredUser(chatID)
	if user == nil {
		return
	}

	requests, err := h.vacationService.EmployeeRequests(user.Employee)
	if err != nil {
		h.reply(chatID, "❌ Failed to load requests: "+err.Error())
		return
	}

	if len(requests) == 0 {
		h.reply(chatID, "📭 You have not created any requests yet.")
		return
	}

	lines := []string{"📋 Your requests:", ""}
	var rows [][]tgbotapi.InlineKeyboardButton
	for i := range requests {
		r := &requests[i]
		lines = append(lines, formatRequest(r))
		if r.IsPending() {
			id := strconv.FormatUint(uint64(r.ID), 10)
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("🗑 Cancel #%d", r.ID), "cancel_"+id),
			))
		}
	}

	msg := tgbotapi.NewMessage(chatID, strings.Join(lines, "\n"))
	if len(rows) > 0 {
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	}
	h.send(msg)
}

func (h *Handler) cancelRequest(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	id, err := parseID(args)
	if err != nil {
		h.reply(chatID, "❌ Use: /cancel ID")
		return
	}

	h.cancelOwnRequest(chatID, id)
}

func (h *Handler) cancelOwnRequest(chatID int64, id uint) {
	user := h.registeredUser(chatID)
	if user == nil {
		return
	}

	deleted, err := h.vacationService.DeleteOwnRequest(id, user.Employee)
	if err != nil {
		h.reply(chatID, "❌ Failed to cancel request: "+err.Error())
		return
	}
	if !deleted {
		h.reply(chatID, fmt.Sprintf("ℹ️ Nothing cancelled: request #%d is not your pending request.", id))
		return
	}

	h.reply(chatID, fmt.Sprintf("🗑 Request #%d cancelled.", id))
}
