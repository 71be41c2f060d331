package handler

import (
	"errors"
	"strings"
	"time"
	"vacation-calendar-bot/internal/models"
	"vacation-calendar-bot/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// Sender is the part of the Telegram client the handler talks to.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Handler struct {
	client          Sender
	userService     *service.UserService
	employeeService *service.EmployeeService
	vacationService *service.VacationService
	calendarService *service.CalendarService
	now             func() time.Time
}

func NewHandler(
	client Sender,
	userService *service.UserService,
	employeeService *service.EmployeeService,
	vacationService *service.VacationService,
	calendarService *service.CalendarService,
) *Handler {
	return &Handler{
		client:          client,
		userService:     userService,
		employeeService: employeeService,
		vacationService: vacationService,
		calendarService: calendarService,
		now:             time.Now,
	}
}

// HandleUpdates processes updates one at a time until the channel closes.
func (h *Handler) HandleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		h.HandleUpdate(update)
	}
}

func (h *Handler) HandleUpdate(update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.handleCallbackQuery(update.CallbackQuery)
		return
	}

	if update.Message == nil {
		return
	}

	h.handleMessage(update.Message)
}

// handleCallbackQuery dispatches inline buttons: approve_<id>, reject_<id>, cancel_<id>.
func (h *Handler) handleCallbackQuery(callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil {
		return
	}
	chatID := callback.Message.Chat.ID
	data := callback.Data

	// buttons are single use
	editMsg := tgbotapi.NewEditMessageReplyMarkup(chatID, callback.Message.MessageID, tgbotapi.NewInlineKeyboardMarkup())
	h.send(editMsg)

	action, idStr, ok := strings.Cut(data, "_")
	if ok {
		id, err := parseID(idStr)
		if err != nil {
			h.reply(chatID, "❌ "+err.Error())
		} else {
			switch action {
			case "approve":
				h.decide(chatID, id, models.StatusApproved)
			case "reject":
				h.decide(chatID, id, models.StatusRejected)
			case "cancel":
				h.cancelOwnRequest(chatID, id)
			default:
				logrus.WithField("data", data).Warn("Unknown callback")
			}
		}
	}

	if _, err := h.client.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		logrus.WithError(err).Warn("Failed to answer callback")
	}
}

func (h *Handler) handleMessage(message *tgbotapi.Message) {
	if message.Chat == nil {
		return
	}

	username := ""
	if message.From != nil {
		username = message.From.UserName
	}
	logrus.Infof("[%s] %s", username, message.Text)

	if message.IsCommand() {
		h.handleCommand(message)
		return
	}

	h.reply(message.Chat.ID, "🤖 I only understand commands. Use /help for the list.")
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.client.Send(c); err != nil {
		logrus.WithError(err).Error("Failed to send telegram message")
	}
}

func (h *Handler) reply(chatID int64, text string) {
	h.send(tgbotapi.NewMessage(chatID, text))
}

// replyCode sends text as a monospace block.
func (h *Handler) replyCode(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, "```\n"+strings.ReplaceAll(text, "`", "'")+"```")
	msg.ParseMode = tgbotapi.ModeMarkdown
	h.send(msg)
}

// registeredUser returns the user bound to the chat, or tells the chat how to
// register and returns nil.
func (h *Handler) registeredUser(chatID int64) *models.User {
	user, err := h.userService.GetUser(chatID)
	if err != nil && !errors.Is(err, service.ErrUserNotFound) {
		logrus.WithError(err).WithField("chat_id", chatID).Error("Failed to load user")
		h.reply(chatID, "❌ Failed to load your profile: "+err.Error())
		return nil
	}
	if user == nil || user.Employee == "" {
		h.reply(chatID, "❌ You are not registered.\nUse /register NAME to link this chat to an employee.")
		return nil
	}
	return user
}

// manager returns the calling user when it holds the manager role.
func (h *Handler) manager(chatID int64) *models.User {
	user, err := h.userService.GetUser(chatID)
	if err != nil && !errors.Is(err, service.ErrUserNotFound) {
		h.reply(chatID, "❌ Failed to check access rights: "+err.Error())
		return nil
	}
	if user == nil || !user.IsManager() {
		h.reply(chatID, "❌ Access denied. This command is for managers only.")
		return nil
	}
	return user
}
