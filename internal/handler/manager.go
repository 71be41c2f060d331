package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"vacation-calendar-bot/internal/models"
	"vacation-calendar-bot/internal/repository"
	"vacation-calendar-bot/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

func (h *Handler) showPending(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if h.manager(chatID) == nil {
		return
	}

	pending, err := h.vacationService.ListRequests(repository.RequestFilter{Status: models.StatusPending})
	if err != nil {
		h.reply(chatID, "❌ Failed to load requests: "+err.Error())
		return
	}

	if len(pending) == 0 {
		h.reply(chatID, "📭 No pending requests.")
		return
	}

	for i := range pending {
		h.sendDecisionPrompt(chatID, &pending[i], "")
	}
}

func (h *Handler) decideCommand(message *tgbotapi.Message, args string, status models.VacationStatus) {
	chatID := message.Chat.ID

	id, err := parseID(args)
	if err != nil {
		h.reply(chatID, "❌ Use: /"+message.Command()+" ID")
		return
	}

	h.decide(chatID, id, status)
}

// decide applies a manager's decision and tells the request owner.
func (h *Handler) decide(chatID int64, id uint, status models.VacationStatus) {
	manager := h.manager(chatID)
	if manager == nil {
		return
	}

	err := h.vacationService.UpdateStatus(id, status, manager.DisplayName())
	if errors.Is(err, service.ErrRequestNotFound) {
		h.reply(chatID, fmt.Sprintf("❌ Request #%d not found.", id))
		return
	}
	if err != nil {
		logrus.WithError(err).WithField("id", id).Error("Failed to update request status")
		h.reply(chatID, "❌ Failed to update request: "+err.Error())
		return
	}

	request, err := h.vacationService.GetRequest(id)
	if err != nil {
		h.reply(chatID, fmt.Sprintf("✅ Request #%d is now %s.", id, status))
		return
	}

	h.reply(chatID, "✅ Updated:\n"+formatRequest(request))
	h.notifyOwner(request, chatID)
}

// notifyOwner tells every chat bound to the request's employee about the
// new status, except the chat that made the change.
func (h *Handler) notifyOwner(request *models.VacationRequest, skipChatID int64) {
	if !request.Status.IsDecision() {
		return
	}

	users, err := h.userService.ChatsForEmployee(request.Employee)
	if err != nil {
		logrus.WithError(err).Warn("Failed to load request owner")
		return
	}

	for _, u := range users {
		if u.ChatID == skipChatID {
			continue
		}
		h.reply(u.ChatID, fmt.Sprintf("%s Your request was %s:\n%s", statusEmoji[request.Status], request.Status, formatRequest(request)))
	}
}

func (h *Handler) deleteRequest(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if h.manager(chatID) == nil {
		return
	}

	id, err := parseID(args)
	if err != nil {
		h.reply(chatID, "❌ Use: /delete ID")
		return
	}

	deleted, err := h.vacationService.DeleteRequest(id)
	if err != nil {
		h.reply(chatID, "❌ Failed to delete request: "+err.Error())
		return
	}
	if !deleted {
		h.reply(chatID, fmt.Sprintf("ℹ️ Request #%d does not exist.", id))
		return
	}

	h.reply(chatID, fmt.Sprintf("🗑 Request #%d deleted.", id))
}

// listRequests handles /requests [YYYY MM] [status].
func (h *Handler) listRequests(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if h.manager(chatID) == nil {
		return
	}

	var filter repository.RequestFilter
	var numbers []string
	for _, part := range strings.Fields(args) {
		if status := models.VacationStatus(strings.ToLower(part)); status.IsValid() {
			filter.Status = status
			continue
		}
		numbers = append(numbers, part)
	}

	if len(numbers) > 0 {
		year, month, err := parseYearMonth(strings.Join(numbers, " "), h.now())
		if err != nil {
			h.reply(chatID, "❌ "+err.Error())
			return
		}
		filter.Year, filter.Month = year, month
	}

	requests, err := h.vacationService.ListRequests(filter)
	if err != nil {
		h.reply(chatID, "❌ Failed to load requests: "+err.Error())
		return
	}

	if len(requests) == 0 {
		h.reply(chatID, "📭 No requests found.")
		return
	}

	lines := make([]string, 0, len(requests)+2)
	lines = append(lines, fmt.Sprintf("📋 Requests: %d", len(requests)), "")
	for i := range requests {
		lines = append(lines, formatRequest(&requests[i]))
	}
	h.reply(chatID, strings.Join(lines, "\n"))
}

func (h *Handler) showEmployees(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	if h.manager(chatID) == nil {
		return
	}

	employees, err := h.employeeService.ListEmployees(false)
	if err != nil {
		h.reply(chatID, "❌ Failed to load employees: "+err.Error())
		return
	}

	if len(employees) == 0 {
		h.reply(chatID, "📭 The roster is empty. Use /addemployee NAME.")
		return
	}

	lines := []string{"👥 Employees:", ""}
	for i, e := range employees {
		mark := "✅"
		if !e.Active {
			mark = "⛔"
		}
		lines = append(lines, strconv.Itoa(i+1)+". "+mark+" "+e.Name)
	}
	h.reply(chatID, strings.Join(lines, "\n"))
}

func (h *Handler) addEmployee(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if h.manager(chatID) == nil {
		return
	}

	name, err := h.employeeService.AddEmployee(args)
	if errors.Is(err, service.ErrEmptyEmployeeName) {
		h.reply(chatID, "❌ Use: /addemployee NAME")
		return
	}
	if err != nil {
		h.reply(chatID, "❌ Failed to add employee: "+err.Error())
		return
	}

	h.reply(chatID, "✅ Employee added: "+name)
}

func (h *Handler) setEmployeeActive(message *tgbotapi.Message, args string, active bool) {
	chatID := message.Chat.ID

	if h.manager(chatID) == nil {
		return
	}

	found, err := h.employeeService.SetEmployeeActive(args, active)
	if errors.Is(err, service.ErrEmptyEmployeeName) {
		h.reply(chatID, "❌ Use: /"+message.Command()+" NAME")
		return
	}
	if err != nil {
		h.reply(chatID, "❌ Failed to update employee: "+err.Error())
		return
	}
	if !found {
		h.reply(chatID, "❌ Employee not found: "+models.NormalizeEmployeeName(args))
		return
	}

	state := "active"
	if !active {
		state = "inactive"
	}
	h.reply(chatID, fmt.Sprintf("✅ %s is now %s.", models.NormalizeEmployeeName(args), state))
}
