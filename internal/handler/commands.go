package handler

import (
	"vacation-calendar-bot/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handler) handleCommand(message *tgbotapi.Message) {
	command := message.Command()
	args := message.CommandArguments()

	switch command {
	case "start", "help":
		h.sendHelpMessage(message)
	case "register":
		h.register(message, args)
	case "whoami", "myprofile":
		h.showProfile(message)

	// requests (employees)
	case "request", "vacation":
		h.createRequest(message, args)
	case "myrequests":
		h.showMyRequests(message)
	case "cancel":
		h.cancelRequest(message, args)

	// decisions (managers)
	case "pending":
		h.showPending(message)
	case "approve":
		h.decideCommand(message, args, models.StatusApproved)
	case "reject":
		h.decideCommand(message, args, models.StatusRejected)
	case "reopen":
		h.decideCommand(message, args, models.StatusPending)
	case "delete":
		h.deleteRequest(message, args)
	case "requests":
		h.listRequests(message, args)

	// roster (managers)
	case "employees":
		h.showEmployees(message)
	case "addemployee":
		h.addEmployee(message, args)
	case "activate":
		h.setEmployeeActive(message, args, true)
	case "deactivate":
		h.setEmployeeActive(message, args, false)

	// calendar (everyone)
	case "calendar":
		h.showCalendar(message, args)
	case "export":
		h.exportCSV(message, args)
	case "exportxlsx":
		h.exportXLSX(message, args)

	default:
		h.sendUnknownCommand(message)
	}
}

func (h *Handler) sendUnknownCommand(message *tgbotapi.Message) {
	h.reply(message.Chat.ID, "❌ Unknown command. Use /help for the list of commands.")
}

func (h *Handler) sendHelpMessage(message *tgbotapi.Message) {
	text := `📆 Vacation calendar

👤 Profile:
/register NAME - link this chat to an employee
/whoami - show your profile

🏖️ Requests:
/request DD.MM.YYYY DD.MM.YYYY [note] - ask for vacation
/myrequests - your requests
/cancel ID - cancel your pending request

📅 Calendar:
/calendar [YYYY MM] - month grid
/export [YYYY MM] - month grid as CSV
/exportxlsx [YYYY MM] - month grid as XLSX`

	isManager, err := h.userService.IsManager(message.Chat.ID)
	if err == nil && isManager {
		text += `

👑 Manager:
/pending - requests waiting for a decision
/approve ID, /reject ID, /reopen ID
/delete ID - delete any request
/requests [YYYY MM] [pending|approved|rejected]
/employees - roster
/addemployee NAME
/activate NAME, /deactivate NAME`
	}

	h.reply(message.Chat.ID, text)
}
