package handler

import (
	"bytes"
	"io"
	"vacation-calendar-bot/internal/export"
	"vacation-calendar-bot/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// monthMatrix parses [YYYY MM] and builds the grid, replying on failure.
func (h *Handler) monthMatrix(chatID int64, args string) *models.CalendarMatrix {
	year, month, err := parseYearMonth(args, h.now())
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return nil
	}

	matrix, err := h.calendarService.GetCalendarMatrix(year, month)
	if err != nil {
		logrus.WithError(err).Error("Failed to build calendar matrix")
		h.reply(chatID, "❌ Failed to build calendar: "+err.Error())
		return nil
	}
	return matrix
}

func (h *Handler) showCalendar(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	matrix := h.monthMatrix(chatID, args)
	if matrix == nil {
		return
	}

	h.replyCode(chatID, export.RenderText(matrix))
}

func (h *Handler) exportCSV(message *tgbotapi.Message, args string) {
	h.sendExport(message.Chat.ID, args, export.CSVFileName, export.WriteCSV)
}

func (h *Handler) exportXLSX(message *tgbotapi.Message, args string) {
	h.sendExport(message.Chat.ID, args, export.XLSXFileName, export.WriteXLSX)
}

func (h *Handler) sendExport(
	chatID int64,
	args string,
	fileName func(year, month int) string,
	write func(w io.Writer, matrix *models.CalendarMatrix) error,
) {
	matrix := h.monthMatrix(chatID, args)
	if matrix == nil {
		return
	}

	var buf bytes.Buffer
	if err := write(&buf, matrix); err != nil {
		logrus.WithError(err).Error("Failed to export calendar")
		h.reply(chatID, "❌ Export failed: "+err.Error())
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  fileName(matrix.Year, matrix.Month),
		Bytes: buf.Bytes(),
	})
	doc.Caption = export.Legend
	h.send(doc)
}
