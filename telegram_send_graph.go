package main

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"go.uber.org/zap"

	"github.com/pivolan/survey_dashboard/dashboard"
	"github.com/pivolan/survey_dashboard/report"
)

// Larger images are sent as documents so Telegram does not recompress them.
const maxSizePhoto = 150000

// sendGraphVisualization sends a chart image to chatID with its caption.
func sendGraphVisualization(api messageSender, log *zap.Logger, chatID int64, graph []byte, fileName, caption string) {
	pngFile := tgbotapi.FileBytes{
		Name:  fileName,
		Bytes: graph,
	}

	var msg tgbotapi.Chattable
	if len(graph) < maxSizePhoto {
		photo := tgbotapi.NewPhotoUpload(chatID, pngFile)
		photo.Caption = caption
		msg = photo
	} else {
		doc := tgbotapi.NewDocumentUpload(chatID, pngFile)
		doc.Caption = caption
		msg = doc
	}

	if _, err := api.Send(msg); err != nil {
		log.Warn("chart send failed", zap.String("file", fileName), zap.Error(err))
		api.Send(tgbotapi.NewMessage(chatID, fmt.Sprintf("No se pudo enviar el gráfico %s: %v", fileName, err)))
	}
}

// chartCaption is the chart title followed by the top answers.
func chartCaption(c dashboard.Chart) string {
	if c.Distribution.IsEmpty() {
		return c.Title + "\n" + report.NoData
	}
	lines := []string{c.Title}
	total := c.Distribution.Total()
	for _, e := range c.Distribution.Entries {
		lines = append(lines, fmt.Sprintf("%s: %d (%1.1f%%)", e.Value, e.Count, float64(e.Count)/float64(total)*100))
	}
	caption := strings.Join(lines, "\n")
	// Telegram captions are limited to 1024 characters.
	if r := []rune(caption); len(r) > 1024 {
		caption = string(r[:1021]) + "..."
	}
	return caption
}
