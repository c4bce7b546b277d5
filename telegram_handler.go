package main

import (
	"encoding/csv"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pivolan/survey_dashboard/dashboard"
	"github.com/pivolan/survey_dashboard/domain/models"
	"github.com/pivolan/survey_dashboard/plot"
	"github.com/pivolan/survey_dashboard/report"
	"github.com/pivolan/survey_dashboard/survey"
)

// maxMessageLen keeps a <pre> block under the Telegram 4096 character limit.
const maxMessageLen = 4000

const welcomeText = `¡Hola! 👋

Genero el dashboard de la encuesta de satisfacción por comisión.

Comandos:
/grupos - lista las comisiones con su cantidad de respuestas
/filtro A, B - gráficos y palabras clave de las comisiones A y B
/filtro "Excel, nivel 1", B - entre comillas si el nombre lleva coma
/filtro - lo mismo para todas las comisiones
`

type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// botHandler answers chat commands. The response set and the pipeline are
// read-only, so updates are handled concurrently.
type botHandler struct {
	api      messageSender
	pipeline *dashboard.Pipeline
	set      models.ResponseSet
	opts     plot.RenderOptions
	log      *zap.Logger
}

func newBotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram bot (TG_TOKEN)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(currentConfig())
			if err != nil {
				return err
			}
			defer a.log.Sync()
			if a.cfg.TgToken == "" {
				return fmt.Errorf("TG_TOKEN is not set")
			}
			set, err := a.loadResponses()
			if err != nil {
				return err
			}

			bot, err := tgbotapi.NewBotAPI(a.cfg.TgToken)
			if err != nil {
				return fmt.Errorf("tg error: %w", err)
			}
			a.log.Info("bot authorized", zap.String("account", bot.Self.UserName))

			h := &botHandler{api: bot, pipeline: a.pipeline, set: set, opts: plot.DefaultRenderOptions(), log: a.log}
			u := tgbotapi.NewUpdate(0)
			u.Timeout = 60
			updates, err := bot.GetUpdatesChan(u)
			if err != nil {
				return err
			}
			for update := range updates {
				if update.Message == nil || update.Message.Text == "" {
					continue
				}
				go h.handleText(update.Message)
			}
			return nil
		},
	}
}

func (h *botHandler) handleText(message *tgbotapi.Message) {
	switch message.Command() {
	case "grupos":
		h.sendPre(message.Chat.ID, "grupos", report.GroupsTable(survey.GroupSizes(h.set)))
	case "filtro":
		h.handleFilter(message.Chat.ID, parseSelection(message.CommandArguments()))
	default:
		h.send(tgbotapi.NewMessage(message.Chat.ID, welcomeText))
	}
}

// parseSelection splits "A, B" into group identifiers. Names containing a comma
// are written in double quotes. Blank input selects every group.
func parseSelection(args string) []string {
	r := csv.NewReader(strings.NewReader(args))
	r.TrimLeadingSpace = true
	r.LazyQuotes = true
	fields, err := r.Read()
	if err != nil {
		fields = strings.Split(args, ",")
	}
	var out []string
	for _, g := range fields {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}

func (h *botHandler) handleFilter(chatID int64, selection []string) {
	pass, err := h.pipeline.Render(h.set, selection)
	if err != nil {
		h.log.Error("render failed", zap.Error(err))
		h.send(tgbotapi.NewMessage(chatID, fmt.Sprintf("No se pudo generar el dashboard: %v", err)))
		return
	}
	h.send(tgbotapi.NewMessage(chatID, report.SelectionLine(pass)))

	for i, c := range pass.Charts {
		graph, err := plot.RenderPNG(c.Geometry, h.opts)
		if err != nil {
			h.log.Error("chart render failed", zap.String("column", c.Column), zap.Error(err))
			continue
		}
		sendGraphVisualization(h.api, h.log, chatID, graph, dashboard.ChartFileName(i, c), chartCaption(c))
	}

	title := h.pipeline.KeywordsHeading()
	if len(pass.Keywords) == 0 {
		h.send(tgbotapi.NewMessage(chatID, title+"\n"+report.NoData))
		return
	}
	h.sendPre(chatID, "palabras", title+"\n"+report.KeywordsTable(pass.Keywords))
}

// sendPre sends a monospace table, as a text file when it would not fit in one message.
func (h *botHandler) sendPre(chatID int64, name, body string) {
	if len(body) > maxMessageLen {
		data := tgbotapi.FileBytes{Name: name + time.Now().Format("20060102-150405") + ".txt", Bytes: []byte(body)}
		doc := tgbotapi.NewDocumentUpload(chatID, data)
		doc.Caption = name
		h.send(doc)
		return
	}
	msg := tgbotapi.NewMessage(chatID, "<pre>\n"+html.EscapeString(body)+"\n</pre>")
	msg.ParseMode = tgbotapi.ModeHTML
	h.send(msg)
}

func (h *botHandler) send(c tgbotapi.Chattable) {
	if _, err := h.api.Send(c); err != nil {
		h.log.Warn("telegram send failed", zap.Error(err))
	}
}
