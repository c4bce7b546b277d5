package main

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pivolan/survey_dashboard/dashboard"
	"github.com/pivolan/survey_dashboard/domain/models"
	"github.com/pivolan/survey_dashboard/plot"
	"github.com/pivolan/survey_dashboard/report"
	"github.com/pivolan/survey_dashboard/survey"
)

// groupParam is repeated in the query string: /?grupo=A&grupo=B.
const groupParam = "grupo"

type webHandler struct {
	pipeline *dashboard.Pipeline
	set      models.ResponseSet
	opts     plot.RenderOptions
	log      *zap.Logger
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive dashboard over HTTP (LISTEN_ADDR)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(currentConfig())
			if err != nil {
				return err
			}
			defer a.log.Sync()
			set, err := a.loadResponses()
			if err != nil {
				return err
			}
			h := &webHandler{pipeline: a.pipeline, set: set, opts: plot.DefaultRenderOptions(), log: a.log}
			a.log.Info("listening", zap.String("addr", a.cfg.ListenAddr))
			return http.ListenAndServe(a.cfg.ListenAddr, h.routes())
		},
	}
}

func (h *webHandler) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", h.handleDashboard)
	mux.HandleFunc("/chart", h.handleChart)
	mux.HandleFunc("/grupos", h.handleGroups)
	return mux
}

func (h *webHandler) render(w http.ResponseWriter, r *http.Request) (dashboard.Pass, bool) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return dashboard.Pass{}, false
	}
	pass, err := h.pipeline.Render(h.set, r.URL.Query()[groupParam])
	if err != nil {
		h.log.Error("render failed", zap.Error(err))
		http.Error(w, "Error rendering dashboard", http.StatusInternalServerError)
		return dashboard.Pass{}, false
	}
	return pass, true
}

func (h *webHandler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	pass, ok := h.render(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := plot.RenderDashboardHTML(&buf, h.pipeline.Page(pass)); err != nil {
		h.log.Error("page render failed", zap.Error(err))
		http.Error(w, "Error rendering dashboard", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// handleChart serves the i-th chart as PNG: /chart?i=0&grupo=A.
func (h *webHandler) handleChart(w http.ResponseWriter, r *http.Request) {
	i, err := strconv.Atoi(r.URL.Query().Get("i"))
	if err != nil || i < 0 {
		http.Error(w, "Error getting chart index", http.StatusBadRequest)
		return
	}
	pass, ok := h.render(w, r)
	if !ok {
		return
	}
	if i >= len(pass.Charts) {
		http.NotFound(w, r)
		return
	}
	img, err := plot.RenderPNG(pass.Charts[i].Geometry, h.opts)
	if err != nil {
		h.log.Error("chart render failed", zap.Int("chart", i), zap.Error(err))
		http.Error(w, "Error rendering chart", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(img)
}

func (h *webHandler) handleGroups(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, report.GroupsTable(survey.GroupSizes(h.set)))
}
