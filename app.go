package main

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/pivolan/survey_dashboard/config"
	"github.com/pivolan/survey_dashboard/dashboard"
	"github.com/pivolan/survey_dashboard/domain/models"
	"github.com/pivolan/survey_dashboard/logger"
	"github.com/pivolan/survey_dashboard/source"
)

var errNoDataSource = errors.New("no data source: set DATA_PATH (--data) or DB_DSN")

type app struct {
	cfg       *config.Config
	dashboard config.Dashboard
	pipeline  *dashboard.Pipeline
	log       *zap.Logger
}

func newApp(cfg *config.Config) (*app, error) {
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	d, err := config.LoadDashboard(cfg.DashboardPath)
	if err != nil {
		return nil, err
	}
	p, err := dashboard.NewPipeline(d, log)
	if err != nil {
		return nil, fmt.Errorf("dashboard config %s: %w", cfg.DashboardPath, err)
	}
	return &app{cfg: cfg, dashboard: d, pipeline: p, log: log}, nil
}

// loadResponses reads the file source when configured, the database otherwise.
func (a *app) loadResponses() (models.ResponseSet, error) {
	schema := source.SchemaFromDashboard(a.dashboard)
	var (
		set models.ResponseSet
		err error
	)
	switch {
	case a.cfg.DataPath != "":
		set, err = source.LoadFile(a.cfg.DataPath, schema)
	case a.cfg.DbDsn != "":
		db, dbErr := source.OpenDB(a.cfg.DbDsn)
		if dbErr != nil {
			return nil, dbErr
		}
		set, err = source.LoadSQL(db, a.cfg.DbTable, schema)
	default:
		return nil, errNoDataSource
	}
	if err != nil {
		a.log.Error("cannot load responses", zap.Error(err))
		return nil, err
	}
	a.log.Info("responses loaded", zap.Int("records", len(set)))
	return set, nil
}
