package main

import (
	"errors"
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/mbolis/save-survey/app"
	"github.com/mbolis/save-survey/config"
	"github.com/mbolis/save-survey/csvlog"
	"github.com/mbolis/save-survey/database"
	"github.com/mbolis/save-survey/log"
	"github.com/mbolis/save-survey/metrics"
	"github.com/mbolis/save-survey/routes"
)

func main() {
	cfg, err := config.ParseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if err = log.SetFormat(cfg.LogFormat); err != nil {
		log.Fatal("main.log_format:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("main.db.open:", err)
	}
	defer db.Close()

	m := metrics.New()
	m.CollectDB(db)

	app := app.App{
		DB:      db,
		CSV:     csvlog.New(cfg.CSVPath),
		Metrics: m,
		Config:  cfg,
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Infof("Listening on %s (db %s, csv %s)", cfg.Url(), cfg.DBUrl, cfg.CSVPath)
	return srv.ListenAndServe()
}
