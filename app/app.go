package app

import (
	"database/sql"

	"github.com/mbolis/save-survey/config"
	"github.com/mbolis/save-survey/csvlog"
	"github.com/mbolis/save-survey/metrics"
)

// App carries the process-wide resources built once at startup.
type App struct {
	*sql.DB
	CSV     *csvlog.File
	Metrics *metrics.Metrics
	config.Config
}
