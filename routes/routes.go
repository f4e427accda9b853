package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mbolis/save-survey/app"
	"github.com/mbolis/save-survey/routes/middlewares"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(
		middleware.RequestID,
		middleware.RealIP,
		middlewares.RequestLogger(),
		middleware.Recoverer,
		middlewares.Metrics(app.Metrics),
	)

	root.Mount("/api", apiRouter(app))

	if app.ExposeMetrics {
		root.Method(http.MethodGet, "/metrics", app.Metrics.Handler())
	}

	return root
}

func apiRouter(app app.App) http.Handler {
	api := chi.NewRouter()

	api.Post("/save-survey", SaveSurvey(app))

	return api
}
