package routes

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/mbolis/save-survey/app"
	"github.com/mbolis/save-survey/httpx"
	"github.com/mbolis/save-survey/log"
	"github.com/mbolis/save-survey/metrics"
	"github.com/mbolis/save-survey/model"
)

const (
	msgSaved      = "Survey response saved successfully"
	msgSaveFailed = "Failed to save survey response"
)

type saveSurveyResult struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// SaveSurvey stores one survey response in the database, then mirrors it
// to the CSV file. Unless the app requires the CSV mirror, a failed append
// is logged and the request still succeeds with the database id.
func SaveSurvey(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := model.SurveyResponse{}
		err := httpx.DecodeJSON(w, r, &resp)
		if err != nil {
			app.Metrics.Submission(metrics.Invalid)
			httpx.LogBadBody(w, r, "request.parse_body", err)
			return
		}

		err = httpx.ValidateRequired(resp)
		var missing *httpx.MissingFieldError
		switch {
		case errors.As(err, &missing):
			app.Metrics.Submission(metrics.Rejected)
			httpx.LogBadRequest(w, r, "request.validate", missing.Error(), "")
			return
		case err != nil:
			app.Metrics.Submission(metrics.Failed)
			httpx.LogInternalError(w, r, "request.validate", msgSaveFailed, err)
			return
		}

		err = app.QueryRowContext(r.Context(), `
			INSERT INTO survey_responses (timestamp, interested, players, duration, puzzle_percentage, price)
			VALUES (?, ?, ?, ?, ?, ?)
			RETURNING id`,
			resp.Timestamp.String(),
			resp.Interested.String(),
			resp.Players.String(),
			resp.Duration.String(),
			resp.PuzzlePercentage.String(),
			resp.Price.String(),
		).Scan(&resp.ID)
		if err != nil {
			app.Metrics.Submission(metrics.Failed)
			httpx.LogInternalError(w, r, "db.insert_survey_response", msgSaveFailed, err)
			return
		}

		err = app.CSV.Append(resp)
		if err != nil {
			app.Metrics.CSVFailures.Inc()
			if app.CSVRequired {
				app.Metrics.Submission(metrics.Failed)
				httpx.LogInternalError(w, r, "csv.append", msgSaveFailed, err)
				return
			}
			log.WithFields(log.Fields{
				"code":       "csv.append",
				"request_id": middleware.GetReqID(r.Context()),
				"id":         resp.ID,
			}).Warnf("csv.append: %s", err)
		}

		app.Metrics.Submission(metrics.Saved)
		render.JSON(w, r, saveSurveyResult{
			Success: true,
			ID:      resp.ID,
			Message: msgSaved,
		})
	}
}
