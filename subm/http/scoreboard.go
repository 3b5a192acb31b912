package http

import (
	"log/slog"
	"net/http"

	"github.com/CIA-PoPS/HACKATHON-24-25/httpjson"
)

type ScoreRow struct {
	Team  string  `json:"team"`
	Score float64 `json:"score"`
}

func (h *SubmHttpHandler) Scoreboard(w http.ResponseWriter, r *http.Request) {
	rows, err := h.submSrvc.Scoreboard(r.Context())
	if err != nil {
		httpjson.HandleError(slog.Default(), w, err)
		return
	}

	response := make([]ScoreRow, len(rows))
	for i, row := range rows {
		response[i] = ScoreRow{Team: row.Team, Score: row.Score}
	}

	httpjson.WriteSuccessJson(w, response)
}
