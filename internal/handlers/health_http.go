package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"employee-api/internal/repository"
	"employee-api/internal/utils"
)

const pingTimeout = 2 * time.Second

// Health reports 503 while the store cannot be reached.
func Health(db repository.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			zerolog.Ctx(r.Context()).Warn().Err(err).Msg("health check failed")
			utils.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
