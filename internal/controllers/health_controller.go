package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/dtos"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	db Pinger
}

func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

// GET /health
func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, dtos.HealthResponse{Status: "healthy", Service: utils.ServiceName})
}

// GET /ready
func (c *HealthController) ReadyHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := c.db.Ping(ctx); err != nil {
		utils.Logger.WithError(err).Error("pgadmin-api DB unreachable")
		utils.RespondWithJSON(w, http.StatusServiceUnavailable, dtos.ReadyResponse{Status: "not_ready", Error: err.Error()})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.ReadyResponse{Status: "ready", Database: "connected"})
}
