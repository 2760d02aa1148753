package controllers

import (
	"context"
	"net/http"

	"github.com/atelier-dourado/backoffice/pkg/application"
	"github.com/atelier-dourado/backoffice/pkg/composables"
	"github.com/atelier-dourado/backoffice/pkg/configuration"
	"github.com/atelier-dourado/backoffice/pkg/dbretry"
	"github.com/atelier-dourado/backoffice/pkg/httpapi"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
)

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type HealthController struct {
	pool     *pgxpool.Pool
	executor *dbretry.Executor
}

func NewHealthController(app application.Application) application.Controller {
	return &HealthController{
		pool:     app.Pool(),
		executor: dbretry.NewExecutor(configuration.Use().Retry),
	}
}

func (c *HealthController) Key() string {
	return "/api/health"
}

func (c *HealthController) Register(r *mux.Router) {
	r.HandleFunc("/api/health", c.Get).Methods(http.MethodGet)
}

func (c *HealthController) Get(w http.ResponseWriter, r *http.Request) {
	err := c.executor.Do(r.Context(), "health.probe", func(ctx context.Context) error {
		return c.pool.Ping(ctx)
	})
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("database probe failed")
		_ = httpapi.WriteJSON(w, http.StatusServiceUnavailable, &healthResponse{
			Status:   "degraded",
			Database: "down",
		})
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, &healthResponse{
		Status:   "ok",
		Database: "up",
	})
}
