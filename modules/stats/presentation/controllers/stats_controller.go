package controllers

import (
	"net/http"

	"github.com/atelier-dourado/backoffice/modules/stats/services"
	"github.com/atelier-dourado/backoffice/pkg/application"
	"github.com/atelier-dourado/backoffice/pkg/composables"
	"github.com/atelier-dourado/backoffice/pkg/configuration"
	"github.com/atelier-dourado/backoffice/pkg/httpapi"
	"github.com/gorilla/mux"
)

type StatsController struct {
	app          application.Application
	statsService *services.StatsService
	basePath     string
	debug        bool
}

func NewStatsController(app application.Application) application.Controller {
	return &StatsController{
		app:          app,
		statsService: app.Service(services.StatsService{}).(*services.StatsService),
		basePath:     "/api/admin/stats",
		debug:        configuration.Use().DebugResponses,
	}
}

func (c *StatsController) Key() string {
	return c.basePath
}

func (c *StatsController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.Overview).Methods(http.MethodGet)
}

func (c *StatsController) Overview(w http.ResponseWriter, r *http.Request) {
	if _, err := composables.RequireAdmin(r.Context()); err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	overview, err := c.statsService.Overview(r.Context())
	if err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, overview)
}
