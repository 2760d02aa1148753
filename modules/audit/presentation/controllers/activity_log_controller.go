package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/atelier-dourado/backoffice/modules/audit/domain/activitylog"
	"github.com/atelier-dourado/backoffice/modules/audit/services"
	"github.com/atelier-dourado/backoffice/pkg/application"
	"github.com/atelier-dourado/backoffice/pkg/composables"
	"github.com/atelier-dourado/backoffice/pkg/configuration"
	"github.com/atelier-dourado/backoffice/pkg/httpapi"
	"github.com/gorilla/mux"
)

type entryView struct {
	ID          string    `json:"id"`
	Action      string    `json:"action"`
	Entity      string    `json:"entity"`
	EntityID    string    `json:"entityId"`
	Description string    `json:"description"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
}

type listResponse struct {
	Entries []*entryView `json:"entries"`
	Total   int64        `json:"total"`
}

type ActivityLogController struct {
	app      application.Application
	service  *services.ActivityLogService
	basePath string
	debug    bool
}

func NewActivityLogController(app application.Application) application.Controller {
	return &ActivityLogController{
		app:      app,
		service:  app.Service(services.ActivityLogService{}).(*services.ActivityLogService),
		basePath: "/api/admin/activity",
		debug:    configuration.Use().DebugResponses,
	}
}

func (c *ActivityLogController) Key() string {
	return c.basePath
}

func (c *ActivityLogController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
}

func (c *ActivityLogController) List(w http.ResponseWriter, r *http.Request) {
	if _, err := composables.RequireAdmin(r.Context()); err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}

	params := &activitylog.FindParams{
		Entity: r.URL.Query().Get("entity"),
		UserID: r.URL.Query().Get("userId"),
		Limit:  100,
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			params.Limit = n
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			params.Offset = n
		}
	}

	entries, total, err := c.service.List(r.Context(), params)
	if err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}

	views := make([]*entryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, &entryView{
			ID:          entry.ID.String(),
			Action:      string(entry.Action),
			Entity:      entry.Entity,
			EntityID:    entry.EntityID,
			Description: entry.Description,
			UserID:      entry.UserID,
			CreatedAt:   entry.CreatedAt,
		})
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, &listResponse{Entries: views, Total: total})
}
