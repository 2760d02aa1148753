package controllers

import (
	"net/http"

	"github.com/atelier-dourado/backoffice/modules/site/services"
	"github.com/atelier-dourado/backoffice/pkg/application"
	"github.com/atelier-dourado/backoffice/pkg/configuration"
	"github.com/atelier-dourado/backoffice/pkg/httpapi"
	"github.com/atelier-dourado/backoffice/pkg/serrors"
	"github.com/gorilla/mux"
)

type SitePublicController struct {
	app        application.Application
	visibility *services.PageVisibilityService
	debug      bool
}

func NewSitePublicController(app application.Application) application.Controller {
	return &SitePublicController{
		app:        app,
		visibility: app.Service(services.PageVisibilityService{}).(*services.PageVisibilityService),
		debug:      configuration.Use().DebugResponses,
	}
}

func (c *SitePublicController) Key() string {
	return "/api/page-visibility"
}

func (c *SitePublicController) Register(r *mux.Router) {
	r.HandleFunc("/api/page-visibility/check", c.Check).Methods(http.MethodGet)
}

func (c *SitePublicController) Check(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("slug")
	if slug == "" {
		httpapi.RespondError(w, r, serrors.ValidationErrors{"slug": "required"}, c.debug)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]any{
		"slug":    slug,
		"visible": c.visibility.Check(r.Context(), slug),
	})
}
