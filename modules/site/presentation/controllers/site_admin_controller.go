package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/atelier-dourado/backoffice/modules/site/domain/pagevisibility"
	"github.com/atelier-dourado/backoffice/modules/site/domain/sitesettings"
	"github.com/atelier-dourado/backoffice/modules/site/services"
	"github.com/atelier-dourado/backoffice/pkg/application"
	"github.com/atelier-dourado/backoffice/pkg/composables"
	"github.com/atelier-dourado/backoffice/pkg/configuration"
	"github.com/atelier-dourado/backoffice/pkg/httpapi"
	"github.com/atelier-dourado/backoffice/pkg/serrors"
	"github.com/gorilla/mux"
)

type pageView struct {
	Slug      string    `json:"slug"`
	IsVisible bool      `json:"isVisible"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type settingView struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func pageToView(page *pagevisibility.Page) *pageView {
	return &pageView{Slug: page.Slug, IsVisible: page.IsVisible, UpdatedAt: page.UpdatedAt}
}

func settingToView(setting *sitesettings.Setting) *settingView {
	return &settingView{Key: setting.Key, Value: setting.Value, UpdatedAt: setting.UpdatedAt}
}

// SiteAdminController manages the storefront configuration surface:
// per-page visibility switches and key/value site settings.
type SiteAdminController struct {
	app             application.Application
	visibility      *services.PageVisibilityService
	settingsService *services.SiteSettingsService
	debug           bool
}

func NewSiteAdminController(app application.Application) application.Controller {
	return &SiteAdminController{
		app:             app,
		visibility:      app.Service(services.PageVisibilityService{}).(*services.PageVisibilityService),
		settingsService: app.Service(services.SiteSettingsService{}).(*services.SiteSettingsService),
		debug:           configuration.Use().DebugResponses,
	}
}

func (c *SiteAdminController) Key() string {
	return "/api/admin/site"
}

func (c *SiteAdminController) Register(r *mux.Router) {
	r.HandleFunc("/api/admin/page-visibility", c.ListPages).Methods(http.MethodGet)
	r.HandleFunc("/api/admin/page-visibility/{slug}", c.SetPageVisibility).Methods(http.MethodPut)
	r.HandleFunc("/api/admin/site-settings", c.ListSettings).Methods(http.MethodGet)
	r.HandleFunc("/api/admin/site-settings/{key}", c.SetSetting).Methods(http.MethodPut)
}

func (c *SiteAdminController) ListPages(w http.ResponseWriter, r *http.Request) {
	if _, err := composables.RequireAdmin(r.Context()); err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	pages, err := c.visibility.GetAll(r.Context())
	if err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	views := make([]*pageView, 0, len(pages))
	for _, page := range pages {
		views = append(views, pageToView(page))
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, views)
}

func (c *SiteAdminController) SetPageVisibility(w http.ResponseWriter, r *http.Request) {
	admin, err := composables.RequireAdmin(r.Context())
	if err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	slug := mux.Vars(r)["slug"]

	var body struct {
		IsVisible *bool `json:"isVisible"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpapi.RespondError(w, r, serrors.NewError(serrors.CodeValidation, "malformed JSON payload"), c.debug)
		return
	}
	if body.IsVisible == nil {
		httpapi.RespondError(w, r, serrors.ValidationErrors{"isVisible": "required"}, c.debug)
		return
	}

	page, err := c.visibility.Set(r.Context(), slug, *body.IsVisible, admin.UserID)
	if err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, pageToView(page))
}

func (c *SiteAdminController) ListSettings(w http.ResponseWriter, r *http.Request) {
	if _, err := composables.RequireAdmin(r.Context()); err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	settings, err := c.settingsService.GetAll(r.Context())
	if err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	views := make([]*settingView, 0, len(settings))
	for _, setting := range settings {
		views = append(views, settingToView(setting))
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, views)
}

func (c *SiteAdminController) SetSetting(w http.ResponseWriter, r *http.Request) {
	admin, err := composables.RequireAdmin(r.Context())
	if err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	key := mux.Vars(r)["key"]

	var body struct {
		Value *string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpapi.RespondError(w, r, serrors.NewError(serrors.CodeValidation, "malformed JSON payload"), c.debug)
		return
	}
	if body.Value == nil {
		httpapi.RespondError(w, r, serrors.ValidationErrors{"value": "required"}, c.debug)
		return
	}

	setting, err := c.settingsService.Set(r.Context(), key, *body.Value, admin.UserID)
	if err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, settingToView(setting))
}
