package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/atelier-dourado/backoffice/modules/catalog/domain/portfolio"
	"github.com/atelier-dourado/backoffice/modules/catalog/presentation/controllers/dtos"
	"github.com/atelier-dourado/backoffice/modules/catalog/services"
	"github.com/atelier-dourado/backoffice/pkg/application"
	"github.com/atelier-dourado/backoffice/pkg/composables"
	"github.com/atelier-dourado/backoffice/pkg/configuration"
	"github.com/atelier-dourado/backoffice/pkg/httpapi"
	"github.com/atelier-dourado/backoffice/pkg/serrors"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const defaultPageSize = 50

type PortfolioController struct {
	app              application.Application
	portfolioService *services.PortfolioService
	basePath         string
	debug            bool
}

func NewPortfolioController(app application.Application) application.Controller {
	return &PortfolioController{
		app:              app,
		portfolioService: app.Service(services.PortfolioService{}).(*services.PortfolioService),
		basePath:         "/api/admin/portfolio",
		debug:            configuration.Use().DebugResponses,
	}
}

func (c *PortfolioController) Key() string {
	return c.basePath
}

func (c *PortfolioController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/featured-count", c.FeaturedCount).Methods(http.MethodGet)
	router.HandleFunc("/{id}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/{id}", c.Update).Methods(http.MethodPut)
	router.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)
}

func pagination(r *http.Request) (limit, offset int) {
	limit = defaultPageSize
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		return uuid.Nil, serrors.NewError(serrors.CodeValidation, "id must be a valid UUID")
	}
	return id, nil
}

func (c *PortfolioController) List(w http.ResponseWriter, r *http.Request) {
	if _, err := composables.RequireAdmin(r.Context()); err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	limit, offset := pagination(r)
	items, err := c.portfolioService.GetAll(r.Context(), &portfolio.FindParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.PortfolioItemsToViews(items))
}

func (c *PortfolioController) GetByID(w http.ResponseWriter, r *http.Request) {
	if _, err := composables.RequireAdmin(r.Context()); err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	id, err := pathID(r)
	if err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	item, err := c.portfolioService.GetByID(r.Context(), id)
	if err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.PortfolioItemToView(item))
}

func (c *PortfolioController) FeaturedCount(w http.ResponseWriter, r *http.Request) {
	if _, err := composables.RequireAdmin(r.Context()); err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	count, err := c.portfolioService.FeaturedCount(r.Context())
	if err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]int64{"count": count})
}

func (c *PortfolioController) Create(w http.ResponseWriter, r *http.Request) {
	admin, err := composables.RequireAdmin(r.Context())
	if err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}

	dto := &dtos.CreatePortfolioDTO{}
	if err := json.NewDecoder(r.Body).Decode(dto); err != nil {
		httpapi.RespondError(w, r, serrors.NewError(serrors.CodeValidation, "malformed JSON payload"), c.debug)
		return
	}
	if fields, ok := dto.Ok(); !ok {
		httpapi.RespondError(w, r, serrors.ValidationErrors(fields), c.debug)
		return
	}

	entity, err := dto.ToEntity()
	if err != nil {
		httpapi.RespondError(w, r, serrors.ValidationErrors{"productId": "must be a valid id"}, c.debug)
		return
	}

	created, err := c.portfolioService.Create(r.Context(), entity, admin.UserID)
	if err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, dtos.PortfolioItemToView(created))
}

func (c *PortfolioController) Update(w http.ResponseWriter, r *http.Request) {
	admin, err := composables.RequireAdmin(r.Context())
	if err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	id, err := pathID(r)
	if err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}

	dto := &dtos.UpdatePortfolioDTO{}
	if err := json.NewDecoder(r.Body).Decode(dto); err != nil {
		httpapi.RespondError(w, r, serrors.NewError(serrors.CodeValidation, "malformed JSON payload"), c.debug)
		return
	}
	if fields, ok := dto.Ok(); !ok {
		httpapi.RespondError(w, r, serrors.ValidationErrors(fields), c.debug)
		return
	}

	existing, err := c.portfolioService.GetByID(r.Context(), id)
	if err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	entity, err := dto.Apply(existing)
	if err != nil {
		httpapi.RespondError(w, r, serrors.ValidationErrors{"productId": "must be a valid id"}, c.debug)
		return
	}

	updated, err := c.portfolioService.Update(r.Context(), entity, admin.UserID)
	if err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.PortfolioItemToView(updated))
}

func (c *PortfolioController) Delete(w http.ResponseWriter, r *http.Request) {
	admin, err := composables.RequireAdmin(r.Context())
	if err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	id, err := pathID(r)
	if err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	if err := c.portfolioService.Delete(r.Context(), id, admin.UserID); err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
