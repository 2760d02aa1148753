package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/atelier-dourado/backoffice/modules/catalog/domain/product"
	"github.com/atelier-dourado/backoffice/modules/catalog/presentation/controllers/dtos"
	"github.com/atelier-dourado/backoffice/modules/catalog/services"
	"github.com/atelier-dourado/backoffice/pkg/application"
	"github.com/atelier-dourado/backoffice/pkg/composables"
	"github.com/atelier-dourado/backoffice/pkg/configuration"
	"github.com/atelier-dourado/backoffice/pkg/httpapi"
	"github.com/atelier-dourado/backoffice/pkg/serrors"
	"github.com/gorilla/mux"
)

type ProductController struct {
	app            application.Application
	productService *services.ProductService
	basePath       string
	debug          bool
}

func NewProductController(app application.Application) application.Controller {
	return &ProductController{
		app:            app,
		productService: app.Service(services.ProductService{}).(*services.ProductService),
		basePath:       "/api/admin/products",
		debug:          configuration.Use().DebugResponses,
	}
}

func (c *ProductController) Key() string {
	return c.basePath
}

func (c *ProductController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.List).Methods(http.MethodGet)
	router.HandleFunc("", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/{id}", c.GetByID).Methods(http.MethodGet)
	router.HandleFunc("/{id}", c.Update).Methods(http.MethodPut)
	router.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)
}

func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	if _, err := composables.RequireAdmin(r.Context()); err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	limit, offset := pagination(r)
	products, err := c.productService.GetAll(r.Context(), &product.FindParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.ProductsToViews(products))
}

func (c *ProductController) GetByID(w http.ResponseWriter, r *http.Request) {
	if _, err := composables.RequireAdmin(r.Context()); err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	id, err := pathID(r)
	if err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	p, err := c.productService.GetByID(r.Context(), id)
	if err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.ProductToView(p))
}

func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	admin, err := composables.RequireAdmin(r.Context())
	if err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}

	dto := &dtos.CreateProductDTO{}
	if err := json.NewDecoder(r.Body).Decode(dto); err != nil {
		httpapi.RespondError(w, r, serrors.NewError(serrors.CodeValidation, "malformed JSON payload"), c.debug)
		return
	}
	if fields, ok := dto.Ok(); !ok {
		httpapi.RespondError(w, r, serrors.ValidationErrors(fields), c.debug)
		return
	}

	created, err := c.productService.Create(r.Context(), dto.ToEntity(), admin.UserID)
	if err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, dtos.ProductToView(created))
}

func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
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

	dto := &dtos.UpdateProductDTO{}
	if err := json.NewDecoder(r.Body).Decode(dto); err != nil {
		httpapi.RespondError(w, r, serrors.NewError(serrors.CodeValidation, "malformed JSON payload"), c.debug)
		return
	}
	if fields, ok := dto.Ok(); !ok {
		httpapi.RespondError(w, r, serrors.ValidationErrors(fields), c.debug)
		return
	}

	existing, err := c.productService.GetByID(r.Context(), id)
	if err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}

	updated, err := c.productService.Update(r.Context(), dto.Apply(existing), admin.UserID)
	if err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.ProductToView(updated))
}

func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
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
	if err := c.productService.Delete(r.Context(), id, admin.UserID); err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
