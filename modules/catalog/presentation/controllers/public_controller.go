package controllers

import (
	"net/http"

	"github.com/atelier-dourado/backoffice/modules/catalog/domain/portfolio"
	"github.com/atelier-dourado/backoffice/modules/catalog/domain/product"
	"github.com/atelier-dourado/backoffice/modules/catalog/presentation/controllers/dtos"
	"github.com/atelier-dourado/backoffice/modules/catalog/services"
	sitesvc "github.com/atelier-dourado/backoffice/modules/site/services"
	"github.com/atelier-dourado/backoffice/pkg/application"
	"github.com/atelier-dourado/backoffice/pkg/configuration"
	"github.com/atelier-dourado/backoffice/pkg/httpapi"
	"github.com/atelier-dourado/backoffice/pkg/serrors"
	"github.com/gorilla/mux"
)

const portfolioPageSlug = "portfolio"

// PublicCatalogController serves the storefront read surface. No auth:
// only published, active records ever leave these handlers, and the
// portfolio endpoints respect the admin-managed page visibility switch.
type PublicCatalogController struct {
	app              application.Application
	portfolioService *services.PortfolioService
	productService   *services.ProductService
	visibility       *sitesvc.PageVisibilityService
	debug            bool
}

func NewPublicCatalogController(app application.Application) application.Controller {
	return &PublicCatalogController{
		app:              app,
		portfolioService: app.Service(services.PortfolioService{}).(*services.PortfolioService),
		productService:   app.Service(services.ProductService{}).(*services.ProductService),
		visibility:       app.Service(sitesvc.PageVisibilityService{}).(*sitesvc.PageVisibilityService),
		debug:            configuration.Use().DebugResponses,
	}
}

func (c *PublicCatalogController) Key() string {
	return "/api/catalog-public"
}

func (c *PublicCatalogController) Register(r *mux.Router) {
	r.HandleFunc("/api/portfolio", c.ListPortfolio).Methods(http.MethodGet)
	r.HandleFunc("/api/portfolio/{id}", c.GetPortfolioItem).Methods(http.MethodGet)
	r.HandleFunc("/api/products/ready-delivery", c.ListReadyDelivery).Methods(http.MethodGet)
}

func (c *PublicCatalogController) ListPortfolio(w http.ResponseWriter, r *http.Request) {
	if !c.visibility.Check(r.Context(), portfolioPageSlug) {
		httpapi.RespondError(w, r, serrors.NewNotFound("page"), c.debug)
		return
	}
	limit, offset := pagination(r)
	items, err := c.portfolioService.GetAll(r.Context(), &portfolio.FindParams{
		OnlyPublished: true,
		OnlyActive:    true,
		Limit:         limit,
		Offset:        offset,
	})
	if err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.PortfolioItemsToViews(items))
}

func (c *PublicCatalogController) GetPortfolioItem(w http.ResponseWriter, r *http.Request) {
	if !c.visibility.Check(r.Context(), portfolioPageSlug) {
		httpapi.RespondError(w, r, serrors.NewNotFound("page"), c.debug)
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
	// Drafts and archived items are invisible to the storefront.
	if !item.IsActive() || (item.Status() != portfolio.StatusPublished && item.Status() != portfolio.StatusFeatured) {
		httpapi.RespondError(w, r, portfolio.ErrNotFound, c.debug)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.PortfolioItemToView(item))
}

func (c *PublicCatalogController) ListReadyDelivery(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	products, err := c.productService.GetAll(r.Context(), &product.FindParams{
		OnlyActive:        true,
		OnlyReadyDelivery: true,
		Limit:             limit,
		Offset:            offset,
	})
	if err != nil {
		httpapi.RespondError(w, r, err, c.debug)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dtos.ProductsToViews(products))
}
