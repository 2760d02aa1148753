package catalog

import (
	auditservices "github.com/atelier-dourado/backoffice/modules/audit/services"
	"github.com/atelier-dourado/backoffice/modules/catalog/handlers"
	"github.com/atelier-dourado/backoffice/modules/catalog/infrastructure/persistence"
	"github.com/atelier-dourado/backoffice/modules/catalog/presentation/controllers"
	"github.com/atelier-dourado/backoffice/modules/catalog/services"
	"github.com/atelier-dourado/backoffice/pkg/application"
	"github.com/atelier-dourado/backoffice/pkg/configuration"
	"github.com/atelier-dourado/backoffice/pkg/dbretry"
)

type Module struct{}

func NewModule() application.Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "catalog"
}

// Register wires the catalog feature area. Depends on the audit module
// being registered first for the activity recorder.
func (m *Module) Register(app application.Application) error {
	conf := configuration.Use()
	executor := dbretry.NewExecutor(conf.Retry)
	recorder := app.Service(auditservices.ActivityLogService{}).(*auditservices.ActivityLogService)

	portfolioRepo := persistence.NewPortfolioRepository()
	productRepo := persistence.NewProductRepository()

	app.RegisterServices(
		services.NewPortfolioService(portfolioRepo, executor, recorder, app.EventPublisher(), conf.Catalog.FeaturedLimit),
		services.NewProductService(productRepo, executor, recorder, app.EventPublisher()),
	)
	app.RegisterControllers(
		controllers.NewPortfolioController(app),
		controllers.NewProductController(app),
		controllers.NewPublicCatalogController(app),
	)
	handlers.RegisterCatalogEventHandlers(app)
	return nil
}
