package site

import (
	auditservices "github.com/atelier-dourado/backoffice/modules/audit/services"
	"github.com/atelier-dourado/backoffice/modules/site/infrastructure/persistence"
	"github.com/atelier-dourado/backoffice/modules/site/presentation/controllers"
	"github.com/atelier-dourado/backoffice/modules/site/services"
	"github.com/atelier-dourado/backoffice/pkg/application"
	"github.com/atelier-dourado/backoffice/pkg/configuration"
	"github.com/atelier-dourado/backoffice/pkg/dbretry"
)

type Module struct{}

func NewModule() application.Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "site"
}

func (m *Module) Register(app application.Application) error {
	conf := configuration.Use()
	executor := dbretry.NewExecutor(conf.Retry)
	recorder := app.Service(auditservices.ActivityLogService{}).(*auditservices.ActivityLogService)

	app.RegisterServices(
		services.NewPageVisibilityService(persistence.NewPageVisibilityRepository(), executor, recorder),
		services.NewSiteSettingsService(persistence.NewSiteSettingsRepository(), executor, recorder),
	)
	app.RegisterControllers(
		controllers.NewSiteAdminController(app),
		controllers.NewSitePublicController(app),
		controllers.NewHealthController(app),
	)
	return nil
}
