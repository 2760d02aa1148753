package audit

import (
	"github.com/atelier-dourado/backoffice/modules/audit/infrastructure/persistence"
	"github.com/atelier-dourado/backoffice/modules/audit/presentation/controllers"
	"github.com/atelier-dourado/backoffice/modules/audit/services"
	"github.com/atelier-dourado/backoffice/pkg/application"
)

type Module struct{}

func NewModule() application.Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "audit"
}

func (m *Module) Register(app application.Application) error {
	app.RegisterServices(
		services.NewActivityLogService(persistence.NewActivityLogRepository()),
	)
	app.RegisterControllers(
		controllers.NewActivityLogController(app),
	)
	return nil
}
