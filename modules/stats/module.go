package stats

import (
	"github.com/atelier-dourado/backoffice/modules/stats/infrastructure/persistence"
	"github.com/atelier-dourado/backoffice/modules/stats/presentation/controllers"
	"github.com/atelier-dourado/backoffice/modules/stats/services"
	"github.com/atelier-dourado/backoffice/pkg/application"
	"github.com/atelier-dourado/backoffice/pkg/configuration"
	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type Module struct{}

func NewModule() application.Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "stats"
}

func (m *Module) Register(app application.Application) error {
	// sqlx.Open is lazy; the first dashboard request establishes the
	// connection.
	db, err := sqlx.Open("pgx", configuration.Use().Database.ConnectionString())
	if err != nil {
		return err
	}
	app.RegisterServices(
		services.NewStatsService(persistence.NewStatsRepository(db)),
	)
	app.RegisterControllers(
		controllers.NewStatsController(app),
	)
	return nil
}
