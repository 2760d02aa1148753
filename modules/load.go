package modules

import (
	"github.com/atelier-dourado/backoffice/modules/audit"
	"github.com/atelier-dourado/backoffice/modules/catalog"
	"github.com/atelier-dourado/backoffice/modules/site"
	"github.com/atelier-dourado/backoffice/modules/stats"
	"github.com/atelier-dourado/backoffice/pkg/application"
)

// BuiltInModules lists the feature areas in registration order. Audit
// comes first because catalog and site look its recorder up during their
// own registration; site precedes catalog because the public catalog
// surface needs the page visibility service.
var BuiltInModules = []application.Module{
	audit.NewModule(),
	site.NewModule(),
	catalog.NewModule(),
	stats.NewModule(),
}

func Load(app application.Application, mods ...application.Module) error {
	for _, module := range mods {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
