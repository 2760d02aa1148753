package handlers

import (
	"bytes"
	"testing"

	"github.com/atelier-dourado/backoffice/modules/catalog/domain/portfolio"
	"github.com/atelier-dourado/backoffice/modules/catalog/domain/product"
	"github.com/atelier-dourado/backoffice/pkg/application"
	"github.com/atelier-dourado/backoffice/pkg/eventbus"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newHandlerFixture() (application.Application, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	app := application.New(&application.ApplicationOptions{
		EventBus: eventbus.NewEventPublisher(logger),
		Logger:   logger,
	})
	RegisterCatalogEventHandlers(app)
	return app, &buf
}

func TestCatalogEventsHandler_PortfolioEventsAreConsumed(t *testing.T) {
	app, buf := newHandlerFixture()
	item := portfolio.New("Aliança", portfolio.CategoryWeddingRings, "https://cdn.example.com/a.jpg")

	app.EventPublisher().Publish(&portfolio.CreatedEvent{UserID: "admin-1", Result: item})
	app.EventPublisher().Publish(&portfolio.UpdatedEvent{UserID: "admin-1", Result: item})
	app.EventPublisher().Publish(&portfolio.DeletedEvent{UserID: "admin-1", ItemID: item.ID(), Title: item.Title()})

	out := buf.String()
	assert.Contains(t, out, "portfolio item created")
	assert.Contains(t, out, "portfolio item updated")
	assert.Contains(t, out, "portfolio item deleted")
	assert.Contains(t, out, item.ID().String())
	assert.NotContains(t, out, "no matching subscribers")
}

func TestCatalogEventsHandler_ProductEventsAreConsumed(t *testing.T) {
	app, buf := newHandlerFixture()
	p := product.New("Anel solitário", product.CategoryRings)

	app.EventPublisher().Publish(&product.CreatedEvent{UserID: "admin-1", Result: p})
	app.EventPublisher().Publish(&product.DeletedEvent{UserID: "admin-1", ProductID: uuid.New(), Name: p.Name()})

	out := buf.String()
	assert.Contains(t, out, "product created")
	assert.Contains(t, out, "product deleted")
	assert.NotContains(t, out, "no matching subscribers")
}
