package handlers

import (
	"github.com/atelier-dourado/backoffice/modules/catalog/domain/portfolio"
	"github.com/atelier-dourado/backoffice/modules/catalog/domain/product"
	"github.com/atelier-dourado/backoffice/pkg/application"
	"github.com/sirupsen/logrus"
)

// CatalogEventsHandler turns catalog mutation events into structured
// log entries, giving operators an activity stream without querying
// the audit table.
type CatalogEventsHandler struct {
	logger *logrus.Logger
}

func RegisterCatalogEventHandlers(app application.Application) {
	handler := &CatalogEventsHandler{logger: app.Logger()}
	app.EventPublisher().Subscribe(handler.onPortfolioCreated)
	app.EventPublisher().Subscribe(handler.onPortfolioUpdated)
	app.EventPublisher().Subscribe(handler.onPortfolioDeleted)
	app.EventPublisher().Subscribe(handler.onProductCreated)
	app.EventPublisher().Subscribe(handler.onProductUpdated)
	app.EventPublisher().Subscribe(handler.onProductDeleted)
}

func (h *CatalogEventsHandler) onPortfolioCreated(event *portfolio.CreatedEvent) {
	h.logger.WithFields(logrus.Fields{
		"entity":  "PortfolioItem",
		"id":      event.Result.ID().String(),
		"title":   event.Result.Title(),
		"user_id": event.UserID,
	}).Info("portfolio item created")
}

func (h *CatalogEventsHandler) onPortfolioUpdated(event *portfolio.UpdatedEvent) {
	h.logger.WithFields(logrus.Fields{
		"entity":  "PortfolioItem",
		"id":      event.Result.ID().String(),
		"title":   event.Result.Title(),
		"user_id": event.UserID,
	}).Info("portfolio item updated")
}

func (h *CatalogEventsHandler) onPortfolioDeleted(event *portfolio.DeletedEvent) {
	h.logger.WithFields(logrus.Fields{
		"entity":  "PortfolioItem",
		"id":      event.ItemID.String(),
		"title":   event.Title,
		"user_id": event.UserID,
	}).Info("portfolio item deleted")
}

func (h *CatalogEventsHandler) onProductCreated(event *product.CreatedEvent) {
	h.logger.WithFields(logrus.Fields{
		"entity":  "Product",
		"id":      event.Result.ID().String(),
		"name":    event.Result.Name(),
		"user_id": event.UserID,
	}).Info("product created")
}

func (h *CatalogEventsHandler) onProductUpdated(event *product.UpdatedEvent) {
	h.logger.WithFields(logrus.Fields{
		"entity":  "Product",
		"id":      event.Result.ID().String(),
		"name":    event.Result.Name(),
		"user_id": event.UserID,
	}).Info("product updated")
}

func (h *CatalogEventsHandler) onProductDeleted(event *product.DeletedEvent) {
	h.logger.WithFields(logrus.Fields{
		"entity":  "Product",
		"id":      event.ProductID.String(),
		"name":    event.Name,
		"user_id": event.UserID,
	}).Info("product deleted")
}
