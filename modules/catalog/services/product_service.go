package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/atelier-dourado/backoffice/modules/audit/domain/activitylog"
	"github.com/atelier-dourado/backoffice/modules/catalog/domain/product"
	"github.com/atelier-dourado/backoffice/pkg/composables"
	"github.com/atelier-dourado/backoffice/pkg/dbretry"
	"github.com/atelier-dourado/backoffice/pkg/eventbus"
	"github.com/atelier-dourado/backoffice/pkg/serrors"
	"github.com/google/uuid"
)

const productEntity = "Product"

type ProductService struct {
	repo      product.Repository
	executor  *dbretry.Executor
	recorder  ActivityRecorder
	publisher eventbus.EventBus
}

func NewProductService(
	repo product.Repository,
	executor *dbretry.Executor,
	recorder ActivityRecorder,
	publisher eventbus.EventBus,
) *ProductService {
	return &ProductService{
		repo:      repo,
		executor:  executor,
		recorder:  recorder,
		publisher: publisher,
	}
}

func (s *ProductService) GetAll(ctx context.Context, params *product.FindParams) ([]*product.Product, error) {
	return s.repo.GetAll(ctx, params)
}

func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, p *product.Product, userID string) (*product.Product, error) {
	if p.Code() != "" {
		_, err := s.repo.GetByCode(ctx, p.Code())
		switch {
		case err == nil:
			return nil, serrors.NewConflict(fmt.Sprintf("product code %q already exists", p.Code()))
		case !errors.Is(err, product.ErrNotFound):
			return nil, err
		}
	}

	var created *product.Product
	err := s.executor.Do(ctx, "product.create", func(ctx context.Context) error {
		return composables.InTx(ctx, func(txCtx context.Context) error {
			result, err := s.repo.Create(txCtx, p)
			if err != nil {
				return err
			}
			created = result
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, activitylog.ActionCreate, productEntity, created.ID().String(),
		fmt.Sprintf("product %q created", created.Name()), userID)
	s.publisher.Publish(&product.CreatedEvent{UserID: userID, Result: created})
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, p *product.Product, userID string) (*product.Product, error) {
	if _, err := s.repo.GetByID(ctx, p.ID()); err != nil {
		return nil, err
	}

	var updated *product.Product
	err := s.executor.Do(ctx, "product.update", func(ctx context.Context) error {
		return composables.InTx(ctx, func(txCtx context.Context) error {
			result, err := s.repo.Update(txCtx, p)
			if err != nil {
				return err
			}
			updated = result
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, activitylog.ActionUpdate, productEntity, updated.ID().String(),
		fmt.Sprintf("product %q updated", updated.Name()), userID)
	s.publisher.Publish(&product.UpdatedEvent{UserID: userID, Result: updated})
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.executor.Do(ctx, "product.delete", func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.recorder.Record(ctx, activitylog.ActionDelete, productEntity, id.String(),
		fmt.Sprintf("product %q deleted", existing.Name()), userID)
	s.publisher.Publish(&product.DeletedEvent{UserID: userID, ProductID: id, Name: existing.Name()})
	return nil
}
