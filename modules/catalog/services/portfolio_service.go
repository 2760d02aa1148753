package services

import (
	"context"
	"fmt"

	"github.com/atelier-dourado/backoffice/modules/audit/domain/activitylog"
	"github.com/atelier-dourado/backoffice/modules/catalog/domain/portfolio"
	"github.com/atelier-dourado/backoffice/pkg/composables"
	"github.com/atelier-dourado/backoffice/pkg/dbretry"
	"github.com/atelier-dourado/backoffice/pkg/eventbus"
	"github.com/atelier-dourado/backoffice/pkg/serrors"
	"github.com/google/uuid"
)

// ActivityRecorder is the best-effort audit hook. Implementations must
// never fail the calling operation.
type ActivityRecorder interface {
	Record(ctx context.Context, action activitylog.Action, entity, entityID, description, userID string)
}

const portfolioEntity = "PortfolioItem"

type PortfolioService struct {
	repo          portfolio.Repository
	executor      *dbretry.Executor
	recorder      ActivityRecorder
	publisher     eventbus.EventBus
	featuredLimit int
}

func NewPortfolioService(
	repo portfolio.Repository,
	executor *dbretry.Executor,
	recorder ActivityRecorder,
	publisher eventbus.EventBus,
	featuredLimit int,
) *PortfolioService {
	return &PortfolioService{
		repo:          repo,
		executor:      executor,
		recorder:      recorder,
		publisher:     publisher,
		featuredLimit: featuredLimit,
	}
}

func (s *PortfolioService) GetAll(ctx context.Context, params *portfolio.FindParams) ([]*portfolio.Item, error) {
	return s.repo.GetAll(ctx, params)
}

func (s *PortfolioService) GetByID(ctx context.Context, id uuid.UUID) (*portfolio.Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PortfolioService) FeaturedCount(ctx context.Context) (int64, error) {
	return s.repo.CountFeatured(ctx)
}

// checkFeaturedCapacity enforces the featured-items cap with a fresh
// count. The count and the subsequent write are not atomic: two
// concurrent requests can both pass with count = limit-1 and push the
// total over the cap. This is a known, documented limitation of the
// check, not a guarantee.
func (s *PortfolioService) checkFeaturedCapacity(ctx context.Context) error {
	count, err := s.repo.CountFeatured(ctx)
	if err != nil {
		return err
	}
	composables.UseTrace(ctx).Add("limit: %d of %d featured slots used", count, s.featuredLimit)
	if count >= int64(s.featuredLimit) {
		return serrors.NewLimitExceeded(fmt.Sprintf(
			"featured item limit of %d reached; unfeature another item before retrying",
			s.featuredLimit,
		))
	}
	return nil
}

func (s *PortfolioService) Create(ctx context.Context, item *portfolio.Item, userID string) (*portfolio.Item, error) {
	if item.IsFeatured() {
		if err := s.checkFeaturedCapacity(ctx); err != nil {
			return nil, err
		}
	}

	var created *portfolio.Item
	err := s.executor.Do(ctx, "portfolio.create", func(ctx context.Context) error {
		return composables.InTx(ctx, func(txCtx context.Context) error {
			result, err := s.repo.Create(txCtx, item)
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

	s.recorder.Record(ctx, activitylog.ActionCreate, portfolioEntity, created.ID().String(),
		fmt.Sprintf("portfolio item %q created", created.Title()), userID)
	s.publisher.Publish(&portfolio.CreatedEvent{UserID: userID, Result: created})
	return created, nil
}

func (s *PortfolioService) Update(ctx context.Context, item *portfolio.Item, userID string) (*portfolio.Item, error) {
	existing, err := s.repo.GetByID(ctx, item.ID())
	if err != nil {
		return nil, err
	}

	// The limit only applies when the change raises the featured count.
	if !existing.IsFeatured() && item.IsFeatured() {
		if err := s.checkFeaturedCapacity(ctx); err != nil {
			return nil, err
		}
	}

	var updated *portfolio.Item
	err = s.executor.Do(ctx, "portfolio.update", func(ctx context.Context) error {
		return composables.InTx(ctx, func(txCtx context.Context) error {
			result, err := s.repo.Update(txCtx, item)
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

	s.recorder.Record(ctx, activitylog.ActionUpdate, portfolioEntity, updated.ID().String(),
		fmt.Sprintf("portfolio item %q updated", updated.Title()), userID)
	s.publisher.Publish(&portfolio.UpdatedEvent{UserID: userID, Result: updated})
	return updated, nil
}

func (s *PortfolioService) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Not-found is terminal, never retried; only the delete statement
	// itself goes through the executor.
	err = s.executor.Do(ctx, "portfolio.delete", func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.recorder.Record(ctx, activitylog.ActionDelete, portfolioEntity, id.String(),
		fmt.Sprintf("portfolio item %q deleted", existing.Title()), userID)
	s.publisher.Publish(&portfolio.DeletedEvent{UserID: userID, ItemID: id, Title: existing.Title()})
	return nil
}
