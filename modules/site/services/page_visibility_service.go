package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/atelier-dourado/backoffice/modules/audit/domain/activitylog"
	"github.com/atelier-dourado/backoffice/modules/site/domain/pagevisibility"
	"github.com/atelier-dourado/backoffice/pkg/composables"
	"github.com/atelier-dourado/backoffice/pkg/dbretry"
)

// ActivityRecorder is the best-effort audit hook. Implementations must
// never fail the calling operation.
type ActivityRecorder interface {
	Record(ctx context.Context, action activitylog.Action, entity, entityID, description, userID string)
}

const pageVisibilityEntity = "PageVisibility"

type PageVisibilityService struct {
	repo     pagevisibility.Repository
	executor *dbretry.Executor
	recorder ActivityRecorder
}

func NewPageVisibilityService(
	repo pagevisibility.Repository,
	executor *dbretry.Executor,
	recorder ActivityRecorder,
) *PageVisibilityService {
	return &PageVisibilityService{
		repo:     repo,
		executor: executor,
		recorder: recorder,
	}
}

func (s *PageVisibilityService) GetAll(ctx context.Context) ([]*pagevisibility.Page, error) {
	return s.repo.GetAll(ctx)
}

// Check reports whether a storefront page is visible. It fails open: a
// missing row or a backend error never hides a page, because hiding the
// storefront over an infrastructure hiccup is worse than briefly showing
// a page an admin meant to hide.
func (s *PageVisibilityService) Check(ctx context.Context, slug string) bool {
	page, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if !errors.Is(err, pagevisibility.ErrNotFound) {
			composables.UseTrace(ctx).Add("visibility: check for %q failed open: %v", slug, err)
			composables.UseLogger(ctx).WithError(err).WithField("slug", slug).Warn("page visibility check failed open")
		}
		return true
	}
	return page.IsVisible
}

func (s *PageVisibilityService) Set(ctx context.Context, slug string, visible bool, userID string) (*pagevisibility.Page, error) {
	var saved *pagevisibility.Page
	err := s.executor.Do(ctx, "pagevisibility.set", func(ctx context.Context) error {
		return composables.InTx(ctx, func(txCtx context.Context) error {
			result, err := s.repo.Upsert(txCtx, &pagevisibility.Page{Slug: slug, IsVisible: visible})
			if err != nil {
				return err
			}
			saved = result
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, activitylog.ActionUpdate, pageVisibilityEntity, slug,
		fmt.Sprintf("page %q visibility set to %t", slug, visible), userID)
	return saved, nil
}
