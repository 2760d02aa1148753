package services

import (
	"context"
	"fmt"

	"github.com/atelier-dourado/backoffice/modules/audit/domain/activitylog"
	"github.com/atelier-dourado/backoffice/modules/site/domain/sitesettings"
	"github.com/atelier-dourado/backoffice/pkg/composables"
	"github.com/atelier-dourado/backoffice/pkg/dbretry"
)

const siteSettingEntity = "SiteSetting"

type SiteSettingsService struct {
	repo     sitesettings.Repository
	executor *dbretry.Executor
	recorder ActivityRecorder
}

func NewSiteSettingsService(
	repo sitesettings.Repository,
	executor *dbretry.Executor,
	recorder ActivityRecorder,
) *SiteSettingsService {
	return &SiteSettingsService{
		repo:     repo,
		executor: executor,
		recorder: recorder,
	}
}

func (s *SiteSettingsService) GetAll(ctx context.Context) ([]*sitesettings.Setting, error) {
	return s.repo.GetAll(ctx)
}

func (s *SiteSettingsService) GetByKey(ctx context.Context, key string) (*sitesettings.Setting, error) {
	return s.repo.GetByKey(ctx, key)
}

func (s *SiteSettingsService) Set(ctx context.Context, key, value, userID string) (*sitesettings.Setting, error) {
	var saved *sitesettings.Setting
	err := s.executor.Do(ctx, "sitesettings.set", func(ctx context.Context) error {
		return composables.InTx(ctx, func(txCtx context.Context) error {
			result, err := s.repo.Upsert(txCtx, &sitesettings.Setting{Key: key, Value: value})
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

	s.recorder.Record(ctx, activitylog.ActionUpdate, siteSettingEntity, key,
		fmt.Sprintf("site setting %q updated", key), userID)
	return saved, nil
}
