package services

import (
	"context"

	"github.com/atelier-dourado/backoffice/modules/audit/domain/activitylog"
	"github.com/atelier-dourado/backoffice/pkg/composables"
)

type ActivityLogService struct {
	repo activitylog.Repository
}

func NewActivityLogService(repo activitylog.Repository) *ActivityLogService {
	return &ActivityLogService{repo: repo}
}

// Record appends an audit entry for an already-committed mutation. It
// is strictly best-effort: the parent operation has succeeded and must
// be reported as such, so any failure here is logged and traced but
// never returned.
func (s *ActivityLogService) Record(ctx context.Context, action activitylog.Action, entity, entityID, description, userID string) {
	entry := &activitylog.Entry{
		Action:      action,
		Entity:      entity,
		EntityID:    entityID,
		Description: description,
		UserID:      userID,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		composables.UseTrace(ctx).Add("audit: failed to record %s on %s/%s: %v", action, entity, entityID, err)
		composables.UseLogger(ctx).WithError(err).Warn("activity log write failed")
		return
	}
	composables.UseTrace(ctx).Add("audit: recorded %s on %s/%s", action, entity, entityID)
}

func (s *ActivityLogService) List(ctx context.Context, params *activitylog.FindParams) ([]*activitylog.Entry, int64, error) {
	entries, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, params)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
