package services

import (
	"context"
	"errors"
	"testing"

	"github.com/atelier-dourado/backoffice/modules/audit/domain/activitylog"
	"github.com/atelier-dourado/backoffice/pkg/composables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeActivityLogRepo struct {
	entries   []*activitylog.Entry
	createErr error
}

func (r *fakeActivityLogRepo) Create(_ context.Context, entry *activitylog.Entry) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeActivityLogRepo) List(context.Context, *activitylog.FindParams) ([]*activitylog.Entry, error) {
	return r.entries, nil
}

func (r *fakeActivityLogRepo) Count(context.Context, *activitylog.FindParams) (int64, error) {
	return int64(len(r.entries)), nil
}

func TestActivityLogService_Record(t *testing.T) {
	repo := &fakeActivityLogRepo{}
	service := NewActivityLogService(repo)

	service.Record(context.Background(), activitylog.ActionCreate, "PortfolioItem", "id-1", "created", "admin-1")

	require.Len(t, repo.entries, 1)
	assert.Equal(t, activitylog.ActionCreate, repo.entries[0].Action)
	assert.Equal(t, "admin-1", repo.entries[0].UserID)
}

func TestActivityLogService_RecordFailureIsSwallowed(t *testing.T) {
	repo := &fakeActivityLogRepo{createErr: errors.New("insert failed")}
	service := NewActivityLogService(repo)

	trace := composables.NewTrace()
	ctx := composables.WithTrace(context.Background(), trace)

	assert.NotPanics(t, func() {
		service.Record(ctx, activitylog.ActionDelete, "Product", "id-2", "deleted", "admin-1")
	})

	entries := trace.Entries()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0], "failed to record")
}

func TestActivityLogService_List(t *testing.T) {
	repo := &fakeActivityLogRepo{}
	service := NewActivityLogService(repo)
	service.Record(context.Background(), activitylog.ActionCreate, "PortfolioItem", "id-1", "created", "admin-1")
	service.Record(context.Background(), activitylog.ActionUpdate, "PortfolioItem", "id-1", "updated", "admin-1")

	entries, total, err := service.List(context.Background(), &activitylog.FindParams{})
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, int64(2), total)
}
