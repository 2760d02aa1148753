package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atelier-dourado/backoffice/modules/audit/domain/activitylog"
	"github.com/atelier-dourado/backoffice/modules/site/domain/pagevisibility"
	"github.com/atelier-dourado/backoffice/pkg/composables"
	"github.com/atelier-dourado/backoffice/pkg/configuration"
	"github.com/atelier-dourado/backoffice/pkg/dbretry"
	"github.com/atelier-dourado/backoffice/pkg/repo"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTx struct{}

func (stubTx) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (stubTx) Query(context.Context, string, ...any) (pgx.Rows, error) { return nil, nil }
func (stubTx) QueryRow(context.Context, string, ...any) pgx.Row        { return nil }

var _ repo.Tx = stubTx{}

type fakePageRepo struct {
	pages  map[string]*pagevisibility.Page
	getErr error
}

func newFakePageRepo() *fakePageRepo {
	return &fakePageRepo{pages: map[string]*pagevisibility.Page{}}
}

func (r *fakePageRepo) GetAll(context.Context) ([]*pagevisibility.Page, error) {
	out := make([]*pagevisibility.Page, 0, len(r.pages))
	for _, page := range r.pages {
		out = append(out, page)
	}
	return out, nil
}

func (r *fakePageRepo) GetBySlug(_ context.Context, slug string) (*pagevisibility.Page, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	page, ok := r.pages[slug]
	if !ok {
		return nil, pagevisibility.ErrNotFound
	}
	return page, nil
}

func (r *fakePageRepo) Upsert(_ context.Context, page *pagevisibility.Page) (*pagevisibility.Page, error) {
	saved := &pagevisibility.Page{Slug: page.Slug, IsVisible: page.IsVisible, UpdatedAt: time.Now()}
	r.pages[page.Slug] = saved
	return saved, nil
}

type noopRecorder struct {
	entries int
}

func (r *noopRecorder) Record(context.Context, activitylog.Action, string, string, string, string) {
	r.entries++
}

func newVisibilityFixture() (*PageVisibilityService, *fakePageRepo, *noopRecorder) {
	repo := newFakePageRepo()
	recorder := &noopRecorder{}
	executor := dbretry.NewExecutor(configuration.RetryOptions{
		MaxAttempts:  2,
		InitialDelay: time.Millisecond,
	})
	return NewPageVisibilityService(repo, executor, recorder), repo, recorder
}

func txContext() context.Context {
	return composables.WithTx(context.Background(), stubTx{})
}

func TestPageVisibilityService_CheckHiddenPage(t *testing.T) {
	service, repo, _ := newVisibilityFixture()
	repo.pages["portfolio"] = &pagevisibility.Page{Slug: "portfolio", IsVisible: false}

	assert.False(t, service.Check(context.Background(), "portfolio"))
}

func TestPageVisibilityService_CheckUnknownPageDefaultsVisible(t *testing.T) {
	service, _, _ := newVisibilityFixture()
	assert.True(t, service.Check(context.Background(), "never-configured"))
}

func TestPageVisibilityService_CheckFailsOpen(t *testing.T) {
	service, repo, _ := newVisibilityFixture()
	repo.getErr = errors.New("connection refused")

	assert.True(t, service.Check(context.Background(), "portfolio"),
		"a backend error must never hide the storefront")
}

func TestPageVisibilityService_Set(t *testing.T) {
	service, repo, recorder := newVisibilityFixture()

	page, err := service.Set(txContext(), "portfolio", false, "admin-1")
	require.NoError(t, err)
	assert.False(t, page.IsVisible)
	assert.False(t, repo.pages["portfolio"].IsVisible)
	assert.Equal(t, 1, recorder.entries)
}
