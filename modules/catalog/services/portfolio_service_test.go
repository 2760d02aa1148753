package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/atelier-dourado/backoffice/modules/audit/domain/activitylog"
	"github.com/atelier-dourado/backoffice/modules/catalog/domain/portfolio"
	"github.com/atelier-dourado/backoffice/pkg/composables"
	"github.com/atelier-dourado/backoffice/pkg/configuration"
	"github.com/atelier-dourado/backoffice/pkg/dbretry"
	"github.com/atelier-dourado/backoffice/pkg/eventbus"
	"github.com/atelier-dourado/backoffice/pkg/repo"
	"github.com/atelier-dourado/backoffice/pkg/serrors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTx satisfies repo.Tx so InTx joins it instead of opening a real
// transaction; the fake repositories never touch it.
type stubTx struct{}

func (stubTx) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (stubTx) Query(context.Context, string, ...any) (pgx.Rows, error) { return nil, nil }
func (stubTx) QueryRow(context.Context, string, ...any) pgx.Row        { return nil }

var _ repo.Tx = stubTx{}

type fakePortfolioRepo struct {
	items         map[uuid.UUID]*portfolio.Item
	featuredCount int64
	createErrs    []error
	createCalls   int
}

func newFakePortfolioRepo() *fakePortfolioRepo {
	return &fakePortfolioRepo{items: map[uuid.UUID]*portfolio.Item{}}
}

func (r *fakePortfolioRepo) GetAll(context.Context, *portfolio.FindParams) ([]*portfolio.Item, error) {
	out := make([]*portfolio.Item, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	return out, nil
}

func (r *fakePortfolioRepo) GetByID(_ context.Context, id uuid.UUID) (*portfolio.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, portfolio.ErrNotFound
	}
	return item, nil
}

func (r *fakePortfolioRepo) CountFeatured(context.Context) (int64, error) {
	return r.featuredCount, nil
}

func (r *fakePortfolioRepo) Create(_ context.Context, item *portfolio.Item) (*portfolio.Item, error) {
	r.createCalls++
	if len(r.createErrs) > 0 {
		err := r.createErrs[0]
		r.createErrs = r.createErrs[1:]
		return nil, err
	}
	r.items[item.ID()] = item
	return item, nil
}

func (r *fakePortfolioRepo) Update(_ context.Context, item *portfolio.Item) (*portfolio.Item, error) {
	if _, ok := r.items[item.ID()]; !ok {
		return nil, portfolio.ErrNotFound
	}
	r.items[item.ID()] = item
	return item, nil
}

func (r *fakePortfolioRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return portfolio.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type recordedEntry struct {
	action   activitylog.Action
	entity   string
	entityID string
	userID   string
}

type fakeRecorder struct {
	entries []recordedEntry
}

func (r *fakeRecorder) Record(_ context.Context, action activitylog.Action, entity, entityID, _, userID string) {
	r.entries = append(r.entries, recordedEntry{action: action, entity: entity, entityID: entityID, userID: userID})
}

func quietBus() eventbus.EventBus {
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	return eventbus.NewEventPublisher(log)
}

func testExecutor() *dbretry.Executor {
	return dbretry.NewExecutor(configuration.RetryOptions{
		MaxAttempts:   3,
		InitialDelay:  time.Millisecond,
		MaxTotalDelay: 10 * time.Millisecond,
	})
}

func testContext() context.Context {
	return composables.WithTx(context.Background(), stubTx{})
}

func newPortfolioFixture(featuredLimit int) (*PortfolioService, *fakePortfolioRepo, *fakeRecorder) {
	repo := newFakePortfolioRepo()
	recorder := &fakeRecorder{}
	service := NewPortfolioService(repo, testExecutor(), recorder, quietBus(), featuredLimit)
	return service, repo, recorder
}

func draftItem(opts ...portfolio.Option) *portfolio.Item {
	return portfolio.New("Aliança", portfolio.CategoryWeddingRings, "main.jpg", opts...)
}

func TestPortfolioService_Create(t *testing.T) {
	service, repo, recorder := newPortfolioFixture(3)

	created, err := service.Create(testContext(), draftItem(), "admin-1")
	require.NoError(t, err)
	assert.Len(t, repo.items, 1)

	require.Len(t, recorder.entries, 1)
	assert.Equal(t, activitylog.ActionCreate, recorder.entries[0].action)
	assert.Equal(t, "PortfolioItem", recorder.entries[0].entity)
	assert.Equal(t, created.ID().String(), recorder.entries[0].entityID)
	assert.Equal(t, "admin-1", recorder.entries[0].userID)
}

func TestPortfolioService_CreateFeaturedAtLimit(t *testing.T) {
	service, repo, recorder := newPortfolioFixture(3)
	repo.featuredCount = 3

	_, err := service.Create(testContext(), draftItem(portfolio.WithIsFeatured(true)), "admin-1")
	require.Error(t, err)
	assert.True(t, serrors.HasCode(err, serrors.CodeLimitExceeded))
	assert.Zero(t, repo.createCalls, "limit check must run before persistence")
	assert.Empty(t, recorder.entries, "rejected mutations are not audited")
}

func TestPortfolioService_CreateFeaturedBelowLimit(t *testing.T) {
	service, repo, _ := newPortfolioFixture(3)
	repo.featuredCount = 2

	_, err := service.Create(testContext(), draftItem(portfolio.WithIsFeatured(true)), "admin-1")
	require.NoError(t, err)
}

func TestPortfolioService_CreateRetriesTransientErrors(t *testing.T) {
	service, repo, _ := newPortfolioFixture(3)
	repo.createErrs = []error{&pgconn.PgError{Code: "42P05", Message: "prepared statement already exists"}}

	_, err := service.Create(testContext(), draftItem(), "admin-1")
	require.NoError(t, err)
	assert.Equal(t, 2, repo.createCalls)
}

func TestPortfolioService_CreateDoesNotRetryConstraintViolations(t *testing.T) {
	service, repo, _ := newPortfolioFixture(3)
	repo.createErrs = []error{
		&pgconn.PgError{Code: "23505", Message: "duplicate key"},
		&pgconn.PgError{Code: "23505", Message: "duplicate key"},
	}

	_, err := service.Create(testContext(), draftItem(), "admin-1")
	require.Error(t, err)
	assert.Equal(t, 1, repo.createCalls)
}

func TestPortfolioService_UpdateNotFound(t *testing.T) {
	service, _, _ := newPortfolioFixture(3)
	_, err := service.Update(testContext(), draftItem(), "admin-1")
	assert.ErrorIs(t, err, portfolio.ErrNotFound)
}

func TestPortfolioService_UpdateFeatureAtLimit(t *testing.T) {
	service, repo, _ := newPortfolioFixture(3)
	existing := draftItem()
	repo.items[existing.ID()] = existing
	repo.featuredCount = 3

	updated := draftItem(portfolio.WithID(existing.ID()), portfolio.WithIsFeatured(true))
	_, err := service.Update(testContext(), updated, "admin-1")
	require.Error(t, err)
	assert.True(t, serrors.HasCode(err, serrors.CodeLimitExceeded))
}

func TestPortfolioService_UpdateAlreadyFeaturedSkipsLimit(t *testing.T) {
	service, repo, _ := newPortfolioFixture(3)
	existing := draftItem(portfolio.WithIsFeatured(true))
	repo.items[existing.ID()] = existing
	repo.featuredCount = 3

	updated := draftItem(portfolio.WithID(existing.ID()), portfolio.WithIsFeatured(true))
	_, err := service.Update(testContext(), updated, "admin-1")
	require.NoError(t, err, "staying featured does not raise the count")
}

func TestPortfolioService_Delete(t *testing.T) {
	service, repo, recorder := newPortfolioFixture(3)
	existing := draftItem()
	repo.items[existing.ID()] = existing

	require.NoError(t, service.Delete(testContext(), existing.ID(), "admin-1"))
	assert.Empty(t, repo.items)
	require.Len(t, recorder.entries, 1)
	assert.Equal(t, activitylog.ActionDelete, recorder.entries[0].action)
}

func TestPortfolioService_DeleteNotFound(t *testing.T) {
	service, _, recorder := newPortfolioFixture(3)
	err := service.Delete(testContext(), uuid.New(), "admin-1")
	assert.ErrorIs(t, err, portfolio.ErrNotFound)
	assert.Empty(t, recorder.entries)
}
