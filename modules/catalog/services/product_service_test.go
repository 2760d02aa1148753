package services

import (
	"context"
	"testing"

	"github.com/atelier-dourado/backoffice/modules/audit/domain/activitylog"
	"github.com/atelier-dourado/backoffice/modules/catalog/domain/product"
	"github.com/atelier-dourado/backoffice/pkg/serrors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductRepo struct {
	products map[uuid.UUID]*product.Product
	byCode   map[string]*product.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		products: map[uuid.UUID]*product.Product{},
		byCode:   map[string]*product.Product{},
	}
}

func (r *fakeProductRepo) GetAll(context.Context, *product.FindParams) ([]*product.Product, error) {
	out := make([]*product.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*product.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) GetByCode(_ context.Context, code string) (*product.Product, error) {
	p, ok := r.byCode[code]
	if !ok {
		return nil, product.ErrNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) Create(_ context.Context, p *product.Product) (*product.Product, error) {
	r.products[p.ID()] = p
	if p.Code() != "" {
		r.byCode[p.Code()] = p
	}
	return p, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *product.Product) (*product.Product, error) {
	if _, ok := r.products[p.ID()]; !ok {
		return nil, product.ErrNotFound
	}
	r.products[p.ID()] = p
	return p, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.products[id]; !ok {
		return product.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func newProductFixture() (*ProductService, *fakeProductRepo, *fakeRecorder) {
	repo := newFakeProductRepo()
	recorder := &fakeRecorder{}
	service := NewProductService(repo, testExecutor(), recorder, quietBus())
	return service, repo, recorder
}

func TestProductService_Create(t *testing.T) {
	service, repo, recorder := newProductFixture()

	created, err := service.Create(testContext(), product.New("Anel", product.CategoryRings, product.WithCode("AN-001")), "admin-1")
	require.NoError(t, err)
	assert.Len(t, repo.products, 1)
	require.Len(t, recorder.entries, 1)
	assert.Equal(t, activitylog.ActionCreate, recorder.entries[0].action)
	assert.Equal(t, "Product", recorder.entries[0].entity)
	assert.Equal(t, created.ID().String(), recorder.entries[0].entityID)
}

func TestProductService_CreateDuplicateCode(t *testing.T) {
	service, _, recorder := newProductFixture()

	_, err := service.Create(testContext(), product.New("Anel", product.CategoryRings, product.WithCode("AN-001")), "admin-1")
	require.NoError(t, err)

	_, err = service.Create(testContext(), product.New("Outro anel", product.CategoryRings, product.WithCode("AN-001")), "admin-1")
	require.Error(t, err)
	assert.True(t, serrors.HasCode(err, serrors.CodeConflict))
	assert.Len(t, recorder.entries, 1, "the rejected create is not audited")
}

func TestProductService_CreateWithoutCodeSkipsConflictCheck(t *testing.T) {
	service, _, _ := newProductFixture()

	_, err := service.Create(testContext(), product.New("Colar", product.CategoryNecklaces), "admin-1")
	require.NoError(t, err)
	_, err = service.Create(testContext(), product.New("Outro colar", product.CategoryNecklaces), "admin-1")
	require.NoError(t, err)
}

func TestProductService_UpdateNotFound(t *testing.T) {
	service, _, _ := newProductFixture()
	_, err := service.Update(testContext(), product.New("Anel", product.CategoryRings), "admin-1")
	assert.ErrorIs(t, err, product.ErrNotFound)
}

func TestProductService_Delete(t *testing.T) {
	service, repo, recorder := newProductFixture()
	p := product.New("Anel", product.CategoryRings)
	repo.products[p.ID()] = p

	require.NoError(t, service.Delete(testContext(), p.ID(), "admin-1"))
	assert.Empty(t, repo.products)
	require.Len(t, recorder.entries, 1)
	assert.Equal(t, activitylog.ActionDelete, recorder.entries[0].action)
}
