package dtos

import (
	"encoding/json"
	"testing"

	"github.com/atelier-dourado/backoffice/modules/catalog/domain/portfolio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreatePayload() string {
	return `{
		"title": "Aliança em ouro 18k",
		"category": "WEDDING_RINGS",
		"mainImage": "https://cdn.example.com/ring.jpg"
	}`
}

func TestCreatePortfolioDTO_Valid(t *testing.T) {
	dto := &CreatePortfolioDTO{}
	require.NoError(t, json.Unmarshal([]byte(validCreatePayload()), dto))

	fields, ok := dto.Ok()
	require.True(t, ok, "unexpected validation errors: %v", fields)

	item, err := dto.ToEntity()
	require.NoError(t, err)
	assert.Equal(t, "Aliança em ouro 18k", item.Title())
	assert.Equal(t, portfolio.CategoryWeddingRings, item.Category())
	assert.Equal(t, portfolio.StatusDraft, item.Status(), "status defaults to draft")
	assert.True(t, item.IsActive(), "items default to active")
	assert.False(t, item.IsFeatured())
	assert.Equal(t, 0, item.Order())
}

func TestCreatePortfolioDTO_CollectsAllViolations(t *testing.T) {
	dto := &CreatePortfolioDTO{}
	require.NoError(t, json.Unmarshal([]byte(`{
		"category": "POTTERY",
		"order": "-1"
	}`), dto))

	fields, ok := dto.Ok()
	require.False(t, ok)
	assert.Contains(t, fields, "Title")
	assert.Contains(t, fields, "Category")
	assert.Contains(t, fields, "MainImage")
	assert.Contains(t, fields, "Order")
}

func TestCreatePortfolioDTO_StringifiedFields(t *testing.T) {
	dto := &CreatePortfolioDTO{}
	require.NoError(t, json.Unmarshal([]byte(`{
		"title": "Banho de ouro",
		"category": "GOLD_PLATING",
		"mainImage": "https://cdn.example.com/plating.jpg",
		"isFeatured": "true",
		"order": "2",
		"images": "[\"a.jpg\", \"b.jpg\"]",
		"specifications": "{\"metal\": \"ouro 18k\"}"
	}`), dto))

	fields, ok := dto.Ok()
	require.True(t, ok, "unexpected validation errors: %v", fields)

	item, err := dto.ToEntity()
	require.NoError(t, err)
	assert.True(t, item.IsFeatured())
	assert.Equal(t, 2, item.Order())
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, item.Images())
	assert.Equal(t, map[string]string{"metal": "ouro 18k"}, item.Specifications())
}

func TestCreatePortfolioDTO_RejectsBadProductID(t *testing.T) {
	dto := &CreatePortfolioDTO{}
	require.NoError(t, json.Unmarshal([]byte(`{
		"title": "Anel",
		"category": "CUSTOM_JEWELRY",
		"mainImage": "https://cdn.example.com/ring.jpg",
		"productId": "not-a-uuid"
	}`), dto))

	_, ok := dto.Ok()
	assert.False(t, ok)
}

func TestUpdatePortfolioDTO_PartialMerge(t *testing.T) {
	existing := portfolio.New(
		"Original",
		portfolio.CategoryWeddingRings,
		"main.jpg",
		portfolio.WithDescription("old description"),
		portfolio.WithOrder(5),
	)

	dto := &UpdatePortfolioDTO{}
	require.NoError(t, json.Unmarshal([]byte(`{"title": "Renamed"}`), dto))
	fields, ok := dto.Ok()
	require.True(t, ok, "unexpected validation errors: %v", fields)

	merged, err := dto.Apply(existing)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", merged.Title())
	assert.Equal(t, "old description", merged.Description(), "absent fields keep their values")
	assert.Equal(t, 5, merged.Order())
	assert.Equal(t, existing.ID(), merged.ID())
}

func TestUpdatePortfolioDTO_RejectsInvalidStatus(t *testing.T) {
	dto := &UpdatePortfolioDTO{}
	require.NoError(t, json.Unmarshal([]byte(`{"status": "LIVE"}`), dto))
	fields, ok := dto.Ok()
	require.False(t, ok)
	assert.Contains(t, fields, "Status")
}

func TestCreateProductDTO_Valid(t *testing.T) {
	dto := &CreateProductDTO{}
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": "Anel solitário",
		"category": "RINGS",
		"price": 1250.50,
		"code": "AN-001"
	}`), dto))

	fields, ok := dto.Ok()
	require.True(t, ok, "unexpected validation errors: %v", fields)

	p := dto.ToEntity()
	assert.Equal(t, "Anel solitário", p.Name())
	assert.True(t, p.IsActive())
	require.NotNil(t, p.Price())
	assert.InDelta(t, 1250.50, *p.Price(), 0.001)
}

func TestCreateProductDTO_RejectsUnknownCategory(t *testing.T) {
	dto := &CreateProductDTO{}
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Colar", "category": "CHAINS"}`), dto))
	fields, ok := dto.Ok()
	require.False(t, ok)
	assert.Contains(t, fields, "Category")
}
