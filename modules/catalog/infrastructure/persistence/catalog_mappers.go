package persistence

import (
	"encoding/json"

	"github.com/atelier-dourado/backoffice/modules/catalog/domain/portfolio"
	"github.com/atelier-dourado/backoffice/modules/catalog/domain/product"
	"github.com/atelier-dourado/backoffice/modules/catalog/infrastructure/persistence/models"
	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

func marshalStrings(values []string) ([]byte, error) {
	if values == nil {
		values = []string{}
	}
	return json.Marshal(values)
}

func unmarshalStrings(data []byte) ([]string, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return values, nil
}

func toDBPortfolioItem(item *portfolio.Item) (*models.PortfolioItem, error) {
	images, err := marshalStrings(item.Images())
	if err != nil {
		return nil, errors.Wrap(err, "marshal images")
	}
	keywords, err := marshalStrings(item.Keywords())
	if err != nil {
		return nil, errors.Wrap(err, "marshal keywords")
	}
	related, err := marshalStrings(item.RelatedProjects())
	if err != nil {
		return nil, errors.Wrap(err, "marshal related projects")
	}
	specs := item.Specifications()
	if specs == nil {
		specs = map[string]string{}
	}
	specsJSON, err := json.Marshal(specs)
	if err != nil {
		return nil, errors.Wrap(err, "marshal specifications")
	}

	var productID *string
	if item.ProductID() != nil {
		s := item.ProductID().String()
		productID = &s
	}

	return &models.PortfolioItem{
		ID:                  item.ID().String(),
		Title:               item.Title(),
		Description:         item.Description(),
		DetailedDescription: item.DetailedDescription(),
		Category:            string(item.Category()),
		CustomCategory:      item.CustomCategory(),
		MainImage:           item.MainImage(),
		Images:              images,
		IsActive:            item.IsActive(),
		IsFeatured:          item.IsFeatured(),
		Status:              string(item.Status()),
		Order:               item.Order(),
		Specifications:      specsJSON,
		SEOTitle:            item.SEOTitle(),
		SEODescription:      item.SEODescription(),
		Keywords:            keywords,
		RelatedProjects:     related,
		ProductID:           productID,
		CreatedAt:           item.CreatedAt(),
		UpdatedAt:           item.UpdatedAt(),
	}, nil
}

func toDomainPortfolioItem(row *models.PortfolioItem) (*portfolio.Item, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, errors.Wrap(err, "parse portfolio item id")
	}
	images, err := unmarshalStrings(row.Images)
	if err != nil {
		return nil, errors.Wrap(err, "unmarshal images")
	}
	keywords, err := unmarshalStrings(row.Keywords)
	if err != nil {
		return nil, errors.Wrap(err, "unmarshal keywords")
	}
	related, err := unmarshalStrings(row.RelatedProjects)
	if err != nil {
		return nil, errors.Wrap(err, "unmarshal related projects")
	}
	var specs map[string]string
	if len(row.Specifications) > 0 {
		if err := json.Unmarshal(row.Specifications, &specs); err != nil {
			return nil, errors.Wrap(err, "unmarshal specifications")
		}
	}
	var productID *uuid.UUID
	if row.ProductID != nil {
		parsed, err := uuid.Parse(*row.ProductID)
		if err != nil {
			return nil, errors.Wrap(err, "parse product id")
		}
		productID = &parsed
	}

	return portfolio.New(
		row.Title,
		portfolio.Category(row.Category),
		row.MainImage,
		portfolio.WithID(id),
		portfolio.WithDescription(row.Description),
		portfolio.WithDetailedDescription(row.DetailedDescription),
		portfolio.WithCustomCategory(row.CustomCategory),
		portfolio.WithImages(images),
		portfolio.WithIsActive(row.IsActive),
		portfolio.WithIsFeatured(row.IsFeatured),
		portfolio.WithStatus(portfolio.Status(row.Status)),
		portfolio.WithOrder(row.Order),
		portfolio.WithSpecifications(specs),
		portfolio.WithSEO(row.SEOTitle, row.SEODescription),
		portfolio.WithKeywords(keywords),
		portfolio.WithRelatedProjects(related),
		portfolio.WithProductID(productID),
		portfolio.WithTimestamps(row.CreatedAt, row.UpdatedAt),
	), nil
}

func toDBProduct(p *product.Product) (*models.Product, error) {
	images, err := marshalStrings(p.Images())
	if err != nil {
		return nil, errors.Wrap(err, "marshal images")
	}
	var code *string
	if p.Code() != "" {
		c := p.Code()
		code = &c
	}
	return &models.Product{
		ID:              p.ID().String(),
		Name:            p.Name(),
		Description:     p.Description(),
		Price:           p.Price(),
		Category:        string(p.Category()),
		IsActive:        p.IsActive(),
		IsReadyDelivery: p.IsReadyDelivery(),
		MainImage:       p.MainImage(),
		Images:          images,
		Stock:           p.Stock(),
		Weight:          p.Weight(),
		Material:        p.Material(),
		Size:            p.Size(),
		Code:            code,
		CreatedAt:       p.CreatedAt(),
		UpdatedAt:       p.UpdatedAt(),
	}, nil
}

func toDomainProduct(row *models.Product) (*product.Product, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, errors.Wrap(err, "parse product id")
	}
	images, err := unmarshalStrings(row.Images)
	if err != nil {
		return nil, errors.Wrap(err, "unmarshal images")
	}
	code := ""
	if row.Code != nil {
		code = *row.Code
	}
	return product.New(
		row.Name,
		product.Category(row.Category),
		product.WithID(id),
		product.WithDescription(row.Description),
		product.WithPrice(row.Price),
		product.WithIsActive(row.IsActive),
		product.WithIsReadyDelivery(row.IsReadyDelivery),
		product.WithMainImage(row.MainImage),
		product.WithImages(images),
		product.WithStock(row.Stock),
		product.WithWeight(row.Weight),
		product.WithMaterial(row.Material),
		product.WithSize(row.Size),
		product.WithCode(code),
		product.WithTimestamps(row.CreatedAt, row.UpdatedAt),
	), nil
}
