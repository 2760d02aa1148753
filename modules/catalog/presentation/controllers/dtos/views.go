package dtos

import (
	"time"

	"github.com/atelier-dourado/backoffice/modules/catalog/domain/portfolio"
	"github.com/atelier-dourado/backoffice/modules/catalog/domain/product"
)

type PortfolioItemView struct {
	ID                  string            `json:"id"`
	Title               string            `json:"title"`
	Description         string            `json:"description"`
	DetailedDescription string            `json:"detailedDescription"`
	Category            string            `json:"category"`
	CustomCategory      string            `json:"customCategory,omitempty"`
	MainImage           string            `json:"mainImage"`
	Images              []string          `json:"images"`
	IsActive            bool              `json:"isActive"`
	IsFeatured          bool              `json:"isFeatured"`
	Status              string            `json:"status"`
	Order               int               `json:"order"`
	Specifications      map[string]string `json:"specifications,omitempty"`
	SEOTitle            string            `json:"seoTitle,omitempty"`
	SEODescription      string            `json:"seoDescription,omitempty"`
	Keywords            []string          `json:"keywords,omitempty"`
	RelatedProjects     []string          `json:"relatedProjects,omitempty"`
	ProductID           *string           `json:"productId,omitempty"`
	CreatedAt           time.Time         `json:"createdAt"`
	UpdatedAt           time.Time         `json:"updatedAt"`
}

func PortfolioItemToView(item *portfolio.Item) *PortfolioItemView {
	var productID *string
	if item.ProductID() != nil {
		s := item.ProductID().String()
		productID = &s
	}
	images := item.Images()
	if images == nil {
		images = []string{}
	}
	return &PortfolioItemView{
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
		Specifications:      item.Specifications(),
		SEOTitle:            item.SEOTitle(),
		SEODescription:      item.SEODescription(),
		Keywords:            item.Keywords(),
		RelatedProjects:     item.RelatedProjects(),
		ProductID:           productID,
		CreatedAt:           item.CreatedAt(),
		UpdatedAt:           item.UpdatedAt(),
	}
}

func PortfolioItemsToViews(items []*portfolio.Item) []*PortfolioItemView {
	views := make([]*PortfolioItemView, 0, len(items))
	for _, item := range items {
		views = append(views, PortfolioItemToView(item))
	}
	return views
}

type ProductView struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           *float64  `json:"price,omitempty"`
	Category        string    `json:"category"`
	IsActive        bool      `json:"isActive"`
	IsReadyDelivery bool      `json:"isReadyDelivery"`
	MainImage       string    `json:"mainImage"`
	Images          []string  `json:"images"`
	Stock           int       `json:"stock"`
	Weight          *float64  `json:"weight,omitempty"`
	Material        string    `json:"material,omitempty"`
	Size            string    `json:"size,omitempty"`
	Code            string    `json:"code,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func ProductToView(p *product.Product) *ProductView {
	images := p.Images()
	if images == nil {
		images = []string{}
	}
	return &ProductView{
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
		Code:            p.Code(),
		CreatedAt:       p.CreatedAt(),
		UpdatedAt:       p.UpdatedAt(),
	}
}

func ProductsToViews(products []*product.Product) []*ProductView {
	views := make([]*ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, ProductToView(p))
	}
	return views
}
