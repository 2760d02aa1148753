package dtos

import (
	"github.com/atelier-dourado/backoffice/modules/catalog/domain/portfolio"
	"github.com/atelier-dourado/backoffice/pkg/constants"
	"github.com/google/uuid"
)

type CreatePortfolioDTO struct {
	Title               string     `json:"title" validate:"required,max=200"`
	Description         string     `json:"description" validate:"omitempty,max=2000"`
	DetailedDescription string     `json:"detailedDescription" validate:"omitempty,max=10000"`
	Category            string     `json:"category" validate:"required,oneof=WEDDING_RINGS REPAIRS_BEFORE_AFTER GOLD_PLATING CUSTOM_JEWELRY GRADUATION_RINGS"`
	CustomCategory      string     `json:"customCategory" validate:"omitempty,max=100"`
	MainImage           string     `json:"mainImage" validate:"required"`
	Images              StringList `json:"images"`
	IsActive            *FlexBool  `json:"isActive"`
	IsFeatured          FlexBool   `json:"isFeatured"`
	Status              string     `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED FEATURED ARCHIVED"`
	Order               FlexInt    `json:"order" validate:"gte=0"`
	Specifications      StringMap  `json:"specifications"`
	SEOTitle            string     `json:"seoTitle" validate:"omitempty,max=200"`
	SEODescription      string     `json:"seoDescription" validate:"omitempty,max=500"`
	Keywords            StringList `json:"keywords"`
	RelatedProjects     StringList `json:"relatedProjects"`
	ProductID           string     `json:"productId" validate:"omitempty,uuid"`
}

func (dto *CreatePortfolioDTO) Ok() (map[string]string, bool) {
	errorMessages := messages(constants.Validate.Struct(dto))
	return errorMessages, len(errorMessages) == 0
}

func (dto *CreatePortfolioDTO) ToEntity() (*portfolio.Item, error) {
	var productID *uuid.UUID
	if dto.ProductID != "" {
		parsed, err := uuid.Parse(dto.ProductID)
		if err != nil {
			return nil, err
		}
		productID = &parsed
	}

	status := portfolio.StatusDraft
	if dto.Status != "" {
		status = portfolio.Status(dto.Status)
	}
	isActive := true
	if dto.IsActive != nil {
		isActive = bool(*dto.IsActive)
	}

	return portfolio.New(
		dto.Title,
		portfolio.Category(dto.Category),
		dto.MainImage,
		portfolio.WithDescription(dto.Description),
		portfolio.WithDetailedDescription(dto.DetailedDescription),
		portfolio.WithCustomCategory(dto.CustomCategory),
		portfolio.WithImages(dto.Images),
		portfolio.WithIsActive(isActive),
		portfolio.WithIsFeatured(bool(dto.IsFeatured)),
		portfolio.WithStatus(status),
		portfolio.WithOrder(int(dto.Order)),
		portfolio.WithSpecifications(dto.Specifications),
		portfolio.WithSEO(dto.SEOTitle, dto.SEODescription),
		portfolio.WithKeywords(dto.Keywords),
		portfolio.WithRelatedProjects(dto.RelatedProjects),
		portfolio.WithProductID(productID),
	), nil
}

type UpdatePortfolioDTO struct {
	Title               *string     `json:"title" validate:"omitempty,min=1,max=200"`
	Description         *string     `json:"description" validate:"omitempty,max=2000"`
	DetailedDescription *string     `json:"detailedDescription" validate:"omitempty,max=10000"`
	Category            *string     `json:"category" validate:"omitempty,oneof=WEDDING_RINGS REPAIRS_BEFORE_AFTER GOLD_PLATING CUSTOM_JEWELRY GRADUATION_RINGS"`
	CustomCategory      *string     `json:"customCategory" validate:"omitempty,max=100"`
	MainImage           *string     `json:"mainImage" validate:"omitempty,min=1"`
	Images              *StringList `json:"images"`
	IsActive            *FlexBool   `json:"isActive"`
	IsFeatured          *FlexBool   `json:"isFeatured"`
	Status              *string     `json:"status" validate:"omitempty,oneof=DRAFT PUBLISHED FEATURED ARCHIVED"`
	Order               *FlexInt    `json:"order" validate:"omitempty,gte=0"`
	Specifications      *StringMap  `json:"specifications"`
	SEOTitle            *string     `json:"seoTitle" validate:"omitempty,max=200"`
	SEODescription      *string     `json:"seoDescription" validate:"omitempty,max=500"`
	Keywords            *StringList `json:"keywords"`
	RelatedProjects     *StringList `json:"relatedProjects"`
	ProductID           *string     `json:"productId" validate:"omitempty,uuid"`
}

func (dto *UpdatePortfolioDTO) Ok() (map[string]string, bool) {
	errorMessages := messages(constants.Validate.Struct(dto))
	return errorMessages, len(errorMessages) == 0
}

// Apply merges the provided fields over the existing item, returning a
// new entity. Absent fields keep their current values.
func (dto *UpdatePortfolioDTO) Apply(existing *portfolio.Item) (*portfolio.Item, error) {
	title := existing.Title()
	if dto.Title != nil {
		title = *dto.Title
	}
	category := existing.Category()
	if dto.Category != nil {
		category = portfolio.Category(*dto.Category)
	}
	mainImage := existing.MainImage()
	if dto.MainImage != nil {
		mainImage = *dto.MainImage
	}

	description := existing.Description()
	if dto.Description != nil {
		description = *dto.Description
	}
	detailed := existing.DetailedDescription()
	if dto.DetailedDescription != nil {
		detailed = *dto.DetailedDescription
	}
	customCategory := existing.CustomCategory()
	if dto.CustomCategory != nil {
		customCategory = *dto.CustomCategory
	}
	images := existing.Images()
	if dto.Images != nil {
		images = *dto.Images
	}
	isActive := existing.IsActive()
	if dto.IsActive != nil {
		isActive = bool(*dto.IsActive)
	}
	isFeatured := existing.IsFeatured()
	if dto.IsFeatured != nil {
		isFeatured = bool(*dto.IsFeatured)
	}
	status := existing.Status()
	if dto.Status != nil {
		status = portfolio.Status(*dto.Status)
	}
	order := existing.Order()
	if dto.Order != nil {
		order = int(*dto.Order)
	}
	specs := existing.Specifications()
	if dto.Specifications != nil {
		specs = *dto.Specifications
	}
	seoTitle := existing.SEOTitle()
	if dto.SEOTitle != nil {
		seoTitle = *dto.SEOTitle
	}
	seoDescription := existing.SEODescription()
	if dto.SEODescription != nil {
		seoDescription = *dto.SEODescription
	}
	keywords := existing.Keywords()
	if dto.Keywords != nil {
		keywords = *dto.Keywords
	}
	related := existing.RelatedProjects()
	if dto.RelatedProjects != nil {
		related = *dto.RelatedProjects
	}
	productID := existing.ProductID()
	if dto.ProductID != nil {
		if *dto.ProductID == "" {
			productID = nil
		} else {
			parsed, err := uuid.Parse(*dto.ProductID)
			if err != nil {
				return nil, err
			}
			productID = &parsed
		}
	}

	return portfolio.New(
		title,
		category,
		mainImage,
		portfolio.WithID(existing.ID()),
		portfolio.WithDescription(description),
		portfolio.WithDetailedDescription(detailed),
		portfolio.WithCustomCategory(customCategory),
		portfolio.WithImages(images),
		portfolio.WithIsActive(isActive),
		portfolio.WithIsFeatured(isFeatured),
		portfolio.WithStatus(status),
		portfolio.WithOrder(order),
		portfolio.WithSpecifications(specs),
		portfolio.WithSEO(seoTitle, seoDescription),
		portfolio.WithKeywords(keywords),
		portfolio.WithRelatedProjects(related),
		portfolio.WithProductID(productID),
		portfolio.WithTimestamps(existing.CreatedAt(), existing.UpdatedAt()),
	), nil
}
