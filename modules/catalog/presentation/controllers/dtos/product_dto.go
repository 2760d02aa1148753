package dtos

import (
	"github.com/atelier-dourado/backoffice/modules/catalog/domain/product"
	"github.com/atelier-dourado/backoffice/pkg/constants"
)

type CreateProductDTO struct {
	Name            string     `json:"name" validate:"required,max=200"`
	Description     string     `json:"description" validate:"omitempty,max=2000"`
	Price           *float64   `json:"price" validate:"omitempty,gte=0"`
	Category        string     `json:"category" validate:"required,oneof=JEWELRY RINGS NECKLACES EARRINGS BRACELETS WATCHES ACCESSORIES"`
	IsActive        *FlexBool  `json:"isActive"`
	IsReadyDelivery FlexBool   `json:"isReadyDelivery"`
	MainImage       string     `json:"mainImage" validate:"omitempty"`
	Images          StringList `json:"images"`
	Stock           FlexInt    `json:"stock" validate:"gte=0"`
	Weight          *float64   `json:"weight" validate:"omitempty,gt=0"`
	Material        string     `json:"material" validate:"omitempty,max=200"`
	Size            string     `json:"size" validate:"omitempty,max=100"`
	Code            string     `json:"code" validate:"omitempty,max=64"`
}

func (dto *CreateProductDTO) Ok() (map[string]string, bool) {
	errorMessages := messages(constants.Validate.Struct(dto))
	return errorMessages, len(errorMessages) == 0
}

func (dto *CreateProductDTO) ToEntity() *product.Product {
	isActive := true
	if dto.IsActive != nil {
		isActive = bool(*dto.IsActive)
	}
	return product.New(
		dto.Name,
		product.Category(dto.Category),
		product.WithDescription(dto.Description),
		product.WithPrice(dto.Price),
		product.WithIsActive(isActive),
		product.WithIsReadyDelivery(bool(dto.IsReadyDelivery)),
		product.WithMainImage(dto.MainImage),
		product.WithImages(dto.Images),
		product.WithStock(int(dto.Stock)),
		product.WithWeight(dto.Weight),
		product.WithMaterial(dto.Material),
		product.WithSize(dto.Size),
		product.WithCode(dto.Code),
	)
}

type UpdateProductDTO struct {
	Name            *string     `json:"name" validate:"omitempty,min=1,max=200"`
	Description     *string     `json:"description" validate:"omitempty,max=2000"`
	Price           *float64    `json:"price" validate:"omitempty,gte=0"`
	Category        *string     `json:"category" validate:"omitempty,oneof=JEWELRY RINGS NECKLACES EARRINGS BRACELETS WATCHES ACCESSORIES"`
	IsActive        *FlexBool   `json:"isActive"`
	IsReadyDelivery *FlexBool   `json:"isReadyDelivery"`
	MainImage       *string     `json:"mainImage"`
	Images          *StringList `json:"images"`
	Stock           *FlexInt    `json:"stock" validate:"omitempty,gte=0"`
	Weight          *float64    `json:"weight" validate:"omitempty,gt=0"`
	Material        *string     `json:"material" validate:"omitempty,max=200"`
	Size            *string     `json:"size" validate:"omitempty,max=100"`
	Code            *string     `json:"code" validate:"omitempty,max=64"`
}

func (dto *UpdateProductDTO) Ok() (map[string]string, bool) {
	errorMessages := messages(constants.Validate.Struct(dto))
	return errorMessages, len(errorMessages) == 0
}

// Apply merges the provided fields over the existing product, returning
// a new entity. Absent fields keep their current values.
func (dto *UpdateProductDTO) Apply(existing *product.Product) *product.Product {
	name := existing.Name()
	if dto.Name != nil {
		name = *dto.Name
	}
	category := existing.Category()
	if dto.Category != nil {
		category = product.Category(*dto.Category)
	}

	description := existing.Description()
	if dto.Description != nil {
		description = *dto.Description
	}
	price := existing.Price()
	if dto.Price != nil {
		price = dto.Price
	}
	isActive := existing.IsActive()
	if dto.IsActive != nil {
		isActive = bool(*dto.IsActive)
	}
	isReadyDelivery := existing.IsReadyDelivery()
	if dto.IsReadyDelivery != nil {
		isReadyDelivery = bool(*dto.IsReadyDelivery)
	}
	mainImage := existing.MainImage()
	if dto.MainImage != nil {
		mainImage = *dto.MainImage
	}
	images := existing.Images()
	if dto.Images != nil {
		images = *dto.Images
	}
	stock := existing.Stock()
	if dto.Stock != nil {
		stock = int(*dto.Stock)
	}
	weight := existing.Weight()
	if dto.Weight != nil {
		weight = dto.Weight
	}
	material := existing.Material()
	if dto.Material != nil {
		material = *dto.Material
	}
	size := existing.Size()
	if dto.Size != nil {
		size = *dto.Size
	}
	code := existing.Code()
	if dto.Code != nil {
		code = *dto.Code
	}

	return product.New(
		name,
		category,
		product.WithID(existing.ID()),
		product.WithDescription(description),
		product.WithPrice(price),
		product.WithIsActive(isActive),
		product.WithIsReadyDelivery(isReadyDelivery),
		product.WithMainImage(mainImage),
		product.WithImages(images),
		product.WithStock(stock),
		product.WithWeight(weight),
		product.WithMaterial(material),
		product.WithSize(size),
		product.WithCode(code),
		product.WithTimestamps(existing.CreatedAt(), existing.UpdatedAt()),
	)
}
