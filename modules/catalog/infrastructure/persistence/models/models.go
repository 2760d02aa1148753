package models

import "time"

type PortfolioItem struct {
	ID                  string
	Title               string
	Description         string
	DetailedDescription string
	Category            string
	CustomCategory      string
	MainImage           string
	Images              []byte
	IsActive            bool
	IsFeatured          bool
	Status              string
	Order               int
	Specifications      []byte
	SEOTitle            string
	SEODescription      string
	Keywords            []byte
	RelatedProjects     []byte
	ProductID           *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type Product struct {
	ID              string
	Name            string
	Description     string
	Price           *float64
	Category        string
	IsActive        bool
	IsReadyDelivery bool
	MainImage       string
	Images          []byte
	Stock           int
	Weight          *float64
	Material        string
	Size            string
	Code            *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
