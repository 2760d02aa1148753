package portfolio

import (
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryWeddingRings       Category = "WEDDING_RINGS"
	CategoryRepairsBeforeAfter Category = "REPAIRS_BEFORE_AFTER"
	CategoryGoldPlating        Category = "GOLD_PLATING"
	CategoryCustomJewelry      Category = "CUSTOM_JEWELRY"
	CategoryGraduationRings    Category = "GRADUATION_RINGS"
)

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusPublished Status = "PUBLISHED"
	StatusFeatured  Status = "FEATURED"
	StatusArchived  Status = "ARCHIVED"
)

// Item is a portfolio entry shown on the public site. There is no
// per-row ownership; authorization is role-based.
type Item struct {
	id                  uuid.UUID
	title               string
	description         string
	detailedDescription string
	category            Category
	customCategory      string
	mainImage           string
	images              []string
	isActive            bool
	isFeatured          bool
	status              Status
	order               int
	specifications      map[string]string
	seoTitle            string
	seoDescription      string
	keywords            []string
	relatedProjects     []string
	productID           *uuid.UUID
	createdAt           time.Time
	updatedAt           time.Time
}

type Option func(*Item)

func WithID(id uuid.UUID) Option {
	return func(i *Item) { i.id = id }
}

func WithDescription(description string) Option {
	return func(i *Item) { i.description = description }
}

func WithDetailedDescription(detailed string) Option {
	return func(i *Item) { i.detailedDescription = detailed }
}

func WithCustomCategory(custom string) Option {
	return func(i *Item) { i.customCategory = custom }
}

func WithImages(images []string) Option {
	return func(i *Item) { i.images = images }
}

func WithIsActive(isActive bool) Option {
	return func(i *Item) { i.isActive = isActive }
}

func WithIsFeatured(isFeatured bool) Option {
	return func(i *Item) { i.isFeatured = isFeatured }
}

func WithStatus(status Status) Option {
	return func(i *Item) { i.status = status }
}

func WithOrder(order int) Option {
	return func(i *Item) { i.order = order }
}

func WithSpecifications(specs map[string]string) Option {
	return func(i *Item) { i.specifications = specs }
}

func WithSEO(title, description string) Option {
	return func(i *Item) {
		i.seoTitle = title
		i.seoDescription = description
	}
}

func WithKeywords(keywords []string) Option {
	return func(i *Item) { i.keywords = keywords }
}

func WithRelatedProjects(related []string) Option {
	return func(i *Item) { i.relatedProjects = related }
}

func WithProductID(productID *uuid.UUID) Option {
	return func(i *Item) { i.productID = productID }
}

func WithTimestamps(createdAt, updatedAt time.Time) Option {
	return func(i *Item) {
		i.createdAt = createdAt
		i.updatedAt = updatedAt
	}
}

func New(title string, category Category, mainImage string, opts ...Option) *Item {
	item := &Item{
		id:        uuid.New(),
		title:     title,
		category:  category,
		mainImage: mainImage,
		isActive:  true,
		status:    StatusDraft,
	}
	for _, opt := range opts {
		opt(item)
	}
	return item
}

func (i *Item) ID() uuid.UUID                     { return i.id }
func (i *Item) Title() string                     { return i.title }
func (i *Item) Description() string               { return i.description }
func (i *Item) DetailedDescription() string       { return i.detailedDescription }
func (i *Item) Category() Category                { return i.category }
func (i *Item) CustomCategory() string            { return i.customCategory }
func (i *Item) MainImage() string                 { return i.mainImage }
func (i *Item) Images() []string                  { return i.images }
func (i *Item) IsActive() bool                    { return i.isActive }
func (i *Item) IsFeatured() bool                  { return i.isFeatured }
func (i *Item) Status() Status                    { return i.status }
func (i *Item) Order() int                        { return i.order }
func (i *Item) Specifications() map[string]string { return i.specifications }
func (i *Item) SEOTitle() string                  { return i.seoTitle }
func (i *Item) SEODescription() string            { return i.seoDescription }
func (i *Item) Keywords() []string                { return i.keywords }
func (i *Item) RelatedProjects() []string         { return i.relatedProjects }
func (i *Item) ProductID() *uuid.UUID             { return i.productID }
func (i *Item) CreatedAt() time.Time              { return i.createdAt }
func (i *Item) UpdatedAt() time.Time              { return i.updatedAt }
