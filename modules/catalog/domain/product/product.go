package product

import (
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryJewelry     Category = "JEWELRY"
	CategoryRings       Category = "RINGS"
	CategoryNecklaces   Category = "NECKLACES"
	CategoryEarrings    Category = "EARRINGS"
	CategoryBracelets   Category = "BRACELETS"
	CategoryWatches     Category = "WATCHES"
	CategoryAccessories Category = "ACCESSORIES"
)

type Product struct {
	id              uuid.UUID
	name            string
	description     string
	price           *float64
	category        Category
	isActive        bool
	isReadyDelivery bool
	mainImage       string
	images          []string
	stock           int
	weight          *float64
	material        string
	size            string
	code            string
	createdAt       time.Time
	updatedAt       time.Time
}

type Option func(*Product)

func WithID(id uuid.UUID) Option {
	return func(p *Product) { p.id = id }
}

func WithDescription(description string) Option {
	return func(p *Product) { p.description = description }
}

func WithPrice(price *float64) Option {
	return func(p *Product) { p.price = price }
}

func WithIsActive(isActive bool) Option {
	return func(p *Product) { p.isActive = isActive }
}

func WithIsReadyDelivery(ready bool) Option {
	return func(p *Product) { p.isReadyDelivery = ready }
}

func WithMainImage(mainImage string) Option {
	return func(p *Product) { p.mainImage = mainImage }
}

func WithImages(images []string) Option {
	return func(p *Product) { p.images = images }
}

func WithStock(stock int) Option {
	return func(p *Product) { p.stock = stock }
}

func WithWeight(weight *float64) Option {
	return func(p *Product) { p.weight = weight }
}

func WithMaterial(material string) Option {
	return func(p *Product) { p.material = material }
}

func WithSize(size string) Option {
	return func(p *Product) { p.size = size }
}

func WithCode(code string) Option {
	return func(p *Product) { p.code = code }
}

func WithTimestamps(createdAt, updatedAt time.Time) Option {
	return func(p *Product) {
		p.createdAt = createdAt
		p.updatedAt = updatedAt
	}
}

func New(name string, category Category, opts ...Option) *Product {
	p := &Product{
		id:       uuid.New(),
		name:     name,
		category: category,
		isActive: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Product) ID() uuid.UUID         { return p.id }
func (p *Product) Name() string          { return p.name }
func (p *Product) Description() string   { return p.description }
func (p *Product) Price() *float64       { return p.price }
func (p *Product) Category() Category    { return p.category }
func (p *Product) IsActive() bool        { return p.isActive }
func (p *Product) IsReadyDelivery() bool { return p.isReadyDelivery }
func (p *Product) MainImage() string     { return p.mainImage }
func (p *Product) Images() []string      { return p.images }
func (p *Product) Stock() int            { return p.stock }
func (p *Product) Weight() *float64      { return p.weight }
func (p *Product) Material() string      { return p.material }
func (p *Product) Size() string          { return p.size }
func (p *Product) Code() string          { return p.code }
func (p *Product) CreatedAt() time.Time  { return p.createdAt }
func (p *Product) UpdatedAt() time.Time  { return p.updatedAt }
