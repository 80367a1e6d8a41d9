package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents one row of the products catalog table.
// Fields are tagged for DB scanning; pointer fields map to nullable columns.
type Product struct {
	ID               uuid.UUID       `db:"id"`
	Name             string          `db:"name"`
	Slug             string          `db:"slug"`
	Description      *string         `db:"description"`
	ShortDescription string          `db:"short_description"`
	SKU              string          `db:"sku"`
	BasePrice        decimal.Decimal `db:"base_price"`
	Currency         string          `db:"currency"`
	CategoryID       int             `db:"category_id"`
	JewelrySubTypeID int             `db:"jewelry_sub_type_id"`
	StoneTypeID      *int            `db:"stone_type_id"`
	RingStyle1ID     *int            `db:"ring_style_1_id"`
	RingStyle2ID     *int            `db:"ring_style_2_id"`
	RingStyle3ID     *int            `db:"ring_style_3_id"`
	RingStyle4ID     *int            `db:"ring_style_4_id"`
	RingStyle5ID     *int            `db:"ring_style_5_id"`
	IsActive         bool            `db:"is_active"`
	IsFeatured       bool            `db:"is_featured"`
	InStock          bool            `db:"in_stock"`
	StockQuantity    int             `db:"stock_quantity"`
	MetaTitle        string          `db:"meta_title"`
	MetaDescription  string          `db:"meta_description"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

// ProductStoneShape links an imported product to a stone shape.
// At most one link is created per product in this workflow.
type ProductStoneShape struct {
	ID           uuid.UUID `db:"id"`
	ProductID    uuid.UUID `db:"product_id"`
	StoneShapeID int       `db:"stone_shape_id"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// ReferenceItem is one (id, name) pair from a catalog lookup table.
type ReferenceItem struct {
	ID   int    `db:"id"`
	Name string `db:"name"`
}
