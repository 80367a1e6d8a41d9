package repository

import (
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/aureliajewels/catalog-importer/internal/models"
)

// ProductRepository handles writes to products and product_stone_shapes.
// Like ReferenceRepository it runs against the executor it is given, which
// during an import is always the run transaction.
type ProductRepository struct {
	ext sqlx.Ext
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(ext sqlx.Ext) *ProductRepository {
	return &ProductRepository{ext: ext}
}

// ExistsBySKU reports whether a product with the given sku is already present.
func (r *ProductRepository) ExistsBySKU(sku string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM products WHERE sku = $1)`
	var exists bool
	if err := sqlx.Get(r.ext, &exists, q, sku); err != nil {
		return false, err
	}
	return exists, nil
}

// Insert creates one product row and fills in the generated timestamps.
// The id is generated app-side when the caller did not set one.
func (r *ProductRepository) Insert(p *models.Product) error {
	const q = `
        INSERT INTO products (
            id, name, slug, description, short_description, sku,
            base_price, currency, category_id, jewelry_sub_type_id,
            stone_type_id, ring_style_1_id, ring_style_2_id, ring_style_3_id,
            ring_style_4_id, ring_style_5_id,
            is_active, is_featured, in_stock, stock_quantity,
            meta_title, meta_description,
            created_at, updated_at
        ) VALUES (
            $1, $2, $3, $4, $5, $6,
            $7, $8, $9, $10,
            $11, $12, $13, $14, $15, $16,
            $17, $18, $19, $20,
            $21, $22,
            NOW(), NOW()
        ) RETURNING id, created_at, updated_at`

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return r.ext.QueryRowx(q,
		p.ID,
		p.Name,
		p.Slug,
		p.Description,
		p.ShortDescription,
		p.SKU,
		p.BasePrice,
		p.Currency,
		p.CategoryID,
		p.JewelrySubTypeID,
		p.StoneTypeID,
		p.RingStyle1ID,
		p.RingStyle2ID,
		p.RingStyle3ID,
		p.RingStyle4ID,
		p.RingStyle5ID,
		p.IsActive,
		p.IsFeatured,
		p.InStock,
		p.StockQuantity,
		p.MetaTitle,
		p.MetaDescription,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// InsertStoneShape creates one product_stone_shapes link row.
func (r *ProductRepository) InsertStoneShape(link *models.ProductStoneShape) error {
	const q = `
        INSERT INTO product_stone_shapes (id, product_id, stone_shape_id, created_at, updated_at)
        VALUES ($1, $2, $3, NOW(), NOW())`

	if link.ID == uuid.Nil {
		link.ID = uuid.New()
	}
	_, err := r.ext.Exec(q, link.ID, link.ProductID, link.StoneShapeID)
	return err
}
