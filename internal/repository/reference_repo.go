package repository

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/aureliajewels/catalog-importer/internal/models"
)

// ReferenceRepository handles read-only access to the catalog lookup tables.
// It runs against whatever executor it is given, so the caller can scope every
// read to the run transaction.
type ReferenceRepository struct {
	ext sqlx.Ext
}

// NewReferenceRepository creates a new ReferenceRepository.
func NewReferenceRepository(ext sqlx.Ext) *ReferenceRepository {
	return &ReferenceRepository{ext: ext}
}

// CategoryIDByName returns the id of the named category.
func (r *ReferenceRepository) CategoryIDByName(name string) (int, error) {
	const q = `SELECT id FROM categories WHERE name = $1`
	var id int
	if err := sqlx.Get(r.ext, &id, q, name); err != nil {
		if err == sql.ErrNoRows {
			return 0, fmt.Errorf("category %q not found", name)
		}
		return 0, err
	}
	return id, nil
}

// SubTypeIDByName returns the id of the named jewelry sub-type.
func (r *ReferenceRepository) SubTypeIDByName(name string) (int, error) {
	const q = `SELECT id FROM jewelry_sub_types WHERE name = $1`
	var id int
	if err := sqlx.Get(r.ext, &id, q, name); err != nil {
		if err == sql.ErrNoRows {
			return 0, fmt.Errorf("jewelry sub-type %q not found", name)
		}
		return 0, err
	}
	return id, nil
}

// RingStyles returns every (id, name) pair from ring_types.
func (r *ReferenceRepository) RingStyles() ([]models.ReferenceItem, error) {
	const q = `SELECT id, name FROM ring_types`
	var items []models.ReferenceItem
	if err := sqlx.Select(r.ext, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}

// StoneShapes returns every (id, name) pair from stone_shapes.
func (r *ReferenceRepository) StoneShapes() ([]models.ReferenceItem, error) {
	const q = `SELECT id, name FROM stone_shapes`
	var items []models.ReferenceItem
	if err := sqlx.Select(r.ext, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}

// StoneTypes returns every (id, name) pair from stone_types.
func (r *ReferenceRepository) StoneTypes() ([]models.ReferenceItem, error) {
	const q = `SELECT id, name FROM stone_types`
	var items []models.ReferenceItem
	if err := sqlx.Select(r.ext, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}
