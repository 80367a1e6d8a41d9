package importer

import (
	"fmt"

	"github.com/aureliajewels/catalog-importer/internal/models"
)

// ReferenceStore is the read surface the lookup loader needs.
type ReferenceStore interface {
	CategoryIDByName(name string) (int, error)
	SubTypeIDByName(name string) (int, error)
	RingStyles() ([]models.ReferenceItem, error)
	StoneShapes() ([]models.ReferenceItem, error)
	StoneTypes() ([]models.ReferenceItem, error)
}

// Lookups holds the per-run reference data: the two prerequisite ids and the
// name→id maps used to resolve free-text attribute names. It is built once
// per run and treated as immutable afterwards.
type Lookups struct {
	CategoryID  int
	SubTypeID   int
	RingStyles  map[string]int
	StoneShapes map[string]int
	StoneTypes  map[string]int
}

// LoadLookups queries every reference table once and indexes the results by
// name. A missing category or sub-type is a run-level failure: the import
// must not process any row without them.
func LoadLookups(store ReferenceStore, categoryName, subTypeName string) (*Lookups, error) {
	categoryID, err := store.CategoryIDByName(categoryName)
	if err != nil {
		return nil, fmt.Errorf("load category id: %w", err)
	}
	subTypeID, err := store.SubTypeIDByName(subTypeName)
	if err != nil {
		return nil, fmt.Errorf("load jewelry sub-type id: %w", err)
	}

	ringStyles, err := store.RingStyles()
	if err != nil {
		return nil, fmt.Errorf("load ring styles: %w", err)
	}
	stoneShapes, err := store.StoneShapes()
	if err != nil {
		return nil, fmt.Errorf("load stone shapes: %w", err)
	}
	stoneTypes, err := store.StoneTypes()
	if err != nil {
		return nil, fmt.Errorf("load stone types: %w", err)
	}

	return &Lookups{
		CategoryID:  categoryID,
		SubTypeID:   subTypeID,
		RingStyles:  indexByName(ringStyles),
		StoneShapes: indexByName(stoneShapes),
		StoneTypes:  indexByName(stoneTypes),
	}, nil
}

// indexByName builds a display-name→id map from lookup rows.
func indexByName(items []models.ReferenceItem) map[string]int {
	m := make(map[string]int, len(items))
	for _, item := range items {
		m[item.Name] = item.ID
	}
	return m
}
