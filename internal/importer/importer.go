package importer

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/aureliajewels/catalog-importer/internal/models"
)

// ProductStore is the write surface the importer needs.
type ProductStore interface {
	ExistsBySKU(sku string) (bool, error)
	Insert(p *models.Product) error
	InsertStoneShape(link *models.ProductStoneShape) error
}

// Savepointer brackets one row's writes so a failed insert cannot abort the
// surrounding transaction. A nil guard means the store is not transactional.
type Savepointer interface {
	Begin() error
	Rollback() error
	Release() error
}

// Outcome is the terminal state of one processed row.
type Outcome int

const (
	OutcomeSkipped Outcome = iota
	OutcomeImported
	OutcomeErrored
)

// Counters accumulates row outcomes across a run.
type Counters struct {
	Imported int
	Skipped  int
	Errored  int
}

// record tallies one terminal state.
func (c *Counters) record(o Outcome) {
	switch o {
	case OutcomeImported:
		c.Imported++
	case OutcomeSkipped:
		c.Skipped++
	case OutcomeErrored:
		c.Errored++
	}
}

// Options carries the run's fixed import parameters. Every value that the
// original tool hardcoded arrives here from configuration.
type Options struct {
	CategoryName string
	SubTypeName  string
	Currency     string
	BasePrice    decimal.Decimal
	Layout       ColumnLayout
}

// Importer applies the per-row skip/insert/error state machine.
type Importer struct {
	products ProductStore
	guard    Savepointer
	lookups  *Lookups
	opts     Options
	report   *Report
}

// NewImporter creates an Importer over the given store and lookups.
func NewImporter(products ProductStore, guard Savepointer, lookups *Lookups, opts Options, report *Report) *Importer {
	return &Importer{
		products: products,
		guard:    guard,
		lookups:  lookups,
		opts:     opts,
		report:   report,
	}
}

// ProcessRow runs one row to a terminal state. A non-nil error is run-level:
// an infrastructure failure outside the per-row insert attempt, which must
// abort the whole run. Failures inside the insert attempt are consumed,
// reported and counted as errored, and processing continues.
func (i *Importer) ProcessRow(n, total int, row ProductRow) (Outcome, error) {
	// Rows without usable identity are expected in the workbook tail.
	if !row.Valid() {
		return OutcomeSkipped, nil
	}
	sku, name := *row.SKU, *row.Name

	exists, err := i.products.ExistsBySKU(sku)
	if err != nil {
		return OutcomeErrored, fmt.Errorf("check sku %s: %w", sku, err)
	}
	if exists {
		i.report.RowSkipped(n, total, sku, name, "already exists")
		return OutcomeSkipped, nil
	}

	if i.guard != nil {
		if err := i.guard.Begin(); err != nil {
			return OutcomeErrored, fmt.Errorf("open row savepoint: %w", err)
		}
	}

	if err := i.insertRow(row, sku, name); err != nil {
		if i.guard != nil {
			if rbErr := i.guard.Rollback(); rbErr != nil {
				return OutcomeErrored, fmt.Errorf("roll back row savepoint: %w", rbErr)
			}
		}
		log.Warn().Int("row", n).Str("sku", sku).Str("name", name).Err(err).Msg("row import failed")
		i.report.RowError(n, total, sku, name, err)
		return OutcomeErrored, nil
	}

	if i.guard != nil {
		if err := i.guard.Release(); err != nil {
			return OutcomeErrored, fmt.Errorf("release row savepoint: %w", err)
		}
	}

	i.report.RowImported(n, total, sku, name)
	return OutcomeImported, nil
}

// insertRow resolves the row's fields and performs its writes: one product
// row, plus one stone-shape link when the shape name resolved.
func (i *Importer) insertRow(row ProductRow, sku, name string) error {
	res := ResolveRow(row, i.lookups)

	product := &models.Product{
		Name:             name,
		Slug:             res.Slug,
		Description:      row.Description,
		ShortDescription: res.ShortDescription,
		SKU:              sku,
		BasePrice:        i.opts.BasePrice,
		Currency:         i.opts.Currency,
		CategoryID:       i.lookups.CategoryID,
		JewelrySubTypeID: i.lookups.SubTypeID,
		StoneTypeID:      res.StoneTypeID,
		RingStyle1ID:     res.RingStyleIDs[0],
		RingStyle2ID:     res.RingStyleIDs[1],
		RingStyle3ID:     res.RingStyleIDs[2],
		RingStyle4ID:     res.RingStyleIDs[3],
		RingStyle5ID:     res.RingStyleIDs[4],
		IsActive:         true,
		IsFeatured:       false,
		InStock:          true,
		StockQuantity:    1,
		MetaTitle:        name,
		MetaDescription:  res.MetaDescription,
	}
	if err := i.products.Insert(product); err != nil {
		return err
	}

	if res.StoneShapeID != nil {
		link := &models.ProductStoneShape{
			ProductID:    product.ID,
			StoneShapeID: *res.StoneShapeID,
		}
		if err := i.products.InsertStoneShape(link); err != nil {
			return err
		}
	}
	return nil
}
