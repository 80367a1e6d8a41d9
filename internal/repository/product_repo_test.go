package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aureliajewels/catalog-importer/internal/models"
)

func TestExistsBySKU(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM products WHERE sku = \$1\)`).
		WithArgs("ER-001").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM products WHERE sku = \$1\)`).
		WithArgs("ER-002").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.ExistsBySKU("ER-001")
	if err != nil {
		t.Fatalf("exists check failed: %v", err)
	}
	if !exists {
		t.Fatal("ER-001 want exists")
	}

	exists, err = repo.ExistsBySKU("ER-002")
	if err != nil {
		t.Fatalf("exists check failed: %v", err)
	}
	if exists {
		t.Fatal("ER-002 want not exists")
	}
}

func TestInsertFillsGeneratedColumns(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	returnedID := uuid.New()
	createdAt := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO products`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(returnedID.String(), createdAt, createdAt))

	styleID := 7
	p := &models.Product{
		Name:             "Solitaire Ring",
		Slug:             "solitaire-ring",
		ShortDescription: "A classic solitaire",
		SKU:              "ER-001",
		BasePrice:        decimal.RequireFromString("1000.00"),
		Currency:         "GBP",
		CategoryID:       11,
		JewelrySubTypeID: 22,
		RingStyle1ID:     &styleID,
		IsActive:         true,
		InStock:          true,
		StockQuantity:    1,
		MetaTitle:        "Solitaire Ring",
	}
	if err := repo.Insert(p); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if p.ID != returnedID {
		t.Fatalf("id want %s got %s", returnedID, p.ID)
	}
	if !p.CreatedAt.Equal(createdAt) || !p.UpdatedAt.Equal(createdAt) {
		t.Fatalf("timestamps not filled: %v / %v", p.CreatedAt, p.UpdatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsertPropagatesError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	mock.ExpectQuery(`INSERT INTO products`).
		WillReturnError(errors.New(`duplicate key value violates unique constraint "products_slug_key"`))

	p := &models.Product{Name: "Solitaire Ring", SKU: "ER-001"}
	if err := repo.Insert(p); err == nil {
		t.Fatal("constraint violation must surface")
	}
}

func TestInsertStoneShape(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepository(db)

	productID := uuid.New()
	mock.ExpectExec(`INSERT INTO product_stone_shapes`).
		WithArgs(sqlmock.AnyArg(), productID, 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	link := &models.ProductStoneShape{ProductID: productID, StoneShapeID: 3}
	if err := repo.InsertStoneShape(link); err != nil {
		t.Fatalf("insert stone shape failed: %v", err)
	}
	if link.ID == uuid.Nil {
		t.Fatal("link id must be generated")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
