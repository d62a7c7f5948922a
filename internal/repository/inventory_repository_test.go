package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/livraria-next/internal/constants"
	"github.com/livraria-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupInventoryRepositoryTest(t *testing.T) (*GormInventoryRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Book{}, &models.InventoryUnit{}); err != nil {
		t.Fatalf("migrate book/inventory failed: %v", err)
	}
	return NewInventoryRepository(db), db
}

func createBookWithUnits(t *testing.T, db *gorm.DB, isbn string, unitCount int) *models.Book {
	t.Helper()
	book := &models.Book{
		Title:            "Dom Casmurro",
		Author:           "Machado de Assis",
		Publisher:        "Garnier",
		Year:             1899,
		Edition:          1,
		ISBN:             isbn,
		ProfitPercentage: models.NewMoneyFromDecimal(decimal.NewFromInt(20)),
		Status:           constants.BookStatusActive,
	}
	if err := db.Create(book).Error; err != nil {
		t.Fatalf("create book failed: %v", err)
	}
	units := make([]models.InventoryUnit, 0, unitCount)
	for i := 0; i < unitCount; i++ {
		units = append(units, models.InventoryUnit{
			Code:      fmt.Sprintf("%s-%d", isbn, i),
			BookID:    book.ID,
			EntryDate: time.Now(),
			Supplier:  "Distribuidora Central",
			CostValue: models.NewMoneyFromDecimal(decimal.NewFromInt(30)),
			Status:    constants.InventoryStatusAvailable,
		})
	}
	if len(units) > 0 {
		if err := db.Create(&units).Error; err != nil {
			t.Fatalf("create units failed: %v", err)
		}
	}
	return book
}

func TestReserveReleaseLifecycle(t *testing.T) {
	repo, db := setupInventoryRepositoryTest(t)
	book := createBookWithUnits(t, db, "978-85-0000-001-1", 5)

	reserved, err := repo.Reserve(book.ID, 7, 3)
	if err != nil {
		t.Fatalf("reserve failed: %v", err)
	}
	if reserved != 3 {
		t.Fatalf("reserved want 3 got %d", reserved)
	}

	available, err := repo.CountAvailableByBook(book.ID)
	if err != nil {
		t.Fatalf("count available failed: %v", err)
	}
	if available != 2 {
		t.Fatalf("available want 2 got %d", available)
	}

	cart, err := repo.ListReservedByCustomer(7)
	if err != nil {
		t.Fatalf("list reserved failed: %v", err)
	}
	if len(cart) != 3 {
		t.Fatalf("cart size want 3 got %d", len(cart))
	}

	released, err := repo.Release(book.ID, 7, 2)
	if err != nil {
		t.Fatalf("release failed: %v", err)
	}
	if released != 2 {
		t.Fatalf("released want 2 got %d", released)
	}

	available, err = repo.CountAvailableByBook(book.ID)
	if err != nil {
		t.Fatalf("count available failed: %v", err)
	}
	if available != 4 {
		t.Fatalf("available want 4 got %d", available)
	}
}

func TestReserveMoreThanAvailable(t *testing.T) {
	repo, db := setupInventoryRepositoryTest(t)
	book := createBookWithUnits(t, db, "978-85-0000-002-2", 2)

	reserved, err := repo.Reserve(book.ID, 9, 5)
	if err != nil {
		t.Fatalf("reserve failed: %v", err)
	}
	if reserved != 2 {
		t.Fatalf("reserved want 2 got %d", reserved)
	}
}

func TestMarkSoldAndReleaseByOrder(t *testing.T) {
	repo, db := setupInventoryRepositoryTest(t)
	book := createBookWithUnits(t, db, "978-85-0000-003-3", 3)

	if _, err := repo.Reserve(book.ID, 11, 3); err != nil {
		t.Fatalf("reserve failed: %v", err)
	}
	sold, err := repo.MarkSoldByCustomer(11, 42, time.Now())
	if err != nil {
		t.Fatalf("mark sold failed: %v", err)
	}
	if sold != 3 {
		t.Fatalf("sold want 3 got %d", sold)
	}

	units, err := repo.ListByOrder(42)
	if err != nil {
		t.Fatalf("list by order failed: %v", err)
	}
	if len(units) != 3 {
		t.Fatalf("order units want 3 got %d", len(units))
	}
	for _, unit := range units {
		if unit.Status != constants.InventoryStatusSold {
			t.Fatalf("unit status want SOLD got %s", unit.Status)
		}
		if unit.SaleDate == nil {
			t.Fatalf("unit sale date should be set")
		}
	}

	if err := repo.ReleaseByOrder(42); err != nil {
		t.Fatalf("release by order failed: %v", err)
	}
	available, err := repo.CountAvailableByBook(book.ID)
	if err != nil {
		t.Fatalf("count available failed: %v", err)
	}
	if available != 3 {
		t.Fatalf("available want 3 got %d", available)
	}
}

func TestSetStatusByIDsRequiresFromStatus(t *testing.T) {
	repo, db := setupInventoryRepositoryTest(t)
	book := createBookWithUnits(t, db, "978-85-0000-004-4", 2)

	var ids []uint
	if err := db.Model(&models.InventoryUnit{}).Where("book_id = ?", book.ID).Pluck("id", &ids).Error; err != nil {
		t.Fatalf("pluck ids failed: %v", err)
	}

	affected, err := repo.SetStatusByIDs(ids, constants.InventoryStatusSold, constants.InventoryStatusBlocked)
	if err != nil {
		t.Fatalf("set status failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("affected want 0 got %d", affected)
	}

	affected, err = repo.SetStatusByIDs(ids, constants.InventoryStatusAvailable, constants.InventoryStatusBlocked)
	if err != nil {
		t.Fatalf("set status failed: %v", err)
	}
	if affected != int64(len(ids)) {
		t.Fatalf("affected want %d got %d", len(ids), affected)
	}
}
