package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/livraria-next/internal/models"
	"github.com/livraria-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAllocationTest(t *testing.T, minCardAmount float64) (*PaymentAllocationService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:allocation_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Customer{}, &models.Brand{}, &models.Card{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	cardRepo := repository.NewCardRepository(db)
	brandRepo := repository.NewBrandRepository(db)
	return NewPaymentAllocationService(cardRepo, brandRepo, minCardAmount), db
}

func createTestBrand(t *testing.T, db *gorm.DB, name string) *models.Brand {
	t.Helper()
	brand := &models.Brand{Name: name}
	if err := db.Create(brand).Error; err != nil {
		t.Fatalf("create brand failed: %v", err)
	}
	return brand
}

func createTestCard(t *testing.T, db *gorm.DB, customerID, brandID uint) *models.Card {
	t.Helper()
	card := &models.Card{
		CustomerID: customerID,
		BrandID:    brandID,
		Number:     "4111111111111111",
		HolderName: "Maria Souza",
		CVV:        "123",
		ExpiryDate: "12/39",
	}
	if err := db.Create(card).Error; err != nil {
		t.Fatalf("create card failed: %v", err)
	}
	return card
}

func TestValidateAllocationsLastElementAbsorbsRemainder(t *testing.T) {
	svc, db := setupAllocationTest(t, 50.0)
	brand := createTestBrand(t, db, "Visa")
	card := createTestCard(t, db, 1, brand.ID)
	other := createTestCard(t, db, 1, brand.ID)

	resolved, err := svc.ValidateAllocations(models.NewMoneyFromFloat(55.00), 1, []ProposedAllocation{
		{Amount: models.NewMoneyFromFloat(50.00), CardID: card.ID},
		{Amount: models.NewMoneyFromFloat(5.00), CardID: other.ID},
	})
	if err != nil {
		t.Fatalf("ValidateAllocations error: %v", err)
	}
	if len(resolved) != 2 {
		t.Fatalf("expected 2 allocations, got %d", len(resolved))
	}
	if resolved[0].Position != 0 || resolved[1].Position != 1 {
		t.Fatalf("positions not preserved: %+v", resolved)
	}
	if resolved[1].Amount.String() != "5.00" {
		t.Fatalf("expected last amount 5.00, got %s", resolved[1].Amount.String())
	}
}

func TestValidateAllocationsBelowMinimum(t *testing.T) {
	svc, db := setupAllocationTest(t, 50.0)
	brand := createTestBrand(t, db, "Visa")
	card := createTestCard(t, db, 1, brand.ID)
	other := createTestCard(t, db, 1, brand.ID)

	_, err := svc.ValidateAllocations(models.NewMoneyFromFloat(100.00), 1, []ProposedAllocation{
		{Amount: models.NewMoneyFromFloat(30.00), CardID: card.ID},
		{Amount: models.NewMoneyFromFloat(70.00), CardID: other.ID},
	})
	if !errors.Is(err, ErrBelowMinimumInstrumentAmount) {
		t.Fatalf("expected ErrBelowMinimumInstrumentAmount, got %v", err)
	}
	var detail *BelowMinimumError
	if !errors.As(err, &detail) {
		t.Fatalf("expected *BelowMinimumError, got %T", err)
	}
	if detail.Index != 0 {
		t.Fatalf("expected violation at index 0, got %d", detail.Index)
	}
	if detail.Minimum.String() != "50.00" {
		t.Fatalf("expected minimum 50.00, got %s", detail.Minimum.String())
	}
}

func TestValidateAllocationsSingleCardAnyAmount(t *testing.T) {
	svc, db := setupAllocationTest(t, 50.0)
	brand := createTestBrand(t, db, "Visa")
	card := createTestCard(t, db, 1, brand.ID)

	resolved, err := svc.ValidateAllocations(models.NewMoneyFromFloat(3.50), 1, []ProposedAllocation{
		{Amount: models.NewMoneyFromFloat(3.50), CardID: card.ID},
	})
	if err != nil {
		t.Fatalf("single allocation below minimum should pass: %v", err)
	}
	if resolved[0].BrandName != "Visa" {
		t.Fatalf("expected brand snapshot Visa, got %s", resolved[0].BrandName)
	}
}

func TestValidateAllocationsTotalMismatch(t *testing.T) {
	svc, db := setupAllocationTest(t, 10.0)
	brand := createTestBrand(t, db, "Visa")
	card := createTestCard(t, db, 1, brand.ID)
	other := createTestCard(t, db, 1, brand.ID)

	_, err := svc.ValidateAllocations(models.NewMoneyFromFloat(100.00), 1, []ProposedAllocation{
		{Amount: models.NewMoneyFromFloat(50.00), CardID: card.ID},
		{Amount: models.NewMoneyFromFloat(49.00), CardID: other.ID},
	})
	if !errors.Is(err, ErrAllocationTotalMismatch) {
		t.Fatalf("expected ErrAllocationTotalMismatch, got %v", err)
	}
}

func TestValidateAllocationsNonPositiveAmount(t *testing.T) {
	svc, _ := setupAllocationTest(t, 10.0)

	_, err := svc.ValidateAllocations(models.NewMoneyFromFloat(10.00), 1, []ProposedAllocation{
		{Amount: models.NewMoneyFromFloat(0)},
	})
	if !errors.Is(err, ErrInvalidAllocationAmount) {
		t.Fatalf("expected ErrInvalidAllocationAmount, got %v", err)
	}

	_, err = svc.ValidateAllocations(models.NewMoneyFromFloat(10.00), 1, nil)
	if !errors.Is(err, ErrAllocationEmpty) {
		t.Fatalf("expected ErrAllocationEmpty, got %v", err)
	}
}

func TestValidateAllocationsIdempotent(t *testing.T) {
	svc, db := setupAllocationTest(t, 10.0)
	brand := createTestBrand(t, db, "Visa")
	card := createTestCard(t, db, 1, brand.ID)
	other := createTestCard(t, db, 1, brand.ID)

	input := []ProposedAllocation{
		{Amount: models.NewMoneyFromFloat(60.00), CardID: card.ID},
		{Amount: models.NewMoneyFromFloat(40.00), CardID: other.ID},
	}
	first, err := svc.ValidateAllocations(models.NewMoneyFromFloat(100.00), 1, input)
	if err != nil {
		t.Fatalf("first run error: %v", err)
	}
	second, err := svc.ValidateAllocations(models.NewMoneyFromFloat(100.00), 1, input)
	if err != nil {
		t.Fatalf("second run error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("runs differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Position != second[i].Position ||
			!first[i].Amount.Decimal.Equal(second[i].Amount.Decimal) ||
			first[i].Number != second[i].Number {
			t.Fatalf("runs differ at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestValidateAllocationsRejectsForeignCard(t *testing.T) {
	svc, db := setupAllocationTest(t, 10.0)
	brand := createTestBrand(t, db, "Visa")
	card := createTestCard(t, db, 2, brand.ID)

	_, err := svc.ValidateAllocations(models.NewMoneyFromFloat(50.00), 1, []ProposedAllocation{
		{Amount: models.NewMoneyFromFloat(50.00), CardID: card.ID},
	})
	if !errors.Is(err, ErrInvalidInstrument) {
		t.Fatalf("expected ErrInvalidInstrument for another customer's card, got %v", err)
	}
}

func TestValidateAllocationsInlineCard(t *testing.T) {
	svc, db := setupAllocationTest(t, 10.0)
	brand := createTestBrand(t, db, "Mastercard")

	resolved, err := svc.ValidateAllocations(models.NewMoneyFromFloat(50.00), 1, []ProposedAllocation{
		{Amount: models.NewMoneyFromFloat(50.00), Inline: &InlineCard{
			HolderName: "João Silva",
			Number:     "5555444433332222",
			CVV:        "321",
			ExpiryDate: "11/39",
			BrandID:    brand.ID,
		}},
	})
	if err != nil {
		t.Fatalf("inline card should be accepted: %v", err)
	}
	if resolved[0].CardID != nil {
		t.Fatalf("inline card must not reference a stored card")
	}
	if resolved[0].BrandName != "Mastercard" {
		t.Fatalf("expected brand Mastercard, got %s", resolved[0].BrandName)
	}

	_, err = svc.ValidateAllocations(models.NewMoneyFromFloat(50.00), 1, []ProposedAllocation{
		{Amount: models.NewMoneyFromFloat(50.00), Inline: &InlineCard{
			HolderName: "João Silva",
			Number:     "123",
			CVV:        "321",
			ExpiryDate: "11/39",
			BrandID:    brand.ID,
		}},
	})
	if !errors.Is(err, ErrInvalidInstrument) {
		t.Fatalf("expected ErrInvalidInstrument for malformed number, got %v", err)
	}

	_, err = svc.ValidateAllocations(models.NewMoneyFromFloat(50.00), 1, []ProposedAllocation{
		{Amount: models.NewMoneyFromFloat(50.00), Inline: &InlineCard{
			HolderName: "João Silva",
			Number:     "5555444433332222",
			CVV:        "321",
			ExpiryDate: "01/20",
			BrandID:    brand.ID,
		}},
	})
	if !errors.Is(err, ErrInvalidInstrument) {
		t.Fatalf("expected ErrInvalidInstrument for expired card, got %v", err)
	}
}

func TestExpiryInFuture(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		expiry string
		want   bool
	}{
		{"03/26", true},  // valid through end of the current month
		{"02/26", false},
		{"04/26", true},
		{"12/25", false},
		{"13/30", false},
		{"0326", false},
	}
	for _, tc := range cases {
		if got := expiryInFuture(tc.expiry, now); got != tc.want {
			t.Fatalf("expiryInFuture(%q) = %v, want %v", tc.expiry, got, tc.want)
		}
	}
}
