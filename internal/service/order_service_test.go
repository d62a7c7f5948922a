package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/livraria-next/internal/constants"
	"github.com/livraria-next/internal/models"
	"github.com/livraria-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:order_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Address{},
		&models.Brand{},
		&models.Card{},
		&models.Book{},
		&models.InventoryUnit{},
		&models.Coupon{},
		&models.Order{},
		&models.Transaction{},
		&models.CardPayment{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	orderRepo := repository.NewOrderRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	cardRepo := repository.NewCardRepository(db)
	brandRepo := repository.NewBrandRepository(db)

	couponService := NewCouponService(couponRepo)
	allocService := NewPaymentAllocationService(cardRepo, brandRepo, 10.0)
	svc := NewOrderService(orderRepo, inventoryRepo, couponRepo, addressRepo,
		couponService, allocService, nil, 5.0, 0, 80)
	return svc, db
}

func createSettlementFixture(t *testing.T, db *gorm.DB) (customer *models.Customer, address *models.Address, card *models.Card) {
	t.Helper()
	customer = &models.Customer{Name: "Ana Lima", Email: "ana@example.com", PasswordHash: "hash", IsActive: true}
	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("create customer failed: %v", err)
	}
	address = &models.Address{
		CustomerID:    customer.ID,
		Alias:         "Casa",
		ResidenceType: "house",
		StreetType:    "rua",
		Street:        "Rua das Flores",
		Number:        "100",
		District:      "Centro",
		Zipcode:       "01000-00",
		City:          "São Paulo",
		State:         "SP",
		Country:       "Brasil",
	}
	if err := db.Create(address).Error; err != nil {
		t.Fatalf("create address failed: %v", err)
	}
	brand := createTestBrand(t, db, "Visa")
	card = createTestCard(t, db, customer.ID, brand.ID)
	return customer, address, card
}

func createReservedUnits(t *testing.T, db *gorm.DB, customerID uint, cost float64, profitPercent float64, count int) *models.Book {
	t.Helper()
	book := &models.Book{
		Title:            "Dom Casmurro",
		Author:           "Machado de Assis",
		Publisher:        "Garnier",
		Year:             1899,
		Edition:          1,
		ISBN:             fmt.Sprintf("978-85-359-%04d-%d", customerID, count),
		Pages:            256,
		ProfitPercentage: models.NewMoneyFromFloat(profitPercent),
		Status:           constants.BookStatusActive,
	}
	if err := db.Create(book).Error; err != nil {
		t.Fatalf("create book failed: %v", err)
	}
	for i := 0; i < count; i++ {
		unit := &models.InventoryUnit{
			Code:                 fmt.Sprintf("unit-%d-%d-%d", customerID, book.ID, i),
			BookID:               book.ID,
			EntryDate:            time.Now(),
			Supplier:             "Distribuidora Central",
			CostValue:            models.NewMoneyFromFloat(cost),
			Status:               constants.InventoryStatusReserved,
			ReservedByCustomerID: &customerID,
		}
		if err := db.Create(unit).Error; err != nil {
			t.Fatalf("create unit failed: %v", err)
		}
	}
	return book
}

func TestSettleOrderHappyPath(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	customer, address, card := createSettlementFixture(t, db)
	createReservedUnits(t, db, customer.ID, 20.0, 50.0, 2)

	// 单价 = 20 × 1.5 = 30，两件小计 60，运费 2 × 5 = 10
	order, err := svc.SettleOrder(SettleOrderInput{
		CustomerID: customer.ID,
		AddressID:  address.ID,
		Allocations: []ProposedAllocation{
			{Amount: models.NewMoneyFromFloat(70.00), CardID: card.ID},
		},
	})
	if err != nil {
		t.Fatalf("SettleOrder error: %v", err)
	}
	if order.Status != constants.OrderStatusProcessing {
		t.Fatalf("expected PROCESSING, got %s", order.Status)
	}
	if order.Transaction == nil {
		t.Fatalf("expected transaction on order")
	}
	if order.Transaction.SubtotalAmount.String() != "60.00" {
		t.Fatalf("expected subtotal 60.00, got %s", order.Transaction.SubtotalAmount.String())
	}
	if order.Transaction.FreightAmount.String() != "10.00" {
		t.Fatalf("expected freight 10.00, got %s", order.Transaction.FreightAmount.String())
	}
	if order.Transaction.Amount.String() != "70.00" {
		t.Fatalf("expected total 70.00, got %s", order.Transaction.Amount.String())
	}
	if len(order.Transaction.Allocations) != 1 {
		t.Fatalf("expected 1 allocation, got %d", len(order.Transaction.Allocations))
	}
	if order.City != address.City || order.Street != address.Street {
		t.Fatalf("address snapshot missing: %+v", order)
	}

	var soldCount int64
	if err := db.Model(&models.InventoryUnit{}).
		Where("order_id = ? AND status = ?", order.ID, constants.InventoryStatusSold).
		Count(&soldCount).Error; err != nil {
		t.Fatalf("count sold units failed: %v", err)
	}
	if soldCount != 2 {
		t.Fatalf("expected 2 sold units, got %d", soldCount)
	}
}

func TestSettleOrderMarksCouponUsed(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	customer, address, card := createSettlementFixture(t, db)
	createReservedUnits(t, db, customer.ID, 20.0, 50.0, 2)

	coupon := &models.Coupon{
		Code:      "DESC10",
		Kind:      constants.CouponKindFixedValue,
		Discount:  models.NewMoneyFromFloat(10.00),
		Status:    constants.CouponStatusAvailable,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	if err := db.Create(coupon).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	order, err := svc.SettleOrder(SettleOrderInput{
		CustomerID: customer.ID,
		AddressID:  address.ID,
		CouponCode: "DESC10",
		Allocations: []ProposedAllocation{
			{Amount: models.NewMoneyFromFloat(60.00), CardID: card.ID},
		},
	})
	if err != nil {
		t.Fatalf("SettleOrder error: %v", err)
	}
	if order.Transaction.DiscountAmount.String() != "10.00" {
		t.Fatalf("expected discount 10.00, got %s", order.Transaction.DiscountAmount.String())
	}
	if order.Transaction.Amount.String() != "60.00" {
		t.Fatalf("expected total 60.00, got %s", order.Transaction.Amount.String())
	}

	var stored models.Coupon
	if err := db.First(&stored, coupon.ID).Error; err != nil {
		t.Fatalf("reload coupon failed: %v", err)
	}
	if stored.Status != constants.CouponStatusUsed {
		t.Fatalf("expected coupon USED, got %s", stored.Status)
	}
}

func TestSettleOrderValidationLeavesNoTrace(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	customer, address, card := createSettlementFixture(t, db)
	createReservedUnits(t, db, customer.ID, 20.0, 50.0, 2)

	// 合计 69 与应付 70 不符，必须整体失败
	_, err := svc.SettleOrder(SettleOrderInput{
		CustomerID: customer.ID,
		AddressID:  address.ID,
		Allocations: []ProposedAllocation{
			{Amount: models.NewMoneyFromFloat(40.00), CardID: card.ID},
			{Amount: models.NewMoneyFromFloat(29.00), CardID: card.ID},
		},
	})
	if !errors.Is(err, ErrAllocationTotalMismatch) {
		t.Fatalf("expected ErrAllocationTotalMismatch, got %v", err)
	}

	var orderCount int64
	if err := db.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if orderCount != 0 {
		t.Fatalf("no order must exist after failed settlement, got %d", orderCount)
	}
	var reserved int64
	if err := db.Model(&models.InventoryUnit{}).
		Where("status = ? AND reserved_by_customer_id = ?", constants.InventoryStatusReserved, customer.ID).
		Count(&reserved).Error; err != nil {
		t.Fatalf("count reserved failed: %v", err)
	}
	if reserved != 2 {
		t.Fatalf("cart must stay reserved after failed settlement, got %d", reserved)
	}
}

func TestSettleOrderEmptyCart(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	customer, address, card := createSettlementFixture(t, db)

	_, err := svc.SettleOrder(SettleOrderInput{
		CustomerID: customer.ID,
		AddressID:  address.ID,
		Allocations: []ProposedAllocation{
			{Amount: models.NewMoneyFromFloat(10.00), CardID: card.ID},
		},
	})
	if !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
}

func TestTransitionStatusRejectsBackwardMove(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	customer, address, card := createSettlementFixture(t, db)
	createReservedUnits(t, db, customer.ID, 20.0, 50.0, 1)

	order, err := svc.SettleOrder(SettleOrderInput{
		CustomerID: customer.ID,
		AddressID:  address.ID,
		Allocations: []ProposedAllocation{
			{Amount: models.NewMoneyFromFloat(35.00), CardID: card.ID},
		},
	})
	if err != nil {
		t.Fatalf("SettleOrder error: %v", err)
	}

	for _, target := range []string{
		constants.OrderStatusApproved,
		constants.OrderStatusShipping,
		constants.OrderStatusShipped,
	} {
		if _, err := svc.TransitionStatus(order.ID, target); err != nil {
			t.Fatalf("transition to %s failed: %v", target, err)
		}
	}

	_, err = svc.TransitionStatus(order.ID, constants.OrderStatusProcessing)
	if !errors.Is(err, ErrIllegalStatusTransition) {
		t.Fatalf("expected ErrIllegalStatusTransition, got %v", err)
	}
	var detail *IllegalTransitionError
	if !errors.As(err, &detail) {
		t.Fatalf("expected *IllegalTransitionError, got %T", err)
	}
	if detail.From != constants.OrderStatusShipped || detail.To != constants.OrderStatusProcessing {
		t.Fatalf("unexpected transition detail: %+v", detail)
	}
}

func TestTransitionStatusCancelReleasesInventory(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	customer, address, card := createSettlementFixture(t, db)
	createReservedUnits(t, db, customer.ID, 20.0, 50.0, 2)

	order, err := svc.SettleOrder(SettleOrderInput{
		CustomerID: customer.ID,
		AddressID:  address.ID,
		Allocations: []ProposedAllocation{
			{Amount: models.NewMoneyFromFloat(70.00), CardID: card.ID},
		},
	})
	if err != nil {
		t.Fatalf("SettleOrder error: %v", err)
	}

	updated, err := svc.TransitionStatus(order.ID, constants.OrderStatusCanceled)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if updated.Status != constants.OrderStatusCanceled {
		t.Fatalf("expected CANCELED, got %s", updated.Status)
	}
	if updated.CanceledAt == nil {
		t.Fatalf("expected canceled_at stamp")
	}

	var available int64
	if err := db.Model(&models.InventoryUnit{}).
		Where("status = ?", constants.InventoryStatusAvailable).
		Count(&available).Error; err != nil {
		t.Fatalf("count available failed: %v", err)
	}
	if available != 2 {
		t.Fatalf("expected 2 units released, got %d", available)
	}
}

func TestTransitionStatusCancelReopensCoupon(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	customer, address, card := createSettlementFixture(t, db)
	createReservedUnits(t, db, customer.ID, 20.0, 50.0, 2)

	coupon := &models.Coupon{
		Code:      "VOLTA10",
		Kind:      constants.CouponKindFixedValue,
		Discount:  models.NewMoneyFromFloat(10.00),
		Status:    constants.CouponStatusAvailable,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	if err := db.Create(coupon).Error; err != nil {
		t.Fatalf("create coupon failed: %v", err)
	}

	order, err := svc.SettleOrder(SettleOrderInput{
		CustomerID: customer.ID,
		AddressID:  address.ID,
		CouponCode: "VOLTA10",
		Allocations: []ProposedAllocation{
			{Amount: models.NewMoneyFromFloat(60.00), CardID: card.ID},
		},
	})
	if err != nil {
		t.Fatalf("SettleOrder error: %v", err)
	}

	if _, err := svc.TransitionStatus(order.ID, constants.OrderStatusCanceled); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	var stored models.Coupon
	if err := db.First(&stored, coupon.ID).Error; err != nil {
		t.Fatalf("reload coupon failed: %v", err)
	}
	if stored.Status != constants.CouponStatusAvailable {
		t.Fatalf("expected coupon AVAILABLE after cancel, got %s", stored.Status)
	}
}

func TestCapturePaymentOnlyFromProcessing(t *testing.T) {
	svc, db := setupOrderServiceTest(t)
	customer, address, card := createSettlementFixture(t, db)
	createReservedUnits(t, db, customer.ID, 20.0, 50.0, 1)

	order, err := svc.SettleOrder(SettleOrderInput{
		CustomerID: customer.ID,
		AddressID:  address.ID,
		Allocations: []ProposedAllocation{
			{Amount: models.NewMoneyFromFloat(35.00), CardID: card.ID},
		},
	})
	if err != nil {
		t.Fatalf("SettleOrder error: %v", err)
	}

	if _, err := svc.CapturePayment(order.ID); err != nil {
		t.Fatalf("CapturePayment error: %v", err)
	}

	// 第二次回执必须拒绝，订单已离开 PROCESSING
	if _, err := svc.CapturePayment(order.ID); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected ErrOrderStatusInvalid, got %v", err)
	}

	if _, err := svc.CapturePayment(9999); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
