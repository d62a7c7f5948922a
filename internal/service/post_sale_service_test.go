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

func setupPostSaleServiceTest(t *testing.T) (*PostSaleService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:post_sale_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Book{},
		&models.InventoryUnit{},
		&models.Order{},
		&models.Transaction{},
		&models.CardPayment{},
		&models.ReturnExchangeRequest{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	postSaleRepo := repository.NewPostSaleRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	return NewPostSaleService(postSaleRepo, orderRepo, inventoryRepo), db
}

func createOrderWithSoldUnits(t *testing.T, db *gorm.DB, customerID uint, status string, unitCount int) (*models.Order, []uint) {
	t.Helper()
	book := &models.Book{
		Title:            "Memórias Póstumas de Brás Cubas",
		Author:           "Machado de Assis",
		Publisher:        "Revista Brasileira",
		Year:             1881,
		Edition:          1,
		ISBN:             fmt.Sprintf("978-85-260-%04d-%d", customerID, unitCount),
		ProfitPercentage: models.NewMoneyFromFloat(50),
		Status:           constants.BookStatusActive,
	}
	if err := db.Create(book).Error; err != nil {
		t.Fatalf("create book failed: %v", err)
	}

	order := &models.Order{
		OrderNo:    fmt.Sprintf("LV%d%d", time.Now().UnixNano(), customerID),
		CustomerID: customerID,
		Status:     status,
		Street:     "Rua das Flores",
		Number:     "100",
		District:   "Centro",
		Zipcode:    "01000-00",
		City:       "São Paulo",
		State:      "SP",
		Country:    "Brasil",
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	now := time.Now()
	unitIDs := make([]uint, 0, unitCount)
	for i := 0; i < unitCount; i++ {
		unit := &models.InventoryUnit{
			Code:      fmt.Sprintf("ps-unit-%d-%d-%d", customerID, order.ID, i),
			BookID:    book.ID,
			EntryDate: now,
			Supplier:  "Distribuidora Central",
			CostValue: models.NewMoneyFromFloat(20),
			Status:    constants.InventoryStatusSold,
			OrderID:   &order.ID,
			SaleDate:  &now,
		}
		if err := db.Create(unit).Error; err != nil {
			t.Fatalf("create unit failed: %v", err)
		}
		unitIDs = append(unitIDs, unit.ID)
	}
	return order, unitIDs
}

func TestCreatePostSaleRequiresDeliveredOrder(t *testing.T) {
	svc, db := setupPostSaleServiceTest(t)
	order, unitIDs := createOrderWithSoldUnits(t, db, 1, constants.OrderStatusShipping, 1)

	_, err := svc.Create(CreatePostSaleInput{
		CustomerID: 1,
		OrderID:    order.ID,
		Kind:       constants.PostSaleKindReturn,
		ItemIDs:    unitIDs,
		Reason:     "chegou com a capa danificada",
	})
	if !errors.Is(err, ErrOrderNotEligibleForPostSale) {
		t.Fatalf("expected ErrOrderNotEligibleForPostSale, got %v", err)
	}
}

func TestCreatePostSaleRejectsForeignItems(t *testing.T) {
	svc, db := setupPostSaleServiceTest(t)
	order, _ := createOrderWithSoldUnits(t, db, 1, constants.OrderStatusDelivered, 1)
	_, otherUnitIDs := createOrderWithSoldUnits(t, db, 2, constants.OrderStatusDelivered, 1)

	_, err := svc.Create(CreatePostSaleInput{
		CustomerID: 1,
		OrderID:    order.ID,
		Kind:       constants.PostSaleKindReturn,
		ItemIDs:    otherUnitIDs,
		Reason:     "item errado",
	})
	if !errors.Is(err, ErrPostSaleItemsInvalid) {
		t.Fatalf("expected ErrPostSaleItemsInvalid, got %v", err)
	}
}

func TestReturnCompletionReleasesUnits(t *testing.T) {
	svc, db := setupPostSaleServiceTest(t)
	order, unitIDs := createOrderWithSoldUnits(t, db, 1, constants.OrderStatusDelivered, 2)

	request, err := svc.Create(CreatePostSaleInput{
		CustomerID: 1,
		OrderID:    order.ID,
		Kind:       constants.PostSaleKindReturn,
		ItemIDs:    unitIDs,
		Reason:     "desisti da compra",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if request.Status != constants.PostSaleStatusReturnRequested {
		t.Fatalf("expected RETURN_REQUESTED, got %s", request.Status)
	}

	updated, err := svc.Transition(request.ID, constants.PostSaleStatusReturnCompleted)
	if err != nil {
		t.Fatalf("Transition error: %v", err)
	}
	if updated.Status != constants.PostSaleStatusReturnCompleted {
		t.Fatalf("expected RETURN_COMPLETED, got %s", updated.Status)
	}

	var available int64
	if err := db.Model(&models.InventoryUnit{}).
		Where("id IN ? AND status = ?", unitIDs, constants.InventoryStatusAvailable).
		Count(&available).Error; err != nil {
		t.Fatalf("count available failed: %v", err)
	}
	if available != 2 {
		t.Fatalf("expected 2 units back to AVAILABLE, got %d", available)
	}
}

func TestExchangeCompletionBlocksUnits(t *testing.T) {
	svc, db := setupPostSaleServiceTest(t)
	order, unitIDs := createOrderWithSoldUnits(t, db, 1, constants.OrderStatusDelivered, 1)

	request, err := svc.Create(CreatePostSaleInput{
		CustomerID: 1,
		OrderID:    order.ID,
		Kind:       constants.PostSaleKindExchange,
		ItemIDs:    unitIDs,
		Reason:     "páginas faltando",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// 换货必须先通过受理
	if _, err := svc.Transition(request.ID, constants.PostSaleStatusExchangeCompleted); !errors.Is(err, ErrIllegalStatusTransition) {
		t.Fatalf("expected ErrIllegalStatusTransition, got %v", err)
	}
	if _, err := svc.Transition(request.ID, constants.PostSaleStatusExchangeAccepted); err != nil {
		t.Fatalf("accept failed: %v", err)
	}
	if _, err := svc.Transition(request.ID, constants.PostSaleStatusExchangeCompleted); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	var blocked int64
	if err := db.Model(&models.InventoryUnit{}).
		Where("id IN ? AND status = ?", unitIDs, constants.InventoryStatusBlocked).
		Count(&blocked).Error; err != nil {
		t.Fatalf("count blocked failed: %v", err)
	}
	if blocked != 1 {
		t.Fatalf("expected 1 BLOCKED unit, got %d", blocked)
	}
}

func TestPostSaleKindsNeverCross(t *testing.T) {
	svc, db := setupPostSaleServiceTest(t)
	order, unitIDs := createOrderWithSoldUnits(t, db, 1, constants.OrderStatusDelivered, 1)

	request, err := svc.Create(CreatePostSaleInput{
		CustomerID: 1,
		OrderID:    order.ID,
		Kind:       constants.PostSaleKindReturn,
		ItemIDs:    unitIDs,
		Reason:     "arrependimento",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if _, err := svc.Transition(request.ID, constants.PostSaleStatusExchangeAccepted); !errors.Is(err, ErrIllegalStatusTransition) {
		t.Fatalf("expected ErrIllegalStatusTransition for cross-kind move, got %v", err)
	}
}

func TestCancelByOwnerOnlyWhileRequested(t *testing.T) {
	svc, db := setupPostSaleServiceTest(t)
	order, unitIDs := createOrderWithSoldUnits(t, db, 1, constants.OrderStatusDelivered, 1)

	request, err := svc.Create(CreatePostSaleInput{
		CustomerID: 1,
		OrderID:    order.ID,
		Kind:       constants.PostSaleKindExchange,
		ItemIDs:    unitIDs,
		Reason:     "mudei de ideia",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	canceled, err := svc.CancelByOwner(request.ID, 1)
	if err != nil {
		t.Fatalf("CancelByOwner error: %v", err)
	}
	if canceled.Status != constants.PostSaleStatusExchangeRejected {
		t.Fatalf("expected EXCHANGE_REJECTED, got %s", canceled.Status)
	}
	if !canceled.CanceledByOwner {
		t.Fatalf("expected canceled_by_owner flag set")
	}

	// 已离开待处理状态后不可再取消
	if _, err := svc.CancelByOwner(request.ID, 1); !errors.Is(err, ErrIllegalStatusTransition) {
		t.Fatalf("expected ErrIllegalStatusTransition, got %v", err)
	}

	// 非本人不可取消
	order2, unitIDs2 := createOrderWithSoldUnits(t, db, 3, constants.OrderStatusDelivered, 1)
	request2, err := svc.Create(CreatePostSaleInput{
		CustomerID: 3,
		OrderID:    order2.ID,
		Kind:       constants.PostSaleKindReturn,
		ItemIDs:    unitIDs2,
		Reason:     "livro errado",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := svc.CancelByOwner(request2.ID, 1); !errors.Is(err, ErrPostSaleNotFound) {
		t.Fatalf("expected ErrPostSaleNotFound for foreign request, got %v", err)
	}
}
