package service

import (
	"strings"
	"time"

	"github.com/livraria-next/internal/constants"
	"github.com/livraria-next/internal/models"
	"github.com/livraria-next/internal/repository"

	"github.com/google/uuid"
)

// StockService 库存入库与单元管理服务
type StockService struct {
	bookRepo      repository.BookRepository
	inventoryRepo repository.InventoryRepository
}

// NewStockService 创建库存服务
func NewStockService(bookRepo repository.BookRepository, inventoryRepo repository.InventoryRepository) *StockService {
	return &StockService{
		bookRepo:      bookRepo,
		inventoryRepo: inventoryRepo,
	}
}

// StockIntakeInput 入库输入
type StockIntakeInput struct {
	BookID    uint         `json:"book_id" binding:"required"`
	Quantity  int          `json:"quantity" binding:"required,min=1"`
	Supplier  string       `json:"supplier" binding:"required"`
	CostValue models.Money `json:"cost_value" binding:"required"`
	EntryDate *time.Time   `json:"entry_date"`
}

// Intake 批量入库：为同一批次生成独立编码的库存单元
func (s *StockService) Intake(input StockIntakeInput) ([]models.InventoryUnit, error) {
	if input.Quantity < 1 || strings.TrimSpace(input.Supplier) == "" {
		return nil, ErrNotFound
	}
	if input.CostValue.Decimal.IsNegative() {
		return nil, ErrNotFound
	}
	book, err := s.bookRepo.GetByID(input.BookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}

	entryDate := time.Now()
	if input.EntryDate != nil {
		entryDate = *input.EntryDate
	}
	units := make([]models.InventoryUnit, 0, input.Quantity)
	for i := 0; i < input.Quantity; i++ {
		units = append(units, models.InventoryUnit{
			Code:      "BOK-" + uuid.NewString(),
			BookID:    input.BookID,
			EntryDate: entryDate,
			Supplier:  strings.TrimSpace(input.Supplier),
			CostValue: input.CostValue,
			Status:    constants.InventoryStatusAvailable,
		})
	}
	if err := s.inventoryRepo.CreateBatch(units); err != nil {
		return nil, err
	}
	return units, nil
}

// ListUnits 查询库存单元
func (s *StockService) ListUnits(filter repository.InventoryListFilter) ([]models.InventoryUnit, int64, error) {
	return s.inventoryRepo.List(filter)
}

// ReactivateBlocked 将封存单元重新上架
func (s *StockService) ReactivateBlocked(unitID uint) error {
	unit, err := s.inventoryRepo.GetByID(unitID)
	if err != nil {
		return err
	}
	if unit == nil {
		return ErrNotFound
	}
	if unit.Status != constants.InventoryStatusBlocked {
		return &IllegalTransitionError{From: unit.Status, To: constants.InventoryStatusAvailable}
	}
	affected, err := s.inventoryRepo.SetStatusByIDs([]uint{unitID}, constants.InventoryStatusBlocked, constants.InventoryStatusAvailable)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrInventoryUnavailable
	}
	return nil
}
