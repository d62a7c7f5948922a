package service

import (
	"github.com/livraria-next/internal/constants"
	"github.com/livraria-next/internal/models"
	"github.com/livraria-next/internal/repository"

	"github.com/shopspring/decimal"
)

// CartService 购物车服务（购物车即顾客名下预留的库存单元投影）
type CartService struct {
	bookRepo      repository.BookRepository
	inventoryRepo repository.InventoryRepository
}

// NewCartService 创建购物车服务
func NewCartService(bookRepo repository.BookRepository, inventoryRepo repository.InventoryRepository) *CartService {
	return &CartService{
		bookRepo:      bookRepo,
		inventoryRepo: inventoryRepo,
	}
}

// CartLine 购物车行（同一本书的预留单元聚合）
type CartLine struct {
	BookID    uint         `json:"book_id"`
	Title     string       `json:"title"`
	Author    string       `json:"author"`
	ISBN      string       `json:"isbn"`
	Quantity  int          `json:"quantity"`
	UnitPrice models.Money `json:"unit_price"`
	LineTotal models.Money `json:"line_total"`
	UnitIDs   []uint       `json:"unit_ids"`
}

// CartView 购物车视图
type CartView struct {
	Lines          []CartLine   `json:"lines"`
	ItemCount      int          `json:"item_count"`
	SubtotalAmount models.Money `json:"subtotal_amount"`
}

// Get 获取顾客当前购物车
func (s *CartService) Get(customerID uint) (*CartView, error) {
	units, err := s.inventoryRepo.ListReservedByCustomer(customerID)
	if err != nil {
		return nil, err
	}

	view := &CartView{Lines: []CartLine{}}
	indexByBook := make(map[uint]int)
	subtotal := decimal.Zero
	for _, unit := range units {
		idx, ok := indexByBook[unit.BookID]
		if !ok {
			if unit.Book == nil {
				return nil, ErrBookNotFound
			}
			maxCost, err := s.inventoryRepo.MaxCostByBook(unit.BookID)
			if err != nil {
				return nil, err
			}
			price := SalePriceFor(maxCost, unit.Book.ProfitPercentage)
			view.Lines = append(view.Lines, CartLine{
				BookID:    unit.BookID,
				Title:     unit.Book.Title,
				Author:    unit.Book.Author,
				ISBN:      unit.Book.ISBN,
				UnitPrice: price,
			})
			idx = len(view.Lines) - 1
			indexByBook[unit.BookID] = idx
		}
		line := &view.Lines[idx]
		line.Quantity++
		line.UnitIDs = append(line.UnitIDs, unit.ID)
		line.LineTotal = models.NewMoneyFromDecimal(line.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(line.Quantity))))
		subtotal = subtotal.Add(line.UnitPrice.Decimal)
		view.ItemCount++
	}
	view.SubtotalAmount = models.NewMoneyFromDecimal(subtotal)
	return view, nil
}

// Add 向购物车加入指定数量的图书（预留可售库存单元）
func (s *CartService) Add(customerID, bookID uint, quantity int) (*CartView, error) {
	if quantity < 1 {
		quantity = 1
	}
	book, err := s.bookRepo.GetByID(bookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	if book.Status != constants.BookStatusActive {
		return nil, ErrBookInactive
	}

	reserved, err := s.inventoryRepo.Reserve(bookID, customerID, quantity)
	if err != nil {
		return nil, err
	}
	if reserved < quantity {
		// 库存不足时整体回退，避免半量预留
		if reserved > 0 {
			if _, err := s.inventoryRepo.Release(bookID, customerID, reserved); err != nil {
				return nil, err
			}
		}
		return nil, ErrOutOfStock
	}
	return s.Get(customerID)
}

// Remove 从购物车移除指定数量的图书（释放预留单元）
func (s *CartService) Remove(customerID, bookID uint, quantity int) (*CartView, error) {
	if quantity < 1 {
		quantity = 1
	}
	if _, err := s.inventoryRepo.Release(bookID, customerID, quantity); err != nil {
		return nil, err
	}
	return s.Get(customerID)
}

// Clear 清空购物车
func (s *CartService) Clear(customerID uint) error {
	return s.inventoryRepo.ReleaseAllByCustomer(customerID)
}
