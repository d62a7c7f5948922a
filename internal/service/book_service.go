package service

import (
	"strings"

	"github.com/livraria-next/internal/constants"
	"github.com/livraria-next/internal/models"
	"github.com/livraria-next/internal/repository"

	"github.com/shopspring/decimal"
)

// BookService 图书目录服务
type BookService struct {
	bookRepo      repository.BookRepository
	inventoryRepo repository.InventoryRepository
}

// NewBookService 创建图书服务
func NewBookService(bookRepo repository.BookRepository, inventoryRepo repository.InventoryRepository) *BookService {
	return &BookService{
		bookRepo:      bookRepo,
		inventoryRepo: inventoryRepo,
	}
}

// BookView 图书展示数据（含计算售价与可售库存）
type BookView struct {
	models.Book
	SalePrice      models.Money `json:"sale_price"`
	AvailableUnits int64        `json:"available_units"`
}

// SalePriceFor 按最高进货成本与利润率计算售价
func SalePriceFor(maxCost float64, profitPercentage models.Money) models.Money {
	cost := decimal.NewFromFloat(maxCost)
	factor := decimal.NewFromInt(1).Add(profitPercentage.Decimal.Div(decimal.NewFromInt(100)))
	return models.NewMoneyFromDecimal(cost.Mul(factor))
}

// SalePrice 获取图书当前售价
func (s *BookService) SalePrice(book *models.Book) (models.Money, error) {
	if book == nil {
		return models.Money{}, ErrBookNotFound
	}
	maxCost, err := s.inventoryRepo.MaxCostByBook(book.ID)
	if err != nil {
		return models.Money{}, err
	}
	return SalePriceFor(maxCost, book.ProfitPercentage), nil
}

// GetView 获取图书详情（含售价与库存）
func (s *BookService) GetView(id uint) (*BookView, error) {
	book, err := s.bookRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	return s.buildView(book)
}

// ListViews 获取图书列表（含售价与库存）
func (s *BookService) ListViews(filter repository.BookListFilter) ([]BookView, int64, error) {
	books, total, err := s.bookRepo.List(filter)
	if err != nil {
		return nil, 0, err
	}
	views := make([]BookView, 0, len(books))
	for i := range books {
		view, err := s.buildView(&books[i])
		if err != nil {
			return nil, 0, err
		}
		views = append(views, *view)
	}
	return views, total, nil
}

func (s *BookService) buildView(book *models.Book) (*BookView, error) {
	price, err := s.SalePrice(book)
	if err != nil {
		return nil, err
	}
	available, err := s.inventoryRepo.CountAvailableByBook(book.ID)
	if err != nil {
		return nil, err
	}
	return &BookView{
		Book:           *book,
		SalePrice:      price,
		AvailableUnits: available,
	}, nil
}

// CreateBookInput 创建图书输入
type CreateBookInput struct {
	Title            string
	Author           string
	Publisher        string
	Year             int
	Edition          int
	ISBN             string
	Pages            int
	Synopsis         string
	ProfitPercentage models.Money
}

// Create 创建图书
func (s *BookService) Create(input CreateBookInput) (*models.Book, error) {
	isbn := strings.TrimSpace(input.ISBN)
	if isbn == "" || strings.TrimSpace(input.Title) == "" {
		return nil, ErrNotFound
	}
	existing, err := s.bookRepo.GetByISBN(isbn)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrBookISBNTaken
	}
	edition := input.Edition
	if edition < 1 {
		edition = 1
	}
	book := &models.Book{
		Title:            strings.TrimSpace(input.Title),
		Author:           strings.TrimSpace(input.Author),
		Publisher:        strings.TrimSpace(input.Publisher),
		Year:             input.Year,
		Edition:          edition,
		ISBN:             isbn,
		Pages:            input.Pages,
		Synopsis:         input.Synopsis,
		ProfitPercentage: input.ProfitPercentage,
		Status:           constants.BookStatusActive,
	}
	if err := s.bookRepo.Create(book); err != nil {
		return nil, err
	}
	return book, nil
}

// Update 更新图书
func (s *BookService) Update(id uint, input CreateBookInput) (*models.Book, error) {
	book, err := s.bookRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	book.Title = strings.TrimSpace(input.Title)
	book.Author = strings.TrimSpace(input.Author)
	book.Publisher = strings.TrimSpace(input.Publisher)
	book.Year = input.Year
	if input.Edition >= 1 {
		book.Edition = input.Edition
	}
	book.Pages = input.Pages
	book.Synopsis = input.Synopsis
	book.ProfitPercentage = input.ProfitPercentage
	if err := s.bookRepo.Update(book); err != nil {
		return nil, err
	}
	return book, nil
}

// SetStatus 上下架图书
func (s *BookService) SetStatus(id uint, status, reason string) error {
	if status != constants.BookStatusActive && status != constants.BookStatusInactive {
		return ErrNotFound
	}
	book, err := s.bookRepo.GetByID(id)
	if err != nil {
		return err
	}
	if book == nil {
		return ErrBookNotFound
	}
	return s.bookRepo.UpdateStatus(id, status, strings.TrimSpace(reason))
}
