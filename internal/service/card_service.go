package service

import (
	"strings"
	"time"

	"github.com/livraria-next/internal/models"
	"github.com/livraria-next/internal/repository"
)

// CardService 顾客支付卡管理服务
type CardService struct {
	cardRepo  repository.CardRepository
	brandRepo repository.BrandRepository
}

// NewCardService 创建支付卡服务
func NewCardService(cardRepo repository.CardRepository, brandRepo repository.BrandRepository) *CardService {
	return &CardService{
		cardRepo:  cardRepo,
		brandRepo: brandRepo,
	}
}

// SaveCardInput 保存卡片输入
type SaveCardInput struct {
	HolderName string `json:"holder_name" binding:"required"`
	Number     string `json:"number" binding:"required"`
	CVV        string `json:"cvv" binding:"required"`
	ExpiryDate string `json:"expiry_date" binding:"required"`
	BrandID    uint   `json:"brand_id" binding:"required"`
}

func (s *CardService) validateInput(input SaveCardInput) error {
	if strings.TrimSpace(input.HolderName) == "" {
		return ErrInvalidInstrument
	}
	if len(input.Number) != 16 || !isDigits(input.Number) {
		return ErrInvalidInstrument
	}
	if len(input.CVV) < 3 || len(input.CVV) > 4 || !isDigits(input.CVV) {
		return ErrInvalidInstrument
	}
	if !expiryInFuture(input.ExpiryDate, time.Now()) {
		return ErrInvalidInstrument
	}
	return nil
}

// Create 保存新卡
func (s *CardService) Create(customerID uint, input SaveCardInput) (*models.Card, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}
	brand, err := s.brandRepo.GetByID(input.BrandID)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, ErrInvalidInstrument
	}

	card := &models.Card{
		CustomerID: customerID,
		BrandID:    input.BrandID,
		Number:     input.Number,
		HolderName: strings.TrimSpace(input.HolderName),
		CVV:        input.CVV,
		ExpiryDate: input.ExpiryDate,
	}
	if err := s.cardRepo.Create(card); err != nil {
		return nil, err
	}
	return s.cardRepo.GetByID(card.ID)
}

// Update 更新已保存的卡
func (s *CardService) Update(cardID, customerID uint, input SaveCardInput) (*models.Card, error) {
	card, err := s.cardRepo.GetByID(cardID)
	if err != nil {
		return nil, err
	}
	if card == nil || card.CustomerID != customerID {
		return nil, ErrNotFound
	}
	if err := s.validateInput(input); err != nil {
		return nil, err
	}
	brand, err := s.brandRepo.GetByID(input.BrandID)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, ErrInvalidInstrument
	}

	card.BrandID = input.BrandID
	card.Number = input.Number
	card.HolderName = strings.TrimSpace(input.HolderName)
	card.CVV = input.CVV
	card.ExpiryDate = input.ExpiryDate
	if err := s.cardRepo.Update(card); err != nil {
		return nil, err
	}
	return s.cardRepo.GetByID(card.ID)
}

// Delete 删除已保存的卡
func (s *CardService) Delete(cardID, customerID uint) error {
	card, err := s.cardRepo.GetByID(cardID)
	if err != nil {
		return err
	}
	if card == nil || card.CustomerID != customerID {
		return ErrNotFound
	}
	return s.cardRepo.Delete(cardID)
}

// List 查询顾客的卡列表
func (s *CardService) List(customerID uint) ([]models.Card, error) {
	return s.cardRepo.ListByCustomer(customerID)
}
