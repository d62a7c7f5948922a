package service

import (
	"strings"

	"github.com/livraria-next/internal/models"
	"github.com/livraria-next/internal/repository"
)

// AddressService 顾客地址簿服务
type AddressService struct {
	addressRepo repository.AddressRepository
}

// NewAddressService 创建地址服务
func NewAddressService(addressRepo repository.AddressRepository) *AddressService {
	return &AddressService{addressRepo: addressRepo}
}

// SaveAddressInput 保存地址输入
type SaveAddressInput struct {
	Alias         string `json:"alias"`
	ResidenceType string `json:"residence_type" binding:"required"`
	StreetType    string `json:"street_type" binding:"required"`
	Street        string `json:"street" binding:"required"`
	Number        string `json:"number" binding:"required"`
	District      string `json:"district" binding:"required"`
	Zipcode       string `json:"zipcode" binding:"required"`
	City          string `json:"city" binding:"required"`
	State         string `json:"state" binding:"required"`
	Country       string `json:"country" binding:"required"`
	Observations  string `json:"observations"`
}

func applyAddressInput(address *models.Address, input SaveAddressInput) {
	address.Alias = strings.TrimSpace(input.Alias)
	address.ResidenceType = strings.TrimSpace(input.ResidenceType)
	address.StreetType = strings.TrimSpace(input.StreetType)
	address.Street = strings.TrimSpace(input.Street)
	address.Number = strings.TrimSpace(input.Number)
	address.District = strings.TrimSpace(input.District)
	address.Zipcode = strings.TrimSpace(input.Zipcode)
	address.City = strings.TrimSpace(input.City)
	address.State = strings.TrimSpace(input.State)
	address.Country = strings.TrimSpace(input.Country)
	address.Observations = strings.TrimSpace(input.Observations)
}

// Create 新增地址
func (s *AddressService) Create(customerID uint, input SaveAddressInput) (*models.Address, error) {
	address := &models.Address{CustomerID: customerID}
	applyAddressInput(address, input)
	if err := s.addressRepo.Create(address); err != nil {
		return nil, err
	}
	return address, nil
}

// Update 更新地址
func (s *AddressService) Update(addressID, customerID uint, input SaveAddressInput) (*models.Address, error) {
	address, err := s.addressRepo.GetByID(addressID)
	if err != nil {
		return nil, err
	}
	if address == nil || address.CustomerID != customerID {
		return nil, ErrNotFound
	}
	applyAddressInput(address, input)
	if err := s.addressRepo.Update(address); err != nil {
		return nil, err
	}
	return address, nil
}

// Delete 删除地址
func (s *AddressService) Delete(addressID, customerID uint) error {
	address, err := s.addressRepo.GetByID(addressID)
	if err != nil {
		return err
	}
	if address == nil || address.CustomerID != customerID {
		return ErrNotFound
	}
	return s.addressRepo.Delete(addressID)
}

// List 查询顾客的地址列表
func (s *AddressService) List(customerID uint) ([]models.Address, error) {
	return s.addressRepo.ListByCustomer(customerID)
}
