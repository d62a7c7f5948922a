package service

import (
	"strings"

	"github.com/livraria-next/internal/models"
	"github.com/livraria-next/internal/repository"
)

// BrandService 卡品牌管理服务
type BrandService struct {
	brandRepo repository.BrandRepository
}

// NewBrandService 创建品牌服务
func NewBrandService(brandRepo repository.BrandRepository) *BrandService {
	return &BrandService{brandRepo: brandRepo}
}

// Create 创建品牌
func (s *BrandService) Create(name string) (*models.Brand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNotFound
	}
	existing, err := s.brandRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	brand := &models.Brand{Name: name}
	if err := s.brandRepo.Create(brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// Update 重命名品牌
func (s *BrandService) Update(id uint, name string) (*models.Brand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNotFound
	}
	brand, err := s.brandRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, ErrNotFound
	}
	brand.Name = name
	if err := s.brandRepo.Update(brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// Delete 删除品牌
func (s *BrandService) Delete(id uint) error {
	brand, err := s.brandRepo.GetByID(id)
	if err != nil {
		return err
	}
	if brand == nil {
		return ErrNotFound
	}
	return s.brandRepo.Delete(id)
}

// List 查询全部品牌
func (s *BrandService) List() ([]models.Brand, error) {
	return s.brandRepo.ListAll()
}
