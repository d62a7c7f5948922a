package repository

import (
	"errors"

	"github.com/livraria-next/internal/models"

	"gorm.io/gorm"
)

// BrandRepository 卡牌品牌数据访问接口
type BrandRepository interface {
	GetByID(id uint) (*models.Brand, error)
	GetByName(name string) (*models.Brand, error)
	ListAll() ([]models.Brand, error)
	Create(brand *models.Brand) error
	Update(brand *models.Brand) error
	Delete(id uint) error
	WithTx(tx *gorm.DB) *GormBrandRepository
}

// GormBrandRepository GORM 实现
type GormBrandRepository struct {
	db *gorm.DB
}

// NewBrandRepository 创建品牌仓库
func NewBrandRepository(db *gorm.DB) *GormBrandRepository {
	return &GormBrandRepository{db: db}
}

// WithTx 绑定事务
func (r *GormBrandRepository) WithTx(tx *gorm.DB) *GormBrandRepository {
	if tx == nil {
		return r
	}
	return &GormBrandRepository{db: tx}
}

// GetByID 根据ID获取品牌
func (r *GormBrandRepository) GetByID(id uint) (*models.Brand, error) {
	var brand models.Brand
	if err := r.db.First(&brand, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

// GetByName 根据名称获取品牌
func (r *GormBrandRepository) GetByName(name string) (*models.Brand, error) {
	var brand models.Brand
	if err := r.db.Where("name = ?", name).First(&brand).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

// ListAll 获取全部品牌
func (r *GormBrandRepository) ListAll() ([]models.Brand, error) {
	var brands []models.Brand
	if err := r.db.Order("name asc").Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

// Create 创建品牌
func (r *GormBrandRepository) Create(brand *models.Brand) error {
	return r.db.Create(brand).Error
}

// Update 更新品牌
func (r *GormBrandRepository) Update(brand *models.Brand) error {
	return r.db.Save(brand).Error
}

// Delete 删除品牌
func (r *GormBrandRepository) Delete(id uint) error {
	return r.db.Delete(&models.Brand{}, id).Error
}
