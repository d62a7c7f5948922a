package repository

import (
	"errors"

	"github.com/livraria-next/internal/models"

	"gorm.io/gorm"
)

// CardRepository 银行卡数据访问接口
type CardRepository interface {
	GetByID(id uint) (*models.Card, error)
	ListByCustomer(customerID uint) ([]models.Card, error)
	ListByIDs(ids []uint) ([]models.Card, error)
	Create(card *models.Card) error
	Update(card *models.Card) error
	Delete(id uint) error
	WithTx(tx *gorm.DB) *GormCardRepository
}

// GormCardRepository GORM 实现
type GormCardRepository struct {
	db *gorm.DB
}

// NewCardRepository 创建银行卡仓库
func NewCardRepository(db *gorm.DB) *GormCardRepository {
	return &GormCardRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCardRepository) WithTx(tx *gorm.DB) *GormCardRepository {
	if tx == nil {
		return r
	}
	return &GormCardRepository{db: tx}
}

// GetByID 根据ID获取银行卡
func (r *GormCardRepository) GetByID(id uint) (*models.Card, error) {
	var card models.Card
	if err := r.db.Preload("Brand").First(&card, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &card, nil
}

// ListByCustomer 获取顾客保存的银行卡
func (r *GormCardRepository) ListByCustomer(customerID uint) ([]models.Card, error) {
	var cards []models.Card
	if err := r.db.Preload("Brand").Where("customer_id = ?", customerID).Order("id desc").Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// ListByIDs 批量获取银行卡
func (r *GormCardRepository) ListByIDs(ids []uint) ([]models.Card, error) {
	if len(ids) == 0 {
		return []models.Card{}, nil
	}
	var cards []models.Card
	if err := r.db.Preload("Brand").Where("id IN ?", ids).Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// Create 创建银行卡
func (r *GormCardRepository) Create(card *models.Card) error {
	return r.db.Create(card).Error
}

// Update 更新银行卡
func (r *GormCardRepository) Update(card *models.Card) error {
	return r.db.Save(card).Error
}

// Delete 删除银行卡
func (r *GormCardRepository) Delete(id uint) error {
	return r.db.Delete(&models.Card{}, id).Error
}
