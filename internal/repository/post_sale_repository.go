package repository

import (
	"errors"

	"github.com/livraria-next/internal/models"

	"gorm.io/gorm"
)

// PostSaleRepository 售后请求数据访问接口
type PostSaleRepository interface {
	GetByID(id uint) (*models.ReturnExchangeRequest, error)
	Create(request *models.ReturnExchangeRequest) error
	Update(request *models.ReturnExchangeRequest) error
	UpdateStatus(id uint, status string, canceledByOwner bool) error
	List(filter PostSaleListFilter) ([]models.ReturnExchangeRequest, int64, error)
	WithTx(tx *gorm.DB) *GormPostSaleRepository
}

// PostSaleListFilter 售后列表筛选
type PostSaleListFilter struct {
	CustomerID uint
	OrderID    uint
	Kind       string
	Status     string
	Page       int
	PageSize   int
}

// GormPostSaleRepository GORM 实现
type GormPostSaleRepository struct {
	db *gorm.DB
}

// NewPostSaleRepository 创建售后仓库
func NewPostSaleRepository(db *gorm.DB) *GormPostSaleRepository {
	return &GormPostSaleRepository{db: db}
}

// WithTx 绑定事务
func (r *GormPostSaleRepository) WithTx(tx *gorm.DB) *GormPostSaleRepository {
	if tx == nil {
		return r
	}
	return &GormPostSaleRepository{db: tx}
}

// GetByID 根据ID获取售后请求（含关联单元）
func (r *GormPostSaleRepository) GetByID(id uint) (*models.ReturnExchangeRequest, error) {
	var request models.ReturnExchangeRequest
	if err := r.db.Preload("Items").Preload("Items.Book").First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

// Create 创建售后请求
func (r *GormPostSaleRepository) Create(request *models.ReturnExchangeRequest) error {
	return r.db.Create(request).Error
}

// Update 更新售后请求
func (r *GormPostSaleRepository) Update(request *models.ReturnExchangeRequest) error {
	return r.db.Save(request).Error
}

// UpdateStatus 更新售后请求状态
func (r *GormPostSaleRepository) UpdateStatus(id uint, status string, canceledByOwner bool) error {
	updates := map[string]interface{}{"status": status}
	if canceledByOwner {
		updates["canceled_by_owner"] = true
	}
	return r.db.Model(&models.ReturnExchangeRequest{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// List 获取售后请求列表
func (r *GormPostSaleRepository) List(filter PostSaleListFilter) ([]models.ReturnExchangeRequest, int64, error) {
	var requests []models.ReturnExchangeRequest
	query := r.db.Model(&models.ReturnExchangeRequest{})

	if filter.CustomerID > 0 {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.OrderID > 0 {
		query = query.Where("order_id = ?", filter.OrderID)
	}
	if filter.Kind != "" {
		query = query.Where("kind = ?", filter.Kind)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Preload("Items").Order("id desc").Find(&requests).Error; err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}
