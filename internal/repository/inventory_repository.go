package repository

import (
	"errors"
	"time"

	"github.com/livraria-next/internal/constants"
	"github.com/livraria-next/internal/models"

	"gorm.io/gorm"
)

// InventoryRepository 库存单元数据访问接口
type InventoryRepository interface {
	GetByID(id uint) (*models.InventoryUnit, error)
	GetByCode(code string) (*models.InventoryUnit, error)
	ListByIDs(ids []uint) ([]models.InventoryUnit, error)
	ListByOrder(orderID uint) ([]models.InventoryUnit, error)
	ListReservedByCustomer(customerID uint) ([]models.InventoryUnit, error)
	CountAvailableByBook(bookID uint) (int64, error)
	MaxCostByBook(bookID uint) (float64, error)
	CreateBatch(units []models.InventoryUnit) error
	Update(unit *models.InventoryUnit) error
	UpdateStatus(id uint, status string) error
	Reserve(bookID, customerID uint, quantity int) (int, error)
	Release(bookID, customerID uint, quantity int) (int, error)
	ReleaseAllByCustomer(customerID uint) error
	MarkSoldByCustomer(customerID, orderID uint, soldAt time.Time) (int64, error)
	ReleaseByOrder(orderID uint) error
	SetStatusByIDs(ids []uint, fromStatus, toStatus string) (int64, error)
	List(filter InventoryListFilter) ([]models.InventoryUnit, int64, error)
	WithTx(tx *gorm.DB) *GormInventoryRepository
}

// InventoryListFilter 库存列表筛选
type InventoryListFilter struct {
	BookID   uint
	Status   string
	Supplier string
	Page     int
	PageSize int
}

// GormInventoryRepository GORM 实现
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository 创建库存仓库
func NewInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// WithTx 绑定事务
func (r *GormInventoryRepository) WithTx(tx *gorm.DB) *GormInventoryRepository {
	if tx == nil {
		return r
	}
	return &GormInventoryRepository{db: tx}
}

// GetByID 根据ID获取库存单元
func (r *GormInventoryRepository) GetByID(id uint) (*models.InventoryUnit, error) {
	var unit models.InventoryUnit
	if err := r.db.Preload("Book").First(&unit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &unit, nil
}

// GetByCode 根据编码获取库存单元
func (r *GormInventoryRepository) GetByCode(code string) (*models.InventoryUnit, error) {
	var unit models.InventoryUnit
	if err := r.db.Preload("Book").Where("code = ?", code).First(&unit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &unit, nil
}

// ListByIDs 批量获取库存单元
func (r *GormInventoryRepository) ListByIDs(ids []uint) ([]models.InventoryUnit, error) {
	if len(ids) == 0 {
		return []models.InventoryUnit{}, nil
	}
	var units []models.InventoryUnit
	if err := r.db.Preload("Book").Where("id IN ?", ids).Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

// ListByOrder 获取订单关联的库存单元
func (r *GormInventoryRepository) ListByOrder(orderID uint) ([]models.InventoryUnit, error) {
	var units []models.InventoryUnit
	if err := r.db.Preload("Book").Where("order_id = ?", orderID).Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

// ListReservedByCustomer 获取顾客购物车预留的库存单元
func (r *GormInventoryRepository) ListReservedByCustomer(customerID uint) ([]models.InventoryUnit, error) {
	var units []models.InventoryUnit
	if err := r.db.Preload("Book").
		Where("reserved_by_customer_id = ? AND status = ?", customerID, constants.InventoryStatusReserved).
		Order("id asc").
		Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

// CountAvailableByBook 统计图书可售库存
func (r *GormInventoryRepository) CountAvailableByBook(bookID uint) (int64, error) {
	var total int64
	err := r.db.Model(&models.InventoryUnit{}).
		Where("book_id = ? AND status = ?", bookID, constants.InventoryStatusAvailable).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// MaxCostByBook 获取图书库存单元的最高进货成本（用于定价）
func (r *GormInventoryRepository) MaxCostByBook(bookID uint) (float64, error) {
	var max float64
	err := r.db.Model(&models.InventoryUnit{}).
		Where("book_id = ?", bookID).
		Select("COALESCE(MAX(cost_value), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max, nil
}

// CreateBatch 批量入库
func (r *GormInventoryRepository) CreateBatch(units []models.InventoryUnit) error {
	if len(units) == 0 {
		return nil
	}
	return r.db.Create(&units).Error
}

// Update 更新库存单元
func (r *GormInventoryRepository) Update(unit *models.InventoryUnit) error {
	return r.db.Save(unit).Error
}

// UpdateStatus 更新库存单元状态
func (r *GormInventoryRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.InventoryUnit{}).
		Where("id = ?", id).
		UpdateColumn("status", status).Error
}

// Reserve 为顾客预留可售单元，返回实际预留数量
func (r *GormInventoryRepository) Reserve(bookID, customerID uint, quantity int) (int, error) {
	if quantity <= 0 {
		return 0, nil
	}
	var ids []uint
	err := r.db.Model(&models.InventoryUnit{}).
		Where("book_id = ? AND status = ?", bookID, constants.InventoryStatusAvailable).
		Order("id asc").
		Limit(quantity).
		Pluck("id", &ids).Error
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}
	// 二次校验状态，避免并发下重复预留同一单元。
	result := r.db.Model(&models.InventoryUnit{}).
		Where("id IN ? AND status = ?", ids, constants.InventoryStatusAvailable).
		Updates(map[string]interface{}{
			"status":                  constants.InventoryStatusReserved,
			"reserved_by_customer_id": customerID,
			"order_id":                nil,
			"sale_date":               nil,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return int(result.RowsAffected), nil
}

// Release 释放顾客预留的单元，返回实际释放数量
func (r *GormInventoryRepository) Release(bookID, customerID uint, quantity int) (int, error) {
	if quantity <= 0 {
		return 0, nil
	}
	var ids []uint
	err := r.db.Model(&models.InventoryUnit{}).
		Where("book_id = ? AND reserved_by_customer_id = ? AND status = ?",
			bookID, customerID, constants.InventoryStatusReserved).
		Order("id desc").
		Limit(quantity).
		Pluck("id", &ids).Error
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.Model(&models.InventoryUnit{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"status":                  constants.InventoryStatusAvailable,
			"reserved_by_customer_id": nil,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return int(result.RowsAffected), nil
}

// ReleaseAllByCustomer 清空顾客购物车预留
func (r *GormInventoryRepository) ReleaseAllByCustomer(customerID uint) error {
	return r.db.Model(&models.InventoryUnit{}).
		Where("reserved_by_customer_id = ? AND status = ?", customerID, constants.InventoryStatusReserved).
		Updates(map[string]interface{}{
			"status":                  constants.InventoryStatusAvailable,
			"reserved_by_customer_id": nil,
		}).Error
}

// MarkSoldByCustomer 将顾客预留单元标记为售出并绑定订单
func (r *GormInventoryRepository) MarkSoldByCustomer(customerID, orderID uint, soldAt time.Time) (int64, error) {
	result := r.db.Model(&models.InventoryUnit{}).
		Where("reserved_by_customer_id = ? AND status = ?", customerID, constants.InventoryStatusReserved).
		Updates(map[string]interface{}{
			"status":                  constants.InventoryStatusSold,
			"reserved_by_customer_id": nil,
			"order_id":                orderID,
			"sale_date":               soldAt,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// ReleaseByOrder 释放订单占用的单元（拒绝/取消后回到可售）
func (r *GormInventoryRepository) ReleaseByOrder(orderID uint) error {
	return r.db.Model(&models.InventoryUnit{}).
		Where("order_id = ? AND status = ?", orderID, constants.InventoryStatusSold).
		Updates(map[string]interface{}{
			"status":    constants.InventoryStatusAvailable,
			"sale_date": nil,
		}).Error
}

// SetStatusByIDs 批量变更状态（要求当前状态一致），返回受影响行数
func (r *GormInventoryRepository) SetStatusByIDs(ids []uint, fromStatus, toStatus string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.Model(&models.InventoryUnit{}).
		Where("id IN ? AND status = ?", ids, fromStatus).
		UpdateColumn("status", toStatus)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// List 获取库存列表
func (r *GormInventoryRepository) List(filter InventoryListFilter) ([]models.InventoryUnit, int64, error) {
	var units []models.InventoryUnit
	query := r.db.Model(&models.InventoryUnit{})

	if filter.BookID > 0 {
		query = query.Where("book_id = ?", filter.BookID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Supplier != "" {
		query = query.Where("supplier LIKE ?", "%"+filter.Supplier+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Preload("Book").Order("id desc").Find(&units).Error; err != nil {
		return nil, 0, err
	}
	return units, total, nil
}
