package repository

import (
	"errors"

	"github.com/livraria-next/internal/models"

	"gorm.io/gorm"
)

// BookRepository 图书数据访问接口
type BookRepository interface {
	GetByID(id uint) (*models.Book, error)
	GetByISBN(isbn string) (*models.Book, error)
	Create(book *models.Book) error
	Update(book *models.Book) error
	UpdateStatus(id uint, status string, reason string) error
	Delete(id uint) error
	List(filter BookListFilter) ([]models.Book, int64, error)
	WithTx(tx *gorm.DB) *GormBookRepository
}

// BookListFilter 图书列表筛选
type BookListFilter struct {
	Title    string
	Author   string
	ISBN     string
	Status   string
	Page     int
	PageSize int
}

// GormBookRepository GORM 实现
type GormBookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓库
func NewBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

// WithTx 绑定事务
func (r *GormBookRepository) WithTx(tx *gorm.DB) *GormBookRepository {
	if tx == nil {
		return r
	}
	return &GormBookRepository{db: tx}
}

// GetByID 根据ID获取图书
func (r *GormBookRepository) GetByID(id uint) (*models.Book, error) {
	var book models.Book
	if err := r.db.First(&book, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &book, nil
}

// GetByISBN 根据ISBN获取图书
func (r *GormBookRepository) GetByISBN(isbn string) (*models.Book, error) {
	var book models.Book
	if err := r.db.Where("isbn = ?", isbn).First(&book).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &book, nil
}

// Create 创建图书
func (r *GormBookRepository) Create(book *models.Book) error {
	return r.db.Create(book).Error
}

// Update 更新图书
func (r *GormBookRepository) Update(book *models.Book) error {
	return r.db.Save(book).Error
}

// UpdateStatus 更新图书上下架状态
func (r *GormBookRepository) UpdateStatus(id uint, status string, reason string) error {
	return r.db.Model(&models.Book{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        status,
			"status_reason": reason,
		}).Error
}

// Delete 删除图书
func (r *GormBookRepository) Delete(id uint) error {
	return r.db.Delete(&models.Book{}, id).Error
}

// List 获取图书列表
func (r *GormBookRepository) List(filter BookListFilter) ([]models.Book, int64, error) {
	var books []models.Book
	query := r.db.Model(&models.Book{})

	if filter.Title != "" {
		query = query.Where("title LIKE ?", "%"+filter.Title+"%")
	}
	if filter.Author != "" {
		query = query.Where("author LIKE ?", "%"+filter.Author+"%")
	}
	if filter.ISBN != "" {
		query = query.Where("isbn = ?", filter.ISBN)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("id desc").Find(&books).Error; err != nil {
		return nil, 0, err
	}
	return books, total, nil
}
