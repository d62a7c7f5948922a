package models

import (
	"time"

	"gorm.io/gorm"
)

// Book 图书（商品目录条目，库存以 InventoryUnit 计）
type Book struct {
	ID               uint           `gorm:"primarykey" json:"id"`                                          // 主键
	Title            string         `gorm:"type:varchar(255);not null;index" json:"title"`                 // 书名
	Author           string         `gorm:"type:varchar(255);not null;index" json:"author"`                // 作者
	Publisher        string         `gorm:"type:varchar(255);not null" json:"publisher"`                   // 出版社
	Year             int            `gorm:"not null" json:"year"`                                          // 出版年份
	Edition          int            `gorm:"not null;default:1" json:"edition"`                             // 版次
	ISBN             string         `gorm:"type:varchar(17);uniqueIndex;not null" json:"isbn"`             // ISBN
	Pages            int            `gorm:"not null;default:0" json:"pages"`                               // 页数
	Synopsis         string         `gorm:"type:text" json:"synopsis,omitempty"`                           // 简介
	ProfitPercentage Money          `gorm:"type:decimal(20,2);not null;default:0" json:"profit_percentage"` // 定价利润率（%）
	Status           string         `gorm:"type:varchar(20);not null;default:'active';index" json:"status"` // 上架状态
	StatusReason     string         `gorm:"type:varchar(255)" json:"status_reason,omitempty"`              // 状态变更原因
	CreatedAt        time.Time      `gorm:"index" json:"created_at"`                                       // 创建时间
	UpdatedAt        time.Time      `gorm:"index" json:"updated_at"`                                       // 更新时间
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`                                                // 软删除时间

	Units []InventoryUnit `gorm:"foreignKey:BookID" json:"units,omitempty"` // 库存单元
}

// TableName 指定表名
func (Book) TableName() string {
	return "books"
}
