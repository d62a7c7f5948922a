package models

import (
	"time"

	"gorm.io/gorm"
)

// Brand 卡组织（信用卡品牌）
type Brand struct {
	ID        uint           `gorm:"primarykey" json:"id"`                   // 主键
	Name      string         `gorm:"uniqueIndex;not null" json:"name"`       // 品牌名称
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                // 创建时间
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`                // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                         // 软删除时间
}

// TableName 指定表名
func (Brand) TableName() string {
	return "brands"
}
