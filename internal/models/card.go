package models

import (
	"time"

	"gorm.io/gorm"
)

// Card 顾客保存的支付卡
type Card struct {
	ID         uint           `gorm:"primarykey" json:"id"`                       // 主键
	CustomerID uint           `gorm:"index;not null" json:"customer_id"`          // 顾客ID
	BrandID    uint           `gorm:"index;not null" json:"brand_id"`             // 卡品牌ID
	Number     string         `gorm:"type:varchar(16);not null" json:"number"`    // 卡号
	HolderName string         `gorm:"type:varchar(255);not null" json:"holder_name"` // 持卡人
	CVV        string         `gorm:"type:varchar(4);not null" json:"-"`          // 安全码
	ExpiryDate string         `gorm:"type:varchar(5);not null" json:"expiry_date"` // 有效期（MM/YY）
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`                    // 创建时间
	UpdatedAt  time.Time      `gorm:"index" json:"updated_at"`                    // 更新时间
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                             // 软删除时间

	Brand *Brand `gorm:"foreignKey:BrandID" json:"brand,omitempty"` // 关联品牌
}

// TableName 指定表名
func (Card) TableName() string {
	return "cards"
}
