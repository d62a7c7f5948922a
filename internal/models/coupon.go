package models

import (
	"time"

	"gorm.io/gorm"
)

// Coupon 优惠券
type Coupon struct {
	ID        uint           `gorm:"primarykey" json:"id"`                                // 主键
	Code      string         `gorm:"uniqueIndex;not null" json:"code"`                    // 优惠码
	Kind      string         `gorm:"type:varchar(20);not null" json:"kind"`               // 类型（PERCENTAGE/FIXED_VALUE）
	Discount  Money          `gorm:"type:decimal(20,2);not null" json:"discount"`         // 数值（固定金额或百分比）
	Status    string         `gorm:"type:varchar(20);not null;default:'AVAILABLE';index" json:"status"` // 状态
	ExpiresAt time.Time      `gorm:"index;not null" json:"expires_at"`                    // 失效时间
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                             // 创建时间
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`                             // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                      // 软删除时间
}

// TableName 指定表名
func (Coupon) TableName() string {
	return "coupons"
}
