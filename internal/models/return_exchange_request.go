package models

import (
	"time"

	"gorm.io/gorm"
)

// ReturnExchangeRequest 退换货请求
// Kind 在创建时确定且不可变；Items 为所属订单行的非空子集。
type ReturnExchangeRequest struct {
	ID              uint           `gorm:"primarykey" json:"id"`                               // 主键
	CustomerID      uint           `gorm:"index;not null" json:"customer_id"`                  // 顾客ID
	OrderID         uint           `gorm:"index;not null" json:"order_id"`                     // 订单ID
	Kind            string         `gorm:"type:varchar(20);not null" json:"kind"`              // 类型（return/exchange）
	Status          string         `gorm:"type:varchar(30);not null;index" json:"status"`      // 请求状态
	Reason          string         `gorm:"type:text;not null" json:"reason"`                   // 申请理由
	CanceledByOwner bool           `gorm:"not null;default:false" json:"canceled_by_owner"`    // 是否由顾客主动取消
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                            // 创建时间
	UpdatedAt       time.Time      `gorm:"index" json:"updated_at"`                            // 更新时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                     // 软删除时间

	Items []InventoryUnit `gorm:"many2many:return_exchange_items" json:"items,omitempty"` // 涉及的订单行
}

// TableName 指定表名
func (ReturnExchangeRequest) TableName() string {
	return "return_exchange_requests"
}
