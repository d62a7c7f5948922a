package models

import (
	"time"

	"gorm.io/gorm"
)

// Transaction 订单结算交易（创建后除回执信息外不可变）
type Transaction struct {
	ID             uint           `gorm:"primarykey" json:"id"`                                        // 主键
	OrderID        uint           `gorm:"uniqueIndex;not null" json:"order_id"`                        // 订单ID
	SubtotalAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal_amount"` // 商品小计
	FreightAmount  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"freight_amount"` // 运费
	DiscountAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"discount_amount"` // 优惠金额
	Amount         Money          `gorm:"type:decimal(20,2);not null;default:0" json:"amount"`         // 实付金额
	CouponID       *uint          `gorm:"index" json:"coupon_id,omitempty"`                            // 优惠券ID
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`                                     // 创建时间
	UpdatedAt      time.Time      `gorm:"index" json:"updated_at"`                                     // 更新时间
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`                                              // 软删除时间

	Allocations []CardPayment `gorm:"foreignKey:TransactionID" json:"allocations,omitempty"` // 分卡支付明细
	Coupon      *Coupon       `gorm:"foreignKey:CouponID" json:"coupon,omitempty"`           // 关联优惠券
}

// TableName 指定表名
func (Transaction) TableName() string {
	return "transactions"
}
