package models

import (
	"time"

	"gorm.io/gorm"
)

// CardPayment 单卡支付分配（卡信息为下单时快照）
// Position 保留提交顺序，末位元素允许吸收低于单卡最低额的尾款。
type CardPayment struct {
	ID             uint           `gorm:"primarykey" json:"id"`                                   // 主键
	TransactionID  uint           `gorm:"index;not null" json:"transaction_id"`                   // 交易ID
	Position       int            `gorm:"not null;default:0" json:"position"`                     // 提交顺序
	Amount         Money          `gorm:"type:decimal(20,2);not null" json:"amount"`              // 分配金额
	CardHolderName string         `gorm:"type:varchar(255);not null" json:"card_holder_name"`     // 持卡人快照
	CardBrand      string         `gorm:"type:varchar(100);not null" json:"card_brand"`           // 卡品牌快照
	CardNumber     string         `gorm:"type:varchar(16);not null" json:"card_number"`           // 卡号快照
	CardExpiryDate string         `gorm:"type:varchar(5);not null" json:"card_expiry_date"`       // 有效期快照
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`                                // 创建时间
	UpdatedAt      time.Time      `gorm:"index" json:"updated_at"`                                // 更新时间
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`                                         // 软删除时间
}

// TableName 指定表名
func (CardPayment) TableName() string {
	return "card_payments"
}
