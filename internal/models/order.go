package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表（地址字段为下单时快照）
type Order struct {
	ID            uint           `gorm:"primarykey" json:"id"`                                    // 主键
	OrderNo       string         `gorm:"uniqueIndex;not null" json:"order_no"`                    // 订单编号
	CustomerID    uint           `gorm:"index;not null" json:"customer_id"`                       // 顾客ID
	Status        string         `gorm:"type:varchar(20);index;not null" json:"status"`           // 订单状态
	AddressAlias  string         `gorm:"type:varchar(100)" json:"address_alias,omitempty"`        // 地址别名快照
	ResidenceType string         `gorm:"type:varchar(50)" json:"residence_type"`                  // 住宅类型快照
	StreetType    string         `gorm:"type:varchar(50)" json:"street_type"`                     // 街道类型快照
	Street        string         `gorm:"type:varchar(255)" json:"street"`                         // 街道快照
	Number        string         `gorm:"type:varchar(20)" json:"number"`                          // 门牌号快照
	District      string         `gorm:"type:varchar(255)" json:"district"`                       // 街区快照
	Zipcode       string         `gorm:"type:varchar(9)" json:"zipcode"`                          // 邮编快照
	City          string         `gorm:"type:varchar(255)" json:"city"`                           // 城市快照
	State         string         `gorm:"type:varchar(255)" json:"state"`                          // 州/省快照
	Country       string         `gorm:"type:varchar(255)" json:"country"`                        // 国家快照
	Observations  string         `gorm:"type:text" json:"observations,omitempty"`                 // 配送备注快照
	ApprovedAt    *time.Time     `gorm:"index" json:"approved_at,omitempty"`                      // 支付确认时间
	DeliveredAt   *time.Time     `gorm:"index" json:"delivered_at,omitempty"`                     // 送达时间
	CanceledAt    *time.Time     `gorm:"index" json:"canceled_at,omitempty"`                      // 取消时间
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                                 // 创建时间
	UpdatedAt     time.Time      `gorm:"index" json:"updated_at"`                                 // 更新时间
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                          // 软删除时间

	Items       []InventoryUnit `gorm:"foreignKey:OrderID" json:"items,omitempty"`       // 订单行（售出库存单元）
	Transaction *Transaction    `gorm:"foreignKey:OrderID" json:"transaction,omitempty"` // 结算交易
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
