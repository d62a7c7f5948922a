package models

import (
	"time"

	"gorm.io/gorm"
)

// InventoryUnit 库存单元（单本可售图书）
// 同一时刻最多被一个购物车（ReservedByCustomerID）或一个订单（OrderID）持有。
type InventoryUnit struct {
	ID                   uint           `gorm:"primarykey" json:"id"`                                        // 主键
	Code                 string         `gorm:"uniqueIndex;not null" json:"code"`                            // 单元编码
	BookID               uint           `gorm:"index;not null" json:"book_id"`                               // 图书ID
	EntryDate            time.Time      `gorm:"not null" json:"entry_date"`                                  // 入库日期
	Supplier             string         `gorm:"type:varchar(255);not null" json:"supplier"`                  // 供应商
	CostValue            Money          `gorm:"type:decimal(20,2);not null;default:0" json:"cost_value"`     // 进货成本
	Status               string         `gorm:"type:varchar(20);not null;default:'AVAILABLE';index" json:"status"` // 单元状态
	ReservedByCustomerID *uint          `gorm:"index" json:"reserved_by_customer_id,omitempty"`              // 预留购物车所属顾客ID
	OrderID              *uint          `gorm:"index" json:"order_id,omitempty"`                             // 结算订单ID
	SaleDate             *time.Time     `json:"sale_date,omitempty"`                                         // 售出时间
	CreatedAt            time.Time      `gorm:"index" json:"created_at"`                                     // 创建时间
	UpdatedAt            time.Time      `gorm:"index" json:"updated_at"`                                     // 更新时间
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`                                              // 软删除时间

	Book *Book `gorm:"foreignKey:BookID" json:"book,omitempty"` // 关联图书
}

// TableName 指定表名
func (InventoryUnit) TableName() string {
	return "inventory_units"
}
