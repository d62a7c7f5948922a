package models

import (
	"time"

	"gorm.io/gorm"
)

// Address 顾客收货地址
type Address struct {
	ID            uint           `gorm:"primarykey" json:"id"`                         // 主键
	CustomerID    uint           `gorm:"index;not null" json:"customer_id"`            // 顾客ID
	Alias         string         `gorm:"type:varchar(100)" json:"alias,omitempty"`     // 地址别名
	ResidenceType string         `gorm:"type:varchar(50)" json:"residence_type"`       // 住宅类型
	StreetType    string         `gorm:"type:varchar(50)" json:"street_type"`          // 街道类型
	Street        string         `gorm:"type:varchar(255);not null" json:"street"`     // 街道
	Number        string         `gorm:"type:varchar(20);not null" json:"number"`      // 门牌号
	District      string         `gorm:"type:varchar(255);not null" json:"district"`   // 街区
	Zipcode       string         `gorm:"type:varchar(9);not null" json:"zipcode"`      // 邮编
	City          string         `gorm:"type:varchar(255);not null" json:"city"`       // 城市
	State         string         `gorm:"type:varchar(255);not null" json:"state"`      // 州/省
	Country       string         `gorm:"type:varchar(255);not null" json:"country"`    // 国家
	Observations  string         `gorm:"type:text" json:"observations,omitempty"`      // 备注
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                      // 创建时间
	UpdatedAt     time.Time      `gorm:"index" json:"updated_at"`                      // 更新时间
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                               // 软删除时间
}

// TableName 指定表名
func (Address) TableName() string {
	return "addresses"
}
