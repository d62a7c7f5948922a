package models

import (
	"time"

	"gorm.io/gorm"
)

// Customer 顾客账号
type Customer struct {
	ID           uint           `gorm:"primarykey" json:"id"`                   // 主键
	Name         string         `gorm:"type:varchar(255);not null" json:"name"` // 姓名
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`      // 邮箱
	PasswordHash string         `gorm:"type:varchar(200);not null" json:"-"`    // 密码哈希
	Phone        string         `gorm:"type:varchar(32)" json:"phone,omitempty"` // 电话
	IsActive     bool           `gorm:"not null;default:true" json:"is_active"` // 是否启用
	TokenVersion uint64         `gorm:"not null;default:0" json:"-"`            // 令牌版本，自增后旧令牌失效
	TokenInvalidBefore *time.Time `json:"-"`                                    // 此时间之前签发的令牌无效
	LastLoginAt  *time.Time     `json:"last_login_at,omitempty"`                // 最后登录时间
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                // 创建时间
	UpdatedAt    time.Time      `gorm:"index" json:"updated_at"`                // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                         // 软删除时间

	Addresses []Address `gorm:"foreignKey:CustomerID" json:"addresses,omitempty"` // 地址簿
	Cards     []Card    `gorm:"foreignKey:CustomerID" json:"cards,omitempty"`     // 已保存卡片
}

// TableName 指定表名
func (Customer) TableName() string {
	return "customers"
}
