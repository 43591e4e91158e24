package models

import (
	"time"

	"gorm.io/gorm"
)

// Seller 供货商表
type Seller struct {
	ID        uint           `gorm:"primarykey" json:"id"`                    // 主键
	Name      string         `gorm:"type:varchar(200);not null" json:"name"`  // 供货商名称
	Code      string         `gorm:"type:varchar(50);index" json:"code"`      // 供货商编码（可选）
	Contact   string         `gorm:"type:varchar(200)" json:"contact"`        // 联系方式
	IsActive  bool           `gorm:"default:true;index" json:"is_active"`     // 是否启用
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                 // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                              // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                          // 软删除时间
}

// TableName 指定表名
func (Seller) TableName() string {
	return "sellers"
}
