package models

import (
	"time"

	"gorm.io/gorm"
)

// 地点选项类型常量
const (
	LocationKindCurrent  = "current"  // 货物所在地选项
	LocationKindDelivery = "delivery" // 交货地选项
)

// LocationOption 地点选项表（货物所在地与交货地的字典数据）
type LocationOption struct {
	ID        uint           `gorm:"primarykey" json:"id"`                                            // 主键
	Kind      string         `gorm:"type:varchar(20);not null;index;uniqueIndex:idx_location_kind_code" json:"kind"` // 选项类型（current/delivery）
	Code      string         `gorm:"type:varchar(20);not null;uniqueIndex:idx_location_kind_code" json:"code"`      // 地点编码
	Name      string         `gorm:"type:varchar(100);not null" json:"name"`                          // 地点名称
	SortOrder int            `gorm:"default:0;index" json:"sort_order"`                               // 排序权重
	CreatedAt time.Time      `json:"created_at"`                                                      // 创建时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                                  // 软删除时间
}

// TableName 指定表名
func (LocationOption) TableName() string {
	return "location_options"
}
