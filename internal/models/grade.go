package models

import (
	"time"

	"gorm.io/gorm"
)

// Grade 成色等级表（A+/A/B 等机况分级）
type Grade struct {
	ID        uint           `gorm:"primarykey" json:"id"`               // 主键
	Title     string         `gorm:"type:varchar(100);not null" json:"title"` // 等级名称
	Remark    string         `gorm:"type:varchar(500)" json:"remark"`    // 等级说明
	IsActive  bool           `gorm:"default:true;index" json:"is_active"` // 是否启用
	SortOrder int            `gorm:"default:0;index" json:"sort_order"`  // 排序权重
	CreatedAt time.Time      `gorm:"index" json:"created_at"`            // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                         // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                     // 软删除时间
}

// TableName 指定表名
func (Grade) TableName() string {
	return "grades"
}
