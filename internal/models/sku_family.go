package models

import (
	"time"

	"gorm.io/gorm"
)

// SkuFamily 机型族表（同一机型下的多规格集合）
type SkuFamily struct {
	ID        uint           `gorm:"primarykey" json:"id"`                    // 主键
	Name      string         `gorm:"type:varchar(200);not null" json:"name"`  // 机型名称
	Brand     string         `gorm:"type:varchar(100);index" json:"brand"`    // 品牌
	IsActive  bool           `gorm:"default:true;index" json:"is_active"`     // 是否启用
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                 // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                              // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                          // 软删除时间

	Variants []SkuFamilyVariant `gorm:"foreignKey:SkuFamilyID" json:"variants,omitempty"` // 规格列表
}

// TableName 指定表名
func (SkuFamily) TableName() string {
	return "sku_families"
}

// SkuFamilyVariant 机型规格表（生成表单行的规格描述）
type SkuFamilyVariant struct {
	ID             uint           `gorm:"primarykey" json:"id"`                       // 主键
	SkuFamilyID    uint           `gorm:"not null;index" json:"sku_family_id"`        // 机型族ID
	SubSkuFamilyID *uint          `gorm:"index" json:"sub_sku_family_id"`             // 子机型族ID（可选）
	SubModelName   string         `gorm:"type:varchar(200);not null" json:"sub_model_name"` // 子型号名称
	Storage        string         `gorm:"type:varchar(50)" json:"storage"`            // 存储容量
	Colour         string         `gorm:"type:varchar(50)" json:"colour"`             // 颜色
	RAM            string         `gorm:"type:varchar(50)" json:"ram"`                // 内存（可选）
	DisplaySeq     int            `gorm:"default:0;index" json:"display_seq"`         // 展示顺序
	Images         StringArray    `gorm:"type:json" json:"images"`                    // 规格图片
	CreatedAt      time.Time      `json:"created_at"`                                 // 创建时间
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`                             // 软删除时间
}

// TableName 指定表名
func (SkuFamilyVariant) TableName() string {
	return "sku_family_variants"
}
