package models

import (
	"time"

	"gorm.io/gorm"
)

// ListingBatch 刊登提交批次表（一次表单提交一条）
type ListingBatch struct {
	ID          uint           `gorm:"primarykey" json:"id"`                            // 主键
	BatchNo     string         `gorm:"type:varchar(64);uniqueIndex;not null" json:"batch_no"` // 批次号
	Mode        string         `gorm:"type:varchar(20);not null" json:"mode"`           // 表单模式（single/multi）
	RowCount    int            `gorm:"not null;default:0" json:"row_count"`             // 行数
	Status      string         `gorm:"type:varchar(20);not null;index" json:"status"`   // 批次状态（submitted/notified）
	SubmittedBy uint           `gorm:"index" json:"submitted_by"`                       // 提交人（管理员ID）
	NotifiedAt  *time.Time     `json:"notified_at"`                                     // 通知完成时间
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                         // 创建时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                  // 软删除时间
}

// TableName 指定表名
func (ListingBatch) TableName() string {
	return "listing_batches"
}
