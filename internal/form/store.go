package form

import (
	"time"

	"github.com/jagannathit007/BSock-admin-sub004/internal/constants"
	"github.com/jagannathit007/BSock-admin-sub004/internal/models"

	"github.com/google/uuid"
)

// ValidationIssue 提交前校验问题（行号从 1 开始，面向操作员展示）
type ValidationIssue struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// InitializeRows 按模式生成初始行集：单规格模式生成一行空行，
// 多规格模式按规格列表各生成一行并带入规格描述字段。
// 每行默认状态 Active、价格类型 Fixed。
func InitializeRows(mode string, variants []models.SkuFamilyVariant) ([]ProductRow, error) {
	switch mode {
	case constants.FormModeSingle:
		return []ProductRow{newRow()}, nil
	case constants.FormModeMulti:
		if len(variants) == 0 {
			return nil, ErrInvalidMode
		}
		rows := make([]ProductRow, 0, len(variants))
		for _, v := range variants {
			row := newRow()
			row.SkuFamilyID = v.SkuFamilyID
			row.SubSkuFamilyID = v.SubSkuFamilyID
			row.SubModelName = v.SubModelName
			row.Storage = v.Storage
			row.Colour = v.Colour
			row.RAM = v.RAM
			row.DisplaySeq = v.DisplaySeq
			row.Images = append([]string(nil), v.Images...)
			rows = append(rows, row)
		}
		return rows, nil
	default:
		return nil, ErrInvalidMode
	}
}

func newRow() ProductRow {
	return ProductRow{
		Status:            constants.ListingStatusActive,
		PriceType:         constants.PriceTypeFixed,
		DeliveryLocations: []string{},
		PaymentTerms:      []string{},
		PaymentMethods:    []string{},
	}
}

// UpdateField 更新指定行的单个字段并触发推导，返回更新后的行。
// 行集本身不被修改，由调用方决定是否落回。
func UpdateField(rows []ProductRow, index int, field, value string) (ProductRow, error) {
	if index < 0 || index >= len(rows) {
		return ProductRow{}, ErrRowIndexOutOfRange
	}
	row := rows[index]
	if err := row.SetField(field, value); err != nil {
		return ProductRow{}, err
	}
	return DeriveRow(row, field), nil
}

// PrepareForSubmission 提交前定稿：为缺少唯一编号的行分配 UUID，
// 为未填写开始时间的行补上统一时间戳，并将同一批次的所有行
// 盖上同一个 RFC3339 UTC 提交时间。endTime 不做任何修改。
func PrepareForSubmission(rows []ProductRow, now time.Time) []ProductRow {
	stamp := now.UTC().Format(time.RFC3339)
	prepared := make([]ProductRow, len(rows))
	for i, row := range rows {
		if row.UniqueListingNo == "" {
			row.UniqueListingNo = uuid.NewString()
		}
		if row.StartTime == "" {
			row.StartTime = stamp
		}
		row.SubmittedAt = stamp
		prepared[i] = row
	}
	return prepared
}

// ValidateSubmission 提交前校验：目前仅要求每行填写结束时间。
// 返回的问题列表为空表示可以提交。
func ValidateSubmission(rows []ProductRow) []ValidationIssue {
	var issues []ValidationIssue
	for i, row := range rows {
		if row.EndTime == "" {
			issues = append(issues, ValidationIssue{
				Row:     i + 1,
				Field:   FieldEndTime,
				Message: "end time is required",
			})
		}
	}
	return issues
}
