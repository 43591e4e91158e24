package cache

import (
	"context"
	"time"

	"github.com/jagannathit007/BSock-admin-sub004/internal/models"
)

const referenceDataKey = "reference:form"

// ReferenceData 表单参考数据快照（下拉字典整体缓存，整取整存）
type ReferenceData struct {
	Grades            []models.Grade          `json:"grades"`
	Sellers           []models.Seller         `json:"sellers"`
	CurrentLocations  []models.LocationOption `json:"current_locations"`
	DeliveryLocations []models.LocationOption `json:"delivery_locations"`
	SkuFamilies       []models.SkuFamily      `json:"sku_families"`
	LoadedAt          int64                   `json:"loaded_at"`
}

// GetReferenceData 获取参考数据快照
func GetReferenceData(ctx context.Context) (*ReferenceData, bool, error) {
	var data ReferenceData
	hit, err := GetJSON(ctx, referenceDataKey, &data)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &data, true, nil
}

// SetReferenceData 写入参考数据快照
func SetReferenceData(ctx context.Context, data *ReferenceData, ttl time.Duration) error {
	if data == nil {
		return nil
	}
	return SetJSON(ctx, referenceDataKey, data, ttl)
}

// DelReferenceData 删除参考数据快照（字典变更后调用）
func DelReferenceData(ctx context.Context) error {
	return Del(ctx, referenceDataKey)
}
