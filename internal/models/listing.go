package models

import (
	"time"

	"gorm.io/gorm"
)

// Listing 刊登表（表单提交后的成品行）
type Listing struct {
	ID      uint `gorm:"primarykey" json:"id"`            // 主键
	BatchID uint `gorm:"not null;index" json:"batch_id"`  // 提交批次ID

	// 机型与成色
	SkuFamilyID    uint   `gorm:"index" json:"sku_family_id"`                  // 机型族ID
	SubSkuFamilyID *uint  `gorm:"index" json:"sub_sku_family_id"`              // 子机型族ID（可选）
	SubModelName   string `gorm:"type:varchar(200)" json:"sub_model_name"`     // 子型号名称
	Storage        string `gorm:"type:varchar(50)" json:"storage"`             // 存储容量
	Colour         string `gorm:"type:varchar(50)" json:"colour"`              // 颜色
	RAM            string `gorm:"type:varchar(50)" json:"ram"`                 // 内存
	Country        string `gorm:"type:varchar(100)" json:"country"`            // 版本国家
	Sim            string `gorm:"type:varchar(50)" json:"sim"`                 // SIM 规格
	Version        string `gorm:"type:varchar(50)" json:"version"`             // 版本
	GradeID        string `gorm:"type:varchar(64);index" json:"grade_id"`      // 成色等级引用
	Status         string `gorm:"type:varchar(20);index" json:"status"`        // 刊登状态
	LockStatus     string `gorm:"type:varchar(50)" json:"lock_status"`         // 锁机状态
	Warranty       string `gorm:"type:varchar(100)" json:"warranty"`           // 保修
	BatteryHealth  string `gorm:"type:varchar(50)" json:"battery_health"`      // 电池健康度

	// 地区报价（香港/迪拜各一组三元：美元、汇率、本币）
	HKUsd    *Amount `gorm:"type:decimal(20,2)" json:"hk_usd"`    // 香港报价（美元）
	HKXe     *Rate   `gorm:"type:decimal(20,4)" json:"hk_xe"`     // 香港汇率
	HKHkd    *Amount `gorm:"type:decimal(20,2)" json:"hk_hkd"`    // 香港报价（港币）
	DubaiUsd *Amount `gorm:"type:decimal(20,2)" json:"dubai_usd"` // 迪拜报价（美元）
	DubaiXe  *Rate   `gorm:"type:decimal(20,4)" json:"dubai_xe"`  // 迪拜汇率
	DubaiAed *Amount `gorm:"type:decimal(20,2)" json:"dubai_aed"` // 迪拜报价（迪拉姆）

	DeliveryLocations StringArray `gorm:"type:json" json:"delivery_locations"` // 交货地（由报价推导）

	// 物流与交易条款
	Packing         string      `gorm:"type:varchar(100)" json:"packing"`           // 包装方式
	CurrentLocation string      `gorm:"type:varchar(20);index" json:"current_location"` // 货物所在地编码
	TotalQty        string      `gorm:"type:varchar(20)" json:"total_qty"`          // 总数量
	MOQ             string      `gorm:"type:varchar(20)" json:"moq"`                // 最小起订量
	Weight          string      `gorm:"type:varchar(50)" json:"weight"`             // 重量
	PaymentTerms    StringArray `gorm:"type:json" json:"payment_terms"`             // 付款条件
	PaymentMethods  StringArray `gorm:"type:json" json:"payment_methods"`           // 付款方式
	PriceType       string      `gorm:"type:varchar(20)" json:"price_type"`         // 价格类型（Fixed/Negotiable）
	ShippingTime    string      `gorm:"type:varchar(200)" json:"shipping_time"`     // 发货时效说明

	// 管理信息
	Vendor            string `gorm:"type:varchar(200)" json:"vendor"`                       // 卖家
	VendorListingNo   string `gorm:"type:varchar(100)" json:"vendor_listing_no"`            // 卖家刊登号
	Carrier           string `gorm:"type:varchar(200)" json:"carrier"`                      // 运营商
	CarrierListingNo  string `gorm:"type:varchar(100)" json:"carrier_listing_no"`           // 运营商刊登号
	UniqueListingNo   string `gorm:"type:varchar(100);uniqueIndex" json:"unique_listing_no"` // 唯一刊登号
	HotDeal           bool   `gorm:"default:false;index" json:"hot_deal"`                   // 热卖标记
	LowStock          bool   `gorm:"default:false" json:"low_stock"`                        // 低库存标记
	AdminMessage      string `gorm:"type:varchar(500)" json:"admin_message"`                // 管理端备注
	StartTime         string `gorm:"type:varchar(40)" json:"start_time"`                    // 上架时间（RFC3339）
	EndTime           string `gorm:"type:varchar(40)" json:"end_time"`                      // 下架时间（RFC3339）
	Remark            string `gorm:"type:varchar(500)" json:"remark"`                       // 备注
	Supplier          string `gorm:"type:varchar(200)" json:"supplier"`                     // 供货商引用
	SupplierListingNo string `gorm:"type:varchar(100)" json:"supplier_listing_no"`          // 供货商刊登号

	DisplaySeq int         `gorm:"default:0" json:"display_seq"` // 展示顺序
	Images     StringArray `gorm:"type:json" json:"images"`      // 图片列表

	CreatedAt time.Time      `gorm:"index" json:"created_at"` // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`              // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`          // 软删除时间

	Batch *ListingBatch `gorm:"foreignKey:BatchID" json:"batch,omitempty"` // 关联批次
}

// TableName 指定表名
func (Listing) TableName() string {
	return "listings"
}
