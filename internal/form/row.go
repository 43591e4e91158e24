package form

import "strings"

// 表单字段名常量（与前端表单字段一一对应）
const (
	FieldSubModelName  = "subModelName"
	FieldStorage       = "storage"
	FieldColour        = "colour"
	FieldCountry       = "country"
	FieldSim           = "sim"
	FieldVersion       = "version"
	FieldGradeID       = "gradeId"
	FieldStatus        = "status"
	FieldLockStatus    = "lockStatus"
	FieldWarranty      = "warranty"
	FieldBatteryHealth = "batteryHealth"

	FieldHKUsd    = "hkUsd"
	FieldHKXe     = "hkXe"
	FieldHKHkd    = "hkHkd"
	FieldDubaiUsd = "dubaiUsd"
	FieldDubaiXe  = "dubaiXe"
	FieldDubaiAed = "dubaiAed"

	FieldDeliveryLocations = "deliveryLocations"

	FieldPacking         = "packing"
	FieldCurrentLocation = "currentLocation"
	FieldTotalQty        = "totalQty"
	FieldMOQ             = "moq"
	FieldWeight          = "weight"
	FieldPaymentTerms    = "paymentTerms"
	FieldPaymentMethods  = "paymentMethods"
	FieldPriceType       = "priceType"
	FieldShippingTime    = "shippingTime"

	FieldVendor            = "vendor"
	FieldVendorListingNo   = "vendorListingNo"
	FieldCarrier           = "carrier"
	FieldCarrierListingNo  = "carrierListingNo"
	FieldUniqueListingNo   = "uniqueListingNo"
	FieldHotDeal           = "hotDeal"
	FieldLowStock          = "lowStock"
	FieldAdminMessage      = "adminMessage"
	FieldStartTime         = "startTime"
	FieldEndTime           = "endTime"
	FieldRemark            = "remark"
	FieldSupplier          = "supplier"
	FieldSupplierListingNo = "supplierListingNo"

	FieldImages = "images"
)

// ProductRow 一条候选刊登行（表单内的原始状态，用户输入一律保留为字符串）
type ProductRow struct {
	// 变体生成携带字段（仅引用，不可经 UpdateField 修改）
	SkuFamilyID    uint   `json:"skuFamilyId"`
	SubSkuFamilyID *uint  `json:"subSkuFamilyId,omitempty"`
	RAM            string `json:"ram,omitempty"`
	DisplaySeq     int    `json:"displaySeq,omitempty"`

	// 机型与成色
	SubModelName  string `json:"subModelName"`
	Storage       string `json:"storage"`
	Colour        string `json:"colour"`
	Country       string `json:"country"`
	Sim           string `json:"sim"`
	Version       string `json:"version"`
	GradeID       string `json:"gradeId"`
	Status        string `json:"status"`
	LockStatus    string `json:"lockStatus"`
	Warranty      string `json:"warranty"`
	BatteryHealth string `json:"batteryHealth"`

	// 地区报价三元组：美元、汇率、本币
	HKUsd    string `json:"hkUsd"`
	HKXe     string `json:"hkXe"`
	HKHkd    string `json:"hkHkd"`
	DubaiUsd string `json:"dubaiUsd"`
	DubaiXe  string `json:"dubaiXe"`
	DubaiAed string `json:"dubaiAed"`

	// 交货地：由地区报价推导，禁止直接编辑
	DeliveryLocations []string `json:"deliveryLocations"`

	// 物流与交易条款
	Packing         string   `json:"packing"`
	CurrentLocation string   `json:"currentLocation"`
	TotalQty        string   `json:"totalQty"`
	MOQ             string   `json:"moq"`
	Weight          string   `json:"weight"`
	PaymentTerms    []string `json:"paymentTerms"`
	PaymentMethods  []string `json:"paymentMethods"`
	PriceType       string   `json:"priceType"`
	ShippingTime    string   `json:"shippingTime"`

	// 管理信息
	Vendor            string `json:"vendor"`
	VendorListingNo   string `json:"vendorListingNo"`
	Carrier           string `json:"carrier"`
	CarrierListingNo  string `json:"carrierListingNo"`
	UniqueListingNo   string `json:"uniqueListingNo"`
	HotDeal           string `json:"hotDeal"`
	LowStock          string `json:"lowStock"`
	AdminMessage      string `json:"adminMessage"`
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	Remark            string `json:"remark"`
	Supplier          string `json:"supplier"`
	SupplierListingNo string `json:"supplierListingNo"`

	Images []string `json:"images,omitempty"`

	// 提交定稿时统一盖章，编辑期间始终为空
	SubmittedAt string `json:"submittedAt,omitempty"`
}

// SetField 按字段名写入原始值。集合字段以逗号分隔；uniqueListingNo 一经分配不再改写；
// deliveryLocations 为推导字段，拒绝直接编辑。
func (r *ProductRow) SetField(field, value string) error {
	switch field {
	case FieldSubModelName:
		r.SubModelName = value
	case FieldStorage:
		r.Storage = value
	case FieldColour:
		r.Colour = value
	case FieldCountry:
		r.Country = value
	case FieldSim:
		r.Sim = value
	case FieldVersion:
		r.Version = value
	case FieldGradeID:
		r.GradeID = value
	case FieldStatus:
		r.Status = value
	case FieldLockStatus:
		r.LockStatus = value
	case FieldWarranty:
		r.Warranty = value
	case FieldBatteryHealth:
		r.BatteryHealth = value
	case FieldHKUsd:
		r.HKUsd = value
	case FieldHKXe:
		r.HKXe = value
	case FieldHKHkd:
		r.HKHkd = value
	case FieldDubaiUsd:
		r.DubaiUsd = value
	case FieldDubaiXe:
		r.DubaiXe = value
	case FieldDubaiAed:
		r.DubaiAed = value
	case FieldDeliveryLocations:
		return ErrFieldNotEditable
	case FieldPacking:
		r.Packing = value
	case FieldCurrentLocation:
		r.CurrentLocation = value
	case FieldTotalQty:
		r.TotalQty = value
	case FieldMOQ:
		r.MOQ = value
	case FieldWeight:
		r.Weight = value
	case FieldPaymentTerms:
		r.PaymentTerms = splitSetValue(value)
	case FieldPaymentMethods:
		r.PaymentMethods = splitSetValue(value)
	case FieldPriceType:
		r.PriceType = value
	case FieldShippingTime:
		r.ShippingTime = value
	case FieldVendor:
		r.Vendor = value
	case FieldVendorListingNo:
		r.VendorListingNo = value
	case FieldCarrier:
		r.Carrier = value
	case FieldCarrierListingNo:
		r.CarrierListingNo = value
	case FieldUniqueListingNo:
		if r.UniqueListingNo == "" {
			r.UniqueListingNo = value
		}
	case FieldHotDeal:
		r.HotDeal = value
	case FieldLowStock:
		r.LowStock = value
	case FieldAdminMessage:
		r.AdminMessage = value
	case FieldStartTime:
		r.StartTime = value
	case FieldEndTime:
		r.EndTime = value
	case FieldRemark:
		r.Remark = value
	case FieldSupplier:
		r.Supplier = value
	case FieldSupplierListingNo:
		r.SupplierListingNo = value
	case FieldImages:
		r.Images = splitSetValue(value)
	default:
		return ErrUnknownField
	}
	return nil
}

func splitSetValue(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		result = append(result, trimmed)
	}
	return result
}
