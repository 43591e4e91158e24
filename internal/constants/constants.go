package constants

// 报价地区常量
const (
	RegionHongKong = "HK"
	RegionDubai    = "DXB"
)

// 表单模式常量
const (
	FormModeSingle = "single"
	FormModeMulti  = "multi"
)

// 刊登状态常量
const (
	ListingStatusActive   = "Active"
	ListingStatusInactive = "Inactive"
	ListingStatusSoldOut  = "Sold Out"
)

// 价格类型常量
const (
	PriceTypeFixed      = "Fixed"
	PriceTypeNegotiable = "Negotiable"
)

// 刊登批次状态常量
const (
	ListingBatchStatusSubmitted = "submitted"
	ListingBatchStatusNotified  = "notified"
)

// 参考数据加载状态常量
const (
	ReferenceStatePending = "pending"
	ReferenceStateLoaded  = "loaded"
	ReferenceStateFailed  = "failed"
)

// 队列名称常量
const (
	QueueDefault = "default"
)

// 异步任务类型常量
const (
	TaskListingBatchSubmitted = "listing:batch_submitted"
)

// 管理员内置角色常量
const (
	RoleOperator = "operator"
	RoleViewer   = "viewer"
)
