package repository

import "time"

// ListingListFilter 查询刊登列表的过滤条件
type ListingListFilter struct {
	Page        int
	PageSize    int
	BatchID     uint
	Status      string
	GradeID     string
	Search      string
	HotDealOnly bool
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// BatchListFilter 查询提交批次列表的过滤条件
type BatchListFilter struct {
	Page        int
	PageSize    int
	Status      string
	SubmittedBy uint
}
