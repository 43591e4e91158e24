package admin

import (
	"strconv"
	"time"

	"github.com/jagannathit007/BSock-admin-sub004/internal/http/response"
	"github.com/jagannathit007/BSock-admin-sub004/internal/repository"

	"github.com/gin-gonic/gin"
)

// GetListings 获取刊登列表
func (h *Handler) GetListings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.ListingListFilter{
		Page:        page,
		PageSize:    pageSize,
		Status:      c.Query("status"),
		GradeID:     c.Query("grade_id"),
		Search:      c.Query("search"),
		HotDealOnly: c.Query("hot_deal") == "1",
	}
	if batchID, err := strconv.ParseUint(c.Query("batch_id"), 10, 64); err == nil {
		filter.BatchID = uint(batchID)
	}
	if from, err := time.Parse(time.RFC3339, c.Query("created_from")); err == nil {
		filter.CreatedFrom = &from
	}
	if to, err := time.Parse(time.RFC3339, c.Query("created_to")); err == nil {
		filter.CreatedTo = &to
	}

	listings, total, err := h.ListingService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "listing fetch failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, listings, pagination)
}

// GetListing 获取刊登详情
func (h *Handler) GetListing(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	listing, err := h.ListingService.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, listing)
}

// UpdateListingStatusRequest 更新刊登状态请求
type UpdateListingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateListingStatus 更新刊登状态
func (h *Handler) UpdateListingStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateListingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	if err := h.ListingService.UpdateStatus(id, req.Status); err != nil {
		respondServiceError(c, err)
		return
	}

	requestLog(c).Infow("listing_status_updated", "listing_id", id, "status", req.Status)
	response.SuccessWithMsg(c, "status updated", nil)
}

// DeleteListing 删除刊登
func (h *Handler) DeleteListing(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.ListingService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	requestLog(c).Infow("listing_deleted", "listing_id", id)
	response.SuccessWithMsg(c, "listing deleted", nil)
}

// GetListingBatches 获取提交批次列表
func (h *Handler) GetListingBatches(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.BatchListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
	}
	if submittedBy, err := strconv.ParseUint(c.Query("submitted_by"), 10, 64); err == nil {
		filter.SubmittedBy = uint(submittedBy)
	}

	batches, total, err := h.ListingService.ListBatches(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "batch fetch failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, batches, pagination)
}

// GetListingBatch 获取批次详情（含批内全部刊登）
func (h *Handler) GetListingBatch(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	batch, listings, err := h.ListingService.GetBatch(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{
		"batch":    batch,
		"listings": listings,
	})
}
