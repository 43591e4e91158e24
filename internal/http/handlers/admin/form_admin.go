package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jagannathit007/BSock-admin-sub004/internal/http/response"
	"github.com/jagannathit007/BSock-admin-sub004/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateFormSessionRequest 创建录入会话请求
type CreateFormSessionRequest struct {
	Mode        string `json:"mode" binding:"required"`
	SkuFamilyID uint   `json:"sku_family_id"`
}

// CreateFormSession 创建商品录入会话
func (h *Handler) CreateFormSession(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}

	var req CreateFormSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	session, err := h.FormService.CreateSession(adminID, req.Mode, req.SkuFamilyID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	requestLog(c).Infow("form_session_created",
		"session_id", session.ID,
		"mode", session.Mode,
		"rows", len(session.Rows),
	)
	response.Success(c, session)
}

// GetFormSession 获取录入会话
func (h *Handler) GetFormSession(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}

	session, err := h.FormService.GetSession(c.Param("id"), adminID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, session)
}

// UpdateFormRowFieldRequest 更新行字段请求
type UpdateFormRowFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// UpdateFormRowField 更新录入行字段并返回推导后的整行
func (h *Handler) UpdateFormRowField(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}

	index, err := parseRowIndex(c.Param("index"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid row index", nil)
		return
	}

	var req UpdateFormRowFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	row, err := h.FormService.UpdateRowField(c.Param("id"), adminID, index, req.Field, req.Value)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, row)
}

// AddFormRow 追加一个空白录入行
func (h *Handler) AddFormRow(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}

	session, err := h.FormService.AddRow(c.Param("id"), adminID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, session)
}

// RemoveFormRow 删除指定录入行
func (h *Handler) RemoveFormRow(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}

	index, err := parseRowIndex(c.Param("index"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "invalid row index", nil)
		return
	}

	session, err := h.FormService.RemoveRow(c.Param("id"), adminID, index)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, session)
}

// SubmitFormSessionRequest 提交录入会话请求。force 为真时忽略校验问题。
type SubmitFormSessionRequest struct {
	Force bool `json:"force"`
}

// SubmitFormSession 提交录入会话，生成商品批次
func (h *Handler) SubmitFormSession(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}

	var req SubmitFormSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, response.CodeBadRequest, "bad request", err)
			return
		}
	}

	batch, issues, err := h.FormService.Submit(c.Request.Context(), c.Param("id"), adminID, req.Force)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) && len(issues) > 0 {
			respondErrorWithData(c, response.CodeBadRequest, "validation failed", gin.H{"issues": issues}, nil)
			return
		}
		respondServiceError(c, err)
		return
	}

	requestLog(c).Infow("form_session_submitted",
		"batch_id", batch.ID,
		"batch_no", batch.BatchNo,
		"rows", batch.RowCount,
	)
	response.Success(c, batch)
}

// CancelFormSession 放弃录入会话
func (h *Handler) CancelFormSession(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}

	if err := h.FormService.Cancel(c.Param("id"), adminID); err != nil {
		respondServiceError(c, err)
		return
	}
	response.SuccessWithMsg(c, "session cancelled", nil)
}

func parseRowIndex(raw string) (int, error) {
	index, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || index < 0 {
		return 0, errors.New("invalid row index")
	}
	return index, nil
}
