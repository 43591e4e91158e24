package admin

import (
	"github.com/jagannathit007/BSock-admin-sub004/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetReferenceData 获取表单引用数据（成色、卖家、地点、SKU 系列）
func (h *Handler) GetReferenceData(c *gin.Context) {
	data, err := h.ReferenceService.Get(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{
		"state": h.ReferenceService.State(),
		"data":  data,
	})
}

// ReloadReferenceData 强制重新加载引用数据
func (h *Handler) ReloadReferenceData(c *gin.Context) {
	data, err := h.ReferenceService.Reload(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	requestLog(c).Infow("reference_data_reloaded", "state", h.ReferenceService.State())
	response.Success(c, gin.H{
		"state": h.ReferenceService.State(),
		"data":  data,
	})
}
