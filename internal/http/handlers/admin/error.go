package admin

import (
	"errors"

	"github.com/jagannathit007/BSock-admin-sub004/internal/form"
	"github.com/jagannathit007/BSock-admin-sub004/internal/http/response"
	"github.com/jagannathit007/BSock-admin-sub004/internal/service"

	"github.com/gin-gonic/gin"
)

// respondServiceError 将服务层错误映射为统一响应码
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrSessionNotFound):
		respondError(c, response.CodeNotFound, err.Error(), nil)
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrCaptchaRequired),
		errors.Is(err, service.ErrCaptchaInvalid):
		respondError(c, response.CodeUnauthorized, err.Error(), nil)
	case errors.Is(err, service.ErrSessionExpired),
		errors.Is(err, service.ErrTooManyRows),
		errors.Is(err, service.ErrValidationFailed),
		errors.Is(err, service.ErrSkuFamilyRequired),
		errors.Is(err, service.ErrInvalidPassword),
		errors.Is(err, form.ErrInvalidMode),
		errors.Is(err, form.ErrRowIndexOutOfRange),
		errors.Is(err, form.ErrUnknownField),
		errors.Is(err, form.ErrFieldNotEditable):
		respondError(c, response.CodeBadRequest, err.Error(), nil)
	case errors.Is(err, service.ErrReferenceLoadFailed):
		respondError(c, response.CodeInternal, err.Error(), nil)
	default:
		respondError(c, response.CodeInternal, "internal error", err)
	}
}
