package service

import "errors"

// 服务层公共错误，处理器据此映射响应码
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrNotFound           = errors.New("record not found")

	ErrCaptchaRequired = errors.New("captcha is required")
	ErrCaptchaInvalid  = errors.New("captcha verification failed")

	ErrReferenceLoadFailed = errors.New("reference data failed to load")

	ErrSessionNotFound   = errors.New("form session not found")
	ErrSessionExpired    = errors.New("form session expired")
	ErrTooManyRows       = errors.New("row count exceeds session limit")
	ErrValidationFailed  = errors.New("submission validation failed")
	ErrSkuFamilyRequired = errors.New("sku family is required in multi mode")
)
