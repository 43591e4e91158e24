package service

import (
	"strings"
	"sync"
	"time"

	"github.com/jagannathit007/BSock-admin-sub004/internal/config"

	"github.com/mojocn/base64Captcha"
)

// CaptchaImageChallenge 图片验证码挑战
type CaptchaImageChallenge struct {
	CaptchaID   string `json:"captcha_id"`
	ImageBase64 string `json:"image_base64"`
}

// CaptchaService 登录验证码服务。仅支持图片验证码，
// 关闭时 Generate 返回 nil、Verify 恒通过。
type CaptchaService struct {
	cfg config.CaptchaConfig

	mu    sync.Mutex
	store base64Captcha.Store
}

// NewCaptchaService 创建验证码服务
func NewCaptchaService(cfg config.CaptchaConfig) *CaptchaService {
	return &CaptchaService{cfg: cfg}
}

// Enabled 是否启用验证码
func (s *CaptchaService) Enabled() bool {
	return s != nil && s.cfg.Enabled
}

// GenerateImageChallenge 生成图片验证码
func (s *CaptchaService) GenerateImageChallenge() (*CaptchaImageChallenge, error) {
	if !s.Enabled() {
		return nil, nil
	}
	driver := base64Captcha.NewDriverDigit(
		dimension(s.cfg.Height, 60),
		dimension(s.cfg.Width, 200),
		dimension(s.cfg.Length, 5),
		0.6,
		dimension(s.cfg.NoiseCount, 60),
	)
	captcha := base64Captcha.NewCaptcha(driver, s.ensureStore())
	id, b64, _, err := captcha.Generate()
	if err != nil {
		return nil, err
	}
	return &CaptchaImageChallenge{CaptchaID: id, ImageBase64: b64}, nil
}

// Verify 校验验证码，校验后立即失效
func (s *CaptchaService) Verify(captchaID, code string) error {
	if !s.Enabled() {
		return nil
	}
	id := strings.TrimSpace(captchaID)
	answer := strings.TrimSpace(code)
	if id == "" || answer == "" {
		return ErrCaptchaRequired
	}
	if !s.ensureStore().Verify(id, answer, true) {
		return ErrCaptchaInvalid
	}
	return nil
}

func (s *CaptchaService) ensureStore() base64Captcha.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store == nil {
		s.store = base64Captcha.NewMemoryStore(
			dimension(s.cfg.MaxStore, base64Captcha.GCLimitNumber),
			captchaExpiration(s.cfg.ExpireSeconds),
		)
	}
	return s.store
}

func captchaExpiration(seconds int) time.Duration {
	if seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return 10 * time.Minute
}

func dimension(value, fallback int) int {
	if value > 0 {
		return value
	}
	return fallback
}
