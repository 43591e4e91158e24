package router

import (
	"fmt"
	"strings"

	"github.com/jagannathit007/BSock-admin-sub004/internal/cache"
	"github.com/jagannathit007/BSock-admin-sub004/internal/config"
	adminhandlers "github.com/jagannathit007/BSock-admin-sub004/internal/http/handlers/admin"
	"github.com/jagannathit007/BSock-admin-sub004/internal/logger"
	"github.com/jagannathit007/BSock-admin-sub004/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "bsk"
	}
	redisClient := cache.Client()
	adminLoginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		Message:       "too many login attempts",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/captcha/image", adminHandler.GetLoginCaptcha)
		}

		// 管理员接口
		admin := apiV1.Group("/admin")
		{
			// 登录接口（无需鉴权）
			admin.POST("/login", RateLimitMiddleware(redisClient, adminLoginRule, KeyByIP), adminHandler.AdminLogin)

			// 需要鉴权的接口
			authorized := admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo), AdminRBACMiddleware(c.AuthzService))
			{
				authorized.PUT("/password", adminHandler.UpdateAdminPassword)

				// 权限管理
				authorized.GET("/authz/me", adminHandler.GetAdminProfile)
				authorized.GET("/authz/roles", adminHandler.GetAuthzRoles)
				authorized.GET("/authz/admins", adminHandler.GetAuthzAdmins)
				authorized.POST("/authz/admins", adminHandler.CreateAuthzAdmin)
				authorized.GET("/authz/admins/:id/roles", adminHandler.GetAuthzAdminRoles)
				authorized.PUT("/authz/admins/:id/roles", adminHandler.SetAuthzAdminRoles)

				// 表单引用数据
				authorized.GET("/reference/form", adminHandler.GetReferenceData)
				authorized.POST("/reference/reload", adminHandler.ReloadReferenceData)

				// 录入会话
				authorized.POST("/form/sessions", adminHandler.CreateFormSession)
				authorized.GET("/form/sessions/:id", adminHandler.GetFormSession)
				authorized.DELETE("/form/sessions/:id", adminHandler.CancelFormSession)
				authorized.POST("/form/sessions/:id/rows", adminHandler.AddFormRow)
				authorized.PATCH("/form/sessions/:id/rows/:index", adminHandler.UpdateFormRowField)
				authorized.DELETE("/form/sessions/:id/rows/:index", adminHandler.RemoveFormRow)
				authorized.POST("/form/sessions/:id/submit", adminHandler.SubmitFormSession)

				// 字典维护
				authorized.GET("/grades", adminHandler.GetGrades)
				authorized.POST("/grades", adminHandler.CreateGrade)
				authorized.PUT("/grades/:id", adminHandler.UpdateGrade)
				authorized.DELETE("/grades/:id", adminHandler.DeleteGrade)

				authorized.GET("/sellers", adminHandler.GetSellers)
				authorized.POST("/sellers", adminHandler.CreateSeller)
				authorized.PUT("/sellers/:id", adminHandler.UpdateSeller)
				authorized.DELETE("/sellers/:id", adminHandler.DeleteSeller)

				authorized.GET("/locations", adminHandler.GetLocations)
				authorized.POST("/locations", adminHandler.CreateLocation)
				authorized.DELETE("/locations/:id", adminHandler.DeleteLocation)

				authorized.GET("/sku-families", adminHandler.GetSkuFamilies)
				authorized.GET("/sku-families/:id", adminHandler.GetSkuFamily)
				authorized.POST("/sku-families", adminHandler.CreateSkuFamily)
				authorized.PUT("/sku-families/:id", adminHandler.UpdateSkuFamily)
				authorized.DELETE("/sku-families/:id", adminHandler.DeleteSkuFamily)

				// 刊登与批次
				authorized.GET("/listings", adminHandler.GetListings)
				authorized.GET("/listings/:id", adminHandler.GetListing)
				authorized.PATCH("/listings/:id/status", adminHandler.UpdateListingStatus)
				authorized.DELETE("/listings/:id", adminHandler.DeleteListing)
				authorized.GET("/listing-batches", adminHandler.GetListingBatches)
				authorized.GET("/listing-batches/:id", adminHandler.GetListingBatch)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
