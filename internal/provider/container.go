package provider

import (
	"github.com/jagannathit007/BSock-admin-sub004/internal/authz"
	"github.com/jagannathit007/BSock-admin-sub004/internal/cache"
	"github.com/jagannathit007/BSock-admin-sub004/internal/config"
	"github.com/jagannathit007/BSock-admin-sub004/internal/logger"
	"github.com/jagannathit007/BSock-admin-sub004/internal/models"
	"github.com/jagannathit007/BSock-admin-sub004/internal/queue"
	"github.com/jagannathit007/BSock-admin-sub004/internal/repository"
	"github.com/jagannathit007/BSock-admin-sub004/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo     repository.AdminRepository
	GradeRepo     repository.GradeRepository
	SellerRepo    repository.SellerRepository
	LocationRepo  repository.LocationRepository
	SkuFamilyRepo repository.SkuFamilyRepository
	ListingRepo   repository.ListingRepository

	// Services
	AuthzService     *authz.Service
	AuthService      *service.AuthService
	CaptchaService   *service.CaptchaService
	ReferenceService *service.ReferenceService
	CatalogService   *service.CatalogService
	FormService      *service.FormService
	ListingService   *service.ListingService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.GradeRepo = repository.NewGradeRepository(db)
	c.SellerRepo = repository.NewSellerRepository(db)
	c.LocationRepo = repository.NewLocationRepository(db)
	c.SkuFamilyRepo = repository.NewSkuFamilyRepository(db)
	c.ListingRepo = repository.NewListingRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.ReferenceService = service.NewReferenceService(
		&c.Config.Form,
		c.GradeRepo,
		c.SellerRepo,
		c.LocationRepo,
		c.SkuFamilyRepo,
	)
	c.CatalogService = service.NewCatalogService(
		c.GradeRepo,
		c.SellerRepo,
		c.LocationRepo,
		c.SkuFamilyRepo,
		c.ReferenceService,
	)
	c.FormService = service.NewFormService(&c.Config.Form, c.SkuFamilyRepo, c.ListingRepo, c.QueueClient)
	c.ListingService = service.NewListingService(c.ListingRepo)
}
