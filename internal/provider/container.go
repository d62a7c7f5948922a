package provider

import (
	"time"

	"github.com/livraria-next/internal/authz"
	"github.com/livraria-next/internal/cache"
	"github.com/livraria-next/internal/config"
	"github.com/livraria-next/internal/logger"
	"github.com/livraria-next/internal/models"
	"github.com/livraria-next/internal/queue"
	"github.com/livraria-next/internal/repository"
	"github.com/livraria-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo     repository.AdminRepository
	CustomerRepo  repository.CustomerRepository
	BookRepo      repository.BookRepository
	InventoryRepo repository.InventoryRepository
	CardRepo      repository.CardRepository
	BrandRepo     repository.BrandRepository
	AddressRepo   repository.AddressRepository
	CouponRepo    repository.CouponRepository
	OrderRepo     repository.OrderRepository
	PostSaleRepo  repository.PostSaleRepository
	DashboardRepo repository.DashboardRepository

	// Services
	AuthzService       *authz.Service
	AuthService        *service.AuthService
	UserAuthService    *service.UserAuthService
	CaptchaService     *service.CaptchaService
	EmailService       *service.EmailService
	BookService        *service.BookService
	CartService        *service.CartService
	StockService       *service.StockService
	CouponService      *service.CouponService
	CouponAdminService *service.CouponAdminService
	AllocationService  *service.PaymentAllocationService
	OrderService       *service.OrderService
	PostSaleService    *service.PostSaleService
	AddressService     *service.AddressService
	CardService        *service.CardService
	BrandService       *service.BrandService
	DashboardService   *service.DashboardService
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
	c.CustomerRepo = repository.NewCustomerRepository(db)
	c.BookRepo = repository.NewBookRepository(db)
	c.InventoryRepo = repository.NewInventoryRepository(db)
	c.CardRepo = repository.NewCardRepository(db)
	c.BrandRepo = repository.NewBrandRepository(db)
	c.AddressRepo = repository.NewAddressRepository(db)
	c.CouponRepo = repository.NewCouponRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.PostSaleRepo = repository.NewPostSaleRepository(db)
	c.DashboardRepo = repository.NewDashboardRepository(db)
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

	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.CustomerRepo)
	c.BookService = service.NewBookService(c.BookRepo, c.InventoryRepo)
	c.CartService = service.NewCartService(c.BookRepo, c.InventoryRepo)
	c.StockService = service.NewStockService(c.BookRepo, c.InventoryRepo)
	c.CouponService = service.NewCouponService(c.CouponRepo)
	c.CouponAdminService = service.NewCouponAdminService(c.CouponRepo)
	c.AllocationService = service.NewPaymentAllocationService(c.CardRepo, c.BrandRepo, c.Config.Settlement.MinCardAmount)
	c.OrderService = service.NewOrderService(
		c.OrderRepo,
		c.InventoryRepo,
		c.CouponRepo,
		c.AddressRepo,
		c.CouponService,
		c.AllocationService,
		c.QueueClient,
		c.Config.Settlement.FreightPerItem,
		time.Duration(c.Config.Settlement.CaptureDelaySeconds)*time.Second,
		c.Config.Settlement.CaptureApprovePercent,
	)
	c.PostSaleService = service.NewPostSaleService(c.PostSaleRepo, c.OrderRepo, c.InventoryRepo)
	c.AddressService = service.NewAddressService(c.AddressRepo)
	c.CardService = service.NewCardService(c.CardRepo, c.BrandRepo)
	c.BrandService = service.NewBrandService(c.BrandRepo)
	c.DashboardService = service.NewDashboardService(c.DashboardRepo)
}
