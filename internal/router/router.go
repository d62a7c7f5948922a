package router

import (
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/livraria-next/internal/authz"
	"github.com/livraria-next/internal/cache"
	"github.com/livraria-next/internal/config"
	adminhandlers "github.com/livraria-next/internal/http/handlers/admin"
	publichandlers "github.com/livraria-next/internal/http/handlers/public"
	"github.com/livraria-next/internal/logger"
	"github.com/livraria-next/internal/provider"
)

// SetupRouter 装配路由与中间件
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestIDMiddleware())
	engine.Use(LoggerMiddleware(log))
	engine.Use(CORSMiddleware(cfg.CORS))

	public := publichandlers.New(c)
	admin := adminhandlers.New(c)

	var redisClient *redis.Client
	if cache.Enabled() {
		redisClient = cache.Client()
	}
	loginRule := RateLimitRule{
		Prefix:        cfg.Redis.Prefix + ":ratelimit:login",
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "error.login_too_many",
	}
	adminLoginRule := RateLimitRule{
		Prefix:        cfg.Redis.Prefix + ":ratelimit:admin_login",
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "error.login_too_many",
	}

	api := engine.Group("/api/v1")
	{
		publicGroup := api.Group("/public")
		{
			publicGroup.GET("/books", public.GetBooks)
			publicGroup.GET("/books/:id", public.GetBook)
			publicGroup.GET("/captcha/image", public.GetImageCaptcha)
		}

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", public.UserRegister)
			authGroup.POST("/login",
				RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")),
				public.UserLogin,
			)
		}

		customerGroup := api.Group("")
		customerGroup.Use(CustomerJWTAuthMiddleware(cfg.UserJWT.SecretKey, c.CustomerRepo))
		{
			customerGroup.GET("/me", public.GetCurrentUser)
			customerGroup.PUT("/me/profile", public.UpdateUserProfile)
			customerGroup.PUT("/me/password", public.ChangeUserPassword)

			customerGroup.GET("/cart", public.GetCart)
			customerGroup.POST("/cart/items", public.AddCartItem)
			customerGroup.DELETE("/cart/items/:book_id", public.RemoveCartItem)
			customerGroup.DELETE("/cart", public.ClearCart)

			customerGroup.GET("/addresses", public.ListAddresses)
			customerGroup.POST("/addresses", public.CreateAddress)
			customerGroup.PUT("/addresses/:id", public.UpdateAddress)
			customerGroup.DELETE("/addresses/:id", public.DeleteAddress)

			customerGroup.GET("/cards", public.ListCards)
			customerGroup.POST("/cards", public.CreateCard)
			customerGroup.PUT("/cards/:id", public.UpdateCard)
			customerGroup.DELETE("/cards/:id", public.DeleteCard)
			customerGroup.GET("/card-brands", public.ListCardBrands)

			customerGroup.GET("/checkout/quote", public.QuoteOrder)
			customerGroup.POST("/orders", public.SettleOrder)
			customerGroup.GET("/orders", public.ListOrders)
			customerGroup.GET("/orders/:id", public.GetOrder)
			customerGroup.POST("/orders/:id/cancel", public.CancelOrder)

			customerGroup.POST("/post-sales", public.CreatePostSale)
			customerGroup.GET("/post-sales", public.ListPostSales)
			customerGroup.GET("/post-sales/:id", public.GetPostSale)
			customerGroup.POST("/post-sales/:id/cancel", public.CancelPostSale)
		}

		adminGroup := api.Group("/admin")
		{
			adminGroup.POST("/login",
				RateLimitMiddleware(redisClient, adminLoginRule, KeyByIP),
				admin.AdminLogin,
			)

			authed := adminGroup.Group("")
			authed.Use(
				JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo),
				AdminRBACMiddleware(c.AuthzService),
			)
			{
				authed.PUT("/password", admin.UpdateAdminPassword)

				authed.GET("/dashboard/overview", admin.GetDashboardOverview)

				authed.GET("/books", admin.GetAdminBooks)
				authed.GET("/books/:id", admin.GetAdminBook)
				authed.POST("/books", admin.CreateBook)
				authed.PUT("/books/:id", admin.UpdateBook)
				authed.PUT("/books/:id/status", admin.SetBookStatus)

				authed.GET("/brands", admin.GetAdminBrands)
				authed.POST("/brands", admin.CreateBrand)
				authed.PUT("/brands/:id", admin.UpdateBrand)
				authed.DELETE("/brands/:id", admin.DeleteBrand)

				authed.POST("/stock/intake", admin.StockIntake)
				authed.GET("/stock/units", admin.GetStockUnits)
				authed.POST("/stock/units/:id/reactivate", admin.ReactivateStockUnit)

				authed.GET("/coupons", admin.GetAdminCoupons)
				authed.POST("/coupons", admin.CreateCoupon)
				authed.PUT("/coupons/:id", admin.UpdateCoupon)
				authed.DELETE("/coupons/:id", admin.DeleteCoupon)

				authed.GET("/orders", admin.AdminListOrders)
				authed.GET("/orders/:id", admin.AdminGetOrder)
				authed.PATCH("/orders/:id/status", admin.AdminUpdateOrderStatus)

				authed.GET("/post-sales", admin.AdminListPostSales)
				authed.GET("/post-sales/:id", admin.AdminGetPostSale)
				authed.PATCH("/post-sales/:id/status", admin.AdminUpdatePostSaleStatus)

				authed.GET("/customers", admin.GetAdminCustomers)
				authed.GET("/customers/:id", admin.GetAdminCustomer)
				authed.PUT("/customers/:id/active", admin.SetCustomerActive)

				authed.GET("/authz/me", admin.GetAuthzMe)
				authed.GET("/authz/roles", admin.ListAuthzRoles)
				authed.POST("/authz/roles", admin.CreateAuthzRole)
				authed.GET("/authz/roles/:role/policies", admin.GetAuthzRolePolicies)
				authed.POST("/authz/policies", admin.GrantAuthzPolicy)
				authed.DELETE("/authz/policies", admin.RevokeAuthzPolicy)
				authed.GET("/authz/admins", admin.ListAuthzAdmins)
				authed.POST("/authz/admins", admin.CreateAuthzAdmin)
				authed.DELETE("/authz/admins/:id", admin.DeleteAuthzAdmin)
				authed.GET("/authz/admins/:id/roles", admin.GetAuthzAdminRoles)
				authed.PUT("/authz/admins/:id/roles", admin.SetAuthzAdminRoles)
				authed.GET("/authz/permissions", func(ctx *gin.Context) {
					ctx.JSON(200, gin.H{"code": 0, "msg": "ok", "data": buildAdminPermissionCatalog(engine)})
				})
			}
		}
	}

	engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "ok"})
	})

	return engine
}

// buildAdminPermissionCatalog 从已注册路由汇总管理端权限点
func buildAdminPermissionCatalog(engine *gin.Engine) []gin.H {
	actionsByObject := make(map[string]map[string]struct{})
	for _, route := range engine.Routes() {
		if !strings.HasPrefix(route.Path, "/api/v1/admin/") {
			continue
		}
		if route.Path == "/api/v1/admin/login" {
			continue
		}
		object := authz.NormalizeObject(route.Path)
		if _, ok := actionsByObject[object]; !ok {
			actionsByObject[object] = make(map[string]struct{})
		}
		actionsByObject[object][route.Method] = struct{}{}
	}

	objects := make([]string, 0, len(actionsByObject))
	for object := range actionsByObject {
		objects = append(objects, object)
	}
	sort.Strings(objects)

	catalog := make([]gin.H, 0, len(objects))
	for _, object := range objects {
		actions := make([]string, 0, len(actionsByObject[object]))
		for action := range actionsByObject[object] {
			actions = append(actions, action)
		}
		sort.Strings(actions)
		catalog = append(catalog, gin.H{"object": object, "actions": actions})
	}
	return catalog
}
