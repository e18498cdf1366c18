package router

import (
	"sellerhub_v1_202609/internal/controller"
	"sellerhub_v1_202609/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "sellerhub_v1_202609/docs"
)

// Controllers 路由需要的全部控制器
type Controllers struct {
	Platform  *controller.PlatformController
	Shop      *controller.ShopController
	Product   *controller.ProductController
	Order     *controller.OrderController
	Finance   *controller.FinanceController
	Dispute   *controller.DisputeController
	Logistics *controller.LogisticsController
	Review    *controller.ReviewController
	Listing   *controller.ListingController
	Sync      *controller.SyncController
}

// InitRoutes 注册所有路由
func InitRoutes(r *gin.Engine, ctls *Controllers) {
	r.Use(middleware.RequestLog())

	// Swagger 文档路由
	// 访问 http://localhost:8080/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		// platform 平台元信息
		platforms := api.Group("/platforms")
		{
			platforms.GET("", ctls.Platform.GetPlatforms)
			platforms.GET("/:id", ctls.Platform.GetPlatform)
		}

		// shop 店铺接入
		shops := api.Group("/shops")
		{
			shops.GET("", ctls.Shop.GetShops)
			shops.POST("", ctls.Shop.ConnectShop)
			shops.GET("/:id", ctls.Shop.GetShop)
			shops.POST("/:id/disable", ctls.Shop.DisableShop)
		}

		// inventory 跨平台统一库存
		api.GET("/inventory", ctls.Product.GetUnifiedInventory)

		// product 商品
		products := api.Group("/products")
		{
			products.GET("", ctls.Product.ListProducts)
			products.GET("/daraz", ctls.Product.GetDarazProducts)
		}

		// order 订单与分析
		orders := api.Group("/orders")
		{
			orders.GET("", ctls.Order.ListOrders)
			orders.GET("/live", ctls.Order.GetOrders)
			orders.GET("/analytics", ctls.Order.GetOrderAnalytics)
		}

		// finance 财务
		finance := api.Group("/finance")
		{
			finance.GET("/statements", ctls.Finance.GetStatements)
			finance.GET("/summary", ctls.Finance.GetSummary)
		}

		// dispute 退货纠纷
		disputes := api.Group("/disputes")
		{
			disputes.GET("", ctls.Dispute.GetReverseOrders)
			disputes.GET("/summary", ctls.Dispute.GetSummary)
		}

		// logistics 物流
		logistics := api.Group("/logistics")
		{
			logistics.GET("/:order_id/trace", ctls.Logistics.TraceOrder)
			logistics.GET("/:order_id/details", ctls.Logistics.GetLogisticsDetails)
		}

		// review 商品评价
		reviews := api.Group("/reviews")
		{
			reviews.GET("", ctls.Review.GetAllReviews)
			reviews.GET("/:item_id", ctls.Review.GetProductReviews)
		}

		// listing 商品刊登
		listings := api.Group("/listings")
		{
			listings.POST("", ctls.Listing.CreateListing)
			listings.POST("/generate", ctls.Listing.GenerateListing)
		}

		// sync 手动同步
		sync := api.Group("/sync")
		{
			sync.GET("/status", ctls.Sync.SyncStatus)
			sync.POST("/products",
				middleware.SyncRateLimit(middleware.SyncTypeProduct, 0),
				ctls.Sync.SyncAllProducts)
			sync.POST("/products/:shop_id",
				middleware.SyncRateLimit(middleware.SyncTypeProduct, 0),
				ctls.Sync.SyncProducts)
			sync.POST("/orders",
				middleware.SyncRateLimit(middleware.SyncTypeOrder, 0),
				ctls.Sync.SyncAllOrders)
			sync.POST("/orders/:shop_id",
				middleware.SyncRateLimit(middleware.SyncTypeOrder, 0),
				ctls.Sync.SyncOrders)
		}
	}
}
