package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"sellerhub_v1_202609/internal/controller"
	"sellerhub_v1_202609/internal/model"
	"sellerhub_v1_202609/internal/repository"
	"sellerhub_v1_202609/internal/router"
	"sellerhub_v1_202609/internal/service"
	"sellerhub_v1_202609/internal/task"
	"sellerhub_v1_202609/pkg/daraz"
	"sellerhub_v1_202609/pkg/database"
	"sellerhub_v1_202609/pkg/shopify"
)

func main() {
	// 1. 加载环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("未找到 .env 文件, 使用系统环境变量")
	}

	// 2. 初始化数据库
	db := initDatabase()

	// 3. 初始化依赖
	deps := initDependencies(db)

	// 4. 启动定时任务
	deps.TaskManager.Start()

	// 5. 初始化路由
	r := gin.Default()
	router.InitRoutes(r, deps.Controllers)

	// 6. 启动服务
	startServer(r, deps)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
	TaskManager *task.TaskManager
}

// Repositories 仓库集合
type Repositories struct {
	Shop    repository.ShopRepository
	Product repository.ProductRepository
	Order   repository.OrderRepository
}

// Services 服务集合
type Services struct {
	Shop      *service.ShopService
	Category  *service.CategoryService
	Product   *service.ProductService
	Order     *service.OrderService
	Finance   *service.FinanceService
	Dispute   *service.DisputeService
	Review    *service.ReviewService
	Logistics *service.LogisticsService
	Storage   *service.StorageService
	AI        *service.AIService
	Listing   *service.ListingService
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库
func initDatabase() *gorm.DB {
	dsn := getEnv("DATABASE_DSN", "")
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Shanghai",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_NAME", "sellerhub"),
			getEnv("DB_PORT", "5432"),
		)
	}

	return database.InitDB(dsn,
		&model.Shop{},
		&model.Product{},
		&model.Order{}, &model.OrderItem{},
	)
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB) *Dependencies {
	// -------- Repo 层 --------
	repos := &Repositories{
		Shop:    repository.NewShopRepo(db),
		Product: repository.NewProductRepo(db),
		Order:   repository.NewOrderRepo(db),
	}

	// -------- 平台客户端 --------
	darazClient := daraz.NewClient(&daraz.Config{
		BaseURL: getEnv("DARAZ_API_BASE", "http://localhost:3000"),
	})
	shopifyClient := shopify.NewClient(&shopify.Config{
		BaseURL:     getEnv("SHOPIFY_API_BASE", "http://localhost:3001"),
		AccessToken: getEnv("SHOPIFY_ACCESS_TOKEN", ""),
	})

	// -------- 存储 & AI 服务 --------
	storageSvc := initStorageService()
	aiSvc := service.NewAIService(&service.AIConfig{
		BaseURL: getEnv("AI_AGENT_BASE", "http://localhost:5000"),
	}, storageSvc)

	// -------- 业务服务 --------
	categorySvc := service.NewCategoryService(darazClient)

	services := &Services{
		Shop:      service.NewShopService(repos.Shop),
		Category:  categorySvc,
		Product:   service.NewProductService(repos.Product, repos.Shop, darazClient, shopifyClient, categorySvc),
		Order:     service.NewOrderService(repos.Order, repos.Shop, darazClient),
		Finance:   service.NewFinanceService(darazClient),
		Dispute:   service.NewDisputeService(darazClient),
		Review:    service.NewReviewService(darazClient),
		Logistics: service.NewLogisticsService(darazClient),
		Storage:   storageSvc,
		AI:        aiSvc,
		Listing:   service.NewListingService(darazClient, storageSvc),
	}

	// -------- 定时任务 --------
	taskManager := task.NewTaskManager(&task.TaskManagerDeps{
		ShopRepo:       repos.Shop,
		ProductService: services.Product,
		OrderService:   services.Order,
	}, nil)

	// -------- Controller 层 --------
	controllers := &router.Controllers{
		Platform:  controller.NewPlatformController(),
		Shop:      controller.NewShopController(services.Shop),
		Product:   controller.NewProductController(services.Product, services.Review),
		Order:     controller.NewOrderController(services.Order),
		Finance:   controller.NewFinanceController(services.Finance),
		Dispute:   controller.NewDisputeController(services.Dispute),
		Logistics: controller.NewLogisticsController(services.Logistics),
		Review:    controller.NewReviewController(services.Review),
		Listing:   controller.NewListingController(services.Listing, services.AI),
		Sync:      controller.NewSyncController(taskManager),
	}

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
		TaskManager: taskManager,
	}
}

// initStorageService 初始化存储服务
func initStorageService() *service.StorageService {
	storageSvc, err := service.NewStorageService(&service.StorageConfig{
		Bucket:    getEnv("STORAGE_BUCKET", ""),
		Region:    getEnv("STORAGE_REGION", "ap-southeast-1"),
		AccessKey: getEnv("STORAGE_ACCESS_KEY", ""),
		SecretKey: getEnv("STORAGE_SECRET_KEY", ""),
		Endpoint:  getEnv("STORAGE_ENDPOINT", ""),
		CDNDomain: getEnv("STORAGE_CDN_DOMAIN", ""),
		BasePath:  getEnv("STORAGE_BASE_PATH", "sellerhub"),
	})
	if err != nil {
		log.Printf("警告: 存储服务初始化失败: %v", err)
		return nil
	}
	return storageSvc
}

// ==================== 服务启动 ====================

// startServer 启动服务并处理优雅退出
func startServer(r *gin.Engine, deps *Dependencies) {
	port := getEnv("SERVER_PORT", "8080")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Printf("服务启动在 :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")
	deps.TaskManager.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务强制关闭: %v", err)
	}

	log.Println("服务已退出")
}

// ==================== 工具函数 ====================

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
