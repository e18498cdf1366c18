package task

import (
	"context"
	"log"
	"time"

	"sellerhub_v1_202609/internal/repository"
	"sellerhub_v1_202609/internal/service"
)

// ==================== TaskManager 业务同步任务管理器 ====================

// TaskManager 统一管理后台同步任务
// 管理范围: Product、Order 快照同步 + 授权检查
type TaskManager struct {
	productTask *ProductSyncTask
	orderTask   *OrderSyncTask
	tokenTask   *TokenCheckTask
}

// TaskManagerDeps 任务管理器依赖
type TaskManagerDeps struct {
	ShopRepo       repository.ShopRepository
	ProductService *service.ProductService
	OrderService   *service.OrderService
}

// TaskManagerConfig 任务管理器配置
type TaskManagerConfig struct {
	ProductEnabled     bool
	ProductConcurrency int

	OrderEnabled     bool
	OrderConcurrency int

	TokenEnabled bool
}

// DefaultConfig 默认配置
func DefaultConfig() *TaskManagerConfig {
	return &TaskManagerConfig{
		ProductEnabled:     true,
		ProductConcurrency: 3,

		OrderEnabled:     true,
		OrderConcurrency: 5,

		TokenEnabled: true,
	}
}

// NewTaskManager 创建任务管理器
func NewTaskManager(deps *TaskManagerDeps, cfg *TaskManagerConfig) *TaskManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	tm := &TaskManager{}

	if cfg.ProductEnabled && deps.ProductService != nil {
		tm.productTask = NewProductSyncTask(deps.ShopRepo, deps.ProductService)
		tm.productTask.SetConcurrency(cfg.ProductConcurrency, 300*time.Millisecond)
	}

	if cfg.OrderEnabled && deps.OrderService != nil {
		tm.orderTask = NewOrderSyncTask(deps.ShopRepo, deps.OrderService)
		tm.orderTask.SetConcurrency(cfg.OrderConcurrency, 200*time.Millisecond)
	}

	if cfg.TokenEnabled {
		tm.tokenTask = NewTokenCheckTask(deps.ShopRepo)
	}

	return tm
}

// ==================== 生命周期管理 ====================

// Start 启动所有任务
func (tm *TaskManager) Start() {
	log.Println("[TaskManager] 正在启动后台同步任务...")

	if tm.tokenTask != nil {
		tm.tokenTask.Start()
	}
	if tm.productTask != nil {
		tm.productTask.Start()
	}
	if tm.orderTask != nil {
		tm.orderTask.Start()
	}

	log.Println("[TaskManager] 后台同步任务已全部启动")
}

// Stop 停止所有任务
func (tm *TaskManager) Stop() {
	log.Println("[TaskManager] 正在停止后台同步任务...")

	if tm.productTask != nil {
		tm.productTask.Stop()
	}
	if tm.orderTask != nil {
		tm.orderTask.Stop()
	}
	if tm.tokenTask != nil {
		tm.tokenTask.Stop()
	}

	log.Println("[TaskManager] 后台同步任务已全部停止")
}

// ==================== 手动触发接口 ====================

// TriggerProductSync 触发单店铺商品同步
func (tm *TaskManager) TriggerProductSync(ctx context.Context, shopID int64) (int, error) {
	if tm.productTask == nil {
		return 0, ErrTaskDisabled
	}
	return tm.productTask.SyncShopNow(ctx, shopID)
}

// TriggerAllProductsSync 触发所有商品同步
func (tm *TaskManager) TriggerAllProductsSync() {
	if tm.productTask != nil {
		tm.productTask.SyncAllNow()
	}
}

// TriggerOrderSync 触发单店铺订单同步
func (tm *TaskManager) TriggerOrderSync(ctx context.Context, shopID int64) (int, error) {
	if tm.orderTask == nil {
		return 0, ErrTaskDisabled
	}
	return tm.orderTask.SyncShopNow(ctx, shopID)
}

// TriggerAllOrdersSync 触发所有订单同步
func (tm *TaskManager) TriggerAllOrdersSync() {
	if tm.orderTask != nil {
		tm.orderTask.SyncAllNow()
	}
}

// ==================== 状态查询 ====================

// Status 获取任务启用状态
func (tm *TaskManager) Status() map[string]bool {
	return map[string]bool{
		"product": tm.productTask != nil,
		"order":   tm.orderTask != nil,
		"token":   tm.tokenTask != nil,
	}
}

// ==================== 错误定义 ====================

type TaskError string

func (e TaskError) Error() string { return string(e) }

const (
	ErrTaskDisabled TaskError = "task is disabled"
)
