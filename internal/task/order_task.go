package task

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"sellerhub_v1_202609/internal/repository"
	"sellerhub_v1_202609/internal/service"
)

// ==================== OrderSyncTask 订单同步任务 ====================

// OrderSyncTask 订单快照同步定时任务, 每 15 分钟刷新一轮
type OrderSyncTask struct {
	shopRepo     repository.ShopRepository
	orderService *service.OrderService
	cron         *cron.Cron

	concurrencyLimit int
	sleepTime        time.Duration
}

// NewOrderSyncTask 创建订单同步任务
func NewOrderSyncTask(
	shopRepo repository.ShopRepository,
	orderService *service.OrderService,
) *OrderSyncTask {
	return &OrderSyncTask{
		shopRepo:         shopRepo,
		orderService:     orderService,
		cron:             cron.New(cron.WithSeconds()),
		concurrencyLimit: 5,
		sleepTime:        200 * time.Millisecond,
	}
}

// SetConcurrency 设置并发参数
func (t *OrderSyncTask) SetConcurrency(limit int, sleep time.Duration) {
	t.concurrencyLimit = limit
	t.sleepTime = sleep
}

// Start 启动定时任务
func (t *OrderSyncTask) Start() {
	// 首次执行 (延迟 90 秒, 错开商品同步)
	go func() {
		time.Sleep(90 * time.Second)
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Hour)
		defer cancel()
		log.Println("[OrderSyncTask] 执行首次订单同步...")
		t.syncAllShops(ctx)
	}()

	// 每 15 分钟
	_, _ = t.cron.AddFunc("0 */15 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()
		t.syncAllShops(ctx)
	})

	t.cron.Start()
	log.Println("[OrderSyncTask] 已启动 (每15分钟)")
}

// Stop 停止任务
func (t *OrderSyncTask) Stop() {
	ctx := t.cron.Stop()
	<-ctx.Done()
	log.Println("[OrderSyncTask] 已停止")
}

// syncAllShops 同步所有活跃店铺的订单快照
func (t *OrderSyncTask) syncAllShops(ctx context.Context) {
	shops, err := t.shopRepo.ListActive(ctx)
	if err != nil {
		log.Printf("[OrderSyncTask] 获取店铺列表失败: %v", err)
		return
	}
	if len(shops) == 0 {
		log.Println("[OrderSyncTask] 无活跃店铺需要同步")
		return
	}

	sem := make(chan struct{}, t.concurrencyLimit)
	var wg sync.WaitGroup

	var (
		successCount int
		failCount    int
		totalSynced  int
		mu           sync.Mutex
	)

	log.Printf("[OrderSyncTask] 开始处理 %d 个店铺", len(shops))

	for i := range shops {
		shop := shops[i]
		select {
		case <-ctx.Done():
			log.Println("[OrderSyncTask] 任务超时停止")
			wg.Wait()
			return
		default:
		}

		sem <- struct{}{}
		wg.Add(1)
		time.Sleep(t.sleepTime)

		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			count, err := t.orderService.SyncOrders(ctx, &shop)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				log.Printf("[OrderSyncTask] 店铺 %s(%d) 同步失败: %v", shop.ShopName, shop.ID, err)
				failCount++
			} else {
				successCount++
				totalSynced += count
			}
		}()
	}

	wg.Wait()
	log.Printf("[OrderSyncTask] 同步完成: 店铺成功 %d, 失败 %d, 订单 %d",
		successCount, failCount, totalSynced)
}

// ==================== 手动触发 ====================

// SyncShopNow 立即同步单个店铺订单
func (t *OrderSyncTask) SyncShopNow(ctx context.Context, shopID int64) (int, error) {
	shop, err := t.shopRepo.GetByID(ctx, shopID)
	if err != nil {
		return 0, err
	}
	return t.orderService.SyncOrders(ctx, shop)
}

// SyncAllNow 立即同步所有店铺订单
func (t *OrderSyncTask) SyncAllNow() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()
		t.syncAllShops(ctx)
	}()
}
