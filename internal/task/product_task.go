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

// ==================== ProductSyncTask 商品同步任务 ====================

// ProductSyncTask 商品快照同步定时任务
// 同步策略:
//   - 常规同步: 每 30 分钟刷新活跃店铺的商品快照
//   - 全量兜底: 每日凌晨 3 点再跑一轮
type ProductSyncTask struct {
	shopRepo       repository.ShopRepository
	productService *service.ProductService
	cron           *cron.Cron

	// 并发控制
	concurrencyLimit int
	sleepTime        time.Duration
}

// NewProductSyncTask 创建商品同步任务
func NewProductSyncTask(
	shopRepo repository.ShopRepository,
	productService *service.ProductService,
) *ProductSyncTask {
	return &ProductSyncTask{
		shopRepo:         shopRepo,
		productService:   productService,
		cron:             cron.New(cron.WithSeconds()),
		concurrencyLimit: 3,
		sleepTime:        300 * time.Millisecond,
	}
}

// SetConcurrency 设置并发参数
func (t *ProductSyncTask) SetConcurrency(limit int, sleep time.Duration) {
	t.concurrencyLimit = limit
	t.sleepTime = sleep
}

// Start 启动定时任务
func (t *ProductSyncTask) Start() {
	// 首次执行 (延迟 60 秒, 等待服务就绪)
	go func() {
		time.Sleep(60 * time.Second)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Hour)
		defer cancel()
		log.Println("[ProductSyncTask] 执行首次商品同步...")
		t.syncAllShops(ctx)
	}()

	// 常规同步: 每 30 分钟
	_, _ = t.cron.AddFunc("0 */30 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Hour)
		defer cancel()
		t.syncAllShops(ctx)
	})

	// 全量兜底: 每日凌晨 3 点
	_, _ = t.cron.AddFunc("0 0 3 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Hour)
		defer cancel()
		log.Println("[ProductSyncTask] 开始每日全量商品同步...")
		t.syncAllShops(ctx)
	})

	t.cron.Start()
	log.Println("[ProductSyncTask] 已启动 (每30分钟/全量每日3点)")
}

// Stop 停止任务
func (t *ProductSyncTask) Stop() {
	ctx := t.cron.Stop()
	<-ctx.Done()
	log.Println("[ProductSyncTask] 已停止")
}

// syncAllShops 同步所有活跃店铺的商品快照
func (t *ProductSyncTask) syncAllShops(ctx context.Context) {
	shops, err := t.shopRepo.ListActive(ctx)
	if err != nil {
		log.Printf("[ProductSyncTask] 获取店铺列表失败: %v", err)
		return
	}
	if len(shops) == 0 {
		log.Println("[ProductSyncTask] 无活跃店铺需要同步")
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

	log.Printf("[ProductSyncTask] 开始处理 %d 个店铺", len(shops))

	for i := range shops {
		shop := shops[i]
		select {
		case <-ctx.Done():
			log.Println("[ProductSyncTask] 任务超时停止")
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

			count, err := t.productService.SyncProducts(ctx, &shop)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				log.Printf("[ProductSyncTask] 店铺 %s(%d) 同步失败: %v", shop.ShopName, shop.ID, err)
				failCount++
			} else {
				successCount++
				totalSynced += count
			}
		}()
	}

	wg.Wait()
	log.Printf("[ProductSyncTask] 同步完成: 店铺成功 %d, 失败 %d, 商品 %d",
		successCount, failCount, totalSynced)
}

// ==================== 手动触发 ====================

// SyncShopNow 立即同步单个店铺商品
func (t *ProductSyncTask) SyncShopNow(ctx context.Context, shopID int64) (int, error) {
	shop, err := t.shopRepo.GetByID(ctx, shopID)
	if err != nil {
		return 0, err
	}
	return t.productService.SyncProducts(ctx, shop)
}

// SyncAllNow 立即同步所有店铺商品
func (t *ProductSyncTask) SyncAllNow() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Hour)
		defer cancel()
		t.syncAllShops(ctx)
	}()
}
