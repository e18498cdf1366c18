package task

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"sellerhub_v1_202609/internal/model"
	"sellerhub_v1_202609/internal/repository"
)

// ==================== TokenCheckTask 授权检查任务 ====================

// TokenCheckTask 定期扫描活跃店铺的授权有效期
// 过期的店铺标记为"授权失效", 同步任务不再处理, 等待卖家重新连接
type TokenCheckTask struct {
	shopRepo repository.ShopRepository
	cron     *cron.Cron
}

func NewTokenCheckTask(shopRepo repository.ShopRepository) *TokenCheckTask {
	return &TokenCheckTask{
		shopRepo: shopRepo,
		cron:     cron.New(cron.WithSeconds()), // 支持秒级控制
	}
}

// Start 启动定时任务
func (t *TokenCheckTask) Start() {
	// 首次执行
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		log.Println("[TokenCheckTask] 服务启动, 正在执行首次授权检查...")
		t.checkJob(ctx)
	}()

	_, err := t.cron.AddFunc("0 0/40 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		t.checkJob(ctx)
	})
	if err != nil {
		log.Fatalf("无法启动授权检查定时任务: %v", err)
	}

	t.cron.Start()
	log.Println("[TokenCheckTask] 授权检查任务已启动 (每40分钟)")
}

// Stop 停止任务
func (t *TokenCheckTask) Stop() {
	ctx := t.cron.Stop()
	<-ctx.Done()
	log.Println("[TokenCheckTask] 已停止")
}

// checkJob 扫描并标记授权过期的店铺
func (t *TokenCheckTask) checkJob(ctx context.Context) {
	shops, err := t.shopRepo.ListActive(ctx)
	if err != nil {
		log.Printf("[TokenCheckTask] 店铺查询失败: %v", err)
		return
	}

	now := time.Now()
	expired := 0
	for i := range shops {
		shop := shops[i]
		if !shop.TokenExpired(now) {
			continue
		}
		if err := t.shopRepo.UpdateStatus(ctx, shop.ID, model.ShopStatusTokenInvalid); err != nil {
			log.Printf("[TokenCheckTask] 店铺 [%s] 标记失败: %v", shop.ShopName, err)
			continue
		}
		expired++
		log.Printf("[TokenCheckTask] 店铺 [%s] 授权已过期, 已标记为待重连", shop.ShopName)
	}

	if expired > 0 {
		log.Printf("[TokenCheckTask] 本轮检查完成, %d 个店铺授权过期", expired)
	}
}
