package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"sellerhub_v1_202609/pkg/daraz"
	"sellerhub_v1_202609/pkg/utils"
)

// ==================== 类目解析 ====================

// CategoryResult 类目解析结果
// 类目名称是尽力而为的增强信息: 查询失败时 Resolved 为 false,
// Name 回退为原始数字 ID 的字符串, 调用方必须能同时消化两种形态
type CategoryResult struct {
	Name     string
	Resolved bool
}

// FallbackCategory 查询失败时的回退结果
func FallbackCategory(categoryID int64) CategoryResult {
	return CategoryResult{Name: strconv.FormatInt(categoryID, 10), Resolved: false}
}

// CategoryResolver 类目名称查询
type CategoryResolver interface {
	Resolve(ctx context.Context, categoryID int64) CategoryResult
}

// ==================== CategoryService ====================

// CategoryService 基于 Daraz 中间层的类目解析, 带进程内 TTL 缓存
// 缓存只是省去重复网络调用, 对外契约不变 (命中与否结果一致)
type CategoryService struct {
	client   *daraz.Client
	cacheTTL time.Duration
}

var _ CategoryResolver = (*CategoryService)(nil)

// NewCategoryService 创建类目服务
func NewCategoryService(client *daraz.Client) *CategoryService {
	return &CategoryService{
		client:   client,
		cacheTTL: 6 * time.Hour, // 类目树几乎不变, 缓得久一点
	}
}

// Resolve 按 ID 解析类目名称
// 查询失败不向上抛错, 回退为原始 ID 字符串并记录日志
func (s *CategoryService) Resolve(ctx context.Context, categoryID int64) CategoryResult {
	cacheKey := fmt.Sprintf("category:%d", categoryID)
	if name, ok := utils.GetCache(cacheKey); ok {
		return CategoryResult{Name: name, Resolved: true}
	}

	cat, err := s.client.GetCategoryByID(ctx, categoryID)
	if err != nil || cat == nil || cat.Name == "" {
		log.Printf("[Category] 类目 %d 查询失败, 回退为原始 ID: %v", categoryID, err)
		return FallbackCategory(categoryID)
	}

	utils.SetCache(cacheKey, cat.Name, s.cacheTTL)
	return CategoryResult{Name: cat.Name, Resolved: true}
}

// ResolveBatch 并发解析一批类目 ID
// 商品之间没有顺序依赖, 按 ID 去重后并发发起查询, 统一 join
// 单个查询失败只影响它自己的回退结果, 不影响同批其他类目
func (s *CategoryService) ResolveBatch(ctx context.Context, categoryIDs []int64) map[int64]CategoryResult {
	unique := make(map[int64]struct{}, len(categoryIDs))
	for _, id := range categoryIDs {
		unique[id] = struct{}{}
	}

	results := make(map[int64]CategoryResult, len(unique))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for id := range unique {
		wg.Add(1)
		go func(categoryID int64) {
			defer wg.Done()
			res := s.Resolve(ctx, categoryID)

			mu.Lock()
			results[categoryID] = res
			mu.Unlock()
		}(id)
	}

	wg.Wait()
	return results
}
