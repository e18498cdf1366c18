package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"gorm.io/datatypes"

	"sellerhub_v1_202609/internal/api/dto"
	"sellerhub_v1_202609/internal/model"
	"sellerhub_v1_202609/internal/repository"
	"sellerhub_v1_202609/pkg/daraz"
	"sellerhub_v1_202609/pkg/shopify"
)

// ==================== ProductService ====================

// unifiedFetcher 平台商品拉取 + 归一化, 目标类型统一为 UnifiedProduct
type unifiedFetcher func(ctx context.Context, accessToken string) ([]dto.UnifiedProduct, error)

// ProductService 商品服务
// fetchers 是按平台枚举封闭注册的归一化入口, 运行期不增删
type ProductService struct {
	productRepo   repository.ProductRepository
	shopRepo      repository.ShopRepository
	darazClient   *daraz.Client
	shopifyClient *shopify.Client
	categories    CategoryResolver

	fetchers map[model.Platform]unifiedFetcher
}

// NewProductService 创建商品服务
// Amazon 尚未接入, 注册表里没有对应的归一化函数
func NewProductService(
	productRepo repository.ProductRepository,
	shopRepo repository.ShopRepository,
	darazClient *daraz.Client,
	shopifyClient *shopify.Client,
	categories CategoryResolver,
) *ProductService {
	s := &ProductService{
		productRepo:   productRepo,
		shopRepo:      shopRepo,
		darazClient:   darazClient,
		shopifyClient: shopifyClient,
		categories:    categories,
	}

	s.fetchers = map[model.Platform]unifiedFetcher{
		model.PlatformDaraz:   s.fetchDarazUnified,
		model.PlatformShopify: s.fetchShopifyUnified,
	}
	return s
}

// ==================== 统一库存视图 ====================

// GetUnifiedInventory 合并各平台的商品到统一视图
// 单个平台拉取失败不拖垮整个页面, 记日志后跳过
func (s *ProductService) GetUnifiedInventory(ctx context.Context, accessToken string) ([]dto.UnifiedProduct, error) {
	var merged []dto.UnifiedProduct

	for _, info := range model.AllPlatforms() {
		fetch, ok := s.fetchers[info.ID]
		if !ok {
			continue // 未接入的平台 (amazon)
		}
		products, err := fetch(ctx, accessToken)
		if err != nil {
			log.Printf("[Inventory] 平台 %s 商品拉取失败: %v", info.ID, err)
			continue
		}
		merged = append(merged, products...)
	}
	return merged, nil
}

func (s *ProductService) fetchDarazUnified(ctx context.Context, accessToken string) ([]dto.UnifiedProduct, error) {
	products, err := s.GetDarazProducts(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	unified := make([]dto.UnifiedProduct, 0, len(products))
	for _, p := range products {
		unified = append(unified, MapDarazToUnified(p))
	}
	return unified, nil
}

func (s *ProductService) fetchShopifyUnified(ctx context.Context, _ string) ([]dto.UnifiedProduct, error) {
	raws, err := s.shopifyClient.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	unified := make([]dto.UnifiedProduct, 0, len(raws))
	for _, raw := range raws {
		unified = append(unified, MapShopifyProduct(raw))
	}
	return unified, nil
}

// ==================== Daraz 商品 ====================

// GetDarazProducts 拉取并归一化 Daraz 商品 (含并发类目解析)
func (s *ProductService) GetDarazProducts(ctx context.Context, accessToken string) ([]dto.DarazProduct, error) {
	raws, err := s.darazClient.GetAllProducts(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("拉取 Daraz 商品失败: %w", err)
	}
	return BatchMapDarazProducts(ctx, s.categories, raws), nil
}

// ==================== 快照同步 ====================

// SyncProducts 同步一个店铺的商品快照到本地库
func (s *ProductService) SyncProducts(ctx context.Context, shop *model.Shop) (int, error) {
	raws, err := s.darazClient.GetAllProducts(ctx, shop.AccessToken)
	if err != nil {
		return 0, fmt.Errorf("店铺 %d 商品拉取失败: %w", shop.ID, err)
	}

	normalized := BatchMapDarazProducts(ctx, s.categories, raws)

	rows := make([]model.Product, 0, len(normalized))
	for i, p := range normalized {
		rawJSON, _ := json.Marshal(raws[i])
		rows = append(rows, model.Product{
			ShopID:       shop.ID,
			Platform:     shop.Platform,
			ItemID:       p.ID,
			Name:         p.Name,
			Description:  p.Description,
			Category:     p.Category,
			CategoryID:   raws[i].PrimaryCategory,
			Inventory:    p.Inventory,
			SKU:          p.SKU,
			VariantCount: len(p.Variants),
			Status:       raws[i].Status,
			IsActive:     p.IsActive,
			Images:       p.Images,
			SeoTags:      p.SeoTags,
			Features:     p.Features,
			RawData:      datatypes.JSON(rawJSON),
		})
	}

	if err := s.productRepo.BatchUpsert(ctx, rows); err != nil {
		return 0, fmt.Errorf("店铺 %d 商品快照写入失败: %w", shop.ID, err)
	}

	if err := s.shopRepo.TouchSyncTime(ctx, shop.ID); err != nil {
		log.Printf("[Sync] 店铺 %d 更新同步时间失败: %v", shop.ID, err)
	}
	return len(rows), nil
}

// ListProducts 查询本地商品快照
func (s *ProductService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]model.Product, int64, error) {
	return s.productRepo.List(ctx, filter)
}
