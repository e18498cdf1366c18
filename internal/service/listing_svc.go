package service

import (
	"context"
	"encoding/json"
	"fmt"

	"sellerhub_v1_202609/internal/api/dto"
	"sellerhub_v1_202609/pkg/daraz"
)

// ==================== ListingService ====================

// ImageUpload 待刊登的商品图片
type ImageUpload struct {
	Data        []byte
	Filename    string
	ContentType string
}

// ListingService 商品刊登服务
type ListingService struct {
	client  *daraz.Client
	storage *StorageService
}

// NewListingService 创建刊登服务
func NewListingService(client *daraz.Client, storage *StorageService) *ListingService {
	return &ListingService{client: client, storage: storage}
}

// CreateListing 创建 Daraz 商品
// 图片流程: 对象存储 -> 平台图床迁移 -> 挂到首个 SKU 上
// 图片迁移失败直接中断, 半成品商品比失败更难收拾
func (s *ListingService) CreateListing(ctx context.Context, accessToken string, req dto.CreateListingReq, images []ImageUpload) (json.RawMessage, error) {
	migrated := make([]string, 0, len(images))
	for _, img := range images {
		hosted, err := s.storage.Upload(ctx, img.Data, img.Filename, img.ContentType)
		if err != nil {
			return nil, fmt.Errorf("刊登图片上传失败: %w", err)
		}

		platformURL, err := s.client.MigrateImage(ctx, accessToken, hosted)
		if err != nil {
			return nil, fmt.Errorf("刊登图片迁移失败: %w", err)
		}
		migrated = append(migrated, platformURL)
	}

	payload := buildListingPayload(req, migrated)

	result, err := s.client.CreateProduct(ctx, accessToken, payload)
	if err != nil {
		return nil, fmt.Errorf("创建商品失败: %w", err)
	}
	return result, nil
}

// buildListingPayload 组装中间层的建品载荷
// 平台要求 attributes 里 title 与 name 一致, 迁移后的图片同时挂在商品级和首个 SKU
func buildListingPayload(req dto.CreateListingReq, migrated []string) map[string]interface{} {
	attributes := make(map[string]string, len(req.Attributes)+1)
	for k, v := range req.Attributes {
		attributes[k] = v
	}
	if name, ok := attributes["name"]; ok {
		attributes["title"] = name
	}

	skus := make([]map[string]interface{}, 0, len(req.Skus))
	for i, sku := range req.Skus {
		entry := map[string]interface{}{
			"SellerSku": sku.SellerSku,
			"quantity":  sku.Quantity,
			"price":     sku.Price,
		}
		if sku.Color != "" || sku.Size != "" {
			entry["saleProp"] = map[string]string{"color": sku.Color, "size": sku.Size}
		}
		if i == 0 && len(migrated) > 0 {
			entry["Images"] = migrated
		} else if len(sku.Images) > 0 {
			entry["Images"] = sku.Images
		}
		skus = append(skus, entry)
	}

	return map[string]interface{}{
		"PrimaryCategory": req.CategoryID,
		"Attributes":      attributes,
		"Skus":            skus,
		"Images":          migrated,
	}
}
