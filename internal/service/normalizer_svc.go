package service

import (
	"context"
	"strconv"
	"strings"

	"sellerhub_v1_202609/internal/api/dto"
	"sellerhub_v1_202609/internal/model"
	"sellerhub_v1_202609/pkg/daraz"
	"sellerhub_v1_202609/pkg/shopify"
	"sellerhub_v1_202609/pkg/utils"
)

// 各平台原始载荷 -> 内部视图的归一化函数
// 纯函数, 不碰共享状态; 唯一的外部调用 (类目查询) 由调用方在批处理层注入结果

// ==================== Daraz 商品归一化 ====================

// MapDarazProduct 把 Daraz 原始商品映射为 DarazProduct 视图
// category 由调用方通过 CategoryResolver 预先解析 (见 BatchMapDarazProducts)
func MapDarazProduct(raw daraz.RawProduct, category CategoryResult) dto.DarazProduct {
	attrs := raw.Attributes

	name := attrs.NameEn
	if name == "" {
		name = attrs.Name
	}
	if name == "" {
		name = "Untitled"
	}

	// 卖点列表藏在 short_description_en 的 <li> 里, 字段缺失 => 空列表
	features := utils.ExtractListItems(attrs.ShortDescriptionEn)

	// 库存 = 各 SKU quantity 之和, 缺失按 0, 结果不为负
	inventory := 0
	variants := make([]dto.VariantOption, 0, len(raw.Skus))
	for _, sku := range raw.Skus {
		if sku.Quantity > 0 {
			inventory += sku.Quantity
		}
		opt := dto.VariantOption{}
		if sku.SaleProp != nil {
			opt.Color = sku.SaleProp.Color
			opt.Size = sku.SaleProp.Size
		}
		variants = append(variants, opt)
	}

	sku, url := "", ""
	if len(raw.Skus) > 0 {
		sku = raw.Skus[0].SellerSku
		url = raw.Skus[0].URL
	}

	images := raw.Images
	if images == nil {
		images = []string{}
	}

	return dto.DarazProduct{
		ID:          strconv.FormatInt(raw.ItemID, 10),
		Name:        name,
		Category:    category.Name,
		Description: utils.StripTags(attrs.Description),
		Features:    features,
		SeoTags:     buildSeoTags(attrs.NameEn, attrs.Brand, raw.PrimaryCategory),
		Inventory:   inventory,
		SKU:         sku,
		Size:        attrs.Size,
		URL:         url,
		Variants:    variants,
		Platforms:   dto.PlatformFlags{Daraz: true},
		Images:      images,
		IsActive:    strings.EqualFold(raw.Status, "active"),
	}
}

// BatchMapDarazProducts 批量归一化
// 类目查询按商品并发发起、统一 join 后再映射; 单个失败只影响自己的回退值
func BatchMapDarazProducts(ctx context.Context, resolver CategoryResolver, raws []daraz.RawProduct) []dto.DarazProduct {
	ids := make([]int64, 0, len(raws))
	for _, raw := range raws {
		ids = append(ids, raw.PrimaryCategory)
	}

	var categories map[int64]CategoryResult
	if batch, ok := resolver.(interface {
		ResolveBatch(ctx context.Context, ids []int64) map[int64]CategoryResult
	}); ok {
		categories = batch.ResolveBatch(ctx, ids)
	} else {
		categories = make(map[int64]CategoryResult, len(ids))
		for _, id := range ids {
			categories[id] = resolver.Resolve(ctx, id)
		}
	}

	products := make([]dto.DarazProduct, 0, len(raws))
	for _, raw := range raws {
		cat, ok := categories[raw.PrimaryCategory]
		if !ok {
			cat = FallbackCategory(raw.PrimaryCategory)
		}
		products = append(products, MapDarazProduct(raw, cat))
	}
	return products
}

// buildSeoTags 组装 SEO 标签: [英文名, 品牌, 类目ID], 过滤空值并去重
func buildSeoTags(nameEn, brand string, categoryID int64) []string {
	candidates := []string{nameEn, brand, strconv.FormatInt(categoryID, 10)}

	seen := make(map[string]struct{}, len(candidates))
	tags := make([]string, 0, len(candidates))
	for _, tag := range candidates {
		if tag == "" || tag == "0" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

// ==================== 统一商品归一化 ====================

// MapDarazToUnified DarazProduct -> 平台无关的 UnifiedProduct
func MapDarazToUnified(p dto.DarazProduct) dto.UnifiedProduct {
	status := "INACTIVE"
	if p.IsActive {
		status = "ACTIVE"
	}

	return dto.UnifiedProduct{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Inventory:   p.Inventory,
		SKU:         p.SKU,
		Variants:    len(p.Variants),
		Images:      p.Images,
		Status:      status,
		Platform:    string(model.PlatformDaraz),
	}
}

// MapShopifyProduct Shopify 原始商品 -> UnifiedProduct
// Shopify 没有商品级 SKU, 用 handle 近似
func MapShopifyProduct(raw shopify.RawProduct) dto.UnifiedProduct {
	images := make([]string, 0, len(raw.Images))
	for _, img := range raw.Images {
		images = append(images, img.Src)
	}

	inventory := raw.TotalInventory
	if inventory < 0 {
		inventory = 0
	}

	return dto.UnifiedProduct{
		ID:          raw.ID,
		Name:        raw.Title,
		Description: raw.Description,
		Category:    raw.Category.Name,
		Inventory:   inventory,
		SKU:         raw.Handle,
		Variants:    len(raw.Variants),
		Images:      images,
		Status:      raw.Status,
		Platform:    string(model.PlatformShopify),
	}
}
