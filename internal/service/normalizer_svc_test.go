package service

import (
	"context"
	"reflect"
	"testing"

	"sellerhub_v1_202609/pkg/daraz"
	"sellerhub_v1_202609/pkg/shopify"
)

// ==================== 测试辅助 ====================

// fakeResolver 固定映射的类目解析器, 不走网络
type fakeResolver struct {
	names map[int64]string
}

func (f *fakeResolver) Resolve(_ context.Context, categoryID int64) CategoryResult {
	if name, ok := f.names[categoryID]; ok {
		return CategoryResult{Name: name, Resolved: true}
	}
	return FallbackCategory(categoryID)
}

func sampleRawProduct() daraz.RawProduct {
	return daraz.RawProduct{
		ItemID: 429817,
		Attributes: daraz.ProductAttributes{
			Name:               "本地名称",
			NameEn:             "Wireless Earbuds",
			Description:        "<p>Great <b>sound</b></p>",
			ShortDescriptionEn: "<ul><li>Noise cancelling</li><li>24h battery</li></ul>",
			Brand:              "SoundCo",
		},
		Skus: []daraz.ProductSKU{
			{SellerSku: "SKU-001", Quantity: 5, URL: "https://daraz.pk/p/429817", SaleProp: &daraz.SaleProp{Color: "Black", Size: "M"}},
			{SellerSku: "SKU-002", Quantity: 3},
		},
		Images:          []string{"https://img/1.jpg"},
		Status:          "Active",
		PrimaryCategory: 100,
	}
}

// ==================== Daraz 商品归一化 ====================

func TestMapDarazProduct(t *testing.T) {
	p := MapDarazProduct(sampleRawProduct(), CategoryResult{Name: "Electronics", Resolved: true})

	if p.ID != "429817" {
		t.Errorf("ID = %q, want 429817", p.ID)
	}
	if p.Name != "Wireless Earbuds" {
		t.Errorf("Name = %q, 应优先取英文名", p.Name)
	}
	if p.Category != "Electronics" {
		t.Errorf("Category = %q, want Electronics", p.Category)
	}
	if p.Description != "Great sound" {
		t.Errorf("Description = %q, HTML 标签应被去除", p.Description)
	}
	if !reflect.DeepEqual(p.Features, []string{"Noise cancelling", "24h battery"}) {
		t.Errorf("Features = %v", p.Features)
	}
	if p.Inventory != 8 {
		t.Errorf("Inventory = %d, want 8 (各 SKU 之和)", p.Inventory)
	}
	if p.SKU != "SKU-001" || p.URL != "https://daraz.pk/p/429817" {
		t.Errorf("SKU/URL 应取首个 SKU, got %q %q", p.SKU, p.URL)
	}
	if len(p.Variants) != 2 || p.Variants[0].Color != "Black" {
		t.Errorf("Variants = %v", p.Variants)
	}
	if !p.IsActive {
		t.Error("status=Active (大小写不敏感) 应判定为在售")
	}
	if !p.Platforms.Daraz {
		t.Error("Platforms.Daraz 应为 true")
	}
}

func TestMapDarazProduct_NameFallback(t *testing.T) {
	raw := sampleRawProduct()
	raw.Attributes.NameEn = ""
	if got := MapDarazProduct(raw, FallbackCategory(100)); got.Name != "本地名称" {
		t.Errorf("Name = %q, 英文名缺失应回退本地名", got.Name)
	}

	raw.Attributes.Name = ""
	if got := MapDarazProduct(raw, FallbackCategory(100)); got.Name != "Untitled" {
		t.Errorf("Name = %q, 两个名字都缺失应为 Untitled", got.Name)
	}
}

func TestMapDarazProduct_NegativeQuantityClamped(t *testing.T) {
	raw := sampleRawProduct()
	raw.Skus = []daraz.ProductSKU{
		{SellerSku: "A", Quantity: -4},
		{SellerSku: "B", Quantity: 2},
	}

	if got := MapDarazProduct(raw, FallbackCategory(100)); got.Inventory != 2 {
		t.Errorf("Inventory = %d, 负数量不应计入", got.Inventory)
	}
}

func TestMapDarazProduct_EmptySkus(t *testing.T) {
	raw := sampleRawProduct()
	raw.Skus = nil
	raw.Images = nil

	got := MapDarazProduct(raw, FallbackCategory(100))
	if got.Inventory != 0 || got.SKU != "" || got.URL != "" {
		t.Errorf("空 SKU 列表: inventory=%d sku=%q url=%q", got.Inventory, got.SKU, got.URL)
	}
	if got.Images == nil {
		t.Error("Images 缺失应归一化为空列表而非 nil")
	}
}

func TestBuildSeoTags_Dedupe(t *testing.T) {
	raw := sampleRawProduct()
	raw.Attributes.Brand = "Wireless Earbuds" // 与英文名重复

	got := MapDarazProduct(raw, FallbackCategory(100))
	want := []string{"Wireless Earbuds", "100"}
	if !reflect.DeepEqual(got.SeoTags, want) {
		t.Errorf("SeoTags = %v, want %v (重复值只保留一次)", got.SeoTags, want)
	}
}

func TestBatchMapDarazProducts_CategoryFallback(t *testing.T) {
	resolver := &fakeResolver{names: map[int64]string{100: "Electronics"}}

	raws := []daraz.RawProduct{sampleRawProduct(), sampleRawProduct()}
	raws[1].ItemID = 999
	raws[1].PrimaryCategory = 777 // 解析器不认识

	products := BatchMapDarazProducts(context.Background(), resolver, raws)
	if len(products) != 2 {
		t.Fatalf("len = %d, want 2", len(products))
	}
	if products[0].Category != "Electronics" {
		t.Errorf("已知类目 = %q, want Electronics", products[0].Category)
	}
	if products[1].Category != "777" {
		t.Errorf("未知类目 = %q, 应回退为原始 ID 字符串", products[1].Category)
	}
}

// ==================== 统一视图归一化 ====================

func TestMapDarazToUnified(t *testing.T) {
	p := MapDarazProduct(sampleRawProduct(), CategoryResult{Name: "Electronics", Resolved: true})
	u := MapDarazToUnified(p)

	if u.Status != "ACTIVE" {
		t.Errorf("Status = %q, want ACTIVE", u.Status)
	}
	if u.Variants != 2 {
		t.Errorf("Variants = %d, want 2", u.Variants)
	}
	if u.Platform != "daraz" {
		t.Errorf("Platform = %q, want daraz", u.Platform)
	}

	p.IsActive = false
	if MapDarazToUnified(p).Status != "INACTIVE" {
		t.Error("非在售商品 Status 应为 INACTIVE")
	}
}

func TestMapShopifyProduct(t *testing.T) {
	raw := shopify.RawProduct{
		ID:             "gid://shopify/Product/1",
		Title:          "Mug",
		Handle:         "mug",
		Status:         "ACTIVE",
		TotalInventory: -3,
		Category:       shopify.ProductCategory{Name: "Kitchen"},
		Images:         []shopify.ProductImage{{Src: "https://cdn/1.png"}},
		Variants:       []shopify.ProductVariant{{ID: "v1"}},
	}

	u := MapShopifyProduct(raw)
	if u.Inventory != 0 {
		t.Errorf("Inventory = %d, 负库存应钳为 0", u.Inventory)
	}
	if u.SKU != "mug" {
		t.Errorf("SKU = %q, 应取 handle", u.SKU)
	}
	if u.Platform != "shopify" || u.Category != "Kitchen" {
		t.Errorf("platform=%q category=%q", u.Platform, u.Category)
	}
}
