package dto

// ==================== 统一商品视图 ====================

// UnifiedProduct 平台无关的商品记录, 各平台归一化函数的共同目标类型
// 请求级临时对象, 渲染完即丢弃, 不落库
type UnifiedProduct struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Inventory   int      `json:"inventory"` // 恒 >= 0, 有 SKU 时为各 SKU 数量之和
	SKU         string   `json:"sku,omitempty"`
	Variants    int      `json:"variants"` // 变体数量
	Images      []string `json:"images"`
	Status      string   `json:"status"` // ACTIVE / INACTIVE / 平台自有状态串
	Platform    string   `json:"platform"`
}

// ==================== Daraz 商品视图 ====================

// VariantOption 颜色/尺码组合
type VariantOption struct {
	Color string `json:"color"`
	Size  string `json:"size"`
}

// PlatformFlags 商品在各平台的上架标记
type PlatformFlags struct {
	Shopify bool `json:"shopify"`
	Daraz   bool `json:"daraz"`
	Amazon  bool `json:"amazon"`
}

// ReviewView 商品评价视图
type ReviewView struct {
	Rating    int    `json:"rating"`
	Content   string `json:"content"`
	BuyerName string `json:"buyer_name"`
	CreatedAt string `json:"created_at"`
}

// DarazProduct Daraz 平台的完整商品视图, UnifiedProduct 的前置形态
// Category 是尽力而为的结果: 类目查询失败时回退为原始数字 ID 的字符串
type DarazProduct struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Features    []string        `json:"features"`
	SeoTags     []string        `json:"seoTags"`
	Inventory   int             `json:"inventory"`
	SKU         string          `json:"sku"`
	Size        string          `json:"size,omitempty"`
	URL         string          `json:"url"`
	Variants    []VariantOption `json:"variants"`
	Platforms   PlatformFlags   `json:"platforms"`
	Images      []string        `json:"images"`
	IsActive    bool            `json:"isActive"`
	Reviews     []ReviewView    `json:"reviews,omitempty"`
}
