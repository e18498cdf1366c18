package dto

// ==================== 商品刊登 ====================

// CreateListingReq 创建 Daraz 商品的请求
// Images 是已上传到对象存储的公开 URL, 服务端负责迁移到平台图床
type CreateListingReq struct {
	Attributes map[string]string `json:"attributes" binding:"required"`
	Skus       []ListingSKU      `json:"skus" binding:"required,min=1"`
	CategoryID int64             `json:"category_id" binding:"required"`
	Images     []string          `json:"images"`
}

// ListingSKU 刊登请求里的 SKU
type ListingSKU struct {
	SellerSku string   `json:"seller_sku"`
	Quantity  int      `json:"quantity"`
	Price     float64  `json:"price"`
	Color     string   `json:"color,omitempty"`
	Size      string   `json:"size,omitempty"`
	Images    []string `json:"images,omitempty"`
}

// GeneratedListing AI 生成的刊登文案
type GeneratedListing struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Tags        []string `json:"tags"`
	CategoryID  int64    `json:"category_id,omitempty"`
}
