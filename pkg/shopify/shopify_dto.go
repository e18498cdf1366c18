package shopify

// ==================== 商品 ====================

// ProductImage 商品图片
type ProductImage struct {
	Src     string `json:"src"`
	AltText string `json:"altText"`
}

// ProductVariant 商品变体, 价格保持字符串原样 (Shopify 以字符串下发)
type ProductVariant struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Price string `json:"price"`
}

// ProductCategory 商品类目
type ProductCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RawProduct Shopify 商品原始载荷
// 字段是 Admin GraphQL 的 camelCase 命名, 由中间层原样转发
type RawProduct struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Handle         string           `json:"handle"`
	Status         string           `json:"status"` // ACTIVE / DRAFT / ARCHIVED
	CreatedAt      string           `json:"createdAt"`
	UpdatedAt      string           `json:"updatedAt"`
	Description    string           `json:"description"`
	ProductType    string           `json:"productType"`
	TotalInventory int              `json:"totalInventory"`
	Tags           []string         `json:"tags"`
	Category       ProductCategory  `json:"category"`
	Images         []ProductImage   `json:"images"`
	Variants       []ProductVariant `json:"variants"`
}
