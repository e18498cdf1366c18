package model

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// ==================== Product 商品快照 ====================

// Product 同步落库的商品快照, 供仪表盘统计和列表页使用
// 视图层的 DarazProduct/UnifiedProduct 是请求级的临时对象, 不在这里
type Product struct {
	BaseModel
	ShopID   int64  `gorm:"index;not null"`
	Shop     *Shop  `gorm:"foreignKey:ShopID"`
	Platform string `gorm:"size:16;uniqueIndex:idx_platform_item;not null"`
	ItemID   string `gorm:"size:64;uniqueIndex:idx_platform_item;not null"` // 平台侧商品 ID

	// --- 基本信息 ---
	Name        string `gorm:"size:255;index"`
	Description string `gorm:"type:text"`
	Category    string `gorm:"size:255"`
	CategoryID  int64  `gorm:"default:0"`

	// --- 库存与状态 ---
	Inventory    int    `gorm:"default:0"` // 各 SKU quantity 之和, 不会为负
	SKU          string `gorm:"size:100;index"`
	VariantCount int    `gorm:"default:0"`
	Status       string `gorm:"size:32;index"`
	IsActive     bool   `gorm:"default:false"`

	// --- 数组/标签类数据 (Postgres Array) ---
	Images   pq.StringArray `gorm:"type:text[]"`
	SeoTags  pq.StringArray `gorm:"type:text[]"`
	Features pq.StringArray `gorm:"type:text[]"`

	// --- 原始载荷留档 ---
	RawData datatypes.JSON `gorm:"type:jsonb"`
}

func (Product) TableName() string {
	return "products"
}
