package model

import (
	"time"

	"gorm.io/datatypes"
)

// ==================== Order 订单快照 ====================

// Order 同步落库的订单快照
// ItemsRevenue 是订单行 paid_price 之和, 不等于订单级 price (后者含未支付金额)
type Order struct {
	BaseModel
	ShopID  int64 `gorm:"index;not null"`
	OrderID int64 `gorm:"uniqueIndex;not null"` // 平台侧订单 ID

	PlacedAt      *time.Time `gorm:"index"`
	PaymentMethod string     `gorm:"size:64"`
	City          string     `gorm:"size:128;index"`
	Phone         string     `gorm:"size:32"`

	// --- 金额 ---
	OrderPrice   float64 `gorm:"default:0"` // 订单级 price, 仅展示用
	ItemsRevenue float64 `gorm:"default:0"` // 营收口径
	ShippingFee  float64 `gorm:"default:0"`

	ItemCount int    `gorm:"default:0"`
	Status    string `gorm:"size:32;index"`

	// --- 原始载荷留档 ---
	RawData datatypes.JSON `gorm:"type:jsonb"`

	Items []OrderItem `gorm:"foreignKey:OrderRecordID"`
}

func (Order) TableName() string {
	return "orders"
}

// ==================== OrderItem 订单行快照 ====================

type OrderItem struct {
	BaseModel
	OrderRecordID int64  `gorm:"index;not null"` // 关联本地 Order.ID
	OrderItemID   int64  `gorm:"uniqueIndex;not null"`
	Name          string `gorm:"size:255"`
	SKU           string `gorm:"size:100;index"`

	PaidPrice        float64 `gorm:"default:0"`
	ShipmentProvider string  `gorm:"size:128;index"`
	Status           string  `gorm:"size:32"`
	TrackingCode     string  `gorm:"size:64"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
