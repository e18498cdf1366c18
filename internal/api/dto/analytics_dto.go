package dto

// ==================== 订单分析 ====================

// RevenuePoint 按日分组的订单量与营收
type RevenuePoint struct {
	Date    string  `json:"date"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// ProductRevenue 按商品聚合的营收排名
type ProductRevenue struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
	Qty     int     `json:"qty"`
}

// CityOrders 按城市聚合的订单量
type CityOrders struct {
	City   string `json:"city"`
	Orders int    `json:"orders"`
}

// PaymentCount 按支付方式聚合的订单量
type PaymentCount struct {
	Method string `json:"method"`
	Count  int    `json:"count"`
}

// ProviderUsage 物流商使用次数 (按订单行计)
type ProviderUsage struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// FeePoint 按日汇总的运费
type FeePoint struct {
	Date string  `json:"date"`
	Fee  float64 `json:"fee"`
}

// OrderAnalytics 订单分析汇总
// 百分比保持未舍入的浮点数, 展示层负责格式化
type OrderAnalytics struct {
	TotalRevenue      float64 `json:"total_revenue"`
	TotalOrders       int     `json:"total_orders"`
	AverageOrderValue float64 `json:"average_order_value"`
	CodSharePercent   float64 `json:"cod_share_percent"`

	RevenueOverTime        []RevenuePoint   `json:"revenue_over_time"`
	TopProducts            []ProductRevenue `json:"top_products"`
	OrdersByCity           []CityOrders     `json:"orders_by_city"`
	PaymentMethodBreakdown []PaymentCount   `json:"payment_method_breakdown"`
	ShipmentProviderUsage  []ProviderUsage  `json:"shipment_provider_usage"`
	ShippingFeeTrend       []FeePoint       `json:"shipping_fee_trend"`
}
