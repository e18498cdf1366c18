package daraz

import (
	"encoding/json"

	"sellerhub_v1_202609/pkg/utils"
)

// ==================== 宽松数值字段 ====================

// NumString Daraz 的金额/数值字段既可能是 JSON 数字也可能是带币种的字符串
// 统一按原始字符串保存, 解析交给 utils.ParseAmount
type NumString string

func (n *NumString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumString(s)
		return nil
	}
	*n = NumString(data)
	return nil
}

// Float64 解析为数值, 非法输入返回 0
func (n NumString) Float64() float64 {
	return utils.ParseAmount(string(n))
}

// ==================== 商品 ====================

// ProductAttributes 商品属性块
type ProductAttributes struct {
	Name               string `json:"name"`
	NameEn             string `json:"name_en"`
	Description        string `json:"description"`
	ShortDescriptionEn string `json:"short_description_en"`
	Brand              string `json:"brand"`
	Size               string `json:"size"`
}

// SaleProp SKU 的销售属性组合
type SaleProp struct {
	Color string `json:"color"`
	Size  string `json:"size"`
}

// ProductSKU 商品的单个 SKU
// 注意 Daraz 这里的字段名大小写极不统一, SellerSku/Url 是大写开头
type ProductSKU struct {
	SellerSku string    `json:"SellerSku"`
	Quantity  int       `json:"quantity"`
	SaleProp  *SaleProp `json:"saleProp"`
	URL       string    `json:"Url"`
	Price     NumString `json:"price"`
}

// RawProduct Daraz 商品原始载荷
type RawProduct struct {
	ItemID          int64             `json:"item_id"`
	Attributes      ProductAttributes `json:"attributes"`
	Skus            []ProductSKU      `json:"skus"`
	Images          []string          `json:"images"`
	Status          string            `json:"status"`
	PrimaryCategory int64             `json:"primary_category"`
}

// ==================== 订单 ====================

// ShippingAddress 收货地址 (只保留后台关心的字段)
type ShippingAddress struct {
	City  string `json:"city"`
	Phone string `json:"phone"`
}

// OrderItem 订单行
type OrderItem struct {
	OrderItemID      int64     `json:"order_item_id"`
	Name             string    `json:"name"`
	SKU              string    `json:"sku"`
	PaidPrice        NumString `json:"paid_price"`
	ItemPrice        NumString `json:"item_price"`
	ShipmentProvider string    `json:"shipment_provider"`
	Status           string    `json:"status"`
	TrackingCode     string    `json:"tracking_code"`
	CreatedAt        string    `json:"created_at"`
}

// OrderInfo 带订单行的订单原始载荷
// 注意: 营收统计必须累加订单行的 paid_price, 订单级 price 含未支付/已取消金额
type OrderInfo struct {
	OrderID         int64           `json:"order_id"`
	OrderNumber     int64           `json:"order_number"`
	CreatedAt       string          `json:"created_at"`
	UpdatedAt       string          `json:"updated_at"`
	Price           NumString       `json:"price"`
	ShippingFee     NumString       `json:"shipping_fee"`
	PaymentMethod   string          `json:"payment_method"`
	Statuses        []string        `json:"statuses"`
	AddressShipping ShippingAddress `json:"address_shipping"`
	Items           []OrderItem     `json:"items"`
}

// ==================== 逆向订单 ====================

// ReverseOrderLine 逆向订单行: 退货原因、退款金额、纠纷状态
type ReverseOrderLine struct {
	ReverseOrderLineID int64     `json:"reverse_order_line_id"`
	OrderItemID        int64     `json:"order_item_id"`
	ProductName        string    `json:"product_name"`
	SKU                string    `json:"sku"`
	ReasonCode         string    `json:"reason_code"`
	ReasonText         string    `json:"reason_text"`
	RefundAmount       NumString `json:"refund_amount"`
	DisputeStatus      string    `json:"dispute_status"`
	OfcStatus          string    `json:"ofc_status"`
	TrackingNumber     string    `json:"tracking_number"`
}

// ReverseOrder 逆向订单 (退货/纠纷), 核心按透传处理
type ReverseOrder struct {
	ReverseOrderID int64              `json:"reverse_order_id"`
	OrderID        int64              `json:"order_id"`
	RequestType    string             `json:"request_type"`
	CreatedAt      string             `json:"created_at"`
	Lines          []ReverseOrderLine `json:"reverse_order_lines"`
}

// ==================== 结算单 ====================

// PayoutStatement 卖家结算单原始载荷
// Daraz 把所有财务字段都以带币种后缀的字符串下发, paid 是 "0"/"1"
type PayoutStatement struct {
	StatementNumber   string `json:"statement_number"`
	Payout            string `json:"payout"`
	ItemRevenue       string `json:"item_revenue"`
	FeesTotal         string `json:"fees_total"`
	Refunds           string `json:"refunds"`
	OtherRevenueTotal string `json:"other_revenue_total"`
	OpeningBalance    string `json:"opening_balance"`
	ClosingBalance    string `json:"closing_balance"`
	ShipmentFee       string `json:"shipment_fee"`
	Paid              string `json:"paid"`
	CreatedAt         string `json:"created_at"`
	UpdatedAt         string `json:"updated_at"`
}

// ==================== 评价 ====================

// Review 商品评价
type Review struct {
	ReviewID      int64  `json:"review_id"`
	ItemID        int64  `json:"item_id"`
	Rating        int    `json:"rating"`
	ReviewContent string `json:"review_content"`
	BuyerName     string `json:"buyer_name"`
	CreateTime    string `json:"create_time"`
}

// ==================== 类目 ====================

// Category 类目查询结果
type Category struct {
	CategoryID int64  `json:"category_id"`
	Name       string `json:"name"`
	Leaf       bool   `json:"leaf"`
}
