package dto

import "time"

// ==================== 结算单 ====================

// ParsedPayoutStatement 结算单的强类型形态
// 原始载荷全部是带币种后缀的字符串, 解析边界只有一个 (payout_svc),
// 聚合必须基于这里的数值字段, 禁止在调用点重新解析字符串
type ParsedPayoutStatement struct {
	StatementNumber   string    `json:"statement_number"`
	Payout            float64   `json:"payout"`
	ItemRevenue       float64   `json:"item_revenue"`
	FeesTotal         float64   `json:"fees_total"`
	Refunds           float64   `json:"refunds"`
	OtherRevenueTotal float64   `json:"other_revenue_total"`
	OpeningBalance    float64   `json:"opening_balance"`
	ClosingBalance    float64   `json:"closing_balance"`
	ShipmentFee       float64   `json:"shipment_fee"`
	Paid              bool      `json:"paid"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// RevenueBreakdown 营收三分构成
type RevenueBreakdown struct {
	ItemRevenue       float64 `json:"item_revenue"`
	FeesTotal         float64 `json:"fees_total"`
	OtherRevenueTotal float64 `json:"other_revenue_total"`
}

// PayoutSummary 结算单汇总指标
// CurrentBalance 取按 created_at 排序后最后一张结算单的 closing_balance
type PayoutSummary struct {
	TotalPayouts     float64          `json:"total_payouts"`
	CurrentBalance   float64          `json:"current_balance"`
	UnpaidBalance    float64          `json:"unpaid_balance"`
	RevenueBreakdown RevenueBreakdown `json:"revenue_breakdown"`
}
