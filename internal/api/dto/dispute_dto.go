package dto

// ==================== 退货/纠纷 ====================

// StatusCount 按状态聚合的数量
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// DisputeSummary 退货/纠纷汇总
// 金额经过统一的金额解析边界, 与订单营收口径一致
type DisputeSummary struct {
	TotalDisputes     int           `json:"total_disputes"`
	TotalLines        int           `json:"total_lines"`
	TotalRefundAmount float64       `json:"total_refund_amount"`
	ByStatus          []StatusCount `json:"by_status"`
}
