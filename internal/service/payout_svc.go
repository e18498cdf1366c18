package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"sellerhub_v1_202609/internal/api/dto"
	"sellerhub_v1_202609/pkg/daraz"
	"sellerhub_v1_202609/pkg/utils"
)

// ==================== 结算单归一化 ====================

// ParseStatement 把全字符串的结算单原始载荷转成强类型形态
// 这里是唯一的解析边界, 下游聚合一律基于解析后的数值字段
func ParseStatement(raw daraz.PayoutStatement) dto.ParsedPayoutStatement {
	createdAt, _ := utils.ParseFlexTime(raw.CreatedAt)
	updatedAt, _ := utils.ParseFlexTime(raw.UpdatedAt)

	return dto.ParsedPayoutStatement{
		StatementNumber:   raw.StatementNumber,
		Payout:            utils.ParseAmount(raw.Payout),
		ItemRevenue:       utils.ParseAmount(raw.ItemRevenue),
		FeesTotal:         utils.ParseAmount(raw.FeesTotal),
		Refunds:           utils.ParseAmount(raw.Refunds),
		OtherRevenueTotal: utils.ParseAmount(raw.OtherRevenueTotal),
		OpeningBalance:    utils.ParseAmount(raw.OpeningBalance),
		ClosingBalance:    utils.ParseAmount(raw.ClosingBalance),
		ShipmentFee:       utils.ParseAmount(raw.ShipmentFee),
		Paid:              utils.ParseBoolFlag(raw.Paid),
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}

// ParseStatements 批量转换
func ParseStatements(raws []daraz.PayoutStatement) []dto.ParsedPayoutStatement {
	parsed := make([]dto.ParsedPayoutStatement, 0, len(raws))
	for _, raw := range raws {
		parsed = append(parsed, ParseStatement(raw))
	}
	return parsed
}

// ==================== 结算单汇总 ====================

// SummarizeStatements 计算结算单汇总指标
// 金额累加走 decimal, 避免长列表下的浮点误差; 出口转回 float64
// 当前余额 = 按 created_at 升序后最后一张的 closing_balance, 空列表为 0
func SummarizeStatements(statements []dto.ParsedPayoutStatement) dto.PayoutSummary {
	totalPayouts := decimal.Zero
	unpaid := decimal.Zero
	itemRevenue := decimal.Zero
	fees := decimal.Zero
	otherRevenue := decimal.Zero

	for _, s := range statements {
		payout := decimal.NewFromFloat(s.Payout)
		if s.Paid {
			totalPayouts = totalPayouts.Add(payout)
		} else {
			unpaid = unpaid.Add(payout)
		}
		itemRevenue = itemRevenue.Add(decimal.NewFromFloat(s.ItemRevenue))
		fees = fees.Add(decimal.NewFromFloat(s.FeesTotal))
		otherRevenue = otherRevenue.Add(decimal.NewFromFloat(s.OtherRevenueTotal))
	}

	return dto.PayoutSummary{
		TotalPayouts:   toFloat(totalPayouts),
		CurrentBalance: currentBalance(statements),
		UnpaidBalance:  toFloat(unpaid),
		RevenueBreakdown: dto.RevenueBreakdown{
			ItemRevenue:       toFloat(itemRevenue),
			FeesTotal:         toFloat(fees),
			OtherRevenueTotal: toFloat(otherRevenue),
		},
	}
}

// currentBalance 取时间上最后一张结算单的期末余额
func currentBalance(statements []dto.ParsedPayoutStatement) float64 {
	if len(statements) == 0 {
		return 0
	}

	ordered := make([]dto.ParsedPayoutStatement, len(statements))
	copy(ordered, statements)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	return ordered[len(ordered)-1].ClosingBalance
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// SortStatementsByDate 时序展示用: 按 created_at 升序
func SortStatementsByDate(statements []dto.ParsedPayoutStatement) []dto.ParsedPayoutStatement {
	ordered := make([]dto.ParsedPayoutStatement, len(statements))
	copy(ordered, statements)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})
	return ordered
}
