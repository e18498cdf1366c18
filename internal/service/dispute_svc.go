package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"sellerhub_v1_202609/internal/api/dto"
	"sellerhub_v1_202609/pkg/daraz"
)

// ==================== DisputeService ====================

// DisputeService 退货/纠纷服务
// 逆向订单本体按透传处理, 汇总走与订单分析相同的归一化纪律
type DisputeService struct {
	client *daraz.Client
}

// NewDisputeService 创建纠纷服务
func NewDisputeService(client *daraz.Client) *DisputeService {
	return &DisputeService{client: client}
}

// GetReverseOrders 拉取全部逆向订单
func (s *DisputeService) GetReverseOrders(ctx context.Context, accessToken string) ([]daraz.ReverseOrder, error) {
	orders, err := s.client.GetReverseOrders(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("拉取逆向订单失败: %w", err)
	}
	return orders, nil
}

// GetSummary 拉取并汇总
func (s *DisputeService) GetSummary(ctx context.Context, accessToken string) (dto.DisputeSummary, error) {
	orders, err := s.GetReverseOrders(ctx, accessToken)
	if err != nil {
		return dto.DisputeSummary{}, err
	}
	return SummarizeDisputes(orders), nil
}

// ==================== 汇总 ====================

// SummarizeDisputes 逆向订单汇总: 单量、行数、退款总额、按纠纷状态分布
// 退款金额走统一的金额解析边界, 空列表返回全零
func SummarizeDisputes(orders []daraz.ReverseOrder) dto.DisputeSummary {
	var totalLines int
	var totalRefund float64
	statusCounts := make(map[string]int)

	for _, o := range orders {
		for _, line := range o.Lines {
			totalLines++
			totalRefund += line.RefundAmount.Float64()

			status := strings.TrimSpace(line.DisputeStatus)
			if status == "" {
				status = "Unknown"
			}
			statusCounts[status]++
		}
	}

	byStatus := make([]dto.StatusCount, 0, len(statusCounts))
	for status, n := range statusCounts {
		byStatus = append(byStatus, dto.StatusCount{Status: status, Count: n})
	}
	sort.Slice(byStatus, func(i, j int) bool {
		if byStatus[i].Count != byStatus[j].Count {
			return byStatus[i].Count > byStatus[j].Count
		}
		return byStatus[i].Status < byStatus[j].Status
	})

	return dto.DisputeSummary{
		TotalDisputes:     len(orders),
		TotalLines:        totalLines,
		TotalRefundAmount: totalRefund,
		ByStatus:          byStatus,
	}
}
