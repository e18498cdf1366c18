package service

import (
	"testing"

	"sellerhub_v1_202609/pkg/daraz"
)

// ==================== 纠纷汇总 ====================

func TestSummarizeDisputes(t *testing.T) {
	orders := []daraz.ReverseOrder{
		{
			ReverseOrderID: 1,
			Lines: []daraz.ReverseOrderLine{
				{RefundAmount: "PKR 500.00", DisputeStatus: "PENDING"},
				{RefundAmount: "250.50", DisputeStatus: "RESOLVED"},
			},
		},
		{
			ReverseOrderID: 2,
			Lines: []daraz.ReverseOrderLine{
				{RefundAmount: "100", DisputeStatus: "  "},
			},
		},
	}

	sum := SummarizeDisputes(orders)

	if sum.TotalDisputes != 2 {
		t.Errorf("TotalDisputes = %d, want 2", sum.TotalDisputes)
	}
	if sum.TotalLines != 3 {
		t.Errorf("TotalLines = %d, want 3", sum.TotalLines)
	}
	if sum.TotalRefundAmount != 850.5 {
		t.Errorf("TotalRefundAmount = %v, want 850.5", sum.TotalRefundAmount)
	}

	statuses := map[string]int{}
	for _, s := range sum.ByStatus {
		statuses[s.Status] = s.Count
	}
	if statuses["Unknown"] != 1 {
		t.Errorf("缺失状态应归入 Unknown, got %v", statuses)
	}
}

func TestSummarizeDisputes_Empty(t *testing.T) {
	sum := SummarizeDisputes(nil)
	if sum.TotalDisputes != 0 || sum.TotalLines != 0 || sum.TotalRefundAmount != 0 || len(sum.ByStatus) != 0 {
		t.Errorf("空输入应全零: %+v", sum)
	}
}
