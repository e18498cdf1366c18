package service

import (
	"context"
	"fmt"

	"sellerhub_v1_202609/internal/api/dto"
	"sellerhub_v1_202609/pkg/daraz"
)

// ==================== FinanceService ====================

// FinanceService 结算单服务: 拉取 -> 解析 -> 汇总
type FinanceService struct {
	client *daraz.Client
}

// NewFinanceService 创建财务服务
func NewFinanceService(client *daraz.Client) *FinanceService {
	return &FinanceService{client: client}
}

// GetStatements 拉取结算单并转成强类型形态, 按 created_at 升序返回
func (s *FinanceService) GetStatements(ctx context.Context, accessToken string) ([]dto.ParsedPayoutStatement, error) {
	raws, err := s.client.GetPayoutStatements(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("拉取结算单失败: %w", err)
	}
	return SortStatementsByDate(ParseStatements(raws)), nil
}

// GetSummary 结算单汇总指标
func (s *FinanceService) GetSummary(ctx context.Context, accessToken string) (dto.PayoutSummary, error) {
	statements, err := s.GetStatements(ctx, accessToken)
	if err != nil {
		return dto.PayoutSummary{}, err
	}
	return SummarizeStatements(statements), nil
}
