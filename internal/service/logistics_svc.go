package service

import (
	"context"
	"encoding/json"
	"fmt"

	"sellerhub_v1_202609/pkg/daraz"
)

// ==================== LogisticsService ====================

// LogisticsService 物流追踪服务, 结果对前端透传
type LogisticsService struct {
	client *daraz.Client
}

// NewLogisticsService 创建物流服务
func NewLogisticsService(client *daraz.Client) *LogisticsService {
	return &LogisticsService{client: client}
}

// TraceOrder 订单轨迹
func (s *LogisticsService) TraceOrder(ctx context.Context, accessToken, orderID string) (json.RawMessage, error) {
	trace, err := s.client.TraceOrder(ctx, accessToken, orderID)
	if err != nil {
		return nil, fmt.Errorf("订单 %s 轨迹查询失败: %w", orderID, err)
	}
	return trace, nil
}

// GetLogisticsDetails 物流详情
func (s *LogisticsService) GetLogisticsDetails(ctx context.Context, accessToken, orderID string) (json.RawMessage, error) {
	details, err := s.client.GetOrderLogisticsDetails(ctx, accessToken, orderID)
	if err != nil {
		return nil, fmt.Errorf("订单 %s 物流详情查询失败: %w", orderID, err)
	}
	return details, nil
}
