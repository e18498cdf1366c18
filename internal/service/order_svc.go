package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/datatypes"

	"sellerhub_v1_202609/internal/api/dto"
	"sellerhub_v1_202609/internal/model"
	"sellerhub_v1_202609/internal/repository"
	"sellerhub_v1_202609/pkg/daraz"
	"sellerhub_v1_202609/pkg/utils"
)

// ==================== OrderService ====================

// OrderService 订单服务
type OrderService struct {
	orderRepo repository.OrderRepository
	shopRepo  repository.ShopRepository
	client    *daraz.Client
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, shopRepo repository.ShopRepository, client *daraz.Client) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		shopRepo:  shopRepo,
		client:    client,
	}
}

// ==================== 订单查询 ====================

// GetOrders 实时拉取带订单行的订单 (订单页数据源)
func (s *OrderService) GetOrders(ctx context.Context, accessToken string) ([]daraz.OrderInfo, error) {
	orders, err := s.client.GetOrdersWithItems(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("拉取订单失败: %w", err)
	}
	return orders, nil
}

// ListPersisted 查询本地订单快照
func (s *OrderService) ListPersisted(ctx context.Context, filter repository.OrderFilter) ([]model.Order, int64, error) {
	return s.orderRepo.List(ctx, filter)
}

// ==================== 订单分析 ====================

// GetOrderAnalytics 拉取订单并做聚合分析
func (s *OrderService) GetOrderAnalytics(ctx context.Context, accessToken string) (dto.OrderAnalytics, error) {
	orders, err := s.GetOrders(ctx, accessToken)
	if err != nil {
		return dto.OrderAnalytics{}, err
	}
	return AnalyzeOrders(orders), nil
}

// ==================== 快照同步 ====================

// SyncOrders 同步一个店铺的订单快照到本地库
func (s *OrderService) SyncOrders(ctx context.Context, shop *model.Shop) (int, error) {
	raws, err := s.client.GetOrdersWithItems(ctx, shop.AccessToken)
	if err != nil {
		return 0, fmt.Errorf("店铺 %d 订单拉取失败: %w", shop.ID, err)
	}

	orders := make([]model.Order, 0, len(raws))
	for _, raw := range raws {
		orders = append(orders, toOrderModel(shop.ID, raw))
	}

	if err := s.orderRepo.BatchUpsert(ctx, orders); err != nil {
		return 0, fmt.Errorf("店铺 %d 订单快照写入失败: %w", shop.ID, err)
	}

	// 订单行单独落库, 需要先查回本地 Order.ID
	var items []model.OrderItem
	for _, raw := range raws {
		record, err := s.orderRepo.GetByOrderID(ctx, raw.OrderID)
		if err != nil {
			log.Printf("[Sync] 订单 %d 回查失败, 跳过订单行: %v", raw.OrderID, err)
			continue
		}
		for _, it := range raw.Items {
			items = append(items, model.OrderItem{
				OrderRecordID:    record.ID,
				OrderItemID:      it.OrderItemID,
				Name:             it.Name,
				SKU:              it.SKU,
				PaidPrice:        it.PaidPrice.Float64(),
				ShipmentProvider: strings.TrimSpace(it.ShipmentProvider),
				Status:           it.Status,
				TrackingCode:     it.TrackingCode,
			})
		}
	}

	if err := s.orderRepo.BatchUpsertItems(ctx, items); err != nil {
		return 0, fmt.Errorf("店铺 %d 订单行写入失败: %w", shop.ID, err)
	}

	if err := s.shopRepo.TouchSyncTime(ctx, shop.ID); err != nil {
		log.Printf("[Sync] 店铺 %d 更新同步时间失败: %v", shop.ID, err)
	}
	return len(orders), nil
}

// toOrderModel 原始订单 -> 快照行
// ItemsRevenue 在这里就按 paid_price 口径算好, 仪表盘不再重复解析
func toOrderModel(shopID int64, raw daraz.OrderInfo) model.Order {
	var placedAt *time.Time
	if t, ok := utils.ParseFlexTime(raw.CreatedAt); ok {
		placedAt = &t
	}

	var itemsRevenue float64
	for _, it := range raw.Items {
		itemsRevenue += it.PaidPrice.Float64()
	}

	status := ""
	if len(raw.Statuses) > 0 {
		status = raw.Statuses[len(raw.Statuses)-1]
	}

	rawJSON, _ := json.Marshal(raw)
	return model.Order{
		ShopID:        shopID,
		OrderID:       raw.OrderID,
		PlacedAt:      placedAt,
		PaymentMethod: strings.TrimSpace(raw.PaymentMethod),
		City:          strings.TrimSpace(raw.AddressShipping.City),
		Phone:         raw.AddressShipping.Phone,
		OrderPrice:    raw.Price.Float64(),
		ItemsRevenue:  itemsRevenue,
		ShippingFee:   raw.ShippingFee.Float64(),
		ItemCount:     len(raw.Items),
		Status:        status,
		RawData:       datatypes.JSON(rawJSON),
	}
}
