package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sellerhub_v1_202609/internal/model"
)

// ==================== 接口定义 ====================

// OrderFilter 订单查询条件
type OrderFilter struct {
	ShopID    int64
	City      string
	Payment   string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	PageSize  int
}

// OrderRepository 订单快照仓储接口
type OrderRepository interface {
	BatchUpsert(ctx context.Context, orders []model.Order) error
	BatchUpsertItems(ctx context.Context, items []model.OrderItem) error
	GetByOrderID(ctx context.Context, orderID int64) (*model.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]model.Order, int64, error)
	CountByShop(ctx context.Context, shopID int64) (int64, error)
}

// ==================== GORM 实现 ====================

type OrderRepo struct {
	db *gorm.DB
}

var _ OrderRepository = (*OrderRepo)(nil)

func NewOrderRepo(db *gorm.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// BatchUpsert 批量落库, 按平台订单 ID 冲突更新
func (r *OrderRepo) BatchUpsert(ctx context.Context, orders []model.Order) error {
	if len(orders) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "order_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"payment_method", "city", "phone",
			"order_price", "items_revenue", "shipping_fee",
			"item_count", "status", "raw_data", "updated_at",
		}),
	}).Create(&orders).Error
}

func (r *OrderRepo) BatchUpsertItems(ctx context.Context, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "order_item_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "sku", "paid_price", "shipment_provider",
			"status", "tracking_code", "updated_at",
		}),
	}).Create(&items).Error
}

func (r *OrderRepo) GetByOrderID(ctx context.Context, orderID int64) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("order_id = ?", orderID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepo) List(ctx context.Context, filter OrderFilter) ([]model.Order, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Order{})

	if filter.ShopID > 0 {
		query = query.Where("shop_id = ?", filter.ShopID)
	}
	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if filter.Payment != "" {
		query = query.Where("payment_method = ?", filter.Payment)
	}
	if filter.StartDate != nil {
		query = query.Where("placed_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("placed_at <= ?", *filter.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, pageSize := filter.Page, filter.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	var orders []model.Order
	err := query.Preload("Items").
		Order("placed_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&orders).Error
	return orders, total, err
}

func (r *OrderRepo) CountByShop(ctx context.Context, shopID int64) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("shop_id = ?", shopID).
		Count(&total).Error
	return total, err
}
