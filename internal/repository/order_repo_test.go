package repository

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sellerhub_v1_202609/internal/model"
)

// ==================== 测试辅助 ====================

func setupOrderTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	if err := db.AutoMigrate(&model.Order{}, &model.OrderItem{}); err != nil {
		t.Fatalf("迁移失败: %v", err)
	}
	return db
}

func ts(s string) *time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return &t
}

// ==================== 单元测试 ====================

func TestOrderRepo_BatchUpsert(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewOrderRepo(db)
	ctx := context.Background()

	orders := []model.Order{
		{ShopID: 1, OrderID: 9001, City: "Karachi", ItemsRevenue: 150, PlacedAt: ts("2024-01-15")},
	}
	if err := repo.BatchUpsert(ctx, orders); err != nil {
		t.Fatalf("写入失败: %v", err)
	}

	// 同一 order_id 再写, 状态变化应更新到旧记录
	again := []model.Order{
		{ShopID: 1, OrderID: 9001, City: "Karachi", ItemsRevenue: 150, Status: "delivered", PlacedAt: ts("2024-01-15")},
	}
	if err := repo.BatchUpsert(ctx, again); err != nil {
		t.Fatalf("重复写入失败: %v", err)
	}

	var count int64
	db.Model(&model.Order{}).Count(&count)
	if count != 1 {
		t.Errorf("记录数 = %d, want 1", count)
	}

	found, err := repo.GetByOrderID(ctx, 9001)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if found.Status != "delivered" {
		t.Errorf("Status = %q, want delivered", found.Status)
	}
}

func TestOrderRepo_ItemsRoundTrip(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewOrderRepo(db)
	ctx := context.Background()

	if err := repo.BatchUpsert(ctx, []model.Order{{ShopID: 1, OrderID: 9001}}); err != nil {
		t.Fatalf("写入订单失败: %v", err)
	}
	order, err := repo.GetByOrderID(ctx, 9001)
	if err != nil {
		t.Fatalf("查询订单失败: %v", err)
	}

	items := []model.OrderItem{
		{OrderRecordID: order.ID, OrderItemID: 501, Name: "Earbuds", PaidPrice: 100, ShipmentProvider: "TCS"},
		{OrderRecordID: order.ID, OrderItemID: 502, Name: "Case", PaidPrice: 50},
	}
	if err := repo.BatchUpsertItems(ctx, items); err != nil {
		t.Fatalf("写入订单行失败: %v", err)
	}

	found, err := repo.GetByOrderID(ctx, 9001)
	if err != nil {
		t.Fatalf("回查失败: %v", err)
	}
	if len(found.Items) != 2 {
		t.Errorf("订单行 = %d, want 2 (Preload)", len(found.Items))
	}
}

func TestOrderRepo_ListFilters(t *testing.T) {
	db := setupOrderTestDB(t)
	repo := NewOrderRepo(db)
	ctx := context.Background()

	seed := []model.Order{
		{ShopID: 1, OrderID: 1, City: "Karachi", PaymentMethod: "COD", PlacedAt: ts("2024-01-10")},
		{ShopID: 1, OrderID: 2, City: "Lahore", PaymentMethod: "ONLINE", PlacedAt: ts("2024-02-10")},
		{ShopID: 2, OrderID: 3, City: "Karachi", PaymentMethod: "COD", PlacedAt: ts("2024-03-10")},
	}
	if err := repo.BatchUpsert(ctx, seed); err != nil {
		t.Fatalf("写入失败: %v", err)
	}

	_, total, err := repo.List(ctx, OrderFilter{City: "Karachi", Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("城市过滤失败: %v", err)
	}
	if total != 2 {
		t.Errorf("城市过滤 total=%d, want 2", total)
	}

	_, total, err = repo.List(ctx, OrderFilter{ShopID: 1, Payment: "COD", Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("支付过滤失败: %v", err)
	}
	if total != 1 {
		t.Errorf("店铺+支付过滤 total=%d, want 1", total)
	}

	_, total, err = repo.List(ctx, OrderFilter{StartDate: ts("2024-02-01"), Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("时间过滤失败: %v", err)
	}
	if total != 2 {
		t.Errorf("起始时间过滤 total=%d, want 2", total)
	}
}
