package repository

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sellerhub_v1_202609/internal/model"
)

// ==================== 测试辅助 ====================

func setupProductTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	if err := db.AutoMigrate(&model.Shop{}, &model.Product{}); err != nil {
		t.Fatalf("迁移失败: %v", err)
	}
	return db
}

// ==================== 单元测试 ====================

func TestProductRepo_BatchUpsert(t *testing.T) {
	db := setupProductTestDB(t)
	repo := NewProductRepo(db)
	ctx := context.Background()

	products := []model.Product{
		{ShopID: 1, Platform: "daraz", ItemID: "100", Name: "Earbuds", Inventory: 5, IsActive: true},
		{ShopID: 1, Platform: "daraz", ItemID: "200", Name: "Case", Inventory: 3},
	}
	if err := repo.BatchUpsert(ctx, products); err != nil {
		t.Fatalf("首次写入失败: %v", err)
	}

	// 同一 platform+item_id 再写一次, 应更新而非新增
	again := []model.Product{
		{ShopID: 1, Platform: "daraz", ItemID: "100", Name: "Earbuds Pro", Inventory: 8, IsActive: true},
	}
	if err := repo.BatchUpsert(ctx, again); err != nil {
		t.Fatalf("重复写入失败: %v", err)
	}

	var count int64
	db.Model(&model.Product{}).Count(&count)
	if count != 2 {
		t.Errorf("记录数 = %d, want 2 (upsert 不应产生重复)", count)
	}

	found, err := repo.GetByPlatformItem(ctx, "daraz", "100")
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if found.Name != "Earbuds Pro" || found.Inventory != 8 {
		t.Errorf("更新未生效: name=%q inventory=%d", found.Name, found.Inventory)
	}
}

func TestProductRepo_List(t *testing.T) {
	db := setupProductTestDB(t)
	repo := NewProductRepo(db)
	ctx := context.Background()

	seed := []model.Product{
		{ShopID: 1, Platform: "daraz", ItemID: "1", Name: "Wireless Earbuds", IsActive: true},
		{ShopID: 1, Platform: "daraz", ItemID: "2", Name: "Phone Case", IsActive: true},
		{ShopID: 2, Platform: "shopify", ItemID: "3", Name: "Mug"},
	}
	if err := repo.BatchUpsert(ctx, seed); err != nil {
		t.Fatalf("写入失败: %v", err)
	}

	// 按店铺过滤
	items, total, err := repo.List(ctx, ProductFilter{ShopID: 1, Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Errorf("店铺过滤: total=%d len=%d, want 2", total, len(items))
	}

	// 关键词搜索
	items, total, err = repo.List(ctx, ProductFilter{Keyword: "Earbuds", Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("搜索失败: %v", err)
	}
	if total != 1 || items[0].Name != "Wireless Earbuds" {
		t.Errorf("关键词搜索结果异常: total=%d", total)
	}

	// 平台过滤
	_, total, err = repo.List(ctx, ProductFilter{Platform: "shopify", Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("平台过滤失败: %v", err)
	}
	if total != 1 {
		t.Errorf("平台过滤: total=%d, want 1", total)
	}
}

func TestProductRepo_CountByShop(t *testing.T) {
	db := setupProductTestDB(t)
	repo := NewProductRepo(db)
	ctx := context.Background()

	seed := []model.Product{
		{ShopID: 1, Platform: "daraz", ItemID: "1", IsActive: true},
		{ShopID: 1, Platform: "daraz", ItemID: "2", IsActive: true},
		{ShopID: 1, Platform: "daraz", ItemID: "3", IsActive: false},
	}
	if err := repo.BatchUpsert(ctx, seed); err != nil {
		t.Fatalf("写入失败: %v", err)
	}

	total, active, err := repo.CountByShop(ctx, 1)
	if err != nil {
		t.Fatalf("统计失败: %v", err)
	}
	if total != 3 || active != 2 {
		t.Errorf("total=%d active=%d, want 3/2", total, active)
	}
}
