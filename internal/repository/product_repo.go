package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sellerhub_v1_202609/internal/model"
)

// ==================== 接口定义 ====================

// ProductFilter 商品查询条件
type ProductFilter struct {
	ShopID   int64
	Platform string
	Keyword  string
	Active   *bool
	Page     int
	PageSize int
}

// ProductRepository 商品快照仓储接口
type ProductRepository interface {
	BatchUpsert(ctx context.Context, products []model.Product) error
	GetByPlatformItem(ctx context.Context, platform, itemID string) (*model.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]model.Product, int64, error)
	CountByShop(ctx context.Context, shopID int64) (total int64, active int64, err error)
}

// ==================== GORM 实现 ====================

type ProductRepo struct {
	db *gorm.DB
}

var _ ProductRepository = (*ProductRepo)(nil)

func NewProductRepo(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// BatchUpsert 批量落库, 按 (platform, item_id) 冲突更新快照字段
func (r *ProductRepo) BatchUpsert(ctx context.Context, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "platform"}, {Name: "item_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "description", "category", "category_id",
			"inventory", "sku", "variant_count", "status", "is_active",
			"images", "seo_tags", "features", "raw_data", "updated_at",
		}),
	}).Create(&products).Error
}

func (r *ProductRepo) GetByPlatformItem(ctx context.Context, platform, itemID string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Where("platform = ? AND item_id = ?", platform, itemID).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepo) List(ctx context.Context, filter ProductFilter) ([]model.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Product{})

	if filter.ShopID > 0 {
		query = query.Where("shop_id = ?", filter.ShopID)
	}
	if filter.Platform != "" {
		query = query.Where("platform = ?", filter.Platform)
	}
	if filter.Keyword != "" {
		query = query.Where("name LIKE ?", "%"+filter.Keyword+"%")
	}
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
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

	var products []model.Product
	err := query.Order("updated_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&products).Error
	return products, total, err
}

func (r *ProductRepo) CountByShop(ctx context.Context, shopID int64) (int64, int64, error) {
	var total, active int64
	base := r.db.WithContext(ctx).Model(&model.Product{}).Where("shop_id = ?", shopID)

	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := base.Session(&gorm.Session{}).Where("is_active = ?", true).Count(&active).Error; err != nil {
		return 0, 0, err
	}
	return total, active, nil
}
