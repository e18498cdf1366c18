package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"sellerhub_v1_202609/internal/model"
)

// ==================== 接口定义 ====================

// ShopRepository 店铺仓储接口
type ShopRepository interface {
	Create(ctx context.Context, shop *model.Shop) error
	GetByID(ctx context.Context, id int64) (*model.Shop, error)
	GetByPlatformSeller(ctx context.Context, platform model.Platform, sellerID string) (*model.Shop, error)
	ListActive(ctx context.Context) ([]model.Shop, error)
	ListByPlatform(ctx context.Context, platform model.Platform) ([]model.Shop, error)
	UpdateToken(ctx context.Context, id int64, accessToken, refreshToken string, expiresAt time.Time) error
	UpdateStatus(ctx context.Context, id int64, status int) error
	TouchSyncTime(ctx context.Context, id int64) error
}

// ==================== GORM 实现 ====================

type ShopRepo struct {
	db *gorm.DB
}

var _ ShopRepository = (*ShopRepo)(nil)

func NewShopRepo(db *gorm.DB) *ShopRepo {
	return &ShopRepo{db: db}
}

func (r *ShopRepo) Create(ctx context.Context, shop *model.Shop) error {
	return r.db.WithContext(ctx).Create(shop).Error
}

func (r *ShopRepo) GetByID(ctx context.Context, id int64) (*model.Shop, error) {
	var shop model.Shop
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *ShopRepo) GetByPlatformSeller(ctx context.Context, platform model.Platform, sellerID string) (*model.Shop, error) {
	var shop model.Shop
	err := r.db.WithContext(ctx).
		Where("platform = ? AND seller_id = ?", string(platform), sellerID).
		First(&shop).Error
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

// ListActive 全部正常状态的店铺, 同步任务的工作集
func (r *ShopRepo) ListActive(ctx context.Context) ([]model.Shop, error) {
	var shops []model.Shop
	err := r.db.WithContext(ctx).
		Where("status = ?", model.ShopStatusNormal).
		Find(&shops).Error
	return shops, err
}

func (r *ShopRepo) ListByPlatform(ctx context.Context, platform model.Platform) ([]model.Shop, error) {
	var shops []model.Shop
	err := r.db.WithContext(ctx).
		Where("platform = ?", string(platform)).
		Find(&shops).Error
	return shops, err
}

func (r *ShopRepo) UpdateToken(ctx context.Context, id int64, accessToken, refreshToken string, expiresAt time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Shop{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"access_token":     accessToken,
			"refresh_token":    refreshToken,
			"token_expires_at": expiresAt,
			"status":           model.ShopStatusNormal,
		}).Error
}

func (r *ShopRepo) UpdateStatus(ctx context.Context, id int64, status int) error {
	return r.db.WithContext(ctx).Model(&model.Shop{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *ShopRepo) TouchSyncTime(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&model.Shop{}).
		Where("id = ?", id).
		Update("last_sync_at", time.Now()).Error
}
