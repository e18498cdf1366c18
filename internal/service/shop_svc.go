package service

import (
	"context"
	"fmt"

	"sellerhub_v1_202609/internal/api/dto"
	"sellerhub_v1_202609/internal/model"
	"sellerhub_v1_202609/internal/repository"
)

// ==================== ShopService ====================

// ShopService 已连接店铺管理
type ShopService struct {
	shopRepo repository.ShopRepository
}

func NewShopService(shopRepo repository.ShopRepository) *ShopService {
	return &ShopService{shopRepo: shopRepo}
}

// ConnectShop 接入店铺
// 同平台同卖家重复接入时更新授权信息, 不产生新记录
// 返回视图而不是模型, 避免把 token 回显给前端
func (s *ShopService) ConnectShop(ctx context.Context, req dto.ConnectShopReq) (*dto.ShopView, error) {
	platform := model.Platform(req.Platform)
	if !platform.Valid() {
		return nil, fmt.Errorf("不支持的平台: %s", req.Platform)
	}

	existing, err := s.shopRepo.GetByPlatformSeller(ctx, platform, req.SellerID)
	if err == nil && existing != nil {
		if err := s.shopRepo.UpdateToken(ctx, existing.ID, req.AccessToken, req.RefreshToken, req.ExpiresAt); err != nil {
			return nil, fmt.Errorf("更新授权失败: %w", err)
		}
		if err := s.shopRepo.UpdateStatus(ctx, existing.ID, model.ShopStatusNormal); err != nil {
			return nil, fmt.Errorf("恢复店铺状态失败: %w", err)
		}
		updated, err := s.shopRepo.GetByID(ctx, existing.ID)
		if err != nil {
			return nil, err
		}
		view := toShopView(updated)
		return &view, nil
	}

	shop := &model.Shop{
		Platform:       string(platform),
		SellerID:       req.SellerID,
		ShopName:       req.ShopName,
		Country:        req.Country,
		AccessToken:    req.AccessToken,
		RefreshToken:   req.RefreshToken,
		TokenExpiresAt: req.ExpiresAt,
		Status:         model.ShopStatusNormal,
	}
	if err := s.shopRepo.Create(ctx, shop); err != nil {
		return nil, fmt.Errorf("创建店铺失败: %w", err)
	}
	view := toShopView(shop)
	return &view, nil
}

// GetShop 获取店铺详情
func (s *ShopService) GetShop(ctx context.Context, id int64) (*dto.ShopView, error) {
	shop, err := s.shopRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := toShopView(shop)
	return &view, nil
}

// ListShops 获取店铺列表, platform 为空时返回全部启用店铺
func (s *ShopService) ListShops(ctx context.Context, platform string) ([]dto.ShopView, error) {
	var (
		shops []model.Shop
		err   error
	)
	if platform != "" {
		p := model.Platform(platform)
		if !p.Valid() {
			return nil, fmt.Errorf("不支持的平台: %s", platform)
		}
		shops, err = s.shopRepo.ListByPlatform(ctx, p)
	} else {
		shops, err = s.shopRepo.ListActive(ctx)
	}
	if err != nil {
		return nil, err
	}

	views := make([]dto.ShopView, 0, len(shops))
	for _, shop := range shops {
		views = append(views, toShopView(&shop))
	}
	return views, nil
}

// DisableShop 停用店铺
func (s *ShopService) DisableShop(ctx context.Context, id int64) error {
	return s.shopRepo.UpdateStatus(ctx, id, model.ShopStatusDisabled)
}

func toShopView(shop *model.Shop) dto.ShopView {
	view := dto.ShopView{
		ID:       shop.ID,
		Platform: shop.Platform,
		SellerID: shop.SellerID,
		ShopName: shop.ShopName,
		Country:  shop.Country,
		Status:   shop.Status,
	}
	if !shop.LastSyncAt.IsZero() {
		t := shop.LastSyncAt
		view.LastSyncAt = &t
	}
	return view
}
