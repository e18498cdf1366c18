package dto

import "time"

// ==================== 店铺接入 ====================

// ConnectShopReq 接入店铺请求
type ConnectShopReq struct {
	Platform     string    `json:"platform" binding:"required"`
	SellerID     string    `json:"seller_id" binding:"required"`
	ShopName     string    `json:"shop_name"`
	Country      string    `json:"country"`
	AccessToken  string    `json:"access_token" binding:"required"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// ShopView 店铺视图
type ShopView struct {
	ID         int64      `json:"id"`
	Platform   string     `json:"platform"`
	SellerID   string     `json:"seller_id"`
	ShopName   string     `json:"shop_name"`
	Country    string     `json:"country"`
	Status     int        `json:"status"`
	LastSyncAt *time.Time `json:"last_sync_at,omitempty"`
}
