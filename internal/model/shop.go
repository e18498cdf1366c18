package model

import "time"

// ==================== 店铺状态常量 ====================

const (
	ShopStatusDisabled     = 0 // 停用
	ShopStatusNormal       = 1 // 正常
	ShopStatusTokenInvalid = 2 // 授权失效, 需要重新连接
)

// ==================== Shop 已连接的市场账号 ====================

// Shop 卖家连接的某个平台账号
type Shop struct {
	BaseModel
	Platform string `gorm:"size:16;index:idx_platform_seller;not null"` // Platform 枚举值
	SellerID string `gorm:"size:64;index:idx_platform_seller"`
	ShopName string `gorm:"size:255"`
	Country  string `gorm:"size:8"`

	// --- 授权信息 ---
	AccessToken    string `gorm:"size:512"`
	RefreshToken   string `gorm:"size:512"`
	TokenExpiresAt time.Time

	// --- 状态 ---
	Status     int `gorm:"default:1;index"`
	LastSyncAt time.Time
}

func (Shop) TableName() string {
	return "shops"
}

// TokenExpired Token 是否已过期
func (s *Shop) TokenExpired(now time.Time) bool {
	return !s.TokenExpiresAt.IsZero() && now.After(s.TokenExpiresAt)
}
