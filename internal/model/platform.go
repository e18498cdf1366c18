package model

// ==================== 平台枚举 ====================

// Platform 支持的市场平台, 封闭枚举
// 新增平台只需要: 加一个枚举值、加一条注册表记录、加一个归一化函数
type Platform string

const (
	PlatformShopify Platform = "shopify"
	PlatformDaraz   Platform = "daraz"
	PlatformAmazon  Platform = "amazon"
)

// Valid 是否是已知平台
func (p Platform) Valid() bool {
	switch p {
	case PlatformShopify, PlatformDaraz, PlatformAmazon:
		return true
	}
	return false
}

// ==================== 平台注册表 ====================

// PlatformInfo 平台展示元数据, 静态配置
type PlatformInfo struct {
	ID          Platform `json:"id"`
	Name        string   `json:"name"`
	Icon        string   `json:"icon"`
	OAuthURL    string   `json:"oauth_url"`
	Description string   `json:"description"`
}

// platformRegistry 不导出, 运行期禁止改写
var platformRegistry = map[Platform]PlatformInfo{
	PlatformShopify: {
		ID:          PlatformShopify,
		Name:        "Shopify",
		Icon:        "/static/platforms/shopify.png",
		OAuthURL:    "https://kkcugt-ef.myshopify.com/admin/oauth/authorize?client_id=94e7b64f38db08be7ec1bbf626d624fd&scope=read_products,write_products,read_orders&redirect_uri=https://evolvebitx.netlify.app/callback&state=xyz1234",
		Description: "Connect your Shopify store to sync products",
	},
	PlatformDaraz: {
		ID:          PlatformDaraz,
		Name:        "Daraz",
		Icon:        "/static/platforms/daraz.png",
		OAuthURL:    "https://api.daraz.pk/oauth/authorize?spm=a2o9m.11193531.0.0.97802891wGBXMU&response_type=code&force_auth=true&redirect_uri=https://evolvebitx.netlify.app/callback&client_id=504082",
		Description: "List products on Daraz marketplace",
	},
	PlatformAmazon: {
		ID:          PlatformAmazon,
		Name:        "Amazon",
		Icon:        "/static/platforms/amazon.png",
		OAuthURL:    "https://www.amazon.com/ap/oa",
		Description: "Coming soon - Amazon marketplace integration",
	},
}

// GetPlatformInfo 按 ID 查询平台元数据, 返回值拷贝
func GetPlatformInfo(p Platform) (PlatformInfo, bool) {
	info, ok := platformRegistry[p]
	return info, ok
}

// AllPlatforms 按固定顺序返回全部平台元数据
func AllPlatforms() []PlatformInfo {
	ordered := []Platform{PlatformShopify, PlatformDaraz, PlatformAmazon}
	infos := make([]PlatformInfo, 0, len(ordered))
	for _, p := range ordered {
		infos = append(infos, platformRegistry[p])
	}
	return infos
}
