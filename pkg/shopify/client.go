package shopify

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// ==================== 配置 ====================

// Config Shopify 接入配置
type Config struct {
	BaseURL     string // 中间层地址
	AccessToken string
	Timeout     time.Duration
}

// ==================== 客户端 ====================

// Client Shopify 商品拉取客户端
type Client struct {
	http *resty.Client
}

// NewClient 创建客户端
func NewClient(cfg *Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	http := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(2).
		SetHeader("X-Shopify-Access-Token", cfg.AccessToken)

	return &Client{http: http}
}

type productsResp struct {
	Products []RawProduct `json:"products"`
}

// GetProducts 拉取店铺全部商品
func (c *Client) GetProducts(ctx context.Context) ([]RawProduct, error) {
	var res productsResp
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&res).
		Get("/products")
	if err != nil {
		return nil, fmt.Errorf("请求 Shopify 商品失败: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("Shopify 商品接口异常 [%d]: %s", resp.StatusCode(), resp.String())
	}
	return res.Products, nil
}
