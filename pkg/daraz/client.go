package daraz

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// ==================== 配置 ====================

// Config 中间层 API 配置
// 后端不直连 Daraz 开放平台, 而是走自建中间层 (负责签名和限流)
type Config struct {
	BaseURL string
	Timeout time.Duration
	Retries int
}

// ==================== 客户端 ====================

// Client Daraz 中间层 API 客户端
type Client struct {
	http *resty.Client
}

// NewClient 创建客户端
func NewClient(cfg *Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Retries == 0 {
		cfg.Retries = 2
	}

	http := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.Retries).
		SetRetryWaitTime(500 * time.Millisecond)

	return &Client{http: http}
}

// ==================== 响应外壳 ====================

type productsResp struct {
	Data struct {
		Products []RawProduct `json:"products"`
	} `json:"data"`
}

type ordersResp struct {
	Data []OrderInfo `json:"data"`
}

type reverseOrdersResp struct {
	Data []ReverseOrder `json:"data"`
}

type payoutResp struct {
	Data []PayoutStatement `json:"data"`
}

type reviewsResp struct {
	Data []Review `json:"data"`
}

type categoryResp struct {
	Data Category `json:"data"`
}

type categoriesResp struct {
	Data []Category `json:"data"`
}

type migrateImageResp struct {
	Data struct {
		Image struct {
			URL string `json:"url"`
		} `json:"image"`
	} `json:"data"`
}

// ==================== 商品 ====================

// GetAllProducts 拉取店铺全部商品
func (c *Client) GetAllProducts(ctx context.Context, accessToken string) ([]RawProduct, error) {
	var res productsResp
	if err := c.get(ctx, "/get_all_products", accessToken, nil, &res); err != nil {
		return nil, err
	}
	return res.Data.Products, nil
}

// CreateProduct 创建新商品
func (c *Client) CreateProduct(ctx context.Context, accessToken string, payload interface{}) (json.RawMessage, error) {
	var raw json.RawMessage
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", accessToken).
		SetBody(payload).
		SetResult(&raw).
		Post("/create_new_product")
	if err != nil {
		return nil, fmt.Errorf("创建商品请求失败: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("创建商品接口异常 [%d]: %s", resp.StatusCode(), resp.String())
	}
	return raw, nil
}

// MigrateImage 把外部图片 URL 迁移到 Daraz 图床, 返回迁移后的 URL
func (c *Client) MigrateImage(ctx context.Context, accessToken string, imageURL string) (string, error) {
	var res migrateImageResp
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", accessToken).
		SetBody(map[string]string{"image_url": imageURL}).
		SetResult(&res).
		Post("/migrate_image")
	if err != nil {
		return "", fmt.Errorf("图片迁移请求失败: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("图片迁移接口异常 [%d]: %s", resp.StatusCode(), resp.String())
	}
	return res.Data.Image.URL, nil
}

// ==================== 订单 ====================

// GetOrdersWithItems 拉取带订单行的全部订单
func (c *Client) GetOrdersWithItems(ctx context.Context, accessToken string) ([]OrderInfo, error) {
	var res ordersResp
	if err := c.get(ctx, "/get_orders_with_items", accessToken, nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

// GetReverseOrders 拉取全部逆向订单 (退货/纠纷)
func (c *Client) GetReverseOrders(ctx context.Context, accessToken string) ([]ReverseOrder, error) {
	var res reverseOrdersResp
	if err := c.get(ctx, "/get_all_reverse_orders_info", accessToken, nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

// TraceOrder 订单物流追踪, 结果透传给前端
func (c *Client) TraceOrder(ctx context.Context, accessToken string, orderID string) (json.RawMessage, error) {
	return c.getRaw(ctx, "/trace_order", accessToken, map[string]string{"order_id": orderID})
}

// GetOrderLogisticsDetails 订单物流详情, 结果透传给前端
func (c *Client) GetOrderLogisticsDetails(ctx context.Context, accessToken string, orderID string) (json.RawMessage, error) {
	return c.getRaw(ctx, "/get_order_logistics_details", accessToken, map[string]string{"order_id": orderID})
}

// ==================== 财务 ====================

// GetPayoutStatements 拉取卖家结算单
func (c *Client) GetPayoutStatements(ctx context.Context, accessToken string) ([]PayoutStatement, error) {
	var res payoutResp
	if err := c.get(ctx, "/get_payout", accessToken, nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

// ==================== 评价 ====================

// GetProductReviews 拉取单个商品的评价
func (c *Client) GetProductReviews(ctx context.Context, accessToken string, itemID int64) ([]Review, error) {
	var res reviewsResp
	params := map[string]string{"item_id": fmt.Sprintf("%d", itemID)}
	if err := c.get(ctx, "/get_product_reviews", accessToken, params, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

// GetAllProductReviews 拉取店铺全部商品的评价
func (c *Client) GetAllProductReviews(ctx context.Context, accessToken string) ([]Review, error) {
	var res reviewsResp
	if err := c.get(ctx, "/get_all_product_reviews", accessToken, nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

// ==================== 类目 ====================

// GetAllCategories 拉取全量类目树
func (c *Client) GetAllCategories(ctx context.Context) ([]Category, error) {
	var res categoriesResp
	if err := c.get(ctx, "/get_all_categories", "", nil, &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}

// GetCategoryByID 按 ID 查询类目
func (c *Client) GetCategoryByID(ctx context.Context, categoryID int64) (*Category, error) {
	var res categoryResp
	params := map[string]string{"category_id": fmt.Sprintf("%d", categoryID)}
	if err := c.get(ctx, "/get_category_by_id", "", params, &res); err != nil {
		return nil, err
	}
	return &res.Data, nil
}

// ==================== 内部方法 ====================

func (c *Client) get(ctx context.Context, path, accessToken string, params map[string]string, out interface{}) error {
	req := c.http.R().SetContext(ctx).SetResult(out)
	if accessToken != "" {
		req.SetHeader("Authorization", accessToken)
	}
	if len(params) > 0 {
		req.SetQueryParams(params)
	}

	resp, err := req.Get(path)
	if err != nil {
		return fmt.Errorf("请求 %s 失败: %w", path, err)
	}
	if resp.IsError() {
		return fmt.Errorf("接口 %s 异常 [%d]: %s", path, resp.StatusCode(), resp.String())
	}
	return nil
}

func (c *Client) getRaw(ctx context.Context, path, accessToken string, params map[string]string) (json.RawMessage, error) {
	req := c.http.R().SetContext(ctx)
	if accessToken != "" {
		req.SetHeader("Authorization", accessToken)
	}
	if len(params) > 0 {
		req.SetQueryParams(params)
	}

	resp, err := req.Get(path)
	if err != nil {
		return nil, fmt.Errorf("请求 %s 失败: %w", path, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("接口 %s 异常 [%d]: %s", path, resp.StatusCode(), resp.String())
	}
	return json.RawMessage(resp.Body()), nil
}
