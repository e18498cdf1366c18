package controller

import (
	"strconv"

	"sellerhub_v1_202609/internal/api/dto"
	"sellerhub_v1_202609/internal/repository"
	"sellerhub_v1_202609/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	productService *service.ProductService
	reviewService  *service.ReviewService
}

func NewProductController(productService *service.ProductService, reviewService *service.ReviewService) *ProductController {
	return &ProductController{
		productService: productService,
		reviewService:  reviewService,
	}
}

// ==================== 库存接口 ====================

// GetUnifiedInventory 获取跨平台统一库存
// @Summary 获取所有平台的统一商品视图
// @Tags Product
// @Produce json
// @Param Authorization header string true "平台访问令牌"
// @Success 200 {object} dto.ListResp
// @Router /api/inventory [get]
func (ctrl *ProductController) GetUnifiedInventory(c *gin.Context) {
	token, ok := requireToken(c)
	if !ok {
		return
	}

	products, err := ctrl.productService.GetUnifiedInventory(c.Request.Context(), token)
	if err != nil {
		c.JSON(500, dto.Err(500, "查询失败: "+err.Error()))
		return
	}
	c.JSON(200, dto.ListResp{Code: 0, Message: "success", Data: products, Total: int64(len(products))})
}

// ==================== Daraz 商品接口 ====================

// GetDarazProducts 获取 Daraz 商品列表
// @Summary 获取规范化后的 Daraz 商品 (类目已解析)
// @Tags Product
// @Produce json
// @Param Authorization header string true "平台访问令牌"
// @Param with_reviews query bool false "是否附带评价" default(false)
// @Success 200 {object} dto.ListResp
// @Router /api/products/daraz [get]
func (ctrl *ProductController) GetDarazProducts(c *gin.Context) {
	token, ok := requireToken(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	products, err := ctrl.productService.GetDarazProducts(ctx, token)
	if err != nil {
		c.JSON(500, dto.Err(500, "查询失败: "+err.Error()))
		return
	}

	if c.Query("with_reviews") == "true" {
		ctrl.reviewService.AttachReviews(ctx, token, products)
	}

	c.JSON(200, dto.ListResp{Code: 0, Message: "success", Data: products, Total: int64(len(products))})
}

// ==================== 快照接口 ====================

// ListProducts 查询商品快照
// @Summary 分页查询本地商品快照
// @Tags Product
// @Param shop_id query int false "店铺ID"
// @Param platform query string false "平台筛选"
// @Param keyword query string false "名称搜索"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} dto.ListResp
// @Router /api/products [get]
func (ctrl *ProductController) ListProducts(c *gin.Context) {
	shopID, _ := strconv.ParseInt(c.Query("shop_id"), 10, 64)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	filter := repository.ProductFilter{
		ShopID:   shopID,
		Platform: c.Query("platform"),
		Keyword:  c.Query("keyword"),
		Page:     page,
		PageSize: pageSize,
	}

	products, total, err := ctrl.productService.ListProducts(c.Request.Context(), filter)
	if err != nil {
		c.JSON(500, dto.Err(500, "查询失败: "+err.Error()))
		return
	}

	c.JSON(200, dto.ListResp{
		Code:     0,
		Message:  "success",
		Data:     products,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}
