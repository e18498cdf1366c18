package controller

import (
	"strconv"

	"sellerhub_v1_202609/internal/api/dto"
	"sellerhub_v1_202609/internal/service"

	"github.com/gin-gonic/gin"
)

type ShopController struct {
	shopService *service.ShopService
}

func NewShopController(shopService *service.ShopService) *ShopController {
	return &ShopController{shopService: shopService}
}

// ConnectShop 接入店铺
// @Summary 接入一个平台店铺 (保存授权信息)
// @Tags Shop
// @Accept json
// @Produce json
// @Param body body dto.ConnectShopReq true "店铺授权信息"
// @Success 201 {object} dto.Resp
// @Router /api/shops [post]
func (ctrl *ShopController) ConnectShop(c *gin.Context) {
	var req dto.ConnectShopReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, dto.Err(400, "参数错误: "+err.Error()))
		return
	}

	shop, err := ctrl.shopService.ConnectShop(c.Request.Context(), req)
	if err != nil {
		c.JSON(500, dto.Err(500, "接入失败: "+err.Error()))
		return
	}
	c.JSON(201, dto.OK(shop))
}

// GetShops 获取店铺列表
// @Summary 获取已接入的店铺列表
// @Tags Shop
// @Param platform query string false "平台筛选"
// @Success 200 {object} dto.Resp
// @Router /api/shops [get]
func (ctrl *ShopController) GetShops(c *gin.Context) {
	shops, err := ctrl.shopService.ListShops(c.Request.Context(), c.Query("platform"))
	if err != nil {
		c.JSON(500, dto.Err(500, "查询失败: "+err.Error()))
		return
	}
	c.JSON(200, dto.OK(shops))
}

// GetShop 获取店铺详情
// @Summary 获取单个店铺详情
// @Tags Shop
// @Param id path int true "店铺ID"
// @Success 200 {object} dto.Resp
// @Router /api/shops/{id} [get]
func (ctrl *ShopController) GetShop(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(400, dto.Err(400, "无效的店铺ID"))
		return
	}

	shop, err := ctrl.shopService.GetShop(c.Request.Context(), id)
	if err != nil {
		c.JSON(404, dto.Err(404, "店铺不存在"))
		return
	}
	c.JSON(200, dto.OK(shop))
}

// DisableShop 停用店铺
// @Summary 停用店铺 (停止定时同步)
// @Tags Shop
// @Param id path int true "店铺ID"
// @Success 200 {object} dto.Resp
// @Router /api/shops/{id}/disable [post]
func (ctrl *ShopController) DisableShop(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(400, dto.Err(400, "无效的店铺ID"))
		return
	}

	if err := ctrl.shopService.DisableShop(c.Request.Context(), id); err != nil {
		c.JSON(500, dto.Err(500, "停用失败: "+err.Error()))
		return
	}
	c.JSON(200, gin.H{"code": 0, "message": "店铺已停用"})
}
