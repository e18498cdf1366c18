package controller

import (
	"strconv"

	"sellerhub_v1_202609/internal/api/dto"
	"sellerhub_v1_202609/internal/repository"
	"sellerhub_v1_202609/internal/service"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orderService *service.OrderService
}

func NewOrderController(orderService *service.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// GetOrders 获取平台订单
// @Summary 实时拉取 Daraz 订单 (含行项目)
// @Tags Order
// @Produce json
// @Param Authorization header string true "平台访问令牌"
// @Success 200 {object} dto.ListResp
// @Router /api/orders/live [get]
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	token, ok := requireToken(c)
	if !ok {
		return
	}

	orders, err := ctrl.orderService.GetOrders(c.Request.Context(), token)
	if err != nil {
		c.JSON(500, dto.Err(500, "查询失败: "+err.Error()))
		return
	}
	c.JSON(200, dto.ListResp{Code: 0, Message: "success", Data: orders, Total: int64(len(orders))})
}

// GetOrderAnalytics 获取订单分析
// @Summary 订单数据的单遍聚合分析 (营收/城市/支付/物流)
// @Tags Order
// @Produce json
// @Param Authorization header string true "平台访问令牌"
// @Success 200 {object} dto.Resp
// @Router /api/orders/analytics [get]
func (ctrl *OrderController) GetOrderAnalytics(c *gin.Context) {
	token, ok := requireToken(c)
	if !ok {
		return
	}

	analytics, err := ctrl.orderService.GetOrderAnalytics(c.Request.Context(), token)
	if err != nil {
		c.JSON(500, dto.Err(500, "分析失败: "+err.Error()))
		return
	}
	c.JSON(200, dto.OK(analytics))
}

// ListOrders 查询订单快照
// @Summary 分页查询本地订单快照
// @Tags Order
// @Param shop_id query int false "店铺ID"
// @Param city query string false "城市筛选"
// @Param payment query string false "支付方式筛选"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} dto.ListResp
// @Router /api/orders [get]
func (ctrl *OrderController) ListOrders(c *gin.Context) {
	shopID, _ := strconv.ParseInt(c.Query("shop_id"), 10, 64)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	filter := repository.OrderFilter{
		ShopID:   shopID,
		City:     c.Query("city"),
		Payment:  c.Query("payment"),
		Page:     page,
		PageSize: pageSize,
	}

	orders, total, err := ctrl.orderService.ListPersisted(c.Request.Context(), filter)
	if err != nil {
		c.JSON(500, dto.Err(500, "查询失败: "+err.Error()))
		return
	}

	c.JSON(200, dto.ListResp{
		Code:     0,
		Message:  "success",
		Data:     orders,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}
