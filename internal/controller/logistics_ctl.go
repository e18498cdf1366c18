package controller

import (
	"encoding/json"

	"sellerhub_v1_202609/internal/api/dto"
	"sellerhub_v1_202609/internal/service"

	"github.com/gin-gonic/gin"
)

type LogisticsController struct {
	logisticsService *service.LogisticsService
}

func NewLogisticsController(logisticsService *service.LogisticsService) *LogisticsController {
	return &LogisticsController{logisticsService: logisticsService}
}

// TraceOrder 订单轨迹追踪
// @Summary 获取订单的物流轨迹 (平台原始响应透传)
// @Tags Logistics
// @Produce json
// @Param Authorization header string true "平台访问令牌"
// @Param order_id path string true "订单ID"
// @Success 200 {object} dto.Resp
// @Router /api/logistics/{order_id}/trace [get]
func (ctrl *LogisticsController) TraceOrder(c *gin.Context) {
	token, ok := requireToken(c)
	if !ok {
		return
	}

	orderID := c.Param("order_id")
	if orderID == "" {
		c.JSON(400, dto.Err(400, "缺少订单ID"))
		return
	}

	raw, err := ctrl.logisticsService.TraceOrder(c.Request.Context(), token, orderID)
	if err != nil {
		c.JSON(500, dto.Err(500, "追踪失败: "+err.Error()))
		return
	}
	c.JSON(200, dto.OK(json.RawMessage(raw)))
}

// GetLogisticsDetails 获取物流详情
// @Summary 获取订单的物流详情 (平台原始响应透传)
// @Tags Logistics
// @Produce json
// @Param Authorization header string true "平台访问令牌"
// @Param order_id path string true "订单ID"
// @Success 200 {object} dto.Resp
// @Router /api/logistics/{order_id}/details [get]
func (ctrl *LogisticsController) GetLogisticsDetails(c *gin.Context) {
	token, ok := requireToken(c)
	if !ok {
		return
	}

	orderID := c.Param("order_id")
	if orderID == "" {
		c.JSON(400, dto.Err(400, "缺少订单ID"))
		return
	}

	raw, err := ctrl.logisticsService.GetLogisticsDetails(c.Request.Context(), token, orderID)
	if err != nil {
		c.JSON(500, dto.Err(500, "查询失败: "+err.Error()))
		return
	}
	c.JSON(200, dto.OK(json.RawMessage(raw)))
}
