package controller

import (
	"sellerhub_v1_202609/internal/api/dto"
	"sellerhub_v1_202609/internal/service"

	"github.com/gin-gonic/gin"
)

type DisputeController struct {
	disputeService *service.DisputeService
}

func NewDisputeController(disputeService *service.DisputeService) *DisputeController {
	return &DisputeController{disputeService: disputeService}
}

// GetReverseOrders 获取逆向订单列表
// @Summary 获取退货/退款逆向订单
// @Tags Dispute
// @Produce json
// @Param Authorization header string true "平台访问令牌"
// @Success 200 {object} dto.ListResp
// @Router /api/disputes [get]
func (ctrl *DisputeController) GetReverseOrders(c *gin.Context) {
	token, ok := requireToken(c)
	if !ok {
		return
	}

	orders, err := ctrl.disputeService.GetReverseOrders(c.Request.Context(), token)
	if err != nil {
		c.JSON(500, dto.Err(500, "查询失败: "+err.Error()))
		return
	}
	c.JSON(200, dto.ListResp{Code: 0, Message: "success", Data: orders, Total: int64(len(orders))})
}

// GetSummary 获取纠纷汇总
// @Summary 获取纠纷统计 (数量/退款总额/状态分布)
// @Tags Dispute
// @Produce json
// @Param Authorization header string true "平台访问令牌"
// @Success 200 {object} dto.Resp
// @Router /api/disputes/summary [get]
func (ctrl *DisputeController) GetSummary(c *gin.Context) {
	token, ok := requireToken(c)
	if !ok {
		return
	}

	summary, err := ctrl.disputeService.GetSummary(c.Request.Context(), token)
	if err != nil {
		c.JSON(500, dto.Err(500, "汇总失败: "+err.Error()))
		return
	}
	c.JSON(200, dto.OK(summary))
}
