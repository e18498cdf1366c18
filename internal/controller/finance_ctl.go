package controller

import (
	"sellerhub_v1_202609/internal/api/dto"
	"sellerhub_v1_202609/internal/service"

	"github.com/gin-gonic/gin"
)

type FinanceController struct {
	financeService *service.FinanceService
}

func NewFinanceController(financeService *service.FinanceService) *FinanceController {
	return &FinanceController{financeService: financeService}
}

// GetStatements 获取结算单列表
// @Summary 获取解析后的打款结算单 (按账期时间排序)
// @Tags Finance
// @Produce json
// @Param Authorization header string true "平台访问令牌"
// @Success 200 {object} dto.ListResp
// @Router /api/finance/statements [get]
func (ctrl *FinanceController) GetStatements(c *gin.Context) {
	token, ok := requireToken(c)
	if !ok {
		return
	}

	statements, err := ctrl.financeService.GetStatements(c.Request.Context(), token)
	if err != nil {
		c.JSON(500, dto.Err(500, "查询失败: "+err.Error()))
		return
	}
	c.JSON(200, dto.ListResp{Code: 0, Message: "success", Data: statements, Total: int64(len(statements))})
}

// GetSummary 获取财务汇总
// @Summary 获取结算单汇总 (总营收/费用/当前余额)
// @Tags Finance
// @Produce json
// @Param Authorization header string true "平台访问令牌"
// @Success 200 {object} dto.Resp
// @Router /api/finance/summary [get]
func (ctrl *FinanceController) GetSummary(c *gin.Context) {
	token, ok := requireToken(c)
	if !ok {
		return
	}

	summary, err := ctrl.financeService.GetSummary(c.Request.Context(), token)
	if err != nil {
		c.JSON(500, dto.Err(500, "汇总失败: "+err.Error()))
		return
	}
	c.JSON(200, dto.OK(summary))
}
