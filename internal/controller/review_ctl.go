package controller

import (
	"strconv"

	"sellerhub_v1_202609/internal/api/dto"
	"sellerhub_v1_202609/internal/service"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	reviewService *service.ReviewService
}

func NewReviewController(reviewService *service.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// GetProductReviews 获取单个商品的评价
// @Summary 获取指定商品的买家评价
// @Tags Review
// @Produce json
// @Param Authorization header string true "平台访问令牌"
// @Param item_id path int true "商品ID"
// @Success 200 {object} dto.ListResp
// @Router /api/reviews/{item_id} [get]
func (ctrl *ReviewController) GetProductReviews(c *gin.Context) {
	token, ok := requireToken(c)
	if !ok {
		return
	}

	itemID, err := strconv.ParseInt(c.Param("item_id"), 10, 64)
	if err != nil || itemID <= 0 {
		c.JSON(400, dto.Err(400, "无效的商品ID"))
		return
	}

	reviews, err := ctrl.reviewService.GetProductReviews(c.Request.Context(), token, itemID)
	if err != nil {
		c.JSON(500, dto.Err(500, "查询失败: "+err.Error()))
		return
	}
	c.JSON(200, dto.ListResp{Code: 0, Message: "success", Data: reviews, Total: int64(len(reviews))})
}

// GetAllReviews 获取全部评价
// @Summary 获取店铺全部商品评价
// @Tags Review
// @Produce json
// @Param Authorization header string true "平台访问令牌"
// @Success 200 {object} dto.ListResp
// @Router /api/reviews [get]
func (ctrl *ReviewController) GetAllReviews(c *gin.Context) {
	token, ok := requireToken(c)
	if !ok {
		return
	}

	reviews, err := ctrl.reviewService.GetAllReviews(c.Request.Context(), token)
	if err != nil {
		c.JSON(500, dto.Err(500, "查询失败: "+err.Error()))
		return
	}
	c.JSON(200, dto.ListResp{Code: 0, Message: "success", Data: reviews, Total: int64(len(reviews))})
}
