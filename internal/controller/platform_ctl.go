package controller

import (
	"sellerhub_v1_202609/internal/api/dto"
	"sellerhub_v1_202609/internal/model"

	"github.com/gin-gonic/gin"
)

type PlatformController struct{}

func NewPlatformController() *PlatformController {
	return &PlatformController{}
}

// GetPlatforms 获取支持的平台列表
// @Summary 获取全部支持的电商平台及授权入口
// @Tags Platform
// @Produce json
// @Success 200 {object} dto.Resp
// @Router /api/platforms [get]
func (ctrl *PlatformController) GetPlatforms(c *gin.Context) {
	c.JSON(200, dto.OK(model.AllPlatforms()))
}

// GetPlatform 获取单个平台信息
// @Summary 获取指定平台的元信息
// @Tags Platform
// @Param id path string true "平台标识 (shopify/daraz/amazon)"
// @Success 200 {object} dto.Resp
// @Router /api/platforms/{id} [get]
func (ctrl *PlatformController) GetPlatform(c *gin.Context) {
	platform := model.Platform(c.Param("id"))
	if !platform.Valid() {
		c.JSON(400, dto.Err(400, "不支持的平台: "+c.Param("id")))
		return
	}

	info, ok := model.GetPlatformInfo(platform)
	if !ok {
		c.JSON(404, dto.Err(404, "平台不存在"))
		return
	}
	c.JSON(200, dto.OK(info))
}
