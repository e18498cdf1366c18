package controller

import (
	"encoding/json"
	"io"

	"sellerhub_v1_202609/internal/api/dto"
	"sellerhub_v1_202609/internal/service"

	"github.com/gin-gonic/gin"
)

type ListingController struct {
	listingService *service.ListingService
	aiService      *service.AIService
}

func NewListingController(listingService *service.ListingService, aiService *service.AIService) *ListingController {
	return &ListingController{
		listingService: listingService,
		aiService:      aiService,
	}
}

// CreateListing 创建商品刊登
// @Summary 创建 Daraz 商品 (图片自动迁移到平台图床)
// @Tags Listing
// @Accept multipart/form-data
// @Produce json
// @Param Authorization header string true "平台访问令牌"
// @Param payload formData string true "刊登信息 JSON (dto.CreateListingReq)"
// @Param images formData file false "商品图片, 可多张"
// @Success 201 {object} dto.Resp
// @Router /api/listings [post]
func (ctrl *ListingController) CreateListing(c *gin.Context) {
	token, ok := requireToken(c)
	if !ok {
		return
	}

	payload := c.PostForm("payload")
	if payload == "" {
		c.JSON(400, dto.Err(400, "缺少 payload 字段"))
		return
	}

	var req dto.CreateListingReq
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		c.JSON(400, dto.Err(400, "payload 解析失败: "+err.Error()))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(400, dto.Err(400, "解析表单失败: "+err.Error()))
		return
	}

	images := make([]service.ImageUpload, 0)
	for _, header := range form.File["images"] {
		file, err := header.Open()
		if err != nil {
			c.JSON(400, dto.Err(400, "读取图片失败: "+err.Error()))
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			c.JSON(500, dto.Err(500, "读取图片失败: "+err.Error()))
			return
		}
		images = append(images, service.ImageUpload{
			Data:        data,
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
		})
	}

	result, err := ctrl.listingService.CreateListing(c.Request.Context(), token, req, images)
	if err != nil {
		c.JSON(500, dto.Err(500, "创建失败: "+err.Error()))
		return
	}
	c.JSON(201, dto.OK(result))
}

// GenerateListing AI 生成刊登文案
// @Summary 上传商品图片, 由 AI 生成标题/描述/卖点
// @Tags Listing
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "商品图片"
// @Success 200 {object} dto.Resp
// @Router /api/listings/generate [post]
func (ctrl *ListingController) GenerateListing(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(400, dto.Err(400, "请上传商品图片"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(500, dto.Err(500, "读取图片失败"))
		return
	}

	listing, err := ctrl.aiService.GenerateProductListing(c.Request.Context(), data, header.Filename)
	if err != nil {
		c.JSON(500, dto.Err(500, "生成失败: "+err.Error()))
		return
	}
	c.JSON(200, dto.OK(listing))
}
