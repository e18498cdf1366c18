package controller

import (
	"strconv"

	"sellerhub_v1_202609/internal/task"

	"github.com/gin-gonic/gin"
)

// SyncController 同步控制器
type SyncController struct {
	taskManager *task.TaskManager
}

// NewSyncController 创建同步控制器
func NewSyncController(taskManager *task.TaskManager) *SyncController {
	return &SyncController{taskManager: taskManager}
}

// ==================== Handler 实现 ====================

// SyncProducts 同步单个店铺商品
// @Summary 手动同步单个店铺的商品快照
// @Tags Sync
// @Param shop_id path int true "店铺 ID"
// @Success 200 {object} map[string]interface{}
// @Failure 429 {object} map[string]interface{} "限流中"
// @Router /api/sync/products/{shop_id} [post]
func (ctrl *SyncController) SyncProducts(c *gin.Context) {
	shopID := parseShopID(c)
	if shopID == 0 {
		return
	}

	count, err := ctrl.taskManager.TriggerProductSync(c.Request.Context(), shopID)
	if err != nil {
		c.JSON(500, gin.H{"code": 500, "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"code":    0,
		"message": "商品同步完成",
		"data":    gin.H{"shop_id": shopID, "synced": count},
	})
}

// SyncAllProducts 同步所有店铺商品
// @Summary 手动同步所有店铺的商品快照
// @Tags Sync
// @Success 200 {object} map[string]interface{}
// @Failure 429 {object} map[string]interface{} "限流中"
// @Router /api/sync/products [post]
func (ctrl *SyncController) SyncAllProducts(c *gin.Context) {
	ctrl.taskManager.TriggerAllProductsSync()

	c.JSON(200, gin.H{
		"code":    0,
		"message": "所有商品同步任务已启动",
	})
}

// SyncOrders 同步单个店铺订单
// @Summary 手动同步单个店铺的订单快照
// @Tags Sync
// @Param shop_id path int true "店铺 ID"
// @Success 200 {object} map[string]interface{}
// @Failure 429 {object} map[string]interface{} "限流中"
// @Router /api/sync/orders/{shop_id} [post]
func (ctrl *SyncController) SyncOrders(c *gin.Context) {
	shopID := parseShopID(c)
	if shopID == 0 {
		return
	}

	count, err := ctrl.taskManager.TriggerOrderSync(c.Request.Context(), shopID)
	if err != nil {
		c.JSON(500, gin.H{"code": 500, "message": err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"code":    0,
		"message": "订单同步完成",
		"data":    gin.H{"shop_id": shopID, "synced": count},
	})
}

// SyncAllOrders 同步所有店铺订单
// @Summary 手动同步所有店铺的订单快照
// @Tags Sync
// @Success 200 {object} map[string]interface{}
// @Failure 429 {object} map[string]interface{} "限流中"
// @Router /api/sync/orders [post]
func (ctrl *SyncController) SyncAllOrders(c *gin.Context) {
	ctrl.taskManager.TriggerAllOrdersSync()

	c.JSON(200, gin.H{
		"code":    0,
		"message": "所有订单同步任务已启动",
	})
}

// SyncStatus 任务状态
// @Summary 查询后台同步任务的启用状态
// @Tags Sync
// @Success 200 {object} map[string]interface{}
// @Router /api/sync/status [get]
func (ctrl *SyncController) SyncStatus(c *gin.Context) {
	c.JSON(200, gin.H{
		"code":    0,
		"message": "success",
		"data":    ctrl.taskManager.Status(),
	})
}

// ==================== 工具函数 ====================

func parseShopID(c *gin.Context) int64 {
	id, err := strconv.ParseInt(c.Param("shop_id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(400, gin.H{"code": 400, "message": "无效的店铺 ID"})
		return 0
	}
	return id
}
