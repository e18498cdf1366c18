package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// ==================== 请求日志中间件 ====================

// RequestLog 请求日志中间件
// 记录方法/路径/状态码/耗时, 慢请求单独标记
func RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		cost := time.Since(start)
		status := c.Writer.Status()

		if cost > 3*time.Second {
			log.Printf("[HTTP] 慢请求 %s %s -> %d (%v)", c.Request.Method, c.Request.URL.Path, status, cost)
			return
		}
		if status >= 500 {
			log.Printf("[HTTP] %s %s -> %d (%v) %s", c.Request.Method, c.Request.URL.Path, status, cost, c.Errors.String())
			return
		}
		log.Printf("[HTTP] %s %s -> %d (%v)", c.Request.Method, c.Request.URL.Path, status, cost)
	}
}
