package controller

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// accessToken 提取透传给平台中间层的访问令牌
func accessToken(c *gin.Context) string {
	token := c.GetHeader("Authorization")
	return strings.TrimPrefix(token, "Bearer ")
}

// requireToken 令牌为空时写出 401, 返回 false
func requireToken(c *gin.Context) (string, bool) {
	token := accessToken(c)
	if token == "" {
		c.JSON(401, gin.H{"code": 401, "message": "缺少 Authorization 访问令牌"})
		return "", false
	}
	return token, true
}
