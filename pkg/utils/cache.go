package utils

import (
	"sync"
	"time"
)

// ==================== 进程内 TTL 缓存 ====================

// 使用 sync.Map 保证并发安全
// 主要服务两个场景: 类目名称查询结果缓存、平台授权回调的 state 校验
var memoryCache sync.Map

// cacheItem 内部结构, 包含值和过期时间
type cacheItem struct {
	value      string
	expiration int64
}

// SetCache 写入缓存
// ttl <= 0 时默认 10 分钟
func SetCache(key string, value string, ttl time.Duration) {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	memoryCache.Store(key, cacheItem{
		value:      value,
		expiration: time.Now().Add(ttl).Unix(),
	})
}

// GetCache 读取缓存并校验是否过期
func GetCache(key string) (string, bool) {
	val, ok := memoryCache.Load(key)
	if !ok {
		return "", false
	}

	item := val.(cacheItem)

	// 过期走懒删除
	if time.Now().Unix() > item.expiration {
		memoryCache.Delete(key)
		return "", false
	}

	return item.value, true
}

// DeleteCache 删除缓存 (state 用完即焚)
func DeleteCache(key string) {
	memoryCache.Delete(key)
}
