package utils

import (
	"strings"
	"time"
)

// ==================== 日期分组键 ====================

// DateKeyUnknown 无法解析的时间戳统一落入这个分组
const DateKeyUnknown = "Unknown"

// dateKeyLayout 日粒度展示键, 如 "15 Jan 2024"
const dateKeyLayout = "02 Jan 2006"

// flexLayouts 上游时间戳格式不统一, 按命中率排序逐个尝试
// 注意 "-0700" 布局天然兼容 "+0800" 这类不带冒号的时区后缀
var flexLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05 -07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseFlexTime 尝试解析异构格式的时间戳字符串
func ParseFlexTime(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range flexLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateKey 把时间戳归一化成日粒度分组键
// 所有时序聚合都按这个键分组, 排序时必须用返回的 time 而不是键的字典序
func DateKey(raw string) (string, time.Time, bool) {
	t, ok := ParseFlexTime(raw)
	if !ok {
		return DateKeyUnknown, time.Time{}, false
	}
	return t.Format(dateKeyLayout), t, true
}
