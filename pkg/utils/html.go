package utils

import (
	"regexp"
	"strings"
)

// ==================== HTML 文本提取 ====================

// Daraz 的商品描述是富文本 HTML, 卖点列表藏在 <li> 里
// 这里只做提取, 不做完整的 HTML 解析, 畸形标签最多导致少提取几条, 不会报错
var (
	liPattern  = regexp.MustCompile(`(?is)<li[^>]*>(.*?)</li>`)
	tagPattern = regexp.MustCompile(`<[^>]+>`)
)

// ExtractListItems 从 HTML 片段中提取 <li> 条目的纯文本
func ExtractListItems(html string) []string {
	items := []string{}
	if html == "" {
		return items
	}

	for _, m := range liPattern.FindAllStringSubmatch(html, -1) {
		text := strings.TrimSpace(tagPattern.ReplaceAllString(m[1], ""))
		if text != "" {
			items = append(items, text)
		}
	}
	return items
}

// StripTags 去掉所有 HTML 标签, 返回修剪后的纯文本
func StripTags(html string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(html, ""))
}
