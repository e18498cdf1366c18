package utils

import (
	"reflect"
	"testing"
)

// ==================== HTML 片段处理 ====================

func TestExtractListItems(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{
			"标准列表",
			"<ul><li>防水面料</li><li>超轻设计</li></ul>",
			[]string{"防水面料", "超轻设计"},
		},
		{
			"带属性的 li",
			`<li class="point">Fast charging</li><li style="x">Big battery</li>`,
			[]string{"Fast charging", "Big battery"},
		},
		{
			"嵌套标签",
			"<li><b>Bold</b> point</li>",
			[]string{"Bold point"},
		},
		{
			"跨行",
			"<li>line one\nstill one</li>",
			[]string{"line one\nstill one"},
		},
		{"无列表", "<p>没有亮点</p>", []string{}},
		{"空字符串", "", []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractListItems(tc.raw)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ExtractListItems(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestStripTags(t *testing.T) {
	got := StripTags("<p>Hello <b>world</b></p>")
	if got != "Hello world" {
		t.Errorf("StripTags = %q, want %q", got, "Hello world")
	}
}

func TestCache_TTL(t *testing.T) {
	SetCache("test:key", "value", 0) // 0 走默认 TTL
	defer DeleteCache("test:key")

	got, ok := GetCache("test:key")
	if !ok || got != "value" {
		t.Errorf("GetCache = (%q, %v), want (value, true)", got, ok)
	}

	if _, ok := GetCache("test:missing"); ok {
		t.Error("不存在的 key 不应命中")
	}
}
