package utils

import "testing"

// ==================== 金额解析 ====================

func TestParseAmount(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want float64
	}{
		{"纯数字", "250", 250},
		{"带小数", "1234.50", 1234.5},
		{"货币前缀", "PKR 1,234.50", 1234.5},
		{"货币后缀", "0.00 PKR", 0},
		{"千分位", "12,345", 12345},
		{"负数", "-45.20", -45.2},
		{"负数带货币", "PKR -45.20", -45.2},
		{"空字符串", "", 0},
		{"纯文本", "abc", 0},
		{"只有负号", "-", 0},
		{"空白", "   ", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseAmount(tc.raw)
			if got != tc.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestParseAmount_NeverPanics(t *testing.T) {
	// 全量解析失败一律返回 0, 不报错不 NaN
	inputs := []string{"", "N/A", "null", "--", "1.2.3", "PKR", "億"}
	for _, raw := range inputs {
		got := ParseAmount(raw)
		if got != got { // NaN 检查
			t.Fatalf("ParseAmount(%q) 返回了 NaN", raw)
		}
	}
}

func TestParseBoolFlag(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"1", true},
		{"0", false},
		{"", false},
		{"2", true},
		{"abc", false},
	}

	for _, tc := range cases {
		if got := ParseBoolFlag(tc.raw); got != tc.want {
			t.Errorf("ParseBoolFlag(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}
