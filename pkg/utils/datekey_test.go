package utils

import (
	"testing"
	"time"
)

// ==================== 日期分组键 ====================

func TestDateKey(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"RFC3339", "2024-01-15T10:30:00Z", "15 Jan 2024"},
		{"无冒号时区", "2024-01-15T10:30:00+0800", "15 Jan 2024"},
		{"空格加时区", "2024-01-15 10:30:00 +0800", "15 Jan 2024"},
		{"冒号时区", "2024-01-15 10:30:00 +05:00", "15 Jan 2024"},
		{"无时区", "2024-01-15T10:30:00", "15 Jan 2024"},
		{"纯日期", "2024-01-15", "15 Jan 2024"},
		{"空字符串", "", DateKeyUnknown},
		{"乱码", "not-a-date", DateKeyUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, _, _ := DateKey(tc.raw)
			if got != tc.want {
				t.Errorf("DateKey(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestDateKey_ReturnsParsedTime(t *testing.T) {
	_, at, ok := DateKey("2024-03-01 08:00:00 +0800")
	if !ok {
		t.Fatal("解析应当成功")
	}
	if at.Year() != 2024 || at.Month() != time.March || at.Day() != 1 {
		t.Errorf("解析时间 = %v, want 2024-03-01", at)
	}
}

func TestDateKey_UnknownHasZeroTime(t *testing.T) {
	key, at, ok := DateKey("garbage")
	if ok {
		t.Fatal("乱码不应解析成功")
	}
	if key != DateKeyUnknown {
		t.Errorf("key = %q, want %q", key, DateKeyUnknown)
	}
	if !at.IsZero() {
		t.Errorf("未解析的时间应为零值, got %v", at)
	}
}

func TestParseFlexTime_Offset(t *testing.T) {
	// "+0800" 偏移必须保留在解析结果里, 不能按 UTC 丢掉
	got, ok := ParseFlexTime("2024-01-15T23:30:00+0800")
	if !ok {
		t.Fatal("解析应当成功")
	}
	_, offset := got.Zone()
	if offset != 8*3600 {
		t.Errorf("时区偏移 = %d, want %d", offset, 8*3600)
	}
}
