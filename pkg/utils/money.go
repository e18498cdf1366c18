package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ==================== 金额解析 ====================

// ParseAmount 解析宽松格式的金额字符串
// 上游市场平台的金额字段格式极不统一: "PKR 1,234.50" / "0.00 PKR" / "250"
// 约定: 任何无法解析的输入一律返回 0, 绝不返回 error, 也绝不产生 NaN
func ParseAmount(raw string) float64 {
	d, ok := ParseAmountDecimal(raw)
	if !ok {
		return 0
	}
	f, _ := d.Float64()
	return f
}

// ParseAmountDecimal 解析为 decimal, 供需要精确累加的场景 (结算单汇总) 使用
// 第二个返回值表示是否解析成功
func ParseAmountDecimal(raw string) (decimal.Decimal, bool) {
	cleaned := stripNonNumeric(raw)
	if cleaned == "" || cleaned == "-" {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseBoolFlag 解析 "0"/"1" 形式的布尔字段 (Daraz 结算单的 paid 字段)
func ParseBoolFlag(raw string) bool {
	d, ok := ParseAmountDecimal(raw)
	return ok && !d.IsZero()
}

// stripNonNumeric 只保留数字、小数点和开头的负号
func stripNonNumeric(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == '-' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
