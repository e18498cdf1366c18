package service

import (
	"fmt"
	"math"
	"testing"

	"sellerhub_v1_202609/pkg/daraz"
)

// ==================== 订单分析 ====================

func TestAnalyzeOrders_Empty(t *testing.T) {
	a := AnalyzeOrders(nil)

	if a.TotalOrders != 0 || a.TotalRevenue != 0 {
		t.Errorf("空输入: orders=%d revenue=%v", a.TotalOrders, a.TotalRevenue)
	}
	if a.AverageOrderValue != 0 {
		t.Errorf("AOV = %v, 空输入不应除零", a.AverageOrderValue)
	}
	if a.CodSharePercent != 0 {
		t.Errorf("COD 占比 = %v, want 0", a.CodSharePercent)
	}
	if math.IsNaN(a.AverageOrderValue) || math.IsNaN(a.CodSharePercent) {
		t.Error("聚合结果不应出现 NaN")
	}
	if len(a.RevenueOverTime) != 0 || len(a.TopProducts) != 0 {
		t.Error("空输入的序列应为空")
	}
}

func TestAnalyzeOrders_RevenueFromItemsNotOrderPrice(t *testing.T) {
	orders := []daraz.OrderInfo{
		{
			OrderID:   1,
			CreatedAt: "2024-01-15 10:00:00 +0800",
			Price:     "9999.00", // 订单级金额含已取消行, 不参与营收
			Items: []daraz.OrderItem{
				{OrderItemID: 11, Name: "Earbuds", PaidPrice: "100.00"},
				{OrderItemID: 12, Name: "Case", PaidPrice: "50.00"},
			},
		},
	}

	a := AnalyzeOrders(orders)
	if a.TotalRevenue != 150 {
		t.Errorf("TotalRevenue = %v, want 150 (只累加行级 paid_price)", a.TotalRevenue)
	}
	if a.AverageOrderValue != 150 {
		t.Errorf("AOV = %v, want 150", a.AverageOrderValue)
	}
}

func TestAnalyzeOrders_CodShare(t *testing.T) {
	// 3 单里 2 单 COD, 占比 66.66..%
	orders := []daraz.OrderInfo{
		{OrderID: 1, PaymentMethod: "COD", CreatedAt: "2024-01-15"},
		{OrderID: 2, PaymentMethod: "cod", CreatedAt: "2024-01-15"},
		{OrderID: 3, PaymentMethod: "JazzCash", CreatedAt: "2024-01-15"},
	}

	a := AnalyzeOrders(orders)
	want := 2.0 / 3.0 * 100
	if math.Abs(a.CodSharePercent-want) > 1e-9 {
		t.Errorf("COD 占比 = %v, want %v", a.CodSharePercent, want)
	}
}

func TestAnalyzeOrders_CodStrictMatch(t *testing.T) {
	// COD_EXPRESS 之类的变体不算 COD
	orders := []daraz.OrderInfo{
		{OrderID: 1, PaymentMethod: "COD_EXPRESS", CreatedAt: "2024-01-15"},
		{OrderID: 2, PaymentMethod: "COD", CreatedAt: "2024-01-15"},
	}

	a := AnalyzeOrders(orders)
	if a.CodSharePercent != 50 {
		t.Errorf("COD 占比 = %v, want 50 (严格匹配)", a.CodSharePercent)
	}
}

func TestAnalyzeOrders_PaymentDefaults(t *testing.T) {
	orders := []daraz.OrderInfo{
		{OrderID: 1, PaymentMethod: "  ", CreatedAt: "2024-01-15"},
		{OrderID: 2, PaymentMethod: "easypaisa", CreatedAt: "2024-01-15"},
	}

	a := AnalyzeOrders(orders)
	found := map[string]int{}
	for _, p := range a.PaymentMethodBreakdown {
		found[p.Method] = p.Count
	}
	if found["ONLINE"] != 1 {
		t.Errorf("缺失支付方式应归入 ONLINE, got %v", found)
	}
	if found["EASYPAISA"] != 1 {
		t.Errorf("支付方式应统一大写, got %v", found)
	}
}

func TestAnalyzeOrders_TimeSeriesSortedByTime(t *testing.T) {
	// "02 Jan 2026" 的字典序在 "15 Jan 2024" 前面, 必须按解析时间而非字符串排序
	orders := []daraz.OrderInfo{
		{OrderID: 1, CreatedAt: "2026-01-02 08:00:00 +0800"},
		{OrderID: 2, CreatedAt: "2024-01-15 08:00:00 +0800"},
		{OrderID: 3, CreatedAt: "bad-timestamp"},
	}

	a := AnalyzeOrders(orders)
	if len(a.RevenueOverTime) != 3 {
		t.Fatalf("时序点 = %d, want 3", len(a.RevenueOverTime))
	}
	if a.RevenueOverTime[0].Date != "Unknown" {
		t.Errorf("解析失败的组应排最前, got %q", a.RevenueOverTime[0].Date)
	}
	if a.RevenueOverTime[1].Date != "15 Jan 2024" || a.RevenueOverTime[2].Date != "02 Jan 2026" {
		t.Errorf("时序顺序错误: %v", a.RevenueOverTime)
	}
}

func TestAnalyzeOrders_TopProductsRankedAndTruncated(t *testing.T) {
	var orders []daraz.OrderInfo
	// 12 种商品, 营收依次递增, Top10 应为营收最高的 10 个
	for i := 1; i <= 12; i++ {
		orders = append(orders, daraz.OrderInfo{
			OrderID:   int64(i),
			CreatedAt: "2024-01-15",
			Items: []daraz.OrderItem{
				{OrderItemID: int64(i), Name: fmt.Sprintf("P%02d", i), PaidPrice: daraz.NumString(fmt.Sprintf("%d.00", i*10))},
			},
		})
	}

	a := AnalyzeOrders(orders)
	if len(a.TopProducts) != 10 {
		t.Fatalf("TopProducts = %d, want 10", len(a.TopProducts))
	}
	if a.TopProducts[0].Name != "P12" || a.TopProducts[0].Revenue != 120 {
		t.Errorf("榜首 = %+v, want P12/120", a.TopProducts[0])
	}
	if a.TopProducts[9].Name != "P03" {
		t.Errorf("第十名 = %q, want P03", a.TopProducts[9].Name)
	}
}

func TestAnalyzeOrders_ProductKeyFallback(t *testing.T) {
	orders := []daraz.OrderInfo{
		{
			OrderID:   1,
			CreatedAt: "2024-01-15",
			Items: []daraz.OrderItem{
				{OrderItemID: 501, Name: "", SKU: "SKU-X", PaidPrice: "10"},
				{OrderItemID: 502, Name: "", SKU: "", PaidPrice: "20"},
			},
		},
	}

	a := AnalyzeOrders(orders)
	names := map[string]bool{}
	for _, p := range a.TopProducts {
		names[p.Name] = true
	}
	if !names["SKU-X"] || !names["502"] {
		t.Errorf("商品键应回退到 SKU 再到行 ID, got %v", names)
	}
}

func TestAnalyzeOrders_CityAndProviderDefaults(t *testing.T) {
	orders := []daraz.OrderInfo{
		{
			OrderID:         1,
			CreatedAt:       "2024-01-15",
			AddressShipping: daraz.ShippingAddress{City: "  "},
			Items: []daraz.OrderItem{
				{OrderItemID: 1, Name: "A", PaidPrice: "10", ShipmentProvider: " "},
			},
		},
		{
			OrderID:         2,
			CreatedAt:       "2024-01-15",
			AddressShipping: daraz.ShippingAddress{City: "Karachi"},
			Items: []daraz.OrderItem{
				{OrderItemID: 2, Name: "B", PaidPrice: "10", ShipmentProvider: "TCS"},
			},
		},
	}

	a := AnalyzeOrders(orders)

	cities := map[string]int{}
	for _, c := range a.OrdersByCity {
		cities[c.City] = c.Orders
	}
	if cities["Unknown"] != 1 || cities["Karachi"] != 1 {
		t.Errorf("城市分组 = %v", cities)
	}

	providers := map[string]int{}
	for _, p := range a.ShipmentProviderUsage {
		providers[p.Name] = p.Count
	}
	if providers["Others"] != 1 || providers["TCS"] != 1 {
		t.Errorf("物流商分组 = %v", providers)
	}
}

func TestAnalyzeOrders_CityTruncatedTo12(t *testing.T) {
	var orders []daraz.OrderInfo
	for i := 0; i < 15; i++ {
		orders = append(orders, daraz.OrderInfo{
			OrderID:         int64(i),
			CreatedAt:       "2024-01-15",
			AddressShipping: daraz.ShippingAddress{City: fmt.Sprintf("City-%02d", i)},
		})
	}

	a := AnalyzeOrders(orders)
	if len(a.OrdersByCity) != 12 {
		t.Errorf("城市榜 = %d, want 12", len(a.OrdersByCity))
	}
}

func TestAnalyzeOrders_ShippingFeeTrend(t *testing.T) {
	orders := []daraz.OrderInfo{
		{OrderID: 1, CreatedAt: "2024-01-15 08:00:00 +0800", ShippingFee: "120.50"},
		{OrderID: 2, CreatedAt: "2024-01-15 20:00:00 +0800", ShippingFee: "80.00"},
	}

	a := AnalyzeOrders(orders)
	if len(a.ShippingFeeTrend) != 1 {
		t.Fatalf("同一天应合并为一个点, got %d", len(a.ShippingFeeTrend))
	}
	if a.ShippingFeeTrend[0].Fee != 200.5 {
		t.Errorf("当日运费 = %v, want 200.5", a.ShippingFeeTrend[0].Fee)
	}
}
