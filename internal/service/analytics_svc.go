package service

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"sellerhub_v1_202609/internal/api/dto"
	"sellerhub_v1_202609/pkg/daraz"
	"sellerhub_v1_202609/pkg/utils"
)

// ==================== 订单分析 ====================

// 分组中间结构, 额外记录解析出的时间用于排序
type timeBucket struct {
	date    string
	at      time.Time
	orders  int
	revenue float64
	fee     float64
}

type productBucket struct {
	name    string
	revenue float64
	qty     int
}

// AnalyzeOrders 对一批订单做单遍扫描 + 分组聚合
// 营收口径: 累加订单行的 paid_price; 订单级 price 含未支付/已取消金额, 不参与
// 空输入返回全零结果, 不会除零, 不会返回 NaN
func AnalyzeOrders(orders []daraz.OrderInfo) dto.OrderAnalytics {
	totalOrders := len(orders)

	var totalRevenue float64
	paymentCounts := make(map[string]int)
	timeBuckets := make(map[string]*timeBucket)
	productBuckets := make(map[string]*productBucket)
	cityCounts := make(map[string]int)
	providerCounts := make(map[string]int)

	for _, o := range orders {
		// 支付方式: 缺失按 ONLINE, 统一大写后计数
		pm := strings.ToUpper(strings.TrimSpace(o.PaymentMethod))
		if pm == "" {
			pm = "ONLINE"
		}
		paymentCounts[pm]++

		// 日期分组键
		dateKey, at, _ := utils.DateKey(o.CreatedAt)
		bucket, ok := timeBuckets[dateKey]
		if !ok {
			bucket = &timeBucket{date: dateKey, at: at}
			timeBuckets[dateKey] = bucket
		}
		bucket.orders++
		bucket.fee += o.ShippingFee.Float64()

		// 城市分组: 修剪空白, 缺失归入 Unknown
		city := strings.TrimSpace(o.AddressShipping.City)
		if city == "" {
			city = "Unknown"
		}
		cityCounts[city]++

		// 订单行
		for _, it := range o.Items {
			paid := it.PaidPrice.Float64()
			totalRevenue += paid
			bucket.revenue += paid

			// 商品键: 名称 -> SKU -> 订单行 ID
			key := it.Name
			if key == "" {
				key = it.SKU
			}
			if key == "" {
				key = strconv.FormatInt(it.OrderItemID, 10)
			}
			pb, ok := productBuckets[key]
			if !ok {
				pb = &productBucket{name: key}
				productBuckets[key] = pb
			}
			pb.revenue += paid
			pb.qty++

			// 物流商: 修剪空白, 缺失归入 Others
			prov := strings.TrimSpace(it.ShipmentProvider)
			if prov == "" {
				prov = "Others"
			}
			providerCounts[prov]++
		}
	}

	// AOV 与 COD 占比, 空列表时守住除零
	var aov, codShare float64
	if totalOrders > 0 {
		aov = totalRevenue / float64(totalOrders)
		codShare = float64(paymentCounts["COD"]) / float64(totalOrders) * 100
	}

	return dto.OrderAnalytics{
		TotalRevenue:           totalRevenue,
		TotalOrders:            totalOrders,
		AverageOrderValue:      aov,
		CodSharePercent:        codShare,
		RevenueOverTime:        buildRevenueSeries(timeBuckets),
		TopProducts:            buildTopProducts(productBuckets, 10),
		OrdersByCity:           buildCityRanking(cityCounts, 12),
		PaymentMethodBreakdown: buildPaymentBreakdown(paymentCounts),
		ShipmentProviderUsage:  buildProviderRanking(providerCounts, 8),
		ShippingFeeTrend:       buildFeeSeries(timeBuckets),
	}
}

// buildRevenueSeries 时序点按解析出的时间升序, 不按键的字典序
// 解析失败的 "Unknown" 组时间为零值, 自然排在最前
func buildRevenueSeries(buckets map[string]*timeBucket) []dto.RevenuePoint {
	ordered := sortedTimeBuckets(buckets)

	series := make([]dto.RevenuePoint, 0, len(ordered))
	for _, b := range ordered {
		series = append(series, dto.RevenuePoint{Date: b.date, Orders: b.orders, Revenue: b.revenue})
	}
	return series
}

func buildFeeSeries(buckets map[string]*timeBucket) []dto.FeePoint {
	ordered := sortedTimeBuckets(buckets)

	series := make([]dto.FeePoint, 0, len(ordered))
	for _, b := range ordered {
		series = append(series, dto.FeePoint{Date: b.date, Fee: b.fee})
	}
	return series
}

func sortedTimeBuckets(buckets map[string]*timeBucket) []*timeBucket {
	ordered := make([]*timeBucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].at.Before(ordered[j].at)
	})
	return ordered
}

func buildTopProducts(buckets map[string]*productBucket, limit int) []dto.ProductRevenue {
	ranked := make([]dto.ProductRevenue, 0, len(buckets))
	for _, b := range buckets {
		ranked = append(ranked, dto.ProductRevenue{Name: b.name, Revenue: b.revenue, Qty: b.qty})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Revenue != ranked[j].Revenue {
			return ranked[i].Revenue > ranked[j].Revenue
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func buildCityRanking(counts map[string]int, limit int) []dto.CityOrders {
	ranked := make([]dto.CityOrders, 0, len(counts))
	for city, n := range counts {
		ranked = append(ranked, dto.CityOrders{City: city, Orders: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Orders != ranked[j].Orders {
			return ranked[i].Orders > ranked[j].Orders
		}
		return ranked[i].City < ranked[j].City
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func buildPaymentBreakdown(counts map[string]int) []dto.PaymentCount {
	breakdown := make([]dto.PaymentCount, 0, len(counts))
	for method, n := range counts {
		breakdown = append(breakdown, dto.PaymentCount{Method: method, Count: n})
	}
	// 数量降序, 方便前端直接渲染
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Count != breakdown[j].Count {
			return breakdown[i].Count > breakdown[j].Count
		}
		return breakdown[i].Method < breakdown[j].Method
	})
	return breakdown
}

func buildProviderRanking(counts map[string]int, limit int) []dto.ProviderUsage {
	ranked := make([]dto.ProviderUsage, 0, len(counts))
	for name, n := range counts {
		ranked = append(ranked, dto.ProviderUsage{Name: name, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Name < ranked[j].Name
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
