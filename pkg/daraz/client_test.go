package daraz

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// ==================== 测试辅助 ====================

func newTestServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/get_all_products", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Header.Get("Authorization") != "token-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `{"data":{"products":[
			{"item_id":100,"status":"active","primary_category":7,
			 "attributes":{"name_en":"Earbuds","brand":"SoundCo"},
			 "skus":[{"SellerSku":"S1","quantity":5,"Url":"https://p/100"}]}
		]}}`)
	})

	mux.HandleFunc("/get_orders_with_items", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":[
			{"order_id":9001,"price":"250.00","payment_method":"COD",
			 "created_at":"2024-01-15 10:00:00 +0800",
			 "address_shipping":{"city":"Karachi"},
			 "items":[{"order_item_id":1,"name":"Earbuds","paid_price":"250.00"}]}
		]}`)
	})

	mux.HandleFunc("/get_payout", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"data":[{"statement_number":"STM-1","payout":"100.00","paid":"1"}]}`)
	})

	mux.HandleFunc("/migrate_image", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["image_url"] == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		fmt.Fprint(w, `{"data":{"image":{"url":"https://daraz-cdn/img.jpg"}}}`)
	})

	mux.HandleFunc("/trace_order", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"data":{"order_id":%q,"events":[]}}`, r.URL.Query().Get("order_id"))
	})

	return httptest.NewServer(mux)
}

// ==================== 单元测试 ====================

func TestClient_GetAllProducts(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	c := NewClient(&Config{BaseURL: srv.URL})
	products, err := c.GetAllProducts(context.Background(), "token-123")
	if err != nil {
		t.Fatalf("拉取商品失败: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("商品数 = %d, want 1", len(products))
	}

	p := products[0]
	if p.ItemID != 100 || p.Attributes.NameEn != "Earbuds" {
		t.Errorf("商品解析异常: %+v", p)
	}
	if len(p.Skus) != 1 || p.Skus[0].Quantity != 5 {
		t.Errorf("SKU 解析异常: %+v", p.Skus)
	}
}

func TestClient_Unauthorized(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	c := NewClient(&Config{BaseURL: srv.URL, Retries: 1})
	if _, err := c.GetAllProducts(context.Background(), "wrong-token"); err == nil {
		t.Error("401 应返回错误")
	}
}

func TestClient_GetOrdersWithItems(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	c := NewClient(&Config{BaseURL: srv.URL})
	orders, err := c.GetOrdersWithItems(context.Background(), "token-123")
	if err != nil {
		t.Fatalf("拉取订单失败: %v", err)
	}
	if len(orders) != 1 || orders[0].OrderID != 9001 {
		t.Fatalf("订单解析异常: %+v", orders)
	}
	if orders[0].Items[0].PaidPrice.Float64() != 250 {
		t.Errorf("paid_price = %v, want 250", orders[0].Items[0].PaidPrice.Float64())
	}
}

func TestClient_GetPayoutStatements(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	c := NewClient(&Config{BaseURL: srv.URL})
	statements, err := c.GetPayoutStatements(context.Background(), "token-123")
	if err != nil {
		t.Fatalf("拉取结算单失败: %v", err)
	}
	if len(statements) != 1 || statements[0].Payout != "100.00" {
		t.Errorf("结算单应保持字符串原样: %+v", statements)
	}
}

func TestClient_MigrateImage(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	c := NewClient(&Config{BaseURL: srv.URL})
	url, err := c.MigrateImage(context.Background(), "token-123", "https://origin/img.jpg")
	if err != nil {
		t.Fatalf("图片迁移失败: %v", err)
	}
	if url != "https://daraz-cdn/img.jpg" {
		t.Errorf("迁移后 URL = %q", url)
	}
}

func TestClient_TraceOrderPassthrough(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	c := NewClient(&Config{BaseURL: srv.URL})
	raw, err := c.TraceOrder(context.Background(), "token-123", "9001")
	if err != nil {
		t.Fatalf("轨迹查询失败: %v", err)
	}

	var payload struct {
		Data struct {
			OrderID string `json:"order_id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("透传体不是合法 JSON: %v", err)
	}
	if payload.Data.OrderID != "9001" {
		t.Errorf("order_id = %q, want 9001", payload.Data.OrderID)
	}
}

func TestNumString_Unmarshal(t *testing.T) {
	var v struct {
		A NumString `json:"a"`
		B NumString `json:"b"`
	}
	if err := json.Unmarshal([]byte(`{"a":"12.50","b":30}`), &v); err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if v.A.Float64() != 12.5 || v.B.Float64() != 30 {
		t.Errorf("a=%v b=%v", v.A.Float64(), v.B.Float64())
	}
}
