package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"sellerhub_v1_202609/pkg/daraz"
	"sellerhub_v1_202609/pkg/utils"
)

// ==================== 测试辅助 ====================

func newCategoryTestServer(t *testing.T, hits *int64) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/get_category_by_id" {
			http.NotFound(w, r)
			return
		}
		atomic.AddInt64(hits, 1)

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("category_id") {
		case "100":
			fmt.Fprint(w, `{"data":{"category_id":100,"name":"Electronics","leaf":true}}`)
		case "200":
			fmt.Fprint(w, `{"data":{"category_id":200,"name":"Fashion","leaf":true}}`)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
}

// ==================== 类目解析 ====================

func TestCategoryService_Resolve(t *testing.T) {
	var hits int64
	srv := newCategoryTestServer(t, &hits)
	defer srv.Close()
	defer utils.DeleteCache("category:100")

	svc := NewCategoryService(daraz.NewClient(&daraz.Config{BaseURL: srv.URL}))

	res := svc.Resolve(context.Background(), 100)
	if !res.Resolved || res.Name != "Electronics" {
		t.Errorf("Resolve(100) = %+v, want Electronics/true", res)
	}
}

func TestCategoryService_ResolveFallback(t *testing.T) {
	var hits int64
	srv := newCategoryTestServer(t, &hits)
	defer srv.Close()

	svc := NewCategoryService(daraz.NewClient(&daraz.Config{BaseURL: srv.URL}))

	// 接口 500, 回退为原始 ID 字符串
	res := svc.Resolve(context.Background(), 999)
	if res.Resolved {
		t.Error("查询失败不应标记为已解析")
	}
	if res.Name != "999" {
		t.Errorf("回退名称 = %q, want \"999\"", res.Name)
	}
}

func TestCategoryService_ResolveCached(t *testing.T) {
	var hits int64
	srv := newCategoryTestServer(t, &hits)
	defer srv.Close()
	defer utils.DeleteCache("category:200")

	svc := NewCategoryService(daraz.NewClient(&daraz.Config{BaseURL: srv.URL}))

	first := svc.Resolve(context.Background(), 200)
	second := svc.Resolve(context.Background(), 200)

	if first != second {
		t.Errorf("缓存命中结果应一致: %+v vs %+v", first, second)
	}
	if atomic.LoadInt64(&hits) != 1 {
		t.Errorf("网络调用 = %d, 第二次应走缓存", hits)
	}
}

func TestCategoryService_ResolveBatch(t *testing.T) {
	var hits int64
	srv := newCategoryTestServer(t, &hits)
	defer srv.Close()
	defer utils.DeleteCache("category:100")
	defer utils.DeleteCache("category:200")

	svc := NewCategoryService(daraz.NewClient(&daraz.Config{BaseURL: srv.URL}))

	// 100 重复出现, 999 解析失败
	results := svc.ResolveBatch(context.Background(), []int64{100, 200, 100, 999})

	if len(results) != 3 {
		t.Fatalf("去重后结果数 = %d, want 3", len(results))
	}
	if results[100].Name != "Electronics" || results[200].Name != "Fashion" {
		t.Errorf("批量解析结果异常: %+v", results)
	}
	if results[999].Resolved || results[999].Name != "999" {
		t.Errorf("失败的类目应回退: %+v", results[999])
	}
}
