package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"sync"

	"sellerhub_v1_202609/internal/api/dto"
	"sellerhub_v1_202609/pkg/daraz"
)

// ==================== ReviewService ====================

// ReviewService 商品评价服务
type ReviewService struct {
	client *daraz.Client
}

// NewReviewService 创建评价服务
func NewReviewService(client *daraz.Client) *ReviewService {
	return &ReviewService{client: client}
}

// GetProductReviews 拉取单个商品的评价
func (s *ReviewService) GetProductReviews(ctx context.Context, accessToken string, itemID int64) ([]dto.ReviewView, error) {
	raws, err := s.client.GetProductReviews(ctx, accessToken, itemID)
	if err != nil {
		return nil, fmt.Errorf("拉取商品 %d 评价失败: %w", itemID, err)
	}
	return mapReviews(raws), nil
}

// GetAllReviews 拉取店铺全部评价 (评价页数据源)
func (s *ReviewService) GetAllReviews(ctx context.Context, accessToken string) ([]dto.ReviewView, error) {
	raws, err := s.client.GetAllProductReviews(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("拉取店铺评价失败: %w", err)
	}
	return mapReviews(raws), nil
}

// AttachReviews 给一批商品并发补齐评价
// 评价是增强信息: 单个商品拉取失败只记日志, 该商品评价保持为空
func (s *ReviewService) AttachReviews(ctx context.Context, accessToken string, products []dto.DarazProduct) {
	var wg sync.WaitGroup

	for i := range products {
		itemID, err := strconv.ParseInt(products[i].ID, 10, 64)
		if err != nil {
			continue
		}

		wg.Add(1)
		go func(idx int, id int64) {
			defer wg.Done()
			reviews, err := s.GetProductReviews(ctx, accessToken, id)
			if err != nil {
				log.Printf("[Review] 商品 %d 评价拉取失败: %v", id, err)
				return
			}
			products[idx].Reviews = reviews
		}(i, itemID)
	}

	wg.Wait()
}

func mapReviews(raws []daraz.Review) []dto.ReviewView {
	views := make([]dto.ReviewView, 0, len(raws))
	for _, r := range raws {
		views = append(views, dto.ReviewView{
			Rating:    r.Rating,
			Content:   r.ReviewContent,
			BuyerName: r.BuyerName,
			CreatedAt: r.CreateTime,
		})
	}
	return views
}
