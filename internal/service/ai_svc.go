package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"sellerhub_v1_202609/internal/api/dto"
)

// ==================== 配置 ====================

// AIConfig AI 刊登文案后端配置
// 模型调用在独立的 agent 服务里, 这里只消费它的公开契约
type AIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// ==================== AIService ====================

// AIService AI 辅助刊登服务
type AIService struct {
	http    *resty.Client
	storage *StorageService
}

// NewAIService 创建 AI 服务
func NewAIService(cfg *AIConfig, storage *StorageService) *AIService {
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second // 生成接口慢, 超时放宽
	}

	http := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout)

	return &AIService{http: http, storage: storage}
}

type generateListingResp struct {
	Data dto.GeneratedListing `json:"data"`
}

// GenerateProductListing 根据商品图片生成刊登文案
// 流程: 图片先传对象存储拿公开 URL, 再交给 agent 后端识别生成
func (s *AIService) GenerateProductListing(ctx context.Context, imageData []byte, filename string) (*dto.GeneratedListing, error) {
	imageURL, err := s.storage.Upload(ctx, imageData, filename, "")
	if err != nil {
		return nil, fmt.Errorf("刊登图片上传失败: %w", err)
	}

	var res generateListingResp
	resp, err := s.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"productImage": imageURL}).
		SetResult(&res).
		Post("/agent/generateProductListing")
	if err != nil {
		return nil, fmt.Errorf("刊登文案生成请求失败: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("刊登文案生成接口异常 [%d]: %s", resp.StatusCode(), resp.String())
	}

	return &res.Data, nil
}
