package service

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ==================== 配置 ====================

// StorageConfig 对象存储配置
// Endpoint 留空走 AWS S3, 填自定义地址可接 S3 兼容服务 (Supabase Storage 等)
type StorageConfig struct {
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string
	CDNDomain string
	BasePath  string
}

// ==================== StorageService ====================

// StorageService 商品图片上传服务
type StorageService struct {
	client *s3.Client
	cfg    *StorageConfig
}

// NewStorageService 创建存储服务
func NewStorageService(cfg *StorageConfig) (*StorageService, error) {
	awsCfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("加载存储配置失败: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &StorageService{client: client, cfg: cfg}, nil
}

// Upload 上传文件, 返回公开访问 URL
func (s *StorageService) Upload(ctx context.Context, data []byte, filename string, contentType string) (string, error) {
	key := s.generateKey(filename)

	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("上传对象存储失败: %w", err)
	}

	return s.publicURL(key), nil
}

// Delete 删除文件
func (s *StorageService) Delete(ctx context.Context, fileURL string) error {
	key := s.extractKey(fileURL)
	if key == "" {
		return fmt.Errorf("无法从 URL 解析对象键: %s", fileURL)
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	})
	return err
}

// generateKey 对象键: 前缀/日期/uuid.扩展名, 防止覆盖同名文件
func (s *StorageService) generateKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	name := fmt.Sprintf("%s%s", uuid.NewString(), ext)
	datePath := time.Now().Format("2006/01/02")

	if s.cfg.BasePath != "" {
		return fmt.Sprintf("%s/%s/%s", strings.Trim(s.cfg.BasePath, "/"), datePath, name)
	}
	return fmt.Sprintf("%s/%s", datePath, name)
}

func (s *StorageService) publicURL(key string) string {
	if s.cfg.CDNDomain != "" {
		return fmt.Sprintf("https://%s/%s", s.cfg.CDNDomain, key)
	}
	if s.cfg.Endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.cfg.Endpoint, "/"), s.cfg.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
}

func (s *StorageService) extractKey(fileURL string) string {
	marker := s.cfg.Bucket + "/"
	if idx := strings.Index(fileURL, marker); idx >= 0 {
		return fileURL[idx+len(marker):]
	}
	if s.cfg.CDNDomain != "" {
		prefix := fmt.Sprintf("https://%s/", s.cfg.CDNDomain)
		if strings.HasPrefix(fileURL, prefix) {
			return strings.TrimPrefix(fileURL, prefix)
		}
	}
	return ""
}
