// Package service 业务服务层
package service

import (
	"context"
	"fmt"
	"log"
	"time"

	ecomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/redis/go-redis/v9"

	"github.com/ashwinyue/problem-bank/internal/config"
	"github.com/ashwinyue/problem-bank/internal/repository"
	"github.com/ashwinyue/problem-bank/internal/service/catalog"
	"github.com/ashwinyue/problem-bank/internal/service/conversion"
)

// Services 服务集合
type Services struct {
	Catalog    *catalog.Service
	Conversion *conversion.Service

	Config *config.Config
}

// NewServices 创建所有服务
// OCR 或模型凭证缺失时转换管道降级为不可用，目录服务不受影响
func NewServices(repo *repository.Repositories, cfg *config.Config, redisClient *redis.Client) (*Services, error) {
	ctx := context.Background()

	chatModel, err := newChatModel(ctx, cfg)
	if err != nil {
		log.Printf("Warning: chat model unavailable: %v", err)
		chatModel = nil
	}

	var extractor conversion.TextExtractor
	if ve, err := conversion.NewVisionExtractor(ctx, cfg.GCP.CredentialsFile); err != nil {
		log.Printf("Warning: vision extractor unavailable: %v", err)
	} else {
		extractor = ve
	}

	var cache conversion.Cache
	if redisClient != nil {
		cache = conversion.NewRedisCache(redisClient)
	}

	cacheTTL := time.Duration(cfg.Conversion.CacheTTL) * time.Second

	return &Services{
		Catalog:    catalog.NewService(repo),
		Conversion: conversion.NewService(extractor, chatModel, cache, cacheTTL),
		Config:     cfg,
	}, nil
}

// newChatModel 创建 ChatModel
func newChatModel(ctx context.Context, cfg *config.Config) (ecomodel.ChatModel, error) {
	aiCfg := cfg.AI

	var apiKey, baseURL, modelName string

	switch aiCfg.Provider {
	case "openai":
		apiKey = aiCfg.OpenAI.APIKey
		baseURL = aiCfg.OpenAI.BaseURL
		modelName = aiCfg.OpenAI.Model
	case "alibaba", "qwen", "dashscope":
		apiKey = aiCfg.Alibaba.AccessKeySecret
		baseURL = "https://dashscope.aliyuncs.com/compatible-mode/v1"
		modelName = aiCfg.Alibaba.Model
	case "deepseek":
		apiKey = aiCfg.DeepSeek.APIKey
		baseURL = aiCfg.DeepSeek.BaseURL
		modelName = aiCfg.DeepSeek.Model
	default:
		return nil, fmt.Errorf("unsupported ai provider: %s", aiCfg.Provider)
	}

	if apiKey == "" {
		return nil, fmt.Errorf("api_key is required for provider: %s", aiCfg.Provider)
	}

	if modelName == "" {
		modelName = "gpt-4o-mini"
	}

	return openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:  apiKey,
		BaseURL: baseURL,
		Model:   modelName,
	})
}
