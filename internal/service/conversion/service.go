// Package conversion 图像转换管道
// 上传的题面图片经 OCR 提取文本，再交给文本生成模型改写为 LaTeX。
// 管道又慢又容易失败，目录服务只把它的输出当作不透明字符串
package conversion

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	ecomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/ashwinyue/problem-bank/internal/errs"
)

// latexMarker 生成文本中分隔 LaTeX 内容的固定标记
const latexMarker = "LaTeX Format:"

const promptTemplate = `Convert the following problem statement into LaTeX format:

%s

LaTeX Format:`

// TextExtractor 黑盒文本提取器（OCR）
type TextExtractor interface {
	ExtractText(ctx context.Context, image []byte) (string, error)
}

// Cache 转换结果缓存
// 同一张图片重复上传时跳过整条管道
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// Result 转换结果
type Result struct {
	ExtractedText string `json:"extracted_text"`
	LatexContent  string `json:"latex_content"`
}

// Service 转换管道服务
type Service struct {
	extractor TextExtractor
	chatModel ecomodel.ChatModel
	cache     Cache
	cacheTTL  time.Duration
}

// NewService 创建转换管道服务
// extractor/chatModel 允许为 nil（未配置凭证时），调用时报 DependencyFailure
func NewService(extractor TextExtractor, chatModel ecomodel.ChatModel, cache Cache, cacheTTL time.Duration) *Service {
	return &Service{
		extractor: extractor,
		chatModel: chatModel,
		cache:     cache,
		cacheTTL:  cacheTTL,
	}
}

// Convert 把题面图片转换为 LaTeX 文本
func (s *Service) Convert(ctx context.Context, image []byte) (*Result, error) {
	if s.extractor == nil || s.chatModel == nil {
		return nil, fmt.Errorf("conversion pipeline is not configured: %w", errs.ErrDependencyFailure)
	}
	if len(image) == 0 {
		return nil, fmt.Errorf("image is required: %w", errs.ErrInvalidArgument)
	}

	key := cacheKey(image)
	if cached, ok := s.cachedResult(ctx, key); ok {
		return cached, nil
	}

	text, err := s.extractor.ExtractText(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("ocr extraction failed: %w: %v", errs.ErrDependencyFailure, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("ocr produced no text: %w", errs.ErrDependencyFailure)
	}

	prompt := fmt.Sprintf(promptTemplate, text)
	out, err := s.chatModel.Generate(ctx, []*schema.Message{schema.UserMessage(prompt)})
	if err != nil {
		return nil, fmt.Errorf("text generation failed: %w: %v", errs.ErrDependencyFailure, err)
	}

	latex := extractLatex(out.Content)
	if latex == "" {
		return nil, fmt.Errorf("text generation produced no usable output: %w", errs.ErrDependencyFailure)
	}

	result := &Result{ExtractedText: text, LatexContent: latex}
	s.storeResult(ctx, key, result)
	return result, nil
}

// extractLatex 取最后一个标记之后的部分；标记缺失时使用整段输出
func extractLatex(generated string) string {
	if idx := strings.LastIndex(generated, latexMarker); idx >= 0 {
		generated = generated[idx+len(latexMarker):]
	}
	return strings.TrimSpace(generated)
}

// cacheKey 以图片内容哈希作为缓存键
func cacheKey(image []byte) string {
	sum := sha256.Sum256(image)
	return "conversion:" + hex.EncodeToString(sum[:])
}

func (s *Service) cachedResult(ctx context.Context, key string) (*Result, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		log.Printf("conversion cache get failed: %v", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var result Result
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, false
	}
	return &result, true
}

func (s *Service) storeResult(ctx context.Context, key string, result *Result) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.cacheTTL); err != nil {
		// 缓存失败不影响主流程
		log.Printf("conversion cache set failed: %v", err)
	}
}
