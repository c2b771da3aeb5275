package handler

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/problem-bank/internal/service"
	"github.com/ashwinyue/problem-bank/internal/service/catalog"
)

// UploadHandler 图片上传转换处理器
type UploadHandler struct {
	svc *service.Services
}

// NewUploadHandler 创建上传处理器
func NewUploadHandler(svc *service.Services) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// UploadProblem 上传题面图片，走 OCR+生成管道后落库为新题目
// 入库使用固定的占位元数据，后续通过题目更新接口修正
func (h *UploadHandler) UploadProblem(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		badRequest(c, "image file is required")
		return
	}

	maxSize := int64(h.svc.Config.Conversion.MaxImageSize)
	if maxSize > 0 && fileHeader.Size > maxSize {
		badRequest(c, fmt.Sprintf("image exceeds size limit of %d bytes", maxSize))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		badRequest(c, "failed to open uploaded file: "+err.Error())
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		badRequest(c, "failed to read uploaded file: "+err.Error())
		return
	}

	result, err := h.svc.Conversion.Convert(c.Request.Context(), image)
	if err != nil {
		errorResponse(c, err)
		return
	}

	problem, err := h.svc.Catalog.CreateProblem(c.Request.Context(), &catalog.CreateProblemRequest{
		Title:         "Converted Problem",
		Difficulty:    "Medium",
		EstimatedTime: "20 minutes",
		Keywords:      []string{"Converted", "OCR", "LaTeX"},
		Author:        "Automated System",
		LatexContent:  result.LatexContent,
	})
	if err != nil {
		errorResponse(c, err)
		return
	}

	created(c, gin.H{
		"problem":        problem,
		"extracted_text": result.ExtractedText,
	})
}
