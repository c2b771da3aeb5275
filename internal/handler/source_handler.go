package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/problem-bank/internal/service"
)

// SourceHandler 来源处理器
type SourceHandler struct {
	svc *service.Services
}

// NewSourceHandler 创建来源处理器
func NewSourceHandler(svc *service.Services) *SourceHandler {
	return &SourceHandler{svc: svc}
}

// CreateSourceRequest 创建来源请求
type CreateSourceRequest struct {
	Name string `json:"name"`
}

// UpdateSourceRequest 重命名来源请求，目标来源由 body 中的 id 指定
type UpdateSourceRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DeleteSourceRequest 删除来源请求
type DeleteSourceRequest struct {
	ID string `json:"id"`
}

// ListSources 列出全部来源
func (h *SourceHandler) ListSources(c *gin.Context) {
	sources, err := h.svc.Catalog.ListSources(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}

	success(c, sources)
}

// CreateSource 创建来源
func (h *SourceHandler) CreateSource(c *gin.Context) {
	var req CreateSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "请求参数不合法: "+err.Error())
		return
	}

	source, err := h.svc.Catalog.CreateSource(c.Request.Context(), req.Name)
	if err != nil {
		errorResponse(c, err)
		return
	}

	created(c, source)
}

// UpdateSource 重命名来源
func (h *SourceHandler) UpdateSource(c *gin.Context) {
	var req UpdateSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "请求参数不合法: "+err.Error())
		return
	}
	if req.ID == "" {
		badRequest(c, "id is required")
		return
	}

	source, err := h.svc.Catalog.RenameSource(c.Request.Context(), req.ID, req.Name)
	if err != nil {
		errorResponse(c, err)
		return
	}

	success(c, source)
}

// DeleteSource 删除来源
func (h *SourceHandler) DeleteSource(c *gin.Context) {
	var req DeleteSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "请求参数不合法: "+err.Error())
		return
	}
	if req.ID == "" {
		badRequest(c, "id is required")
		return
	}

	if err := h.svc.Catalog.DeleteSource(c.Request.Context(), req.ID); err != nil {
		errorResponse(c, err)
		return
	}

	success(c, gin.H{"id": req.ID})
}
