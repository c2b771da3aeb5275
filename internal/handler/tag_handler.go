package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/problem-bank/internal/service"
)

// TagHandler 标签处理器
type TagHandler struct {
	svc *service.Services
}

// NewTagHandler 创建标签处理器
func NewTagHandler(svc *service.Services) *TagHandler {
	return &TagHandler{svc: svc}
}

// CreateTagRequest 创建标签请求
type CreateTagRequest struct {
	Name string `json:"name"`
}

// UpdateTagRequest 重命名标签请求，目标标签由 body 中的 id 指定
type UpdateTagRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DeleteTagRequest 删除标签请求
type DeleteTagRequest struct {
	ID string `json:"id"`
}

// ListTags 列出全部标签
func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.svc.Catalog.ListTags(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}

	success(c, tags)
}

// CreateTag 创建标签
func (h *TagHandler) CreateTag(c *gin.Context) {
	var req CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "请求参数不合法: "+err.Error())
		return
	}

	tag, err := h.svc.Catalog.CreateTag(c.Request.Context(), req.Name)
	if err != nil {
		errorResponse(c, err)
		return
	}

	created(c, tag)
}

// UpdateTag 重命名标签
func (h *TagHandler) UpdateTag(c *gin.Context) {
	var req UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "请求参数不合法: "+err.Error())
		return
	}
	if req.ID == "" {
		badRequest(c, "id is required")
		return
	}

	tag, err := h.svc.Catalog.RenameTag(c.Request.Context(), req.ID, req.Name)
	if err != nil {
		errorResponse(c, err)
		return
	}

	success(c, tag)
}

// DeleteTag 删除标签
func (h *TagHandler) DeleteTag(c *gin.Context) {
	var req DeleteTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "请求参数不合法: "+err.Error())
		return
	}
	if req.ID == "" {
		badRequest(c, "id is required")
		return
	}

	if err := h.svc.Catalog.DeleteTag(c.Request.Context(), req.ID); err != nil {
		errorResponse(c, err)
		return
	}

	success(c, gin.H{"id": req.ID})
}
