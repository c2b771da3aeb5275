package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/problem-bank/internal/service"
	"github.com/ashwinyue/problem-bank/internal/service/catalog"
)

// ProblemHandler 题目处理器
type ProblemHandler struct {
	svc *service.Services
}

// NewProblemHandler 创建题目处理器
func NewProblemHandler(svc *service.Services) *ProblemHandler {
	return &ProblemHandler{svc: svc}
}

// ListProblems 列出全部题目（含标签与来源）
func (h *ProblemHandler) ListProblems(c *gin.Context) {
	problems, err := h.svc.Catalog.ListProblems(c.Request.Context())
	if err != nil {
		errorResponse(c, err)
		return
	}

	success(c, problems)
}

// GetProblem 获取单个题目
func (h *ProblemHandler) GetProblem(c *gin.Context) {
	id := c.Param("id")

	problem, err := h.svc.Catalog.GetProblem(c.Request.Context(), id)
	if err != nil {
		errorResponse(c, err)
		return
	}

	success(c, problem)
}

// CreateProblem 创建题目
func (h *ProblemHandler) CreateProblem(c *gin.Context) {
	var req catalog.CreateProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "请求参数不合法: "+err.Error())
		return
	}

	problem, err := h.svc.Catalog.CreateProblem(c.Request.Context(), &req)
	if err != nil {
		errorResponse(c, err)
		return
	}

	created(c, problem)
}

// UpdateProblem 更新题目
func (h *ProblemHandler) UpdateProblem(c *gin.Context) {
	id := c.Param("id")

	var req catalog.UpdateProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "请求参数不合法: "+err.Error())
		return
	}

	problem, err := h.svc.Catalog.UpdateProblem(c.Request.Context(), id, &req)
	if err != nil {
		errorResponse(c, err)
		return
	}

	success(c, problem)
}

// DeleteProblem 删除题目
func (h *ProblemHandler) DeleteProblem(c *gin.Context) {
	id := c.Param("id")

	if err := h.svc.Catalog.DeleteProblem(c.Request.Context(), id); err != nil {
		errorResponse(c, err)
		return
	}

	success(c, gin.H{"id": id})
}
