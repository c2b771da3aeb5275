// Package handler HTTP 处理器层
package handler

import (
	"github.com/ashwinyue/problem-bank/internal/service"
)

// Handlers 处理器集合
type Handlers struct {
	Tag     *TagHandler
	Source  *SourceHandler
	Problem *ProblemHandler
	Upload  *UploadHandler
}

// NewHandlers 创建所有处理器
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Tag:     NewTagHandler(svc),
		Source:  NewSourceHandler(svc),
		Problem: NewProblemHandler(svc),
		Upload:  NewUploadHandler(svc),
	}
}
