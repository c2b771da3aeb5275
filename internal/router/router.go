// Package router 路由注册
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/problem-bank/internal/handler"
	"github.com/ashwinyue/problem-bank/internal/middleware"
)

// SetupRouter 设置路由
func SetupRouter(h *handler.Handlers) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Tag 标签
		tags := v1.Group("/tags")
		{
			tags.GET("", h.Tag.ListTags)
			tags.POST("", h.Tag.CreateTag)
			tags.PUT("", h.Tag.UpdateTag)
			tags.DELETE("", h.Tag.DeleteTag)
		}

		// Source 来源
		sources := v1.Group("/sources")
		{
			sources.GET("", h.Source.ListSources)
			sources.POST("", h.Source.CreateSource)
			sources.PUT("", h.Source.UpdateSource)
			sources.DELETE("", h.Source.DeleteSource)
		}

		// Problem 题目
		problems := v1.Group("/problems")
		{
			problems.GET("", h.Problem.ListProblems)
			problems.POST("", h.Problem.CreateProblem)
			problems.GET("/:id", h.Problem.GetProblem)
			problems.PUT("/:id", h.Problem.UpdateProblem)
			problems.DELETE("/:id", h.Problem.DeleteProblem)
		}

		// 图片上传转换
		v1.POST("/upload_problem", h.Upload.UploadProblem)
	}

	return r
}
