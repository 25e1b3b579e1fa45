package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/postdeck/internal/handler"
	"go.uber.org/zap"
)

// SetupRouter 配置 Gin 引擎和路由。
// templateGlob 或 staticDir 为空时跳过对应加载，方便测试环境复用。
func SetupRouter(api *handler.API, logger *zap.Logger, templateGlob, staticDir string) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(logger))

	if templateGlob != "" {
		r.LoadHTMLGlob(templateGlob)
	}
	if staticDir != "" {
		r.Static("/static", staticDir)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	if templateGlob != "" {
		r.GET("/", api.ShowDashboard)
	}

	// REST API 路由
	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/platforms", api.GetPlatforms)

		apiGroup.GET("/posts", api.GetPosts)
		apiGroup.GET("/posts/:id", api.GetPost)
		apiGroup.GET("/posts/:id/preview", api.PreviewPost)
		apiGroup.POST("/posts", api.CreatePost)
		apiGroup.PUT("/posts/:id", api.UpdatePost)
		apiGroup.DELETE("/posts/:id", api.DeletePost)

		apiGroup.GET("/analytics", api.GetAnalytics)
	}

	return r
}

// requestLogger 以结构化日志记录每个请求的方法、路径、状态码与耗时。
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
