package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/postdeck/internal/db"
	"go.uber.org/zap"
)

// ShowDashboard 渲染仪表盘页面骨架。
// 列表、统计与活动流由页面脚本通过 /api 拉取并渲染。
func (a *API) ShowDashboard(c *gin.Context) {
	platforms, err := a.platforms.List()
	if err != nil {
		a.logger.Error("load dashboard platforms failed", zap.Error(err))
		platforms = []db.Platform{}
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"title":     "PostDeck",
		"platforms": platforms,
		"statuses":  db.PostStatuses,
	})
}
