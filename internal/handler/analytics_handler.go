package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetAnalytics 返回仪表盘统计概览，每次请求实时重算。
func (a *API) GetAnalytics(c *gin.Context) {
	overview, err := a.analytics.Compute()
	if err != nil {
		a.logger.Error("compute analytics failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to fetch analytics")
		return
	}

	c.JSON(http.StatusOK, overview)
}
