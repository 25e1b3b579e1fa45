package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/postdeck/internal/db"
	"go.uber.org/zap"
)

// GetPlatforms 获取全部渠道列表。
func (a *API) GetPlatforms(c *gin.Context) {
	platforms, err := a.platforms.List()
	if err != nil {
		a.logger.Error("list platforms failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to fetch platforms")
		return
	}

	if platforms == nil {
		platforms = []db.Platform{}
	}
	c.JSON(http.StatusOK, platforms)
}
