package handler

import (
	"github.com/postdeck/internal/service"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db        *gorm.DB
	logger    *zap.Logger
	platforms *service.PlatformService
	posts     *service.PostService
	analytics *service.AnalyticsService
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, logger *zap.Logger) *API {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &API{
		db:        gdb,
		logger:    logger,
		platforms: service.NewPlatformService(gdb),
		posts:     service.NewPostService(gdb),
		analytics: service.NewAnalyticsService(gdb),
	}
}

// DB exposes the underlying gorm instance for tests.
func (a *API) DB() *gorm.DB {
	return a.db
}
