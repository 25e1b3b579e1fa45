package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/postdeck/internal/db"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr   string
	Port         string
	DatabaseDSN  string
	GinMode      string
	LogLevel     string
	LogFormat    string
	LogFile      string
	TemplateGlob string
	StaticDir    string
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databaseDSN := strings.TrimSpace(os.Getenv("DATABASE_DSN"))
	if databaseDSN == "" {
		databaseDSN = db.DefaultDSN
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	logLevel := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "info"
	}

	logFormat := strings.TrimSpace(os.Getenv("LOG_FORMAT"))
	if logFormat == "" {
		logFormat = "console"
	}

	templateGlob := strings.TrimSpace(os.Getenv("TEMPLATE_GLOB"))
	if templateGlob == "" {
		templateGlob = "web/template/*.html"
	}

	staticDir := strings.TrimSpace(os.Getenv("STATIC_DIR"))
	if staticDir == "" {
		staticDir = "web/static"
	}

	return AppConfig{
		ListenAddr:   listenAddr,
		Port:         port,
		DatabaseDSN:  databaseDSN,
		GinMode:      ginMode,
		LogLevel:     logLevel,
		LogFormat:    logFormat,
		LogFile:      strings.TrimSpace(os.Getenv("LOG_FILE")),
		TemplateGlob: templateGlob,
		StaticDir:    staticDir,
	}
}
