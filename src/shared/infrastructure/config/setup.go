package config

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// SharedConfig contiene la configuración para los middlewares compartidos
type SharedConfig struct {
	EnableGzip        bool
	GzipExcludedPaths []string
}

// DefaultSharedConfig devuelve una configuración por defecto
func DefaultSharedConfig() SharedConfig {
	return SharedConfig{
		EnableGzip:        true,
		GzipExcludedPaths: []string{"/health", "/metrics"},
	}
}

// SetupSharedMiddleware configura los middlewares compartidos
func SetupSharedMiddleware(router *gin.Engine, cfg SharedConfig) {
	if cfg.EnableGzip {
		router.Use(gzip.Gzip(gzip.DefaultCompression,
			gzip.WithExcludedPaths(cfg.GzipExcludedPaths)))
	}

	// Aquí se pueden agregar más middlewares compartidos en el futuro
	// (CORS, autenticación, etc.)
}
