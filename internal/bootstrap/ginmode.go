package bootstrap

import "github.com/gin-gonic/gin"

// SetGinMode switches Gin to release mode outside development.
func SetGinMode(env string) {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}
