package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/bubom6755/portfolio-backend/config"
	httpapi "github.com/bubom6755/portfolio-backend/internal/api/http"
	"github.com/bubom6755/portfolio-backend/internal/api/http/middleware"
	authmw "github.com/bubom6755/portfolio-backend/internal/auth/middleware"
	chathttp "github.com/bubom6755/portfolio-backend/internal/chat/http"
	chatservice "github.com/bubom6755/portfolio-backend/internal/chat/service"
	projecthttp "github.com/bubom6755/portfolio-backend/internal/projects/http"
	"github.com/bubom6755/portfolio-backend/internal/projects/store"
	"github.com/bubom6755/portfolio-backend/internal/uploads"
	uploadhttp "github.com/bubom6755/portfolio-backend/internal/uploads/http"
)

type RouterDeps struct {
	Config   *config.Config
	Store    *store.Store
	Uploader *uploads.Uploader
	Chat     *chatservice.ChatService
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.Config.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	healthHandler := httpapi.NewHealthHandler()
	healthHandler.RegisterRoutes(r)

	// Uploaded images are served straight from disk under the same
	// relative paths the upload endpoint returns.
	r.Static("/uploads", dep.Uploader.Dir())

	api := r.Group("/api")

	projectHandler := projecthttp.New(dep.Store)
	projectHandler.RegisterPublic(api)

	chatHandler := chathttp.New(dep.Chat)
	chatHandler.Register(api)

	admin := api.Group("/admin")
	admin.Use(authmw.APIKey(dep.Config.Admin.APIKey))
	admin.Use(middleware.RequestIDMiddleware())

	projectHandler.RegisterAdmin(admin)

	uploadHandler := uploadhttp.New(dep.Uploader)
	uploadHandler.Register(admin)

	return r
}
