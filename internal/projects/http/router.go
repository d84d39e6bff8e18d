package http

import "github.com/gin-gonic/gin"

// RegisterPublic attaches the read-only project routes.
func (h *Handler) RegisterPublic(rg *gin.RouterGroup) {
	rg.GET("/projects", h.list)
	rg.GET("/projects/:id", h.get)
}

// RegisterAdmin attaches the mutating project routes. Callers are
// expected to guard the group with the API-key middleware.
func (h *Handler) RegisterAdmin(rg *gin.RouterGroup) {
	rg.POST("/projects", h.create)
	rg.PUT("/projects/:id", h.update)
	rg.DELETE("/projects/:id", h.delete)
}
