package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bubom6755/portfolio-backend/internal/projects/domain"
)

type createReq struct {
	Title        string   `json:"title"`
	TitleSimple  string   `json:"titleSimple"`
	Description  string   `json:"description"`
	Description2 string   `json:"description2"`
	Description3 string   `json:"description3"`
	Details      string   `json:"details"`
	Technologies []string `json:"technologies"`
	Date         string   `json:"date"`
	Categories   []string `json:"categorie"`
	Image        string   `json:"image"`
	ImageSimple  string   `json:"imageSimple"`
	Images       []string `json:"images"`
	Type         string   `json:"type"`
	Vue          string   `json:"vue"`
}

func (h *Handler) list(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"projects": h.store.List()})
}

func (h *Handler) get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid project id"})
		return
	}

	p, err := h.store.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := h.store.Create(domain.Project{
		Title:        req.Title,
		TitleSimple:  req.TitleSimple,
		Description:  req.Description,
		Description2: req.Description2,
		Description3: req.Description3,
		Details:      req.Details,
		Technologies: orEmpty(req.Technologies),
		Date:         req.Date,
		Categories:   orEmpty(req.Categories),
		Image:        req.Image,
		ImageSimple:  req.ImageSimple,
		Images:       orEmpty(req.Images),
		Type:         req.Type,
		Vue:          req.Vue,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to save project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project created successfully", "project": p})
}

func (h *Handler) update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid project id"})
		return
	}

	var patch domain.ProjectPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := h.store.Update(id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to update project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project updated successfully", "project": p})
}

func (h *Handler) delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid project id"})
		return
	}

	if err := h.store.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to delete project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
