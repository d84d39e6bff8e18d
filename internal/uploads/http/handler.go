package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bubom6755/portfolio-backend/internal/uploads"
)

// Handler exposes the admin upload endpoint.
type Handler struct {
	uploader *uploads.Uploader
}

func New(u *uploads.Uploader) *Handler {
	return &Handler{uploader: u}
}

func (h *Handler) upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "file is required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to read file"})
		return
	}
	defer f.Close()

	// The size check happens on the full payload, so read it all first.
	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to read file"})
		return
	}

	res, err := h.uploader.Save(fileHeader.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, uploads.ErrInvalidType):
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		case errors.Is(err, uploads.ErrTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"ok": false, "error": "file too large, maximum size is 10MB"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to upload file"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "File uploaded successfully",
		"filename": res.Filename,
		"path":     res.Path,
	})
}

// Register attaches the upload route to the given (guarded) group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/upload", h.upload)
}
