// Package uploads validates and persists image files sent by the admin
// panel. Files are stored under generated names so client-supplied
// filenames never reach the filesystem.
package uploads

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MaxFileSize is the upload cap in bytes (10 MiB).
const MaxFileSize = 10 * 1024 * 1024

var (
	ErrInvalidType = errors.New("file type not allowed")
	ErrTooLarge    = errors.New("file too large")
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// Uploader writes validated files into a single directory.
type Uploader struct {
	dir string
}

func New(dir string) (*Uploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Uploader{dir: dir}, nil
}

// Result describes a stored upload.
type Result struct {
	Filename string
	// Path is the public relative path the frontend stores on projects.
	Path string
}

// Save validates the extension and size, then writes the payload under
// a generated name. The original filename only contributes its
// extension.
func (u *Uploader) Save(originalName string, data []byte) (Result, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return Result{}, fmt.Errorf("%w: %s", ErrInvalidType, ext)
	}

	if len(data) > MaxFileSize {
		return Result{}, ErrTooLarge
	}

	name := fmt.Sprintf("%s_%s%s", time.Now().Format("20060102_150405"), randomHex(4), ext)
	if err := os.WriteFile(filepath.Join(u.dir, name), data, 0o644); err != nil {
		return Result{}, fmt.Errorf("write upload: %w", err)
	}

	return Result{
		Filename: name,
		Path:     "uploads/" + name,
	}, nil
}

// Dir returns the directory uploads are written to.
func (u *Uploader) Dir() string {
	return u.dir
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err == nil {
		return hex.EncodeToString(b)
	}
	// fallback (should be rare)
	return fmt.Sprintf("%08x", time.Now().UnixNano()&0xffffffff)
}
