package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ImageHandler streams capsule photos from a sharded directory layout:
// image n lives at {n/100}/{n}.jpg under the configured root, so no
// directory holds more than a hundred files. Missing photos fall back to a
// bundled placeholder.
type ImageHandler struct {
	root        string
	defaultPath string
}

func NewImageHandler(root, defaultPath string) *ImageHandler {
	return &ImageHandler{root: root, defaultPath: defaultPath}
}

func (h *ImageHandler) GetImage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		c.String(http.StatusNotFound, "not found")
		return
	}

	path := filepath.Join(h.root, strconv.Itoa(id/100), strconv.Itoa(id)+".jpg")
	if _, err := os.Stat(path); err == nil {
		c.File(path)
		return
	}
	c.File(h.defaultPath)
}
