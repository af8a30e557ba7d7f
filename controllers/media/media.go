// Package mediaControllers exposes the image upload/delete surface backing
// the admin console's product and banner forms. Files go to object storage
// first; the returned URL is what ends up embedded in catalog rows.
package mediaControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diwashkafle/mygadgetnepal/httperr"
	"github.com/diwashkafle/mygadgetnepal/models"
	"github.com/diwashkafle/mygadgetnepal/storage"
)

type Handler struct {
	images storage.ImageStore
}

func NewHandler(images storage.ImageStore) *Handler {
	return &Handler{images: images}
}

// Upload accepts a multipart file and stores it, answering with the public
// URL and the storage-native file id.
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.JSON(c, models.NewValidationError("file is required"))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
		return
	}
	defer f.Close()

	object, err := h.images.Upload(fileHeader.Filename, f)
	if err != nil {
		httperr.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, object)
}

// Delete removes a stored file by its storage-native id.
func (h *Handler) Delete(c *gin.Context) {
	if err := h.images.Delete(c.Param("fileId")); err != nil {
		httperr.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
