package productcontroller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diwashkafle/mygadgetnepal/httperr"
)

// Delete removes the product row, then clears its images from object
// storage. The cleanup is best-effort: a stubborn image is logged and left
// orphaned rather than blocking the deletion.
func (h *Handler) Delete(c *gin.Context) {
	product, err := h.store.Delete(c.Param("id"))
	if err != nil {
		httperr.JSON(c, err)
		return
	}

	for _, url := range product.Images {
		if err := h.images.DeleteByURL(url); err != nil {
			log.Printf("product %s: failed to delete image %s: %v", product.ID, url, err)
		}
	}
	for _, group := range product.Variants {
		for _, opt := range group.Types {
			for _, img := range opt.Images {
				if err := h.images.DeleteByURL(img.URL); err != nil {
					log.Printf("product %s: failed to delete variant image %s: %v", product.ID, img.URL, err)
				}
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
