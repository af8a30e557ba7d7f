package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diwashkafle/mygadgetnepal/httperr"
	"github.com/diwashkafle/mygadgetnepal/models"
)

// Get returns a single product with parsed specifications and variants.
func (h *Handler) Get(c *gin.Context) {
	product, err := h.store.GetByID(c.Param("id"))
	if err != nil {
		httperr.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// List returns the catalog newest first, category included.
func (h *Handler) List(c *gin.Context) {
	products, err := h.store.List()
	if err != nil {
		httperr.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// Resolve answers the storefront's variant-selection quote: every query
// parameter is a group-name/selected-value pair, and the response carries
// the effective price plus the gallery to display. The first-declared
// matching price group wins, so group order in the stored product matters.
func (h *Handler) Resolve(c *gin.Context) {
	product, err := h.store.GetByID(c.Param("id"))
	if err != nil {
		httperr.JSON(c, err)
		return
	}

	selections := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			selections[key] = values[0]
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"price":  models.ResolveDisplayPrice(product, selections),
		"images": models.ResolveGalleryImages(product, selections),
	})
}

// Search does a case-insensitive lookup across product name, description,
// and category name.
func (h *Handler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusOK, []models.Product{})
		return
	}
	products, err := h.store.Search(query)
	if err != nil {
		httperr.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}
