package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diwashkafle/mygadgetnepal/httperr"
	"github.com/diwashkafle/mygadgetnepal/models"
)

type BannerStore interface {
	Create(b *models.Banner) error
	GetByID(id string) (*models.Banner, error)
	Update(id string, b *models.Banner) (*models.Banner, error)
	Delete(id string) error
	List(activeOnly bool) ([]models.Banner, error)
}

type BannerHandler struct {
	store BannerStore
}

func NewBannerHandler(store BannerStore) *BannerHandler {
	return &BannerHandler{store: store}
}

type bannerRequest struct {
	Title    string `json:"title"`
	Image    string `json:"image"`
	CtaText  string `json:"ctaText"`
	CtaLink  string `json:"ctaLink"`
	IsActive *bool  `json:"isActive"`
}

func (req *bannerRequest) validate() error {
	if req.Title == "" || req.Image == "" || req.CtaText == "" || req.CtaLink == "" {
		return models.NewValidationError("title, image, ctaText and ctaLink are required")
	}
	return nil
}

func (req *bannerRequest) toModel() *models.Banner {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return &models.Banner{
		Title:    req.Title,
		Image:    req.Image,
		CtaText:  req.CtaText,
		CtaLink:  req.CtaLink,
		IsActive: active,
	}
}

func (h *BannerHandler) Create(c *gin.Context) {
	var req bannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.validate(); err != nil {
		httperr.JSON(c, err)
		return
	}

	banner := req.toModel()
	if err := h.store.Create(banner); err != nil {
		httperr.JSON(c, err)
		return
	}
	c.JSON(http.StatusCreated, banner)
}

func (h *BannerHandler) Get(c *gin.Context) {
	banner, err := h.store.GetByID(c.Param("id"))
	if err != nil {
		httperr.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, banner)
}

func (h *BannerHandler) Update(c *gin.Context) {
	var req bannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.validate(); err != nil {
		httperr.JSON(c, err)
		return
	}

	banner, err := h.store.Update(c.Param("id"), req.toModel())
	if err != nil {
		httperr.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, banner)
}

func (h *BannerHandler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Param("id")); err != nil {
		httperr.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Banner deleted successfully"})
}

// ListAll returns every banner for the admin console, active or not.
func (h *BannerHandler) ListAll(c *gin.Context) {
	banners, err := h.store.List(false)
	if err != nil {
		httperr.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, banners)
}

// ListActive returns the live banners for the storefront hero section.
func (h *BannerHandler) ListActive(c *gin.Context) {
	banners, err := h.store.List(true)
	if err != nil {
		httperr.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, banners)
}
