package productcontroller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/diwashkafle/mygadgetnepal/httperr"
	"github.com/diwashkafle/mygadgetnepal/models"
	"github.com/diwashkafle/mygadgetnepal/storage"
)

// ProductStore is the persistence surface the handlers need.
type ProductStore interface {
	Create(p *models.Product, force bool) error
	GetByID(id string) (*models.Product, error)
	Update(id string, p *models.Product) (*models.Product, error)
	Delete(id string) (*models.Product, error)
	List() ([]models.Product, error)
	Search(query string) ([]models.Product, error)
}

type Handler struct {
	store  ProductStore
	images storage.ImageStore
}

func NewHandler(store ProductStore, images storage.ImageStore) *Handler {
	return &Handler{store: store, images: images}
}

// productRequest is the write payload for both create and full-replace
// update. Variant groups are validated during deserialization, so a
// malformed group shape never reaches the database.
type productRequest struct {
	Name           string                      `json:"name"`
	Description    string                      `json:"description"`
	Price          float64                     `json:"price"`
	CrossedPrice   float64                     `json:"crossedPrice"`
	Stock          *int                        `json:"stock"`
	Status         string                      `json:"status"`
	CategoryID     string                      `json:"categoryId"`
	SubcategoryID  *string                     `json:"subcategoryId"`
	Images         []string                    `json:"images"`
	Specifications []models.SpecificationGroup `json:"specifications"`
	Variants       []models.VariantGroup       `json:"variants"`
	Force          bool                        `json:"force"`
}

func (req *productRequest) validate() error {
	switch {
	case strings.TrimSpace(req.Name) == "":
		return models.NewValidationError("name is required")
	case req.CategoryID == "":
		return models.NewValidationError("categoryId is required")
	case req.Price <= 0:
		return models.NewValidationError("price must be positive")
	case req.CrossedPrice <= 0:
		return models.NewValidationError("crossedPrice must be positive")
	case req.Stock == nil || *req.Stock < 0:
		return models.NewValidationError("stock is required and must not be negative")
	case strings.TrimSpace(req.Description) == "":
		return models.NewValidationError("description is required")
	case len(req.Images) == 0:
		return models.NewValidationError("at least one image is required")
	}
	if _, err := models.ParseProductStatus(req.Status); err != nil {
		return models.NewValidationError("%s", err.Error())
	}
	return nil
}

func (req *productRequest) toModel() *models.Product {
	status, _ := models.ParseProductStatus(req.Status)
	return &models.Product{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		CrossedPrice:   req.CrossedPrice,
		Stock:          *req.Stock,
		Status:         status,
		CategoryID:     req.CategoryID,
		SubcategoryID:  req.SubcategoryID,
		Images:         datatypes.NewJSONSlice(req.Images),
		Specifications: datatypes.NewJSONSlice(req.Specifications),
		Variants:       datatypes.NewJSONSlice(req.Variants),
	}
}

// bindProduct decodes and validates a product write payload, preserving the
// taxonomy status for malformed variant groups.
func bindProduct(c *gin.Context) (*productRequest, error) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var validation models.ValidationError
		if errors.As(err, &validation) {
			return nil, validation
		}
		return nil, models.NewValidationError("invalid request body: %s", err.Error())
	}
	if err := req.validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

// Create persists a new product. A (name, category) collision is answered
// with 409 so the admin console can ask for confirmation; resubmitting with
// force=true goes through.
func (h *Handler) Create(c *gin.Context) {
	req, err := bindProduct(c)
	if err != nil {
		httperr.JSON(c, err)
		return
	}

	product := req.toModel()
	if err := h.store.Create(product, req.Force); err != nil {
		httperr.JSON(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// Update replaces every mutable field of the product. There is no partial
// patch: images, specifications, and variants are full arrays.
func (h *Handler) Update(c *gin.Context) {
	req, err := bindProduct(c)
	if err != nil {
		httperr.JSON(c, err)
		return
	}

	product, err := h.store.Update(c.Param("id"), req.toModel())
	if err != nil {
		httperr.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}
