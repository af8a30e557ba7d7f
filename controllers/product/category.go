package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diwashkafle/mygadgetnepal/httperr"
	"github.com/diwashkafle/mygadgetnepal/models"
)

type CategoryStore interface {
	Create(c *models.Category) error
	GetByID(id string) (*models.Category, error)
	Update(id string, name, description string) (*models.Category, error)
	Delete(id string) error
	List() ([]models.Category, error)
}

type SubcategoryStore interface {
	Create(s *models.Subcategory) error
	Update(id string, name string) (*models.Subcategory, error)
	Delete(id string) error
	List(categoryID string) ([]models.Subcategory, error)
}

type CategoryHandler struct {
	categories    CategoryStore
	subcategories SubcategoryStore
}

func NewCategoryHandler(categories CategoryStore, subcategories SubcategoryStore) *CategoryHandler {
	return &CategoryHandler{categories: categories, subcategories: subcategories}
}

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type subcategoryRequest struct {
	Name       string `json:"name"`
	CategoryID string `json:"categoryId"`
}

// -------- Categories --------

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" || req.Description == "" {
		httperr.JSON(c, models.NewValidationError("name and description are required"))
		return
	}

	category := &models.Category{Name: req.Name, Description: req.Description}
	if err := h.categories.Create(category); err != nil {
		httperr.JSON(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	category, err := h.categories.GetByID(c.Param("id"))
	if err != nil {
		httperr.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" || req.Description == "" {
		httperr.JSON(c, models.NewValidationError("name and description are required"))
		return
	}

	category, err := h.categories.Update(c.Param("id"), req.Name, req.Description)
	if err != nil {
		httperr.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.categories.Delete(c.Param("id")); err != nil {
		httperr.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categories.List()
	if err != nil {
		httperr.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// -------- Subcategories --------

func (h *CategoryHandler) CreateSubcategory(c *gin.Context) {
	var req subcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" || req.CategoryID == "" {
		httperr.JSON(c, models.NewValidationError("name and categoryId are required"))
		return
	}

	subcategory := &models.Subcategory{Name: req.Name, CategoryID: req.CategoryID}
	if err := h.subcategories.Create(subcategory); err != nil {
		httperr.JSON(c, err)
		return
	}
	c.JSON(http.StatusCreated, subcategory)
}

func (h *CategoryHandler) UpdateSubcategory(c *gin.Context) {
	var req subcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" {
		httperr.JSON(c, models.NewValidationError("name is required"))
		return
	}

	subcategory, err := h.subcategories.Update(c.Param("id"), req.Name)
	if err != nil {
		httperr.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, subcategory)
}

func (h *CategoryHandler) DeleteSubcategory(c *gin.Context) {
	if err := h.subcategories.Delete(c.Param("id")); err != nil {
		httperr.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subcategory deleted successfully"})
}

// ListSubcategories returns every subcategory, or only the children of
// ?categoryId= when given.
func (h *CategoryHandler) ListSubcategories(c *gin.Context) {
	subcategories, err := h.subcategories.List(c.Query("categoryId"))
	if err != nil {
		httperr.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, subcategories)
}
