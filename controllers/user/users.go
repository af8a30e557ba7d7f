package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/diwashkafle/mygadgetnepal/httperr"
	"github.com/diwashkafle/mygadgetnepal/middleware"
	"github.com/diwashkafle/mygadgetnepal/models"
)

type UserStore interface {
	Ensure(u *models.User) (*models.User, error)
	GetByID(id string) (*models.User, error)
	UpdateProfile(id, name, phone string) (*models.User, error)
	List() ([]models.User, error)
}

type Handler struct {
	store UserStore
	// isAdmin decides the role granted when a user row is first created.
	isAdmin func(email string) bool
}

func NewHandler(store UserStore, isAdmin func(email string) bool) *Handler {
	return &Handler{store: store, isAdmin: isAdmin}
}

// Sync upserts the caller's user row from the identity token. The
// storefront calls it right after sign-in so later guest-free flows have a
// row to hang orders on.
func (h *Handler) Sync(c *gin.Context) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
		return
	}

	name := ident.Name
	if name == "" {
		name = "Guest User"
	}
	role := models.UserRoleUser
	if h.isAdmin(ident.Email) {
		role = models.UserRoleAdmin
	}

	user, err := h.store.Ensure(&models.User{
		ID:    ident.ID,
		Email: ident.Email,
		Name:  name,
		Role:  role,
	})
	if err != nil {
		httperr.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Me returns the caller's own profile.
func (h *Handler) Me(c *gin.Context) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
		return
	}
	user, err := h.store.GetByID(ident.ID)
	if err != nil {
		httperr.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type updateProfileRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// UpdateProfile edits name and phone on the caller's own account. Editing
// anyone else's profile is refused.
func (h *Handler) UpdateProfile(c *gin.Context) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
		return
	}
	if ident.ID != c.Param("id") {
		httperr.JSON(c, models.UnauthorizedError{Message: "cannot edit another user's profile"})
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.UpdateProfile(ident.ID, req.Name, req.Phone)
	if err != nil {
		httperr.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// List returns every registered user for the admin console.
func (h *Handler) List(c *gin.Context) {
	users, err := h.store.List()
	if err != nil {
		httperr.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
