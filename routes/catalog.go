package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/diwashkafle/mygadgetnepal/controllers/admin"
	productcontroller "github.com/diwashkafle/mygadgetnepal/controllers/product"
)

// SetupCatalogRoutes registers the public storefront reads.
func SetupCatalogRoutes(r *gin.Engine, products *productcontroller.Handler, categories *productcontroller.CategoryHandler, banners *adminController.BannerHandler) {
	r.GET("/products", products.List)
	r.GET("/products/:id", products.Get)
	r.GET("/products/:id/resolve", products.Resolve)
	r.GET("/search", products.Search)

	r.GET("/categories", categories.ListCategories)
	r.GET("/categories/:id", categories.GetCategory)
	r.GET("/subcategories", categories.ListSubcategories)

	r.GET("/banners", banners.ListActive)
}
