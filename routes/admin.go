package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/diwashkafle/mygadgetnepal/controllers/admin"
	mediaControllers "github.com/diwashkafle/mygadgetnepal/controllers/media"
	orderControllers "github.com/diwashkafle/mygadgetnepal/controllers/order"
	productcontroller "github.com/diwashkafle/mygadgetnepal/controllers/product"
	userControllers "github.com/diwashkafle/mygadgetnepal/controllers/user"
	"github.com/diwashkafle/mygadgetnepal/middleware"
)

// SetupAdminRoutes registers the "/admin/*" console surface. Everything is
// behind the shared API key.
func SetupAdminRoutes(
	r *gin.Engine,
	apiKey string,
	orders *orderControllers.Handler,
	products *productcontroller.Handler,
	categories *productcontroller.CategoryHandler,
	banners *adminController.BannerHandler,
	media *mediaControllers.Handler,
	users *userControllers.Handler,
	events *orderControllers.EventHub,
) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey(apiKey))
	{
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orders.List)
			orderAdmin.GET("/export", orders.Export)
			orderAdmin.GET("/ws", events.Handler)
			orderAdmin.GET("/:id", orders.Get)
			orderAdmin.PATCH("/:id", orders.UpdateStatus)
			orderAdmin.DELETE("/:id", orders.Delete)
		}

		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", products.Create)
			productAdmin.GET("/export", products.Export)
			productAdmin.PUT("/:id", products.Update)
			productAdmin.DELETE("/:id", products.Delete)
		}

		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", categories.CreateCategory)
			categoryAdmin.PUT("/:id", categories.UpdateCategory)
			categoryAdmin.DELETE("/:id", categories.DeleteCategory)
		}

		subcategoryAdmin := adminGroup.Group("/subcategories")
		{
			subcategoryAdmin.POST("", categories.CreateSubcategory)
			subcategoryAdmin.PUT("/:id", categories.UpdateSubcategory)
			subcategoryAdmin.DELETE("/:id", categories.DeleteSubcategory)
		}

		bannerAdmin := adminGroup.Group("/banners")
		{
			bannerAdmin.POST("", banners.Create)
			bannerAdmin.GET("", banners.ListAll)
			bannerAdmin.GET("/:id", banners.Get)
			bannerAdmin.PUT("/:id", banners.Update)
			bannerAdmin.DELETE("/:id", banners.Delete)
		}

		mediaAdmin := adminGroup.Group("/media")
		{
			mediaAdmin.POST("", media.Upload)
			mediaAdmin.DELETE("/:fileId", media.Delete)
		}

		adminGroup.GET("/users", users.List)
	}
}
