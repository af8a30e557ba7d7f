package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diwashkafle/mygadgetnepal/config"
	adminController "github.com/diwashkafle/mygadgetnepal/controllers/admin"
	mediaControllers "github.com/diwashkafle/mygadgetnepal/controllers/media"
	orderControllers "github.com/diwashkafle/mygadgetnepal/controllers/order"
	productcontroller "github.com/diwashkafle/mygadgetnepal/controllers/product"
	userControllers "github.com/diwashkafle/mygadgetnepal/controllers/user"
	"github.com/diwashkafle/mygadgetnepal/models"
	"github.com/diwashkafle/mygadgetnepal/storage"
)

// SetupRoutes wires every route group against handlers built on the shared
// DB handle and image store.
func SetupRoutes(r *gin.Engine, db *gorm.DB, images storage.ImageStore, cfg config.Config) {
	events := orderControllers.NewEventHub()

	orders := orderControllers.NewHandler(
		models.NewOrdersRepository(db),
		orderControllers.CaptureLessPolicy{},
		events,
		cfg.VerifyTotals,
	)
	products := productcontroller.NewHandler(models.NewProductsRepository(db), images)
	categories := productcontroller.NewCategoryHandler(
		models.NewCategoriesRepository(db),
		models.NewSubcategoriesRepository(db),
	)
	banners := adminController.NewBannerHandler(models.NewBannersRepository(db))
	media := mediaControllers.NewHandler(images)
	users := userControllers.NewHandler(models.NewUsersRepository(db), cfg.IsAdminEmail)

	SetupCatalogRoutes(r, products, categories, banners)
	SetupOrderRoutes(r, orders)
	SetupUserRoutes(r, users)
	SetupAdminRoutes(r, cfg.AdminAPIKey, orders, products, categories, banners, media, users, events)
}
