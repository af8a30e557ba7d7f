package routes

import (
	"github.com/gin-gonic/gin"

	userControllers "github.com/diwashkafle/mygadgetnepal/controllers/user"
	"github.com/diwashkafle/mygadgetnepal/middleware"
)

// SetupUserRoutes registers the profile endpoints. All of them require a
// signed-in caller.
func SetupUserRoutes(r *gin.Engine, users *userControllers.Handler) {
	group := r.Group("/users", middleware.RequireAuth)
	{
		group.POST("/sync", users.Sync)
		group.GET("/me", users.Me)
		group.PATCH("/:id", users.UpdateProfile)
	}
}
