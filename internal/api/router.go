package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doualadrive/backend-go/internal/config"
	"github.com/doualadrive/backend-go/internal/handler"
	"github.com/doualadrive/backend-go/internal/middleware"
)

// SetupRouter wires all route groups. The catalogue reads and the image
// retrieval are public behind the rate limiter; configurations are open;
// vehicle and article writes need the admin realm role; the user endpoints
// need the user realm role and run behind lazy provisioning.
func SetupRouter(
	cfg *config.Config,
	publicHandler *handler.PublicHandler,
	vehicleHandler *handler.VehicleHandler,
	articleHandler *handler.ArticleHandler,
	configurationHandler *handler.ConfigurationHandler,
	userHandler *handler.UserHandler,
	keycloak *middleware.KeycloakMiddleware,
	limiter middleware.RateLimiter,
	logger *slog.Logger,
) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies(nil)

	base := r.Group("/" + cfg.APIPrefix)

	base.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	base.GET("/images/:filename", publicHandler.GetImage)

	// Public catalogue routes
	public := base.Group("/public")
	public.Use(middleware.Limit(limiter, logger))
	{
		public.GET("/vehicles", publicHandler.ListVehicles)
		public.GET("/vehicles/:nameOrBrand", publicHandler.SearchVehicles)
		public.GET("/vehicles/category/:categoryName", publicHandler.ListVehiclesByCategory)
		public.GET("/articles", publicHandler.ListArticles)
		public.GET("/articles/:slug", publicHandler.GetArticleBySlug)
		public.GET("/articles/user/:userId", publicHandler.ListArticlesByAuthor)
		public.GET("/categories/vehicles", publicHandler.ListVehicleCategories)
		public.GET("/statuses/vehicles", publicHandler.ListVehicleStatuses)
		public.GET("/categories/articles", publicHandler.ListArticleCategories)
		public.GET("/statuses/articles", publicHandler.ListArticleStatuses)
		public.GET("/tags", publicHandler.ListTags)
	}

	// Agency configuration routes
	configurations := base.Group("/configurations")
	{
		configurations.GET("", configurationHandler.List)
		configurations.GET("/:name", configurationHandler.GetByName)
		configurations.POST("", configurationHandler.CreateOrUpdate)
		configurations.DELETE("/:id", configurationHandler.Delete)
	}

	// Admin-gated write routes
	vehicles := base.Group("/vehicles")
	vehicles.Use(keycloak.RequireRealmRole("admin"))
	{
		vehicles.POST("", vehicleHandler.CreateOrUpdate)
		vehicles.POST("/upload", vehicleHandler.Upload)
		vehicles.PATCH("/:id/status", vehicleHandler.UpdateStatus)
		vehicles.DELETE("/:id", vehicleHandler.Delete)
	}

	articles := base.Group("/articles")
	articles.Use(keycloak.RequireRealmRole("admin"))
	{
		articles.POST("", articleHandler.CreateOrUpdate)
		articles.POST("/upload", articleHandler.Upload)
		articles.PATCH("/:id/status", articleHandler.UpdateStatus)
		articles.DELETE("/:id", articleHandler.Delete)
	}

	// Authenticated user routes with lazy provisioning
	users := base.Group("/users")
	users.Use(keycloak.RequireRealmRole("user"), keycloak.ProvisionUser())
	{
		users.GET("", userHandler.List)
		users.GET("/:username", userHandler.GetByUsername)
		users.PATCH("/:id", userHandler.UpdateProfile)
		users.POST("/:id/profile-picture", userHandler.UploadProfilePicture)
		users.DELETE("/:id", userHandler.Delete)
	}

	return r
}
