package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thdihan/rangva-server/internal/config"
	"github.com/thdihan/rangva-server/internal/database/models"
	"github.com/thdihan/rangva-server/internal/database/service"
	"github.com/thdihan/rangva-server/internal/handler"
	"github.com/thdihan/rangva-server/internal/middleware"
	"github.com/thdihan/rangva-server/internal/response"
)

// Handlers bundles everything SetupRouter wires into the engine.
type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Admin    *handler.AdminHandler
	Category *handler.CategoryHandler
	Product  *handler.ProductHandler
	Gallery  *handler.GalleryHandler
}

func SetupRouter(
	cfg *config.Config,
	h Handlers,
	authService service.AuthService,
	logger *slog.Logger,
) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies(nil)

	adminOnly := middleware.Auth(authService, logger,
		models.RoleSuperAdmin, models.RoleAdmin)
	anyUser := middleware.Auth(authService, logger,
		models.RoleSuperAdmin, models.RoleAdmin, models.RoleDoctor, models.RolePatient)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Server is running"})
	})
	r.GET("/api/v1/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Locally stored gallery and profile images
	r.Static("/uploads", cfg.LocalUploadPath)

	authGroup := r.Group("/api/v1/auth")
	{
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/refresh", h.Auth.RefreshToken)
		authGroup.POST("/change-password", anyUser, h.Auth.ChangePassword)
		authGroup.POST("/forgot-password", anyUser, h.Auth.ForgotPassword)
		authGroup.POST("/reset-password", h.Auth.ResetPassword)
	}

	userGroup := r.Group("/api/v1/user")
	{
		userGroup.GET("", adminOnly, h.User.List)
		userGroup.POST("/create-admin", adminOnly, h.User.CreateAdmin)
		userGroup.POST("/create-doctor", adminOnly, h.User.CreateDoctor)
		userGroup.POST("/status/:id", adminOnly, h.User.UpdateStatus)
		userGroup.GET("/me", anyUser, h.User.GetMe)
		userGroup.PATCH("/update-me", anyUser, h.User.UpdateMe)
	}

	adminGroup := r.Group("/api/v1/admin", adminOnly)
	{
		adminGroup.GET("", h.Admin.List)
		adminGroup.GET("/:id", h.Admin.Get)
		adminGroup.PATCH("/:id", h.Admin.Update)
		adminGroup.DELETE("/:id", h.Admin.Delete)
		adminGroup.DELETE("/:id/soft", h.Admin.SoftDelete)
	}

	categoryGroup := r.Group("/api/v1/category")
	{
		categoryGroup.POST("", adminOnly, h.Category.Create)
		categoryGroup.GET("", h.Category.List)
		categoryGroup.GET("/:id", h.Category.Get)
		categoryGroup.PATCH("/:id", adminOnly, h.Category.Update)
		categoryGroup.DELETE("/:id", adminOnly, h.Category.Delete)
	}

	// The slug lookup lives on its own prefix because gin's router does not
	// allow a static segment next to the :id wildcard.
	productGroup := r.Group("/api/v1/product")
	{
		productGroup.POST("", adminOnly, h.Product.Create)
		productGroup.GET("", h.Product.List)
		productGroup.GET("/:id", h.Product.Get)
		productGroup.GET("/:id/related", h.Product.Related)
		productGroup.PATCH("/:id", adminOnly, h.Product.Update)
		productGroup.PATCH("/:id/stock", adminOnly, h.Product.UpdateStock)
		productGroup.DELETE("/:id", adminOnly, h.Product.Delete)
		productGroup.POST("/:id/variants", adminOnly, h.Product.CreateVariant)
		productGroup.GET("/:id/variants", h.Product.GetVariants)
		productGroup.POST("/:id/reviews", h.Product.CreateReview)
		productGroup.GET("/:id/reviews", h.Product.GetReviews)
	}
	r.GET("/api/v1/product-slug/:slug", h.Product.GetBySlug)

	variantGroup := r.Group("/api/v1/variant", adminOnly)
	{
		variantGroup.PATCH("/:id", h.Product.UpdateVariant)
		variantGroup.DELETE("/:id", h.Product.DeleteVariant)
	}

	tagGroup := r.Group("/api/v1/tag")
	{
		tagGroup.POST("", adminOnly, h.Product.CreateTag)
		tagGroup.GET("", h.Product.ListTags)
		tagGroup.PATCH("/:id", adminOnly, h.Product.UpdateTag)
		tagGroup.DELETE("/:id", adminOnly, h.Product.DeleteTag)
	}

	reviewGroup := r.Group("/api/v1/review", adminOnly)
	{
		reviewGroup.PATCH("/:id/status", h.Product.UpdateReviewStatus)
		reviewGroup.DELETE("/:id", h.Product.DeleteReview)
	}

	galleryGroup := r.Group("/api/v1/gallery")
	{
		galleryGroup.POST("/upload", adminOnly, h.Gallery.Upload)
		galleryGroup.POST("/bulk-delete", adminOnly, h.Gallery.BulkDelete)
		galleryGroup.GET("", h.Gallery.List)
		galleryGroup.GET("/:id", h.Gallery.Get)
		galleryGroup.PATCH("/:id", adminOnly, h.Gallery.Update)
		galleryGroup.DELETE("/:id", adminOnly, h.Gallery.Delete)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, response.Envelope{
			Success: false,
			Message: "API NOT FOUND",
			Error: gin.H{
				"path":    c.Request.URL.Path,
				"message": "Your requested path is not found!",
			},
		})
	})

	return r
}
