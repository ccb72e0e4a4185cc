package routes

import (
	"net/http"
	"time"

	"lilac/handlers"
	"lilac/middleware"
	"lilac/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterCheckoutRoutes registers checkout endpoints. Authentication is
// optional here: guests check out too, personalization only engages for
// resolved customers.
func RegisterCheckoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/checkout")
	{
		api.Use(middleware.CustomerAuthMiddleware())
		api.GET("/fields", hb.GetCheckoutFieldsHandler)
		api.POST("", hb.SubmitCheckoutHandler)
	}
}

// RegisterCustomerRoutes registers customer authentication endpoints.
func RegisterCustomerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/customers")
	{
		api.POST("/signin", hb.SignInHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.GET("/notices", hb.GetNoticesHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterMetricsRoute exposes Prometheus metrics.
func RegisterMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCheckoutRoutes(r, hb)
	RegisterCustomerRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterMetricsRoute(r)
}
