package routes

import (
	"net/http"
	"time"

	"zora/handlers"
	"zora/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRequestRoutes registers the request lifecycle endpoints.
func RegisterRequestRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/requests")
	{
		api.Use(middleware.JWTAuthMiddleware())

		api.GET("", hb.Query.List)
		api.GET("/:id", hb.Query.Get)
		api.POST("", middleware.RequireRole("client", "admin"), hb.Trip.CreateRequest)

		// Lifecycle transitions.
		api.POST("/:id/dispatch", middleware.RequireRole("admin"), hb.Trip.Dispatch)
		api.POST("/:id/rank", middleware.RequireRole("admin"), hb.Trip.Rank)
		api.POST("/:id/select", middleware.RequireRole("client", "admin"), hb.Trip.SelectOffer)
		api.POST("/:id/reject-offers", middleware.RequireRole("client", "admin"), hb.Trip.RejectOffers)
		api.POST("/:id/pay", middleware.RequireRole("client", "admin"), hb.Trip.Pay)
		api.POST("/:id/release-payout", middleware.RequireRole("admin"), hb.Trip.ReleasePayout)
		api.POST("/:id/complete", middleware.RequireRole("admin"), hb.Trip.Complete)

		// Partner bidding.
		api.POST("/:id/offers", middleware.RequireRole("partner", "admin"), hb.Offer.SubmitOffer)
		api.POST("/:id/offers/:offerId/reject", middleware.RequireRole("admin"), hb.Offer.RejectOffer)

		api.POST("/:id/chat", hb.Trip.Chat)
	}
}

// RegisterAdvisoryRoutes registers the AI advisory endpoints.
func RegisterAdvisoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/advisory")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/:id/itinerary", middleware.RequireRole("client", "admin"), hb.Advisory.Itinerary)
		api.GET("/:id/radar", hb.Advisory.RadarAlert)
		api.GET("/:id/offer-advice", middleware.RequireRole("partner", "admin"), hb.Advisory.OfferAdvice)
		api.POST("/:id/expert-chat", middleware.RequireRole("client", "admin"), hb.Advisory.ExpertChat)
	}
}

// RegisterPartnerRoutes registers partner account endpoints.
func RegisterPartnerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/partners")
	{
		api.POST("/register", hb.Partner.Register)
		api.POST("/login", hb.Partner.Login)

		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.Partner.List)
		api.GET("/:id", hb.Partner.Get)
		api.POST("/logout", hb.Partner.Logout)
		api.PUT("/:id", middleware.RequireRole("partner", "admin"), hb.Partner.Update)
		api.POST("/:id/sign-agreement", middleware.RequireRole("partner", "admin"), hb.Partner.SignAgreement)
		api.DELETE("/:id", middleware.RequireRole("admin"), hb.Partner.Delete)
	}
}

// RegisterClientRoutes registers client account endpoints.
func RegisterClientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/clients")
	{
		api.POST("/register", hb.Client.Register)
		api.POST("/login", hb.Client.Login)

		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", middleware.RequireRole("admin"), hb.Client.List)
		api.GET("/:id", hb.Client.Get)
		api.POST("/logout", hb.Client.Logout)
		api.PUT("/:id", middleware.RequireRole("client", "admin"), hb.Client.Update)
		api.POST("/:id/sign-agreement", middleware.RequireRole("client", "admin"), hb.Client.SignAgreement)
		api.DELETE("/:id", middleware.RequireRole("admin"), hb.Client.Delete)
	}
}

// RegisterFeaturedRoutes registers the featured offer catalog endpoints.
func RegisterFeaturedRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/featured-offers")
	{
		api.GET("", hb.Featured.List)

		api.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole("partner", "admin"))
		api.POST("", hb.Featured.Create)
		api.PUT("/:id", hb.Featured.Update)
		api.DELETE("/:id", hb.Featured.Delete)
	}
}

// RegisterAdminRoutes registers platform governance endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.POST("/login", hb.Admin.Login)

		api.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole("admin"))
		api.GET("/commission-rate", hb.Admin.GetCommissionRate)
		api.PUT("/commission-rate", hb.Admin.SetCommissionRate)
		api.GET("/ledger", hb.Admin.GetLedger)
		api.GET("/metrics", hb.Trip.Metrics)
		api.GET("/notifications", hb.Admin.GetNotifications)
		api.GET("/emails", hb.Admin.GetEmails)
		api.POST("/notifications/read", hb.Admin.MarkNotificationsRead)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Zora"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterRequestRoutes(r, hb)
	RegisterAdvisoryRoutes(r, hb)
	RegisterPartnerRoutes(r, hb)
	RegisterClientRoutes(r, hb)
	RegisterFeaturedRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
