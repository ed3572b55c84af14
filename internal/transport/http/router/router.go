package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"eventplanner-api/internal/core/auth"
	"eventplanner-api/internal/domain"
	"eventplanner-api/internal/transport/http/handler"
	mdw "eventplanner-api/internal/transport/http/middleware"
)

type Handlers struct {
	Auth     *handler.AuthHandler
	Inquiry  *handler.InquiryHandler
	Feedback *handler.FeedbackHandler
	Admin    *handler.AdminHandler
}

// New assembles the engine: ambient middleware chain, then the route
// table with its public / authenticated / admin tiers.
func New(l *zap.Logger, jwter *auth.JWTer, users domain.UserRepository, clientOrigin string, h Handlers) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.New(cors.Config{
			AllowOrigins:     []string{clientOrigin},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
	)

	r.GET("/", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"message": "API is running..."}) })
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authed := mdw.Authenticate(jwter, users)
	adminOnly := mdw.RequireAdmin()

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/register-first-admin", h.Auth.RegisterFirstAdmin)
		authGroup.POST("/register", authed, adminOnly, h.Auth.Register)
		authGroup.GET("/me", authed, h.Auth.Me)
		authGroup.GET("/verify", authed, h.Auth.Me)
	}

	inquiries := api.Group("/inquiries")
	{
		inquiries.POST("", h.Inquiry.Create)
		inquiries.GET("", authed, adminOnly, h.Inquiry.List)
		inquiries.PUT("/:id/status", authed, adminOnly, h.Inquiry.UpdateStatus)
		inquiries.DELETE("/:id", authed, adminOnly, h.Inquiry.Delete)
	}

	feedbacks := api.Group("/feedbacks")
	{
		feedbacks.POST("", h.Feedback.Create)
		feedbacks.GET("", h.Feedback.List)
		feedbacks.GET("/featured", h.Feedback.ListFeatured)
		feedbacks.GET("/:id", authed, adminOnly, h.Feedback.Get)
		feedbacks.PUT("/:id", authed, adminOnly, h.Feedback.Update)
		feedbacks.PUT("/:id/featured", authed, adminOnly, h.Feedback.SetFeatured)
		feedbacks.DELETE("/:id", authed, adminOnly, h.Feedback.Delete)
	}

	admin := api.Group("/admin", authed, adminOnly)
	{
		admin.GET("/dashboard", h.Admin.Dashboard)
		// aliases the SPA admin pages use
		admin.GET("/inquiries", h.Inquiry.List)
		admin.GET("/feedbacks", h.Feedback.List)
		admin.PUT("/inquiries/:id/status", h.Inquiry.UpdateStatus)
	}

	return r
}
