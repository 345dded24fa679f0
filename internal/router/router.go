package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/classforge/classroom-backend/internal/config"
	"github.com/classforge/classroom-backend/internal/handler"
	"github.com/classforge/classroom-backend/internal/middleware"
	"github.com/classforge/classroom-backend/internal/response"
	"github.com/classforge/classroom-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth   *handler.AuthHandler
	User   *handler.UserHandler
	Class  *handler.ClassHandler
	Roster *handler.RosterHandler
	WS     *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	enrollmentService *service.EnrollmentService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for auth routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)

		// Authenticated profile routes
		auth.POST("/logout", middleware.RequireUserJWT(authService), handlers.Auth.Logout)
		auth.GET("/me", middleware.RequireUserJWT(authService), middleware.CheckSingleSession(authService), handlers.Auth.Me)
	}

	// ─── 2. User Group (JWT + Single Session) ──────────────────────────
	userAPI := router.Group("/api/v1")
	userAPI.Use(
		middleware.RequireUserJWT(authService),
		middleware.CheckSingleSession(authService),
	)
	{
		// The class catalog changes rarely; let clients cache it briefly.
		catalogCache := middleware.CacheControl(60)
		userAPI.GET("/classes", catalogCache, handlers.Class.ListClasses)
		userAPI.GET("/classes/:class_number", catalogCache, handlers.Class.GetClass)
		userAPI.GET("/classes/:class_number/roster", handlers.Roster.ListRoster)

		userAPI.GET("/enrollments", handlers.Roster.MyEnrollments)
		userAPI.POST("/enrollments/redeem", handlers.Roster.RedeemJoinCode)

		// Roster mutations require the instructor flag in the class (or admin).
		instructorOnly := middleware.RequireClassInstructor(enrollmentService)
		userAPI.POST("/classes/:class_number/students", instructorOnly, handlers.Roster.AddStudent)
		userAPI.POST("/classes/:class_number/instructors", instructorOnly, handlers.Roster.AddInstructor)
		userAPI.DELETE("/classes/:class_number/roster/:user_id", instructorOnly, handlers.Roster.RemoveUser)
		userAPI.POST("/classes/:class_number/join-codes", instructorOnly, handlers.Roster.IssueJoinCode)
	}

	// ─── 3. WebSocket Group (WS Auth) ──────────────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireWSAuth(authService))
	{
		ws.GET("/enrollments/feed", handlers.WS.EnrollmentFeed)
	}

	// ─── 4. Admin Group (JWT + Admin Flag) ─────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(middleware.RequireAdminJWT(authService))
	{
		// User management
		adminAPI.GET("/users", handlers.User.ListUsers)
		adminAPI.POST("/users", handlers.User.CreateUser)
		adminAPI.GET("/users/:id", handlers.User.GetUser)
		adminAPI.PUT("/users/:id", handlers.User.UpdateUser)
		adminAPI.DELETE("/users/:id", handlers.User.DeleteUser)
		adminAPI.POST("/users/:id/reset-session", handlers.User.ResetUserSession)

		// Class management
		adminAPI.POST("/classes", handlers.Class.CreateClass)
		adminAPI.PUT("/classes/:class_number", handlers.Class.UpdateClass)
		adminAPI.DELETE("/classes/:class_number", handlers.Class.DeleteClass)
	}

	return router
}
