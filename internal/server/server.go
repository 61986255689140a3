package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/ComputahSaysNo/catz-court-booking/internal/auth"
	"github.com/ComputahSaysNo/catz-court-booking/internal/booking"
	"github.com/ComputahSaysNo/catz-court-booking/internal/clock"
	"github.com/ComputahSaysNo/catz-court-booking/internal/config"
	"github.com/ComputahSaysNo/catz-court-booking/internal/court"
	"github.com/ComputahSaysNo/catz-court-booking/internal/email"
	"github.com/ComputahSaysNo/catz-court-booking/internal/site"
	"github.com/ComputahSaysNo/catz-court-booking/internal/user"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	courtRepo := court.NewRepository(db)
	userRepo := user.NewRepository(db)
	bookingRepo := booking.NewRepository(db)
	siteRepo := site.NewRepository(db)

	userService := user.NewService(userRepo, cfg.JWTSecret)
	courtService := court.NewService(courtRepo)
	bookingService := booking.NewService(bookingRepo, courtRepo, userRepo, emailService, clock.System())

	userHandler := user.NewHandler(userService)
	courtHandler := court.NewHandler(courtService)
	bookingHandler := booking.NewHandler(bookingService)
	siteHandler := site.NewHandler(siteRepo)

	authMiddleware := auth.Middleware(cfg.JWTSecret)

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.Refresh)
	}

	router.GET("/site", siteHandler.GetSite)
	router.GET("/courts", courtHandler.ListCourts)
	router.GET("/courts/:courtID", courtHandler.GetCourt)
	router.GET("/session", auth.OptionalMiddleware(cfg.JWTSecret), userHandler.GetSession)

	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)
		protected.POST("/bookings", bookingHandler.CreateBooking)
		protected.GET("/bookings", bookingHandler.ListMyBookings)
		protected.DELETE("/bookings/:bookingID", bookingHandler.DeleteBooking)
		protected.GET("/courts/:courtID/bookings", bookingHandler.ListBookingsByCourt)
	}

	admin := router.Group("/")
	admin.Use(authMiddleware, auth.RequireRole(auth.RoleAdmin))
	{
		admin.POST("/courts", courtHandler.CreateCourt)
		admin.PUT("/courts/:courtID", courtHandler.UpdateCourt)
		admin.DELETE("/courts/:courtID", courtHandler.DeleteCourt)
		admin.PUT("/site", siteHandler.UpdateSite)
		admin.GET("/users/:userID/bookings", bookingHandler.ListBookingsByUser)
		admin.GET("/admin/bookings", bookingHandler.ListAllBookings)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
