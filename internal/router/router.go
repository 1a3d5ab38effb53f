package router

import (
	"time"

	"islandhop/config"
	"islandhop/internal/handler"
	"islandhop/internal/middleware"
	"islandhop/internal/repository"
	"islandhop/internal/service"
	"islandhop/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	// Skip gin.Logger() to reduce log noise; use gin.Default() if you need request logging
	r.Use(middleware.RateLimit(middleware.NewLimiter(100, 60*time.Second)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	tripRepo := repository.NewTripRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	bidRepo := repository.NewBidRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Services
	authSvc := service.NewAuthService(cfg, userRepo)
	bookingSvc := service.NewBookingService(tripRepo, userRepo, bookingRepo)
	bidSvc := service.NewBidService(bidRepo, tripRepo, userRepo)
	requestSvc := service.NewRequestService(requestRepo, userRepo)
	subSvc := service.NewSubscriptionService(subRepo, userRepo)
	adminSvc := service.NewAdminService(userRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc, userRepo)
	tripHandler := handler.NewTripHandler(tripRepo)
	bookingHandler := handler.NewBookingHandler(bookingSvc, bookingRepo)
	bidHandler := handler.NewBidHandler(bidSvc)
	requestHandler := handler.NewRequestHandler(requestSvc)
	subHandler := handler.NewSubscriptionHandler(subSvc, subRepo)
	adminHandler := handler.NewAdminHandler(adminSvc, subSvc, userRepo, subRepo, bookingRepo, auditRepo, adminRepo)
	uploadHandler := handler.NewUploadHandler(cloud)

	authMw := middleware.AuthRequired(&cfg.JWT)

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/me", authMw, authHandler.Me)
		}

		// Public marketplace: tourists browse and book without accounts.
		api.GET("/trips", tripHandler.Search)
		api.GET("/trips/:id", tripHandler.Detail)
		api.GET("/islands", tripHandler.Islands)
		api.POST("/bookings", bookingHandler.Create)
		api.GET("/bookings/code/:code", bookingHandler.LookupByCode)
		api.POST("/bids", bidHandler.Create)
		api.POST("/requests", requestHandler.Create)

		provider := api.Group("/provider")
		provider.Use(authMw)
		{
			provider.POST("/trips", tripHandler.Create)
			provider.PUT("/trips/:id", tripHandler.Update)
			provider.GET("/trips", tripHandler.ListMine)
			provider.GET("/bookings", bookingHandler.ListMine)
			provider.PUT("/bookings/:id/status", bookingHandler.UpdateStatus)
			provider.GET("/bids", bidHandler.ListMine)
			provider.PUT("/bids/:id/respond", bidHandler.Respond)
			provider.GET("/requests", requestHandler.ListOpen)
			provider.POST("/requests/:id/respond", requestHandler.Respond)
			provider.POST("/subscription/offline-payment", subHandler.SubmitOfflinePayment)
			provider.GET("/subscription/payments", subHandler.ListMine)
			provider.POST("/upload", uploadHandler.UploadImage)
		}

		admin := api.Group("/admin")
		admin.Use(authMw, middleware.AdminRequired())
		{
			admin.GET("/providers", adminHandler.ListProviders)
			admin.PUT("/providers/:id/subscription", adminHandler.UpdateProviderSubscription)
			admin.GET("/transactions/pending", adminHandler.ListPendingTransactions)
			admin.PUT("/transactions/:id/review", adminHandler.ReviewTransaction)
			admin.GET("/bookings", adminHandler.ListBookings)
			admin.GET("/stats", adminHandler.Stats)
			admin.GET("/audit-log", adminHandler.AuditLog)
		}
	}

	return r
}
