package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"studio-booking-server/config"
	"studio-booking-server/database"
	"studio-booking-server/jobs"
	"studio-booking-server/middleware"
	"studio-booking-server/routes"
	"studio-booking-server/storage"
	ws "studio-booking-server/websocket"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration
	config.Load()

	// Initialize database (runs migrations)
	if err := database.Initialize(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	// Seed the initial admin account when none exists
	if err := seedDefaultAdmin(); err != nil {
		log.Printf("⚠️ Failed to seed default admin: %v", err)
	}

	// Set Gin mode
	if config.AppConfig.Server.GinMode == "release" || os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// WebSocket hub for the admins room + notifier feeding it
	hub := ws.NewHub()
	go hub.Run()
	routes.Notifier = ws.NewNotifier(hub)

	// Object storage for gallery and studio assets
	if store, err := storage.NewS3Store(context.Background()); err != nil {
		log.Printf("⚠️ S3 storage unavailable, media endpoints degraded: %v", err)
	} else {
		routes.Media = store
	}

	// Create router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Studio Booking Server is running",
			"time":    time.Now().UTC(),
		})
	})

	// WebSocket endpoint (token via query parameter)
	router.GET("/ws", routes.ServeWS(hub))

	api := router.Group("/api")
	{
		// Admin auth (rate limited)
		auth := api.Group("/auth")
		auth.Use(middleware.AuthRateLimitMiddleware())
		auth.POST("/login", routes.Login)

		// Client auth and password setup (rate limited)
		clientAuth := api.Group("/client-auth")
		clientAuth.Use(middleware.AuthRateLimitMiddleware())
		clientAuth.POST("/login", routes.ClientLogin)
		clientAuth.POST("/forgot-password", routes.ForgotPassword)
		clientAuth.POST("/create-password", routes.CreatePassword)
		clientAuth.POST("/reset-password", routes.ResetPassword)

		// Client portal (client bearer token)
		client := api.Group("/client")
		client.Use(middleware.ClientAuthMiddleware())
		client.GET("/bookings", routes.GetClientBookings)

		// Public booking enquiry from the website
		api.POST("/booking", routes.CreateBooking)

		// Webhook-style payment announcement (no auth, no payment row)
		api.POST("/payments/notify", routes.NotifyPayment)

		// Public gallery browsing
		public := api.Group("/public")
		public.GET("/albums/recent", routes.PublicRecentAlbums)
		public.GET("/albums/category/:category", routes.PublicAlbumsByCategory)
		public.GET("/albums/gallery/:galleryId", routes.PublicAlbumsByGallery)
		public.GET("/media/album/:albumId", routes.PublicMediaByAlbum)

		// Studio details are readable without auth for the website
		api.GET("/studio/studio-details", routes.GetStudioDetails)

		// Admin-protected routes
		admin := api.Group("")
		admin.Use(middleware.AuthMiddleware())
		{
			adminGroup := admin.Group("/admin")
			adminGroup.GET("/me", routes.GetCurrentAdmin)
			adminGroup.PUT("/profile", routes.UpdateProfile)
			adminGroup.POST("/avatar", routes.UploadAvatar)
			adminGroup.GET("/sessions", routes.ListSessions)
			adminGroup.PUT("/password", routes.ChangePassword)

			events := admin.Group("/events")
			events.GET("", routes.GetAllEvents)
			events.POST("", routes.CreateEvent)
			events.PUT("/:eventId", routes.UpdateEvent)
			events.PUT("/:eventId/amount", routes.UpdateAmount)
			events.POST("/:eventId/assign-staff", routes.AssignStaff)
			events.PUT("/:eventId/staff/:staffId", routes.UpdateEventStaff)
			events.DELETE("/:eventId/staff/:staffId", routes.RemoveEventStaff)
			events.POST("/:eventId/cancel", routes.CancelEvent)

			payments := admin.Group("/payments")
			payments.POST("/record", routes.RecordPayment)
			payments.GET("/event/:eventId", routes.ListPaymentsByEvent)

			notifications := admin.Group("/notifications")
			notifications.GET("", routes.GetNotifications)
			notifications.PUT("/:id/read", routes.MarkNotificationRead)

			staff := admin.Group("/staff")
			staff.GET("", routes.GetAllStaff)
			staff.POST("", routes.CreateStaff)
			staff.PUT("/:id", routes.UpdateStaff)
			staff.PATCH("/:id/status", routes.ChangeStaffStatus)

			clients := admin.Group("/clients")
			clients.GET("", routes.GetAllClients)
			clients.POST("", routes.CreateClient)
			clients.PUT("/:id", routes.UpdateClient)

			albums := admin.Group("/albums")
			albums.POST("", routes.CreateAlbum)
			albums.POST("/upload", routes.UploadMedia)
			albums.PUT("/update-full/:id", routes.UpdateAlbumFull)
			albums.GET("/media", routes.GetAllMedia)
			albums.GET("/media/album/:albumId", routes.GetMediaByAlbum)
			albums.GET("/recent", routes.GetRecentAlbums)
			albums.DELETE("/:id", routes.DeleteAlbum)

			media := admin.Group("/media")
			media.DELETE("/:id", routes.DeleteMedia)

			cat := admin.Group("/cat")
			cat.GET("/categories", routes.GetCategories)
			cat.GET("/labels/:category", routes.GetLabelsByCategory)

			studio := admin.Group("/studio")
			studio.POST("/studio-profile", routes.CreateStudioProfile)
			studio.PUT("/studio-profile", routes.UpdateStudioProfile)
		}
	}

	// Start background jobs
	cleanup := jobs.StartTokenCleanupJob()
	defer cleanup.Stop()

	port := config.AppConfig.Server.Port
	log.Printf("Server starting on port %s", port)
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
