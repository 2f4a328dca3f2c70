package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"cms-backend/config"
	"cms-backend/controllers"
	"cms-backend/routes"
	"cms-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// Required API key (fatal if missing)
	apiKey := os.Getenv("ADMIN_API_KEY")
	if apiKey == "" {
		log.Fatal("❌ ERROR: ADMIN_API_KEY environment variable is not set. Cannot start API.")
	}

	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Wire services
	activityLogger := services.NewActivityLogger(db)
	crud := services.NewCrudService(db, activityLogger)
	authService := services.NewAuthService(db)
	roomService := services.NewRoomService(db, crud, activityLogger)
	roomTypeService := services.NewRoomTypeService(db, crud)
	amenityService := services.NewRoomAmenityService(db, activityLogger)
	roomImageService := services.NewRoomImageService(db, activityLogger)

	ctl := routes.Controllers{
		Health:        controllers.NewHealthController(db),
		Auth:          controllers.NewAuthController(authService),
		Rooms:         controllers.NewRoomController(roomService),
		RoomTypes:     controllers.NewRoomTypeController(crud, roomTypeService),
		RoomAmenities: controllers.NewRoomAmenityController(amenityService),
		RoomImages:    controllers.NewRoomImageController(roomImageService),

		Images:         controllers.NewResourceController(crud, services.ImagesConfig()),
		Accommodations: controllers.NewResourceController(crud, services.AccommodationsConfig()),
		Buttons:        controllers.NewResourceController(crud, services.ButtonsConfig()),
		Popup:          controllers.NewResourceController(crud, services.PopupConfig()),
		Parallax:       controllers.NewResourceController(crud, services.ParallaxConfig()),
		Pages:          controllers.NewResourceController(crud, services.PagesConfig()),
		ActivityLog:    controllers.NewResourceController(crud, services.ActivityLogConfig()),
	}

	router := routes.SetupRouter(ctl, apiKey)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
