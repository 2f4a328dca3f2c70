package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"cms-backend/controllers"
	"cms-backend/middleware"
	"cms-backend/utils"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Controllers bundles everything SetupRouter wires up.
type Controllers struct {
	Health        *controllers.HealthController
	Auth          *controllers.AuthController
	Rooms         *controllers.RoomController
	RoomTypes     *controllers.RoomTypeController
	RoomAmenities *controllers.RoomAmenityController
	RoomImages    *controllers.RoomImageController

	Images         *controllers.ResourceController
	Accommodations *controllers.ResourceController
	Buttons        *controllers.ResourceController
	Popup          *controllers.ResourceController
	Parallax       *controllers.ResourceController
	Pages          *controllers.ResourceController
	ActivityLog    *controllers.ResourceController
}

func mountResource(g *gin.RouterGroup, path string, rc *controllers.ResourceController) {
	grp := g.Group(path)
	grp.GET("", rc.List)
	grp.GET("/:id", rc.Get)
	grp.POST("", rc.Create)
	grp.PUT("/:id", rc.Update)
	grp.DELETE("/:id", rc.Delete)
}

func SetupRouter(ctl Controllers, apiKey string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-API-Key", "X-Session-Data", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		utils.JSONError(c, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})
	r.NoRoute(func(c *gin.Context) {
		utils.JSONNotFound(c, "API endpoint")
	})

	api := r.Group("/api")
	{
		api.GET("/health", ctl.Health.Health)

		// Login must be reachable anonymously; GET reports session status.
		auth := api.Group("/auth")
		{
			auth.POST("", ctl.Auth.Login)
			auth.GET("", ctl.Auth.Status)
			auth.DELETE("", ctl.Auth.Logout)
		}

		protected := api.Group("", middleware.RequireAuth(apiKey))
		{
			mountResource(protected, "/images", ctl.Images)
			mountResource(protected, "/accommodations", ctl.Accommodations)
			mountResource(protected, "/buttons", ctl.Buttons)
			mountResource(protected, "/popup", ctl.Popup)
			mountResource(protected, "/parallax", ctl.Parallax)
			mountResource(protected, "/pages", ctl.Pages)

			rooms := protected.Group("/rooms")
			{
				rooms.GET("", ctl.Rooms.List)
				rooms.GET("/:id", ctl.Rooms.Get)
				rooms.POST("", ctl.Rooms.Create)
				rooms.PUT("/:id", ctl.Rooms.Update)
				rooms.DELETE("/:id", ctl.Rooms.Delete)
			}

			roomTypes := protected.Group("/room-types")
			{
				roomTypes.GET("", ctl.RoomTypes.List)
				roomTypes.GET("/:id", ctl.RoomTypes.Get)
				roomTypes.POST("", ctl.RoomTypes.Create)
				roomTypes.PUT("/:id", ctl.RoomTypes.Update)
				roomTypes.DELETE("/:id", ctl.RoomTypes.Delete)
			}

			roomAmenities := protected.Group("/room-amenities")
			{
				roomAmenities.GET("", ctl.RoomAmenities.List)
				roomAmenities.GET("/:id", ctl.RoomAmenities.Get)
				roomAmenities.POST("", ctl.RoomAmenities.Create)
				roomAmenities.PUT("/:id", ctl.RoomAmenities.Update)
				roomAmenities.DELETE("/:id", ctl.RoomAmenities.Delete)
			}

			// room-images deletes by (room_id, image_id) in the body; no PUT.
			roomImages := protected.Group("/room-images")
			{
				roomImages.GET("", ctl.RoomImages.List)
				roomImages.POST("", ctl.RoomImages.Create)
				roomImages.DELETE("", ctl.RoomImages.Delete)
			}

			activityLog := protected.Group("/activity-log")
			{
				activityLog.GET("", ctl.ActivityLog.List)
				activityLog.GET("/:id", ctl.ActivityLog.Get)
			}
		}
	}

	return r
}
