package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/Novxi/sislyotel/internal/config"
	"github.com/Novxi/sislyotel/internal/handler"
	"github.com/Novxi/sislyotel/internal/middleware"
)

// RegisterRoutes wires every endpoint of the API onto the provided Echo
// instance.  The public group carries the rate limiter; the admin group is
// trusted and carries none.  rdb may be nil, which disables rate limiting.
func RegisterRoutes(e *echo.Echo, pub *handler.PublicHandler, admin *handler.AdminHandler, rlCfg config.RateLimitConfig, rdb *redis.Client) {
	// The booking form is served from a separate origin.
	e.Use(echomw.CORS())

	api := e.Group("/api")
	api.GET("/health", handler.Health)

	// Guest-facing submission endpoint.
	public := api.Group("/public")
	public.POST("/reservations", pub.CreateReservation, middleware.RateLimit(rlCfg, rdb))

	// Staff endpoints.
	adm := api.Group("/admin")
	adm.GET("/reservations", admin.ListReservations)
	adm.GET("/reservations/:id", admin.GetReservation)
	adm.PATCH("/reservations/:id", admin.UpdateReservation)
	adm.DELETE("/reservations/:id", admin.DeleteReservation)
	adm.POST("/reservations/cleanup-expired", admin.CleanupExpired)
}
