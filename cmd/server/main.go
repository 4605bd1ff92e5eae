package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/Novxi/sislyotel/internal/config"
	"github.com/Novxi/sislyotel/internal/database"
	"github.com/Novxi/sislyotel/internal/handler"
	"github.com/Novxi/sislyotel/internal/repository"
	"github.com/Novxi/sislyotel/internal/router"
)

func main() {
	// .env is optional; real deployments set variables in the environment.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database %s: %v", cfg.DBPath, err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, rate limiting disabled")
	}

	repo := repository.NewReservationRepo(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()

	router.RegisterRoutes(e,
		handler.NewPublicHandler(repo),
		handler.NewAdminHandler(repo),
		config.LoadRateLimitConfig(),
		rdb,
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, db=%s)", addr, cfg.Env, cfg.DBPath)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
