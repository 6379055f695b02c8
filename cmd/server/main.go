package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env file loader
	"github.com/labstack/echo/v4" // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/user-item-service/internal/apperr"     // centralized error translation
	"github.com/iliyamo/user-item-service/internal/config"     // internal config loader
	"github.com/iliyamo/user-item-service/internal/database"   // MySQL pool
	"github.com/iliyamo/user-item-service/internal/handler"    // HTTP handlers
	"github.com/iliyamo/user-item-service/internal/middleware" // response cache
	"github.com/iliyamo/user-item-service/internal/repository" // DB repositories
	"github.com/iliyamo/user-item-service/internal/router"     // route registration
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded, relying on environment")
	}
	cfg := config.Load()

	// A store that cannot be reached at startup is fatal; failing fast
	// beats serving requests that can never succeed.
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	users := repository.NewUserRepo(db)
	items := repository.NewItemRepo(db)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = apperr.HTTPErrorHandler()
	e.Use(echomw.Logger())  // request logging
	e.Use(echomw.Recover()) // panic recovery
	e.Use(echomw.CORS())    // browser clients live on a different origin

	// Redis-backed GET cache; degrades to passthrough when Redis is down.
	cacheGET := middleware.NewRedisCache(config.LoadCacheConfig(), config.NewRedisClient())

	router.Register(e,
		handler.NewAuthHandler(cfg, users),
		handler.NewUserHandler(cfg, users),
		handler.NewItemHandler(items),
		cfg.JWTSecret,
		cacheGET,
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
