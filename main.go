package main

import (
	"fmt"
	"log"

	"github.com/kapilkaushal24/restaurant-management-api/configs"
	"github.com/kapilkaushal24/restaurant-management-api/middlewares"
	"github.com/kapilkaushal24/restaurant-management-api/repository"
	"github.com/kapilkaushal24/restaurant-management-api/routes"
	"github.com/kapilkaushal24/restaurant-management-api/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	db, err := configs.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("connect db failed: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if err := configs.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// optional menu cache
	var cache *repository.MenuCache
	if cfg.RedisURL != "" {
		cache, err = repository.NewMenuCache(cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			log.Fatalf("connect redis failed: %v", err)
		}
	}

	tokens := services.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTTTL)

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, routes.Deps{DB: db, Tokens: tokens, Cache: cache})

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
