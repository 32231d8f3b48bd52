package main

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"atelier/cache"
	"atelier/cart"
	"atelier/catalog"
	"atelier/routes"
	"atelier/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New()

	allow := os.Getenv("ALLOW_ORIGINS")
	if strings.TrimSpace(allow) == "" {
		allow = "http://127.0.0.1:5500,http://localhost:5500,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     allow,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Set-Cookie",
		AllowCredentials: true,
	}))

	app.Static("/static", "./static")

	ttl := 30 * time.Second
	if v := os.Getenv("CACHE_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttl = time.Duration(n) * time.Second
		}
	}

	svc := catalog.NewService(store.NewPostgresStore(), cache.New(ttl))
	carts := cart.NewManager()

	routes.RegisterRoutes(app, svc, carts)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Fatal(app.Listen(":" + port))
}
