package main

import (
	"fmt"
	"log"

	"github.com/Deepanghsh/Smart-Ward-Admin/configs"
	"github.com/Deepanghsh/Smart-Ward-Admin/middlewares"
	"github.com/Deepanghsh/Smart-Ward-Admin/routes"
	"github.com/Deepanghsh/Smart-Ward-Admin/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectDB(cfg)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if cfg.SeedDemo {
		if err := configs.SeedDemoData(); err != nil {
			log.Fatalf("seed demo data failed: %v", err)
		}
	}

	// real-time event hub
	hub := ws.NewHub()
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
