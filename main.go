package main

import (
	"fmt"
	"log"
	"time"

	"github.com/Shaan-kapoor/restaurant-menu-platform/configs"
	"github.com/Shaan-kapoor/restaurant-menu-platform/middlewares"
	"github.com/Shaan-kapoor/restaurant-menu-platform/repository"
	"github.com/Shaan-kapoor/restaurant-menu-platform/routes"
	"github.com/Shaan-kapoor/restaurant-menu-platform/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if cfg.SeedDemo {
		if err := configs.SeedDemo(); err != nil {
			log.Fatalf("seed demo data failed: %v", err)
		}
	}

	// optional role cache
	var roleCache *repository.RoleCache
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		roleCache = repository.NewRoleCache(client, 5*time.Minute)
		log.Println("role cache enabled at", cfg.RedisAddr)
	}

	// optional order events
	var publisher services.OrderEventPublisher
	if cfg.KafkaBroker != "" {
		publisher = services.NewKafkaOrderPublisher(cfg.KafkaBroker)
		log.Println("order events enabled at", cfg.KafkaBroker)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	hub := routes.RegisterRoutes(r, cfg, db, roleCache, publisher)
	go hub.Run()

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
