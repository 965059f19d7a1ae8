package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	amqp "github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"etalase/internal/cache"
	"etalase/internal/config"
	"etalase/internal/handlers"
	"etalase/internal/models"
	"etalase/internal/repositories"
	"etalase/internal/services"
	"etalase/internal/storage"
	"etalase/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Database ---
	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Blob store ---
	mediaStore, err := openStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize media storage: %v", err)
	}

	// --- Optional collaborators: Redis cache and RabbitMQ events ---
	productCache, err := cache.NewProductCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis at %s: %v", cfg.RedisAddr, err)
	}
	if productCache != nil {
		defer productCache.Close()
		log.Println("Product cache enabled")
	}

	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()

		// Audit consumer: log every lifecycle event flowing through the
		// queue. Downstream systems would attach their own consumers here.
		if err := mqClient.ConsumeProductEvents(func(msg amqp.Delivery) error {
			log.Printf("Product event (tag %d): %s", msg.DeliveryTag, msg.Body)
			return nil
		}); err != nil {
			log.Printf("Failed to start product event consumer: %v", err)
		}
	}

	// --- Services and handlers ---
	productRepo := repositories.NewGORMProductRepository(db)
	productService := services.NewProductService(productRepo, mediaStore, productCache, mqClient)

	productHandler := handlers.NewProductHandler(productService)
	uploadHandler := handlers.NewUploadHandler(mediaStore)
	healthHandler := handlers.NewHealthHandler(db, productCache != nil, mqClient != nil)

	// --- Fiber app ---
	app := fiber.New(fiber.Config{
		// Slightly above the upload ceiling so the handler, not the body
		// reader, produces the client-facing rejection.
		BodyLimit: handlers.MaxUploadSize + 1024*1024,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	if cfg.StorageDriver == "local" {
		app.Static(storage.LocalURLPrefix, cfg.UploadDir)
	}

	productHandler.RegisterRoutes(app)
	uploadHandler.RegisterRoutes(app)
	healthHandler.RegisterRoutes(app)

	// --- Start HTTP server ---
	log.Printf("Starting server on %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// openDatabase opens the configured GORM database.
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "postgres":
		return gorm.Open(postgres.Open(cfg.DBDSN), &gorm.Config{})
	default:
		return gorm.Open(sqlite.Open(cfg.DBDSN), &gorm.Config{})
	}
}

// openStorage opens the configured blob store.
func openStorage(cfg *config.Config) (storage.Storage, error) {
	switch cfg.StorageDriver {
	case "cloudinary":
		return storage.NewCloudinaryStorage(cfg.CloudinaryURL, cfg.CloudinaryFolder)
	default:
		return storage.NewLocalStorage(cfg.UploadDir, storage.LocalURLPrefix)
	}
}
