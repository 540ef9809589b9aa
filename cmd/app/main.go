package main

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/luxewalk/storefront-backend/internal/cart"
	"github.com/luxewalk/storefront-backend/internal/checkout"
	"github.com/luxewalk/storefront-backend/internal/config"
	"github.com/luxewalk/storefront-backend/internal/customer"
	"github.com/luxewalk/storefront-backend/internal/order"
	"github.com/luxewalk/storefront-backend/internal/payment"
	"github.com/luxewalk/storefront-backend/internal/product"
	"github.com/luxewalk/storefront-backend/internal/review"
	"github.com/luxewalk/storefront-backend/internal/shipping"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger)

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()
	bootstrapSchema(db)

	cartStorage := newCartStorage(cfg.RedisURL)
	cartService := cart.NewService(cartStorage)
	cartHandler := cart.NewHandler(cartService)
	cartHandler.RegisterRoutes(app)

	customerService := customer.NewService(customer.NewPostgresRepository(db))
	customerHandler := customer.NewHandler(customerService)
	customerHandler.RegisterRoutes(app)

	orderService := order.NewService(order.NewPostgresRepository(db))

	sessions, err := payment.NewStripeSessions(&payment.StripeConfig{
		SecretKey:  cfg.StripeSecretKey,
		SuccessURL: cfg.BaseURL + "/checkout/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  cfg.BaseURL + "/cart",
		Currency:   "usd",
	})
	if err != nil {
		panic(err)
	}

	sequencer := checkout.NewSequencer(customerService, orderService, sessions, cartService)
	checkoutHandler := checkout.NewHandler(sequencer)
	checkoutHandler.RegisterRoutes(app)

	rateClient := shipping.NewShipEngineClient(cfg.ShipEngineAPIKey, cfg.ShipEngineBaseURL, shipping.DefaultOrigin(), cfg.CarrierIDs)
	shippingHandler := shipping.NewHandler(rateClient)
	shippingHandler.RegisterRoutes(app)

	productHandler := product.NewHandler(product.NewService(product.NewPostgresRepository(db)))
	productHandler.RegisterRoutes(app)

	reviewHandler := review.NewHandler(review.NewService(review.NewPostgresRepository(db)))
	reviewHandler.RegisterRoutes(app)

	// order history and status updates require a token from the identity
	// provider; everything registered above stays public
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
		Filter: func(c *fiber.Ctx) bool {
			return !strings.HasPrefix(c.Path(), "/api/v1/orders")
		},
	}))

	orderHandler := order.NewHandler(orderService)
	orderHandler.RegisterProtectedRoutes(app)

	app.Listen(cfg.Addr)
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Cart-Session",
	}))
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

// newCartStorage prefers Redis when configured and falls back to process
// memory for local development.
func newCartStorage(redisURL string) cart.Storage {
	if redisURL == "" {
		fmt.Printf("warning: REDIS_URL is not set, carts will not survive restarts\n")
		return cart.NewMemoryStorage()
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		panic(err)
	}
	return cart.NewRedisStorage(redis.NewClient(opts))
}

func bootstrapSchema(db *sql.DB) {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS customers (
		"customerId" TEXT PRIMARY KEY,
		"userName" TEXT,
		email TEXT,
		contact TEXT,
		address TEXT,
		"createdAt" TEXT,
		"updatedAt" TEXT
	)`); err != nil {
		panic(err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS orders (
		"orderId" TEXT PRIMARY KEY,
		"customerId" TEXT NOT NULL,
		products TEXT NOT NULL DEFAULT '[]',
		status TEXT NOT NULL DEFAULT 'Pending',
		"createdAt" TEXT
	)`); err != nil {
		panic(err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS products (
		"productId" TEXT PRIMARY KEY,
		slug TEXT,
		"productName" TEXT,
		description TEXT,
		price DOUBLE PRECISION NOT NULL DEFAULT 0,
		"priceWithoutDiscount" DOUBLE PRECISION,
		"discountPercentage" DOUBLE PRECISION,
		rating DOUBLE PRECISION,
		"stockLevel" INT,
		tags TEXT[] NOT NULL DEFAULT '{}',
		sizes TEXT[] NOT NULL DEFAULT '{}',
		colors TEXT[] NOT NULL DEFAULT '{}',
		"imagePath" TEXT
	)`); err != nil {
		panic(err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS reviews (
		id SERIAL PRIMARY KEY,
		"productId" TEXT NOT NULL,
		"reviewerName" TEXT,
		review TEXT,
		rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		"reviewDate" TEXT
	)`); err != nil {
		panic(err)
	}
}

func requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	fmt.Printf("URL = %s, Method = %s, Start Time = %v\n", c.OriginalURL(), c.Method(), start)
	return c.Next()
}
