package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"vibe-commerce/internal/config"
	"vibe-commerce/internal/database"
	"vibe-commerce/internal/domain"
	"vibe-commerce/internal/logger"
	"vibe-commerce/internal/repository"

	"github.com/go-resty/resty/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const fakeStoreURL = "https://fakestoreapi.com/products"

// fakeStoreProduct mirrors the Fake Store API response shape
type fakeStoreProduct struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

var customProducts = []domain.Product{
	{
		Name:        "Regular Unisex T shirt",
		Price:       2150.0,
		Description: "Comfortable unisex cotton t-shirt available in multiple colors",
		Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500",
		Category:    "Clothing",
		Stock:       50,
	},
	{
		Name:        "Korean pant",
		Price:       2799.0,
		Description: "Trendy Korean style pants with comfortable fit",
		Image:       "https://images.unsplash.com/photo-1624378439575-d8705ad7ae80?w=500",
		Category:    "Women's Wear",
		Stock:       30,
	},
	{
		Name:        "Pinstripe Pyjama",
		Price:       1250.0,
		Description: "Comfortable pinstripe pyjama set for relaxed wear",
		Image:       "https://images.unsplash.com/photo-1586363104862-3a5e2ab60d99?w=500",
		Category:    "Women's Wear",
		Stock:       40,
	},
	{
		Name:        "Pencil Stripe Shirt",
		Price:       1150.0,
		Description: "Elegant pencil stripe shirt for formal occasions",
		Image:       "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=500",
		Category:    "Women's Wear",
		Stock:       35,
	},
	{
		Name:        "Korean pant (Blue)",
		Price:       2100.0,
		Description: "Stylish Korean pants in classic blue color",
		Image:       "https://images.unsplash.com/photo-1604176354204-9268737828e4?w=500",
		Category:    "Women's Wear",
		Stock:       25,
	},
	{
		Name:        "Classic White Sneakers",
		Price:       3500.0,
		Description: "Comfortable white sneakers for everyday wear",
		Image:       "https://images.unsplash.com/photo-1549298916-b41d501d3772?w=500",
		Category:    "Footwear",
		Stock:       45,
	},
	{
		Name:        "Casual Denim Jacket",
		Price:       4200.0,
		Description: "Classic denim jacket perfect for all seasons",
		Image:       "https://images.unsplash.com/photo-1576995853123-5a10305d93c0?w=500",
		Category:    "Clothing",
		Stock:       20,
	},
	{
		Name:        "Leather Handbag",
		Price:       5500.0,
		Description: "Premium leather handbag with multiple compartments",
		Image:       "https://images.unsplash.com/photo-1584917865442-de89df76afd3?w=500",
		Category:    "Accessories",
		Stock:       15,
	},
}

// fetchFromFakeStore pulls the catalog from the Fake Store API and maps it
// to the product schema. Prices are converted to INR (approximate) and
// stock is randomized, matching the demo data the custom list uses.
func fetchFromFakeStore(log *zap.Logger) ([]domain.Product, error) {
	client := resty.New().SetTimeout(10 * time.Second)

	var apiProducts []fakeStoreProduct
	resp, err := client.R().SetResult(&apiProducts).Get(fakeStoreURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fake store API returned %d", resp.StatusCode())
	}

	products := make([]domain.Product, 0, len(apiProducts))
	for _, p := range apiProducts {
		products = append(products, domain.Product{
			Name:        p.Title,
			Price:       p.Price * 80,
			Description: p.Description,
			Image:       p.Image,
			Category:    p.Category,
			Stock:       rand.Intn(50) + 10,
		})
	}

	log.Info("Fetched products from Fake Store API", zap.Int("count", len(products)))
	return products, nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Could not load .env file: %v\n", err)
	}

	cfg := config.Load()

	log, err := logger.New(cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer database.Disconnect(context.Background(), db)

	products := customProducts
	if viper.GetBool("USE_FAKE_STORE_API") {
		fetched, err := fetchFromFakeStore(log)
		if err != nil {
			log.Warn("Fake Store API fetch failed, falling back to custom products", zap.Error(err))
		} else {
			products = fetched
		}
	} else {
		log.Info("Using custom products (set USE_FAKE_STORE_API=true to use Fake Store API)")
	}

	productRepo := repository.NewProductRepository(db)
	count, err := productRepo.ReplaceAll(ctx, products)
	if err != nil {
		log.Fatal("Failed to seed products", zap.Error(err))
	}

	for i, product := range products {
		log.Info("Seeded product",
			zap.Int("n", i+1),
			zap.String("name", product.Name),
			zap.Float64("price", product.Price),
		)
	}

	log.Info("Database seeding complete", zap.Int("total", count))
}
