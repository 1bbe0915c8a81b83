package database

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

// Collection names shared with the existing dashboard data.
const (
	MenuCollection  = "menuCollection"
	UserCollection  = "usersCollection"
	CartCollection  = "cartCollection"
	TableCollection = "tableCollection"
	OrderCollection = "orderCollection"
	StaffCollection = "staffCollection"
)

type Config struct {
	Port        string
	DBDriver    string
	MongoURI    string
	DBName      string
	DBTimeout   time.Duration
	SecretKey   string
	TokenTTL    time.Duration
	CORSOrigins []string
}

// LoadConfig reads .env when present and then the process environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "5000"),
		DBDriver:    getEnv("DB_DRIVER", DriverMongo),
		DBName:      getEnv("DB_NAME", "restaurantManagement"),
		SecretKey:   os.Getenv("ACCESS_TOKEN"),
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
	}

	var err error
	if cfg.DBTimeout, err = time.ParseDuration(getEnv("DB_TIMEOUT", "10s")); err != nil {
		return nil, fmt.Errorf("DB_TIMEOUT: %w", err)
	}
	if cfg.TokenTTL, err = time.ParseDuration(getEnv("TOKEN_TTL", "1h")); err != nil {
		return nil, fmt.Errorf("TOKEN_TTL: %w", err)
	}

	if cfg.SecretKey == "" {
		return nil, errors.New("ACCESS_TOKEN is not set in the environment variables")
	}

	switch cfg.DBDriver {
	case DriverMemory:
	case DriverMongo:
		cfg.MongoURI, err = mongoURI()
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}

	return cfg, nil
}

func mongoURI() (string, error) {
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		return uri, nil
	}

	user, pass, host := os.Getenv("DB_USER"), os.Getenv("DB_PASS"), os.Getenv("DB_HOST")
	if user == "" || pass == "" || host == "" {
		return "", errors.New("MONGO_URI or DB_USER, DB_PASS and DB_HOST must be set")
	}

	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(user, pass),
		Host:     host,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String(), nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// Connect opens the process-wide client and pings the deployment.
func Connect(ctx context.Context, cfg *Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.DBTimeout)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

func OpenCollection(db *mongo.Database, collectionName string) *mongo.Collection {
	return db.Collection(collectionName)
}

// EnsureIndexes creates the unique indexes backing user and cart dedup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		UserCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		CartCollection: {
			{Keys: bson.D{{Key: "owner_email", Value: 1}, {Key: "menu_item_id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "cart_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		TableCollection: {
			{Keys: bson.D{{Key: "table_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		OrderCollection: {
			{Keys: bson.D{{Key: "order_id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "owner_email", Value: 1}, {Key: "date", Value: -1}}},
		},
		MenuCollection: {
			{Keys: bson.D{{Key: "menu_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		StaffCollection: {
			{Keys: bson.D{{Key: "staff_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}

	for name, models := range indexes {
		if _, err := OpenCollection(db, name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}
