package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"alumni-portal/config"
	"alumni-portal/internal/kv"
)

const kvCollection = "kv_store"

func ConnectMongo(uri string, dbName string) *mongo.Database {
	opts := options.Client().ApplyURI(uri)

	client, err := mongo.Connect(opts)
	if err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}

	fmt.Println("Connected to MongoDB: ", dbName)
	return client.Database(dbName)
}

// OpenStore connects the backend named by cfg.StoreDriver and returns it
// wrapped with metrics.
func OpenStore(cfg config.Config) (kv.Store, error) {
	var store kv.Store

	switch cfg.StoreDriver {
	case "", "memory":
		log.Println("Using in-memory key-value store (data is not persisted)")
		store = kv.NewMemoryStore()
	case "mongo":
		store = kv.NewMongoStore(ConnectMongo(cfg.MongoURI, cfg.MongoDB), kvCollection)
	case "redis":
		store = kv.NewRedisStore(ConnectRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB))
	case "postgres", "mysql":
		db, err := ConnectSQL(cfg.StoreDriver, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		store = kv.NewSQLStore(db)
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	driver := cfg.StoreDriver
	if driver == "" {
		driver = "memory"
	}
	return kv.Instrument(store, driver), nil
}
