package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/playforge/levelbot/levelbot/database"
	"github.com/playforge/levelbot/levelbot/logger"
	"github.com/playforge/levelbot/levelbot/migration"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	mongoURI := flag.String("mongo-uri", "mongodb://localhost:27017", "legacy MongoDB connection URI")
	mongoDB := flag.String("mongo-db", "levelgame", "legacy MongoDB database name")
	batchSize := flag.Int("batch-size", 1000, "insert batch size")
	flag.Parse()

	slog.SetDefault(slog.New(logger.NewHandler()))

	ctx := context.Background()

	db, err := database.New(ctx, database.DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "root",
		Database: "postgres",
		PoolSize: 10,
	})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize schema", "error", err)
		os.Exit(1)
	}
	if err := db.SeedBoostTypes(ctx); err != nil {
		slog.Error("Failed to seed boost types", "error", err)
		os.Exit(1)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(*mongoURI))
	if err != nil {
		slog.Error("Failed to connect to MongoDB", "error", err)
		os.Exit(1)
	}
	defer client.Disconnect(ctx)

	migrator := migration.NewMigrator(db.BunDB(), client, *mongoDB)
	migrator.SetBatchSize(*batchSize)

	if err := migrator.MigrateAll(ctx); err != nil {
		slog.Error("Migration failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Migration completed successfully!")
}
