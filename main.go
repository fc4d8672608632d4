package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/handler"
	"github.com/playforge/levelbot/levelbot"
	"github.com/playforge/levelbot/levelbot/commands"
	"github.com/playforge/levelbot/levelbot/commands/admin"
	"github.com/playforge/levelbot/levelbot/config"
	"github.com/playforge/levelbot/levelbot/database"
	"github.com/playforge/levelbot/levelbot/database/repositories"
	"github.com/playforge/levelbot/levelbot/game/awards"
	"github.com/playforge/levelbot/levelbot/game/boosts"
	"github.com/playforge/levelbot/levelbot/game/export"
	"github.com/playforge/levelbot/levelbot/game/logins"
	"github.com/playforge/levelbot/levelbot/handlers"
	"github.com/playforge/levelbot/levelbot/logger"
	"github.com/playforge/levelbot/levelbot/services"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	slog.SetDefault(slog.New(logger.NewHandler()))

	slog.Info("Starting LevelBot",
		slog.String("version", version),
		slog.String("commit", commit))

	shouldSyncCommands := flag.Bool("sync-commands", false, "Whether to sync commands to discord")
	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := levelbot.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}

	dbStartTime := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Database connection failed",
			slog.String("error", err.Error()),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}
	defer db.Close()

	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize database schema", slog.Any("error", err))
		os.Exit(-1)
	}
	if err := db.SeedBoostTypes(ctx); err != nil {
		slog.Error("Failed to seed boost types", slog.Any("error", err))
		os.Exit(-1)
	}

	slog.Info("Database ready",
		slog.String("database", cfg.DB.Database),
		slog.Duration("took", time.Since(dbStartTime)))

	b := levelbot.New(*cfg, version, commit)
	b.DB = db

	b.SpacesService = services.NewSpacesService(
		cfg.Spaces.Key,
		cfg.Spaces.Secret,
		cfg.Spaces.Region,
		cfg.Spaces.Bucket,
		cfg.Spaces.ExportRoot,
	)
	b.LeaderboardImage = services.NewLeaderboardImageService()

	b.PlayerRepository = repositories.NewPlayerRepository(db.BunDB())
	b.BoostRepository = repositories.NewBoostRepository(db.BunDB())
	b.ProgressionRepository = repositories.NewProgressionRepository(db.BunDB())

	b.LoginTracker = logins.NewTracker(b.PlayerRepository)
	b.BoostManager = boosts.NewManager(b.BoostRepository)
	b.AwardService = awards.NewService(b.ProgressionRepository)
	b.Exporter = export.NewExporter(b.ProgressionRepository, b.SpacesService)

	h := handler.New()

	// Player commands
	h.Command("/login", handlers.WrapWithLogging("login", commands.LoginHandler(b)))
	h.Command("/profile", handlers.WrapWithLogging("profile", commands.ProfileHandler(b)))
	h.Command("/boosts", handlers.WrapWithLogging("boosts", commands.BoostsHandler(b)))
	h.Command("/useboost", handlers.WrapWithLogging("useboost", commands.UseBoostHandler(b)))
	h.Command("/leaderboard", handlers.WrapWithLoggingTimeout("leaderboard", time.Minute, commands.LeaderboardHandler(b)))

	// Admin commands
	h.Command("/awardboost", handlers.WrapWithLogging("awardboost", admin.AwardBoostHandler(b)))
	h.Command("/boosthistory", handlers.WrapWithLogging("boosthistory", admin.BoostHistoryHandler(b)))
	h.Command("/completelevel", handlers.WrapWithLogging("completelevel", admin.CompleteLevelHandler(b)))
	h.Command("/catalog", handlers.WrapWithLogging("catalog", admin.CatalogHandler(b)))
	h.Command("/exportdata", handlers.WrapWithLoggingTimeout("exportdata", config.ExportTimeout, admin.ExportDataHandler(b)))

	if err = b.SetupBot(h, bot.NewListenerFunc(b.OnReady)); err != nil {
		logger.LogError("Failed to setup bot", err)
		os.Exit(-1)
	}

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		b.Client.Close(ctx)
	}()

	if *shouldSyncCommands {
		logger.LogSystem("Syncing commands", slog.Any("guild_ids", cfg.Bot.DevGuilds))
		if err = handler.SyncCommands(b.Client, commands.Commands, cfg.Bot.DevGuilds); err != nil {
			logger.LogError("Failed to sync commands", err)
		}
	}

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = b.Client.OpenGateway(ctx); err != nil {
		logger.LogError("Failed to open gateway", err)
		os.Exit(-1)
	}

	logger.LogSystem("Bot is running. Press CTRL-C to exit.")
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	<-s
	logger.LogSystem("Shutting down bot...")
}
