package levelbot

import (
	"context"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/cache"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"github.com/disgoorg/paginator"
	"github.com/playforge/levelbot/levelbot/database"
	"github.com/playforge/levelbot/levelbot/database/repositories"
	"github.com/playforge/levelbot/levelbot/game/awards"
	"github.com/playforge/levelbot/levelbot/game/boosts"
	"github.com/playforge/levelbot/levelbot/game/export"
	"github.com/playforge/levelbot/levelbot/game/logins"
	"github.com/playforge/levelbot/levelbot/services"
)

func New(cfg Config, version string, commit string) *Bot {
	return &Bot{
		Cfg:       cfg,
		Paginator: paginator.New(),
		Version:   version,
		Commit:    commit,
	}
}

type Bot struct {
	Cfg       Config
	Client    bot.Client
	Paginator *paginator.Manager
	Version   string
	Commit    string
	DB        *database.DB

	PlayerRepository      repositories.PlayerRepository
	BoostRepository       repositories.BoostRepository
	ProgressionRepository repositories.ProgressionRepository

	LoginTracker     *logins.Tracker
	BoostManager     *boosts.Manager
	AwardService     *awards.Service
	Exporter         *export.Exporter
	SpacesService    *services.SpacesService
	LeaderboardImage *services.LeaderboardImageService
}

func (b *Bot) SetupBot(listeners ...bot.EventListener) error {
	client, err := disgo.New(b.Cfg.Bot.Token,
		bot.WithGatewayConfigOpts(gateway.WithIntents(gateway.IntentGuilds, gateway.IntentGuildMessages)),
		bot.WithCacheConfigOpts(cache.WithCaches(cache.FlagGuilds)),
		bot.WithEventListeners(b.Paginator),
		bot.WithEventListeners(listeners...),
	)
	if err != nil {
		return err
	}

	b.Client = client
	return nil
}

func (b *Bot) OnReady(_ *events.Ready) {
	slog.Info("LevelBot is now ready",
		slog.String("version", b.Version),
		slog.String("commit", b.Commit))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := b.Client.SetPresence(ctx,
		gateway.WithPlayingActivity("levels and boosts"),
		gateway.WithOnlineStatus(discord.OnlineStatusOnline)); err != nil {
		slog.Error("Failed to set presence", slog.Any("error", err))
	}
}
