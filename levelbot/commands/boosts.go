package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/paginator"
	"github.com/playforge/levelbot/levelbot"
	"github.com/playforge/levelbot/levelbot/config"
	"github.com/playforge/levelbot/levelbot/database/models"
	"github.com/playforge/levelbot/levelbot/database/repositories"
	"github.com/playforge/levelbot/levelbot/utils"
)

var Boosts = discord.SlashCommandCreate{
	Name:        "boosts",
	Description: "View your boost inventory",
}

func BoostsHandler(b *levelbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		player, err := b.PlayerRepository.GetByDiscordID(ctx, e.User().ID.String())
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return utils.EH.CreateInfoEmbed(e, "You haven't logged in yet. Use `/login` to get started!")
		}
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load your profile. Please try again later.")
		}

		boosts, err := b.BoostRepository.GetPlayerBoosts(ctx, player.ID)
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load your boosts. Please try again later.")
		}

		// Viewing the inventory is what retires stale activation windows.
		now := time.Now()
		for _, boost := range boosts {
			if !boost.IsActive {
				continue
			}
			if _, err := b.BoostManager.IsExpired(ctx, boost); err != nil {
				slog.Error("Failed to expire boost",
					slog.String("type", "game"),
					slog.Int64("boost_id", boost.ID),
					slog.Any("error", err),
				)
			}
		}

		if len(boosts) == 0 {
			return utils.EH.CreateInfoEmbed(e, "You don't have any boosts yet. Complete levels to earn some!")
		}

		totalPages := int(math.Ceil(float64(len(boosts)) / float64(config.BoostsPerPage)))

		return b.Paginator.Create(e.Respond, paginator.Pages{
			ID:      e.ID().String(),
			Creator: e.User().ID,
			PageFunc: func(page int, embed *discord.EmbedBuilder) {
				start := page * config.BoostsPerPage
				end := start + config.BoostsPerPage
				if end > len(boosts) {
					end = len(boosts)
				}

				embed.
					SetTitle("🚀 Your Boosts").
					SetDescription(buildBoostList(boosts[start:end], now)).
					SetColor(config.InfoColor).
					SetFooter(fmt.Sprintf("Page %d/%d • Total: %d", page+1, totalPages, len(boosts)), "")
			},
			Pages:      totalPages,
			ExpireMode: paginator.ExpireModeAfterLastUsage,
		}, false)
	}
}

func buildBoostList(boosts []*models.Boost, now time.Time) string {
	var description strings.Builder
	description.WriteString("```md\n")

	for _, boost := range boosts {
		kind := "unknown"
		if boost.BoostType != nil {
			kind = boost.BoostType.Kind
		}

		description.WriteString(fmt.Sprintf("* #%d %s %s\n",
			boost.ID, kind, boostStatus(boost, now)))
	}

	description.WriteString("```")
	return description.String()
}

func boostStatus(boost *models.Boost, now time.Time) string {
	switch {
	case boost.IsActive:
		return fmt.Sprintf("[active, %s]", utils.FormatWindow(boost.ExpiresAt, now))
	case boost.Quantity > 0:
		return fmt.Sprintf("[x%d unused]", boost.Quantity)
	case !boost.UsedAt.IsZero():
		return "[expired]"
	default:
		return "[empty]"
	}
}
