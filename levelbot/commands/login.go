package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/playforge/levelbot/levelbot"
	"github.com/playforge/levelbot/levelbot/config"
	"github.com/playforge/levelbot/levelbot/database/models"
	"github.com/playforge/levelbot/levelbot/database/repositories"
	"github.com/playforge/levelbot/levelbot/game/logins"
	"github.com/playforge/levelbot/levelbot/utils"
)

var Login = discord.SlashCommandCreate{
	Name:        "login",
	Description: "Check in for today and collect your login points!",
}

func LoginHandler(b *levelbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		discordID := e.User().ID.String()

		player, err := b.PlayerRepository.GetByDiscordID(ctx, discordID)
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			player = &models.Player{
				DiscordID: discordID,
				Username:  e.User().Username,
			}
			if err = b.PlayerRepository.Create(ctx, player); err == nil {
				// Progression tracks players by the same external ref.
				_, err = b.ProgressionRepository.GetOrCreatePlayer(ctx, discordID)
			}
		}
		if err != nil {
			slog.Error("Failed to resolve player",
				slog.String("type", "db"),
				slog.String("discord_id", discordID),
				slog.Any("error", err),
			)
			return utils.EH.CreateErrorEmbed(e, "Failed to load your profile. Please try again later.")
		}

		if err := b.LoginTracker.RecordLogin(ctx, player); err != nil {
			slog.Error("Failed to record login",
				slog.String("type", "game"),
				slog.String("discord_id", discordID),
				slog.Any("error", err),
			)
			return utils.EH.CreateErrorEmbed(e, "Failed to record your login. Please try again later.")
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title: "Login Recorded!",
				Description: fmt.Sprintf("You earned **%d** points!\n\nLogins: **%d**\nTotal points: **%s**",
					logins.DailyBonus,
					player.LoginCount,
					utils.FormatNumber(player.TotalPoints)),
				Color: config.SuccessColor,
			}},
		})
	}
}
