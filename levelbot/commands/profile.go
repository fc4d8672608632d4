package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/playforge/levelbot/levelbot"
	"github.com/playforge/levelbot/levelbot/config"
	"github.com/playforge/levelbot/levelbot/database/repositories"
	"github.com/playforge/levelbot/levelbot/utils"
)

var Profile = discord.SlashCommandCreate{
	Name:        "profile",
	Description: "View your login stats and points",
}

func ProfileHandler(b *levelbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		player, err := b.PlayerRepository.GetByDiscordID(ctx, e.User().ID.String())
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return utils.EH.CreateInfoEmbed(e, "You haven't logged in yet. Use `/login` to get started!")
		}
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load your profile. Please try again later.")
		}

		firstLogin := "never"
		if !player.FirstLogin.IsZero() {
			firstLogin = player.FirstLogin.Format("2006-01-02")
		}
		lastLogin := "never"
		if !player.LastLogin.IsZero() {
			lastLogin = player.LastLogin.Format("2006-01-02 15:04")
		}

		inlineTrue := true
		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title: fmt.Sprintf("%s's Profile", player.Username),
				Fields: []discord.EmbedField{
					{Name: "Logins", Value: fmt.Sprintf("%d", player.LoginCount), Inline: &inlineTrue},
					{Name: "Daily Points", Value: utils.FormatNumber(player.DailyPoints), Inline: &inlineTrue},
					{Name: "Total Points", Value: utils.FormatNumber(player.TotalPoints), Inline: &inlineTrue},
					{Name: "First Login", Value: firstLogin, Inline: &inlineTrue},
					{Name: "Last Login", Value: lastLogin, Inline: &inlineTrue},
				},
				Color: config.InfoColor,
			}},
		})
	}
}
