package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/playforge/levelbot/levelbot"
	"github.com/playforge/levelbot/levelbot/config"
	"github.com/playforge/levelbot/levelbot/database/repositories"
	"github.com/playforge/levelbot/levelbot/utils"
)

var BoostHistory = discord.SlashCommandCreate{
	Name:        "boosthistory",
	Description: "Show a player's past boost activation windows",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "The player to inspect",
			Required:    true,
		},
	},
}

func BoostHistoryHandler(b *levelbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		target := e.SlashCommandInteractionData().User("user")

		player, err := b.PlayerRepository.GetByDiscordID(ctx, target.ID.String())
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return utils.EH.CreateNotFoundError(e, "Player", target.Username)
		}
		if err != nil {
			return utils.EH.CreateSystemError(e, "Failed to load the player.")
		}

		history, err := b.BoostRepository.GetPlayerHistory(ctx, player.ID, 20)
		if err != nil {
			return utils.EH.CreateSystemError(e, "Failed to load boost history.")
		}
		if len(history) == 0 {
			return utils.EH.CreateInfoEmbed(e,
				fmt.Sprintf("No recorded boost windows for %s.", target.Username))
		}

		var description strings.Builder
		description.WriteString("```md\n")
		for _, entry := range history {
			kind := "unknown"
			if entry.BoostType != nil {
				kind = entry.BoostType.Kind
			}
			description.WriteString(fmt.Sprintf("* %s: %s → %s\n",
				kind,
				entry.ActivatedAt.Format("2006-01-02 15:04"),
				entry.ExpiredAt.Format("2006-01-02 15:04")))
		}
		description.WriteString("```")

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       fmt.Sprintf("⏱ %s's Boost History", target.Username),
				Description: description.String(),
				Color:       config.InfoColor,
			}},
		})
	}
}
