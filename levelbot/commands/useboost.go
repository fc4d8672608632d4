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

var UseBoost = discord.SlashCommandCreate{
	Name:        "useboost",
	Description: "Activate one of your boosts",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionInt{
			Name:        "id",
			Description: "The boost ID from /boosts",
			Required:    true,
		},
	},
}

func UseBoostHandler(b *levelbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		boostID := int64(e.SlashCommandInteractionData().Int("id"))

		player, err := b.PlayerRepository.GetByDiscordID(ctx, e.User().ID.String())
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return utils.EH.CreateInfoEmbed(e, "You haven't logged in yet. Use `/login` to get started!")
		}
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load your profile. Please try again later.")
		}

		boost, err := b.BoostRepository.GetBoost(ctx, boostID)
		if errors.Is(err, repositories.ErrBoostNotFound) {
			return utils.EH.CreateNotFoundError(e, "Boost", fmt.Sprintf("#%d", boostID))
		}
		if err != nil {
			return utils.EH.CreateErrorEmbed(e, "Failed to load the boost. Please try again later.")
		}
		if boost.PlayerID != player.ID {
			return utils.EH.CreateUserError(e, "That boost doesn't belong to you.")
		}

		ok, err := b.BoostManager.Activate(ctx, boost)
		if err != nil {
			return utils.EH.CreateSystemError(e, "Failed to activate the boost. Please try again later.")
		}
		if !ok {
			if boost.IsActive {
				return utils.EH.CreateDeclinedError(e, "That boost is already active.")
			}
			return utils.EH.CreateDeclinedError(e, "That boost has no uses left.")
		}

		kind := "boost"
		multiplier := 1.0
		if boost.BoostType != nil {
			kind = boost.BoostType.Kind
			multiplier = boost.BoostType.Multiplier
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title: "Boost Activated!",
				Description: fmt.Sprintf("Your **%s** boost (x%.1f) is active until <t:%d:t>.",
					kind, multiplier, boost.ExpiresAt.Unix()),
				Color: config.SuccessColor,
			}},
		})
	}
}
