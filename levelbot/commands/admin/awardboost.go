package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/playforge/levelbot/levelbot"
	"github.com/playforge/levelbot/levelbot/database/models"
	"github.com/playforge/levelbot/levelbot/database/repositories"
	"github.com/playforge/levelbot/levelbot/utils"
	"github.com/sahilm/fuzzy"
)

var AwardBoost = discord.SlashCommandCreate{
	Name:        "awardboost",
	Description: "Grant a boost to a player",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "The player to receive the boost",
			Required:    true,
		},
		discord.ApplicationCommandOptionString{
			Name:        "kind",
			Description: "Boost kind (speed, damage, health, experience, coins)",
			Required:    true,
		},
		discord.ApplicationCommandOptionInt{
			Name:        "quantity",
			Description: "Number of uses (default 1)",
			Required:    false,
		},
	},
}

func AwardBoostHandler(b *levelbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		data := e.SlashCommandInteractionData()
		target := data.User("user")
		kindQuery := data.String("kind")
		quantity, ok := data.OptInt("quantity")
		if !ok {
			quantity = 1
		}

		kind, ok := resolveBoostKind(kindQuery)
		if !ok {
			return utils.EH.CreateUserError(e,
				fmt.Sprintf("Unknown boost kind '%s'. Valid kinds: %v", kindQuery, models.BoostKinds))
		}

		player, err := b.PlayerRepository.GetByDiscordID(ctx, target.ID.String())
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return utils.EH.CreateNotFoundError(e, "Player", target.Username)
		}
		if err != nil {
			return utils.EH.CreateSystemError(e, "Failed to load the player.")
		}

		boostType, err := b.BoostRepository.GetBoostTypeByKind(ctx, kind)
		if err != nil {
			return utils.EH.CreateSystemError(e, "Failed to load the boost catalog.")
		}

		boost, err := b.BoostManager.AwardManually(ctx, player, boostType, quantity)
		if err != nil {
			return utils.EH.CreateSystemError(e, "Failed to award the boost.")
		}

		return utils.EH.CreateSuccessEmbed(e,
			fmt.Sprintf("Awarded **%s** boost #%d (x%d) to %s.",
				kind, boost.ID, boost.Quantity, target.Mention()))
	}
}

// resolveBoostKind fuzzy-matches admin input against the closed kind set,
// so "exp" finds "experience".
func resolveBoostKind(query string) (string, bool) {
	matches := fuzzy.Find(query, models.BoostKinds)
	if len(matches) == 0 {
		return "", false
	}
	return models.BoostKinds[matches[0].Index], true
}
