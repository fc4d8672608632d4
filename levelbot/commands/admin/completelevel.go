package admin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/playforge/levelbot/levelbot"
	"github.com/playforge/levelbot/levelbot/config"
	"github.com/playforge/levelbot/levelbot/database/models"
	"github.com/playforge/levelbot/levelbot/utils"
	"github.com/sahilm/fuzzy"
)

var CompleteLevel = discord.SlashCommandCreate{
	Name:        "completelevel",
	Description: "Mark a level as completed for a player and grant its awards",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "The player completing the level",
			Required:    true,
		},
		discord.ApplicationCommandOptionString{
			Name:        "level",
			Description: "Level title (fuzzy matched)",
			Required:    true,
		},
	},
}

func CompleteLevelHandler(b *levelbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		data := e.SlashCommandInteractionData()
		target := data.User("user")
		levelQuery := data.String("level")

		level, err := resolveLevel(ctx, b, levelQuery)
		if err != nil {
			return utils.EH.CreateSystemError(e, "Failed to load the level catalog.")
		}
		if level == nil {
			return utils.EH.CreateNotFoundError(e, "Level", levelQuery)
		}

		result := b.AwardService.AssignForLevelCompletion(ctx, target.ID.String(), level.ID)
		if !result.Success {
			return utils.EH.AutoClassifyError(e, result.Error)
		}

		description := fmt.Sprintf("**%s** completed **%s**.", target.Username, result.Level)
		if len(result.Awards) > 0 {
			description += fmt.Sprintf("\n\nAwards granted:\n• %s", strings.Join(result.Awards, "\n• "))

			// Fresh award grants also earn a completion boost. Best
			// effort: a failed grant does not undo the completion.
			kind, err := grantCompletionBoost(ctx, b, target.ID.String(), level.Position)
			if err != nil {
				slog.Warn("Completion boost not granted",
					slog.String("type", "game"),
					slog.String("discord_id", target.ID.String()),
					slog.Any("error", err))
			} else {
				description += fmt.Sprintf("\nBonus boost granted: %s.", kind)
			}
		} else {
			description += "\n\nNo new awards (already granted or none configured)."
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       "Level Completed",
				Description: description,
				Color:       config.SuccessColor,
			}},
		})
	}
}

// grantCompletionBoost hands the player one experience boost tied to the
// level they just finished. The player row must already exist, which it
// does for anyone who has logged in at least once.
func grantCompletionBoost(ctx context.Context, b *levelbot.Bot, discordID string, levelNumber int) (string, error) {
	player, err := b.PlayerRepository.GetByDiscordID(ctx, discordID)
	if err != nil {
		return "", err
	}
	boostType, err := b.BoostRepository.GetBoostTypeByKind(ctx, models.BoostKindExperience)
	if err != nil {
		return "", err
	}
	if _, err := b.BoostManager.AwardForLevel(ctx, player, boostType, levelNumber, 1); err != nil {
		return "", err
	}
	return boostType.Kind, nil
}

func resolveLevel(ctx context.Context, b *levelbot.Bot, query string) (*models.Level, error) {
	levels, err := b.ProgressionRepository.ListLevels(ctx)
	if err != nil {
		return nil, err
	}

	titles := make([]string, len(levels))
	for i, level := range levels {
		titles[i] = level.Title
	}

	matches := fuzzy.Find(query, titles)
	if len(matches) == 0 {
		return nil, nil
	}
	return levels[matches[0].Index], nil
}
