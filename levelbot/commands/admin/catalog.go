package admin

import (
	"context"
	"fmt"
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

var Catalog = discord.SlashCommandCreate{
	Name:        "catalog",
	Description: "Manage the level and award catalog",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionSubCommand{
			Name:        "addlevel",
			Description: "Add a level to the catalog",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "title",
					Description: "Level title",
					Required:    true,
				},
				discord.ApplicationCommandOptionInt{
					Name:        "position",
					Description: "Display position",
					Required:    false,
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "addaward",
			Description: "Add an award to the catalog",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "title",
					Description: "Award title",
					Required:    true,
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "linkaward",
			Description: "Configure a level to grant an award",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:        "level",
					Description: "Level title (fuzzy matched)",
					Required:    true,
				},
				discord.ApplicationCommandOptionString{
					Name:        "award",
					Description: "Award title (fuzzy matched)",
					Required:    true,
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "list",
			Description: "List levels and awards",
		},
	},
}

func CatalogHandler(b *levelbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		data := e.SlashCommandInteractionData()
		switch *data.SubCommandName {
		case "addlevel":
			return catalogAddLevel(ctx, b, e)
		case "addaward":
			return catalogAddAward(ctx, b, e)
		case "linkaward":
			return catalogLinkAward(ctx, b, e)
		case "list":
			return catalogList(ctx, b, e)
		default:
			return utils.EH.CreateUserError(e, "Unknown subcommand.")
		}
	}
}

func catalogAddLevel(ctx context.Context, b *levelbot.Bot, e *handler.CommandEvent) error {
	data := e.SlashCommandInteractionData()
	level := &models.Level{
		Title:    data.String("title"),
		Position: data.Int("position"),
	}

	if err := b.ProgressionRepository.CreateLevel(ctx, level); err != nil {
		return utils.EH.CreateSystemError(e, "Failed to create the level.")
	}
	return utils.EH.CreateSuccessEmbed(e,
		fmt.Sprintf("Level **%s** added at position %d.", level.Title, level.Position))
}

func catalogAddAward(ctx context.Context, b *levelbot.Bot, e *handler.CommandEvent) error {
	award := &models.Award{Title: e.SlashCommandInteractionData().String("title")}

	if err := b.ProgressionRepository.CreateAward(ctx, award); err != nil {
		return utils.EH.CreateSystemError(e, "Failed to create the award.")
	}
	return utils.EH.CreateSuccessEmbed(e, fmt.Sprintf("Award **%s** added.", award.Title))
}

func catalogLinkAward(ctx context.Context, b *levelbot.Bot, e *handler.CommandEvent) error {
	data := e.SlashCommandInteractionData()

	level, err := resolveLevel(ctx, b, data.String("level"))
	if err != nil {
		return utils.EH.CreateSystemError(e, "Failed to load the level catalog.")
	}
	if level == nil {
		return utils.EH.CreateNotFoundError(e, "Level", data.String("level"))
	}

	award, err := resolveAward(ctx, b, data.String("award"))
	if err != nil {
		return utils.EH.CreateSystemError(e, "Failed to load the award catalog.")
	}
	if award == nil {
		return utils.EH.CreateNotFoundError(e, "Award", data.String("award"))
	}

	if err := b.ProgressionRepository.LinkAward(ctx, level.ID, award.ID); err != nil {
		return utils.EH.CreateSystemError(e, "Failed to link the award.")
	}
	return utils.EH.CreateSuccessEmbed(e,
		fmt.Sprintf("**%s** now grants **%s**.", level.Title, award.Title))
}

func catalogList(ctx context.Context, b *levelbot.Bot, e *handler.CommandEvent) error {
	levels, err := b.ProgressionRepository.ListLevels(ctx)
	if err != nil {
		return utils.EH.CreateSystemError(e, "Failed to load the level catalog.")
	}
	awardRows, err := b.ProgressionRepository.ListAwards(ctx)
	if err != nil {
		return utils.EH.CreateSystemError(e, "Failed to load the award catalog.")
	}

	var description strings.Builder
	description.WriteString("```md\n## Levels\n")
	if len(levels) == 0 {
		description.WriteString("* none\n")
	}
	for _, level := range levels {
		description.WriteString(fmt.Sprintf("%d. %s\n", level.Position, level.Title))
	}
	description.WriteString("\n## Awards\n")
	if len(awardRows) == 0 {
		description.WriteString("* none\n")
	}
	for _, award := range awardRows {
		description.WriteString(fmt.Sprintf("* %s\n", award.Title))
	}
	description.WriteString("```")

	return e.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Title:       "📖 Catalog",
			Description: description.String(),
			Color:       config.InfoColor,
		}},
	})
}

func resolveAward(ctx context.Context, b *levelbot.Bot, query string) (*models.Award, error) {
	awardRows, err := b.ProgressionRepository.ListAwards(ctx)
	if err != nil {
		return nil, err
	}

	titles := make([]string, len(awardRows))
	for i, award := range awardRows {
		titles[i] = award.Title
	}

	matches := fuzzy.Find(query, titles)
	if len(matches) == 0 {
		return nil, nil
	}
	return awardRows[matches[0].Index], nil
}
