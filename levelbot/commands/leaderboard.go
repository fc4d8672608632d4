package commands

import (
	"bytes"
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
)

var Leaderboard = discord.SlashCommandCreate{
	Name:        "leaderboard",
	Description: "See the top players by total points",
}

func LeaderboardHandler(b *levelbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if err := e.DeferCreateMessage(false); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		players, err := b.PlayerRepository.GetTopPlayers(ctx, config.LeaderboardSize)
		if err != nil {
			return utils.EH.UpdateInteractionResponse(e, "Leaderboard Failed", "Failed to load the leaderboard.")
		}
		if len(players) == 0 {
			_, err = e.UpdateInteractionResponse(discord.MessageUpdate{
				Embeds: &[]discord.Embed{{
					Description: "Nobody has logged in yet.",
					Color:       config.InfoColor,
				}},
			})
			return err
		}

		guildName := "Server"
		if guildID := e.GuildID(); guildID != nil {
			if guild, ok := e.Client().Caches().Guild(*guildID); ok {
				guildName = guild.Name
			}
		}

		image, imgErr := b.LeaderboardImage.GenerateLeaderboardImage(ctx, guildName, players)
		if imgErr != nil {
			// Rendering needs a local Chrome; fall back to a text embed.
			slog.Warn("Falling back to text leaderboard",
				slog.Any("error", imgErr))
			_, err = e.UpdateInteractionResponse(discord.MessageUpdate{
				Embeds: &[]discord.Embed{{
					Title:       fmt.Sprintf("🏆 %s — Top Players", guildName),
					Description: buildLeaderboardText(players),
					Color:       config.InfoColor,
				}},
			})
			return err
		}

		_, err = e.UpdateInteractionResponse(discord.MessageUpdate{
			Files: []*discord.File{
				discord.NewFile("leaderboard.png", "", bytes.NewReader(image)),
			},
		})
		return err
	}
}

func buildLeaderboardText(players []*models.Player) string {
	var description strings.Builder
	description.WriteString("```md\n")
	for i, player := range players {
		description.WriteString(fmt.Sprintf("%d. %s — %s points (%d logins)\n",
			i+1, player.Username, utils.FormatNumber(player.TotalPoints), player.LoginCount))
	}
	description.WriteString("```")
	return description.String()
}
