package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/playforge/levelbot/levelbot"
	"github.com/playforge/levelbot/levelbot/config"
	"github.com/playforge/levelbot/levelbot/utils"
)

var ExportData = discord.SlashCommandCreate{
	Name:        "exportdata",
	Description: "Export the player/level/award report as CSV",
}

func ExportDataHandler(b *levelbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if err := e.DeferCreateMessage(true); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.ExportTimeout)
		defer cancel()

		start := time.Now()
		url, err := b.Exporter.Upload(ctx)
		if err != nil {
			return utils.EH.UpdateInteractionResponse(e, "Export Failed", err.Error())
		}

		_, err = e.UpdateInteractionResponse(discord.MessageUpdate{
			Embeds: &[]discord.Embed{{
				Title: "Export Complete",
				Description: fmt.Sprintf("Report uploaded in %s.\n\n[Download CSV](%s)",
					time.Since(start).Round(time.Millisecond), url),
				Color: config.SuccessColor,
			}},
		})
		return err
	}
}
