package commands

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/playforge/levelbot/levelbot/commands/admin"
)

var Commands = []discord.ApplicationCommandCreate{
	Login,
	Profile,
	Boosts,
	UseBoost,
	Leaderboard,
}

func init() {
	Commands = append(Commands, admin.Commands...)
}
