package bot

import (
	"github.com/bwmarrin/discordgo"
)

var minTimeoutHours = float64(MinTimeoutHours)

// The slash commands registered on startup
var commands = []*discordgo.ApplicationCommand{
	{
		Name:        "session",
		Description: "Manage attendance polls",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "create",
				Description: "Create an attendance poll for a date",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "date",
						Description: "Session date, DD/MM/YY or DD/MM/YYYY",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "cancel",
				Description: "Cancel the latest attendance poll of this server",
			},
		},
	},
	{
		Name:        "mod",
		Description: "Moderation commands",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "warn",
				Description: "Warn a user",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "user",
						Description: "User to warn",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "reason",
						Description: "Reason for the warning",
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "timeout",
				Description: "Time a user out",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "user",
						Description: "User to time out",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "duration_hours",
						Description: "Duration of the timeout in hours",
						Required:    true,
						MinValue:    &minTimeoutHours,
						MaxValue:    MaxTimeoutHours,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "reason",
						Description: "Reason for the timeout",
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "ban",
				Description: "Ban a user",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "user",
						Description: "User to ban",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "reason",
						Description: "Reason for the ban",
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "warns",
				Description: "Show the infractions of a user",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "user",
						Description: "User to look up",
						Required:    true,
					},
				},
			},
		},
	},
	{
		Name:        "ping",
		Description: "Report the latency to Discord",
	},
}
