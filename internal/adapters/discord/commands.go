package discord

import "github.com/bwmarrin/discordgo"

var platformChoices = []*discordgo.ApplicationCommandOptionChoice{
	{Name: "Epic Games", Value: "epic"},
	{Name: "Steam", Value: "steam"},
	{Name: "PlayStation", Value: "psn"},
	{Name: "Xbox", Value: "xbl"},
}

func platformOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "platform",
		Description: "Platform (epic, steam, psn, xbl)",
		Required:    true,
		Choices:     platformChoices,
	}
}

var Commands = []*discordgo.ApplicationCommand{
	{
		Name:        "rank",
		Description: "Get Rocket League ranks for a player",
		Options: []*discordgo.ApplicationCommandOption{
			platformOption(),
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "username",
				Description: "Player ID",
				Required:    true,
			},
		},
	},
	{
		Name:        "ranklink",
		Description: "Link your Rocket League account for /rankme",
		Options: []*discordgo.ApplicationCommandOption{
			platformOption(),
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "username",
				Description: "Your player ID",
				Required:    true,
			},
		},
	},
	{
		Name:        "rankme",
		Description: "Show the ranks of your linked account",
	},
}
