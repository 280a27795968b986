package bot

import (
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

type ResponseString struct {
	content   string
	ephemeral bool
}
type ResponseEmbed struct {
	discordgo.MessageEmbed
}

type Response interface {
	Send(discord *discordgo.Session, interaction *discordgo.Interaction)
}

func (response ResponseString) Send(discord *discordgo.Session, interaction *discordgo.Interaction) {
	data := discordgo.InteractionResponseData{Content: response.content}
	if response.ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	err := discord.InteractionRespond(interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &data,
	})
	if err != nil {
		log.Error().Err(err).Msg("Could not send text response")
	}
}

func (response ResponseEmbed) Send(discord *discordgo.Session, interaction *discordgo.Interaction) {
	err := discord.InteractionRespond(interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{&response.MessageEmbed},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("Could not send embed response")
	}
}
