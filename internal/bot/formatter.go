package bot

import (
	"fmt"
	"strings"
	"time"

	"rollcall/internal/moderation"
	"rollcall/internal/session"

	"github.com/bwmarrin/discordgo"
)

// Use "blue" color for the bot
const color int = 0x3498db

func PollEmbed(date time.Time, counts session.Counts, creatorName string) *discordgo.MessageEmbed {

	embed := discordgo.MessageEmbed{Title: "New session", Color: color}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "Date",
		Value:  date.Format("02/01/2006"),
		Inline: false,
	})
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "Responses",
		Value:  fmt.Sprintf("✅ Yes: %d\n❌ No: %d\n🤔 Maybe: %d", counts.Yes, counts.No, counts.Maybe),
		Inline: false,
	})
	embed.Footer = &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Created by %s", creatorName)}
	return &embed
}

func PollButtons(pollID string) []discordgo.MessageComponent {

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "✅ Yes", Style: discordgo.SuccessButton, CustomID: voteCustomID(pollID, session.ChoiceYes)},
			discordgo.Button{Label: "❌ No", Style: discordgo.DangerButton, CustomID: voteCustomID(pollID, session.ChoiceNo)},
			discordgo.Button{Label: "🤔 Maybe", Style: discordgo.SecondaryButton, CustomID: voteCustomID(pollID, session.ChoiceMaybe)},
		}},
	}
}

func voteCustomID(pollID string, choice session.Choice) string {
	return fmt.Sprintf("vote:%s:%s", pollID, choice)
}

func InputNotValid(errorMessage string) Response {
	return ResponseString{content: fmt.Sprintf("Input not valid: \n> %s", errorMessage), ephemeral: true}
}

func GuildOnly() Response {
	return ResponseString{content: "I only work inside a server", ephemeral: true}
}

func SessionCreatedIn(channelID string) Response {
	return ResponseString{content: fmt.Sprintf("Poll created in <#%s>.", channelID), ephemeral: true}
}

func TooManySessions() Response {
	return ResponseString{content: "Too many polls created recently in this server, try again later", ephemeral: true}
}

func NoSessionToCancel() Response {
	return ResponseString{content: "No session found to cancel."}
}

func SessionCancelled() Response {
	return ResponseString{content: "The latest session has been cancelled."}
}

func NotAllowedToCancel() Response {
	return ResponseString{content: "You are not allowed to cancel this session.", ephemeral: true}
}

func NotAllowedToModerate() Response {
	return ResponseString{content: "You are not allowed to use moderation commands.", ephemeral: true}
}

func VotingClosed() Response {
	return ResponseString{content: "Voting is closed for this session.", ephemeral: true}
}

func ModerationReport(userName string, events []moderation.Event, err error) Response {

	lines := make([]string, 0, len(events)+1)
	for _, event := range events {
		var line string
		switch event.Tier {
		case moderation.TierWarned:
			line = fmt.Sprintf("⚠️ **%s** has been warned", userName)
		case moderation.TierTimedOut:
			auto := ""
			if event.Auto {
				auto = "automatically "
			}
			line = fmt.Sprintf("⏳ **%s** has been %stimed out for %d hours", userName, auto, int(event.Duration.Hours()))
		case moderation.TierBanned:
			auto := ""
			if event.Auto {
				auto = "automatically "
			}
			line = fmt.Sprintf("🔨 **%s** has been %sbanned", userName, auto)
		}
		if event.Reason != "" {
			line += fmt.Sprintf(" (%s)", event.Reason)
		}
		lines = append(lines, line)
	}
	if err != nil {
		lines = append(lines, fmt.Sprintf("Could not complete the action: %s", err))
	}
	return ResponseString{content: strings.Join(lines, "\n")}
}

func WarnsReport(userName string, record moderation.Record) Response {

	embed := discordgo.MessageEmbed{Title: fmt.Sprintf("Infractions of %s", userName), Color: color}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "Warns",
		Value:  fmt.Sprintf("%d/%d", record.Warns, moderation.WarnThreshold),
		Inline: true,
	})
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "Timeouts",
		Value:  fmt.Sprintf("%d/%d", record.Timeouts, moderation.TimeoutThreshold),
		Inline: true,
	})
	return ResponseEmbed{embed}
}

func Pong(latency time.Duration) Response {
	return ResponseString{content: fmt.Sprintf("Pong! Latency: %dms", latency.Milliseconds())}
}
