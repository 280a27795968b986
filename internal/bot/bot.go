package bot

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"rollcall/internal/common"
	"rollcall/internal/config"
	"rollcall/internal/moderation"
	"rollcall/internal/perms"
	"rollcall/internal/session"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// How often a guild may create session polls
const (
	sessionCooldownLimit  = 5
	sessionCooldownWindow = 10 * time.Minute
)

// How often expired polls get pruned
const (
	housekeepingTimeout = time.Hour
	mainCycle           = time.Minute
)

type Bot struct {
	cfg                  config.Config
	tracker              *session.Tracker
	ledger               *moderation.Ledger
	engine               *moderation.Engine
	perms                perms.Evaluator
	sessionCooldown      *common.Cooldown
	housekeepingExecutor common.TimedExecutor
}

func CreateBot(cfg config.Config) (Bot, error) {

	var bot Bot

	bot.cfg = cfg
	// Volatile state, lost on restart
	bot.tracker = session.NewTracker()
	bot.ledger = moderation.NewLedger()
	// Permissions
	bot.perms = perms.NewEvaluator(cfg.AdminRoleID)
	// Burst limit for poll creation
	bot.sessionCooldown = common.NewCooldown(sessionCooldownLimit, sessionCooldownWindow)
	// Housekeeping for polls whose date is long past
	bot.housekeepingExecutor = common.NewTimedExecutor(housekeepingTimeout, bot.pollHousekeeping)

	return bot, nil

}

func (bot *Bot) Run() error {
	// Create session
	discord, err := discordgo.New("Bot " + bot.cfg.Token)
	if err != nil {
		return fmt.Errorf("could not create discord session: %w", err)
	}

	// The escalation engine acts on the platform through this session
	bot.engine = moderation.NewEngine(bot.ledger, &discordActions{discord})

	// Event handlers
	discord.AddHandler(bot.ready)
	discord.AddHandler(bot.receive)
	discord.Identify.Intents = discordgo.IntentsGuilds

	// Open session
	if err := discord.Open(); err != nil {
		return fmt.Errorf("could not open discord session: %w", err)
	}
	defer discord.Close()

	// Register the slash commands, on a single guild if one is
	// configured, as global registration takes a while to propagate
	if _, err := discord.ApplicationCommandBulkOverwrite(discord.State.User.ID, bot.cfg.GuildID, commands); err != nil {
		return fmt.Errorf("could not register commands: %w", err)
	}
	if bot.cfg.GuildID != "" {
		log.Info().Msg(fmt.Sprintf("Commands registered on guild %s", bot.cfg.GuildID))
	} else {
		log.Info().Msg("Commands registered globally")
	}

	// keep bot running until there is an os interruption (ctrl + C)
	ticker := time.NewTicker(mainCycle)
	defer ticker.Stop()
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	for {
		select {
		case <-ticker.C:
			bot.housekeepingExecutor.Execute()
		case <-c:
			log.Info().Msg("Shutting down")
			return nil
		}
	}
}

func (bot *Bot) ready(discord *discordgo.Session, ready *discordgo.Ready) {
	log.Info().Msg(fmt.Sprintf("Connected as %s (ID: %s)", ready.User.String(), ready.User.ID))
}

func (bot *Bot) receive(discord *discordgo.Session, interaction *discordgo.InteractionCreate) {

	// Ignore anything outside a guild
	if interaction.GuildID == "" {
		log.Debug().Msg("Ignoring interaction outside a guild")
		GuildOnly().Send(discord, interaction.Interaction)
		return
	}

	switch interaction.Type {
	case discordgo.InteractionApplicationCommand:
		bot.receiveCommand(discord, interaction)
	case discordgo.InteractionMessageComponent:
		bot.receiveVote(discord, interaction)
	}
}

func (bot *Bot) receiveCommand(discord *discordgo.Session, interaction *discordgo.InteractionCreate) {

	data := interaction.ApplicationCommandData()
	log.Debug().Msg(fmt.Sprintf("Received command %s in guild %s", data.Name, interaction.GuildID))

	var response Response
	switch data.Name {
	case "session":
		subcommand := data.Options[0]
		switch subcommand.Name {
		case "create":
			response = bot.sessionCreate(discord, interaction, subcommand)
		case "cancel":
			response = bot.sessionCancel(discord, interaction)
		}
	case "mod":
		subcommand := data.Options[0]
		switch subcommand.Name {
		case "warn":
			response = bot.modWarn(discord, interaction, subcommand)
		case "timeout":
			response = bot.modTimeout(discord, interaction, subcommand)
		case "ban":
			response = bot.modBan(discord, interaction, subcommand)
		case "warns":
			response = bot.modWarns(discord, interaction, subcommand)
		}
	case "ping":
		response = Pong(discord.HeartbeatLatency())
	}

	if response != nil {
		response.Send(discord, interaction.Interaction)
	}
}

// sessionCreate posts a new attendance poll and records it as the
// tracked poll of the guild, replacing any previous one. It responds
// on its own when the poll goes to the invoking channel, and returns
// the response to send otherwise.
func (bot *Bot) sessionCreate(discord *discordgo.Session, interaction *discordgo.InteractionCreate, subcommand *discordgo.ApplicationCommandInteractionDataOption) Response {

	date, err := ParseDate(stringOption(subcommand, "date"))
	if err != nil {
		return InputNotValid(err.Error())
	}

	if !bot.sessionCooldown.Allow(interaction.GuildID) {
		log.Warn().Msg(fmt.Sprintf("Rejecting poll creation in guild %s, cooldown exceeded", interaction.GuildID))
		return TooManySessions()
	}

	poll := &session.Poll{
		ID:          uuid.NewString(),
		GuildID:     interaction.GuildID,
		CreatorID:   interaction.Member.User.ID,
		CreatorName: displayName(interaction.Member),
		Date:        date,
		Votes:       session.NewTally(),
	}
	embed := PollEmbed(date, session.Counts{}, poll.CreatorName)
	buttons := PollButtons(poll.ID)

	// Post into the configured sessions channel if there is one
	if channelID := bot.cfg.SessionsChannelID; channelID != "" {
		message, err := discord.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: buttons,
		})
		if err == nil {
			poll.ChannelID = message.ChannelID
			poll.MessageID = message.ID
			bot.tracker.Record(poll)
			log.Info().Msg(fmt.Sprintf("Poll %s created in guild %s, channel %s", poll.ID, poll.GuildID, poll.ChannelID))
			return SessionCreatedIn(channelID)
		}
		log.Warn().Err(err).Msg(fmt.Sprintf("Could not post poll to channel %s, falling back to the invoking channel", channelID))
	}

	// Fall back to replying in the invoking channel
	err = discord.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: buttons,
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("Could not post the poll")
		return nil
	}
	poll.ChannelID = interaction.ChannelID
	// The message id is needed later to disable the buttons on cancel
	if message, err := discord.InteractionResponse(interaction.Interaction); err == nil {
		poll.MessageID = message.ID
	} else {
		log.Warn().Err(err).Msg("Could not fetch the poll message, cancelling will not edit it")
	}
	bot.tracker.Record(poll)
	log.Info().Msg(fmt.Sprintf("Poll %s created in guild %s, channel %s", poll.ID, poll.GuildID, poll.ChannelID))
	return nil
}

// sessionCancel stops the tracked poll of the guild: votes no longer
// count and the buttons are removed from the original message.
func (bot *Bot) sessionCancel(discord *discordgo.Session, interaction *discordgo.InteractionCreate) Response {

	poll, err := bot.tracker.Get(interaction.GuildID)
	if err != nil {
		return NoSessionToCancel()
	}

	// Permission check comes first: a denied cancel leaves the
	// tracked poll untouched
	if !bot.perms.CanCancel(interaction.Member, interaction.Member.User.ID, poll.CreatorID) {
		log.Warn().Msg(fmt.Sprintf("User %s may not cancel poll %s", interaction.Member.User.ID, poll.ID))
		return NotAllowedToCancel()
	}

	// Strike the original message through and remove its buttons
	content := fmt.Sprintf("~~Session of %s cancelled.~~", poll.Date.Format("02/01/2006"))
	empty := []discordgo.MessageComponent{}
	if _, err := discord.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    poll.ChannelID,
		ID:         poll.MessageID,
		Content:    &content,
		Components: &empty,
	}); err != nil {
		// The poll still stops counting votes
		log.Warn().Err(err).Msg(fmt.Sprintf("Could not edit message of poll %s", poll.ID))
	}

	bot.tracker.Clear(interaction.GuildID)
	log.Info().Msg(fmt.Sprintf("Poll %s cancelled in guild %s", poll.ID, poll.GuildID))
	return SessionCancelled()
}

func (bot *Bot) receiveVote(discord *discordgo.Session, interaction *discordgo.InteractionCreate) {

	pollID, choice, ok := parseVoteCustomID(interaction.MessageComponentData().CustomID)
	if !ok {
		log.Debug().Msg(fmt.Sprintf("Ignoring unknown component %s", interaction.MessageComponentData().CustomID))
		return
	}

	poll, ok := bot.tracker.Find(pollID)
	if !ok {
		VotingClosed().Send(discord, interaction.Interaction)
		return
	}

	poll.Votes.Cast(interaction.Member.User.ID, choice)
	counts := poll.Votes.Counts()
	log.Debug().Msg(fmt.Sprintf("Vote %s by user %s on poll %s", choice, interaction.Member.User.ID, poll.ID))

	// Refresh the tally shown on the poll message
	err := discord.InteractionRespond(interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{PollEmbed(poll.Date, counts, poll.CreatorName)},
			Components: PollButtons(poll.ID),
		},
	})
	if err != nil {
		log.Error().Err(err).Msg(fmt.Sprintf("Could not update message of poll %s", poll.ID))
	}
}

func (bot *Bot) modWarn(discord *discordgo.Session, interaction *discordgo.InteractionCreate, subcommand *discordgo.ApplicationCommandInteractionDataOption) Response {

	if !bot.perms.CanModerate(interaction.Member) {
		return NotAllowedToModerate()
	}
	user := userOption(discord, subcommand, "user")
	if user == nil {
		return InputNotValid("no user provided")
	}

	events, err := bot.engine.Warn(interaction.GuildID, user.ID, stringOption(subcommand, "reason"))
	if err != nil {
		log.Error().Err(err).Msg(fmt.Sprintf("Warn escalation failed for user %s in guild %s", user.ID, interaction.GuildID))
	}
	return ModerationReport(user.Username, events, err)
}

func (bot *Bot) modTimeout(discord *discordgo.Session, interaction *discordgo.InteractionCreate, subcommand *discordgo.ApplicationCommandInteractionDataOption) Response {

	if !bot.perms.CanModerate(interaction.Member) {
		return NotAllowedToModerate()
	}
	user := userOption(discord, subcommand, "user")
	if user == nil {
		return InputNotValid("no user provided")
	}
	duration, err := ParseTimeoutHours(integerOption(subcommand, "duration_hours"))
	if err != nil {
		return InputNotValid(err.Error())
	}

	events, err := bot.engine.Timeout(interaction.GuildID, user.ID, duration, stringOption(subcommand, "reason"))
	if err != nil {
		log.Error().Err(err).Msg(fmt.Sprintf("Timeout failed for user %s in guild %s", user.ID, interaction.GuildID))
	}
	return ModerationReport(user.Username, events, err)
}

func (bot *Bot) modBan(discord *discordgo.Session, interaction *discordgo.InteractionCreate, subcommand *discordgo.ApplicationCommandInteractionDataOption) Response {

	if !bot.perms.CanModerate(interaction.Member) {
		return NotAllowedToModerate()
	}
	user := userOption(discord, subcommand, "user")
	if user == nil {
		return InputNotValid("no user provided")
	}

	events, err := bot.engine.Ban(interaction.GuildID, user.ID, stringOption(subcommand, "reason"))
	if err != nil {
		log.Error().Err(err).Msg(fmt.Sprintf("Ban failed for user %s in guild %s", user.ID, interaction.GuildID))
	}
	return ModerationReport(user.Username, events, err)
}

func (bot *Bot) modWarns(discord *discordgo.Session, interaction *discordgo.InteractionCreate, subcommand *discordgo.ApplicationCommandInteractionDataOption) Response {

	user := userOption(discord, subcommand, "user")
	if user == nil {
		return InputNotValid("no user provided")
	}
	return WarnsReport(user.Username, bot.ledger.Get(interaction.GuildID, user.ID))
}

func (bot *Bot) pollHousekeeping() {
	if removed := bot.tracker.PruneExpired(time.Now()); removed > 0 {
		log.Info().Msg(fmt.Sprintf("Pruned %d expired polls", removed))
	}
}

// discordActions issues the punitive platform calls for the
// escalation engine
type discordActions struct {
	discord *discordgo.Session
}

func (a *discordActions) Timeout(guildID, userID string, until time.Time, reason string) error {
	return a.discord.GuildMemberTimeout(guildID, userID, &until, discordgo.WithAuditLogReason(reason))
}

func (a *discordActions) Ban(guildID, userID string, reason string) error {
	return a.discord.GuildBanCreateWithReason(guildID, userID, reason, 0)
}

func parseVoteCustomID(customID string) (string, session.Choice, bool) {
	parts := strings.Split(customID, ":")
	if len(parts) != 3 || parts[0] != "vote" || !session.ValidChoice(parts[2]) {
		return "", "", false
	}
	return parts[1], session.Choice(parts[2]), true
}

func displayName(member *discordgo.Member) string {
	if member.Nick != "" {
		return member.Nick
	}
	if member.User.GlobalName != "" {
		return member.User.GlobalName
	}
	return member.User.Username
}

func stringOption(subcommand *discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, option := range subcommand.Options {
		if option.Name == name {
			return option.StringValue()
		}
	}
	return ""
}

func integerOption(subcommand *discordgo.ApplicationCommandInteractionDataOption, name string) int64 {
	for _, option := range subcommand.Options {
		if option.Name == name {
			return option.IntValue()
		}
	}
	return 0
}

func userOption(discord *discordgo.Session, subcommand *discordgo.ApplicationCommandInteractionDataOption, name string) *discordgo.User {
	for _, option := range subcommand.Options {
		if option.Name == name {
			return option.UserValue(discord)
		}
	}
	return nil
}
