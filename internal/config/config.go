package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the bot reads from the environment.
// Only the token is mandatory; the rest narrows behaviour when set.
type Config struct {
	// Token authenticates the bot against Discord.
	Token string `env:"DISCORD_TOKEN,required"`

	// GuildID, when set, registers slash commands on that guild only,
	// which propagates instantly. Unset means global registration.
	GuildID string `env:"GUILD_ID"`

	// SessionsChannelID is the channel attendance polls are posted
	// into. Unset or unresolvable means polls go to the channel the
	// command was invoked in.
	SessionsChannelID string `env:"SESSIONS_CHANNEL_ID"`

	// AdminRoleID grants moderation and session-cancellation rights
	// to holders of the role, in addition to manage-guild members.
	AdminRoleID string `env:"ADMIN_ROLE_ID"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
