package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token-1")
	t.Setenv("GUILD_ID", "guild-1")
	t.Setenv("SESSIONS_CHANNEL_ID", "channel-1")
	t.Setenv("ADMIN_ROLE_ID", "role-1")
	// Make sure the default applies
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("LOG_LEVEL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Token != "token-1" {
		t.Fatalf("expected token-1, got %q", cfg.Token)
	}
	if cfg.GuildID != "guild-1" || cfg.SessionsChannelID != "channel-1" || cfg.AdminRoleID != "role-1" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level info, got %q", cfg.LogLevel)
	}
}

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token-1")
	os.Unsetenv("DISCORD_TOKEN")

	if _, err := Load(); err == nil {
		t.Fatalf("expected an error without DISCORD_TOKEN")
	}
}
