package shared

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/oauth2"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "./ytimport.db" {
			t.Errorf("expected database path ./ytimport.db, got %s", config.Database.Path)
		}

		if config.Server.Port != 3000 {
			t.Errorf("expected server port 3000, got %d", config.Server.Port)
		}

		if config.Importer.DefaultPrivacy != "unlisted" {
			t.Errorf("expected default privacy unlisted, got %s", config.Importer.DefaultPrivacy)
		}

		if len(config.Importer.WatchLaterNames) == 0 {
			t.Error("expected watch later names to be seeded")
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		err = CreateConfigFile(configPath)
		if err == nil {
			t.Fatal("creating config file again should fail")
		}
		if strings.Contains(err.Error(), "%!w") {
			t.Errorf("error message renders a missing wrapped error: %v", err)
		}
		if !strings.Contains(err.Error(), configPath) {
			t.Errorf("expected error to name the existing file, got %v", err)
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[database]
path = "/custom/path.db"
max_open_conns = 20
max_idle_conns = 10

[server]
host = "0.0.0.0"
port = 8080

[credentials.youtube]
client_id = "test_client_id"
client_secret = "test_secret"
redirect_uri = "http://localhost:3000/callback"

[importer]
default_privacy = "private"
watch_later_names = ["Regarder plus tard"]
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected database path /custom/path.db, got %s", config.Database.Path)
		}

		if config.Server.Port != 8080 {
			t.Errorf("expected server port 8080, got %d", config.Server.Port)
		}

		if config.Credentials.YouTube.ClientID != "test_client_id" {
			t.Errorf("expected youtube client_id test_client_id, got %s", config.Credentials.YouTube.ClientID)
		}

		if config.Importer.DefaultPrivacy != "private" {
			t.Errorf("expected default privacy private, got %s", config.Importer.DefaultPrivacy)
		}
	})

	t.Run("SaveConfig round-trips tokens", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		config := DefaultConfig()
		config.Credentials.YouTube.ClientID = "id"
		config.Credentials.YouTube.AccessToken = "access"
		config.Credentials.YouTube.RefreshToken = "refresh"

		if err := SaveConfig(config, configPath); err != nil {
			t.Fatalf("failed to save config: %v", err)
		}

		loaded, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to reload config: %v", err)
		}

		if loaded.Credentials.YouTube.AccessToken != "access" {
			t.Errorf("expected access token to round-trip, got %s", loaded.Credentials.YouTube.AccessToken)
		}
		if loaded.Credentials.YouTube.RefreshToken != "refresh" {
			t.Errorf("expected refresh token to round-trip, got %s", loaded.Credentials.YouTube.RefreshToken)
		}
	})
}

func TestYouTubeConfig(t *testing.T) {
	t.Run("Token returns nil without access token", func(t *testing.T) {
		cfg := YouTubeConfig{}
		if cfg.Token() != nil {
			t.Error("expected nil token")
		}
	})

	t.Run("Token carries stored fields", func(t *testing.T) {
		cfg := YouTubeConfig{AccessToken: "access", RefreshToken: "refresh"}
		token := cfg.Token()
		if token == nil || token.AccessToken != "access" || token.RefreshToken != "refresh" {
			t.Errorf("unexpected token %+v", token)
		}
	})

	t.Run("Update rejects nil token", func(t *testing.T) {
		cfg := YouTubeConfig{}
		if err := cfg.Update(nil); err == nil {
			t.Error("expected error for nil token")
		}
	})

	t.Run("Update keeps old refresh token when absent", func(t *testing.T) {
		cfg := YouTubeConfig{RefreshToken: "original"}
		if err := cfg.Update(&oauth2.Token{AccessToken: "fresh"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.AccessToken != "fresh" {
			t.Errorf("expected access token fresh, got %s", cfg.AccessToken)
		}
		if cfg.RefreshToken != "original" {
			t.Errorf("expected refresh token preserved, got %s", cfg.RefreshToken)
		}
	})

	t.Run("Map includes all credential fields", func(t *testing.T) {
		cfg := YouTubeConfig{
			ClientID:     "id",
			ClientSecret: "secret",
			RedirectURI:  "http://localhost:3000/callback",
			AccessToken:  "access",
			RefreshToken: "refresh",
		}

		m := cfg.Map()
		for key, want := range map[string]string{
			"client_id":     "id",
			"client_secret": "secret",
			"redirect_uri":  "http://localhost:3000/callback",
			"access_token":  "access",
			"refresh_token": "refresh",
		} {
			if m[key] != want {
				t.Errorf("expected %s=%q, got %q", key, want, m[key])
			}
		}
	})
}
