package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"golang.org/x/oauth2"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Credentials CredentialsConfig `toml:"credentials"`
	Database    DatabaseConfig    `toml:"database"`
	Server      ServerConfig      `toml:"server"`
	Importer    ImporterConfig    `toml:"importer"`
}

// CredentialsConfig contains service-specific credentials.
type CredentialsConfig struct {
	YouTube YouTubeConfig `toml:"youtube"`
}

// YouTubeConfig contains Google OAuth credentials and stored tokens for the
// YouTube Data API.
type YouTubeConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	RedirectURI  string `toml:"redirect_uri"`
	AccessToken  string `toml:"access_token"`
	RefreshToken string `toml:"refresh_token"`
}

// Map converts the credentials to the map form consumed by service constructors.
func (y *YouTubeConfig) Map() map[string]string {
	return map[string]string{
		"client_id":     y.ClientID,
		"client_secret": y.ClientSecret,
		"redirect_uri":  y.RedirectURI,
		"access_token":  y.AccessToken,
		"refresh_token": y.RefreshToken,
	}
}

// Token builds an [oauth2.Token] from the stored token fields. Returns nil
// when no access token has been stored yet.
func (y *YouTubeConfig) Token() *oauth2.Token {
	if y.AccessToken == "" {
		return nil
	}
	return &oauth2.Token{AccessToken: y.AccessToken, RefreshToken: y.RefreshToken}
}

// Update stores the fields of a freshly issued [oauth2.Token]. A missing
// refresh token leaves the previous one in place (Google only returns it on
// the first consent).
func (y *YouTubeConfig) Update(token *oauth2.Token) error {
	if token == nil {
		return fmt.Errorf("%w: token cannot be nil", ErrInvalidArgument)
	}
	y.AccessToken = token.AccessToken
	if token.RefreshToken != "" {
		y.RefreshToken = token.RefreshToken
	}
	return nil
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// ServerConfig contains HTTP server settings for the OAuth callback listener.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// ImporterConfig contains defaults for created playlists and the resolver's
// Watch Later title list.
type ImporterConfig struct {
	DefaultTitle       string   `toml:"default_title"`
	DefaultDescription string   `toml:"default_description"`
	DefaultPrivacy     string   `toml:"default_privacy"`
	WatchLaterNames    []string `toml:"watch_later_names"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// SaveConfig writes the configuration back to the specified path. Used to
// persist refreshed OAuth tokens between runs.
func SaveConfig(config *Config, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	// Write the embedded example config to the file
	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
