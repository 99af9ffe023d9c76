package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/desertthunder/ytimport/internal/server"
	"github.com/desertthunder/ytimport/internal/services"
	"github.com/desertthunder/ytimport/internal/shared"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
)

// AuthLogin performs the OAuth2 authentication flow for YouTube.
//
// Starts a local HTTP server, opens the browser for Google consent, and
// exchanges the auth code for tokens which are persisted to the config file.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	if configPath := cmd.String("config"); configPath != "" {
		r.configPath = configPath
	}

	config := r.config
	if config == nil {
		var err error
		if _, statErr := os.Stat(r.configPath); statErr == nil {
			config, err = shared.LoadConfig(r.configPath)
			if err != nil {
				r.logger.Warnf("failed to load config, using defaults %v", err)
				config = shared.DefaultConfig()
			}
		} else {
			config = shared.DefaultConfig()
		}
		r.config = config
	}

	if config.Credentials.YouTube.ClientID == "" || config.Credentials.YouTube.ClientSecret == "" {
		return fmt.Errorf("%w: YouTube client_id and client_secret must be set in config.toml", shared.ErrMissingCredentials)
	}

	oauthSrv, ok := r.youtube.(services.OAuthService)
	if !ok || oauthSrv == nil {
		svc, err := services.NewYouTubeService(config.Credentials.YouTube.Map())
		if err != nil {
			return fmt.Errorf("failed to create YouTube service: %w", err)
		}
		r.youtube = svc
		r.engine.SetService(svc)
		oauthSrv = svc
	}

	token, err := r.doOAuth(oauthSrv, "authorization")
	if err != nil {
		return err
	}

	if err := r.saveTokens(token); err != nil {
		return err
	}

	if err := oauthSrv.OAuthenticate(ctx, token); err != nil {
		return fmt.Errorf("failed to authenticate with new tokens: %w", err)
	}

	r.writePlainln("✓ Authorization successful")
	r.writePlain("✓ Tokens saved to %s\n\n", r.configPath)
	r.writePlain("You can now use: ytimport playlist-from-url <file>\n")

	return nil
}

// AuthStatus checks the authentication state by fetching the user's channel.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	r.logger.Info("checking auth status")

	if r.youtube == nil {
		r.writePlain("✗ YouTube credentials not configured\n")
		r.writePlain("Run 'ytimport setup config' and fill in config.toml\n")
		return nil
	}

	if r.config.Credentials.YouTube.AccessToken == "" {
		r.writePlain("✗ Not authenticated\n")
		r.writePlain("Run 'ytimport auth login' to sign in\n")
		return nil
	}

	if err := r.youtube.Authenticate(ctx, r.config.Credentials.YouTube.Map()); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
	}

	channel, err := r.youtube.ChannelInfo(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrTokenExpired) {
			r.writePlain("✗ Access token expired\n")
			r.writePlain("Run 'ytimport auth login' to reauthorize\n")
			return nil
		}
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	r.writePlain("✓ Authenticated\n")
	r.writePlain("Channel: %s\n", channel.Title)
	r.writePlain("Channel ID: %s\n", channel.ID)

	return nil
}

// doOAuth executes the OAuth2 authorization flow with a local HTTP server
func (r *Runner) doOAuth(oauthSrv services.OAuthService, prefix string) (*oauth2.Token, error) {
	state, err := shared.GenerateState()
	if err != nil {
		return nil, fmt.Errorf("failed to generate state token: %w", err)
	}

	authURL := oauthSrv.GetAuthURL(state)
	oauthHandler := server.NewOAuthHandler(oauthSrv.GetOAuthConfig(), state)
	router := server.NewBasicRouter()
	router.Handler(oauthHandler)

	serverAddr := fmt.Sprintf("%s:%d", r.config.Server.Host, r.config.Server.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	serverErrors := make(chan error, 1)
	go func() {
		r.logger.Infof("starting OAuth server for %s at %v", prefix, serverAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	time.Sleep(100 * time.Millisecond)

	r.writePlain("→ Opening browser for Google %s...\n", prefix)
	if err := shared.OpenBrowser(authURL); err != nil {
		r.logger.Warnf("failed to open browser automatically %v", err)
		r.writePlainln("⚠ Could not open browser automatically.")
		r.writePlain("Please open this URL in your browser:\n%s\n\n", authURL)
	}

	r.writePlain("→ Waiting for authorization (2 minute timeout)...\n")

	timeout := time.NewTimer(2 * time.Minute)
	defer timeout.Stop()

	var result server.OAuthResult

	select {
	case result = <-oauthHandler.Result():
		// Got result from callback
	case err := <-serverErrors:
		return nil, fmt.Errorf("server error: %w", err)
	case <-timeout.C:
		return nil, fmt.Errorf("%w: authorization timed out after 2 minutes", shared.ErrTimeout)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		r.logger.Warn("error shutting down server", "error", err)
	}

	if result.Error() != nil {
		return nil, fmt.Errorf("authorization failed: %w", result.Error())
	}

	if result.Token == nil {
		return nil, fmt.Errorf("no token received")
	}

	return result.Token, nil
}
