// YouTube Data API v3 implementation of [Service]
//
// Response types based on https://developers.google.com/youtube/v3/docs
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/desertthunder/ytimport/internal/shared"
	"golang.org/x/oauth2"
)

const (
	googleAuthURL  = "https://accounts.google.com/o/oauth2/auth"
	googleTokenURL = "https://oauth2.googleapis.com/token"
	youtubeBaseURL = "https://www.googleapis.com/youtube/v3"

	// MaxPageSize is the largest page the API serves per list request.
	MaxPageSize = 50
)

// OAuthService is implemented by services that authenticate through a
// browser-based OAuth2 authorization-code flow.
type OAuthService interface {
	Service

	// GetAuthURL returns the authorization URL for user login.
	GetAuthURL(state string) string

	// GetOAuthConfig returns the underlying OAuth2 configuration.
	GetOAuthConfig() *oauth2.Config

	// OAuthenticate authenticates with a previously exchanged token.
	OAuthenticate(ctx context.Context, token *oauth2.Token) error
}

// APIError represents an error response from the YouTube Data API, carrying
// the upstream HTTP status and Google's machine-readable reason code.
type APIError struct {
	StatusCode int
	Reason     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("youtube API error: status %d (%s): %s", e.StatusCode, e.Reason, e.Message)
	}
	return fmt.Sprintf("youtube API error: status %d: %s", e.StatusCode, e.Message)
}

// googleErrorResponse is the standard Google API error envelope.
type googleErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Errors  []struct {
			Reason string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}

type playlistSnippet struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type playlistStatus struct {
	PrivacyStatus string `json:"privacyStatus"`
}

type playlistContentDetails struct {
	ItemCount int `json:"itemCount"`
}

type playlistResource struct {
	ID             string                 `json:"id"`
	Snippet        playlistSnippet        `json:"snippet"`
	Status         playlistStatus         `json:"status"`
	ContentDetails playlistContentDetails `json:"contentDetails"`
}

type playlistListResponse struct {
	Items         []playlistResource `json:"items"`
	NextPageToken string             `json:"nextPageToken"`
}

type resourceID struct {
	Kind    string `json:"kind"`
	VideoID string `json:"videoId"`
}

type playlistItemSnippet struct {
	PlaylistID string     `json:"playlistId,omitempty"`
	Title      string     `json:"title,omitempty"`
	Position   int64      `json:"position,omitempty"`
	ResourceID resourceID `json:"resourceId"`
}

type playlistItemResource struct {
	ID      string              `json:"id,omitempty"`
	Snippet playlistItemSnippet `json:"snippet"`
}

type playlistItemListResponse struct {
	Items         []playlistItemResource `json:"items"`
	NextPageToken string                 `json:"nextPageToken"`
}

type channelSnippet struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type channelResource struct {
	ID      string         `json:"id"`
	Snippet channelSnippet `json:"snippet"`
}

type channelListResponse struct {
	Items []channelResource `json:"items"`
}

// YouTubeService implements the Service interface against the YouTube Data
// API v3. Uses [oauth2] for authentication; the OAuth client refreshes
// access tokens transparently when a refresh token is available.
type YouTubeService struct {
	config      *oauth2.Config
	token       *oauth2.Token
	httpClient  *http.Client
	credentials map[string]string
	baseURL     string
}

// NewYouTubeService creates a new YouTube service with the given Google
// OAuth2 credentials.
func NewYouTubeService(credentials map[string]string) (*YouTubeService, error) {
	clientID, ok := credentials["client_id"]
	if !ok || clientID == "" {
		return nil, fmt.Errorf("%w: missing client_id", shared.ErrMissingCredentials)
	}

	clientSecret, ok := credentials["client_secret"]
	if !ok || clientSecret == "" {
		return nil, fmt.Errorf("%w: missing client_secret", shared.ErrMissingCredentials)
	}

	redirectURI, ok := credentials["redirect_uri"]
	if !ok || redirectURI == "" {
		redirectURI = "http://localhost:3000/callback"
	}

	config := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURI,
		Scopes:       []string{"https://www.googleapis.com/auth/youtube"},
		Endpoint: oauth2.Endpoint{
			AuthURL:  googleAuthURL,
			TokenURL: googleTokenURL,
		},
	}

	return &YouTubeService{
		config:      config,
		httpClient:  http.DefaultClient,
		credentials: credentials,
		baseURL:     youtubeBaseURL,
	}, nil
}

// Authenticate performs OAuth2 authentication. Expects either an
// "access_token" (with optional "refresh_token") or an "auth_code" in
// credentials.
func (s *YouTubeService) Authenticate(ctx context.Context, credentials map[string]string) error {
	if accessToken, ok := credentials["access_token"]; ok && accessToken != "" {
		s.token = &oauth2.Token{
			AccessToken:  accessToken,
			RefreshToken: credentials["refresh_token"],
		}
		s.httpClient = s.config.Client(ctx, s.token)
		return nil
	}

	if authCode, ok := credentials["auth_code"]; ok && authCode != "" {
		token, err := s.config.Exchange(ctx, authCode)
		if err != nil {
			return fmt.Errorf("%w: failed to exchange auth code: %v", shared.ErrAuthFailed, err)
		}
		s.token = token
		s.httpClient = s.config.Client(ctx, s.token)
		return nil
	}

	return fmt.Errorf("%w: missing access_token or auth_code", shared.ErrMissingCredentials)
}

// OAuthenticate authenticates with a token obtained from the OAuth callback
// flow.
func (s *YouTubeService) OAuthenticate(ctx context.Context, token *oauth2.Token) error {
	if token == nil {
		return fmt.Errorf("%w: token cannot be nil", shared.ErrInvalidArgument)
	}
	s.token = token
	s.httpClient = s.config.Client(ctx, token)
	return nil
}

func (s *YouTubeService) Name() string {
	return "YouTube"
}

// GetAuthURL returns the OAuth2 authorization URL for user login. Offline
// access is requested so Google issues a refresh token.
func (s *YouTubeService) GetAuthURL(state string) string {
	return s.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// GetOAuthConfig returns the OAuth2 configuration.
func (s *YouTubeService) GetOAuthConfig() *oauth2.Config {
	return s.config
}

// Token returns the current token, which may have been refreshed since
// authentication.
func (s *YouTubeService) Token() *oauth2.Token {
	return s.token
}

// SetBaseURL overrides the API base URL. Used in tests.
func (s *YouTubeService) SetBaseURL(base string) {
	s.baseURL = base
}

// doRequest performs an authenticated HTTP request against the API and
// decodes the JSON response into result. Non-2xx responses are returned as
// an [*APIError]; 401 responses additionally wrap [shared.ErrTokenExpired].
func (s *YouTubeService) doRequest(ctx context.Context, method, endpoint string, body any, result any) error {
	if s.token == nil {
		return fmt.Errorf("%w: call Authenticate first", shared.ErrNotAuthenticated)
	}

	apiURL := s.baseURL + endpoint

	reqBody := &bytes.Buffer{}
	if body != nil {
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, apiURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.token.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope googleErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
			apiErr.Message = envelope.Error.Message
			if len(envelope.Error.Errors) > 0 {
				apiErr.Reason = envelope.Error.Errors[0].Reason
			}
		}
		if resp.StatusCode == http.StatusUnauthorized {
			return fmt.Errorf("%w: %w", shared.ErrTokenExpired, apiErr)
		}
		return apiErr
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// ChannelInfo retrieves the authenticated user's channel.
func (s *YouTubeService) ChannelInfo(ctx context.Context) (*Channel, error) {
	var response channelListResponse
	if err := s.doRequest(ctx, "GET", "/channels?part=snippet&mine=true", nil, &response); err != nil {
		return nil, err
	}

	if len(response.Items) == 0 {
		return nil, fmt.Errorf("no channel found for authenticated user")
	}

	item := response.Items[0]
	return &Channel{
		ID:          item.ID,
		Title:       item.Snippet.Title,
		Description: item.Snippet.Description,
	}, nil
}

// GetPlaylist retrieves a specific playlist by ID.
func (s *YouTubeService) GetPlaylist(ctx context.Context, playlistID string) (*Playlist, error) {
	endpoint := fmt.Sprintf("/playlists?part=snippet,status,contentDetails&id=%s", url.QueryEscape(playlistID))

	var response playlistListResponse
	if err := s.doRequest(ctx, "GET", endpoint, nil, &response); err != nil {
		return nil, err
	}

	if len(response.Items) == 0 {
		return nil, fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, playlistID)
	}

	return playlistFromResource(response.Items[0]), nil
}

// ListMyPlaylists retrieves one page of the authenticated user's playlists.
func (s *YouTubeService) ListMyPlaylists(ctx context.Context, pageToken string) (*PlaylistPage, error) {
	endpoint := fmt.Sprintf("/playlists?part=snippet,status,contentDetails&mine=true&maxResults=%d", MaxPageSize)
	if pageToken != "" {
		endpoint += "&pageToken=" + url.QueryEscape(pageToken)
	}

	var response playlistListResponse
	if err := s.doRequest(ctx, "GET", endpoint, nil, &response); err != nil {
		return nil, err
	}

	page := &PlaylistPage{NextPageToken: response.NextPageToken}
	for _, item := range response.Items {
		page.Playlists = append(page.Playlists, *playlistFromResource(item))
	}

	return page, nil
}

// ListPlaylistItems retrieves one page of a playlist's items in playlist
// order.
func (s *YouTubeService) ListPlaylistItems(ctx context.Context, playlistID, pageToken string) (*PlaylistItemPage, error) {
	endpoint := fmt.Sprintf("/playlistItems?part=snippet&playlistId=%s&maxResults=%d", url.QueryEscape(playlistID), MaxPageSize)
	if pageToken != "" {
		endpoint += "&pageToken=" + url.QueryEscape(pageToken)
	}

	var response playlistItemListResponse
	if err := s.doRequest(ctx, "GET", endpoint, nil, &response); err != nil {
		return nil, err
	}

	page := &PlaylistItemPage{NextPageToken: response.NextPageToken}
	for _, item := range response.Items {
		page.Items = append(page.Items, PlaylistItem{
			VideoID:  item.Snippet.ResourceID.VideoID,
			Title:    item.Snippet.Title,
			Position: item.Snippet.Position,
		})
	}

	return page, nil
}

// CreatePlaylist creates a new playlist owned by the authenticated user.
func (s *YouTubeService) CreatePlaylist(ctx context.Context, title, description, privacy string) (*Playlist, error) {
	body := playlistResource{
		Snippet: playlistSnippet{Title: title, Description: description},
		Status:  playlistStatus{PrivacyStatus: privacy},
	}

	var created playlistResource
	if err := s.doRequest(ctx, "POST", "/playlists?part=snippet,status", &body, &created); err != nil {
		return nil, err
	}

	return playlistFromResource(created), nil
}

// AddPlaylistItem appends a single video to the end of a playlist.
func (s *YouTubeService) AddPlaylistItem(ctx context.Context, playlistID, videoID string) error {
	body := playlistItemResource{
		Snippet: playlistItemSnippet{
			PlaylistID: playlistID,
			ResourceID: resourceID{Kind: "youtube#video", VideoID: videoID},
		},
	}

	return s.doRequest(ctx, "POST", "/playlistItems?part=snippet", &body, nil)
}

func playlistFromResource(item playlistResource) *Playlist {
	return &Playlist{
		ID:          item.ID,
		Title:       item.Snippet.Title,
		Description: item.Snippet.Description,
		Privacy:     item.Status.PrivacyStatus,
		ItemCount:   item.ContentDetails.ItemCount,
	}
}
