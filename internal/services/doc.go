// Package services defines the [Service] interface for video platforms and implements it for the YouTube Data API v3.
//
// # Service Interface
//
// The import pipeline depends only on the abstraction: authentication, paginated playlist listing, playlist creation, and single-item appends.
//
// # YouTube Implementation
//
// [YouTubeService] uses OAuth2 (Google authorization-code flow) for authentication with automatic token refresh.
//
// The [oauth2.Config.Client] transport refreshes expired access tokens using the stored refresh token.
// List endpoints page at [MaxPageSize] items per request and chain pages through nextPageToken.
//
// # OAuth Service Extension
//
// The [OAuthService] interface extends Service for providers that authenticate through a browser callback flow.
//
// [YouTubeService] implements this for the server-side OAuth flow used by the CLI.
//
// # Error Handling
//
// Services use typed errors from shared package:
//   - [shared.ErrNotAuthenticated] : Authenticate() not called
//   - [shared.ErrTokenExpired] : OAuth token expired, reauthorization needed
//   - [shared.ErrPlaylistNotFound] : Playlist ID not found
//
// Upstream API failures are surfaced as [*APIError] values carrying the HTTP
// status and Google's reason code (e.g. quotaExceeded, videoNotFound).
package services
