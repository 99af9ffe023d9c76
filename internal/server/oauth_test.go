package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"golang.org/x/oauth2"
)

func oauthTestConfig(tokenURL string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		RedirectURL:  "http://localhost:3000/callback",
		Endpoint: oauth2.Endpoint{
			AuthURL:  tokenURL + "/auth",
			TokenURL: tokenURL + "/token",
		},
	}
}

func newTokenServer(t *testing.T) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/token" {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "test-access-token",
			"refresh_token": "test-refresh-token",
			"token_type":    "Bearer",
			"expires_in":    3600,
		})
	}))
}

func TestOAuthHandler(t *testing.T) {
	t.Run("successful callback exchanges code for token", func(t *testing.T) {
		tokenServer := newTokenServer(t)
		defer tokenServer.Close()

		handler := NewOAuthHandler(oauthTestConfig(tokenServer.URL), "expected-state")

		req := httptest.NewRequest(http.MethodGet, "/callback?state=expected-state&code=auth-code", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}

		if !strings.Contains(rec.Body.String(), "return to the terminal") {
			t.Error("expected success page in response body")
		}

		result := <-handler.Result()
		if result.Error() != nil {
			t.Fatalf("unexpected error: %v", result.Error())
		}

		if result.Token.AccessToken != "test-access-token" {
			t.Errorf("expected access token from exchange, got %q", result.Token.AccessToken)
		}
	})

	t.Run("rejects mismatched state", func(t *testing.T) {
		handler := NewOAuthHandler(oauthTestConfig("http://invalid"), "expected-state")

		req := httptest.NewRequest(http.MethodGet, "/callback?state=wrong&code=auth-code", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}

		result := <-handler.Result()
		if result.Error() == nil {
			t.Error("expected state validation error")
		}
	})

	t.Run("reports authorization errors from the provider", func(t *testing.T) {
		handler := NewOAuthHandler(oauthTestConfig("http://invalid"), "expected-state")

		params := url.Values{}
		params.Set("state", "expected-state")
		params.Set("error", "access_denied")
		params.Set("error_description", "user declined")

		req := httptest.NewRequest(http.MethodGet, "/callback?"+params.Encode(), nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}

		result := <-handler.Result()
		if result.Error() == nil || !strings.Contains(result.Error().Error(), "access_denied") {
			t.Errorf("expected access_denied error, got %v", result.Error())
		}
	})

	t.Run("only processes the first callback", func(t *testing.T) {
		tokenServer := newTokenServer(t)
		defer tokenServer.Close()

		handler := NewOAuthHandler(oauthTestConfig(tokenServer.URL), "expected-state")

		first := httptest.NewRecorder()
		handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/callback?state=expected-state&code=auth-code", nil))

		second := httptest.NewRecorder()
		handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/callback?state=expected-state&code=auth-code", nil))

		if second.Code != http.StatusBadRequest {
			t.Errorf("expected replayed callback to be rejected, got %d", second.Code)
		}
	})

	t.Run("routes registers the callback path", func(t *testing.T) {
		handler := NewOAuthHandler(oauthTestConfig("http://invalid"), "state")

		routes := handler.Routes()
		if len(routes) != 1 || routes[0] != "/callback" {
			t.Errorf("expected [/callback], got %v", routes)
		}
	})
}

func TestBasicRouter(t *testing.T) {
	t.Run("dispatches by method", func(t *testing.T) {
		router := NewBasicRouter()
		router.Handle(http.MethodGet, "/ping", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if rec.Code != http.StatusNoContent {
			t.Errorf("expected 204, got %d", rec.Code)
		}

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ping", nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected 405 for wrong method, got %d", rec.Code)
		}
	})

	t.Run("applies middleware in registration order", func(t *testing.T) {
		router := NewBasicRouter()

		var order []string
		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, "first")
				next.ServeHTTP(w, r)
			})
		})
		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, "second")
				next.ServeHTTP(w, r)
			})
		})

		router.Handle(http.MethodGet, "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "handler")
		}))

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		want := []string{"first", "second", "handler"}
		for i, step := range want {
			if i >= len(order) || order[i] != step {
				t.Fatalf("expected order %v, got %v", want, order)
			}
		}
	})

	t.Run("registers handler routes", func(t *testing.T) {
		tokenServer := newTokenServer(t)
		defer tokenServer.Close()

		router := NewBasicRouter()
		router.Handler(NewOAuthHandler(oauthTestConfig(tokenServer.URL), "state"))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/callback?state=state&code=code", nil))
		if rec.Code != http.StatusOK {
			t.Errorf("expected oauth handler to be reachable, got %d", rec.Code)
		}
	})
}
