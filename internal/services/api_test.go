package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spotbird/spotmix/internal/models"
	"github.com/spotbird/spotmix/internal/shared"
)

// failingTripper stands in for a network that refuses every request.
type failingTripper struct {
	err error
}

func (f failingTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, f.err
}

func TestAPIService(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		t.Run("With Custom BaseURL and Client", func(t *testing.T) {
			customClient := &http.Client{}
			srv := NewAPIService("http://example.com", customClient, nil)

			if srv.baseURL != "http://example.com" {
				t.Errorf("expected baseURL 'http://example.com', got %s", srv.baseURL)
			}
			if srv.httpClient != customClient {
				t.Error("expected custom client to be used")
			}
		})

		t.Run("With Empty BaseURL", func(t *testing.T) {
			srv := NewAPIService("", nil, nil)

			if srv.baseURL != "http://localhost:8000" {
				t.Errorf("expected default baseURL 'http://localhost:8000', got %s", srv.baseURL)
			}
		})

		t.Run("With Nil Client", func(t *testing.T) {
			srv := NewAPIService("http://example.com", nil, nil)

			if srv.httpClient != http.DefaultClient {
				t.Error("expected http.DefaultClient to be used")
			}
		})

		t.Run("Logger Is Scoped To The Component", func(t *testing.T) {
			var buf bytes.Buffer
			client := &http.Client{Transport: failingTripper{err: errors.New("dial refused")}}
			srv := NewAPIService("http://example.com", client, shared.NewLogger(&buf))

			srv.Authenticate(context.Background(), "tok")

			if !strings.Contains(buf.String(), "component=api") {
				t.Errorf("expected log entries tagged with the component, got %s", buf.String())
			}
		})
	})

	t.Run("Request Correlation IDs", func(t *testing.T) {
		var ids []string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ids = append(ids, r.Header.Get("X-Request-ID"))
			json.NewEncoder(w).Encode(map[string]any{"genres": []string{}})
		}))
		defer server.Close()

		srv := NewAPIService(server.URL, server.Client(), nil)
		srv.FetchGenres(context.Background())
		srv.FetchGenres(context.Background())

		if len(ids) != 2 {
			t.Fatalf("expected two requests, got %d", len(ids))
		}
		for _, id := range ids {
			if len(id) != 36 {
				t.Errorf("expected canonical UUID header, got %q", id)
			}
		}
		if ids[0] == ids[1] {
			t.Error("expected each request to carry its own id")
		}
	})

	t.Run("Authenticate", func(t *testing.T) {
		t.Run("Success With Cleaned Token", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("expected POST method, got %s", r.Method)
				}
				if r.URL.Path != "/authenticate" {
					t.Errorf("expected path '/authenticate', got %s", r.URL.Path)
				}

				body, _ := io.ReadAll(r.Body)
				var payload map[string]string
				if err := json.Unmarshal(body, &payload); err != nil {
					t.Errorf("failed to unmarshal request body: %v", err)
				}
				if payload["token"] != "  raw-token  " {
					t.Errorf("expected raw token to be forwarded, got %q", payload["token"])
				}

				json.NewEncoder(w).Encode(map[string]any{
					"status":        "success",
					"user":          "Thunder",
					"id":            "user-1",
					"image":         "https://img.example/u.png",
					"cleaned_token": "raw-token",
				})
			}))
			defer server.Close()

			srv := NewAPIService(server.URL, nil, nil)
			outcome := srv.Authenticate(context.Background(), "  raw-token  ")

			if !outcome.Succeeded() {
				t.Fatalf("expected success, got %s: %s", outcome.Kind, outcome.Message)
			}
			if outcome.Payload.NormalizedToken != "raw-token" {
				t.Errorf("expected normalized token 'raw-token', got %s", outcome.Payload.NormalizedToken)
			}
			if outcome.Payload.Session.Token != "raw-token" {
				t.Errorf("expected session token 'raw-token', got %s", outcome.Payload.Session.Token)
			}
			profile := outcome.Payload.Session.Profile
			if profile == nil {
				t.Fatal("expected profile to be populated")
			}
			if profile.DisplayName != "Thunder" {
				t.Errorf("expected display name 'Thunder', got %s", profile.DisplayName)
			}
			if profile.ID != "user-1" {
				t.Errorf("expected id 'user-1', got %s", profile.ID)
			}
		})

		t.Run("Success Without Cleaned Token Falls Back To Input", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{"status": "success", "user": "Thunder"})
			}))
			defer server.Close()

			srv := NewAPIService(server.URL, nil, nil)
			outcome := srv.Authenticate(context.Background(), "original")

			if !outcome.Succeeded() {
				t.Fatalf("expected success, got %s", outcome.Kind)
			}
			if outcome.Payload.NormalizedToken != "original" {
				t.Errorf("expected fallback to input token, got %s", outcome.Payload.NormalizedToken)
			}
		})

		t.Run("Auth Error", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{"status": "auth_error", "message": "Invalid token"})
			}))
			defer server.Close()

			srv := NewAPIService(server.URL, nil, nil)
			outcome := srv.Authenticate(context.Background(), "abc")

			if outcome.Kind != AuthFailed {
				t.Errorf("expected AuthFailed, got %s", outcome.Kind)
			}
			if outcome.Message != "Invalid token" {
				t.Errorf("expected 'Invalid token', got %s", outcome.Message)
			}
		})

		t.Run("Transport Failure", func(t *testing.T) {
			client := &http.Client{
				Transport: failingTripper{err: errors.New("connection refused")},
			}

			srv := NewAPIService("http://example.com", client, nil)
			outcome := srv.Authenticate(context.Background(), "abc")

			if outcome.Kind != Transport {
				t.Errorf("expected Transport, got %s", outcome.Kind)
			}
		})

		t.Run("Malformed Response Body", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<html>gateway error</html>"))
			}))
			defer server.Close()

			srv := NewAPIService(server.URL, nil, nil)
			outcome := srv.Authenticate(context.Background(), "abc")

			if outcome.Kind != Transport {
				t.Errorf("expected Transport for malformed body, got %s", outcome.Kind)
			}
		})

		t.Run("With Canceled Context", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			srv := NewAPIService(server.URL, nil, nil)
			outcome := srv.Authenticate(ctx, "abc")

			if outcome.Kind != Transport {
				t.Errorf("expected Transport for canceled context, got %s", outcome.Kind)
			}
		})
	})

	t.Run("FetchGenres", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet {
					t.Errorf("expected GET method, got %s", r.Method)
				}
				if r.URL.Path != "/genres" {
					t.Errorf("expected path '/genres', got %s", r.URL.Path)
				}
				json.NewEncoder(w).Encode(map[string]any{"genres": []string{"pop", "dance", "jazz"}})
			}))
			defer server.Close()

			srv := NewAPIService(server.URL, nil, nil)
			outcome := srv.FetchGenres(context.Background())

			if !outcome.Succeeded() {
				t.Fatalf("expected success, got %s: %s", outcome.Kind, outcome.Message)
			}
			if len(outcome.Payload) != 3 {
				t.Fatalf("expected 3 genres, got %d", len(outcome.Payload))
			}
			if outcome.Payload[0] != "pop" {
				t.Errorf("expected first genre 'pop', got %s", outcome.Payload[0])
			}
		})

		t.Run("Empty Catalog Is Still Success", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{"genres": []string{}})
			}))
			defer server.Close()

			srv := NewAPIService(server.URL, nil, nil)
			outcome := srv.FetchGenres(context.Background())

			if !outcome.Succeeded() {
				t.Errorf("expected success for empty catalog, got %s", outcome.Kind)
			}
			if len(outcome.Payload) != 0 {
				t.Errorf("expected empty payload, got %d genres", len(outcome.Payload))
			}
		})

		t.Run("Rate Limited", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{
					"status":      "rate_limit",
					"message":     "Too many requests",
					"retry_after": 30,
				})
			}))
			defer server.Close()

			srv := NewAPIService(server.URL, nil, nil)
			outcome := srv.FetchGenres(context.Background())

			if outcome.Kind != RateLimited {
				t.Errorf("expected RateLimited, got %s", outcome.Kind)
			}
			if outcome.RetryAfter != 30 {
				t.Errorf("expected retry hint 30, got %d", outcome.RetryAfter)
			}
		})
	})

	t.Run("ExecuteGeneration", func(t *testing.T) {
		req := models.PlaylistRequest{
			Name:        "My Discovery Mix",
			Description: "test mix",
			TrackCount:  100,
			Genres:      []string{"pop", "dance"},
		}

		t.Run("Success Preserves Link Order", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/execute" {
					t.Errorf("expected path '/execute', got %s", r.URL.Path)
				}

				body, _ := io.ReadAll(r.Body)
				var payload map[string]any
				if err := json.Unmarshal(body, &payload); err != nil {
					t.Errorf("failed to unmarshal request body: %v", err)
				}
				if payload["token"] != "tok" {
					t.Errorf("expected token 'tok', got %v", payload["token"])
				}
				if payload["playlist_name"] != "My Discovery Mix" {
					t.Errorf("expected playlist_name from request, got %v", payload["playlist_name"])
				}
				if payload["track_count"] != float64(100) {
					t.Errorf("expected track_count 100, got %v", payload["track_count"])
				}

				json.NewEncoder(w).Encode(map[string]any{
					"status": "success",
					"links": []map[string]string{
						{"name": "My Discovery Mix (pop)", "url": "https://open.spotify.com/playlist/1"},
						{"name": "My Discovery Mix (dance)", "url": "https://open.spotify.com/playlist/2"},
					},
					"total_tracks": 100,
				})
			}))
			defer server.Close()

			srv := NewAPIService(server.URL, nil, nil)
			outcome := srv.ExecuteGeneration(context.Background(), "tok", req)

			if !outcome.Succeeded() {
				t.Fatalf("expected success, got %s: %s", outcome.Kind, outcome.Message)
			}
			if len(outcome.Payload) != 2 {
				t.Fatalf("expected 2 links, got %d", len(outcome.Payload))
			}
			if outcome.Payload[0].Name != "My Discovery Mix (pop)" {
				t.Errorf("expected first link to keep response order, got %s", outcome.Payload[0].Name)
			}
			if outcome.Payload[1].URL != "https://open.spotify.com/playlist/2" {
				t.Errorf("unexpected second link URL %s", outcome.Payload[1].URL)
			}
		})

		t.Run("Rate Limited With Retry Hint", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{
					"status":      "rate_limit",
					"message":     "Spotify is throttling requests",
					"retry_after": 30,
				})
			}))
			defer server.Close()

			srv := NewAPIService(server.URL, nil, nil)
			outcome := srv.ExecuteGeneration(context.Background(), "tok", req)

			if outcome.Kind != RateLimited {
				t.Errorf("expected RateLimited, got %s", outcome.Kind)
			}
			if outcome.RetryAfter != 30 {
				t.Errorf("expected retry hint 30, got %d", outcome.RetryAfter)
			}
		})

		t.Run("Forbidden", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{"status": "forbidden", "message": "Missing scope"})
			}))
			defer server.Close()

			srv := NewAPIService(server.URL, nil, nil)
			outcome := srv.ExecuteGeneration(context.Background(), "tok", req)

			if outcome.Kind != Forbidden {
				t.Errorf("expected Forbidden, got %s", outcome.Kind)
			}
		})

		t.Run("Transport Failure", func(t *testing.T) {
			client := &http.Client{
				Transport: failingTripper{err: errors.New("connection refused")},
			}

			srv := NewAPIService("http://example.com", client, nil)
			outcome := srv.ExecuteGeneration(context.Background(), "tok", req)

			if outcome.Kind != Transport {
				t.Errorf("expected Transport, got %s", outcome.Kind)
			}
		})
	})
}
