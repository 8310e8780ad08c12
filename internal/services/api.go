// HTTP client for the playlist generation backend (FastAPI service).
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/spotbird/spotmix/internal/models"
	"github.com/spotbird/spotmix/internal/shared"
	"golang.org/x/time/rate"
)

// APIService implements [Service] over the backend's HTTP/JSON contract.
//
// A client-side [rate.Limiter] spaces outgoing calls; the backend throttles
// aggressively and user-triggered retries should not land in a burst.
type APIService struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *log.Logger
}

// NewAPIService creates a new backend client.
func NewAPIService(baseURL string, client *http.Client, logger *log.Logger) *APIService {
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &APIService{
		baseURL:    baseURL,
		httpClient: client,
		limiter:    rate.NewLimiter(rate.Limit(2), 2),
		logger:     shared.WithLogger(logger, "component", "api"),
	}
}

func (a *APIService) Name() string {
	return "playlist backend"
}

// authResponse is the /authenticate response body. The backend historically
// reported the display name under "user"; newer versions use "display_name".
type authResponse struct {
	statusEnvelope
	DisplayName  string `json:"display_name"`
	User         string `json:"user"`
	ID           string `json:"id"`
	Image        string `json:"image"`
	CleanedToken string `json:"cleaned_token"`
}

// genresResponse is the /genres response body.
type genresResponse struct {
	statusEnvelope
	Genres []string `json:"genres"`
}

// executeResponse is the /execute response body.
type executeResponse struct {
	statusEnvelope
	Links       []models.ResultLink `json:"links"`
	TotalTracks int                 `json:"total_tracks"`
}

// Authenticate implements [Service.Authenticate].
func (a *APIService) Authenticate(ctx context.Context, token string) Outcome[SessionResult] {
	payload := map[string]string{"token": token}

	var resp authResponse
	if err := a.postJSON(ctx, "/authenticate", payload, &resp); err != nil {
		a.logger.Warn("authenticate transport failure", "error", err)
		return transportOutcome[SessionResult](err)
	}

	if resp.Status != statusSuccess {
		return classify[SessionResult](resp.statusEnvelope)
	}

	normalized := resp.CleanedToken
	if normalized == "" {
		normalized = token
	}

	displayName := resp.DisplayName
	if displayName == "" {
		displayName = resp.User
	}

	return successOutcome(SessionResult{
		Session: models.Session{
			Token: normalized,
			Profile: &models.UserProfile{
				DisplayName: displayName,
				ID:          resp.ID,
				ImageURL:    resp.Image,
			},
		},
		NormalizedToken: normalized,
	})
}

// FetchGenres implements [Service.FetchGenres].
func (a *APIService) FetchGenres(ctx context.Context) Outcome[[]string] {
	var resp genresResponse
	if err := a.getJSON(ctx, "/genres", &resp); err != nil {
		a.logger.Warn("genres transport failure", "error", err)
		return transportOutcome[[]string](err)
	}

	// /genres has no status discriminator on the happy path, but a throttled
	// or broken backend still answers with an error envelope.
	if resp.Status != "" && resp.Status != statusSuccess {
		return classify[[]string](resp.statusEnvelope)
	}

	return successOutcome(resp.Genres)
}

// ExecuteGeneration implements [Service.ExecuteGeneration].
func (a *APIService) ExecuteGeneration(ctx context.Context, token string, req models.PlaylistRequest) Outcome[[]models.ResultLink] {
	payload := map[string]any{
		"token":         token,
		"genres":        req.Genres,
		"playlist_name": req.Name,
		"description":   req.Description,
		"track_count":   req.TrackCount,
	}

	var resp executeResponse
	if err := a.postJSON(ctx, "/execute", payload, &resp); err != nil {
		a.logger.Warn("execute transport failure", "error", err)
		return transportOutcome[[]models.ResultLink](err)
	}

	if resp.Status != statusSuccess {
		return classify[[]models.ResultLink](resp.statusEnvelope)
	}

	a.logger.Info("generation complete", "playlists", len(resp.Links), "tracks", resp.TotalTracks)
	return successOutcome(resp.Links)
}

// getJSON performs a GET request and decodes the JSON response into result.
func (a *APIService) getJSON(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return a.do(req, result)
}

// postJSON performs a POST request with a JSON body and decodes the JSON
// response into result.
func (a *APIService) postJSON(ctx context.Context, path string, payload any, result any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return a.do(req, result)
}

func (a *APIService) do(req *http.Request, result any) error {
	// Correlation id for matching client-side logs against backend traces.
	req.Header.Set("X-Request-ID", shared.GenerateID())

	if err := a.limiter.Wait(req.Context()); err != nil {
		return fmt.Errorf("request cancelled: %w", err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("malformed response (status %d): %w", resp.StatusCode, err)
	}

	return nil
}
