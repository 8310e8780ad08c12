package services

import (
	"context"

	"github.com/spotbird/spotmix/internal/models"
)

// Service defines the three operations of the playlist generation backend.
//
// Methods return an [Outcome] instead of an error: failure classification is
// part of the contract, and transport faults are a first-class outcome kind.
type Service interface {
	// Authenticate validates an opaque access token with the backend.
	// On success the payload carries the session and the normalized token,
	// which callers must persist instead of the input form.
	Authenticate(ctx context.Context, token string) Outcome[SessionResult]

	// FetchGenres retrieves the genre catalog.
	FetchGenres(ctx context.Context) Outcome[[]string]

	// ExecuteGeneration triggers a playlist generation run and blocks until
	// the backend resolves it.
	ExecuteGeneration(ctx context.Context, token string, req models.PlaylistRequest) Outcome[[]models.ResultLink]

	// Name returns the name of the backend (for logs and diagnostics).
	Name() string
}

// SessionResult is the payload of a successful [Service.Authenticate] call.
type SessionResult struct {
	Session models.Session

	// NormalizedToken is the cleaned token the backend wants used from now
	// on. Equal to the submitted token when the backend sent no cleaned form.
	NormalizedToken string
}
