package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spotbird/spotmix/internal/services"
	"github.com/spotbird/spotmix/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthLogin validates the provided token against the backend and persists the
// normalized form on success.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	token := strings.TrimSpace(cmd.String("token"))
	if token == "" {
		return fmt.Errorf("%w: token", shared.ErrMissingArgument)
	}

	r.logger.Info("validating access token")

	outcome := r.svc.Authenticate(ctx, token)
	if !outcome.Succeeded() {
		return outcomeError(outcome)
	}

	result := outcome.Payload
	r.store.Save(result.NormalizedToken)
	r.logger.Info("token saved", "normalized", result.NormalizedToken != token)

	return r.writePlain("✓ Authenticated as %s\n", result.Session.DisplayName("unknown user"))
}

// AuthStatus validates the saved token and prints the associated profile.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	token, ok := r.store.Load()
	if !ok {
		return r.writePlain("✗ No saved token. Run 'spotmix auth login' first.\n")
	}

	outcome := r.svc.Authenticate(ctx, token)
	if !outcome.Succeeded() {
		return outcomeError(outcome)
	}

	session := outcome.Payload.Session
	r.writePlain("✓ Token valid\n")
	r.writePlain("User: %s\n", session.DisplayName("unknown"))
	if session.Profile != nil && session.Profile.ID != "" {
		r.writePlain("ID: %s\n", session.Profile.ID)
	}
	return nil
}

// AuthLogout removes the saved token.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	r.store.Clear()
	return r.writePlain("✓ Logged out\n")
}

// outcomeError maps a failed outcome onto the sentinel
// error taxonomy for CLI exit reporting.
func outcomeError[T any](outcome services.Outcome[T]) error {
	switch outcome.Kind {
	case services.RateLimited:
		return fmt.Errorf("%w: %s (retry in %ds)", shared.ErrRateLimited, outcome.Message, outcome.RetryAfter)
	case services.AuthFailed:
		return fmt.Errorf("%w: %s", shared.ErrAuthFailed, outcome.Message)
	case services.Forbidden:
		return fmt.Errorf("%w: %s", shared.ErrForbidden, outcome.Message)
	case services.Transport:
		return fmt.Errorf("%w: %s", shared.ErrServiceUnavailable, outcome.Message)
	default:
		return fmt.Errorf("%w: %s", shared.ErrAPIRequest, outcome.Message)
	}
}
