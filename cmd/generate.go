package main

import (
	"context"
	"fmt"

	"github.com/spotbird/spotmix/internal/formatter"
	"github.com/spotbird/spotmix/internal/models"
	"github.com/spotbird/spotmix/internal/shared"
	"github.com/urfave/cli/v3"
)

// Genres fetches and prints the genre catalog.
func (r *Runner) Genres(ctx context.Context, cmd *cli.Command) error {
	r.logger.Info("fetching genre catalog")

	outcome := r.svc.FetchGenres(ctx)
	if !outcome.Succeeded() {
		return outcomeError(outcome)
	}

	catalog := outcome.Payload
	if len(catalog) == 0 {
		return fmt.Errorf("%w: server returned an empty catalog", shared.ErrNoGenres)
	}

	if cmd.Bool("json") {
		return r.writeJSON(map[string][]string{"genres": catalog}, cmd.Bool("pretty"))
	}

	selected := models.NewGenreSelection(r.config.Defaults.Genres...)
	return r.writePlain("%s", formatter.GenresToText(catalog, selected))
}

// Generate runs a generation synchronously and prints the result links.
//
// Flags left unset fall back to the configured form defaults, mirroring the
// TUI's initial state.
func (r *Runner) Generate(ctx context.Context, cmd *cli.Command) error {
	token, ok := r.store.Load()
	if !ok {
		return fmt.Errorf("%w: run 'spotmix auth login' first", shared.ErrNotAuthenticated)
	}

	req := models.PlaylistRequest{
		Name:        cmd.String("name"),
		Description: cmd.String("description"),
		TrackCount:  int(cmd.Int("count")),
		Genres:      cmd.StringSlice("genre"),
	}
	if req.Name == "" {
		req.Name = r.config.Defaults.PlaylistName
	}
	if req.Description == "" {
		req.Description = r.config.Defaults.Description
	}
	if req.TrackCount == 0 {
		req.TrackCount = r.config.Defaults.TrackCount
	}
	if len(req.Genres) == 0 {
		req.Genres = r.config.Defaults.Genres
	}

	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	r.logger.Info("starting generation", "genres", req.Genres, "tracks", req.TrackCount)

	outcome := r.svc.ExecuteGeneration(ctx, token, req)
	if !outcome.Succeeded() {
		return outcomeError(outcome)
	}

	links := outcome.Payload
	r.logger.Info("generation finished", "playlists", len(links))

	if cmd.Bool("json") {
		return r.writeJSON(links, true)
	}
	if cmd.Bool("markdown") {
		return r.writePlain("%s", formatter.LinksToMarkdown(links))
	}
	return r.writePlain("%s", formatter.LinksToText(links))
}
