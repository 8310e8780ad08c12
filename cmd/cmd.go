// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// authCommand handles token authentication against the backend
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage the saved access token",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Validate an access token and save it",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "token",
						Aliases:  []string{"t"},
						Usage:    "Opaque access token to validate",
						Required: true,
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "status",
				Usage:  "Validate the saved token and show the profile",
				Action: r.AuthStatus,
			},
			{
				Name:   "logout",
				Usage:  "Remove the saved token",
				Action: r.AuthLogout,
			},
		},
	}
}

// genresCommand prints the backend's genre catalog
func genresCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "genres",
		Usage: "List available genres",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.Genres,
	}
}

// generateCommand runs a generation synchronously without the TUI
func generateCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Generate playlists from the selected genres",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "Playlist name (defaults to the configured name)",
			},
			&cli.StringFlag{
				Name:    "description",
				Aliases: []string{"d"},
				Usage:   "Playlist description",
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"c"},
				Usage:   "Number of tracks to gather",
			},
			&cli.StringSliceFlag{
				Name:    "genre",
				Aliases: []string{"g"},
				Usage:   "Genre to include (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "markdown",
				Usage: "Output a Markdown list",
			},
		},
		Action: r.Generate,
	}
}
