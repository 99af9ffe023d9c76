// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// importFlags are shared by the three import commands.
func importFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
			Value:   "config.toml",
		},
		&cli.StringFlag{
			Name:    "title",
			Aliases: []string{"t"},
			Usage:   "Title for the created playlist",
		},
		&cli.StringFlag{
			Name:    "description",
			Aliases: []string{"d"},
			Usage:   "Description for the created playlist",
		},
		&cli.StringFlag{
			Name:    "privacy",
			Aliases: []string{"p"},
			Usage:   "Privacy for the created playlist (public, private, unlisted)",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output the run summary as JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print JSON output",
			Value: true,
		},
	}
}

// importFileCommand creates a playlist from a newline-delimited file of video references.
func importFileCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "playlist-from-url",
		Aliases:   []string{"from-file"},
		Usage:     "Create a playlist from a file of video URLs or IDs",
		ArgsUsage: "<file>",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "file"},
		},
		Flags:  importFlags(),
		Action: r.ImportFromFile,
	}
}

// importPlaylistCommand duplicates an existing playlist referenced by URL.
func importPlaylistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "playlist-from-playlist-url",
		Aliases:   []string{"from-playlist"},
		Usage:     "Create a playlist from an existing playlist URL",
		ArgsUsage: "<url>",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "url"},
		},
		Flags:  importFlags(),
		Action: r.ImportFromPlaylistURL,
	}
}

// watchLaterCommand duplicates the authenticated user's Watch Later playlist.
func watchLaterCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "duplicate-watch-later",
		Aliases: []string{"watch-later"},
		Usage:   "Duplicate your Watch Later playlist into a regular playlist",
		Flags:   importFlags(),
		Action:  r.ImportWatchLater,
	}
}

// authCommand handles authentication operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage authentication",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Authenticate with YouTube using OAuth2",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "status",
				Usage:  "Check current authentication state",
				Action: r.AuthStatus,
			},
		},
	}
}

// setupCommand handles setup operations for configuration and the database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Create a config.toml from the bundled template",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
			{
				Name:  "database",
				Usage: "Initialize database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// exportCommand handles playlist export operations.
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export playlists to local files",
		Commands: []*cli.Command{
			{
				Name:      "playlists",
				Usage:     "Export playlists to JSON, CSV, or text files",
				ArgsUsage: "[playlist-id ...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format (json, csv, txt)",
						Value:   "json",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output directory (default: youtube_export_{timestamp})",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of concurrent export workers (max 10)",
						Value: 5,
					},
					&cli.FloatFlag{
						Name:  "rate-limit",
						Usage: "API requests per second",
						Value: 5.0,
					},
				},
				Action: r.ExportPlaylists,
			},
		},
	}
}

// historyCommand inspects recorded import runs.
func historyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Inspect recorded import runs",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List recorded import runs",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "mode",
						Usage: "Filter by import mode (file, playlist, watch-later)",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of runs to show",
						Value: 20,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.HistoryList,
			},
			{
				Name:      "show",
				Usage:     "Show a single import run",
				ArgsUsage: "<run-id>",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.HistoryShow,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive playlist duplication.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI for playlist duplication",
		Flags:   importFlags(),
		Action:  r.TUI,
	}
}
