// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand handles setup operations for the local database and configuration.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize local database and run migrations",
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

// authCommand handles authentication operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage authentication",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Log in and connect Spotify",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "username",
						Aliases:  []string{"u"},
						Usage:    "Account username",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "no-spotify",
						Usage: "Skip the Spotify authorization hand-off",
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:  "signup",
				Usage: "Create a new account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "username",
						Aliases:  []string{"u"},
						Usage:    "Account username",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Account email",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
				},
				Action: r.AuthSignup,
			},
			{
				Name:   "logout",
				Usage:  "Clear the stored session",
				Action: r.AuthLogout,
			},
			{
				Name:   "status",
				Usage:  "Show the stored session state",
				Action: r.AuthStatus,
			},
		},
	}
}

// surveyCommand runs the mood survey non-interactively.
func surveyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "survey",
		Usage: "Mood survey operations",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Submit survey answers and generate a playlist",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "answers",
						Aliases:  []string{"a"},
						Usage:    "Comma-separated ratings, one per question (1-5)",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "save",
						Usage: "Save the playlist association after generation",
					},
					&cli.BoolFlag{
						Name:  "play",
						Usage: "Start playback after generation",
					},
					&cli.BoolFlag{
						Name:  "tracks",
						Usage: "List the generated tracks",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.SurveyRun,
			},
			{
				Name:   "questions",
				Usage:  "Print the survey questions",
				Action: r.SurveyQuestions,
			},
		},
	}
}

// playlistCommand handles saved playlist operations
func playlistCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playlist",
		Aliases: []string{"pl"},
		Usage:   "Saved playlist operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List your saved playlists",
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
				Action: r.PlaylistList,
			},
			{
				Name:  "view",
				Usage: "Show the tracks of a playlist",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Spotify playlist ID or generation reference",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.PlaylistView,
			},
			{
				Name:  "play",
				Usage: "Start playback on your Spotify device",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Spotify playlist ID or generation reference",
						Required: true,
					},
				},
				Action: r.PlaylistPlay,
			},
			{
				Name:  "save",
				Usage: "Save a playlist association",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Playlist name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "mood",
						Usage:    "Mood label (happy, sad, love, energy)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Spotify playlist ID or generation reference",
						Required: true,
					},
				},
				Action: r.PlaylistSave,
			},
			{
				Name:  "export",
				Usage: "Export a playlist's tracks to a file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Spotify playlist ID or generation reference",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "name",
						Usage: "Playlist name to put in the export",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format: csv, markdown or text",
						Value:   "text",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
					},
				},
				Action: r.PlaylistExport,
			},
		},
	}
}

// profileCommand handles the locally stored profile fields
func profileCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "Local profile operations",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Show your locally stored profile",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.ProfileShow,
			},
			{
				Name:  "edit",
				Usage: "Edit profile fields (stored locally only)",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "bio",
						Usage: "Short bio",
					},
					&cli.StringFlag{
						Name:  "genres",
						Usage: "Comma-separated favorite genres",
					},
					&cli.StringFlag{
						Name:  "avatar",
						Usage: "Avatar reference",
					},
					&cli.StringFlag{
						Name:  "picture",
						Usage: "Profile picture reference",
					},
				},
				Action: r.ProfileEdit,
			},
			{
				Name:  "theme",
				Usage: "Show or set the UI theme",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "set",
						Usage: "Theme to store (light or dark)",
					},
				},
				Action: r.ProfileTheme,
			},
		},
	}
}

// songCommand handles the shared song catalog
func songCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "song",
		Aliases: []string{"songs"},
		Usage:   "Song catalog operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List the shared song catalog",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.SongList,
			},
			{
				Name:  "fetch",
				Usage: "Download a song's audio to a file",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "id",
						Usage:    "Song ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
					},
				},
				Action: r.SongFetch,
			},
		},
	}
}

// apiCommand handles direct backend API calls
func apiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Direct API calls to the Zenith backend",
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Direct GET to the backend, prints raw JSON",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
						Value: true,
					},
				},
				Action: r.APIGet,
			},
			{
				Name:  "post",
				Usage: "Direct POST with JSON body",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "JSON body to send",
						Required: true,
					},
				},
				Action: r.APIPost,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive terminal UI",
		Action:  r.TUI,
	}
}
