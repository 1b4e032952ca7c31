// Command syncctl runs reconciliation jobs from the command line against the
// configured database and remote store, and queries a running server.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-sheet-sync/models"
	"github.com/urfave/cli/v2"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	if err := newApp(build).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newApp(build models.AppBuildInfo) *cli.App {
	entityFlag := &cli.StringFlag{
		Name:    "entity",
		Aliases: []string{"e"},
		Usage:   "entity name; all entities when omitted",
	}
	requiredEntityFlag := &cli.StringFlag{
		Name:     "entity",
		Aliases:  []string{"e"},
		Usage:    "entity name",
		Required: true,
	}

	return &cli.App{
		Name:    "syncctl",
		Usage:   "reconcile local records with the remote spreadsheet store",
		Version: build.BuildVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a JSON configuration file",
				EnvVars: []string{"CONFIG"},
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "hide progress bars",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "version",
				Usage: "print build information",
				Action: func(c *cli.Context) error {
					fmt.Fprintf(c.App.Writer, "Build version: %s\n", build.BuildVersion())
					fmt.Fprintf(c.App.Writer, "Build date: %s\n", build.BuildDate())
					fmt.Fprintf(c.App.Writer, "Build commit: %s\n", build.BuildCommit())
					return nil
				},
			},
			{
				Name:   "migrate",
				Usage:  "apply database migrations",
				Action: migrateSchema,
			},
			{
				Name:   "entities",
				Usage:  "list configured entities",
				Action: listEntities,
			},
			{
				Name:  "sync",
				Usage: "reconcile unsynced records",
				Flags: []cli.Flag{
					entityFlag,
					&cli.StringFlag{
						Name:  "parent",
						Usage: "only records of this parent application (requires --entity)",
					},
				},
				Action: syncRecords,
			},
			{
				Name:   "import",
				Usage:  "pull remote rows into the local store",
				Flags:  []cli.Flag{requiredEntityFlag},
				Action: importRows,
			},
			{
				Name:   "migrate-all",
				Usage:  "reconcile every local record regardless of its sync flag",
				Flags:  []cli.Flag{entityFlag},
				Action: migrateAll,
			},
			{
				Name:   "compare",
				Usage:  "diff local records against remote rows without writing",
				Flags:  []cli.Flag{requiredEntityFlag},
				Action: compare,
			},
			{
				Name:  "status",
				Usage: "show the upload queue of a running server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "server",
						Usage: "server base URL",
						Value: "http://localhost:8080",
					},
					&cli.StringFlag{
						Name:    "token",
						Usage:   "bearer token",
						EnvVars: []string{"SYNCCTL_TOKEN"},
					},
				},
				Action: uploadStatus,
			},
			{
				Name:  "token",
				Usage: "issue a bearer token for the server API",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "operator",
						Usage:    "operator recorded in the token subject",
						Required: true,
					},
					&cli.DurationFlag{
						Name:  "ttl",
						Usage: "token lifetime",
						Value: 24 * time.Hour,
					},
				},
				Action: issueToken,
			},
		},
	}
}
