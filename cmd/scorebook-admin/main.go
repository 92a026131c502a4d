package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/DhavalSuthar-24/scorebook/config"
	"github.com/DhavalSuthar-24/scorebook/internal/app"
	"github.com/DhavalSuthar-24/scorebook/utils"
	"github.com/urfave/cli/v2"
)

const (
	fileFlag      = "file"
	outputFlag    = "output"
	yesFlag       = "yes"
	stdoutCLIName = "-"
)

var version = "v0.1.0-dev"

// withApp loads configuration, connects the store and hands the wired
// services to fn.
func withApp(fn func(ctx context.Context, a *app.App, cCtx *cli.Context) error) cli.ActionFunc {
	return func(cCtx *cli.Context) error {
		if err := config.Initialize(); err != nil {
			return err
		}
		cfg := config.GetConfig()
		logger := config.NewLogger(cfg)
		ctx := cCtx.Context
		a, err := app.Build(ctx, cfg, config.DB, logger)
		if err != nil {
			return err
		}
		return fn(ctx, a, cCtx)
	}
}

func recomputeAction(ctx context.Context, a *app.App, cCtx *cli.Context) error {
	report, err := a.Matches.Recompute(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(cCtx.App.Writer, report.String())
	return nil
}

func importRosterAction(ctx context.Context, a *app.App, cCtx *cli.Context) error {
	f, err := os.Open(cCtx.String(fileFlag))
	if err != nil {
		return err
	}
	defer f.Close()

	roster, err := parseRoster(f)
	if err != nil {
		return err
	}
	res, err := importRoster(ctx, a.Store, roster)
	if err != nil {
		return err
	}
	fmt.Fprintf(cCtx.App.Writer, "%d teams added, %d players upserted\n", res.TeamsAdded, res.Players)
	return nil
}

func exportStandingsAction(ctx context.Context, a *app.App, cCtx *cli.Context) error {
	var w io.Writer = cCtx.App.Writer
	if out := cCtx.String(outputFlag); out != stdoutCLIName {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return exportStandings(ctx, a.Store, w)
}

func wipeAction(ctx context.Context, a *app.App, cCtx *cli.Context) error {
	if !cCtx.Bool(yesFlag) {
		return cli.Exit("refusing to wipe without --yes", 2)
	}
	if err := a.Matches.Wipe(ctx); err != nil {
		return err
	}
	fmt.Fprintln(cCtx.App.Writer, "all matches, teams and players deleted")
	return nil
}

func hashPasswordAction(cCtx *cli.Context) error {
	password := cCtx.Args().First()
	if password == "" {
		line, err := bufio.NewReader(cCtx.App.Reader).ReadString('\n')
		if err != nil && err != io.EOF {
			return err
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if password == "" {
		return cli.Exit("password is empty", 2)
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	fmt.Fprintln(cCtx.App.Writer, hash)
	return nil
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "scorebook-admin",
		Usage:   "Operator maintenance for the scorebook record store",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:   "recompute",
				Usage:  "Rebuild standings and player careers from completed matches",
				Action: withApp(recomputeAction),
			},
			{
				Name:  "import-roster",
				Usage: "Create teams and upsert players from a YAML roster",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     fileFlag,
						Aliases:  []string{"f"},
						Usage:    "Path to the roster YAML file",
						Required: true,
					},
				},
				Action: withApp(importRosterAction),
			},
			{
				Name:  "export-standings",
				Usage: "Write the standings table and player careers as YAML",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    outputFlag,
						Aliases: []string{"o"},
						Usage:   "The location to write the YAML result. Can be a file path or \"-\" (for stdout).",
						Value:   stdoutCLIName,
					},
				},
				Action: withApp(exportStandingsAction),
			},
			{
				Name:  "wipe",
				Usage: "Delete every match, team and player and restore default settings",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  yesFlag,
						Usage: "Confirm the wipe",
					},
				},
				Action: withApp(wipeAction),
			},
			{
				Name:      "hash-password",
				Usage:     "Print a bcrypt hash for OPERATOR_PASSWORD_HASH",
				ArgsUsage: "[password]",
				Action:    hashPasswordAction,
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
