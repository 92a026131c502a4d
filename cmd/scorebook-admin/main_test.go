package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/scorebook/config"
	"github.com/DhavalSuthar-24/scorebook/internal/app"
	"github.com/DhavalSuthar-24/scorebook/internal/models"
	"github.com/DhavalSuthar-24/scorebook/internal/store/memory"
	"github.com/DhavalSuthar-24/scorebook/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const rosterYAML = `
teams:
  - name: Lions
    players:
      - name: Asha
        role: batter
      - name: Meera
  - name: Tigers
    players:
      - name: Ravi
        role: bowler
`

func TestParseRosterRejectsBadInput(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"unknown field": "teams:\n  - name: Lions\n    captain: Asha\n",
		"blank team":    "teams:\n  - name: ' '\n",
		"duplicate":     "teams:\n  - name: Lions\n  - name: Lions\n",
		"blank player":  "teams:\n  - name: Lions\n    players:\n      - role: batter\n",
	}
	for name, in := range tests {
		_, err := parseRoster(strings.NewReader(in))
		assert.Error(t, err, name)
	}
}

func TestImportRosterKeepsExistingTotals(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := memory.New()
	require.NoError(t, st.CreateTeam(ctx, &models.TeamRecord{Name: "Lions", Points: 4, Won: 2, Played: 2}))
	require.NoError(t, st.BulkUpsertPlayers(ctx, []models.PlayerRecord{{Name: "Asha", Team: "Lions", Runs: 88}}))

	roster, err := parseRoster(strings.NewReader(rosterYAML))
	require.NoError(t, err)
	res, err := importRoster(ctx, st, roster)
	require.NoError(t, err)
	assert.Equal(t, 1, res.TeamsAdded)
	assert.Equal(t, 3, res.Players)

	teams, err := st.ListTeams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "Lions", teams[0].Name)
	assert.Equal(t, 4, teams[0].Points)

	players, err := st.ListPlayers(ctx)
	require.NoError(t, err)
	require.Len(t, players, 3)
	for _, p := range players {
		if p.Name == "Asha" {
			assert.Equal(t, 88, p.Runs)
			assert.Equal(t, "batter", p.Role)
		}
	}
}

func TestExportStandings(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := memory.New()
	require.NoError(t, st.BulkUpsertTeams(ctx, []models.TeamRecord{
		{Name: "Tigers", Points: 0, Played: 1, Lost: 1},
		{Name: "Lions", Points: 2, Played: 1, Won: 1},
	}))
	require.NoError(t, st.BulkUpsertPlayers(ctx, []models.PlayerRecord{{Name: "Asha", Team: "Lions", Runs: 51, Fifties: 1}}))

	var buf bytes.Buffer
	require.NoError(t, exportStandings(ctx, st, &buf))

	var got standingsFile
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Teams, 2)
	assert.Equal(t, "Lions", got.Teams[0].Name)
	require.Len(t, got.Players, 1)
	assert.Equal(t, 1, got.Players[0].Fifties)
	assert.Contains(t, buf.String(), "highest_score: 0")
}

func TestHashPasswordCommand(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	a := newApp()
	a.Writer = &out
	require.NoError(t, a.Run([]string{"scorebook-admin", "hash-password", "letmein"}))

	hash := strings.TrimSpace(out.String())
	assert.True(t, utils.CheckPassword(hash, "letmein"))
}

func TestHashPasswordFromStdin(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	a := newApp()
	a.Writer = &out
	a.Reader = strings.NewReader("from-stdin\n")
	require.NoError(t, a.Run([]string{"scorebook-admin", "hash-password"}))
	assert.True(t, utils.CheckPassword(strings.TrimSpace(out.String()), "from-stdin"))
}

func wipeCLI(t *testing.T) (*cli.App, *app.App, *bytes.Buffer) {
	t.Helper()
	cfg := &config.Config{}
	cfg.App.Env = config.EnvMemory
	cfg.Scoring.TotalOvers = 20
	cfg.Milestones.DisplayDuration = time.Second
	a, err := app.Build(context.Background(), cfg, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	var out bytes.Buffer
	c := &cli.App{
		Name:           "scorebook-admin",
		Writer:         &out,
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{{
			Name:  "wipe",
			Flags: []cli.Flag{&cli.BoolFlag{Name: yesFlag}},
			Action: func(cCtx *cli.Context) error {
				return wipeAction(cCtx.Context, a, cCtx)
			},
		}},
	}
	return c, a, &out
}

func TestWipeNeedsConfirmation(t *testing.T) {
	t.Parallel()
	c, a, _ := wipeCLI(t)
	ctx := context.Background()
	require.NoError(t, a.Store.CreateTeam(ctx, &models.TeamRecord{Name: "Lions"}))

	err := c.Run([]string{"scorebook-admin", "wipe"})
	var exit cli.ExitCoder
	require.ErrorAs(t, err, &exit)
	assert.Equal(t, 2, exit.ExitCode())

	teams, err := a.Store.ListTeams(ctx)
	require.NoError(t, err)
	assert.Len(t, teams, 1)
}

func TestWipeWithYes(t *testing.T) {
	t.Parallel()
	c, a, out := wipeCLI(t)
	ctx := context.Background()
	require.NoError(t, a.Store.CreateTeam(ctx, &models.TeamRecord{Name: "Lions"}))

	require.NoError(t, c.Run([]string{"scorebook-admin", "wipe", "--yes"}))
	assert.Contains(t, out.String(), "deleted")

	teams, err := a.Store.ListTeams(ctx)
	require.NoError(t, err)
	assert.Empty(t, teams)
}
