package main

import (
	"context"
	"fmt"
	"io"

	"github.com/DhavalSuthar-24/scorebook/internal/models"
	"github.com/DhavalSuthar-24/scorebook/internal/store"
	"gopkg.in/yaml.v3"
)

type standingsFile struct {
	Teams   []teamRow   `yaml:"teams"`
	Players []playerRow `yaml:"players"`
}

type teamRow struct {
	Name   string  `yaml:"name"`
	Played int     `yaml:"played"`
	Won    int     `yaml:"won"`
	Lost   int     `yaml:"lost"`
	Tied   int     `yaml:"tied"`
	Points int     `yaml:"points"`
	NRR    float64 `yaml:"nrr"`
}

type playerRow struct {
	Name         string  `yaml:"name"`
	Team         string  `yaml:"team"`
	Matches      int     `yaml:"matches"`
	Runs         int     `yaml:"runs"`
	HighestScore int     `yaml:"highest_score"`
	Fifties      int     `yaml:"fifties"`
	Hundreds     int     `yaml:"hundreds"`
	Overs        float64 `yaml:"overs"`
	Wickets      int     `yaml:"wickets"`
	RunsConceded int     `yaml:"runs_conceded"`
}

func exportStandings(ctx context.Context, st store.Store, w io.Writer) error {
	teams, err := st.ListTeams(ctx)
	if err != nil {
		return err
	}
	players, err := st.ListPlayers(ctx)
	if err != nil {
		return err
	}
	models.SortStandings(teams)

	out := standingsFile{
		Teams:   make([]teamRow, 0, len(teams)),
		Players: make([]playerRow, 0, len(players)),
	}
	for _, t := range teams {
		out.Teams = append(out.Teams, teamRow{
			Name: t.Name, Played: t.Played, Won: t.Won, Lost: t.Lost,
			Tied: t.Tied, Points: t.Points, NRR: t.NRR,
		})
	}
	for _, p := range players {
		out.Players = append(out.Players, playerRow{
			Name: p.Name, Team: p.Team, Matches: p.Matches, Runs: p.Runs,
			HighestScore: p.HighestScore, Fifties: p.Fifties, Hundreds: p.Hundreds,
			Overs: p.Overs, Wickets: p.Wickets, RunsConceded: p.RunsConceded,
		})
	}

	yamlEncoder := yaml.NewEncoder(w)
	yamlEncoder.SetIndent(2)
	if err := yamlEncoder.Encode(&out); err != nil {
		return fmt.Errorf("encoding to YAML failed: %w", err)
	}
	return yamlEncoder.Close()
}
