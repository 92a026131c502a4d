package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/DhavalSuthar-24/scorebook/internal/models"
	"github.com/DhavalSuthar-24/scorebook/internal/player"
	"github.com/DhavalSuthar-24/scorebook/internal/store"
	"gopkg.in/yaml.v3"
)

// rosterFile is the import format:
//
//	teams:
//	  - name: Lions
//	    players:
//	      - name: Asha
//	        role: batter
type rosterFile struct {
	Teams []rosterTeam `yaml:"teams"`
}

type rosterTeam struct {
	Name    string         `yaml:"name"`
	Players []rosterPlayer `yaml:"players"`
}

type rosterPlayer struct {
	Name string `yaml:"name"`
	Role string `yaml:"role,omitempty"`
}

type importResult struct {
	TeamsAdded int
	Players    int
}

func parseRoster(r io.Reader) (*rosterFile, error) {
	var f rosterFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	seen := map[string]bool{}
	for i, t := range f.Teams {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			return nil, fmt.Errorf("team #%d has no name", i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("team %q listed twice", name)
		}
		seen[name] = true
		for j, p := range t.Players {
			if strings.TrimSpace(p.Name) == "" {
				return nil, fmt.Errorf("team %q: player #%d has no name", name, j+1)
			}
		}
	}
	return &f, nil
}

// importRoster creates missing teams and upserts every player. Existing teams
// keep their standings and existing players keep their career totals.
func importRoster(ctx context.Context, st store.Store, f *rosterFile) (importResult, error) {
	var res importResult

	teams, err := st.ListTeams(ctx)
	if err != nil {
		return res, err
	}
	have := make(map[string]bool, len(teams))
	for _, t := range teams {
		have[t.Name] = true
	}

	var entries []player.RosterEntry
	for _, t := range f.Teams {
		name := strings.TrimSpace(t.Name)
		if !have[name] {
			if err := st.CreateTeam(ctx, &models.TeamRecord{Name: name}); err != nil {
				return res, fmt.Errorf("create team %q: %w", name, err)
			}
			have[name] = true
			res.TeamsAdded++
		}
		for _, p := range t.Players {
			entries = append(entries, player.RosterEntry{Name: p.Name, Team: name, Role: p.Role})
		}
	}

	existing, err := st.ListPlayers(ctx)
	if err != nil {
		return res, err
	}
	rows := player.MergeRoster(existing, entries)
	if err := st.BulkUpsertPlayers(ctx, rows); err != nil {
		return res, fmt.Errorf("upsert players: %w", err)
	}
	res.Players = len(rows)
	return res, nil
}
