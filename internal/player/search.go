package player

import (
	"sort"
	"strings"

	"github.com/DhavalSuthar-24/scorebook/internal/models"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Search ranks players whose name fuzzily contains q, ignoring case. Closer
// matches come first; ties keep roster order. A blank q returns players as is.
func Search(players []models.PlayerRecord, q string) []models.PlayerRecord {
	q = strings.TrimSpace(q)
	if q == "" {
		return players
	}
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	ranks := fuzzy.RankFindFold(q, names)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	out := make([]models.PlayerRecord, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, players[r.OriginalIndex])
	}
	return out
}

// FilterTeam keeps players of team, ignoring case. A blank team keeps all.
func FilterTeam(players []models.PlayerRecord, team string) []models.PlayerRecord {
	team = strings.TrimSpace(team)
	if team == "" {
		return players
	}
	out := players[:0:0]
	for _, p := range players {
		if strings.EqualFold(p.Team, team) {
			out = append(out, p)
		}
	}
	return out
}

// page returns the 1-based page of items.
func page(players []models.PlayerRecord, num, size int) []models.PlayerRecord {
	start := (num - 1) * size
	if start >= len(players) {
		return []models.PlayerRecord{}
	}
	end := start + size
	if end > len(players) {
		end = len(players)
	}
	return players[start:end]
}
