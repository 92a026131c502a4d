// Package tournament rebuilds season standings and career statistics from
// the set of completed matches.
package tournament

import (
	"sort"
	"strings"

	"github.com/DhavalSuthar-24/scorebook/internal/models"
	"github.com/DhavalSuthar-24/scorebook/internal/scoring"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	pointsWin = 2
	pointsTie = 1
)

// Role names which list a skipped entry came from.
type Role string

const (
	RoleBatting Role = "batting"
	RoleBowling Role = "bowling"
)

// Skipped is a match entry whose (name, team) has no roster row.
type Skipped struct {
	MatchID    uint   `json:"match_id"`
	Name       string `json:"name"`
	Team       string `json:"team"`
	Role       Role   `json:"role"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Report summarizes one rebuild.
type Report struct {
	MatchesProcessed int       `json:"matches_processed"`
	PlayersCredited  int       `json:"players_credited"`
	TeamsAdded       []string  `json:"teams_added,omitempty"`
	Skipped          []Skipped `json:"skipped,omitempty"`
}

// Result is the output of Rebuild, ready for one bulk write.
type Result struct {
	Teams   []models.TeamRecord
	Players []models.PlayerRecord
	Report  Report
}

type playerKey struct{ name, team string }

// side is one of the four role-specific lists of a match.
type side struct {
	team    string
	batting []scoring.BatterEntry
	bowling []scoring.BowlerEntry
}

func sides(m models.Match) []side {
	return []side{
		{team: m.Team1, batting: m.Innings1.Batting, bowling: m.Innings2.Bowling},
		{team: m.Team2, batting: m.Innings2.Batting, bowling: m.Innings1.Bowling},
	}
}

// Rebuild resets every team's played/won/lost/tied/points and every player's
// career counters, then folds in each completed match. NRR is carried over
// untouched. The inputs are not modified and the result does not depend on
// the order of matches.
func Rebuild(matches []models.Match, teams []models.TeamRecord, players []models.PlayerRecord) Result {
	var res Result

	res.Teams = make([]models.TeamRecord, len(teams))
	teamIdx := make(map[string]int, len(teams))
	for i, t := range teams {
		t.ResetStandings()
		res.Teams[i] = t
		teamIdx[t.Name] = i
	}

	res.Players = make([]models.PlayerRecord, len(players))
	playerIdx := make(map[playerKey]int, len(players))
	for i, p := range players {
		p.ResetCareer()
		res.Players[i] = p
		playerIdx[playerKey{p.Name, p.Team}] = i
	}

	teamAt := func(name string) int {
		i, ok := teamIdx[name]
		if !ok {
			res.Teams = append(res.Teams, models.TeamRecord{Name: name})
			i = len(res.Teams) - 1
			teamIdx[name] = i
			res.Report.TeamsAdded = append(res.Report.TeamsAdded, name)
		}
		return i
	}

	credited := make(map[int]bool)
	for _, m := range matches {
		if m.Status != models.StatusMatchCompleted {
			continue
		}
		res.Report.MatchesProcessed++

		i1, i2 := teamAt(m.Team1), teamAt(m.Team2)
		t1, t2 := &res.Teams[i1], &res.Teams[i2]
		t1.Played++
		t2.Played++
		switch r1, r2 := m.Team1Score.Runs, m.Team2Score.Runs; {
		case r1 > r2:
			t1.Won++
			t1.Points += pointsWin
			t2.Lost++
		case r2 > r1:
			t2.Won++
			t2.Points += pointsWin
			t1.Lost++
		default:
			t1.Tied++
			t2.Tied++
			t1.Points += pointsTie
			t2.Points += pointsTie
		}

		seen := make(map[int]bool)
		lookup := func(name, teamName string, role Role) (*models.PlayerRecord, bool) {
			i, ok := playerIdx[playerKey{name, teamName}]
			if !ok {
				res.Report.Skipped = append(res.Report.Skipped, Skipped{
					MatchID: m.ID, Name: name, Team: teamName, Role: role,
				})
				return nil, false
			}
			seen[i] = true
			credited[i] = true
			return &res.Players[i], true
		}

		for _, s := range sides(m) {
			for _, b := range s.batting {
				p, ok := lookup(b.Name, s.team, RoleBatting)
				if !ok {
					continue
				}
				p.Runs += b.Runs
				p.Balls += b.Balls
				p.Fours += b.Fours
				p.Sixes += b.Sixes
				switch {
				case b.Runs >= 100:
					p.Hundreds++
				case b.Runs >= 50:
					p.Fifties++
				}
				if b.Runs > p.HighestScore {
					p.HighestScore = b.Runs
				}
			}
			for _, b := range s.bowling {
				p, ok := lookup(b.Name, s.team, RoleBowling)
				if !ok {
					continue
				}
				p.Overs = scoring.BallsToOvers(scoring.OversToBalls(p.Overs) + scoring.OversToBalls(b.Overs))
				p.Maidens += b.Maidens
				p.RunsConceded += b.Runs
				p.Wickets += b.Wickets
			}
		}
		for i := range seen {
			res.Players[i].Matches++
		}
	}

	res.Report.PlayersCredited = len(credited)
	sort.Strings(res.Report.TeamsAdded)
	sort.Slice(res.Report.Skipped, func(i, j int) bool {
		a, b := res.Report.Skipped[i], res.Report.Skipped[j]
		if a.MatchID != b.MatchID {
			return a.MatchID < b.MatchID
		}
		if a.Team != b.Team {
			return a.Team < b.Team
		}
		if a.Role != b.Role {
			return a.Role < b.Role
		}
		return a.Name < b.Name
	})
	for i := range res.Report.Skipped {
		res.Report.Skipped[i].Suggestion = suggest(res.Report.Skipped[i], players)
	}
	models.SortStandings(res.Teams)
	return res
}

// suggest names the roster entry closest to a skipped one: the same name on
// another team first, then the nearest spelling on the same team.
func suggest(s Skipped, roster []models.PlayerRecord) string {
	best, bestDist := "", -1
	for _, p := range roster {
		if strings.EqualFold(p.Name, s.Name) {
			return p.Name + " (" + p.Team + ")"
		}
		if p.Team != s.Team {
			continue
		}
		d := fuzzy.LevenshteinDistance(strings.ToLower(s.Name), strings.ToLower(p.Name))
		if d > maxEdits(s.Name) {
			continue
		}
		if bestDist < 0 || d < bestDist || (d == bestDist && p.Name < best) {
			best, bestDist = p.Name, d
		}
	}
	if best == "" {
		return ""
	}
	return best + " (" + s.Team + ")"
}

func maxEdits(name string) int {
	if n := len(name) / 3; n > 2 {
		return n
	}
	return 2
}
