package tournament

import (
	"math/rand"
	"testing"

	"github.com/DhavalSuthar-24/scorebook/internal/models"
	"github.com/DhavalSuthar-24/scorebook/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func completed(id uint, team1 string, runs1 int, team2 string, runs2 int) models.Match {
	return models.Match{
		Model:      gorm.Model{ID: id},
		Team1:      team1,
		Team2:      team2,
		Status:     models.StatusMatchCompleted,
		Team1Score: scoring.Score{Runs: runs1},
		Team2Score: scoring.Score{Runs: runs2},
	}
}

func teamByName(t *testing.T, teams []models.TeamRecord, name string) models.TeamRecord {
	t.Helper()
	for _, tm := range teams {
		if tm.Name == name {
			return tm
		}
	}
	require.Failf(t, "team not found", "%s", name)
	return models.TeamRecord{}
}

func playerByName(t *testing.T, players []models.PlayerRecord, name, team string) models.PlayerRecord {
	t.Helper()
	for _, p := range players {
		if p.Name == name && p.Team == team {
			return p
		}
	}
	require.Failf(t, "player not found", "%s (%s)", name, team)
	return models.PlayerRecord{}
}

func TestRebuildCreditsWinnerAndLoser(t *testing.T) {
	t.Parallel()
	teams := []models.TeamRecord{{Name: "Lions"}, {Name: "Tigers"}}
	res := Rebuild([]models.Match{completed(1, "Lions", 145, "Tigers", 142)}, teams, nil)

	lions := teamByName(t, res.Teams, "Lions")
	tigers := teamByName(t, res.Teams, "Tigers")
	assert.Equal(t, models.TeamRecord{Name: "Lions", Played: 1, Won: 1, Points: 2}, lions)
	assert.Equal(t, models.TeamRecord{Name: "Tigers", Played: 1, Lost: 1}, tigers)
	assert.Equal(t, 1, res.Report.MatchesProcessed)
}

func TestRebuildTieAndNonCompletedMatches(t *testing.T) {
	t.Parallel()
	live := completed(2, "Lions", 300, "Tigers", 10)
	live.Status = models.StatusMatchLive
	matches := []models.Match{completed(1, "Lions", 120, "Tigers", 120), live}

	res := Rebuild(matches, []models.TeamRecord{{Name: "Lions"}, {Name: "Tigers"}}, nil)

	for _, name := range []string{"Lions", "Tigers"} {
		tm := teamByName(t, res.Teams, name)
		assert.Equal(t, 1, tm.Played)
		assert.Equal(t, 1, tm.Tied)
		assert.Equal(t, 1, tm.Points)
	}
	assert.Equal(t, 1, res.Report.MatchesProcessed)
}

func TestRebuildResetsStandingsButKeepsNRR(t *testing.T) {
	t.Parallel()
	teams := []models.TeamRecord{
		{Name: "Lions", Played: 9, Won: 9, Points: 18, NRR: 1.25},
		{Name: "Tigers", Played: 4, Lost: 4, NRR: -0.4},
	}
	players := []models.PlayerRecord{{Name: "Asha", Team: "Lions", Runs: 999, HighestScore: 150}}

	res := Rebuild(nil, teams, players)

	assert.Equal(t, models.TeamRecord{Name: "Lions", NRR: 1.25}, teamByName(t, res.Teams, "Lions"))
	assert.Equal(t, models.TeamRecord{Name: "Tigers", NRR: -0.4}, teamByName(t, res.Teams, "Tigers"))
	assert.Equal(t, models.PlayerRecord{Name: "Asha", Team: "Lions"}, res.Players[0])
	assert.Equal(t, 18, teams[0].Points, "inputs are not modified")
}

func TestRebuildCountsMatchOncePerPlayer(t *testing.T) {
	t.Parallel()
	m := completed(1, "Lions", 160, "Tigers", 150)
	m.Innings1.Batting = []scoring.BatterEntry{{Name: "Asha", Runs: 72, Balls: 40, Fours: 6, Sixes: 3}}
	m.Innings2.Bowling = []scoring.BowlerEntry{{Name: "Asha", Overs: 4, Runs: 28, Wickets: 2, Maidens: 1}}
	m.Innings2.Batting = []scoring.BatterEntry{{Name: "Ravi", Runs: 104, Balls: 61}}
	m.Innings1.Bowling = []scoring.BowlerEntry{{Name: "Ravi", Overs: 3.4, Runs: 30}}

	players := []models.PlayerRecord{
		{Name: "Asha", Team: "Lions"},
		{Name: "Ravi", Team: "Tigers"},
	}
	res := Rebuild([]models.Match{m}, []models.TeamRecord{{Name: "Lions"}, {Name: "Tigers"}}, players)

	asha := playerByName(t, res.Players, "Asha", "Lions")
	assert.Equal(t, 1, asha.Matches)
	assert.Equal(t, 72, asha.Runs)
	assert.Equal(t, 40, asha.Balls)
	assert.Equal(t, 6, asha.Fours)
	assert.Equal(t, 3, asha.Sixes)
	assert.Equal(t, 1, asha.Fifties)
	assert.Equal(t, 0, asha.Hundreds)
	assert.Equal(t, 72, asha.HighestScore)
	assert.Equal(t, 4.0, asha.Overs)
	assert.Equal(t, 28, asha.RunsConceded)
	assert.Equal(t, 2, asha.Wickets)
	assert.Equal(t, 1, asha.Maidens)

	ravi := playerByName(t, res.Players, "Ravi", "Tigers")
	assert.Equal(t, 1, ravi.Matches)
	assert.Equal(t, 0, ravi.Fifties)
	assert.Equal(t, 1, ravi.Hundreds)
	assert.Equal(t, 3.4, ravi.Overs)
	assert.Equal(t, 2, res.Report.PlayersCredited)
}

func TestRebuildAddsOversThroughBalls(t *testing.T) {
	t.Parallel()
	m1 := completed(1, "Lions", 10, "Tigers", 5)
	m1.Innings2.Bowling = []scoring.BowlerEntry{{Name: "Asha", Overs: 2.4}}
	m2 := completed(2, "Lions", 10, "Tigers", 5)
	m2.Innings2.Bowling = []scoring.BowlerEntry{{Name: "Asha", Overs: 1.3}}

	res := Rebuild([]models.Match{m1, m2}, nil, []models.PlayerRecord{{Name: "Asha", Team: "Lions"}})

	assert.Equal(t, 4.1, res.Players[0].Overs)
	assert.Equal(t, 2, res.Players[0].Matches)
}

func TestRebuildSkipsUnmatchedEntriesWithSuggestion(t *testing.T) {
	t.Parallel()
	m := completed(7, "Lions", 100, "Tigers", 90)
	m.Innings1.Batting = []scoring.BatterEntry{
		{Name: "Asha", Runs: 30},
		{Name: "Meera", Runs: 12},
		{Name: "Jon Snow", Runs: 5},
	}
	players := []models.PlayerRecord{
		{Name: "Asha", Team: "Lions"},
		{Name: "Meera", Team: "Tigers"},
		{Name: "John Snow", Team: "Lions"},
	}

	res := Rebuild([]models.Match{m}, nil, players)

	require.Len(t, res.Report.Skipped, 2)
	assert.Equal(t, Skipped{MatchID: 7, Name: "Jon Snow", Team: "Lions", Role: RoleBatting, Suggestion: "John Snow (Lions)"}, res.Report.Skipped[0])
	assert.Equal(t, Skipped{MatchID: 7, Name: "Meera", Team: "Lions", Role: RoleBatting, Suggestion: "Meera (Tigers)"}, res.Report.Skipped[1])
	assert.Equal(t, 0, playerByName(t, res.Players, "Meera", "Tigers").Runs)
	assert.Equal(t, 30, playerByName(t, res.Players, "Asha", "Lions").Runs)
	assert.Equal(t, []string{"Lions", "Tigers"}, res.Report.TeamsAdded)
}

func randomSeason(rng *rand.Rand) ([]models.Match, []models.TeamRecord, []models.PlayerRecord) {
	names := []string{"Lions", "Tigers", "Hawks", "Sharks"}
	var teams []models.TeamRecord
	var players []models.PlayerRecord
	for _, n := range names {
		teams = append(teams, models.TeamRecord{Name: n, NRR: float64(rng.Intn(200)-100) / 100})
		for i := 0; i < 4; i++ {
			players = append(players, models.PlayerRecord{Name: n + string(rune('A'+i)), Team: n})
		}
	}

	var matches []models.Match
	for id := uint(1); id <= 12; id++ {
		a, b := names[rng.Intn(4)], names[rng.Intn(4)]
		if a == b {
			continue
		}
		m := completed(id, a, 100+rng.Intn(60), b, 100+rng.Intn(60))
		if rng.Intn(5) == 0 {
			m.Status = models.StatusMatchLive
		}
		for i := 0; i < 3; i++ {
			m.Innings1.Batting = append(m.Innings1.Batting, scoring.BatterEntry{Name: a + string(rune('A'+i)), Runs: rng.Intn(120), Balls: rng.Intn(70)})
			m.Innings2.Batting = append(m.Innings2.Batting, scoring.BatterEntry{Name: b + string(rune('A'+i)), Runs: rng.Intn(120)})
			m.Innings1.Bowling = append(m.Innings1.Bowling, scoring.BowlerEntry{Name: b + string(rune('B'+i)), Overs: float64(rng.Intn(4)) + float64(rng.Intn(6))/10, Wickets: rng.Intn(4)})
			m.Innings2.Bowling = append(m.Innings2.Bowling, scoring.BowlerEntry{Name: a + string(rune('B'+i)), Overs: float64(rng.Intn(4)) + float64(rng.Intn(6))/10, Runs: rng.Intn(40)})
		}
		matches = append(matches, m)
	}
	return matches, teams, players
}

func TestRebuildIsOrderIndependent(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 20; round++ {
		matches, teams, players := randomSeason(rng)
		want := Rebuild(matches, teams, players)

		shuffled := append([]models.Match(nil), matches...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		got := Rebuild(shuffled, teams, players)

		assert.Equal(t, want.Teams, got.Teams)
		assert.Equal(t, want.Players, got.Players)
		assert.Equal(t, want.Report, got.Report)
	}
}

func TestRebuildIsIdempotent(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(5))
	matches, teams, players := randomSeason(rng)

	once := Rebuild(matches, teams, players)
	twice := Rebuild(matches, once.Teams, once.Players)

	assert.Equal(t, once.Teams, twice.Teams)
	assert.Equal(t, once.Players, twice.Players)
}
