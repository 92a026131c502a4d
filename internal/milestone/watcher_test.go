package milestone

import (
	"testing"

	"github.com/DhavalSuthar-24/scorebook/internal/models"
	"github.com/DhavalSuthar-24/scorebook/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func liveMatch(id uint) models.Match {
	return models.Match{
		Model:  gorm.Model{ID: id},
		Team1:  "Lions",
		Team2:  "Tigers",
		Status: models.StatusMatchLive,
	}
}

// scoreBall attributes one numeric ball to batter through the engine.
func scoreBall(t *testing.T, m *models.Match, batter string, runs string) {
	t.Helper()
	in := m.Innings1.Innings()
	if len(in.Overs) == 0 || in.Overs[len(in.Overs)-1].IsComplete() {
		in.AddOver()
	}
	overIdx := len(in.Overs) - 1
	ballIdx := len(in.Overs[overIdx].Balls) - in.Overs[overIdx].EmptySlots()
	_, err := in.RecordBall(overIdx, ballIdx, runs)
	require.NoError(t, err)
	require.NoError(t, in.AssignBatterToBall(overIdx, ballIdx, batter))
}

func TestFiftyThenCenturyFireOnceEach(t *testing.T) {
	t.Parallel()
	m := liveMatch(9)
	m.Innings1.Batting = []scoring.BatterEntry{{Name: "Asha", Runs: 48, DismissalType: scoring.DismissalNotOut}}
	w := NewWatcher(nil)

	_, ok := w.Next([]models.Match{m})
	assert.False(t, ok, "48 is below every threshold")

	scoreBall(t, &m, "Asha", "4")
	c, ok := w.Next([]models.Match{m})
	require.True(t, ok)
	assert.Equal(t, Key{MatchID: 9, Player: "Asha", Label: "50"}, c.Key)
	assert.Equal(t, KindHalfCentury, c.Kind)
	assert.Equal(t, 52, c.Value)

	_, ok = w.Next([]models.Match{m})
	assert.False(t, ok, "the fifty fires only once")

	m.Innings1.Batting[0].Runs = 100
	c, ok = w.Next([]models.Match{m})
	require.True(t, ok)
	assert.Equal(t, Key{MatchID: 9, Player: "Asha", Label: "100"}, c.Key)
	assert.Equal(t, KindCentury, c.Kind)
}

func TestCenturyShadowsFifty(t *testing.T) {
	t.Parallel()
	m := liveMatch(1)
	m.Innings2.Batting = []scoring.BatterEntry{{Name: "Ravi", Runs: 101}}
	w := NewWatcher(nil)

	c, ok := w.Next([]models.Match{m})
	require.True(t, ok)
	assert.Equal(t, "100", c.Label)
	assert.Equal(t, "Tigers", c.Team)

	_, ok = w.Next([]models.Match{m})
	assert.False(t, ok)
}

func TestWicketHaulKeyedByExactCount(t *testing.T) {
	t.Parallel()
	m := liveMatch(3)
	m.Innings1.Bowling = []scoring.BowlerEntry{{Name: "Meera", Wickets: 2}}
	w := NewWatcher(nil)

	_, ok := w.Next([]models.Match{m})
	assert.False(t, ok)

	m.Innings1.Bowling[0].Wickets = 4
	c, ok := w.Next([]models.Match{m})
	require.True(t, ok)
	assert.Equal(t, "4W", c.Label)
	assert.Equal(t, "Tigers", c.Team)

	m.Innings1.Bowling[0].Wickets = 5
	c, ok = w.Next([]models.Match{m})
	require.True(t, ok)
	assert.Equal(t, "5W", c.Label)
}

func TestOneMilestonePerEvaluation(t *testing.T) {
	t.Parallel()
	a := liveMatch(1)
	a.Innings1.Batting = []scoring.BatterEntry{{Name: "Asha", Runs: 55}, {Name: "Dev", Runs: 61}}
	a.Innings2.Bowling = []scoring.BowlerEntry{{Name: "Asha", Wickets: 3}}
	done := liveMatch(2)
	done.Status = models.StatusMatchCompleted
	done.Innings1.Batting = []scoring.BatterEntry{{Name: "Zed", Runs: 150}}
	matches := []models.Match{done, a}
	w := NewWatcher(nil)

	var labels []string
	for {
		c, ok := w.Next(matches)
		if !ok {
			break
		}
		labels = append(labels, c.Player+":"+c.Label)
	}
	assert.Equal(t, []string{"Asha:50", "Dev:50", "Asha:3W"}, labels)
}

func TestSharedNotifiedSetSurvivesWatchers(t *testing.T) {
	t.Parallel()
	set := NewMemorySet()
	m := liveMatch(4)
	m.Innings1.Batting = []scoring.BatterEntry{{Name: "Asha", Runs: 50}}

	_, ok := NewWatcher(set).Next([]models.Match{m})
	require.True(t, ok)
	_, ok = NewWatcher(set).Next([]models.Match{m})
	assert.False(t, ok)
}
