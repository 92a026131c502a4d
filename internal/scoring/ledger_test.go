package scoring

import (
	"encoding/json"
	"errors"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillOver(t *testing.T, in *Innings, idx int, bowler string, extras, wickets int, balls ...string) {
	t.Helper()
	o := &in.Overs[idx]
	o.Balls = append([]string(nil), balls...)
	o.Bowler = bowler
	o.Extras = extras
	o.WicketsDeclared = wickets
}

func cloneInnings(t *testing.T, in Innings) Innings {
	t.Helper()
	raw, err := json.Marshal(in)
	require.NoError(t, err)
	var out Innings
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

// nonZeroBatters drops rows a revert left at zero so tables built along
// different paths can be compared.
func nonZeroBatters(in Innings) map[string]BatterEntry {
	out := make(map[string]BatterEntry)
	for _, b := range in.Batting {
		if b.Runs == 0 && b.Balls == 0 && b.Fours == 0 && b.Sixes == 0 {
			continue
		}
		out[b.Name] = b
	}
	return out
}

func TestOverTotal_CountsNumericBallsAndExtras(t *testing.T) {
	t.Parallel()

	o := Over{Balls: []string{"1", "4", "W", "2", "1", "6"}, Extras: 2}

	assert.Equal(t, 16, OverTotal(o))
}

func TestSaveOver_CreditsBowler(t *testing.T) {
	t.Parallel()

	var in Innings
	in.AddOver()
	fillOver(t, &in, 0, "Starc", 2, 1, "1", "4", "W", "2", "1", "6")

	snap, err := in.SaveOver(0)
	require.NoError(t, err)

	assert.Equal(t, AppliedSnapshot{BowlerName: "Starc", RunsApplied: 16, WicketsApplied: 1, WasMaiden: false}, snap)
	require.Len(t, in.Bowling, 1)
	assert.Equal(t, BowlerEntry{Name: "Starc", Overs: 1, Runs: 16, Wickets: 1}, in.Bowling[0])
	assert.True(t, in.Overs[0].IsSaved())
}

func TestSaveOver_WicketsFollowDeclaredFieldNotMarkers(t *testing.T) {
	t.Parallel()

	var in Innings
	in.AddOver()
	fillOver(t, &in, 0, "Starc", 0, 0, "W", "W", "0", "0", "0", "0")

	_, err := in.SaveOver(0)
	require.NoError(t, err)

	assert.Equal(t, 0, in.Bowling[0].Wickets)
	assert.Equal(t, 1, in.Bowling[0].Maidens)
}

func TestSaveOver_RejectsWithoutMutation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		bowler string
		balls  []string
		reason string
	}{
		{name: "no bowler", bowler: "  ", balls: []string{"1", "1", "1", "1", "1", "1"}, reason: "bowler not assigned"},
		{name: "empty slot", bowler: "Cummins", balls: []string{"1", "", "1", "1", "1", "1"}, reason: "incomplete over"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var in Innings
			in.AddOver()
			fillOver(t, &in, 0, tt.bowler, 0, 0, tt.balls...)

			_, err := in.SaveOver(0)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
			assert.Contains(t, err.Error(), tt.reason)
			assert.Empty(t, in.Bowling)
			assert.Nil(t, in.Overs[0].Applied)
		})
	}
}

func TestSaveOver_ResaveAfterBowlerChangeUnwindsOldBowler(t *testing.T) {
	t.Parallel()

	var in Innings
	in.AddOver()
	fillOver(t, &in, 0, "Hazlewood", 0, 1, "1", "1", "1", "1", "1", "1")
	_, err := in.SaveOver(0)
	require.NoError(t, err)

	fillOver(t, &in, 0, "Zampa", 1, 0, "0", "0", "4", "0", "0", "0")
	_, err = in.SaveOver(0)
	require.NoError(t, err)

	assert.Equal(t, BowlerEntry{Name: "Hazlewood"}, *in.Bowler("Hazlewood"))
	assert.Equal(t, BowlerEntry{Name: "Zampa", Overs: 1, Runs: 5}, *in.Bowler("Zampa"))
}

func TestSaveOver_RepeatedSavesMatchSingleFreshSave(t *testing.T) {
	t.Parallel()

	bowlers := []string{"Bumrah", "Siraj", "Jadeja"}
	values := []string{"0", "1", "2", "4", "6", "W"}
	rng := rand.New(rand.NewSource(7))

	for run := 0; run < 50; run++ {
		var in Innings
		in.AddOver()
		in.AddOver()
		fillOver(t, &in, 0, "Siraj", 0, 0, "1", "0", "0", "2", "0", "0")
		_, err := in.SaveOver(0)
		require.NoError(t, err)

		var final Over
		for step := 0; step < 1+rng.Intn(5); step++ {
			balls := make([]string, 6)
			for i := range balls {
				balls[i] = values[rng.Intn(len(values))]
			}
			fillOver(t, &in, 1, bowlers[rng.Intn(len(bowlers))], rng.Intn(3), rng.Intn(2), balls...)
			_, err := in.SaveOver(1)
			require.NoError(t, err)
			final = in.Overs[1]
		}

		fresh := cloneInnings(t, in)
		require.NoError(t, fresh.ClearOver(1, ClearOptions{}))
		fillOver(t, &fresh, 1, final.Bowler, final.Extras, final.WicketsDeclared, final.Balls...)
		_, err = fresh.SaveOver(1)
		require.NoError(t, err)

		assert.Equal(t, fresh.Bowling, in.Bowling, "run %d", run)
		assert.ElementsMatch(t, in.BowlingFromSnapshots(), nonZeroBowlers(in.Bowling), "run %d", run)
	}
}

func nonZeroBowlers(rows []BowlerEntry) []BowlerEntry {
	var out []BowlerEntry
	for _, b := range rows {
		if b == (BowlerEntry{Name: b.Name}) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func TestClearOver_RevertsExactSnapshotRegardlessOfContents(t *testing.T) {
	t.Parallel()

	var in Innings
	in.AddOver()
	in.AddOver()
	fillOver(t, &in, 0, "X", 0, 0, "1", "1", "1", "1", "1", "0")
	fillOver(t, &in, 1, "X", 0, 1, "2", "2", "2", "2", "2", "W")
	_, err := in.SaveOver(0)
	require.NoError(t, err)
	_, err = in.SaveOver(1)
	require.NoError(t, err)
	require.Equal(t, BowlerEntry{Name: "X", Overs: 2, Runs: 15, Wickets: 1}, *in.Bowler("X"))

	// unsaved edits must not influence what gets unwound
	fillOver(t, &in, 1, "Y", 3, 4, "6", "6", "6", "", "", "")

	require.NoError(t, in.ClearOver(1, ClearOptions{}))

	assert.Equal(t, BowlerEntry{Name: "X", Overs: 1, Runs: 5, Wickets: 0}, *in.Bowler("X"))
	assert.Nil(t, in.Bowler("Y"))
	cleared := in.Overs[1]
	assert.Equal(t, 2, cleared.OverNumber)
	assert.Equal(t, make([]string, DefaultBallSlots), cleared.Balls)
	assert.Empty(t, cleared.Bowler)
	assert.Zero(t, cleared.Extras)
	assert.Zero(t, cleared.WicketsDeclared)
	assert.Nil(t, cleared.Applied)
	assert.Empty(t, cleared.BallAssignments)
}

func TestClearOver_BatterAttributions(t *testing.T) {
	t.Parallel()

	build := func(t *testing.T) Innings {
		var in Innings
		in.AddOver()
		fillOver(t, &in, 0, "X", 0, 0, "4", "1", "0", "0", "0", "0")
		require.NoError(t, in.AssignBatterToBall(0, 0, "Head"))
		require.NoError(t, in.AssignBatterToBall(0, 1, "Head"))
		_, err := in.SaveOver(0)
		require.NoError(t, err)
		return in
	}

	t.Run("kept by default", func(t *testing.T) {
		t.Parallel()
		in := build(t)
		require.NoError(t, in.ClearOver(0, ClearOptions{}))
		assert.Equal(t, 5, in.Batter("Head").Runs)
		assert.Equal(t, 2, in.Batter("Head").Balls)
	})

	t.Run("reverted on request", func(t *testing.T) {
		t.Parallel()
		in := build(t)
		require.NoError(t, in.ClearOver(0, ClearOptions{RevertBatters: true}))
		assert.Equal(t, BatterEntry{Name: "Head", DismissalType: DismissalNotOut}, *in.Batter("Head"))
	})
}

func TestClearOver_UnsavedOverLeavesBowlingUntouched(t *testing.T) {
	t.Parallel()

	var in Innings
	in.AddOver()
	in.Bowling = []BowlerEntry{{Name: "X", Overs: 3.2, Runs: 20}}
	fillOver(t, &in, 0, "X", 0, 0, "1", "1")

	require.NoError(t, in.ClearOver(0, ClearOptions{}))

	assert.Equal(t, BowlerEntry{Name: "X", Overs: 3.2, Runs: 20}, in.Bowling[0])
}

func TestRecordBall(t *testing.T) {
	t.Parallel()

	var in Innings
	in.AddOver()

	numeric, err := in.RecordBall(0, 2, "4")
	require.NoError(t, err)
	assert.True(t, numeric)

	numeric, err = in.RecordBall(0, 3, "W")
	require.NoError(t, err)
	assert.False(t, numeric)

	assert.Equal(t, []string{"", "", "4", "W", "", ""}, in.Overs[0].Balls)
	assert.Empty(t, in.Batting, "recording never attributes implicitly")

	_, err = in.RecordBall(0, 6, "1")
	assert.True(t, errors.Is(err, ErrValidation))
	_, err = in.RecordBall(3, 0, "1")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestAssignBatterToBall_LastAssignmentWins(t *testing.T) {
	t.Parallel()

	batters := []string{"Kohli", "Rohit", "Gill", "Pant"}
	values := []string{"0", "1", "2", "3", "4", "6"}
	rng := rand.New(rand.NewSource(11))

	for run := 0; run < 50; run++ {
		var in Innings
		in.AddOver()
		require.NoError(t, in.AddBatter("Kohli", DismissalNotOut))

		var last string
		for step := 0; step < 1+rng.Intn(6); step++ {
			_, err := in.RecordBall(0, 0, values[rng.Intn(len(values))])
			require.NoError(t, err)
			last = batters[rng.Intn(len(batters))]
			require.NoError(t, in.AssignBatterToBall(0, 0, last))
		}

		var fresh Innings
		fresh.AddOver()
		_, err := fresh.RecordBall(0, 0, in.Overs[0].Balls[0])
		require.NoError(t, err)
		require.NoError(t, fresh.AssignBatterToBall(0, 0, last))

		assert.Equal(t, nonZeroBatters(fresh), nonZeroBatters(in), "run %d", run)
		assert.Equal(t, BallAssignment{Batter: last, Value: fresh.Overs[0].BallAssignments[0].Value}, in.Overs[0].BallAssignments[0])
	}
}

func TestAssignBatterToBall_SameBatterIsIdempotent(t *testing.T) {
	t.Parallel()

	var in Innings
	in.AddOver()
	_, err := in.RecordBall(0, 0, "6")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, in.AssignBatterToBall(0, 0, "Maxwell"))
	}

	assert.Equal(t, BatterEntry{Name: "Maxwell", Runs: 6, Balls: 1, Sixes: 1, DismissalType: DismissalNotOut}, *in.Batter("Maxwell"))
}

func TestAssignBatterToBall_RevertUsesRecordedValue(t *testing.T) {
	t.Parallel()

	var in Innings
	in.AddOver()
	_, err := in.RecordBall(0, 0, "4")
	require.NoError(t, err)
	require.NoError(t, in.AssignBatterToBall(0, 0, "Smith"))

	_, err = in.RecordBall(0, 0, "6")
	require.NoError(t, err)
	require.NoError(t, in.AssignBatterToBall(0, 0, "Smith"))

	assert.Equal(t, BatterEntry{Name: "Smith", Runs: 6, Balls: 1, Sixes: 1, DismissalType: DismissalNotOut}, *in.Batter("Smith"))
}

func TestRecordBall_NonRunValueTakesBackAttribution(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"W", ""} {
		var in Innings
		in.AddOver()
		require.NoError(t, in.AddBatter("Smith", DismissalNotOut))
		_, err := in.RecordBall(0, 0, "4")
		require.NoError(t, err)
		require.NoError(t, in.AssignBatterToBall(0, 0, "Smith"))

		numeric, err := in.RecordBall(0, 0, raw)
		require.NoError(t, err)
		assert.False(t, numeric)

		assert.Empty(t, in.Overs[0].BallAssignments, "value %q", raw)
		assert.Equal(t, BatterEntry{Name: "Smith", DismissalType: DismissalNotOut}, *in.Batter("Smith"), "value %q", raw)
		assert.Equal(t, 0, OverTotal(in.Overs[0]))

		_, err = in.RecordBall(0, 0, "2")
		require.NoError(t, err)
		require.NoError(t, in.AssignBatterToBall(0, 0, "Smith"))
		assert.Equal(t, 2, in.Batter("Smith").Runs)
		assert.Equal(t, 1, in.Batter("Smith").Balls)
	}
}

func TestAssignBatterToBall_Rejections(t *testing.T) {
	t.Parallel()

	var in Innings
	in.AddOver()
	_, err := in.RecordBall(0, 0, "W")
	require.NoError(t, err)

	assert.True(t, errors.Is(in.AssignBatterToBall(0, 0, "Smith"), ErrValidation))
	assert.True(t, errors.Is(in.AssignBatterToBall(0, 1, ""), ErrValidation))
	assert.Empty(t, in.Batting)
}

func TestRevert_FloorsAtZero(t *testing.T) {
	t.Parallel()

	var in Innings
	in.AddOver()
	_, err := in.RecordBall(0, 0, "4")
	require.NoError(t, err)
	require.NoError(t, in.AssignBatterToBall(0, 0, "Warner"))

	zero := 0
	require.NoError(t, in.OverrideBatter("Warner", BatterFigures{Runs: &zero, Fours: &zero}))
	require.NoError(t, in.AssignBatterToBall(0, 0, "Labuschagne"))

	assert.Equal(t, BatterEntry{Name: "Warner", DismissalType: DismissalNotOut}, *in.Batter("Warner"))
	assert.Equal(t, 4, in.Batter("Labuschagne").Runs)
}

func TestBallSlots(t *testing.T) {
	t.Parallel()

	var in Innings
	in.AddOver()
	require.NoError(t, in.AddBallSlot(0))
	require.Len(t, in.Overs[0].Balls, 7)

	_, err := in.RecordBall(0, 6, "2")
	require.NoError(t, err)
	require.NoError(t, in.AssignBatterToBall(0, 6, "Root"))
	require.Equal(t, 2, in.Batter("Root").Runs)

	require.NoError(t, in.RemoveBallSlot(0))
	assert.Len(t, in.Overs[0].Balls, 6)
	assert.Zero(t, in.Batter("Root").Runs)
	assert.NotContains(t, in.Overs[0].BallAssignments, 6)

	for len(in.Overs[0].Balls) > 1 {
		require.NoError(t, in.RemoveBallSlot(0))
	}
	assert.True(t, errors.Is(in.RemoveBallSlot(0), ErrValidation))
}

func TestAddOver_ContiguousNumbers(t *testing.T) {
	t.Parallel()

	var in Innings
	for i := 0; i < 4; i++ {
		in.AddOver()
	}

	for i, o := range in.Overs {
		assert.Equal(t, i+1, o.OverNumber)
		assert.Len(t, o.Balls, DefaultBallSlots)
	}
}

func TestUpdateOver(t *testing.T) {
	t.Parallel()

	var in Innings
	in.AddOver()
	extras, wickets, bowler := 3, 2, " Rabada "

	require.NoError(t, in.UpdateOver(0, OverPatch{Extras: &extras, WicketsDeclared: &wickets, Bowler: &bowler}))
	assert.Equal(t, 3, in.Overs[0].Extras)
	assert.Equal(t, 2, in.Overs[0].WicketsDeclared)
	assert.Equal(t, "Rabada", in.Overs[0].Bowler)
	assert.Empty(t, in.Bowling, "edits reach the bowler table only on save")

	negative := -1
	assert.True(t, errors.Is(in.UpdateOver(0, OverPatch{Extras: &negative}), ErrValidation))
}

func TestSetDismissal_ClearsIrrelevantFields(t *testing.T) {
	t.Parallel()

	var in Innings
	require.NoError(t, in.AddBatter("Babar", ""))
	assert.Equal(t, DismissalNextToBat, in.Batter("Babar").DismissalType)

	require.NoError(t, in.SetDismissal("Babar", DismissalCaught, "Boult", "Williamson"))
	assert.Equal(t, "Boult", in.Batter("Babar").DismissalBowler)
	assert.Equal(t, "Williamson", in.Batter("Babar").DismissalFielder)

	require.NoError(t, in.SetDismissal("Babar", DismissalRunOut, "Boult", "Conway"))
	assert.Empty(t, in.Batter("Babar").DismissalBowler)
	assert.Equal(t, "Conway", in.Batter("Babar").DismissalFielder)

	require.NoError(t, in.SetDismissal("Babar", DismissalBowled, "Southee", "Conway"))
	assert.Equal(t, "Southee", in.Batter("Babar").DismissalBowler)
	assert.Empty(t, in.Batter("Babar").DismissalFielder)

	require.NoError(t, in.SetDismissal("Babar", DismissalNotOut, "Southee", "Conway"))
	assert.Empty(t, in.Batter("Babar").DismissalBowler)
	assert.Empty(t, in.Batter("Babar").DismissalFielder)

	assert.True(t, errors.Is(in.SetDismissal("Babar", "hitWicket", "", ""), ErrValidation))
	assert.True(t, errors.Is(in.SetDismissal("Rizwan", DismissalLBW, "", ""), ErrNotFound))
	assert.True(t, errors.Is(in.AddBatter("Babar", ""), ErrValidation))
}

func TestOversConversion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		overs float64
		balls int
	}{
		{0, 0},
		{0.1, 1},
		{0.5, 5},
		{1, 6},
		{3.4, 22},
		{19.5, 119},
		{20, 120},
	}

	for _, tt := range tests {
		t.Run(strconv.FormatFloat(tt.overs, 'f', 1, 64), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.balls, OversToBalls(tt.overs))
			assert.Equal(t, tt.overs, BallsToOvers(tt.balls))
		})
	}
}
