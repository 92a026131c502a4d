package scoring

import "math"

// Score is a team's innings summary block.
type Score struct {
	Runs    int     `json:"runs"`
	Wickets int     `json:"wickets"`
	Overs   float64 `json:"overs"`
	Extras  int     `json:"extras"`
}

// DeriveScore computes the innings summary from the over ledger and the
// batting and bowling tables.
func DeriveScore(in Innings) Score {
	var s Score
	for _, o := range in.Overs {
		s.Runs += OverTotal(o)
		s.Extras += o.Extras
	}

	balls := 0
	for _, b := range in.Bowling {
		balls += OversToBalls(b.Overs)
	}
	s.Overs = BallsToOvers(balls)

	for _, b := range in.Batting {
		if b.IsOut() {
			s.Wickets++
		}
	}
	return s
}

// ResolveScore returns the derived score once the innings has overs, and
// the stored (manually entered) block before that.
func ResolveScore(stored Score, in Innings) Score {
	if len(in.Overs) == 0 {
		return stored
	}
	return DeriveScore(in)
}

// Chase is the second-innings projection. It holds no state of its own.
type Chase struct {
	Target          int     `json:"target"`
	RunsNeeded      int     `json:"runs_needed"`
	BallsLeft       int     `json:"balls_left"`
	RequiredRunRate float64 `json:"required_run_rate"`
}

// ProjectChase computes target and requirement for the side batting second.
// When the second-innings ledger already spans the full allotment, balls left
// is the count of empty slots; otherwise it falls back to
// totalOvers*6 minus balls bowled.
func ProjectChase(first, second Score, secondInnings Innings, totalOvers int) Chase {
	c := Chase{Target: first.Runs + 1}
	c.RunsNeeded = c.Target - second.Runs
	if c.RunsNeeded < 0 {
		c.RunsNeeded = 0
	}

	if totalOvers > 0 && len(secondInnings.Overs) >= totalOvers {
		for _, o := range secondInnings.Overs {
			c.BallsLeft += o.EmptySlots()
		}
	} else {
		c.BallsLeft = totalOvers*BallsPerOver - OversToBalls(second.Overs)
	}
	if c.BallsLeft < 0 {
		c.BallsLeft = 0
	}

	if c.BallsLeft > 0 {
		rate := float64(c.RunsNeeded) * BallsPerOver / float64(c.BallsLeft)
		c.RequiredRunRate = math.Round(rate*100) / 100
	}
	return c
}
