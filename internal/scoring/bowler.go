package scoring

// BowlerEntry is one row of an innings' bowling figures. Overs is kept in
// overs.balls notation; arithmetic happens on whole balls.
type BowlerEntry struct {
	Name    string  `json:"name"`
	Overs   float64 `json:"overs"`
	Maidens int     `json:"maidens"`
	Runs    int     `json:"runs"`
	Wickets int     `json:"wickets"`
}

func (b *BowlerEntry) applyDelta(d Delta) {
	balls := OversToBalls(b.Overs)
	addFloored(&balls, d.Balls)
	b.Overs = BallsToOvers(balls)
	addFloored(&b.Runs, d.Runs)
	addFloored(&b.Wickets, d.Wickets)
	addFloored(&b.Maidens, d.Maidens)
}

// AppliedSnapshot records exactly what an over last added to its bowler's row.
type AppliedSnapshot struct {
	BowlerName     string `json:"bowler_name"`
	RunsApplied    int    `json:"runs_applied"`
	WicketsApplied int    `json:"wickets_applied"`
	WasMaiden      bool   `json:"was_maiden"`
}

// Delta is the bowler-side change the snapshot stands for.
func (s AppliedSnapshot) Delta() Delta {
	d := Delta{Balls: BallsPerOver, Runs: s.RunsApplied, Wickets: s.WicketsApplied}
	if s.WasMaiden {
		d.Maidens = 1
	}
	return d
}
