package scoring

// Delta is a signed change to one aggregate row. Each row type picks the
// fields it tracks and ignores the rest.
type Delta struct {
	Balls   int
	Runs    int
	Wickets int
	Maidens int
	Fours   int
	Sixes   int
}

// Inverse negates every field so that applying d then d.Inverse() is a no-op
// unless flooring clipped the first application.
func (d Delta) Inverse() Delta {
	return Delta{
		Balls:   -d.Balls,
		Runs:    -d.Runs,
		Wickets: -d.Wickets,
		Maidens: -d.Maidens,
		Fours:   -d.Fours,
		Sixes:   -d.Sixes,
	}
}

// Row is an aggregate row that can absorb a Delta.
type Row interface {
	applyDelta(d Delta)
}

// Apply adds d to row.
func Apply(row Row, d Delta) {
	if row == nil {
		return
	}
	row.applyDelta(d)
}

// Revert subtracts d from row, flooring every field at zero.
func Revert(row Row, d Delta) {
	if row == nil {
		return
	}
	row.applyDelta(d.Inverse())
}

func addFloored(field *int, v int) {
	*field += v
	if *field < 0 {
		*field = 0
	}
}

// BallDelta is the batter-side delta for one attributed scoring ball.
func BallDelta(value int) Delta {
	d := Delta{Balls: 1, Runs: value}
	switch value {
	case 4:
		d.Fours = 1
	case 6:
		d.Sixes = 1
	}
	return d
}
