package scoring

// DefaultBallSlots is the number of empty slots a new over starts with.
const DefaultBallSlots = 6

// BallAssignment credits one scoring ball to the batter who faced it.
type BallAssignment struct {
	Batter string `json:"batter"`
	Value  int    `json:"value"`
}

// Over is one entry of an innings' over ledger.
type Over struct {
	OverNumber      int                    `json:"over_number"`
	Balls           []string               `json:"balls"`
	Extras          int                    `json:"extras"`
	WicketsDeclared int                    `json:"wickets_declared"`
	Bowler          string                 `json:"bowler"`
	BallAssignments map[int]BallAssignment `json:"ball_assignments,omitempty"`
	Applied         *AppliedSnapshot       `json:"applied_snapshot"`
}

// NewOver returns an empty over with the default number of ball slots.
func NewOver(number int) Over {
	return Over{
		OverNumber: number,
		Balls:      make([]string, DefaultBallSlots),
	}
}

// OverTotal is the sum of numeric ball values plus the over's extras.
func OverTotal(o Over) int {
	total := o.Extras
	for _, raw := range o.Balls {
		if v, ok := BallRuns(raw); ok {
			total += v
		}
	}
	return total
}

// IsComplete reports whether every ball slot holds a value.
func (o Over) IsComplete() bool {
	for _, raw := range o.Balls {
		if !IsRecorded(raw) {
			return false
		}
	}
	return true
}

// IsSaved reports whether the over is currently committed to a bowler's row.
func (o Over) IsSaved() bool { return o.Applied != nil }

// EmptySlots counts unrecorded ball slots.
func (o Over) EmptySlots() int {
	n := 0
	for _, raw := range o.Balls {
		if !IsRecorded(raw) {
			n++
		}
	}
	return n
}

// OverPatch carries the operator-editable over fields. Nil fields are left alone.
type OverPatch struct {
	Extras          *int    `json:"extras,omitempty"`
	WicketsDeclared *int    `json:"wickets_declared,omitempty"`
	Bowler          *string `json:"bowler,omitempty"`
}

// Clone returns a deep copy of o.
func (o Over) Clone() Over {
	c := o
	c.Balls = append([]string(nil), o.Balls...)
	if o.BallAssignments != nil {
		c.BallAssignments = make(map[int]BallAssignment, len(o.BallAssignments))
		for k, v := range o.BallAssignments {
			c.BallAssignments[k] = v
		}
	}
	if o.Applied != nil {
		snap := *o.Applied
		c.Applied = &snap
	}
	return c
}
