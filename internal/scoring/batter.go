package scoring

import "strings"

// DismissalType describes how a batter's innings ended, or that it has not.
type DismissalType string

const (
	DismissalNotOut    DismissalType = "not_out"
	DismissalBowled    DismissalType = "bowled"
	DismissalLBW       DismissalType = "lbw"
	DismissalCaught    DismissalType = "caught"
	DismissalStumping  DismissalType = "stumping"
	DismissalRunOut    DismissalType = "run_out"
	DismissalNextToBat DismissalType = "next_to_bat"
)

// dismissalFields lists which of (bowler, fielder) each dismissal type credits.
var dismissalFields = map[DismissalType][2]bool{
	DismissalNotOut:    {false, false},
	DismissalNextToBat: {false, false},
	DismissalBowled:    {true, false},
	DismissalLBW:       {true, false},
	DismissalCaught:    {true, true},
	DismissalStumping:  {true, true},
	DismissalRunOut:    {false, true},
}

// Valid reports whether t is a known dismissal type.
func (t DismissalType) Valid() bool {
	_, ok := dismissalFields[t]
	return ok
}

// CreditsBowler reports whether the dismissal is credited to a bowler.
func (t DismissalType) CreditsBowler() bool { return dismissalFields[t][0] }

// CreditsFielder reports whether the dismissal names a fielder.
func (t DismissalType) CreditsFielder() bool { return dismissalFields[t][1] }

// BatterEntry is one row of an innings' batting order.
type BatterEntry struct {
	Name             string        `json:"name"`
	Runs             int           `json:"runs"`
	Balls            int           `json:"balls"`
	Fours            int           `json:"fours"`
	Sixes            int           `json:"sixes"`
	DismissalType    DismissalType `json:"dismissal_type,omitempty"`
	DismissalBowler  string        `json:"dismissal_bowler,omitempty"`
	DismissalFielder string        `json:"dismissal_fielder,omitempty"`
}

func (b *BatterEntry) applyDelta(d Delta) {
	addFloored(&b.Runs, d.Runs)
	addFloored(&b.Balls, d.Balls)
	addFloored(&b.Fours, d.Fours)
	addFloored(&b.Sixes, d.Sixes)
}

// IsOut reports whether the entry counts as a fallen wicket.
func (b BatterEntry) IsOut() bool {
	switch b.DismissalType {
	case "", DismissalNotOut, DismissalNextToBat:
		return false
	}
	return true
}

// SetDismissal switches the dismissal type and keeps only the fields that
// type credits. Fields irrelevant to the new type are cleared.
func (b *BatterEntry) SetDismissal(t DismissalType, bowler, fielder string) error {
	if !t.Valid() {
		return Invalid("unknown dismissal type %q", t)
	}
	b.DismissalType = t
	b.DismissalBowler = ""
	b.DismissalFielder = ""
	if t.CreditsBowler() {
		b.DismissalBowler = strings.TrimSpace(bowler)
	}
	if t.CreditsFielder() {
		b.DismissalFielder = strings.TrimSpace(fielder)
	}
	return nil
}

// BatterFigures is an operator override of a batter's totals. Nil fields are left alone.
type BatterFigures struct {
	Runs  *int `json:"runs,omitempty"`
	Balls *int `json:"balls,omitempty"`
	Fours *int `json:"fours,omitempty"`
	Sixes *int `json:"sixes,omitempty"`
}

func (f BatterFigures) validate() error {
	for _, v := range []*int{f.Runs, f.Balls, f.Fours, f.Sixes} {
		if v != nil && *v < 0 {
			return Invalid("batter figures must be non-negative")
		}
	}
	return nil
}
