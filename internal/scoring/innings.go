package scoring

import "strings"

// Innings holds one team's batting turn: the over ledger plus the batting and
// bowling tables derived from it.
type Innings struct {
	Batting []BatterEntry `json:"batting"`
	Bowling []BowlerEntry `json:"bowling"`
	Overs   []Over        `json:"overs"`
}

// ClearOptions tunes ClearOver.
type ClearOptions struct {
	// RevertBatters also unwinds the batter attributions of the cleared over.
	RevertBatters bool
}

// Batter returns the batting row named name, or nil.
func (in *Innings) Batter(name string) *BatterEntry {
	for i := range in.Batting {
		if in.Batting[i].Name == name {
			return &in.Batting[i]
		}
	}
	return nil
}

// Bowler returns the bowling row named name, or nil.
func (in *Innings) Bowler(name string) *BowlerEntry {
	for i := range in.Bowling {
		if in.Bowling[i].Name == name {
			return &in.Bowling[i]
		}
	}
	return nil
}

func (in *Innings) batterOrCreate(name string) *BatterEntry {
	if b := in.Batter(name); b != nil {
		return b
	}
	in.Batting = append(in.Batting, BatterEntry{Name: name, DismissalType: DismissalNotOut})
	return &in.Batting[len(in.Batting)-1]
}

func (in *Innings) bowlerOrCreate(name string) *BowlerEntry {
	if b := in.Bowler(name); b != nil {
		return b
	}
	in.Bowling = append(in.Bowling, BowlerEntry{Name: name})
	return &in.Bowling[len(in.Bowling)-1]
}

// batterRow avoids handing a typed nil pointer to the Row interface.
func (in *Innings) batterRow(name string) Row {
	if b := in.Batter(name); b != nil {
		return b
	}
	return nil
}

func (in *Innings) bowlerRow(name string) Row {
	if b := in.Bowler(name); b != nil {
		return b
	}
	return nil
}

func (in *Innings) over(idx int) (*Over, error) {
	if idx < 0 || idx >= len(in.Overs) {
		return nil, Missing("over", idx)
	}
	return &in.Overs[idx], nil
}

func (in *Innings) slot(overIdx, ballIdx int) (*Over, error) {
	o, err := in.over(overIdx)
	if err != nil {
		return nil, err
	}
	if ballIdx < 0 || ballIdx >= len(o.Balls) {
		return nil, Invalid("ball index %d out of range for over %d", ballIdx, o.OverNumber)
	}
	return o, nil
}

// AddOver appends the next contiguous over with empty slots.
func (in *Innings) AddOver() *Over {
	in.Overs = append(in.Overs, NewOver(len(in.Overs)+1))
	return &in.Overs[len(in.Overs)-1]
}

// RecordBall writes raw into the ball slot unconditionally. The returned flag
// tells the caller the value carries runs and needs a batter attribution.
// Overwriting an attributed ball with a wicket or an empty slot takes the old
// runs back off the batter.
func (in *Innings) RecordBall(overIdx, ballIdx int, raw string) (bool, error) {
	o, err := in.slot(overIdx, ballIdx)
	if err != nil {
		return false, err
	}
	o.Balls[ballIdx] = raw
	_, numeric := BallRuns(raw)
	if prev, exists := o.BallAssignments[ballIdx]; exists && !numeric {
		Revert(in.batterRow(prev.Batter), BallDelta(prev.Value))
		delete(o.BallAssignments, ballIdx)
	}
	return numeric, nil
}

// AssignBatterToBall credits the ball's current run value to batter. An
// existing attribution is always reverted first, even when the batter is
// unchanged, so repeated assignments never double count.
func (in *Innings) AssignBatterToBall(overIdx, ballIdx int, batter string) error {
	batter = strings.TrimSpace(batter)
	if batter == "" {
		return Invalid("batter name is required")
	}
	o, err := in.slot(overIdx, ballIdx)
	if err != nil {
		return err
	}
	value, ok := BallRuns(o.Balls[ballIdx])
	if !ok {
		return Invalid("ball %d of over %d has no run value", ballIdx, o.OverNumber)
	}

	if prev, exists := o.BallAssignments[ballIdx]; exists {
		Revert(in.batterRow(prev.Batter), BallDelta(prev.Value))
	}
	Apply(in.batterOrCreate(batter), BallDelta(value))

	if o.BallAssignments == nil {
		o.BallAssignments = make(map[int]BallAssignment)
	}
	o.BallAssignments[ballIdx] = BallAssignment{Batter: batter, Value: value}
	return nil
}

// unapply unwinds the over's committed bowler figures, if any.
func (in *Innings) unapply(o *Over) {
	if o.Applied == nil {
		return
	}
	Revert(in.bowlerRow(o.Applied.BowlerName), o.Applied.Delta())
	o.Applied = nil
}

// SaveOver commits the over to its bowler's row. A previously committed
// snapshot is unwound first, so re-saving after edits (including a bowler
// change) never double counts.
func (in *Innings) SaveOver(overIdx int) (AppliedSnapshot, error) {
	o, err := in.over(overIdx)
	if err != nil {
		return AppliedSnapshot{}, err
	}
	bowler := strings.TrimSpace(o.Bowler)
	if bowler == "" {
		return AppliedSnapshot{}, Invalid("bowler not assigned for over %d", o.OverNumber)
	}
	if !o.IsComplete() {
		return AppliedSnapshot{}, Invalid("incomplete over %d", o.OverNumber)
	}

	in.unapply(o)

	total := OverTotal(*o)
	snap := AppliedSnapshot{
		BowlerName:     bowler,
		RunsApplied:    total,
		WicketsApplied: o.WicketsDeclared,
		WasMaiden:      total == 0,
	}
	Apply(in.bowlerOrCreate(bowler), snap.Delta())
	o.Applied = &snap
	return snap, nil
}

// ClearOver unwinds the over's committed bowler figures and resets the over to
// empty slots. Batter attributions stay credited unless opts.RevertBatters is set.
func (in *Innings) ClearOver(overIdx int, opts ClearOptions) error {
	o, err := in.over(overIdx)
	if err != nil {
		return err
	}
	in.unapply(o)
	if opts.RevertBatters {
		for _, a := range o.BallAssignments {
			Revert(in.batterRow(a.Batter), BallDelta(a.Value))
		}
	}

	*o = NewOver(o.OverNumber)
	return nil
}

// AddBallSlot appends an empty slot to model an extra delivery.
func (in *Innings) AddBallSlot(overIdx int) error {
	o, err := in.over(overIdx)
	if err != nil {
		return err
	}
	o.Balls = append(o.Balls, "")
	return nil
}

// RemoveBallSlot drops the trailing slot. Its attribution, if any, is reverted.
func (in *Innings) RemoveBallSlot(overIdx int) error {
	o, err := in.over(overIdx)
	if err != nil {
		return err
	}
	if len(o.Balls) <= 1 {
		return Invalid("over %d must keep at least one ball slot", o.OverNumber)
	}
	last := len(o.Balls) - 1
	if a, ok := o.BallAssignments[last]; ok {
		Revert(in.batterRow(a.Batter), BallDelta(a.Value))
		delete(o.BallAssignments, last)
	}
	o.Balls = o.Balls[:last]
	return nil
}

// UpdateOver applies operator edits to extras, declared wickets and bowler.
// Edits only reach the bowler table on the next SaveOver.
func (in *Innings) UpdateOver(overIdx int, p OverPatch) error {
	o, err := in.over(overIdx)
	if err != nil {
		return err
	}
	if p.Extras != nil && *p.Extras < 0 {
		return Invalid("extras must be non-negative")
	}
	if p.WicketsDeclared != nil && *p.WicketsDeclared < 0 {
		return Invalid("wickets must be non-negative")
	}
	if p.Extras != nil {
		o.Extras = *p.Extras
	}
	if p.WicketsDeclared != nil {
		o.WicketsDeclared = *p.WicketsDeclared
	}
	if p.Bowler != nil {
		o.Bowler = strings.TrimSpace(*p.Bowler)
	}
	return nil
}

// AddBatter appends a batter to the batting order.
func (in *Innings) AddBatter(name string, t DismissalType) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return Invalid("batter name is required")
	}
	if in.Batter(name) != nil {
		return Invalid("batter %q already in batting order", name)
	}
	if t == "" {
		t = DismissalNextToBat
	}
	entry := BatterEntry{Name: name}
	if err := entry.SetDismissal(t, "", ""); err != nil {
		return err
	}
	in.Batting = append(in.Batting, entry)
	return nil
}

// SetDismissal updates how the named batter got out.
func (in *Innings) SetDismissal(name string, t DismissalType, bowler, fielder string) error {
	b := in.Batter(name)
	if b == nil {
		return Missing("batter", name)
	}
	return b.SetDismissal(t, bowler, fielder)
}

// OverrideBatter replaces selected batter totals with operator-entered values.
func (in *Innings) OverrideBatter(name string, f BatterFigures) error {
	if err := f.validate(); err != nil {
		return err
	}
	b := in.Batter(name)
	if b == nil {
		return Missing("batter", name)
	}
	if f.Runs != nil {
		b.Runs = *f.Runs
	}
	if f.Balls != nil {
		b.Balls = *f.Balls
	}
	if f.Fours != nil {
		b.Fours = *f.Fours
	}
	if f.Sixes != nil {
		b.Sixes = *f.Sixes
	}
	return nil
}

// BowlingFromSnapshots rebuilds the bowling table purely from committed
// snapshots, in first-committed order. A consistent innings has a bowling
// table equal to this for every bowler with at least one committed over.
func (in *Innings) BowlingFromSnapshots() []BowlerEntry {
	var rebuilt Innings
	for _, o := range in.Overs {
		if o.Applied == nil {
			continue
		}
		Apply(rebuilt.bowlerOrCreate(o.Applied.BowlerName), o.Applied.Delta())
	}
	return rebuilt.Bowling
}

// Clone returns a deep copy of the innings.
func (in Innings) Clone() Innings {
	c := Innings{
		Batting: append([]BatterEntry(nil), in.Batting...),
		Bowling: append([]BowlerEntry(nil), in.Bowling...),
	}
	if in.Overs != nil {
		c.Overs = make([]Over, len(in.Overs))
		for i, o := range in.Overs {
			c.Overs[i] = o.Clone()
		}
	}
	return c
}
