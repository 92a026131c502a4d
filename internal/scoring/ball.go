package scoring

import (
	"math"
	"strconv"
	"strings"
)

// BallsPerOver is the number of legal deliveries credited for one committed over.
const BallsPerOver = 6

// WicketMarker is the raw ball value operators enter for a dismissal.
const WicketMarker = "W"

// BallRuns parses a raw ball value. Only non-negative integers carry runs;
// wicket markers, empty slots and free text do not.
func BallRuns(raw string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// IsRecorded reports whether a ball slot holds any value.
func IsRecorded(raw string) bool {
	return strings.TrimSpace(raw) != ""
}

// IsWicket reports whether a raw ball value is the wicket marker.
func IsWicket(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), WicketMarker)
}

// OversToBalls converts decimal overs.balls notation (3.4 = 3 overs 4 balls)
// to a ball count.
func OversToBalls(overs float64) int {
	if overs <= 0 {
		return 0
	}
	whole := math.Floor(overs)
	rem := int(math.Round((overs - whole) * 10))
	return int(whole)*BallsPerOver + rem
}

// BallsToOvers converts a ball count back to overs.balls notation.
func BallsToOvers(balls int) float64 {
	if balls <= 0 {
		return 0
	}
	whole := balls / BallsPerOver
	rem := balls % BallsPerOver
	return math.Round((float64(whole)+float64(rem)/10)*10) / 10
}
