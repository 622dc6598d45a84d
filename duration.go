package tabwright

// Beat duration codes, the usual negative-power-of-two encoding: the
// code is the number of beats of this length in a whole note.
const (
	Whole        = 1
	Half         = 2
	Quarter      = 4
	Eighth       = 8
	Sixteenth    = 16
	ThirtySecond = 32
	SixtyFourth  = 64
)

// Durations lists the valid duration codes, longest first.
var Durations = []int{Whole, Half, Quarter, Eighth, Sixteenth, ThirtySecond, SixtyFourth}

// ValidDuration reports whether code is one of the supported duration
// codes.
func ValidDuration(code int) bool {
	for _, d := range Durations {
		if code == d {
			return true
		}
	}
	return false
}
