package tabwright

import "errors"

// The failure classes every operation can report. Operations wrap these
// with fmt.Errorf("%w: ...") to carry the offending index or value; the
// tool boundary recovers the class with errors.Is.
var (
	// ErrIndexOutOfRange: a track, measure, string, voice or beat index
	// argument is negative or beyond the current count.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidString: a note addressed a string number above the
	// track's string count.
	ErrInvalidString = errors.New("invalid string number")

	// ErrBeatNotFound: a chord or note operation addressed a beat that
	// was never created.
	ErrBeatNotFound = errors.New("beat not found")

	// ErrNoActiveSong: an operation ran before a song was created or
	// loaded.
	ErrNoActiveSong = errors.New("no active song")

	// ErrValidation: a structured argument is malformed, e.g. an unknown
	// repeat kind or a measure range with start > end.
	ErrValidation = errors.New("validation failed")
)
