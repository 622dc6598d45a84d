package editor

import (
	"fmt"

	"github.com/tabwright/tabwright"
)

// AddMeasure appends an empty measure: one shared header in 4/4 and, on
// every existing track, one new measure slot with an empty default
// voice. Returns the index of the new measure.
func (e *Editor) AddMeasure() (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return 0, err
	}
	return e.appendMeasure(), nil
}

func (e *Editor) appendMeasure() int {
	e.song.Headers = append(e.song.Headers, tabwright.MeasureHeader{
		TimeSignature: tabwright.TimeSignature{Numerator: 4, Denominator: 4},
	})
	for i := range e.song.Tracks {
		track := &e.song.Tracks[i]
		track.Measures = append(track.Measures, tabwright.TrackMeasure{Voices: []tabwright.Voice{{}}})
	}
	return len(e.song.Headers) - 1
}

// SetTimeSignature sets the shared time signature of the measure, for
// all tracks at once.
func (e *Editor) SetTimeSignature(measure, numerator, denominator int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return err
	}
	header, err := e.song.Header(measure)
	if err != nil {
		return err
	}
	if numerator < 1 {
		return fmt.Errorf("%w: time signature numerator %d", tabwright.ErrValidation, numerator)
	}
	if !tabwright.ValidDuration(denominator) {
		return fmt.Errorf("%w: time signature denominator %d", tabwright.ErrValidation, denominator)
	}
	header.TimeSignature = tabwright.TimeSignature{Numerator: numerator, Denominator: denominator}
	return nil
}

// SetKeySignature sets the shared key signature of the measure; key
// counts sharps (positive) or flats (negative), -7..7.
func (e *Editor) SetKeySignature(measure, key int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return err
	}
	header, err := e.song.Header(measure)
	if err != nil {
		return err
	}
	if key < -7 || key > 7 {
		return fmt.Errorf("%w: key signature %d outside -7..7", tabwright.ErrValidation, key)
	}
	header.Key = key
	return nil
}

// SetTempo sets a tempo change on the measure header, overriding the
// inherited tempo from that measure onwards.
func (e *Editor) SetTempo(measure, tempo int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return err
	}
	header, err := e.song.Header(measure)
	if err != nil {
		return err
	}
	if tempo < 1 {
		return fmt.Errorf("%w: tempo %d BPM", tabwright.ErrValidation, tempo)
	}
	header.Tempo = tempo
	return nil
}
