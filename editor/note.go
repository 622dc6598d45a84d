package editor

import (
	"fmt"

	"github.com/tabwright/tabwright"
)

// AddNote places a note at (track, measure, voice, beat). Voices and
// beats up to the addressed indices are created on demand; intervening
// beats are rests with the requested duration. A note already on the
// string is replaced, and the beat's shared duration is overwritten:
// the last add wins for the whole beat, matching the one-duration-per-
// beat rule of tablature.
func (e *Editor) AddNote(trackIndex, measureIndex, string_, fret, duration, voiceIndex, beatIndex int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return err
	}
	track, err := e.song.Track(trackIndex)
	if err != nil {
		return err
	}
	if measureIndex < 0 || measureIndex >= len(track.Measures) {
		return fmt.Errorf("%w: measure %d (have %d)", tabwright.ErrIndexOutOfRange, measureIndex, len(track.Measures))
	}
	if string_ < 1 || string_ > track.StringCount() {
		return fmt.Errorf("%w: string %d, track has %d strings", tabwright.ErrInvalidString, string_, track.StringCount())
	}
	if fret < 0 {
		return fmt.Errorf("%w: negative fret %d", tabwright.ErrValidation, fret)
	}
	if !tabwright.ValidDuration(duration) {
		return fmt.Errorf("%w: duration %d", tabwright.ErrValidation, duration)
	}
	if voiceIndex < 0 {
		return fmt.Errorf("%w: voice %d", tabwright.ErrIndexOutOfRange, voiceIndex)
	}
	if beatIndex < 0 {
		return fmt.Errorf("%w: beat %d", tabwright.ErrIndexOutOfRange, beatIndex)
	}

	measure := &track.Measures[measureIndex]
	for len(measure.Voices) <= voiceIndex {
		measure.Voices = append(measure.Voices, tabwright.Voice{})
	}
	voice := &measure.Voices[voiceIndex]
	for len(voice.Beats) <= beatIndex {
		voice.Beats = append(voice.Beats, tabwright.Beat{Duration: duration})
	}
	beat := &voice.Beats[beatIndex]
	beat.Duration = duration
	if existing := beat.Note(string_); existing != nil {
		*existing = tabwright.Note{String: string_, Fret: fret}
		return nil
	}
	beat.Notes = append(beat.Notes, tabwright.Note{String: string_, Fret: fret})
	return nil
}

// AddChord attaches a chord to an existing beat on the default voice.
// Chords never create beats; addressing a beat that was never created
// fails with ErrBeatNotFound.
func (e *Editor) AddChord(trackIndex, measureIndex, beatIndex int, chord tabwright.Chord) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return err
	}
	beat, err := e.resolveBeat(trackIndex, measureIndex, beatIndex)
	if err != nil {
		return err
	}
	track := &e.song.Tracks[trackIndex]
	if len(chord.Strings) > track.StringCount() {
		return fmt.Errorf("%w: chord maps %d strings, track has %d", tabwright.ErrValidation, len(chord.Strings), track.StringCount())
	}
	for _, barre := range chord.Barres {
		if barre.StartString < 1 || barre.EndString > track.StringCount() || barre.StartString > barre.EndString {
			return fmt.Errorf("%w: barre strings %d..%d", tabwright.ErrValidation, barre.StartString, barre.EndString)
		}
	}
	copied := chord.Copy()
	beat.Chord = &copied
	return nil
}

// Chord returns a copy of the chord on the addressed beat, or nil if
// the beat exists but carries none.
func (e *Editor) Chord(trackIndex, measureIndex, beatIndex int) (*tabwright.Chord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return nil, err
	}
	beat, err := e.resolveBeat(trackIndex, measureIndex, beatIndex)
	if err != nil {
		return nil, err
	}
	if beat.Chord == nil {
		return nil, nil
	}
	copied := beat.Chord.Copy()
	return &copied, nil
}

// resolveBeat addresses a beat on the default voice for the chord
// operations. A missing default voice means no beats were ever created
// in the measure, so it reports ErrBeatNotFound like a missing beat.
func (e *Editor) resolveBeat(trackIndex, measureIndex, beatIndex int) (*tabwright.Beat, error) {
	track, err := e.song.Track(trackIndex)
	if err != nil {
		return nil, err
	}
	if measureIndex < 0 || measureIndex >= len(track.Measures) {
		return nil, fmt.Errorf("%w: measure %d (have %d)", tabwright.ErrIndexOutOfRange, measureIndex, len(track.Measures))
	}
	if beatIndex < 0 {
		return nil, fmt.Errorf("%w: beat %d", tabwright.ErrIndexOutOfRange, beatIndex)
	}
	measure := &track.Measures[measureIndex]
	if len(measure.Voices) == 0 || beatIndex >= len(measure.Voices[0].Beats) {
		return nil, fmt.Errorf("%w: no beat %d in track %d, measure %d", tabwright.ErrBeatNotFound, beatIndex, trackIndex, measureIndex)
	}
	return &measure.Voices[0].Beats[beatIndex], nil
}
