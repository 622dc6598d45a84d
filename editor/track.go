package editor

import (
	"fmt"

	"github.com/tabwright/tabwright"
)

// TrackProperties carries the optional fields of SetTrackProperties;
// nil fields keep their current value.
type TrackProperties struct {
	Name       *string
	Instrument *int
	Volume     *int
	Pan        *int
}

// AddTrack appends a track with the default 6-string standard tuning
// and one measure slot per existing measure header, and returns its
// index.
func (e *Editor) AddTrack(name string) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return 0, err
	}
	return e.appendTrack(name), nil
}

// appendTrack requires the lock; split out so NewSong can build the
// default document through the same path.
func (e *Editor) appendTrack(name string) int {
	track := tabwright.Track{
		Name:       name,
		Instrument: tabwright.DefaultInstrument,
		Volume:     tabwright.DefaultVolume,
		Pan:        tabwright.DefaultPan,
		Tuning:     append([]int(nil), tabwright.StandardTuning...),
		Measures:   make([]tabwright.TrackMeasure, e.song.MeasureCount()),
	}
	for i := range track.Measures {
		track.Measures[i].Voices = []tabwright.Voice{{}}
	}
	e.song.Tracks = append(e.song.Tracks, track)
	return len(e.song.Tracks) - 1
}

// RemoveTrack deletes the track at the given index. Track indices stay
// dense: every following track shifts down by one.
func (e *Editor) RemoveTrack(index int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return err
	}
	if _, err := e.song.Track(index); err != nil {
		return err
	}
	e.song.Tracks = append(e.song.Tracks[:index], e.song.Tracks[index+1:]...)
	return nil
}

// SetTrackProperties applies only the supplied fields. Volume and pan
// are clamped to 0..127 rather than rejected; an instrument outside the
// General MIDI program range fails with ErrValidation.
func (e *Editor) SetTrackProperties(index int, props TrackProperties) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return err
	}
	track, err := e.song.Track(index)
	if err != nil {
		return err
	}
	if props.Instrument != nil && (*props.Instrument < 0 || *props.Instrument > 127) {
		return fmt.Errorf("%w: instrument %d outside 0..127", tabwright.ErrValidation, *props.Instrument)
	}
	if props.Name != nil {
		track.Name = *props.Name
	}
	if props.Instrument != nil {
		track.Instrument = *props.Instrument
	}
	if props.Volume != nil {
		track.Volume = clamp(*props.Volume, 0, 127)
	}
	if props.Pan != nil {
		track.Pan = clamp(*props.Pan, 0, 127)
	}
	return nil
}

// Transpose shifts every note of the track by the given number of
// semitones, refretted against the string it sits on. Tied notes and
// notes that would land below fret 0 are left unchanged.
func (e *Editor) Transpose(index, semitones int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return err
	}
	track, err := e.song.Track(index)
	if err != nil {
		return err
	}
	for m := range track.Measures {
		for v := range track.Measures[m].Voices {
			voice := &track.Measures[m].Voices[v]
			for b := range voice.Beats {
				for n := range voice.Beats[b].Notes {
					note := &voice.Beats[b].Notes[n]
					if note.Tied {
						continue
					}
					if fret := note.Fret + semitones; fret >= 0 {
						note.Fret = fret
					}
				}
			}
		}
	}
	return nil
}
