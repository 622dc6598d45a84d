// Package midiexport emits a song as a standard MIDI file. One MIDI
// track per song track, preceded by a conductor track carrying the
// tempo and meter map. Pitches are computed from the string tuning plus
// the fret, the same arithmetic the tab renderer and transposition use.
package midiexport

import (
	"fmt"
	"io"
	"os"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/tabwright/tabwright"
)

const ticksPerBeat = 480

// Export writes the song as a standard MIDI file. Percussion tracks
// are skipped; only the default voice of each measure is exported.
func Export(w io.Writer, song *tabwright.Song) error {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerBeat)

	if err := s.Add(conductorTrack(song)); err != nil {
		return fmt.Errorf("could not add conductor track: %w", err)
	}
	channel := uint8(0)
	for i := range song.Tracks {
		track := &song.Tracks[i]
		if track.Percussion {
			continue
		}
		if channel == 9 { // general MIDI reserves channel 9 for drums
			channel++
		}
		if err := s.Add(noteTrack(song, track, channel%16)); err != nil {
			return fmt.Errorf("could not add track %q: %w", track.Name, err)
		}
		channel++
	}
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("could not write midi: %w", err)
	}
	return nil
}

// WriteFile exports the song to a .mid file at path.
func WriteFile(path string, song *tabwright.Song) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create midi file: %w", err)
	}
	defer file.Close()
	return Export(file, song)
}

// conductorTrack carries the tempo and meter changes at their measure
// start ticks, so every note track can stay tempo-agnostic.
func conductorTrack(song *tabwright.Song) smf.Track {
	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(song.Title))
	tempo := song.Tempo
	if tempo < 1 {
		tempo = 120
	}
	tr.Add(0, smf.MetaTempo(float64(tempo)))
	var delta uint32
	var meter tabwright.TimeSignature
	for i, header := range song.Headers {
		if i == 0 || header.TimeSignature != meter {
			meter = header.TimeSignature
			tr.Add(delta, smf.MetaMeter(uint8(meter.Numerator), uint8(meter.Denominator)))
			delta = 0
		}
		if header.Tempo > 0 && header.Tempo != tempo {
			tempo = header.Tempo
			tr.Add(delta, smf.MetaTempo(float64(tempo)))
			delta = 0
		}
		delta += measureTicks(header.TimeSignature)
	}
	tr.Close(delta)
	return tr
}

func noteTrack(song *tabwright.Song, track *tabwright.Track, channel uint8) smf.Track {
	var tr smf.Track
	tr.Add(0, smf.MetaInstrument(track.Name))
	tr.Add(0, midi.ProgramChange(channel, uint8(track.Instrument)))
	velocity := uint8(clamp(track.Volume, 1, 127))

	var pending uint32
	for m := range track.Measures {
		var elapsed uint32
		if len(track.Measures[m].Voices) > 0 {
			for _, beat := range track.Measures[m].Voices[0].Beats {
				ticks := beatTicks(beat.Duration)
				elapsed += ticks
				if len(beat.Notes) == 0 {
					pending += ticks
					continue
				}
				for _, note := range beat.Notes {
					pitch, ok := track.StringPitch(note.String)
					if !ok {
						continue
					}
					tr.Add(pending, midi.NoteOn(channel, uint8(clamp(pitch+note.Fret, 0, 127)), velocity))
					pending = 0
				}
				off := ticks
				for _, note := range beat.Notes {
					pitch, ok := track.StringPitch(note.String)
					if !ok {
						continue
					}
					tr.Add(off, midi.NoteOff(channel, uint8(clamp(pitch+note.Fret, 0, 127))))
					off = 0
				}
			}
		}
		// pad underfull measures so measure starts line up across tracks
		header := song.Headers[m].TimeSignature
		if full := measureTicks(header); elapsed < full {
			pending += full - elapsed
		}
	}
	tr.Close(pending)
	return tr
}

// measureTicks is the nominal length of a measure in ticks given its
// time signature.
func measureTicks(ts tabwright.TimeSignature) uint32 {
	if ts.Denominator == 0 {
		return 4 * ticksPerBeat
	}
	return uint32(ts.Numerator) * 4 * ticksPerBeat / uint32(ts.Denominator)
}

// beatTicks converts a duration code to ticks; a quarter (code 4) is
// one beat.
func beatTicks(duration int) uint32 {
	if duration == 0 {
		return ticksPerBeat
	}
	return 4 * ticksPerBeat / uint32(duration)
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
