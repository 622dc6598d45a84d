// Package tab renders one track of a song as fixed-width ASCII
// tablature: one line per string, beats as columns, measures separated
// by bar lines. Column widths are decided per beat over all strings at
// once, so the lines never drift apart no matter how wide the fret
// numbers get.
package tab

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tabwright/tabwright"
)

const (
	fill      = "-"
	separator = "|"

	// Narrowest column a beat may occupy; wider fret numbers widen the
	// column for every string of the beat.
	minColumnWidth = 3
)

// Render returns the tab lines of the track, one per string, string 1
// (highest) first. All lines have equal length. A track with zero
// measures renders as empty lines; an invalid track index fails with
// ErrIndexOutOfRange.
func Render(song *tabwright.Song, trackIndex int) ([]string, error) {
	track, err := song.Track(trackIndex)
	if err != nil {
		return nil, err
	}
	lines := make([]strings.Builder, track.StringCount())
	for m := range track.Measures {
		if m > 0 {
			for i := range lines {
				lines[i].WriteString(separator)
			}
		}
		for _, beat := range defaultVoiceBeats(&track.Measures[m]) {
			width := columnWidth(&beat)
			for s := range lines {
				if note := beat.Note(s + 1); note != nil {
					digits := strconv.Itoa(note.Fret)
					lines[s].WriteString(digits)
					lines[s].WriteString(strings.Repeat(fill, width-len(digits)))
				} else {
					lines[s].WriteString(strings.Repeat(fill, width))
				}
			}
		}
	}
	ret := make([]string, len(lines))
	for i := range lines {
		ret[i] = lines[i].String()
	}
	return ret, nil
}

// RenderTrack renders the track with its name and tuning as header
// lines above the tab grid.
func RenderTrack(song *tabwright.Song, trackIndex int) (string, error) {
	track, err := song.Track(trackIndex)
	if err != nil {
		return "", err
	}
	lines, err := Render(song, trackIndex)
	if err != nil {
		return "", err
	}
	tuning := make([]string, len(track.Tuning))
	for i, pitch := range track.Tuning {
		tuning[i] = NoteName(pitch)
	}
	header := []string{
		fmt.Sprintf("Track: %s", track.Name),
		fmt.Sprintf("Tuning: %s", strings.Join(tuning, " ")),
		"",
	}
	return strings.Join(append(header, lines...), "\n"), nil
}

func defaultVoiceBeats(measure *tabwright.TrackMeasure) []tabwright.Beat {
	if len(measure.Voices) == 0 {
		return nil
	}
	return measure.Voices[0].Beats
}

// columnWidth is the width of the beat's column on every string: the
// widest fret number in the beat plus one fill of breathing room, but
// never below the minimum. Beats with no notes still get the minimum
// width, so rests occupy a column instead of collapsing the grid.
func columnWidth(beat *tabwright.Beat) int {
	width := minColumnWidth
	for _, note := range beat.Notes {
		if w := len(strconv.Itoa(note.Fret)) + 1; w > width {
			width = w
		}
	}
	return width
}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteName converts a MIDI pitch to scientific pitch notation, e.g.
// 64 -> E4.
func NoteName(pitch int) string {
	return fmt.Sprintf("%s%d", noteNames[((pitch%12)+12)%12], pitch/12-1)
}
