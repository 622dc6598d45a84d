package editor

import (
	"fmt"

	"github.com/tabwright/tabwright"
)

// AddSection appends a section annotation over the inclusive measure
// range start..end. Ranges of different sections may overlap; a range
// with start > end or reaching past the last measure fails with
// ErrValidation and leaves the structure lists untouched.
func (e *Editor) AddSection(start, end int, name, text string, color *tabwright.RGB) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("%w: section name is empty", tabwright.ErrValidation)
	}
	if err := e.checkRange(start, end); err != nil {
		return err
	}
	section := tabwright.Section{
		Name:         name,
		Text:         text,
		StartMeasure: start,
		EndMeasure:   end,
	}
	if color != nil {
		c := *color
		section.Color = &c
	}
	e.song.Sections = append(e.song.Sections, section)
	return nil
}

// AddRepeatGroup appends a repeat annotation over the inclusive measure
// range start..end. kind must be one of the repeat kind names; count is
// the number of playthroughs, at least 1.
func (e *Editor) AddRepeatGroup(start, end int, kind string, count int, endings []int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return err
	}
	parsed, err := tabwright.ParseRepeatKind(kind)
	if err != nil {
		return err
	}
	if count < 1 {
		return fmt.Errorf("%w: repeat count %d", tabwright.ErrValidation, count)
	}
	for _, ending := range endings {
		if ending < 1 {
			return fmt.Errorf("%w: ending number %d", tabwright.ErrValidation, ending)
		}
	}
	if err := e.checkRange(start, end); err != nil {
		return err
	}
	e.song.Repeats = append(e.song.Repeats, tabwright.RepeatGroup{
		StartMeasure: start,
		EndMeasure:   end,
		Kind:         parsed,
		Count:        count,
		Endings:      append([]int(nil), endings...),
	})
	return nil
}

// AddCoda places a coda marker on the measure.
func (e *Editor) AddCoda(measure int) error {
	return e.addMarker(measure, tabwright.MarkerCoda)
}

// AddDoubleBar places a double bar line marker on the measure.
func (e *Editor) AddDoubleBar(measure int) error {
	return e.addMarker(measure, tabwright.MarkerDoubleBar)
}

func (e *Editor) addMarker(measure int, kind tabwright.MarkerKind) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return err
	}
	if _, err := e.song.Header(measure); err != nil {
		return err
	}
	e.song.Markers = append(e.song.Markers, tabwright.Marker{Measure: measure, Kind: kind})
	return nil
}

func (e *Editor) checkRange(start, end int) error {
	if start < 0 || start > end || end >= e.song.MeasureCount() {
		return fmt.Errorf("%w: measure range %d..%d, song has %d measures",
			tabwright.ErrValidation, start, end, e.song.MeasureCount())
	}
	return nil
}
