package tabwright

import (
	"errors"
	"fmt"
)

type (
	// Song is the root of the tablature document: metadata, the shared
	// measure headers, the tracks, and the structural annotation layers.
	// The measure headers are the single source of truth for how many
	// measures exist; every track carries exactly one TrackMeasure per
	// header, at the same index. Tracks never store their own header
	// state, so time signatures and tempos cannot diverge between
	// tracks at the same measure position.
	Song struct {
		Title     string `yaml:"title" json:"title"`
		Artist    string `yaml:"artist" json:"artist"`
		Album     string `yaml:"album,omitempty" json:"album"`
		Copyright string `yaml:"copyright,omitempty" json:"copyright"`
		Subtitle  string `yaml:"subtitle,omitempty" json:"subtitle"`
		Notice    string `yaml:"notice,omitempty" json:"notice"`
		Lyrics    string `yaml:"lyrics,omitempty" json:"lyrics"`

		// Tempo is the song default in beats per minute; a header with a
		// nonzero Tempo overrides it from that measure onwards.
		Tempo int `yaml:"tempo" json:"tempo"`

		// PageSetup holds named layout fields (page size, margins, header
		// and footer templates). The keys are not interpreted here.
		PageSetup map[string]string `yaml:"pagesetup,omitempty" json:"page_setup,omitempty"`

		// Metadata holds additional named text fields (words, music,
		// transcriber, instructions) beyond the fixed ones above.
		Metadata map[string]string `yaml:"metadata,omitempty" json:"metadata,omitempty"`

		Headers []MeasureHeader `yaml:"measures" json:"measures"`
		Tracks  []Track         `yaml:"tracks" json:"tracks"`

		Sections []Section     `yaml:"sections,omitempty" json:"sections,omitempty"`
		Repeats  []RepeatGroup `yaml:"repeats,omitempty" json:"repeat_groups,omitempty"`
		Markers  []Marker      `yaml:"markers,omitempty" json:"markers,omitempty"`
	}

	// MeasureHeader is the per-measure state shared by all tracks: time
	// signature, key signature and an optional tempo change. Tempo 0
	// means the measure inherits the tempo of the previous measure (or
	// the song default).
	MeasureHeader struct {
		TimeSignature TimeSignature `yaml:"timesignature" json:"time_signature"`
		Key           int           `yaml:"key" json:"key"` // -7 (7 flats) .. 7 (7 sharps), 0 = C
		Tempo         int           `yaml:"tempo,omitempty" json:"tempo,omitempty"`
	}

	TimeSignature struct {
		Numerator   int `yaml:"numerator" json:"numerator"`
		Denominator int `yaml:"denominator" json:"denominator"`
	}
)

// MeasureCount returns the number of measures in the song. Tracks do not
// track this independently; len(track.Measures) always equals this.
func (s *Song) MeasureCount() int {
	return len(s.Headers)
}

// Track returns the track at the given index.
func (s *Song) Track(index int) (*Track, error) {
	if index < 0 || index >= len(s.Tracks) {
		return nil, fmt.Errorf("%w: track %d (have %d)", ErrIndexOutOfRange, index, len(s.Tracks))
	}
	return &s.Tracks[index], nil
}

// Header returns the shared measure header at the given index.
func (s *Song) Header(index int) (*MeasureHeader, error) {
	if index < 0 || index >= len(s.Headers) {
		return nil, fmt.Errorf("%w: measure %d (have %d)", ErrIndexOutOfRange, index, len(s.Headers))
	}
	return &s.Headers[index], nil
}

// Beat resolves a (track, measure, voice, beat) address to the Beat
// stored there. Track, measure and voice indices outside the current
// counts fail with ErrIndexOutOfRange; a beat index pointing past the
// beats actually created in the voice fails with ErrBeatNotFound, so
// that callers can distinguish "bad address" from "nothing there yet".
func (s *Song) Beat(track, measure, voice, beat int) (*Beat, error) {
	t, err := s.Track(track)
	if err != nil {
		return nil, err
	}
	if measure < 0 || measure >= len(t.Measures) {
		return nil, fmt.Errorf("%w: measure %d (have %d)", ErrIndexOutOfRange, measure, len(t.Measures))
	}
	m := &t.Measures[measure]
	if voice < 0 || voice >= len(m.Voices) {
		return nil, fmt.Errorf("%w: voice %d (have %d)", ErrIndexOutOfRange, voice, len(m.Voices))
	}
	v := &m.Voices[voice]
	if beat < 0 || beat >= len(v.Beats) {
		return nil, fmt.Errorf("%w: no beat %d in track %d, measure %d, voice %d", ErrBeatNotFound, beat, track, measure, voice)
	}
	return &v.Beats[beat], nil
}

// EffectiveTempo returns the tempo in force at the given measure,
// walking back through headers until one sets a tempo, falling back to
// the song default.
func (s *Song) EffectiveTempo(measure int) int {
	for i := min(measure, len(s.Headers)-1); i >= 0; i-- {
		if s.Headers[i].Tempo > 0 {
			return s.Headers[i].Tempo
		}
	}
	return s.Tempo
}

// Copy makes a deep copy of a Song.
func (s *Song) Copy() Song {
	ret := *s
	ret.PageSetup = copyStringMap(s.PageSetup)
	ret.Metadata = copyStringMap(s.Metadata)
	ret.Headers = append([]MeasureHeader(nil), s.Headers...)
	ret.Markers = append([]Marker(nil), s.Markers...)
	if s.Tracks != nil {
		ret.Tracks = make([]Track, len(s.Tracks))
		for i, t := range s.Tracks {
			ret.Tracks[i] = t.Copy()
		}
	}
	if s.Sections != nil {
		ret.Sections = make([]Section, len(s.Sections))
		for i, sec := range s.Sections {
			ret.Sections[i] = sec.Copy()
		}
	}
	if s.Repeats != nil {
		ret.Repeats = make([]RepeatGroup, len(s.Repeats))
		for i, r := range s.Repeats {
			ret.Repeats[i] = r.Copy()
		}
	}
	return ret
}

func copyStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	ret := make(map[string]string, len(m))
	for k, v := range m {
		ret[k] = v
	}
	return ret
}

// Validate checks the cross-entity invariants of the document: every
// track has exactly one measure slot per header, every note sits on an
// existing string, no beat holds two notes on the same string, and all
// annotation ranges stay within the measure count.
func (s *Song) Validate() error {
	for i, t := range s.Tracks {
		if len(t.Measures) != len(s.Headers) {
			return fmt.Errorf("track %d has %d measures, song has %d headers", i, len(t.Measures), len(s.Headers))
		}
		if len(t.Tuning) == 0 {
			return fmt.Errorf("track %d has no strings", i)
		}
		for j, m := range t.Measures {
			for k, v := range m.Voices {
				for l, b := range v.Beats {
					if !ValidDuration(b.Duration) {
						return fmt.Errorf("track %d measure %d voice %d beat %d: invalid duration %d", i, j, k, l, b.Duration)
					}
					seen := make(map[int]bool, len(b.Notes))
					for _, n := range b.Notes {
						if n.String < 1 || n.String > len(t.Tuning) {
							return fmt.Errorf("track %d measure %d: note on string %d, track has %d strings", i, j, n.String, len(t.Tuning))
						}
						if seen[n.String] {
							return fmt.Errorf("track %d measure %d voice %d beat %d: two notes on string %d", i, j, k, l, n.String)
						}
						seen[n.String] = true
						if n.Fret < 0 {
							return errors.New("negative fret")
						}
					}
				}
			}
		}
	}
	for _, sec := range s.Sections {
		if err := validRange(sec.StartMeasure, sec.EndMeasure, len(s.Headers)); err != nil {
			return fmt.Errorf("section %q: %w", sec.Name, err)
		}
	}
	for _, r := range s.Repeats {
		if err := validRange(r.StartMeasure, r.EndMeasure, len(s.Headers)); err != nil {
			return fmt.Errorf("repeat group: %w", err)
		}
		if r.Count < 1 {
			return errors.New("repeat group count should be >= 1")
		}
	}
	for _, m := range s.Markers {
		if m.Measure < 0 || m.Measure >= len(s.Headers) {
			return fmt.Errorf("marker at measure %d, song has %d measures", m.Measure, len(s.Headers))
		}
	}
	return nil
}

func validRange(start, end, count int) error {
	if start < 0 || end < start || end >= count {
		return fmt.Errorf("measure range %d..%d outside 0..%d", start, end, count-1)
	}
	return nil
}
