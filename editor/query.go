package editor

import (
	"github.com/tabwright/tabwright"
	"github.com/tabwright/tabwright/tab"
)

type (
	// SongInfo is the flat metadata record returned to callers.
	SongInfo struct {
		Title        string `json:"title"`
		Artist       string `json:"artist"`
		Album        string `json:"album"`
		Copyright    string `json:"copyright"`
		Subtitle     string `json:"subtitle"`
		Notice       string `json:"notice"`
		Tempo        int    `json:"tempo"`
		TrackCount   int    `json:"track_count"`
		MeasureCount int    `json:"measure_count"`
	}

	TrackInfo struct {
		Index      int    `json:"index"`
		Name       string `json:"name"`
		Strings    int    `json:"strings"`
		Instrument int    `json:"instrument"`
		Percussion bool   `json:"is_percussion"`
	}

	TrackStats struct {
		Name         string `json:"name"`
		StringCount  int    `json:"string_count"`
		MeasureCount int    `json:"measure_count"`
		BeatCount    int    `json:"beat_count"`
		NoteCount    int    `json:"note_count"`
	}

	Statistics struct {
		Title        string       `json:"title"`
		TrackCount   int          `json:"track_count"`
		MeasureCount int          `json:"measure_count"`
		TotalBeats   int          `json:"total_beats"`
		TotalNotes   int          `json:"total_notes"`
		Tracks       []TrackStats `json:"tracks"`
	}

	// NoteRecord is one note annotated with its full position, so a
	// caller can reconstruct context without re-traversing the song.
	NoteRecord struct {
		Measure  int  `json:"measure"`
		Voice    int  `json:"voice"`
		Beat     int  `json:"beat"`
		String   int  `json:"string"`
		Fret     int  `json:"fret"`
		Duration int  `json:"duration"`
		Tied     bool `json:"tied,omitempty"`
		Dead     bool `json:"dead,omitempty"`
		Ghost    bool `json:"ghost,omitempty"`
	}

	// Structure exports the three annotation layers as independent flat
	// lists, each in its own insertion order.
	Structure struct {
		Sections []tabwright.Section     `json:"sections"`
		Repeats  []tabwright.RepeatGroup `json:"repeat_groups"`
		Markers  []tabwright.Marker      `json:"markers"`
	}
)

func (e *Editor) SongInfo() (SongInfo, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return SongInfo{}, err
	}
	return SongInfo{
		Title:        e.song.Title,
		Artist:       e.song.Artist,
		Album:        e.song.Album,
		Copyright:    e.song.Copyright,
		Subtitle:     e.song.Subtitle,
		Notice:       e.song.Notice,
		Tempo:        e.song.Tempo,
		TrackCount:   len(e.song.Tracks),
		MeasureCount: e.song.MeasureCount(),
	}, nil
}

// TrackList returns the non-percussion tracks in index order.
func (e *Editor) TrackList() ([]TrackInfo, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return nil, err
	}
	ret := make([]TrackInfo, 0, len(e.song.Tracks))
	for i, t := range e.song.Tracks {
		if t.Percussion {
			continue
		}
		ret = append(ret, TrackInfo{
			Index:      i,
			Name:       t.Name,
			Strings:    t.StringCount(),
			Instrument: t.Instrument,
		})
	}
	return ret, nil
}

func (e *Editor) Statistics() (Statistics, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return Statistics{}, err
	}
	stats := Statistics{
		Title:        e.song.Title,
		TrackCount:   len(e.song.Tracks),
		MeasureCount: e.song.MeasureCount(),
		Tracks:       make([]TrackStats, 0, len(e.song.Tracks)),
	}
	for _, t := range e.song.Tracks {
		beats, notes := 0, 0
		for _, m := range t.Measures {
			for _, v := range m.Voices {
				beats += len(v.Beats)
				for _, b := range v.Beats {
					notes += len(b.Notes)
				}
			}
		}
		stats.Tracks = append(stats.Tracks, TrackStats{
			Name:         t.Name,
			StringCount:  t.StringCount(),
			MeasureCount: len(t.Measures),
			BeatCount:    beats,
			NoteCount:    notes,
		})
		stats.TotalBeats += beats
		stats.TotalNotes += notes
	}
	return stats, nil
}

// TrackNotes returns every note of the track in document order, each
// annotated with its measure, voice, beat and string position.
func (e *Editor) TrackNotes(index int) ([]NoteRecord, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return nil, err
	}
	track, err := e.song.Track(index)
	if err != nil {
		return nil, err
	}
	var ret []NoteRecord
	for m, measure := range track.Measures {
		for v, voice := range measure.Voices {
			for b, beat := range voice.Beats {
				for _, note := range beat.Notes {
					ret = append(ret, NoteRecord{
						Measure:  m,
						Voice:    v,
						Beat:     b,
						String:   note.String,
						Fret:     note.Fret,
						Duration: beat.Duration,
						Tied:     note.Tied,
						Dead:     note.Dead,
						Ghost:    note.Ghost,
					})
				}
			}
		}
	}
	return ret, nil
}

// Sections returns the section list in insertion order.
func (e *Editor) Sections() ([]tabwright.Section, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return nil, err
	}
	ret := make([]tabwright.Section, len(e.song.Sections))
	for i, s := range e.song.Sections {
		ret[i] = s.Copy()
	}
	return ret, nil
}

// RepeatGroups returns the repeat group list in insertion order.
func (e *Editor) RepeatGroups() ([]tabwright.RepeatGroup, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return nil, err
	}
	ret := make([]tabwright.RepeatGroup, len(e.song.Repeats))
	for i, r := range e.song.Repeats {
		ret[i] = r.Copy()
	}
	return ret, nil
}

// Structure returns all three annotation layers at once. No ordering is
// defined across the lists, only within each.
func (e *Editor) Structure() (Structure, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return Structure{}, err
	}
	ret := Structure{
		Sections: make([]tabwright.Section, len(e.song.Sections)),
		Repeats:  make([]tabwright.RepeatGroup, len(e.song.Repeats)),
		Markers:  make([]tabwright.Marker, len(e.song.Markers)),
	}
	for i, s := range e.song.Sections {
		ret.Sections[i] = s.Copy()
	}
	for i, r := range e.song.Repeats {
		ret.Repeats[i] = r.Copy()
	}
	copy(ret.Markers, e.song.Markers)
	return ret, nil
}

// TrackTab renders the track as ASCII tablature under the editor lock,
// so the renderer sees a consistent document.
func (e *Editor) TrackTab(index int) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return "", err
	}
	return tab.RenderTrack(e.song, index)
}
