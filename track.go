package tabwright

type (
	// Track is one instrument line of the song. It stores only its
	// per-measure note data; all header state (time signature, key,
	// tempo) lives in the Song's shared measure headers. Tuning holds
	// the MIDI pitch of each string, index 0 being string 1, the
	// highest-sounding string, following tablature convention.
	Track struct {
		Name       string `yaml:"name" json:"name"`
		Instrument int    `yaml:"instrument" json:"instrument"` // General MIDI program 0..127
		Volume     int    `yaml:"volume" json:"volume"`         // 0..127
		Pan        int    `yaml:"pan" json:"pan"`               // 0..127, 64 = center
		Percussion bool   `yaml:"percussion,omitempty" json:"percussion,omitempty"`

		Tuning []int `yaml:"tuning,flow" json:"tuning"`

		Measures []TrackMeasure `yaml:"measures" json:"measures"`
	}

	// TrackMeasure is one track's slot for a measure: a list of voices,
	// each an independent layer of beats. Voice 0 is the default voice;
	// further voices are created on demand.
	TrackMeasure struct {
		Voices []Voice `yaml:"voices" json:"voices"`
	}

	Voice struct {
		Beats []Beat `yaml:"beats" json:"beats"`
	}

	// Beat is a timed slot holding the notes struck together and their
	// shared duration. A beat with no notes is a rest but still occupies
	// its column in time and in the rendered tab.
	Beat struct {
		Duration int    `yaml:"duration" json:"duration"` // 1=whole .. 64=sixty-fourth
		Notes    []Note `yaml:"notes" json:"notes"`
		Chord    *Chord `yaml:"chord,omitempty" json:"chord,omitempty"`
	}

	// Note is a single (string, fret) pair. The effect flags are carried
	// through serialization and queries but not interpreted by the
	// editing core.
	Note struct {
		String int  `yaml:"string" json:"string"` // 1-based, <= track string count
		Fret   int  `yaml:"fret" json:"fret"`     // 0 = open string
		Tied   bool `yaml:"tied,omitempty" json:"tied,omitempty"`
		Dead   bool `yaml:"dead,omitempty" json:"dead,omitempty"`
		Ghost  bool `yaml:"ghost,omitempty" json:"ghost,omitempty"`
	}
)

// Standard 6-string guitar tuning, string 1 (high E) first.
var StandardTuning = []int{64, 59, 55, 50, 45, 40}

const (
	DefaultInstrument = 24 // acoustic guitar, nylon strings
	DefaultVolume     = 100
	DefaultPan        = 64
)

// StringCount returns the number of strings on the track.
func (t *Track) StringCount() int {
	return len(t.Tuning)
}

// StringPitch returns the open-string MIDI pitch of the given 1-based
// string number, or false if the track has no such string.
func (t *Track) StringPitch(string_ int) (int, bool) {
	if string_ < 1 || string_ > len(t.Tuning) {
		return 0, false
	}
	return t.Tuning[string_-1], true
}

// Note returns the note on the given string of the beat, or nil.
func (b *Beat) Note(string_ int) *Note {
	for i := range b.Notes {
		if b.Notes[i].String == string_ {
			return &b.Notes[i]
		}
	}
	return nil
}

// Copy makes a deep copy of a Track.
func (t *Track) Copy() Track {
	ret := *t
	ret.Tuning = append([]int(nil), t.Tuning...)
	if t.Measures != nil {
		ret.Measures = make([]TrackMeasure, len(t.Measures))
		for i, m := range t.Measures {
			ret.Measures[i] = m.Copy()
		}
	}
	return ret
}

// Copy makes a deep copy of a TrackMeasure.
func (m *TrackMeasure) Copy() TrackMeasure {
	if m.Voices == nil {
		return TrackMeasure{}
	}
	voices := make([]Voice, len(m.Voices))
	for i, v := range m.Voices {
		voices[i] = v.Copy()
	}
	return TrackMeasure{Voices: voices}
}

// Copy makes a deep copy of a Voice.
func (v *Voice) Copy() Voice {
	if v.Beats == nil {
		return Voice{}
	}
	beats := make([]Beat, len(v.Beats))
	for i, b := range v.Beats {
		beats[i] = b.Copy()
	}
	return Voice{Beats: beats}
}

// Copy makes a deep copy of a Beat.
func (b *Beat) Copy() Beat {
	ret := *b
	ret.Notes = append([]Note(nil), b.Notes...)
	if b.Chord != nil {
		c := b.Chord.Copy()
		ret.Chord = &c
	}
	return ret
}
