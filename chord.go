package tabwright

type (
	// Chord is a chord diagram attached to a single beat. The harmonic
	// fields (root, type, extension and the alteration flags) are stored
	// as the caller supplied them; only the shape fields (FirstFret,
	// Strings, Barres, Fingerings) are bounds-checked against the track.
	Chord struct {
		Name      string `yaml:"name" json:"name"`
		Root      string `yaml:"root,omitempty" json:"root,omitempty"`
		Type      string `yaml:"type,omitempty" json:"type,omitempty"`
		Extension string `yaml:"extension,omitempty" json:"extension,omitempty"`
		Bass      string `yaml:"bass,omitempty" json:"bass,omitempty"`
		Tonality  string `yaml:"tonality,omitempty" json:"tonality,omitempty"`
		Fifth     string `yaml:"fifth,omitempty" json:"fifth,omitempty"`
		Ninth     string `yaml:"ninth,omitempty" json:"ninth,omitempty"`
		Eleventh  string `yaml:"eleventh,omitempty" json:"eleventh,omitempty"`

		FirstFret int `yaml:"firstfret,omitempty" json:"first_fret,omitempty"`

		// Strings maps string number (index 0 = string 1) to fret; -1
		// means the string is not played.
		Strings    []int       `yaml:"strings,flow,omitempty" json:"strings,omitempty"`
		Barres     []Barre     `yaml:"barres,omitempty" json:"barres,omitempty"`
		Fingerings []Fingering `yaml:"fingerings,omitempty" json:"fingerings,omitempty"`
	}

	Barre struct {
		Fret        int `yaml:"fret" json:"fret"`
		StartString int `yaml:"startstring" json:"start_string"`
		EndString   int `yaml:"endstring" json:"end_string"`
	}

	Fingering struct {
		Finger int `yaml:"finger" json:"finger"`
		String int `yaml:"string" json:"string"`
	}
)

// Copy makes a deep copy of a Chord.
func (c *Chord) Copy() Chord {
	ret := *c
	ret.Strings = append([]int(nil), c.Strings...)
	ret.Barres = append([]Barre(nil), c.Barres...)
	ret.Fingerings = append([]Fingering(nil), c.Fingerings...)
	return ret
}
