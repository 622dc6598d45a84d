package tabwright

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type (
	// Section names a contiguous range of measures ("Verse", "Chorus").
	// Sections are pure annotations: they never affect note data, and
	// ranges of different sections may overlap.
	Section struct {
		Name         string `yaml:"name" json:"name"`
		Text         string `yaml:"text,omitempty" json:"text,omitempty"`
		Color        *RGB   `yaml:"color,omitempty" json:"color,omitempty"`
		StartMeasure int    `yaml:"start" json:"start_measure"`
		EndMeasure   int    `yaml:"end" json:"end_measure"` // inclusive
	}

	RGB struct {
		R uint8 `yaml:"r" json:"r"`
		G uint8 `yaml:"g" json:"g"`
		B uint8 `yaml:"b" json:"b"`
	}

	// RepeatGroup marks a measure range for repeated playback. Like
	// sections, repeat groups are annotations over the measures and are
	// independent of the note data and of each other.
	RepeatGroup struct {
		StartMeasure int        `yaml:"start" json:"start_measure"`
		EndMeasure   int        `yaml:"end" json:"end_measure"` // inclusive
		Kind         RepeatKind `yaml:"kind" json:"kind"`
		Count        int        `yaml:"count" json:"count"`
		Endings      []int      `yaml:"endings,flow,omitempty" json:"endings,omitempty"`
	}

	// Marker is a positional annotation carrying no payload beyond its
	// measure index and kind.
	Marker struct {
		Measure int        `yaml:"measure" json:"measure"`
		Kind    MarkerKind `yaml:"kind" json:"kind"`
	}

	RepeatKind int
	MarkerKind int
)

const (
	RepeatNormal RepeatKind = iota
	RepeatAlternate
	RepeatFirstEnding
	RepeatSecondEnding
)

const (
	MarkerCoda MarkerKind = iota
	MarkerDoubleBar
)

func (k RepeatKind) String() string {
	switch k {
	case RepeatNormal:
		return "normal"
	case RepeatAlternate:
		return "alternate"
	case RepeatFirstEnding:
		return "repeat_1st"
	case RepeatSecondEnding:
		return "repeat_2nd"
	}
	return fmt.Sprintf("RepeatKind(%d)", int(k))
}

// ParseRepeatKind maps the protocol string of a repeat kind back to the
// enum; unknown strings fail with ErrValidation so they are never
// silently stored.
func ParseRepeatKind(s string) (RepeatKind, error) {
	switch s {
	case "normal":
		return RepeatNormal, nil
	case "alternate":
		return RepeatAlternate, nil
	case "repeat_1st":
		return RepeatFirstEnding, nil
	case "repeat_2nd":
		return RepeatSecondEnding, nil
	}
	return 0, fmt.Errorf("%w: unknown repeat kind %q", ErrValidation, s)
}

func (k MarkerKind) String() string {
	switch k {
	case MarkerCoda:
		return "coda"
	case MarkerDoubleBar:
		return "double_bar"
	}
	return fmt.Sprintf("MarkerKind(%d)", int(k))
}

func ParseMarkerKind(s string) (MarkerKind, error) {
	switch s {
	case "coda":
		return MarkerCoda, nil
	case "double_bar":
		return MarkerDoubleBar, nil
	}
	return 0, fmt.Errorf("%w: unknown marker kind %q", ErrValidation, s)
}

func (k RepeatKind) MarshalYAML() (interface{}, error) { return k.String(), nil }

func (k *RepeatKind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseRepeatKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func (k RepeatKind) MarshalJSON() ([]byte, error) { return json.Marshal(k.String()) }

func (k *RepeatKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseRepeatKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func (k MarkerKind) MarshalYAML() (interface{}, error) { return k.String(), nil }

func (k *MarkerKind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseMarkerKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func (k MarkerKind) MarshalJSON() ([]byte, error) { return json.Marshal(k.String()) }

func (k *MarkerKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseMarkerKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Copy makes a deep copy of a Section.
func (s *Section) Copy() Section {
	ret := *s
	if s.Color != nil {
		c := *s.Color
		ret.Color = &c
	}
	return ret
}

// Copy makes a deep copy of a RepeatGroup.
func (r *RepeatGroup) Copy() RepeatGroup {
	ret := *r
	ret.Endings = append([]int(nil), r.Endings...)
	return ret
}
