// Package codec persists the song document: YAML for the native song
// file format and JSON for interchange with other systems. Both
// directions carry the complete graph, annotation layers included, so a
// song survives a round trip field for field.
package codec

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tabwright/tabwright"
)

// EncodeYAML writes the song as YAML.
func EncodeYAML(w io.Writer, song *tabwright.Song) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(song); err != nil {
		return fmt.Errorf("could not encode song: %w", err)
	}
	return nil
}

// DecodeYAML reads a song from YAML and validates it.
func DecodeYAML(r io.Reader) (tabwright.Song, error) {
	var song tabwright.Song
	if err := yaml.NewDecoder(r).Decode(&song); err != nil {
		return tabwright.Song{}, fmt.Errorf("%w: could not decode song: %v", tabwright.ErrValidation, err)
	}
	if err := song.Validate(); err != nil {
		return tabwright.Song{}, fmt.Errorf("%w: %v", tabwright.ErrValidation, err)
	}
	return song, nil
}

// EncodeJSON writes the song as indented JSON.
func EncodeJSON(w io.Writer, song *tabwright.Song) error {
	out, err := json.MarshalIndent(song, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal song: %w", err)
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("could not write song: %w", err)
	}
	return nil
}

// DecodeJSON reads a song from JSON and validates it.
func DecodeJSON(r io.Reader) (tabwright.Song, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return tabwright.Song{}, fmt.Errorf("could not read song: %w", err)
	}
	var song tabwright.Song
	if err := json.Unmarshal(data, &song); err != nil {
		return tabwright.Song{}, fmt.Errorf("%w: could not unmarshal song: %v", tabwright.ErrValidation, err)
	}
	if err := song.Validate(); err != nil {
		return tabwright.Song{}, fmt.Errorf("%w: %v", tabwright.ErrValidation, err)
	}
	return song, nil
}

// SaveFile writes the song to path, as JSON if the path ends in .json,
// as YAML otherwise.
func SaveFile(path string, song *tabwright.Song) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create song file: %w", err)
	}
	defer file.Close()
	if isJSONPath(path) {
		return EncodeJSON(file, song)
	}
	return EncodeYAML(file, song)
}

// LoadFile reads the song at path, as JSON if the path ends in .json,
// as YAML otherwise.
func LoadFile(path string) (tabwright.Song, error) {
	file, err := os.Open(path)
	if err != nil {
		return tabwright.Song{}, fmt.Errorf("could not open song file: %w", err)
	}
	defer file.Close()
	if isJSONPath(path) {
		return DecodeJSON(file)
	}
	return DecodeYAML(file)
}

func isJSONPath(path string) bool {
	return len(path) > 5 && path[len(path)-5:] == ".json"
}
