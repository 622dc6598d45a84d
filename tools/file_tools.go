package tools

import (
	"encoding/json"
	"fmt"

	"github.com/tabwright/tabwright/codec"
	"github.com/tabwright/tabwright/midiexport"
)

func (r *Registry) registerFileTools() {
	r.register("load_song", "Load a song file (YAML, or JSON with a .json extension).",
		func(args json.RawMessage) Result {
			a, err := decode[struct {
				FilePath string `json:"file_path"`
			}](args)
			if err != nil {
				return failure(err)
			}
			song, err := codec.LoadFile(a.FilePath)
			if err != nil {
				return failure(err)
			}
			if err := r.editor.SetSong(song); err != nil {
				return failure(err)
			}
			return success(fmt.Sprintf("Loaded song file: %s", a.FilePath))
		})

	r.register("save_song", "Save the current song to a file.",
		func(args json.RawMessage) Result {
			a, err := decode[struct {
				FilePath string `json:"file_path"`
			}](args)
			if err != nil {
				return failure(err)
			}
			song, err := r.editor.Song()
			if err != nil {
				return failure(err)
			}
			if err := codec.SaveFile(a.FilePath, &song); err != nil {
				return failure(err)
			}
			return success(fmt.Sprintf("Saved song file: %s", a.FilePath))
		})

	r.register("export_json", "Export the current song to a JSON file.",
		func(args json.RawMessage) Result {
			a, err := decode[struct {
				FilePath string `json:"file_path"`
			}](args)
			if err != nil {
				return failure(err)
			}
			song, err := r.editor.Song()
			if err != nil {
				return failure(err)
			}
			if err := codec.SaveFile(jsonPath(a.FilePath), &song); err != nil {
				return failure(err)
			}
			return success(fmt.Sprintf("Exported to JSON file: %s", jsonPath(a.FilePath)))
		})

	r.register("import_json", "Import a song from a JSON file.",
		func(args json.RawMessage) Result {
			a, err := decode[struct {
				FilePath string `json:"file_path"`
			}](args)
			if err != nil {
				return failure(err)
			}
			song, err := codec.LoadFile(jsonPath(a.FilePath))
			if err != nil {
				return failure(err)
			}
			if err := r.editor.SetSong(song); err != nil {
				return failure(err)
			}
			return success(fmt.Sprintf("Imported from JSON file: %s", jsonPath(a.FilePath)))
		})

	r.register("export_midi", "Export the current song to a standard MIDI file.",
		func(args json.RawMessage) Result {
			a, err := decode[struct {
				FilePath string `json:"file_path"`
			}](args)
			if err != nil {
				return failure(err)
			}
			song, err := r.editor.Song()
			if err != nil {
				return failure(err)
			}
			if err := midiexport.WriteFile(a.FilePath, &song); err != nil {
				return failure(err)
			}
			return success(fmt.Sprintf("Exported to MIDI file: %s", a.FilePath))
		})
}

// jsonPath forces the .json extension so the codec picks the JSON
// format regardless of what the caller named the file.
func jsonPath(path string) string {
	if len(path) > 5 && path[len(path)-5:] == ".json" {
		return path
	}
	return path + ".json"
}
