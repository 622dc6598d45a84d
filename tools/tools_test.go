package tools

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabwright/tabwright"
	"github.com/tabwright/tabwright/editor"
)

func newRegistry() *Registry {
	return NewRegistry(editor.New())
}

func invoke(t *testing.T, r *Registry, tool, args string) Result {
	t.Helper()
	var raw json.RawMessage
	if args != "" {
		raw = json.RawMessage(args)
	}
	return r.Invoke(tool, raw)
}

func invokeOK(t *testing.T, r *Registry, tool, args string) Result {
	t.Helper()
	result := invoke(t, r, tool, args)
	require.Equal(t, "success", result.Status, "%s: %s", tool, result.Message)
	return result
}

func TestUnknownTool(t *testing.T) {
	result := invoke(t, newRegistry(), "frobnicate", "")
	assert.Equal(t, "error", result.Status)
	assert.Equal(t, "validation_error", result.Code)
	assert.Contains(t, result.Message, "frobnicate")
}

func TestToolsAreListedInRegistrationOrder(t *testing.T) {
	list := newRegistry().Tools()
	require.NotEmpty(t, list)
	assert.Equal(t, "new_song", list[0].Name)
	names := make(map[string]bool, len(list))
	for _, tool := range list {
		assert.NotEmpty(t, tool.Description, "tool %s has no description", tool.Name)
		assert.False(t, names[tool.Name], "tool %s registered twice", tool.Name)
		names[tool.Name] = true
	}
	for _, name := range []string{
		"add_track", "add_note", "add_chord", "get_track_tab",
		"add_section", "add_repeat_group", "export_midi", "save_song",
	} {
		assert.True(t, names[name], "tool %s not registered", name)
	}
}

func TestErrorCodes(t *testing.T) {
	r := newRegistry()
	result := invoke(t, r, "get_song_info", "")
	assert.Equal(t, "no_active_song", result.Code)

	invokeOK(t, r, "new_song", `{"title": "Codes"}`)
	for _, tt := range []struct {
		tool string
		args string
		code string
	}{
		{"remove_track", `{"track_index": 5}`, "index_out_of_range"},
		{"add_note", `{"track_index": 0, "measure_index": 0, "string": 9, "fret": 0}`, "invalid_string"},
		{"add_note", `{"track_index": 0, "measure_index": 0, "string": 1, "fret": -2}`, "validation_error"},
		{"add_chord", `{"track_index": 0, "measure_index": 0, "beat_index": 3, "chord_data": {"name": "C"}}`, "beat_not_found"},
		{"add_section", `{"start_measure": 1, "end_measure": 0, "name": "X"}`, "validation_error"},
		{"set_tempo", `{"measure_index": 9, "tempo": 100}`, "index_out_of_range"},
		{"add_note", `{"track_index": "zero"}`, "validation_error"},
	} {
		result := invoke(t, r, tt.tool, tt.args)
		assert.Equal(t, "error", result.Status, "%s(%s)", tt.tool, tt.args)
		assert.Equal(t, tt.code, result.Code, "%s(%s): %s", tt.tool, tt.args, result.Message)
	}
}

func TestSongWorkflow(t *testing.T) {
	r := newRegistry()
	invokeOK(t, r, "new_song", `{"title": "Workflow", "artist": "Tester"}`)

	result := invokeOK(t, r, "add_track", `{"name": "Bass"}`)
	require.NotNil(t, result.TrackIndex)
	assert.Equal(t, 1, *result.TrackIndex)

	result = invokeOK(t, r, "add_measure", "")
	require.NotNil(t, result.MeasureIndex)
	assert.Equal(t, 1, *result.MeasureIndex)

	invokeOK(t, r, "add_note", `{"track_index": 0, "measure_index": 0, "string": 3, "fret": 5}`)
	invokeOK(t, r, "add_note", `{"track_index": 0, "measure_index": 0, "string": 3, "fret": 7}`)
	invokeOK(t, r, "set_time_signature", `{"measure_index": 1, "numerator": 3, "denominator": 4}`)
	invokeOK(t, r, "set_tempo", `{"measure_index": 1, "tempo": 90}`)
	invokeOK(t, r, "add_section", `{"start_measure": 0, "end_measure": 1, "name": "Intro"}`)
	invokeOK(t, r, "add_repeat_group", `{"start_measure": 0, "end_measure": 1}`)
	invokeOK(t, r, "add_coda", `{"measure_index": 1}`)

	info := invokeOK(t, r, "get_song_info", "")
	song, ok := info.Data.(editor.SongInfo)
	require.True(t, ok, "get_song_info data: %#v", info.Data)
	assert.Equal(t, "Workflow", song.Title)
	assert.Equal(t, 2, song.TrackCount)
	assert.Equal(t, 2, song.MeasureCount)

	notes := invokeOK(t, r, "get_track_notes", `{"track_index": 0}`)
	records, ok := notes.Data.([]editor.NoteRecord)
	require.True(t, ok, "get_track_notes data: %#v", notes.Data)
	require.Len(t, records, 1, "the second add on string 3 should replace")
	assert.Equal(t, 7, records[0].Fret)

	structure := invokeOK(t, r, "get_song_structure", "")
	layers, ok := structure.Data.(editor.Structure)
	require.True(t, ok, "get_song_structure data: %#v", structure.Data)
	assert.Len(t, layers.Sections, 1)
	assert.Len(t, layers.Repeats, 1)
	assert.Equal(t, 2, layers.Repeats[0].Count, "repeat count should default to 2")
	assert.Len(t, layers.Markers, 1)

	tab := invokeOK(t, r, "get_track_tab", `{"track_index": 0}`)
	rendered, ok := tab.Data.(string)
	require.True(t, ok)
	assert.Contains(t, rendered, "Track: Guitar")
	assert.Contains(t, rendered, "7--")
}

func TestChordTools(t *testing.T) {
	r := newRegistry()
	invokeOK(t, r, "new_song", "")
	invokeOK(t, r, "add_note", `{"track_index": 0, "measure_index": 0, "string": 5, "fret": 3}`)
	invokeOK(t, r, "add_note", `{"track_index": 0, "measure_index": 0, "string": 5, "fret": 3, "beat_index": 1}`)
	invokeOK(t, r, "add_chord", `{"track_index": 0, "measure_index": 0, "beat_index": 0, "chord_data": {"name": "C", "strings": [0, 1, 0, 2, 3, -1]}}`)

	result := invokeOK(t, r, "get_chord", `{"track_index": 0, "measure_index": 0, "beat_index": 0}`)
	chord, ok := result.Data.(*tabwright.Chord)
	require.True(t, ok, "get_chord data: %#v", result.Data)
	assert.Equal(t, "C", chord.Name)
	assert.Equal(t, []int{0, 1, 0, 2, 3, -1}, chord.Strings)

	// A beat without a chord answers with an empty mapping, not an error.
	result = invokeOK(t, r, "get_chord", `{"track_index": 0, "measure_index": 0, "beat_index": 1}`)
	assert.Equal(t, map[string]any{}, result.Data)

	result = invoke(t, r, "get_chord", `{"track_index": 0, "measure_index": 0, "beat_index": 9}`)
	assert.Equal(t, "beat_not_found", result.Code)
}

func TestFileTools(t *testing.T) {
	r := newRegistry()
	invokeOK(t, r, "new_song", `{"title": "Disk"}`)
	invokeOK(t, r, "add_note", `{"track_index": 0, "measure_index": 0, "string": 1, "fret": 12}`)

	dir := t.TempDir()
	songFile := filepath.Join(dir, "song.twsong")
	invokeOK(t, r, "save_song", `{"file_path": "`+songFile+`"}`)

	other := newRegistry()
	invokeOK(t, other, "load_song", `{"file_path": "`+songFile+`"}`)
	info := invokeOK(t, other, "get_song_info", "")
	assert.Equal(t, "Disk", info.Data.(editor.SongInfo).Title)

	jsonFile := filepath.Join(dir, "interchange")
	result := invokeOK(t, r, "export_json", `{"file_path": "`+jsonFile+`"}`)
	assert.True(t, strings.HasSuffix(result.Message, ".json"), "export should force the .json extension: %s", result.Message)

	third := newRegistry()
	invokeOK(t, third, "import_json", `{"file_path": "`+jsonFile+`.json"}`)
	notes := invokeOK(t, third, "get_track_notes", `{"track_index": 0}`)
	records := notes.Data.([]editor.NoteRecord)
	require.Len(t, records, 1)
	assert.Equal(t, 12, records[0].Fret)

	midiFile := filepath.Join(dir, "song.mid")
	invokeOK(t, r, "export_midi", `{"file_path": "`+midiFile+`"}`)

	result = invoke(t, r, "load_song", `{"file_path": "`+filepath.Join(dir, "missing.twsong")+`"}`)
	assert.Equal(t, "error", result.Status)
}

func TestMetadataTools(t *testing.T) {
	r := newRegistry()
	invokeOK(t, r, "new_song", "")
	invokeOK(t, r, "set_song_properties", `{"artist": "Someone", "tempo": 140}`)
	invokeOK(t, r, "set_lyrics", `{"lyrics": "hey"}`)
	invokeOK(t, r, "set_page_setup", `{"page_setup": {"width": "210"}}`)
	invokeOK(t, r, "set_advanced_metadata", `{"metadata": {"subtitle": "Demo"}}`)

	info := invokeOK(t, r, "get_song_info", "").Data.(editor.SongInfo)
	assert.Equal(t, "Someone", info.Artist)
	assert.Equal(t, 140, info.Tempo)
	assert.Equal(t, "Demo", info.Subtitle)

	lyrics := invokeOK(t, r, "get_lyrics", "")
	assert.Equal(t, "hey", lyrics.Data.(string))

	setup := invokeOK(t, r, "get_page_setup", "").Data.(map[string]string)
	assert.Equal(t, "210", setup["width"])

	meta := invokeOK(t, r, "get_advanced_metadata", "").Data.(map[string]string)
	assert.Equal(t, "Demo", meta["subtitle"])
}
