package tools

import (
	"encoding/json"
	"fmt"

	"github.com/tabwright/tabwright/editor"
)

func (r *Registry) registerTrackTools() {
	r.register("add_track", "Append a track with standard 6-string tuning; returns its index.",
		func(args json.RawMessage) Result {
			a, err := decode[struct {
				Name string `json:"name"`
			}](args)
			if err != nil {
				return failure(err)
			}
			index, err := r.editor.AddTrack(a.Name)
			if err != nil {
				return failure(err)
			}
			ret := success(fmt.Sprintf("Added track: %s", a.Name))
			ret.TrackIndex = &index
			return ret
		})

	r.register("remove_track", "Remove a track; following tracks shift down by one.",
		func(args json.RawMessage) Result {
			a, err := decode[struct {
				TrackIndex int `json:"track_index"`
			}](args)
			if err != nil {
				return failure(err)
			}
			if err := r.editor.RemoveTrack(a.TrackIndex); err != nil {
				return failure(err)
			}
			return success(fmt.Sprintf("Removed track %d", a.TrackIndex))
		})

	r.register("set_track_properties", "Set name, instrument, volume or pan of a track.",
		func(args json.RawMessage) Result {
			a, err := decode[struct {
				TrackIndex int     `json:"track_index"`
				Name       *string `json:"name"`
				Instrument *int    `json:"instrument"`
				Volume     *int    `json:"volume"`
				Pan        *int    `json:"pan"`
			}](args)
			if err != nil {
				return failure(err)
			}
			props := editor.TrackProperties{Name: a.Name, Instrument: a.Instrument, Volume: a.Volume, Pan: a.Pan}
			if err := r.editor.SetTrackProperties(a.TrackIndex, props); err != nil {
				return failure(err)
			}
			return success(fmt.Sprintf("Track %d properties updated", a.TrackIndex))
		})

	r.register("transpose_track", "Transpose every note of a track by a number of semitones.",
		func(args json.RawMessage) Result {
			a, err := decode[struct {
				TrackIndex int `json:"track_index"`
				Semitones  int `json:"semitones"`
			}](args)
			if err != nil {
				return failure(err)
			}
			if err := r.editor.Transpose(a.TrackIndex, a.Semitones); err != nil {
				return failure(err)
			}
			direction := "up"
			semitones := a.Semitones
			if semitones < 0 {
				direction = "down"
				semitones = -semitones
			}
			return success(fmt.Sprintf("Transposed track %d %s by %d semitones", a.TrackIndex, direction, semitones))
		})

	r.register("get_tracks", "List the tracks of the current song.",
		func(args json.RawMessage) Result {
			tracks, err := r.editor.TrackList()
			if err != nil {
				return failure(err)
			}
			return successData(tracks)
		})

	r.register("get_track_notes", "Get every note of a track with its full position.",
		func(args json.RawMessage) Result {
			a, err := decode[struct {
				TrackIndex int `json:"track_index"`
			}](args)
			if err != nil {
				return failure(err)
			}
			notes, err := r.editor.TrackNotes(a.TrackIndex)
			if err != nil {
				return failure(err)
			}
			return successData(notes)
		})

	r.register("get_track_tab", "Render a track as ASCII tablature.",
		func(args json.RawMessage) Result {
			a, err := decode[struct {
				TrackIndex int `json:"track_index"`
			}](args)
			if err != nil {
				return failure(err)
			}
			rendered, err := r.editor.TrackTab(a.TrackIndex)
			if err != nil {
				return failure(err)
			}
			return successData(rendered)
		})
}
