package tools

import (
	"encoding/json"
	"fmt"

	"github.com/tabwright/tabwright"
)

func (r *Registry) registerNoteTools() {
	r.register("add_measure", "Append an empty measure to every track; returns its index.",
		func(args json.RawMessage) Result {
			index, err := r.editor.AddMeasure()
			if err != nil {
				return failure(err)
			}
			ret := success("Added measure")
			ret.MeasureIndex = &index
			return ret
		})

	r.register("set_time_signature", "Set the shared time signature of a measure.",
		func(args json.RawMessage) Result {
			a, err := decode[struct {
				MeasureIndex int `json:"measure_index"`
				Numerator    int `json:"numerator"`
				Denominator  int `json:"denominator"`
			}](args)
			if err != nil {
				return failure(err)
			}
			if err := r.editor.SetTimeSignature(a.MeasureIndex, a.Numerator, a.Denominator); err != nil {
				return failure(err)
			}
			return success(fmt.Sprintf("Set time signature to %d/%d", a.Numerator, a.Denominator))
		})

	r.register("set_key_signature", "Set the shared key signature of a measure (-7..7).",
		func(args json.RawMessage) Result {
			a, err := decode[struct {
				MeasureIndex int `json:"measure_index"`
				Key          int `json:"key"`
			}](args)
			if err != nil {
				return failure(err)
			}
			if err := r.editor.SetKeySignature(a.MeasureIndex, a.Key); err != nil {
				return failure(err)
			}
			return success(fmt.Sprintf("Set key signature to %d", a.Key))
		})

	r.register("set_tempo", "Set a tempo change on a measure.",
		func(args json.RawMessage) Result {
			a, err := decode[struct {
				MeasureIndex int `json:"measure_index"`
				Tempo        int `json:"tempo"`
			}](args)
			if err != nil {
				return failure(err)
			}
			if err := r.editor.SetTempo(a.MeasureIndex, a.Tempo); err != nil {
				return failure(err)
			}
			return success(fmt.Sprintf("Set tempo to %d BPM", a.Tempo))
		})

	r.register("add_note", "Add a note at (track, measure, string, fret); creates the beat on demand.",
		func(args json.RawMessage) Result {
			a, err := decode[struct {
				TrackIndex   int  `json:"track_index"`
				MeasureIndex int  `json:"measure_index"`
				String       int  `json:"string"`
				Fret         int  `json:"fret"`
				Duration     *int `json:"duration"`
				VoiceIndex   int  `json:"voice_index"`
				BeatIndex    int  `json:"beat_index"`
			}](args)
			if err != nil {
				return failure(err)
			}
			duration := tabwright.Quarter
			if a.Duration != nil {
				duration = *a.Duration
			}
			if err := r.editor.AddNote(a.TrackIndex, a.MeasureIndex, a.String, a.Fret, duration, a.VoiceIndex, a.BeatIndex); err != nil {
				return failure(err)
			}
			return success(fmt.Sprintf("Added note: string %d, fret %d to measure %d", a.String, a.Fret, a.MeasureIndex))
		})

	r.register("add_chord", "Attach a chord to an existing beat.",
		func(args json.RawMessage) Result {
			a, err := decode[struct {
				TrackIndex   int             `json:"track_index"`
				MeasureIndex int             `json:"measure_index"`
				BeatIndex    int             `json:"beat_index"`
				ChordData    tabwright.Chord `json:"chord_data"`
			}](args)
			if err != nil {
				return failure(err)
			}
			if err := r.editor.AddChord(a.TrackIndex, a.MeasureIndex, a.BeatIndex, a.ChordData); err != nil {
				return failure(err)
			}
			return success("Chord added")
		})

	r.register("get_chord", "Get the chord on a beat, if any.",
		func(args json.RawMessage) Result {
			a, err := decode[struct {
				TrackIndex   int `json:"track_index"`
				MeasureIndex int `json:"measure_index"`
				BeatIndex    int `json:"beat_index"`
			}](args)
			if err != nil {
				return failure(err)
			}
			chord, err := r.editor.Chord(a.TrackIndex, a.MeasureIndex, a.BeatIndex)
			if err != nil {
				return failure(err)
			}
			if chord == nil {
				return successData(map[string]any{})
			}
			return successData(chord)
		})
}
