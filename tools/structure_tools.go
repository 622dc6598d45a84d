package tools

import (
	"encoding/json"
	"fmt"

	"github.com/tabwright/tabwright"
)

func (r *Registry) registerStructureTools() {
	r.register("add_section", "Add a named section over a measure range.",
		func(args json.RawMessage) Result {
			a, err := decode[struct {
				StartMeasure int       `json:"start_measure"`
				EndMeasure   int       `json:"end_measure"`
				Name         string    `json:"name"`
				Text         string    `json:"text"`
				Color        *[3]uint8 `json:"color"`
			}](args)
			if err != nil {
				return failure(err)
			}
			var color *tabwright.RGB
			if a.Color != nil {
				color = &tabwright.RGB{R: a.Color[0], G: a.Color[1], B: a.Color[2]}
			}
			if err := r.editor.AddSection(a.StartMeasure, a.EndMeasure, a.Name, a.Text, color); err != nil {
				return failure(err)
			}
			return success(fmt.Sprintf("Added section %q from measure %d to %d", a.Name, a.StartMeasure, a.EndMeasure))
		})

	r.register("get_sections", "List the sections of the song.",
		func(args json.RawMessage) Result {
			sections, err := r.editor.Sections()
			if err != nil {
				return failure(err)
			}
			return successData(sections)
		})

	r.register("add_repeat_group", "Add a repeat group over a measure range.",
		func(args json.RawMessage) Result {
			a, err := decode[struct {
				StartMeasure int    `json:"start_measure"`
				EndMeasure   int    `json:"end_measure"`
				RepeatType   string `json:"repeat_type"`
				RepeatCount  *int   `json:"repeat_count"`
				Endings      []int  `json:"endings"`
			}](args)
			if err != nil {
				return failure(err)
			}
			if a.RepeatType == "" {
				a.RepeatType = "normal"
			}
			count := 2
			if a.RepeatCount != nil {
				count = *a.RepeatCount
			}
			if err := r.editor.AddRepeatGroup(a.StartMeasure, a.EndMeasure, a.RepeatType, count, a.Endings); err != nil {
				return failure(err)
			}
			return success(fmt.Sprintf("Added repeat group from measure %d to %d", a.StartMeasure, a.EndMeasure))
		})

	r.register("get_repeat_groups", "List the repeat groups of the song.",
		func(args json.RawMessage) Result {
			repeats, err := r.editor.RepeatGroups()
			if err != nil {
				return failure(err)
			}
			return successData(repeats)
		})

	r.register("add_coda", "Add a coda marker on a measure.",
		func(args json.RawMessage) Result {
			a, err := decode[struct {
				MeasureIndex int `json:"measure_index"`
			}](args)
			if err != nil {
				return failure(err)
			}
			if err := r.editor.AddCoda(a.MeasureIndex); err != nil {
				return failure(err)
			}
			return success(fmt.Sprintf("Added coda at measure %d", a.MeasureIndex))
		})

	r.register("add_double_bar", "Add a double bar line marker on a measure.",
		func(args json.RawMessage) Result {
			a, err := decode[struct {
				MeasureIndex int `json:"measure_index"`
			}](args)
			if err != nil {
				return failure(err)
			}
			if err := r.editor.AddDoubleBar(a.MeasureIndex); err != nil {
				return failure(err)
			}
			return success(fmt.Sprintf("Added double bar at measure %d", a.MeasureIndex))
		})

	r.register("get_song_structure", "Get sections, repeat groups and markers as flat lists.",
		func(args json.RawMessage) Result {
			structure, err := r.editor.Structure()
			if err != nil {
				return failure(err)
			}
			return successData(structure)
		})
}
