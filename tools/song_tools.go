package tools

import (
	"encoding/json"
	"fmt"

	"github.com/tabwright/tabwright/editor"
)

func editorSongProps(title, artist, album *string, tempo *int) editor.SongProperties {
	return editor.SongProperties{Title: title, Artist: artist, Album: album, Tempo: tempo}
}

func (r *Registry) registerSongTools() {
	r.register("new_song", "Create a new song with one default guitar track and one measure.",
		func(args json.RawMessage) Result {
			a, err := decode[struct {
				Title  string `json:"title"`
				Artist string `json:"artist"`
			}](args)
			if err != nil {
				return failure(err)
			}
			if a.Title == "" {
				a.Title = "New Song"
			}
			r.editor.NewSong(a.Title, a.Artist)
			return success(fmt.Sprintf("Created new song: %s", a.Title))
		})

	r.register("set_song_properties", "Set title, artist, album or default tempo of the song.",
		func(args json.RawMessage) Result {
			a, err := decode[struct {
				Title  *string `json:"title"`
				Artist *string `json:"artist"`
				Album  *string `json:"album"`
				Tempo  *int    `json:"tempo"`
			}](args)
			if err != nil {
				return failure(err)
			}
			if err := r.editor.SetSongProperties(editorSongProps(a.Title, a.Artist, a.Album, a.Tempo)); err != nil {
				return failure(err)
			}
			return success("Song properties updated")
		})

	r.register("get_song_info", "Get metadata and counts of the current song.",
		func(args json.RawMessage) Result {
			info, err := r.editor.SongInfo()
			if err != nil {
				return failure(err)
			}
			return successData(info)
		})

	r.register("get_song_statistics", "Get track, measure, beat and note counts.",
		func(args json.RawMessage) Result {
			stats, err := r.editor.Statistics()
			if err != nil {
				return failure(err)
			}
			return successData(stats)
		})

	r.register("set_lyrics", "Set the lyrics of the current song.",
		func(args json.RawMessage) Result {
			a, err := decode[struct {
				Lyrics string `json:"lyrics"`
			}](args)
			if err != nil {
				return failure(err)
			}
			if err := r.editor.SetLyrics(a.Lyrics); err != nil {
				return failure(err)
			}
			return success("Lyrics updated")
		})

	r.register("get_lyrics", "Get the lyrics of the current song.",
		func(args json.RawMessage) Result {
			lyrics, err := r.editor.Lyrics()
			if err != nil {
				return failure(err)
			}
			return successData(lyrics)
		})

	r.register("set_page_setup", "Merge named layout fields into the page setup.",
		func(args json.RawMessage) Result {
			a, err := decode[struct {
				PageSetup map[string]string `json:"page_setup"`
			}](args)
			if err != nil {
				return failure(err)
			}
			if err := r.editor.SetPageSetup(a.PageSetup); err != nil {
				return failure(err)
			}
			return success("Page setup updated")
		})

	r.register("get_page_setup", "Get the page setup fields of the current song.",
		func(args json.RawMessage) Result {
			fields, err := r.editor.PageSetup()
			if err != nil {
				return failure(err)
			}
			return successData(fields)
		})

	r.register("set_advanced_metadata", "Merge named text fields into the song metadata.",
		func(args json.RawMessage) Result {
			a, err := decode[struct {
				Metadata map[string]string `json:"metadata"`
			}](args)
			if err != nil {
				return failure(err)
			}
			if err := r.editor.SetAdvancedMetadata(a.Metadata); err != nil {
				return failure(err)
			}
			return success("Advanced metadata updated")
		})

	r.register("get_advanced_metadata", "Get all named text fields of the song.",
		func(args json.RawMessage) Result {
			fields, err := r.editor.AdvancedMetadata()
			if err != nil {
				return failure(err)
			}
			return successData(fields)
		})
}
