package editor

import (
	"fmt"

	"github.com/tabwright/tabwright"
)

// SongProperties carries the optional fields of SetSongProperties; nil
// fields keep their current value.
type SongProperties struct {
	Title  *string
	Artist *string
	Album  *string
	Tempo  *int
}

// SetSongProperties applies only the supplied fields. Tempo sets the
// song default, not a per-measure tempo change.
func (e *Editor) SetSongProperties(props SongProperties) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return err
	}
	if props.Tempo != nil && *props.Tempo < 1 {
		return fmt.Errorf("%w: tempo %d BPM", tabwright.ErrValidation, *props.Tempo)
	}
	if props.Title != nil {
		e.song.Title = *props.Title
	}
	if props.Artist != nil {
		e.song.Artist = *props.Artist
	}
	if props.Album != nil {
		e.song.Album = *props.Album
	}
	if props.Tempo != nil {
		e.song.Tempo = *props.Tempo
	}
	return nil
}

func (e *Editor) SetLyrics(lyrics string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return err
	}
	e.song.Lyrics = lyrics
	return nil
}

func (e *Editor) Lyrics() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return "", err
	}
	return e.song.Lyrics, nil
}

// SetPageSetup merges the given layout fields into the page setup.
// Only the keys present in the call are touched; keys set earlier and
// omitted now keep their values.
func (e *Editor) SetPageSetup(fields map[string]string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return err
	}
	if e.song.PageSetup == nil {
		e.song.PageSetup = make(map[string]string, len(fields))
	}
	for k, v := range fields {
		e.song.PageSetup[k] = v
	}
	return nil
}

func (e *Editor) PageSetup() (map[string]string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return nil, err
	}
	ret := make(map[string]string, len(e.song.PageSetup))
	for k, v := range e.song.PageSetup {
		ret[k] = v
	}
	return ret, nil
}

// Named metadata keys that live as fixed fields on the Song rather
// than in the free-form metadata map.
const (
	metaSubtitle  = "subtitle"
	metaNotice    = "notice"
	metaCopyright = "copyright"
)

// SetAdvancedMetadata merges the given text fields into the song
// metadata. The subtitle, notice and copyright keys address the fixed
// song fields of the same name; everything else goes into the free-form
// map. Omitted keys are left alone.
func (e *Editor) SetAdvancedMetadata(fields map[string]string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return err
	}
	for k, v := range fields {
		switch k {
		case metaSubtitle:
			e.song.Subtitle = v
		case metaNotice:
			e.song.Notice = v
		case metaCopyright:
			e.song.Copyright = v
		default:
			if e.song.Metadata == nil {
				e.song.Metadata = make(map[string]string)
			}
			e.song.Metadata[k] = v
		}
	}
	return nil
}

// AdvancedMetadata returns all named text fields of the song, the fixed
// ones included.
func (e *Editor) AdvancedMetadata() (map[string]string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard(); err != nil {
		return nil, err
	}
	ret := make(map[string]string, len(e.song.Metadata)+3)
	for k, v := range e.song.Metadata {
		ret[k] = v
	}
	ret[metaSubtitle] = e.song.Subtitle
	ret[metaNotice] = e.song.Notice
	ret[metaCopyright] = e.song.Copyright
	return ret, nil
}
