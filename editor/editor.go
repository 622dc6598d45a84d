// Package editor implements the mutation and query surface over a
// single active tablature Song. One Editor guards one document; every
// operation takes the editor lock for its whole duration, because the
// document invariants (dense indices, measure headers shared across all
// tracks) only hold at whole-document granularity.
//
// Every operation is atomic: arguments are validated in full before the
// first mutation, so a failed call leaves the song exactly as it was.
package editor

import (
	"fmt"
	"sync"

	"github.com/tabwright/tabwright"
)

type Editor struct {
	mu   sync.Mutex
	song *tabwright.Song
}

func New() *Editor {
	return &Editor{}
}

// NewSong replaces the active document with a fresh one: the given
// metadata, one default guitar track, one empty measure and a 120 BPM
// default tempo.
func (e *Editor) NewSong(title, artist string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	song := &tabwright.Song{
		Title:  title,
		Artist: artist,
		Tempo:  120,
	}
	e.song = song
	e.appendTrack("Guitar")
	e.appendMeasure()
}

// SetSong validates the given song and makes a private copy of it the
// active document.
func (e *Editor) SetSong(song tabwright.Song) error {
	if err := song.Validate(); err != nil {
		return fmt.Errorf("%w: %v", tabwright.ErrValidation, err)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	copied := song.Copy()
	e.song = &copied
	return nil
}

// Song returns a deep copy of the active document, for collaborators
// that serialize or export it.
func (e *Editor) Song() (tabwright.Song, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.song == nil {
		return tabwright.Song{}, tabwright.ErrNoActiveSong
	}
	return e.song.Copy(), nil
}

// HasSong reports whether a document is loaded.
func (e *Editor) HasSong() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.song != nil
}

// guard is called with the lock held by every operation that needs an
// active document.
func (e *Editor) guard() error {
	if e.song == nil {
		return tabwright.ErrNoActiveSong
	}
	return nil
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
