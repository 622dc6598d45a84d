package editor

import (
	"errors"
	"testing"

	"github.com/tabwright/tabwright"
)

func TestNoActiveSong(t *testing.T) {
	ed := New()
	if ed.HasSong() {
		t.Fatal("fresh editor claims to have a song")
	}
	if _, err := ed.AddTrack("Guitar"); !errors.Is(err, tabwright.ErrNoActiveSong) {
		t.Fatalf("expected ErrNoActiveSong, got %v", err)
	}
	if _, err := ed.SongInfo(); !errors.Is(err, tabwright.ErrNoActiveSong) {
		t.Fatalf("expected ErrNoActiveSong, got %v", err)
	}
	if err := ed.AddNote(0, 0, 1, 0, tabwright.Quarter, 0, 0); !errors.Is(err, tabwright.ErrNoActiveSong) {
		t.Fatalf("expected ErrNoActiveSong, got %v", err)
	}
}

func TestNewSongDefaults(t *testing.T) {
	ed := New()
	ed.NewSong("My Song", "Me")
	info, err := ed.SongInfo()
	if err != nil {
		t.Fatalf("SongInfo failed: %v", err)
	}
	if info.Title != "My Song" || info.Artist != "Me" {
		t.Fatalf("wrong metadata: %#v", info)
	}
	if info.Tempo != 120 {
		t.Fatalf("default tempo: got %d, expected 120", info.Tempo)
	}
	if info.TrackCount != 1 || info.MeasureCount != 1 {
		t.Fatalf("expected one track and one measure, got %#v", info)
	}
	song, err := ed.Song()
	if err != nil {
		t.Fatalf("Song failed: %v", err)
	}
	track := song.Tracks[0]
	if track.Name != "Guitar" || track.Instrument != tabwright.DefaultInstrument {
		t.Fatalf("wrong default track: %#v", track)
	}
	for i, pitch := range tabwright.StandardTuning {
		if track.Tuning[i] != pitch {
			t.Fatalf("string %d tuned to %d, expected %d", i+1, track.Tuning[i], pitch)
		}
	}
}

func TestTrackIndicesStayDense(t *testing.T) {
	ed := New()
	ed.NewSong("", "")
	for _, name := range []string{"Bass", "Lead", "Rhythm"} {
		if _, err := ed.AddTrack(name); err != nil {
			t.Fatalf("AddTrack(%q) failed: %v", name, err)
		}
	}
	if err := ed.RemoveTrack(1); err != nil {
		t.Fatalf("RemoveTrack failed: %v", err)
	}
	list, err := ed.TrackList()
	if err != nil {
		t.Fatalf("TrackList failed: %v", err)
	}
	expected := []string{"Guitar", "Lead", "Rhythm"}
	if len(list) != len(expected) {
		t.Fatalf("got %d tracks, expected %d", len(list), len(expected))
	}
	for i, info := range list {
		if info.Index != i {
			t.Fatalf("track %q has index %d, expected %d", info.Name, info.Index, i)
		}
		if info.Name != expected[i] {
			t.Fatalf("track %d is %q, expected %q", i, info.Name, expected[i])
		}
	}
	if err := ed.RemoveTrack(3); !errors.Is(err, tabwright.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestAddMeasureGrowsEveryTrack(t *testing.T) {
	ed := New()
	ed.NewSong("", "")
	ed.AddTrack("Bass")
	ed.AddTrack("Lead")
	index, err := ed.AddMeasure()
	if err != nil {
		t.Fatalf("AddMeasure failed: %v", err)
	}
	if index != 1 {
		t.Fatalf("new measure index: got %d, expected 1", index)
	}
	stats, err := ed.Statistics()
	if err != nil {
		t.Fatalf("Statistics failed: %v", err)
	}
	if stats.MeasureCount != 2 {
		t.Fatalf("song measure count: got %d, expected 2", stats.MeasureCount)
	}
	for _, ts := range stats.Tracks {
		if ts.MeasureCount != 2 {
			t.Fatalf("track %q has %d measures, expected 2", ts.Name, ts.MeasureCount)
		}
	}
}

func TestAddNoteReplacesOnSameString(t *testing.T) {
	ed := New()
	ed.NewSong("", "")
	if err := ed.AddNote(0, 0, 3, 5, tabwright.Quarter, 0, 0); err != nil {
		t.Fatalf("first AddNote failed: %v", err)
	}
	if err := ed.AddNote(0, 0, 3, 7, tabwright.Eighth, 0, 0); err != nil {
		t.Fatalf("second AddNote failed: %v", err)
	}
	notes, err := ed.TrackNotes(0)
	if err != nil {
		t.Fatalf("TrackNotes failed: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("got %d notes, expected the replacement to keep 1", len(notes))
	}
	if notes[0].String != 3 || notes[0].Fret != 7 {
		t.Fatalf("got string %d fret %d, expected string 3 fret 7", notes[0].String, notes[0].Fret)
	}
	if notes[0].Duration != tabwright.Eighth {
		t.Fatalf("beat duration: got %d, expected the last add to win with %d", notes[0].Duration, tabwright.Eighth)
	}
}

func TestAddNoteCreatesRestsOnDemand(t *testing.T) {
	ed := New()
	ed.NewSong("", "")
	if err := ed.AddNote(0, 0, 1, 3, tabwright.Quarter, 0, 2); err != nil {
		t.Fatalf("AddNote at beat 2 failed: %v", err)
	}
	stats, err := ed.Statistics()
	if err != nil {
		t.Fatalf("Statistics failed: %v", err)
	}
	if stats.TotalBeats != 3 {
		t.Fatalf("got %d beats, expected 3 with rests filled in", stats.TotalBeats)
	}
	if stats.TotalNotes != 1 {
		t.Fatalf("got %d notes, expected 1", stats.TotalNotes)
	}
}

func TestAddNoteValidation(t *testing.T) {
	ed := New()
	ed.NewSong("", "")
	for _, tt := range []struct {
		name     string
		err      error
		expected error
	}{
		{"bad track", ed.AddNote(5, 0, 1, 0, tabwright.Quarter, 0, 0), tabwright.ErrIndexOutOfRange},
		{"bad measure", ed.AddNote(0, 3, 1, 0, tabwright.Quarter, 0, 0), tabwright.ErrIndexOutOfRange},
		{"string zero", ed.AddNote(0, 0, 0, 0, tabwright.Quarter, 0, 0), tabwright.ErrInvalidString},
		{"string seven", ed.AddNote(0, 0, 7, 0, tabwright.Quarter, 0, 0), tabwright.ErrInvalidString},
		{"negative fret", ed.AddNote(0, 0, 1, -1, tabwright.Quarter, 0, 0), tabwright.ErrValidation},
		{"bad duration", ed.AddNote(0, 0, 1, 0, 5, 0, 0), tabwright.ErrValidation},
		{"negative voice", ed.AddNote(0, 0, 1, 0, tabwright.Quarter, -1, 0), tabwright.ErrIndexOutOfRange},
		{"negative beat", ed.AddNote(0, 0, 1, 0, tabwright.Quarter, 0, -1), tabwright.ErrIndexOutOfRange},
	} {
		if !errors.Is(tt.err, tt.expected) {
			t.Errorf("%s: got %v, expected %v", tt.name, tt.err, tt.expected)
		}
	}
	stats, err := ed.Statistics()
	if err != nil {
		t.Fatalf("Statistics failed: %v", err)
	}
	if stats.TotalBeats != 0 || stats.TotalNotes != 0 {
		t.Fatalf("failed calls mutated the song: %#v", stats)
	}
}

func TestChordNeedsExistingBeat(t *testing.T) {
	ed := New()
	ed.NewSong("", "")
	chord := tabwright.Chord{Name: "Em", Strings: []int{0, 0, 0, 2, 2, 0}}
	if err := ed.AddChord(0, 0, 0, chord); !errors.Is(err, tabwright.ErrBeatNotFound) {
		t.Fatalf("expected ErrBeatNotFound on an empty measure, got %v", err)
	}
	if err := ed.AddNote(0, 0, 4, 2, tabwright.Quarter, 0, 0); err != nil {
		t.Fatalf("AddNote failed: %v", err)
	}
	if err := ed.AddChord(0, 0, 0, chord); err != nil {
		t.Fatalf("AddChord failed: %v", err)
	}
	got, err := ed.Chord(0, 0, 0)
	if err != nil {
		t.Fatalf("Chord failed: %v", err)
	}
	if got == nil || got.Name != "Em" {
		t.Fatalf("got chord %#v, expected Em back", got)
	}
	if err := ed.AddChord(0, 0, 1, chord); !errors.Is(err, tabwright.ErrBeatNotFound) {
		t.Fatalf("expected ErrBeatNotFound for missing beat, got %v", err)
	}
}

func TestChordOnBareBeatIsNil(t *testing.T) {
	ed := New()
	ed.NewSong("", "")
	if err := ed.AddNote(0, 0, 1, 0, tabwright.Quarter, 0, 0); err != nil {
		t.Fatalf("AddNote failed: %v", err)
	}
	got, err := ed.Chord(0, 0, 0)
	if err != nil {
		t.Fatalf("Chord failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil chord on a bare beat, got %#v", got)
	}
}

func TestTrackPropertiesClampAndValidate(t *testing.T) {
	ed := New()
	ed.NewSong("", "")
	volume := 200
	if err := ed.SetTrackProperties(0, TrackProperties{Volume: &volume}); err != nil {
		t.Fatalf("SetTrackProperties failed: %v", err)
	}
	pan := -10
	if err := ed.SetTrackProperties(0, TrackProperties{Pan: &pan}); err != nil {
		t.Fatalf("SetTrackProperties failed: %v", err)
	}
	song, _ := ed.Song()
	if song.Tracks[0].Volume != 127 {
		t.Fatalf("volume 200 clamped to %d, expected 127", song.Tracks[0].Volume)
	}
	if song.Tracks[0].Pan != 0 {
		t.Fatalf("pan -10 clamped to %d, expected 0", song.Tracks[0].Pan)
	}
	instrument := 128
	if err := ed.SetTrackProperties(0, TrackProperties{Instrument: &instrument}); !errors.Is(err, tabwright.ErrValidation) {
		t.Fatalf("expected ErrValidation for instrument 128, got %v", err)
	}
}

func TestTranspose(t *testing.T) {
	ed := New()
	ed.NewSong("", "")
	ed.AddNote(0, 0, 1, 5, tabwright.Quarter, 0, 0)
	ed.AddNote(0, 0, 2, 0, tabwright.Quarter, 0, 1)
	if err := ed.Transpose(0, 2); err != nil {
		t.Fatalf("Transpose failed: %v", err)
	}
	notes, _ := ed.TrackNotes(0)
	if notes[0].Fret != 7 || notes[1].Fret != 2 {
		t.Fatalf("transpose +2 gave frets %d and %d, expected 7 and 2", notes[0].Fret, notes[1].Fret)
	}
	// A shift that would push the open string below fret 0 leaves it
	// alone but still moves the rest.
	if err := ed.Transpose(0, -3); err != nil {
		t.Fatalf("Transpose failed: %v", err)
	}
	notes, _ = ed.TrackNotes(0)
	if notes[0].Fret != 4 {
		t.Fatalf("transpose -3 gave fret %d, expected 4", notes[0].Fret)
	}
	if notes[1].Fret != 2 {
		t.Fatalf("fret 2 note shifted to %d, expected to stay when -3 would go negative", notes[1].Fret)
	}
}

func TestMeasureHeaderOps(t *testing.T) {
	ed := New()
	ed.NewSong("", "")
	ed.AddMeasure()
	if err := ed.SetTimeSignature(1, 3, 4); err != nil {
		t.Fatalf("SetTimeSignature failed: %v", err)
	}
	if err := ed.SetKeySignature(1, -2); err != nil {
		t.Fatalf("SetKeySignature failed: %v", err)
	}
	if err := ed.SetTempo(1, 90); err != nil {
		t.Fatalf("SetTempo failed: %v", err)
	}
	song, _ := ed.Song()
	header := song.Headers[1]
	if header.TimeSignature.Numerator != 3 || header.TimeSignature.Denominator != 4 {
		t.Fatalf("time signature: %#v", header.TimeSignature)
	}
	if header.Key != -2 || header.Tempo != 90 {
		t.Fatalf("header: %#v", header)
	}
	if song.EffectiveTempo(0) != 120 || song.EffectiveTempo(1) != 90 {
		t.Fatal("tempo change applies to the wrong measure")
	}

	if err := ed.SetTimeSignature(1, 0, 4); !errors.Is(err, tabwright.ErrValidation) {
		t.Fatalf("expected ErrValidation for numerator 0, got %v", err)
	}
	if err := ed.SetTimeSignature(1, 4, 3); !errors.Is(err, tabwright.ErrValidation) {
		t.Fatalf("expected ErrValidation for denominator 3, got %v", err)
	}
	if err := ed.SetKeySignature(1, 8); !errors.Is(err, tabwright.ErrValidation) {
		t.Fatalf("expected ErrValidation for key 8, got %v", err)
	}
	if err := ed.SetTempo(1, 0); !errors.Is(err, tabwright.ErrValidation) {
		t.Fatalf("expected ErrValidation for tempo 0, got %v", err)
	}
	if err := ed.SetTempo(5, 100); !errors.Is(err, tabwright.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange for measure 5, got %v", err)
	}
}

func TestSectionRangeValidation(t *testing.T) {
	ed := New()
	ed.NewSong("", "")
	ed.AddMeasure()
	ed.AddMeasure()
	if err := ed.AddSection(2, 1, "Chorus", "", nil); !errors.Is(err, tabwright.ErrValidation) {
		t.Fatalf("expected ErrValidation for start > end, got %v", err)
	}
	if err := ed.AddSection(0, 5, "Chorus", "", nil); !errors.Is(err, tabwright.ErrValidation) {
		t.Fatalf("expected ErrValidation for end past the song, got %v", err)
	}
	if err := ed.AddSection(0, 1, "", "", nil); !errors.Is(err, tabwright.ErrValidation) {
		t.Fatalf("expected ErrValidation for empty name, got %v", err)
	}
	structure, err := ed.Structure()
	if err != nil {
		t.Fatalf("Structure failed: %v", err)
	}
	if len(structure.Sections) != 0 {
		t.Fatalf("failed calls added sections: %#v", structure.Sections)
	}
	if err := ed.AddSection(0, 2, "Verse", "quiet", &tabwright.RGB{R: 255}); err != nil {
		t.Fatalf("AddSection failed: %v", err)
	}
	sections, _ := ed.Sections()
	if len(sections) != 1 || sections[0].Name != "Verse" || sections[0].Color.R != 255 {
		t.Fatalf("sections: %#v", sections)
	}
}

func TestRepeatGroupsAndMarkers(t *testing.T) {
	ed := New()
	ed.NewSong("", "")
	ed.AddMeasure()
	ed.AddMeasure()
	ed.AddMeasure()
	if err := ed.AddRepeatGroup(0, 1, "normal", 2, nil); err != nil {
		t.Fatalf("AddRepeatGroup failed: %v", err)
	}
	if err := ed.AddRepeatGroup(2, 3, "alternate", 2, []int{1, 2}); err != nil {
		t.Fatalf("AddRepeatGroup failed: %v", err)
	}
	if err := ed.AddRepeatGroup(0, 1, "bogus", 2, nil); !errors.Is(err, tabwright.ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown kind, got %v", err)
	}
	if err := ed.AddRepeatGroup(0, 1, "normal", 0, nil); !errors.Is(err, tabwright.ErrValidation) {
		t.Fatalf("expected ErrValidation for count 0, got %v", err)
	}
	if err := ed.AddCoda(3); err != nil {
		t.Fatalf("AddCoda failed: %v", err)
	}
	if err := ed.AddDoubleBar(1); err != nil {
		t.Fatalf("AddDoubleBar failed: %v", err)
	}
	if err := ed.AddCoda(4); !errors.Is(err, tabwright.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange for measure 4, got %v", err)
	}
	structure, err := ed.Structure()
	if err != nil {
		t.Fatalf("Structure failed: %v", err)
	}
	if len(structure.Repeats) != 2 || len(structure.Markers) != 2 {
		t.Fatalf("structure: %#v", structure)
	}
	if structure.Repeats[1].Kind != tabwright.RepeatAlternate || len(structure.Repeats[1].Endings) != 2 {
		t.Fatalf("second repeat group: %#v", structure.Repeats[1])
	}
	if structure.Markers[0].Kind != tabwright.MarkerCoda || structure.Markers[1].Kind != tabwright.MarkerDoubleBar {
		t.Fatalf("markers: %#v", structure.Markers)
	}
}

func TestMetadata(t *testing.T) {
	ed := New()
	ed.NewSong("", "")
	if err := ed.SetAdvancedMetadata(map[string]string{
		"subtitle": "Acoustic",
		"notice":   "Live take",
		"words":    "Trad.",
	}); err != nil {
		t.Fatalf("SetAdvancedMetadata failed: %v", err)
	}
	meta, err := ed.AdvancedMetadata()
	if err != nil {
		t.Fatalf("AdvancedMetadata failed: %v", err)
	}
	if meta["subtitle"] != "Acoustic" || meta["notice"] != "Live take" || meta["words"] != "Trad." {
		t.Fatalf("metadata: %#v", meta)
	}
	song, _ := ed.Song()
	if song.Subtitle != "Acoustic" {
		t.Fatal("subtitle did not land on the fixed song field")
	}
	if _, ok := song.Metadata["subtitle"]; ok {
		t.Fatal("subtitle leaked into the free-form map")
	}

	if err := ed.SetPageSetup(map[string]string{"width": "210", "height": "297"}); err != nil {
		t.Fatalf("SetPageSetup failed: %v", err)
	}
	if err := ed.SetPageSetup(map[string]string{"width": "216"}); err != nil {
		t.Fatalf("SetPageSetup failed: %v", err)
	}
	setup, _ := ed.PageSetup()
	if setup["width"] != "216" || setup["height"] != "297" {
		t.Fatalf("page setup merge: %#v", setup)
	}

	if err := ed.SetLyrics("la la la"); err != nil {
		t.Fatalf("SetLyrics failed: %v", err)
	}
	lyrics, _ := ed.Lyrics()
	if lyrics != "la la la" {
		t.Fatalf("lyrics: %q", lyrics)
	}
}

func TestSongCopiesAreIndependent(t *testing.T) {
	ed := New()
	ed.NewSong("Original", "")
	song, err := ed.Song()
	if err != nil {
		t.Fatalf("Song failed: %v", err)
	}
	song.Title = "Tampered"
	song.Tracks[0].Name = "Tampered"
	info, _ := ed.SongInfo()
	if info.Title != "Original" {
		t.Fatal("mutating the returned copy changed the document")
	}
	list, _ := ed.TrackList()
	if list[0].Name != "Guitar" {
		t.Fatal("mutating the returned copy changed the track")
	}
}

func TestSetSongRejectsInvalid(t *testing.T) {
	ed := New()
	bad := tabwright.Song{
		Headers: []tabwright.MeasureHeader{{TimeSignature: tabwright.TimeSignature{Numerator: 4, Denominator: 4}}},
		Tracks:  []tabwright.Track{{Tuning: []int{64, 59, 55, 50, 45, 40}}}, // no measures
	}
	if err := ed.SetSong(bad); !errors.Is(err, tabwright.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if ed.HasSong() {
		t.Fatal("invalid song became active")
	}
}
