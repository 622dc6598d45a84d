// Package tools is the tool-invocation boundary of the editor: a
// registry of named operations, each taking a JSON argument mapping and
// returning a structured result. One call is one operation; errors are
// classified and returned as failure results with a message, never as
// panics, so a bad call can never take the session down.
package tools

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tabwright/tabwright"
	"github.com/tabwright/tabwright/editor"
)

// Result is the wire shape every tool returns.
type Result struct {
	Status       string `json:"status"` // "success" or "error"
	Message      string `json:"message,omitempty"`
	Code         string `json:"code,omitempty"` // failure class, set on errors
	Data         any    `json:"data,omitempty"`
	TrackIndex   *int   `json:"track_index,omitempty"`
	MeasureIndex *int   `json:"measure_index,omitempty"`
}

// Tool is one named operation of the registry.
type Tool struct {
	Name        string
	Description string
	handler     func(args json.RawMessage) Result
}

// Registry maps tool names to their handlers over a single editor.
type Registry struct {
	editor *editor.Editor
	tools  map[string]Tool
	order  []string
}

// NewRegistry builds the full tool table over the given editor.
func NewRegistry(ed *editor.Editor) *Registry {
	r := &Registry{
		editor: ed,
		tools:  make(map[string]Tool),
	}
	r.registerSongTools()
	r.registerTrackTools()
	r.registerNoteTools()
	r.registerStructureTools()
	r.registerFileTools()
	return r
}

// Invoke dispatches one tool call. Unknown tool names are reported as
// validation failures.
func (r *Registry) Invoke(name string, args json.RawMessage) Result {
	tool, ok := r.tools[name]
	if !ok {
		return Result{
			Status:  "error",
			Code:    "validation_error",
			Message: fmt.Sprintf("unknown tool: %s", name),
		}
	}
	return tool.handler(args)
}

// Tools returns the registered tools in registration order.
func (r *Registry) Tools() []Tool {
	ret := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		ret = append(ret, r.tools[name])
	}
	return ret
}

func (r *Registry) register(name, description string, handler func(args json.RawMessage) Result) {
	r.tools[name] = Tool{Name: name, Description: description, handler: handler}
	r.order = append(r.order, name)
}

func success(message string) Result {
	return Result{Status: "success", Message: message}
}

func successData(data any) Result {
	return Result{Status: "success", Data: data}
}

func failure(err error) Result {
	return Result{Status: "error", Code: errorCode(err), Message: err.Error()}
}

// errorCode maps an error to the failure class of the protocol.
func errorCode(err error) string {
	switch {
	case errors.Is(err, tabwright.ErrIndexOutOfRange):
		return "index_out_of_range"
	case errors.Is(err, tabwright.ErrInvalidString):
		return "invalid_string"
	case errors.Is(err, tabwright.ErrBeatNotFound):
		return "beat_not_found"
	case errors.Is(err, tabwright.ErrNoActiveSong):
		return "no_active_song"
	case errors.Is(err, tabwright.ErrValidation):
		return "validation_error"
	}
	return "error"
}

// decode unmarshals the argument mapping into the tool's argument
// struct; a missing mapping decodes every field to its zero value.
func decode[T any](args json.RawMessage) (T, error) {
	var ret T
	if len(args) == 0 {
		return ret, nil
	}
	if err := json.Unmarshal(args, &ret); err != nil {
		return ret, fmt.Errorf("%w: bad arguments: %v", tabwright.ErrValidation, err)
	}
	return ret, nil
}
