package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tabwright/tabwright/codec"
	"github.com/tabwright/tabwright/editor"
	"github.com/tabwright/tabwright/tools"
	"github.com/tabwright/tabwright/version"
)

// request is one tool call read from standard input, one JSON object
// per line.
type request struct {
	Tool      string          `json:"tool"`
	Arguments json.RawMessage `json:"arguments"`
}

func main() {
	songPath := flag.String("f", "", "Load this song file before serving.")
	newSong := flag.Bool("n", false, "Start with a fresh default song instead of an empty session.")
	listTools := flag.Bool("l", false, "List the available tools and exit.")
	versionFlag := flag.Bool("v", false, "Print version.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}

	ed := editor.New()
	registry := tools.NewRegistry(ed)

	if *listTools {
		for _, tool := range registry.Tools() {
			fmt.Printf("%-24s %s\n", tool.Name, tool.Description)
		}
		os.Exit(0)
	}
	if *newSong {
		ed.NewSong("New Song", "")
	}
	if *songPath != "" {
		song, err := codec.LoadFile(*songPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading song: %v\n", err)
			os.Exit(1)
		}
		if err := ed.SetSong(song); err != nil {
			fmt.Fprintf(os.Stderr, "error loading song: %v\n", err)
			os.Exit(1)
		}
		log.Printf("loaded song from %s", *songPath)
	}

	if err := serve(registry, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

// serve reads one JSON request per line and writes one JSON result per
// line. Malformed requests get an error result; only I/O failures stop
// the loop.
func serve(registry *tools.Registry, in *os.File, out *os.File) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	encoder := json.NewEncoder(out)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var req request
		result := tools.Result{}
		if err := json.Unmarshal(line, &req); err != nil {
			result = tools.Result{Status: "error", Code: "validation_error", Message: fmt.Sprintf("bad request: %v", err)}
		} else {
			result = registry.Invoke(req.Tool, req.Arguments)
		}
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("could not write result: %w", err)
		}
	}
	return scanner.Err()
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Tablature editing server. Reads tool calls as JSON lines from stdin:\n")
	fmt.Fprintf(os.Stderr, "  {\"tool\": \"add_note\", \"arguments\": {\"track_index\": 0, ...}}\n\nOptions:\n")
	flag.PrintDefaults()
}
