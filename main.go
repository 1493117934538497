// Package main provides the entry point for the cuesplit application.
//
// cuesplit splits a single-file album image into one FLAC file per track
// using the offsets recorded in its cue sheet.
package main

import cmd "github.com/toozej/cuesplit/cmd/cuesplit"

// main is the entry point of the cuesplit application.
// It delegates execution to the cmd package which handles all
// command-line interface functionality.
func main() {
	cmd.Execute()
}
