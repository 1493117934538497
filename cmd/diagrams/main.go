// Package main generates architecture diagrams for the cuesplit application.
//
// The diagrams are written as Graphviz dot files into the go-diagrams/
// directory and can be rendered with:
//
//	cd go-diagrams && dot -Tpng architecture.dot > architecture.png
package main

import (
	"github.com/blushft/go-diagrams/diagram"
	"github.com/blushft/go-diagrams/nodes/generic"
	"github.com/blushft/go-diagrams/nodes/programming"
	log "github.com/sirupsen/logrus"
)

// generateArchitectureDiagram renders the end-to-end flow from cue sheet to FLAC tracks
func generateArchitectureDiagram() {
	d, err := diagram.New(diagram.Filename("architecture"), diagram.Label("cuesplit Architecture"), diagram.Direction("LR"))
	if err != nil {
		log.Fatal(err)
	}

	user := generic.Blank.Blank(diagram.NodeLabel("User"))
	cli := programming.Language.Go(diagram.NodeLabel("cuesplit CLI"))
	cue := generic.Storage.Storage(diagram.NodeLabel("Cue Sheet"))
	audio := generic.Storage.Storage(diagram.NodeLabel("Audio Image"))
	ffmpeg := generic.Blank.Blank(diagram.NodeLabel("ffmpeg"))
	tracks := generic.Storage.Storage(diagram.NodeLabel("FLAC Tracks"))

	d.Connect(user, cli, diagram.Forward())
	d.Connect(cli, cue, diagram.Forward())
	d.Connect(cli, ffmpeg, diagram.Forward())
	d.Connect(ffmpeg, audio, diagram.Forward())
	d.Connect(ffmpeg, tracks, diagram.Forward())

	if err := d.Render(); err != nil {
		log.Fatal(err)
	}
}

// generateComponentDiagram renders the internal packages and how they call each other
func generateComponentDiagram() {
	d, err := diagram.New(diagram.Filename("components"), diagram.Label("cuesplit Components"), diagram.Direction("TB"))
	if err != nil {
		log.Fatal(err)
	}

	cmd := programming.Language.Go(diagram.NodeLabel("cmd/cuesplit"))
	config := programming.Language.Go(diagram.NodeLabel("pkg/config"))
	splitter := programming.Language.Go(diagram.NodeLabel("internal/splitter"))
	cuesheet := programming.Language.Go(diagram.NodeLabel("internal/cuesheet"))
	ffmpeg := programming.Language.Go(diagram.NodeLabel("internal/ffmpeg"))
	outputs := programming.Language.Go(diagram.NodeLabel("internal/outputs"))
	search := programming.Language.Go(diagram.NodeLabel("internal/search"))

	d.Connect(cmd, config, diagram.Forward())
	d.Connect(cmd, splitter, diagram.Forward())
	d.Connect(cmd, search, diagram.Forward())
	d.Connect(cmd, outputs, diagram.Forward())
	d.Connect(splitter, cuesheet, diagram.Forward())
	d.Connect(splitter, ffmpeg, diagram.Forward())
	d.Connect(splitter, outputs, diagram.Forward())

	if err := d.Render(); err != nil {
		log.Fatal(err)
	}
}

func main() {
	generateArchitectureDiagram()
	generateComponentDiagram()
	log.Info("Diagrams written to go-diagrams/")
}
