// Command atlaspack packs a directory of emoji PNGs, named by code-point
// key (e.g. 1f44b-1f3fd.png), into an atlas container.
package main

import (
	"flag"
	"log"

	"github.com/citador/citador/atlas"
)

func main() {
	var (
		dir    = flag.String("dir", "assets/72x72", "directory of <key>.png files")
		output = flag.String("out", "emoji.atlas", "output file")
	)
	flag.Parse()

	entries, err := atlas.PackDir(*dir)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *dir, err)
	}
	if len(entries) == 0 {
		log.Fatalf("No PNG files in %s", *dir)
	}

	// Decoding every entry catches bad images before they reach a renderer.
	if _, err := atlas.New(entries); err != nil {
		log.Fatalf("Invalid atlas: %v", err)
	}

	if err := atlas.WriteFile(*output, entries); err != nil {
		log.Fatalf("Failed to write: %v", err)
	}

	log.Printf("Packed %d emoji into %s\n", len(entries), *output)
}
