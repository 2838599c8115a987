package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lumident/clinic-platform/internal/scene"
	"github.com/lumident/clinic-platform/internal/scene/projector"
)

// scenegen builds the braces assembly and dumps it as JSON, for
// inspecting the geometry or pre-generating a static scene file.
func main() {
	var (
		teeth   = flag.Int("teeth", 10, "number of teeth on the arch")
		radius  = flag.Float64("radius", 4.5, "arch radius")
		seed    = flag.Int64("seed", 0, "placement jitter seed")
		out     = flag.String("o", "", "output file (default stdout)")
		indent  = flag.Bool("indent", false, "pretty-print the JSON")
		project = flag.String("project", "", "viewport WxH: include screen positions of the bracket anchors")
	)
	flag.Parse()

	assembly, err := scene.Build(scene.Params{
		ToothCount: *teeth,
		ArchRadius: *radius,
		Seed:       *seed,
	})
	if err != nil {
		log.Fatalf("build scene: %v", err)
	}

	output := any(assembly)
	if *project != "" {
		var w, h int
		if _, err := fmt.Sscanf(*project, "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
			log.Fatalf("invalid -project viewport %q, want WxH", *project)
		}
		output = struct {
			*scene.Assembly
			Anchors []anchor `json:"anchors"`
		}{assembly, projectAnchors(assembly, w, h)}
	}

	dst := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("create output: %v", err)
		}
		defer f.Close()
		dst = f
	}

	enc := json.NewEncoder(dst)
	if *indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(output); err != nil {
		log.Fatalf("encode scene: %v", err)
	}
}

type anchor struct {
	Index   int     `json:"index"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Visible bool    `json:"visible"`
}

// projectAnchors maps each bracket's rest position through the default
// camera onto the given viewport, mirroring where the annotation labels
// would sit on screen at rest.
func projectAnchors(assembly *scene.Assembly, w, h int) []anchor {
	cam := projector.NewCamera(w, h)
	anchors := make([]anchor, 0, len(assembly.Brackets))
	for _, b := range assembly.Brackets {
		x, y, ok := cam.Screen(b.RestPosition, w, h)
		anchors = append(anchors, anchor{Index: b.Index, X: x, Y: y, Visible: ok})
	}
	return anchors
}
