// Command springdemo draws a small network of springs to a PNG file.
package main

import (
	"flag"
	"log"
	"math"

	"github.com/gogpu/gg"

	"github.com/npillmayer/springs/layer"
	"github.com/npillmayer/springs/render"
	"github.com/npillmayer/springs/stat"
	"github.com/npillmayer/springs/table"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		n       = flag.Int("n", stat.DefaultN, "points per revolution")
		workers = flag.Int("workers", 1, "goroutines generating springs")
		arrows  = flag.Bool("arrows", true, "draw arrow heads")
		output  = flag.String("output", "springs.png", "output file")
	)
	flag.Parse()

	opts := []layer.Option{
		layer.WithN(*n),
		layer.WithWorkers(*workers),
		layer.WithLineEnd(layer.RoundEnd),
	}
	if *arrows {
		opts = append(opts, layer.WithArrow(layer.DefaultArrow()))
	}
	l := layer.New(layer.Mapping{
		"x": "from_x", "y": "from_y", "xend": "to_x", "yend": "to_y",
		"diameter": "width", "tension": "slack", "colour": "kind",
	}, opts...)

	points, err := l.Compute(network())
	if err != nil {
		log.Fatalf("Failed to compute springs: %v", err)
	}

	dc := gg.NewContext(*width, *height)
	dc.ClearWithColor(gg.White)
	vp := render.Viewport{Width: float64(*width), Height: float64(*height), Margin: 20}
	if err := render.Draw(dc, points, l.Geom, vp); err != nil {
		log.Fatalf("Failed to draw: %v", err)
	}
	if err := dc.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("%d points saved to %s (%dx%d)\n", len(points), *output, *width, *height)
}

// network connects a hub to nodes on a circle, and the nodes to their
// neighbours.
func network() []layer.Record {
	const nodes = 7
	var recs []layer.Record
	pos := func(i int) (float64, float64) {
		a := 2 * math.Pi * float64(i) / nodes
		return 10 * math.Cos(a), 10 * math.Sin(a)
	}
	for i := 0; i < nodes; i++ {
		x, y := pos(i)
		recs = append(recs, table.AttrsOf(
			"from_x", 0.0, "from_y", 0.0, "to_x", x, "to_y", y,
			"width", 0.8, "slack", 0.5+0.25*float64(i), "kind", "spoke",
		))
		nx, ny := pos(i + 1)
		recs = append(recs, table.AttrsOf(
			"from_x", x, "from_y", y, "to_x", nx, "to_y", ny,
			"width", 0.5, "slack", 1.0, "kind", "rim",
		))
	}
	return recs
}
