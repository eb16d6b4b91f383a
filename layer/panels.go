package layer

import (
	"fmt"

	polyclip "github.com/akavel/polyclip-go"

	"github.com/npillmayer/springs/table"
)

// splitPanels groups rows by their PANEL column, panels ordered by first
// appearance. Rows keep their relative order within a panel.
func splitPanels(rows table.Table) []table.Table {
	var panels []table.Table
	index := make(map[string]int)
	for _, row := range rows {
		v, _ := row.Attrs.Get(table.ColPanel)
		key := fmt.Sprintf("%T:%v", v, v)
		i, ok := index[key]
		if !ok {
			i = len(panels)
			index[key] = i
			panels = append(panels, nil)
		}
		panels[i] = append(panels[i], row)
	}
	return panels
}

// Extent returns the bounding rectangle of generated points, for training
// position scales. ok is false if there are no points.
func Extent(pts table.Points) (box polyclip.Rectangle, ok bool) {
	outline := Outline(pts)
	if len(outline) == 0 {
		return polyclip.Rectangle{}, false
	}
	return outline.BoundingBox(), true
}

// Outline converts generated points into a polygon with one contour per
// polyline.
func Outline(pts table.Points) polyclip.Polygon {
	var poly polyclip.Polygon
	for _, line := range pts.Polylines() {
		c := make(polyclip.Contour, len(line.Vertices))
		for i, v := range line.Vertices {
			c[i] = polyclip.Point{X: v.X(), Y: v.Y()}
		}
		poly = append(poly, c)
	}
	return poly
}
